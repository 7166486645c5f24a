package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryQuery_Matches(t *testing.T) {
	doctor := &Doctor{Name: "Dr. Smith", Specialty: "Cardiology", City: "Springfield"}

	tests := []struct {
		name  string
		query *DirectoryQuery
		want  bool
	}{
		{
			name:  "no predicates",
			query: NewDirectoryQuery(),
			want:  true,
		},
		{
			name:  "specialty and city",
			query: NewDirectoryQuery().Where(DirectoryFieldSpecialty, "Cardiology").Where(DirectoryFieldCity, "Springfield"),
			want:  true,
		},
		{
			name:  "match is case sensitive",
			query: NewDirectoryQuery().Where(DirectoryFieldSpecialty, "cardiology"),
			want:  false,
		},
		{
			name:  "different city",
			query: NewDirectoryQuery().Where(DirectoryFieldSpecialty, "Cardiology").Where(DirectoryFieldCity, "Shelbyville"),
			want:  false,
		},
		{
			name:  "name",
			query: NewDirectoryQuery().Where(DirectoryFieldName, "Dr. Smith"),
			want:  true,
		},
		{
			name:  "unknown field never matches",
			query: NewDirectoryQuery().Where("insurance", "Acme"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Matches(doctor))
		})
	}
}

func TestDirectoryQuery_String(t *testing.T) {
	q := NewDirectoryQuery().Where(DirectoryFieldSpecialty, "Cardiology").Where(DirectoryFieldCity, `Spring "field"`)
	assert.Equal(t, `specialty=="Cardiology"&city=="Spring \"field\""`, q.String())
}

func TestNewDateParam(t *testing.T) {
	assert.Equal(t, DateParamString, NewDateParam("2025-09-05").Kind)
	assert.Equal(t, "2025-09-05", NewDateParam("2025-09-05").Text)

	fields := map[string]interface{}{"year": 2025.0}
	structured := NewDateParam(fields)
	assert.Equal(t, DateParamStructured, structured.Kind)
	assert.Equal(t, fields, structured.Fields)

	assert.Equal(t, DateParamUnknown, NewDateParam(20250905.0).Kind)
	assert.Equal(t, DateParamUnknown, NewDateParam([]interface{}{"2025-09-05"}).Kind)
	assert.Equal(t, DateParamUnknown, NewDateParam(nil).Kind)
}
