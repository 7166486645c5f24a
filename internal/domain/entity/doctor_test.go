package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailability_ValueAndScan(t *testing.T) {
	original := Availability{"2099-01-10": {"09:00", "10:00"}}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned Availability
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	var fromString Availability
	require.NoError(t, fromString.Scan(`{"2099-01-11":[]}`))
	assert.Equal(t, Availability{"2099-01-11": {}}, fromString)
}

func TestAvailability_EmptyAndNil(t *testing.T) {
	value, err := Availability{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	a := Availability{"x": nil}
	require.NoError(t, a.Scan(nil))
	assert.Nil(t, a)

	assert.Error(t, a.Scan(42))
}

func TestDoctor_SlotsOn(t *testing.T) {
	day := CalendarDate{Year: 2099, Month: time.January, Day: 10}

	doctor := Doctor{Availability: Availability{"2099-01-10": {"09:00"}}}
	assert.Equal(t, []string{"09:00"}, doctor.SlotsOn(day))
	assert.Nil(t, doctor.SlotsOn(CalendarDate{Year: 2099, Month: time.January, Day: 11}))

	var empty Doctor
	assert.Nil(t, empty.SlotsOn(day))
}
