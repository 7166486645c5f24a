package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		day     int
		wantErr bool
	}{
		{name: "regular day", year: 2025, month: 9, day: 5},
		{name: "leap day", year: 2024, month: 2, day: 29},
		{name: "february 29 outside leap year", year: 2025, month: 2, day: 29, wantErr: true},
		{name: "february 30", year: 2025, month: 2, day: 30, wantErr: true},
		{name: "month 13", year: 2025, month: 13, day: 1, wantErr: true},
		{name: "month 0", year: 2025, month: 0, day: 1, wantErr: true},
		{name: "day 0", year: 2025, month: 1, day: 0, wantErr: true},
		{name: "april 31", year: 2025, month: 4, day: 31, wantErr: true},
		{name: "year 0", year: 0, month: 1, day: 1, wantErr: true},
		{name: "year 10000", year: 10000, month: 1, day: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := NewCalendarDate(tt.year, tt.month, tt.day)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, CalendarDate{Year: tt.year, Month: time.Month(tt.month), Day: tt.day}, date)
		})
	}
}

func TestCalendarDate_Formatting(t *testing.T) {
	date, err := NewCalendarDate(2025, 9, 5)
	require.NoError(t, err)

	assert.Equal(t, "2025-09-05", date.String())
	assert.Equal(t, "September 05, 2025", date.Human())
}

func TestCalendarDate_Before(t *testing.T) {
	day := CalendarDate{Year: 2025, Month: time.September, Day: 5}

	assert.True(t, CalendarDate{Year: 2025, Month: time.September, Day: 4}.Before(day))
	assert.False(t, day.Before(day))
	assert.False(t, CalendarDate{Year: 2025, Month: time.September, Day: 6}.Before(day))
	assert.True(t, CalendarDate{Year: 2024, Month: time.December, Day: 31}.Before(day))
}

func TestCalendarDateOf_UsesLocationOfTime(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*60*60)
	instant := time.Date(2025, 9, 4, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, CalendarDate{Year: 2025, Month: time.September, Day: 4}, CalendarDateOf(instant))
	assert.Equal(t, CalendarDate{Year: 2025, Month: time.September, Day: 5}, CalendarDateOf(instant.In(zone)))
}
