package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"medical-agent-webhook/internal/domain/entity"

	"github.com/spf13/cast"
)

// ErrMalformedDate is returned when a date parameter cannot be read as a calendar day
var ErrMalformedDate = errors.New("malformed date")

var dateFieldKeys = [3]string{"year", "month", "day"}

// NormalizeDate converts a date parameter into a calendar day.
//
// A string is cut at the first "T" and the remainder must be YYYY-MM-DD.
// A structured value must carry numeric year, month and day fields that
// together form a real calendar date. Anything else is malformed.
func NormalizeDate(param entity.DateParam) (entity.CalendarDate, error) {
	switch param.Kind {
	case entity.DateParamString:
		return parseISODate(param.Text)
	case entity.DateParamStructured:
		return dateFromFields(param.Fields)
	default:
		return entity.CalendarDate{}, fmt.Errorf("%w: unsupported value of type %T", ErrMalformedDate, param.Raw)
	}
}

func parseISODate(text string) (entity.CalendarDate, error) {
	datePart, _, _ := strings.Cut(text, "T")

	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return entity.CalendarDate{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}

	date, err := entity.NewCalendarDate(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return entity.CalendarDate{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}
	return date, nil
}

func dateFromFields(fields map[string]interface{}) (entity.CalendarDate, error) {
	var parts [3]int
	for i, key := range dateFieldKeys {
		raw, ok := fields[key]
		if !ok || raw == nil {
			return entity.CalendarDate{}, fmt.Errorf("%w: missing %s", ErrMalformedDate, key)
		}

		n, err := toInt(raw)
		if err != nil {
			return entity.CalendarDate{}, fmt.Errorf("%w: %s: %v", ErrMalformedDate, key, err)
		}
		parts[i] = n
	}

	date, err := entity.NewCalendarDate(parts[0], parts[1], parts[2])
	if err != nil {
		return entity.CalendarDate{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}
	return date, nil
}

// toInt coerces a decoded JSON value to an int. Fractional numbers are
// truncated; numeric strings must hold a whole number.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case bool:
		return 0, fmt.Errorf("non-numeric value %v", n)
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return cast.ToIntE(v)
	}
}
