package converter

import (
	"medical-agent-webhook/config"
	"medical-agent-webhook/internal/domain/entity"

	"github.com/spf13/cast"
)

// ParamsToAppointmentRequest reads specialty, city and date out of session
// parameters. The location parameter may be a plain city name or an object
// holding the city under cfg.CityKey; a top-level city parameter is the fallback.
func ParamsToAppointmentRequest(params map[string]interface{}, cfg config.WebhookConfig) *entity.AppointmentRequest {
	if params == nil {
		return &entity.AppointmentRequest{}
	}

	return &entity.AppointmentRequest{
		Specialty: stringParam(params[cfg.SpecialtyParam]),
		City:      cityParam(params, cfg),
		Date:      params[cfg.DateParam],
	}
}

func cityParam(params map[string]interface{}, cfg config.WebhookConfig) string {
	switch location := params[cfg.LocationParam].(type) {
	case map[string]interface{}:
		return stringParam(location[cfg.CityKey])
	case nil:
		return stringParam(params[cfg.CityKey])
	default:
		return stringParam(location)
	}
}

// stringParam renders scalar values as text; objects, lists and nulls read as empty
func stringParam(v interface{}) string {
	switch v.(type) {
	case nil, map[string]interface{}, []interface{}:
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}
