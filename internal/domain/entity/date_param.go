package entity

// DateParamKind tags the shape the date parameter arrived in
type DateParamKind int

const (
	DateParamUnknown DateParamKind = iota
	DateParamString
	DateParamStructured
)

// DateParam is the raw date parameter of a request, resolved once into one of
// its known shapes. Fields holds year/month/day exactly as received.
type DateParam struct {
	Kind   DateParamKind
	Text   string
	Fields map[string]interface{}
	Raw    interface{}
}

// NewDateParam classifies a decoded JSON value
func NewDateParam(raw interface{}) DateParam {
	switch v := raw.(type) {
	case string:
		return DateParam{Kind: DateParamString, Text: v, Raw: raw}
	case map[string]interface{}:
		return DateParam{Kind: DateParamStructured, Fields: v, Raw: raw}
	default:
		return DateParam{Kind: DateParamUnknown, Raw: raw}
	}
}
