package entity

// AppointmentRequest is the availability search extracted from a dialogue session
type AppointmentRequest struct {
	Specialty string      `validate:"required,present"`
	City      string      `validate:"required,present"`
	Date      interface{} `validate:"required,present"`
}

// DateParam resolves the raw date value into its tagged shape
func (r *AppointmentRequest) DateParam() DateParam {
	return NewDateParam(r.Date)
}
