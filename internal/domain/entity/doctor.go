package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Doctor represents a directory entry with per-date availability
type Doctor struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	Specialty    string       `gorm:"type:varchar(100);not null;index" json:"specialty"`
	City         string       `gorm:"type:varchar(100);not null;index" json:"city"`
	Availability Availability `gorm:"type:jsonb" json:"availability"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// SlotsOn returns the time slots listed for the given day, nil when there are none
func (d *Doctor) SlotsOn(date CalendarDate) []string {
	if d.Availability == nil {
		return nil
	}
	return d.Availability[date.String()]
}

// Availability maps an ISO calendar date (YYYY-MM-DD) to its ordered time slots
type Availability map[string][]string

// Value returns json value, implement driver.Valuer interface
func (a Availability) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan scan value into Availability, implements sql.Scanner interface
func (a *Availability) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal availability value:", value))
	}

	result := Availability{}
	err := json.Unmarshal(bytes, &result)
	*a = result
	return err
}

// AvailabilityMatch is a doctor with open slots on the requested day
type AvailabilityMatch struct {
	DoctorName string
	Slots      []string
}
