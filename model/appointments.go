package model

import (
	"strings"
	"time"

	"github.com/vitalapp/vital-api/common"
)

// Appointment represents a single medical appointment stored in the database.
type Appointment struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Reason      *string   `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAppointment represents a deserialized request to create an appointment.
type NewAppointment struct {
	PatientName string  `json:"patient_name"`
	DoctorName  string  `json:"doctor_name"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Reason      *string `json:"reason"`
}

// Validate normalizes the request and returns a ValidationError if any required field is missing or
// if the date or time can't be parsed.
func (a *NewAppointment) Validate() error {
	a.PatientName = strings.TrimSpace(a.PatientName)
	a.DoctorName = strings.TrimSpace(a.DoctorName)
	a.Date = strings.TrimSpace(a.Date)
	a.Time = strings.TrimSpace(a.Time)
	a.Reason = optional(a.Reason)

	missing := missingFields(
		field{"patient_name", a.PatientName},
		field{"doctor_name", a.DoctorName},
		field{"date", a.Date},
		field{"time", a.Time},
	)
	if len(missing) > 0 {
		return common.NewMissingFieldsError(missing...)
	}

	if _, err := common.ParseDate(a.Date); err != nil {
		return common.NewValidationError("invalid date `%s`: expected YYYY-MM-DD", a.Date)
	}
	if _, err := common.ParseTimeOfDay(a.Time); err != nil {
		return common.NewValidationError("invalid time `%s`: expected HH:MM", a.Time)
	}

	return nil
}
