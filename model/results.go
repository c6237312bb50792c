package model

import (
	"strings"
	"time"

	"github.com/vitalapp/vital-api/common"
)

// Result represents a single medical test result. Results are never updated once recorded.
type Result struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patient_name"`
	TestType    string    `json:"test_type"`
	ResultDate  string    `json:"result_date"`
	ResultValue string    `json:"result_value"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewResult represents a deserialized request to record a result.
type NewResult struct {
	PatientName string  `json:"patient_name"`
	TestType    string  `json:"test_type"`
	ResultDate  string  `json:"result_date"`
	ResultValue string  `json:"result_value"`
	Notes       *string `json:"notes"`
}

// Validate normalizes the request and returns a ValidationError if it can't be stored.
func (r *NewResult) Validate() error {
	r.PatientName = strings.TrimSpace(r.PatientName)
	r.TestType = strings.TrimSpace(r.TestType)
	r.ResultDate = strings.TrimSpace(r.ResultDate)
	r.ResultValue = strings.TrimSpace(r.ResultValue)
	r.Notes = optional(r.Notes)

	missing := missingFields(
		field{"patient_name", r.PatientName},
		field{"test_type", r.TestType},
		field{"result_date", r.ResultDate},
		field{"result_value", r.ResultValue},
	)
	if len(missing) > 0 {
		return common.NewMissingFieldsError(missing...)
	}

	if _, err := common.ParseDate(r.ResultDate); err != nil {
		return common.NewValidationError("invalid result_date `%s`: expected YYYY-MM-DD", r.ResultDate)
	}

	return nil
}
