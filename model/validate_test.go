package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalapp/vital-api/common"
)

func stringPtr(s string) *string {
	return &s
}

func TestNewAppointmentValidate(t *testing.T) {
	assert := assert.New(t)

	req := &NewAppointment{
		PatientName: " Ana ",
		DoctorName:  "Dr. X",
		Date:        "2024-03-01",
		Time:        "09:00",
		Reason:      stringPtr("   "),
	}
	assert.NoError(req.Validate())
	assert.Equal("Ana", req.PatientName, "the patient name was not trimmed")
	assert.Nil(req.Reason, "a blank reason should be stored as null")
}

func TestNewAppointmentMissingTime(t *testing.T) {
	req := &NewAppointment{PatientName: "Ana", DoctorName: "Dr. X", Date: "2024-03-01"}
	err := req.Validate()

	var validationErr common.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"time"}, validationErr.Fields)
}

func TestNewAppointmentAllMissing(t *testing.T) {
	req := &NewAppointment{DoctorName: "  "}
	err := req.Validate()

	var validationErr common.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"patient_name", "doctor_name", "date", "time"}, validationErr.Fields)
}

func TestNewAppointmentMalformed(t *testing.T) {
	req := &NewAppointment{PatientName: "Ana", DoctorName: "Dr. X", Date: "01/03/2024", Time: "09:00"}
	assert.ErrorAs(t, req.Validate(), &common.ValidationError{})

	req = &NewAppointment{PatientName: "Ana", DoctorName: "Dr. X", Date: "2024-03-01", Time: "nine"}
	assert.ErrorAs(t, req.Validate(), &common.ValidationError{})
}

func TestNewResultValidate(t *testing.T) {
	assert := assert.New(t)

	req := &NewResult{
		PatientName: "Ana",
		TestType:    "Colesterol",
		ResultDate:  "2024-01-05",
		ResultValue: "190 mg/dL",
		Notes:       stringPtr(" Ligeramente elevado "),
	}
	assert.NoError(req.Validate())
	assert.Equal("Ligeramente elevado", *req.Notes)
}

func TestNewResultMissingValue(t *testing.T) {
	req := &NewResult{PatientName: "Ana", TestType: "Colesterol", ResultDate: "2024-01-05"}
	err := req.Validate()

	var validationErr common.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"result_value"}, validationErr.Fields)
}

func TestNewNotificationDefaultType(t *testing.T) {
	assert := assert.New(t)

	req := &NewNotification{Title: "T", Message: "M"}
	assert.NoError(req.Validate())
	assert.Equal(DefaultNotificationType, req.Type)

	req = &NewNotification{Title: "T", Message: "M", Type: "alert"}
	assert.NoError(req.Validate())
	assert.Equal("alert", req.Type)
}

func TestNewNotificationMissingMessage(t *testing.T) {
	req := &NewNotification{Title: "T"}
	err := req.Validate()

	var validationErr common.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"message"}, validationErr.Fields)
}
