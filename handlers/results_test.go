package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalapp/vital-api/model"
)

func validResult(date string) map[string]interface{} {
	return map[string]interface{}{
		"patient_name": "Juan Pérez",
		"test_type":    "Análisis de Sangre",
		"result_date":  date,
		"result_value": "Normal",
	}
}

func TestCreateResult(t *testing.T) {
	assert := assert.New(t)

	handler := NewResults(NewMockDatabaseClient())

	req := validResult("2024-01-10")
	req["notes"] = "Todos los valores dentro del rango"
	status, resp := serve(t, handler.Create, http.MethodPost, "/results", req, nil)
	assert.Equal(http.StatusCreated, status)
	assert.Equal("Result created successfully", resp.Message)

	var created model.Result
	decodeData(t, resp, &created)
	assert.Positive(created.ID)
	require.NotNil(t, created.Notes)
	assert.Equal("Todos los valores dentro del rango", *created.Notes)
}

func TestCreateResultMissingFields(t *testing.T) {
	databaseClient := NewMockDatabaseClient()
	handler := NewResults(databaseClient)

	req := validResult("2024-01-10")
	req["result_value"] = "  "
	status, resp := serve(t, handler.Create, http.MethodPost, "/results", req, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "missing required fields: result_value", resp.Error)
	assert.Empty(t, databaseClient.results)
}

func TestListResultsNewestFirst(t *testing.T) {
	handler := NewResults(NewMockDatabaseClient())

	for _, date := range []string{"2024-01-05", "2024-01-10", "2024-01-08"} {
		status, _ := serve(t, handler.Create, http.MethodPost, "/results", validResult(date), nil)
		require.Equal(t, http.StatusCreated, status)
	}

	status, resp := serve(t, handler.List, http.MethodGet, "/results", nil, nil)
	assert.Equal(t, http.StatusOK, status)

	var listed []model.Result
	decodeData(t, resp, &listed)
	require.Len(t, listed, 3)
	assert.Equal(t, "2024-01-10", listed[0].ResultDate)
	assert.Equal(t, "2024-01-08", listed[1].ResultDate)
	assert.Equal(t, "2024-01-05", listed[2].ResultDate)
}
