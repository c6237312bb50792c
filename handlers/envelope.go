package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vitalapp/vital-api/common"
)

// maxBodyBytes limits the size of request bodies.
const maxBodyBytes = 1 << 20

// Envelope is the uniform wrapper for every response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WriteJSON writes a value as the JSON response body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("unable to encode the response body")
	}
}

// writeSuccess writes a successful envelope.
func writeSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	WriteJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

// StatusFor returns the HTTP status code corresponding to an error.
func StatusFor(err error) int {
	switch {
	case errors.As(err, &common.ValidationError{}):
		return http.StatusBadRequest
	case errors.As(err, &common.NotFoundError{}):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError converts an error into a failure envelope. Validation and lookup failures describe
// themselves; anything else is reported as a store failure using storeMessage.
func WriteError(w http.ResponseWriter, r *http.Request, err error, storeMessage string) {
	status := StatusFor(err)
	body := Envelope{Success: false}

	switch status {
	case http.StatusBadRequest:
		var validationErr common.ValidationError
		if errors.As(err, &validationErr) && len(validationErr.Fields) > 0 {
			body.Message = "Missing required fields"
		} else {
			body.Message = "Invalid request"
		}
		body.Error = err.Error()
	case http.StatusNotFound:
		body.Message = err.Error()
	default:
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Error(storeMessage)
		body.Message = storeMessage
		body.Error = err.Error()
	}

	WriteJSON(w, status, body)
}

// decodeBody parses the JSON request body into dest. An empty body leaves dest untouched so that
// validation can report every missing field.
func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := decoder.Decode(dest)
	if err == nil || err == io.EOF {
		return nil
	}
	return common.NewValidationError("unable to parse the request body: %s", err.Error())
}

// pathID extracts the record identifier from the request path. Anything that isn't a positive integer
// can't identify a record, so it's reported as not found.
func pathID(r *http.Request, recordType string) (int64, error) {
	value := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewNotFoundError("%s `%s` not found", recordType, value)
	}
	return id, nil
}
