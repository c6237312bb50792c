package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/vitalapp/vital-api/common"
	"github.com/vitalapp/vital-api/model"
)

// MockDatabaseClient provides an in-memory implementation of DatabaseClient for testing.
type MockDatabaseClient struct {
	appointments  map[int64]model.Appointment
	results       map[int64]model.Result
	notifications map[int64]model.Notification
	nextID        int64
	now           time.Time

	// Err, if set, is returned by every operation.
	Err error
}

// NewMockDatabaseClient creates a new, empty mock database client.
func NewMockDatabaseClient() *MockDatabaseClient {
	return &MockDatabaseClient{
		appointments:  make(map[int64]model.Appointment),
		results:       make(map[int64]model.Result),
		notifications: make(map[int64]model.Notification),
		now:           time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC),
	}
}

// next returns the next identifier and creation timestamp. Timestamps strictly increase.
func (c *MockDatabaseClient) next() (int64, time.Time) {
	c.nextID++
	c.now = c.now.Add(time.Second)
	return c.nextID, c.now
}

func (c *MockDatabaseClient) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	appointments := make([]model.Appointment, 0, len(c.appointments))
	for _, a := range c.appointments {
		appointments = append(appointments, a)
	}
	sort.Slice(appointments, func(i, j int) bool {
		a, b := appointments[i], appointments[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})
	return appointments, nil
}

func (c *MockDatabaseClient) CreateAppointment(
	ctx context.Context,
	req *model.NewAppointment,
) (*model.Appointment, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	id, now := c.next()
	a := model.Appointment{
		ID:          id,
		PatientName: req.PatientName,
		DoctorName:  req.DoctorName,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
		CreatedAt:   now,
	}
	c.appointments[id] = a
	return &a, nil
}

func (c *MockDatabaseClient) DeleteAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	a, ok := c.appointments[id]
	if !ok {
		return nil, common.NewNotFoundError("appointment %d not found", id)
	}
	delete(c.appointments, id)
	return &a, nil
}

func (c *MockDatabaseClient) ListResults(ctx context.Context) ([]model.Result, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	results := make([]model.Result, 0, len(c.results))
	for _, r := range c.results {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].ResultDate != results[j].ResultDate {
			return results[i].ResultDate > results[j].ResultDate
		}
		return results[i].ID > results[j].ID
	})
	return results, nil
}

func (c *MockDatabaseClient) CreateResult(ctx context.Context, req *model.NewResult) (*model.Result, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	id, now := c.next()
	r := model.Result{
		ID:          id,
		PatientName: req.PatientName,
		TestType:    req.TestType,
		ResultDate:  req.ResultDate,
		ResultValue: req.ResultValue,
		Notes:       req.Notes,
		CreatedAt:   now,
	}
	c.results[id] = r
	return &r, nil
}

func (c *MockDatabaseClient) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	notifications := make([]model.Notification, 0, len(c.notifications))
	for _, n := range c.notifications {
		notifications = append(notifications, n)
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (c *MockDatabaseClient) CreateNotification(
	ctx context.Context,
	req *model.NewNotification,
) (*model.Notification, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	id, now := c.next()
	n := model.Notification{
		ID:        id,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Read:      false,
		CreatedAt: now,
	}
	c.notifications[id] = n
	return &n, nil
}

func (c *MockDatabaseClient) MarkNotificationRead(ctx context.Context, id int64) (*model.Notification, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	n, ok := c.notifications[id]
	if !ok {
		return nil, common.NewNotFoundError("notification %d not found", id)
	}
	n.Read = true
	c.notifications[id] = n
	return &n, nil
}

func (c *MockDatabaseClient) DeleteNotification(ctx context.Context, id int64) (*model.Notification, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	n, ok := c.notifications[id]
	if !ok {
		return nil, common.NewNotFoundError("notification %d not found", id)
	}
	delete(c.notifications, id)
	return &n, nil
}

// response is a decoded envelope whose data is left raw for the individual tests to decode.
type response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// serve sends a request to a handler function, setting the path variables, and decodes the envelope.
func serve(
	t *testing.T,
	handler http.HandlerFunc,
	method, path string,
	body interface{},
	vars map[string]string,
) (int, response) {
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body), "unable to encode the request body")
	}

	req := httptest.NewRequest(method, path, &reqBody)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	recorder := httptest.NewRecorder()
	handler(recorder, req)

	var resp response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp), "unable to decode the response body")
	return recorder.Code, resp
}

func decodeData(t *testing.T, resp response, dest interface{}) {
	require.NoError(t, json.Unmarshal(resp.Data, dest), "unable to decode the response data")
}
