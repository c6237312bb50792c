package handlers

import (
	"net/http"

	"github.com/vitalapp/vital-api/model"
)

// Appointments handles requests for the appointments collection.
type Appointments struct {
	store AppointmentStore
}

// NewAppointments returns a new set of appointment handlers.
func NewAppointments(store AppointmentStore) *Appointments {
	return &Appointments{store: store}
}

// List handles GET /appointments.
func (h *Appointments) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.store.ListAppointments(r.Context())
	if err != nil {
		WriteError(w, r, err, "Error fetching appointments")
		return
	}
	writeSuccess(w, http.StatusOK, appointments, "")
}

// Create handles POST /appointments.
func (h *Appointments) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewAppointment
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, err, "Error creating appointment")
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, r, err, "Error creating appointment")
		return
	}

	appointment, err := h.store.CreateAppointment(r.Context(), &req)
	if err != nil {
		WriteError(w, r, err, "Error creating appointment")
		return
	}
	writeSuccess(w, http.StatusCreated, appointment, "Appointment created successfully")
}

// Delete handles DELETE /appointments/{id}.
func (h *Appointments) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "appointment")
	if err != nil {
		WriteError(w, r, err, "Error deleting appointment")
		return
	}

	appointment, err := h.store.DeleteAppointment(r.Context(), id)
	if err != nil {
		WriteError(w, r, err, "Error deleting appointment")
		return
	}
	writeSuccess(w, http.StatusOK, appointment, "Appointment deleted successfully")
}
