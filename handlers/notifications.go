package handlers

import (
	"net/http"

	"github.com/vitalapp/vital-api/model"
)

// Notifications handles requests for the notifications collection.
type Notifications struct {
	store NotificationStore
}

// NewNotifications returns a new set of notification handlers.
func NewNotifications(store NotificationStore) *Notifications {
	return &Notifications{store: store}
}

// List handles GET /notifications.
func (h *Notifications) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.store.ListNotifications(r.Context())
	if err != nil {
		WriteError(w, r, err, "Error fetching notifications")
		return
	}
	writeSuccess(w, http.StatusOK, notifications, "")
}

// Create handles POST /notifications.
func (h *Notifications) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewNotification
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, err, "Error creating notification")
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, r, err, "Error creating notification")
		return
	}

	notification, err := h.store.CreateNotification(r.Context(), &req)
	if err != nil {
		WriteError(w, r, err, "Error creating notification")
		return
	}
	writeSuccess(w, http.StatusCreated, notification, "Notification created successfully")
}

// MarkRead handles PATCH /notifications/{id}. Marking a notification that has already been read
// succeeds.
func (h *Notifications) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "notification")
	if err != nil {
		WriteError(w, r, err, "Error updating notification")
		return
	}

	notification, err := h.store.MarkNotificationRead(r.Context(), id)
	if err != nil {
		WriteError(w, r, err, "Error updating notification")
		return
	}
	writeSuccess(w, http.StatusOK, notification, "Notification marked as read")
}

// Delete handles DELETE /notifications/{id}.
func (h *Notifications) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "notification")
	if err != nil {
		WriteError(w, r, err, "Error deleting notification")
		return
	}

	notification, err := h.store.DeleteNotification(r.Context(), id)
	if err != nil {
		WriteError(w, r, err, "Error deleting notification")
		return
	}
	writeSuccess(w, http.StatusOK, notification, "Notification deleted successfully")
}
