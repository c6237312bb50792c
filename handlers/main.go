package handlers

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vitalapp/vital-api/model"
)

var log = logrus.WithField("package", "handlers")

// AppointmentStore describes the database operations used by the appointment handlers.
type AppointmentStore interface {
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, req *model.NewAppointment) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) (*model.Appointment, error)
}

// ResultStore describes the database operations used by the result handlers.
type ResultStore interface {
	ListResults(ctx context.Context) ([]model.Result, error)
	CreateResult(ctx context.Context, req *model.NewResult) (*model.Result, error)
}

// NotificationStore describes the database operations used by the notification handlers.
type NotificationStore interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	CreateNotification(ctx context.Context, req *model.NewNotification) (*model.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) (*model.Notification, error)
	DeleteNotification(ctx context.Context, id int64) (*model.Notification, error)
}

// DatabaseClient describes everything the handlers need from the database.
type DatabaseClient interface {
	AppointmentStore
	ResultStore
	NotificationStore
}
