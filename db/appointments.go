package db

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vitalapp/vital-api/common"
	"github.com/vitalapp/vital-api/model"
)

// appointmentColumns lists the columns returned for every appointment, in scan order.
var appointmentColumns = []string{
	"id",
	"patient_name",
	"doctor_name",
	`to_char("date", 'YYYY-MM-DD')`,
	`"time"::text`,
	"reason",
	"created_at",
}

func scanAppointment(row sq.RowScanner) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(&a.ID, &a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.Reason, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAppointments returns all appointments ordered by date and time.
func ListAppointments(ctx context.Context, db DatabaseAccessor) ([]model.Appointment, error) {
	wrapMsg := "unable to list appointments"

	// Build the query.
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(appointmentColumns...).
		From("appointments").
		OrderBy(`"date"`, `"time"`, "id").
		ToSql()
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	// Query the database.
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}
	defer rows.Close()

	appointments := make([]model.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, common.WrapStoreError(err, wrapMsg)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return appointments, nil
}

// CreateAppointment inserts a validated appointment request and returns the stored appointment.
func CreateAppointment(ctx context.Context, db DatabaseAccessor, req *model.NewAppointment) (*model.Appointment, error) {
	wrapMsg := "unable to create appointment"

	// Build the statement.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("appointments").
		Columns("patient_name", "doctor_name", "date", "time", "reason").
		Values(req.PatientName, req.DoctorName, req.Date, req.Time, req.Reason).
		Suffix(returning(appointmentColumns)).
		ToSql()
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	// Execute the statement, scanning the stored row.
	appointment, err := scanAppointment(db.QueryRowContext(ctx, statement, args...))
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return appointment, nil
}

// DeleteAppointment removes the appointment with the given ID and returns it. A NotFoundError is
// returned if no such appointment exists.
func DeleteAppointment(ctx context.Context, db DatabaseAccessor, id int64) (*model.Appointment, error) {
	wrapMsg := fmt.Sprintf("unable to delete appointment %d", id)

	// Build the statement.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Delete("appointments").
		Where(sq.Eq{"id": id}).
		Suffix(returning(appointmentColumns)).
		ToSql()
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	// Execute the statement.
	appointment, err := scanAppointment(db.QueryRowContext(ctx, statement, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewNotFoundError("appointment %d not found", id)
	}
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return appointment, nil
}

// ListAppointments returns all appointments ordered by date and time.
func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return ListAppointments(ctx, s.db)
}

// CreateAppointment stores a new appointment.
func (s *Store) CreateAppointment(ctx context.Context, req *model.NewAppointment) (*model.Appointment, error) {
	return CreateAppointment(ctx, s.db, req)
}

// DeleteAppointment removes an appointment.
func (s *Store) DeleteAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	return DeleteAppointment(ctx, s.db, id)
}
