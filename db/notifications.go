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

var notificationColumns = []string{
	"id",
	"title",
	"message",
	"type",
	"read",
	"created_at",
}

func scanNotification(row sq.RowScanner) (*model.Notification, error) {
	var n model.Notification
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListNotifications returns all notifications, newest first.
func ListNotifications(ctx context.Context, db DatabaseAccessor) ([]model.Notification, error) {
	wrapMsg := "unable to list notifications"

	// Build the query.
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(notificationColumns...).
		From("notifications").
		OrderBy("created_at DESC", "id DESC").
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

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, common.WrapStoreError(err, wrapMsg)
		}
		notifications = append(notifications, *notification)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return notifications, nil
}

// CreateNotification inserts a validated notification request. The notification is always stored as
// unread.
func CreateNotification(
	ctx context.Context,
	db DatabaseAccessor,
	req *model.NewNotification,
) (*model.Notification, error) {
	wrapMsg := "unable to create notification"

	// Build the statement.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("notifications").
		Columns("title", "message", "type", "read").
		Values(req.Title, req.Message, req.Type, false).
		Suffix(returning(notificationColumns)).
		ToSql()
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	// Execute the statement.
	notification, err := scanNotification(db.QueryRowContext(ctx, statement, args...))
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return notification, nil
}

// MarkNotificationRead sets the read flag on a notification. The update is unconditional, so marking
// a notification that has already been read succeeds and returns it unchanged.
func MarkNotificationRead(ctx context.Context, db DatabaseAccessor, id int64) (*model.Notification, error) {
	wrapMsg := fmt.Sprintf("unable to mark notification %d as read", id)

	// Build the statement.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Update("notifications").
		Set("read", true).
		Where(sq.Eq{"id": id}).
		Suffix(returning(notificationColumns)).
		ToSql()
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	// Execute the statement.
	notification, err := scanNotification(db.QueryRowContext(ctx, statement, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewNotFoundError("notification %d not found", id)
	}
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return notification, nil
}

// DeleteNotification removes the notification with the given ID and returns it.
func DeleteNotification(ctx context.Context, db DatabaseAccessor, id int64) (*model.Notification, error) {
	wrapMsg := fmt.Sprintf("unable to delete notification %d", id)

	// Build the statement.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Delete("notifications").
		Where(sq.Eq{"id": id}).
		Suffix(returning(notificationColumns)).
		ToSql()
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	// Execute the statement.
	notification, err := scanNotification(db.QueryRowContext(ctx, statement, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewNotFoundError("notification %d not found", id)
	}
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return notification, nil
}

// ListNotifications returns all notifications, newest first.
func (s *Store) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	return ListNotifications(ctx, s.db)
}

// CreateNotification stores a new notification.
func (s *Store) CreateNotification(ctx context.Context, req *model.NewNotification) (*model.Notification, error) {
	return CreateNotification(ctx, s.db, req)
}

// MarkNotificationRead marks a notification as read.
func (s *Store) MarkNotificationRead(ctx context.Context, id int64) (*model.Notification, error) {
	return MarkNotificationRead(ctx, s.db, id)
}

// DeleteNotification removes a notification.
func (s *Store) DeleteNotification(ctx context.Context, id int64) (*model.Notification, error) {
	return DeleteNotification(ctx, s.db, id)
}
