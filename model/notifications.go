package model

import (
	"strings"
	"time"

	"github.com/vitalapp/vital-api/common"
)

// DefaultNotificationType is the type assigned to notifications created without one.
const DefaultNotificationType = "info"

// Notification represents a single notification stored in the database.
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification represents a deserialized request to create a notification. New notifications are
// always unread.
type NewNotification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Validate normalizes the request, filling in the default type, and returns a ValidationError if the
// title or message is missing.
func (n *NewNotification) Validate() error {
	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)
	n.Type = strings.TrimSpace(n.Type)
	if n.Type == "" {
		n.Type = DefaultNotificationType
	}

	missing := missingFields(
		field{"title", n.Title},
		field{"message", n.Message},
	)
	if len(missing) > 0 {
		return common.NewMissingFieldsError(missing...)
	}

	return nil
}
