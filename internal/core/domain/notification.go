package domain

import "time"

// NotificationType enumerates the events surfaced to the operator.
type NotificationType string

const (
	NotificationNewClient   NotificationType = "new_client"
	NotificationWebsiteDown NotificationType = "website_down"
	NotificationWebsiteUp   NotificationType = "website_up"
)

// Notification is an operator-facing event record.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Read           bool             `json:"read"`
	UserID         *string          `json:"userID,omitempty"`   // recipient, nil = all operators
	ClientID       *string          `json:"clientID,omitempty"` // subject client, if any
	CreatedAt      time.Time        `json:"createdAt"`
}
