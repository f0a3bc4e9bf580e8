package dto

import (
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit int `form:"limit,default=10"`
}

// MarkNotificationReadRequest identifies the notification to flag.
type MarkNotificationReadRequest struct {
	NotificationID string `json:"notificationID" binding:"required"`
}

// NotificationResponse is the outward shape of a notification.
type NotificationResponse struct {
	NotificationID string    `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	ClientID       *string   `json:"clientID,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponses converts a slice of domain notifications.
func ToNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			Type:           string(n.Type),
			Title:          n.Title,
			Message:        n.Message,
			Read:           n.Read,
			ClientID:       n.ClientID,
			CreatedAt:      n.CreatedAt,
		}
	}
	return out
}
