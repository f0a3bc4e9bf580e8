package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// NotificationSvcFacade defines operations on user notifications.
type NotificationSvcFacade interface {
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
	Notify(ctx context.Context, userID string, kind domain.NotificationType, title, message string) error
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, userID, notificationID string) error
}
