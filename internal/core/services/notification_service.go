package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
)

type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates the notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindNotifications(ctx, userID, unreadOnly, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}

func (s *notificationService) Notify(ctx context.Context, userID string, kind domain.NotificationType, title, message string) error {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		Type:           kind,
		Title:          title,
		Message:        message,
		CreatedAt:      time.Now(),
	}
	if userID != "" {
		notification.UserID = &userID
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.MarkNotificationRead(ctx, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllNotificationsRead(ctx, userID)
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.DeleteNotification(ctx, notificationID)
}
