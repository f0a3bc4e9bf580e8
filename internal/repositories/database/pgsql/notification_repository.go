package pgsql

import (
	"context"
	"fmt"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	"github.com/dekinnovations/dashboard_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func toDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		Type:           domain.NotificationType(m.Type),
		Title:          m.Title,
		Message:        m.Message,
		Read:           m.Read,
		UserID:         m.UserID,
		ClientID:       m.ClientID,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
        INSERT INTO notifications (notification_id, type, title, message, read, user_id, client_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		string(notification.Type),
		notification.Title,
		notification.Message,
		notification.Read,
		notification.UserID,
		notification.ClientID,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) FindNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT notification_id, type, title, message, read, user_id, client_id, created_at
        FROM notifications
        WHERE (user_id = $1 OR user_id IS NULL)
    `
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(&m.NotificationID, &m.Type, &m.Title, &m.Message, &m.Read, &m.UserID, &m.ClientID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, toDomainNotification(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating notification rows: %w", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE (user_id = $1 OR user_id IS NULL) AND read = FALSE;`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notifications WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
