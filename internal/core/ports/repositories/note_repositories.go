package repositories

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// NoteRepositoryFacade defines persistence operations for client notes.
type NoteRepositoryFacade interface {
	// FindNoteByID retrieves a single note.
	FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error)

	// FindNotesByClient retrieves a client's notes, newest first.
	FindNotesByClient(ctx context.Context, clientID string) ([]domain.Note, error)

	// SaveNote persists a new note.
	SaveNote(ctx context.Context, note domain.Note) error

	// UpdateNote replaces a note's content.
	UpdateNote(ctx context.Context, note domain.Note) error

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, noteID string) error
}

// NotificationRepositoryFacade defines persistence operations for operator
// notifications.
type NotificationRepositoryFacade interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// FindNotifications retrieves recent notifications for a recipient,
	// newest first. Rows with a NULL user_id are visible to everyone.
	FindNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]domain.Notification, error)

	// MarkNotificationRead flags a notification as read.
	MarkNotificationRead(ctx context.Context, notificationID string) error

	// MarkAllNotificationsRead flags every notification visible to the
	// recipient as read.
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, notificationID string) error
}
