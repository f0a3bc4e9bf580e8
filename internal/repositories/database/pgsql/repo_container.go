package pgsql

import (
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		NoteRepo:         newPgxNoteRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
