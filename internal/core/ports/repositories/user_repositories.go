package repositories

import (
	"context"
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// UserReader defines read operations for user/client data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email (any role), matched
	// case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindClientByID retrieves a user that must have the CLIENT role.
	FindClientByID(ctx context.Context, userID string) (*domain.User, error)

	// FindClients retrieves all CLIENT users, optionally filtered by a
	// search query and sorted.
	FindClients(ctx context.Context, query string, sortBy string, sortDesc bool) ([]domain.User, error)
}

// UserWriter defines write operations for user/client data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the stored password hash and clears the
	// must-change-password flag.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// DeleteUser hard-deletes a user; dependent notes cascade.
	DeleteUser(ctx context.Context, userID string) error
}

// ClientActivity is one row of the dashboard's recent-activity feed.
type ClientActivity struct {
	UserID       string
	Name         string
	BusinessName *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClientStatsReader defines the aggregate reads behind the dashboard stats.
type ClientStatsReader interface {
	CountClients(ctx context.Context) (int, error)
	CountClientsUpdatedSince(ctx context.Context, since time.Time) (int, error)
	CountClientsCreatedSince(ctx context.Context, since time.Time) (int, error)

	// CountWebsiteStatuses returns counts keyed by website status for
	// clients that have a website configured. Clients whose status was
	// never recorded count as "unknown".
	CountWebsiteStatuses(ctx context.Context) (map[domain.WebsiteStatus]int, error)

	FindRecentActivity(ctx context.Context, limit int) ([]ClientActivity, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	ClientStatsReader
}
