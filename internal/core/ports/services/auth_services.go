package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// AuthSvcFacade defines operator authentication operations.
type AuthSvcFacade interface {
	// AuthenticateUser verifies email+password and returns the user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// ChangePassword rotates a user's password after verifying the current
	// one, clearing the must-change-password flag.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error

	// EnsureAdminUser creates the bootstrap operator account if no user
	// with the given email exists. Idempotent.
	EnsureAdminUser(ctx context.Context, email, password string) error
}
