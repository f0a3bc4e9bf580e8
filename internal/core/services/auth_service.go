package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
	"github.com/dekinnovations/dashboard_backend/internal/utils"
)

type authService struct {
	userRepo     portsrepo.UserRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewAuthService creates the authentication service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, settingsRepo: settingsRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login failed: password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Password changed", slog.String("user_id", userID))
	return nil
}

func (s *authService) EnsureAdminUser(ctx context.Context, email, password string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil // admin already present
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	adminID := uuid.NewString()
	admin := domain.User{
		UserID:       adminID,
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		// A concurrent boot may have seeded the account already.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	settings := defaultSettings(adminID, now)
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return fmt.Errorf("failed to create admin settings: %w", err)
	}

	logger.Info("Admin user seeded", slog.String("user_id", adminID), slog.String("email", email))
	return nil
}
