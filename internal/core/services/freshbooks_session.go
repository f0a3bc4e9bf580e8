package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
	"github.com/dekinnovations/dashboard_backend/internal/platform/freshbooks"
)

// fbSession wraps one user's authenticated FreshBooks access. It installs the
// stored access token on the gateway and transparently refreshes it once when
// the provider rejects a call with 401.
type fbSession struct {
	gateway      portssvc.FreshbooksGateway
	settingsRepo portsrepo.SettingsRepositoryFacade

	userID       string
	accountID    string
	refreshToken string
	refreshed    bool
}

// openFreshbooksSession loads the user's stored connection and prepares the
// gateway. Returns ErrNotConfigured when app credentials are missing and
// ErrNotFound-wrapping errors bubble from the settings lookup.
func openFreshbooksSession(ctx context.Context, gateway portssvc.FreshbooksGateway, settingsRepo portsrepo.SettingsRepositoryFacade, userID string) (*fbSession, error) {
	if !gateway.IsConfigured() {
		return nil, apperrors.ErrNotConfigured
	}

	settings, err := settingsRepo.FindSettingsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for freshbooks session: %w", err)
	}
	if !settings.FreshbooksConnected() {
		return nil, apperrors.ErrNotConfigured
	}

	session := &fbSession{
		gateway:      gateway,
		settingsRepo: settingsRepo,
		userID:       userID,
		accountID:    *settings.FreshbooksAccountID,
	}
	if settings.FreshbooksRefreshToken != nil {
		session.refreshToken = *settings.FreshbooksRefreshToken
	}

	gateway.SetAccessToken(*settings.FreshbooksAccessToken)
	return session, nil
}

// do runs fn against the gateway. On the first 401 it refreshes the access
// token, persists it, and retries exactly once. A second 401 surfaces as
// ErrAuthExpired so callers can prompt for reconnection.
func (s *fbSession) do(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || !freshbooks.IsAuthError(err) {
		return err
	}

	if s.refreshed || s.refreshToken == "" {
		return apperrors.ErrAuthExpired
	}
	s.refreshed = true

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("FreshBooks access token rejected, refreshing", slog.String("user_id", s.userID))

	pair, refreshErr := s.gateway.RefreshToken(ctx, s.refreshToken)
	if refreshErr != nil {
		logger.Warn("FreshBooks token refresh failed", slog.String("error", refreshErr.Error()))
		return apperrors.ErrAuthExpired
	}

	// Persist before retrying so no later session observes the stale token.
	if pair.RefreshToken != "" && pair.RefreshToken != s.refreshToken {
		if err := s.settingsRepo.UpdateFreshbooksTokens(ctx, s.userID, pair.AccessToken, pair.RefreshToken, s.accountID); err != nil {
			return fmt.Errorf("failed to persist refreshed tokens: %w", err)
		}
		s.refreshToken = pair.RefreshToken
	} else {
		if err := s.settingsRepo.UpdateFreshbooksAccessToken(ctx, s.userID, pair.AccessToken); err != nil {
			return fmt.Errorf("failed to persist refreshed access token: %w", err)
		}
	}
	s.gateway.SetAccessToken(pair.AccessToken)

	if err := fn(); err != nil {
		if freshbooks.IsAuthError(err) {
			return apperrors.ErrAuthExpired
		}
		return err
	}
	return nil
}
