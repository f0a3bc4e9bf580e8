package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
)

// SettingsSvcFacade defines operations for the per-user settings document.
type SettingsSvcFacade interface {
	// GetSettings returns the settings row for a user, creating defaults
	// on first access.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// UpdateSettings validates and persists the submitted preferences.
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.Settings, error)

	// StoreFreshbooksTokens persists a fresh token pair plus account ID.
	StoreFreshbooksTokens(ctx context.Context, userID, accessToken, refreshToken, accountID string) error

	// DisconnectFreshbooks clears stored tokens and account ID.
	DisconnectFreshbooks(ctx context.Context, userID string) error

	// ApplyStoredUpdownKey pushes the user's persisted updown API key onto
	// the running monitoring gateway.
	ApplyStoredUpdownKey(ctx context.Context, userID string) error
}
