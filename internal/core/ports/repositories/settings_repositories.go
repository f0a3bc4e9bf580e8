package repositories

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// SettingsReader defines read operations for operator settings.
type SettingsReader interface {
	// FindSettingsByUserID retrieves the settings row for an operator.
	FindSettingsByUserID(ctx context.Context, userID string) (*domain.Settings, error)
}

// SettingsWriter defines write operations for operator settings.
type SettingsWriter interface {
	// SaveSettings persists a new settings row.
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// UpdateSettings updates an existing settings row in full.
	UpdateSettings(ctx context.Context, settings domain.Settings) error

	// UpdateFreshbooksTokens stores a fresh token pair and account id after
	// a completed OAuth exchange.
	UpdateFreshbooksTokens(ctx context.Context, userID string, accessToken, refreshToken, accountID string) error

	// UpdateFreshbooksAccessToken replaces only the access token, used by
	// the mid-operation refresh flow. The write lands before any retried
	// read so no caller observes the stale token.
	UpdateFreshbooksAccessToken(ctx context.Context, userID string, accessToken string) error
}

// SettingsRepositoryFacade combines all settings repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
