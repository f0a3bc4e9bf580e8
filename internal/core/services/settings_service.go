package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
)

// Accepted values for the constrained preference fields. Anything else is
// rejected as a validation error.
var (
	validThemes = map[string]bool{
		"light":  true,
		"dark":   true,
		"system": true,
	}
	validDateFormats = map[string]bool{
		"MM/dd/yyyy": true,
		"dd/MM/yyyy": true,
		"yyyy-MM-dd": true,
	}
	validCurrencies = map[string]bool{
		"USD": true,
		"EUR": true,
		"GBP": true,
		"CAD": true,
		"AUD": true,
	}
	validSyncFrequencies = map[string]bool{
		"hourly": true,
		"daily":  true,
		"weekly": true,
	}
)

type settingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
	updownGw     portssvc.UpdownGateway
}

// NewSettingsService creates the settings service. updownGw may be nil when
// no monitoring gateway is wired; stored updown keys then stay inert.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, updownGw portssvc.UpdownGateway) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo, updownGw: updownGw}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// defaultSettings builds the row created on first access.
func defaultSettings(userID string, now time.Time) domain.Settings {
	return domain.Settings{
		SettingsID:                uuid.NewString(),
		UserID:                    userID,
		EmailNotifications:        true,
		ClientUpdateNotifications: true,
		SystemAlerts:              true,
		WebsiteMonitoringAlerts:   true,
		Theme:                     "system",
		Timezone:                  "America/New_York",
		DateFormat:                "MM/dd/yyyy",
		Currency:                  "USD",
		SessionTimeout:            60,
		FreshbooksSyncFrequency:   "daily",
		UpdownSyncFrequency:       "daily",
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
}

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettingsByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// First access: create the defaults row.
	created := defaultSettings(userID, time.Now())
	if err := s.settingsRepo.SaveSettings(ctx, created); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.settingsRepo.FindSettingsByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return &created, nil
}

func validateSettingsRequest(req dto.UpdateSettingsRequest) error {
	if !validThemes[req.Theme] {
		return apperrors.NewBadRequestError(fmt.Sprintf("invalid theme: %s", req.Theme))
	}
	if !validDateFormats[req.DateFormat] {
		return apperrors.NewBadRequestError(fmt.Sprintf("invalid date format: %s", req.DateFormat))
	}
	if !validCurrencies[req.Currency] {
		return apperrors.NewBadRequestError(fmt.Sprintf("invalid currency: %s", req.Currency))
	}
	if req.FreshbooksSyncFrequency != "" && !validSyncFrequencies[req.FreshbooksSyncFrequency] {
		return apperrors.NewBadRequestError(fmt.Sprintf("invalid sync frequency: %s", req.FreshbooksSyncFrequency))
	}
	if req.UpdownSyncFrequency != "" && !validSyncFrequencies[req.UpdownSyncFrequency] {
		return apperrors.NewBadRequestError(fmt.Sprintf("invalid sync frequency: %s", req.UpdownSyncFrequency))
	}
	return nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	if err := validateSettingsRequest(req); err != nil {
		return nil, err
	}

	current, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.DisplayName = req.DisplayName
	updated.BusinessName = req.BusinessName
	updated.BusinessEmail = req.BusinessEmail
	updated.BusinessPhone = req.BusinessPhone
	updated.BusinessAddress = req.BusinessAddress
	updated.BusinessWebsite = req.BusinessWebsite
	updated.EmailNotifications = req.EmailNotifications
	updated.ClientUpdateNotifications = req.ClientUpdateNotifications
	updated.SystemAlerts = req.SystemAlerts
	updated.WebsiteMonitoringAlerts = req.WebsiteMonitoringAlerts
	updated.MonthlyReportEmails = req.MonthlyReportEmails
	updated.Theme = req.Theme
	updated.Timezone = req.Timezone
	updated.DateFormat = req.DateFormat
	updated.Currency = req.Currency
	updated.SessionTimeout = req.SessionTimeout
	updated.CompactMode = req.CompactMode
	updated.FreshbooksAutoSync = req.FreshbooksAutoSync
	if req.FreshbooksSyncFrequency != "" {
		updated.FreshbooksSyncFrequency = req.FreshbooksSyncFrequency
	}
	updated.UpdownAutoSync = req.UpdownAutoSync
	if req.UpdownSyncFrequency != "" {
		updated.UpdownSyncFrequency = req.UpdownSyncFrequency
	}
	// An omitted key keeps the stored one; an empty string clears it.
	if req.UpdownAPIKey != nil {
		if *req.UpdownAPIKey == "" {
			updated.UpdownAPIKey = nil
		} else {
			updated.UpdownAPIKey = req.UpdownAPIKey
		}
	}

	if err := s.settingsRepo.UpdateSettings(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	// A persisted key change takes effect on the running gateway too.
	if req.UpdownAPIKey != nil && s.updownGw != nil {
		s.updownGw.SetAPIKey(*req.UpdownAPIKey)
	}

	updated.UpdatedAt = time.Now()
	return &updated, nil
}

// ApplyStoredUpdownKey pushes the operator's persisted updown key onto the
// running gateway. Called once at boot so a key saved through settings
// survives restarts.
func (s *settingsService) ApplyStoredUpdownKey(ctx context.Context, userID string) error {
	if s.updownGw == nil {
		return nil
	}
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return err
	}
	if settings.UpdownAPIKey != nil && *settings.UpdownAPIKey != "" {
		s.updownGw.SetAPIKey(*settings.UpdownAPIKey)
	}
	return nil
}

func (s *settingsService) StoreFreshbooksTokens(ctx context.Context, userID, accessToken, refreshToken, accountID string) error {
	// Make sure the settings row exists before the token update targets it.
	if _, err := s.GetSettings(ctx, userID); err != nil {
		return err
	}
	if err := s.settingsRepo.UpdateFreshbooksTokens(ctx, userID, accessToken, refreshToken, accountID); err != nil {
		return fmt.Errorf("failed to store freshbooks tokens: %w", err)
	}
	return nil
}

func (s *settingsService) DisconnectFreshbooks(ctx context.Context, userID string) error {
	if err := s.settingsRepo.UpdateFreshbooksTokens(ctx, userID, "", "", ""); err != nil {
		return fmt.Errorf("failed to clear freshbooks tokens: %w", err)
	}
	return nil
}
