package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	"github.com/dekinnovations/dashboard_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

const settingsColumns = `settings_id, user_id,
		display_name, business_name, business_email, business_phone, business_address, business_website,
		email_notifications, client_update_notifications, system_alerts, website_monitoring_alerts, monthly_report_emails,
		theme, timezone, date_format, currency, session_timeout, compact_mode,
		freshbooks_access_token, freshbooks_refresh_token, freshbooks_account_id, freshbooks_auto_sync, freshbooks_sync_frequency,
		updown_api_key, updown_auto_sync, updown_sync_frequency,
		created_at, updated_at`

func toModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		SettingsID:                d.SettingsID,
		UserID:                    d.UserID,
		DisplayName:               d.DisplayName,
		BusinessName:              d.BusinessName,
		BusinessEmail:             d.BusinessEmail,
		BusinessPhone:             d.BusinessPhone,
		BusinessAddress:           d.BusinessAddress,
		BusinessWebsite:           d.BusinessWebsite,
		EmailNotifications:        d.EmailNotifications,
		ClientUpdateNotifications: d.ClientUpdateNotifications,
		SystemAlerts:              d.SystemAlerts,
		WebsiteMonitoringAlerts:   d.WebsiteMonitoringAlerts,
		MonthlyReportEmails:       d.MonthlyReportEmails,
		Theme:                     d.Theme,
		Timezone:                  d.Timezone,
		DateFormat:                d.DateFormat,
		Currency:                  d.Currency,
		SessionTimeout:            d.SessionTimeout,
		CompactMode:               d.CompactMode,
		FreshbooksAccessToken:     d.FreshbooksAccessToken,
		FreshbooksRefreshToken:    d.FreshbooksRefreshToken,
		FreshbooksAccountID:       d.FreshbooksAccountID,
		FreshbooksAutoSync:        d.FreshbooksAutoSync,
		FreshbooksSyncFrequency:   d.FreshbooksSyncFrequency,
		UpdownAPIKey:              d.UpdownAPIKey,
		UpdownAutoSync:            d.UpdownAutoSync,
		UpdownSyncFrequency:       d.UpdownSyncFrequency,
		CreatedAt:                 d.CreatedAt,
		UpdatedAt:                 d.UpdatedAt,
	}
}

func toDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		SettingsID:                m.SettingsID,
		UserID:                    m.UserID,
		DisplayName:               m.DisplayName,
		BusinessName:              m.BusinessName,
		BusinessEmail:             m.BusinessEmail,
		BusinessPhone:             m.BusinessPhone,
		BusinessAddress:           m.BusinessAddress,
		BusinessWebsite:           m.BusinessWebsite,
		EmailNotifications:        m.EmailNotifications,
		ClientUpdateNotifications: m.ClientUpdateNotifications,
		SystemAlerts:              m.SystemAlerts,
		WebsiteMonitoringAlerts:   m.WebsiteMonitoringAlerts,
		MonthlyReportEmails:       m.MonthlyReportEmails,
		Theme:                     m.Theme,
		Timezone:                  m.Timezone,
		DateFormat:                m.DateFormat,
		Currency:                  m.Currency,
		SessionTimeout:            m.SessionTimeout,
		CompactMode:               m.CompactMode,
		FreshbooksAccessToken:     m.FreshbooksAccessToken,
		FreshbooksRefreshToken:    m.FreshbooksRefreshToken,
		FreshbooksAccountID:       m.FreshbooksAccountID,
		FreshbooksAutoSync:        m.FreshbooksAutoSync,
		FreshbooksSyncFrequency:   m.FreshbooksSyncFrequency,
		UpdownAPIKey:              m.UpdownAPIKey,
		UpdownAutoSync:            m.UpdownAutoSync,
		UpdownSyncFrequency:       m.UpdownSyncFrequency,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

func (r *PgxSettingsRepository) FindSettingsByUserID(ctx context.Context, userID string) (*domain.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE user_id = $1;`
	var m models.Settings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.SettingsID, &m.UserID,
		&m.DisplayName, &m.BusinessName, &m.BusinessEmail, &m.BusinessPhone, &m.BusinessAddress, &m.BusinessWebsite,
		&m.EmailNotifications, &m.ClientUpdateNotifications, &m.SystemAlerts, &m.WebsiteMonitoringAlerts, &m.MonthlyReportEmails,
		&m.Theme, &m.Timezone, &m.DateFormat, &m.Currency, &m.SessionTimeout, &m.CompactMode,
		&m.FreshbooksAccessToken, &m.FreshbooksRefreshToken, &m.FreshbooksAccountID, &m.FreshbooksAutoSync, &m.FreshbooksSyncFrequency,
		&m.UpdownAPIKey, &m.UpdownAutoSync, &m.UpdownSyncFrequency,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}
	d := toDomainSettings(m)
	return &d, nil
}

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	m := toModelSettings(settings)
	query := `
        INSERT INTO settings (` + settingsColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.SettingsID, m.UserID,
		m.DisplayName, m.BusinessName, m.BusinessEmail, m.BusinessPhone, m.BusinessAddress, m.BusinessWebsite,
		m.EmailNotifications, m.ClientUpdateNotifications, m.SystemAlerts, m.WebsiteMonitoringAlerts, m.MonthlyReportEmails,
		m.Theme, m.Timezone, m.DateFormat, m.Currency, m.SessionTimeout, m.CompactMode,
		m.FreshbooksAccessToken, m.FreshbooksRefreshToken, m.FreshbooksAccountID, m.FreshbooksAutoSync, m.FreshbooksSyncFrequency,
		m.UpdownAPIKey, m.UpdownAutoSync, m.UpdownSyncFrequency,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	m := toModelSettings(settings)
	query := `
        UPDATE settings SET
            display_name = $2,
            business_name = $3,
            business_email = $4,
            business_phone = $5,
            business_address = $6,
            business_website = $7,
            email_notifications = $8,
            client_update_notifications = $9,
            system_alerts = $10,
            website_monitoring_alerts = $11,
            monthly_report_emails = $12,
            theme = $13,
            timezone = $14,
            date_format = $15,
            currency = $16,
            session_timeout = $17,
            compact_mode = $18,
            freshbooks_auto_sync = $19,
            freshbooks_sync_frequency = $20,
            updown_api_key = $21,
            updown_auto_sync = $22,
            updown_sync_frequency = $23,
            updated_at = NOW()
        WHERE user_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.DisplayName, m.BusinessName, m.BusinessEmail, m.BusinessPhone, m.BusinessAddress, m.BusinessWebsite,
		m.EmailNotifications, m.ClientUpdateNotifications, m.SystemAlerts, m.WebsiteMonitoringAlerts, m.MonthlyReportEmails,
		m.Theme, m.Timezone, m.DateFormat, m.Currency, m.SessionTimeout, m.CompactMode,
		m.FreshbooksAutoSync, m.FreshbooksSyncFrequency,
		m.UpdownAPIKey, m.UpdownAutoSync, m.UpdownSyncFrequency,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings for user %s: %w", settings.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSettingsRepository) UpdateFreshbooksTokens(ctx context.Context, userID string, accessToken, refreshToken, accountID string) error {
	query := `
        UPDATE settings SET
            freshbooks_access_token = NULLIF($2, ''),
            freshbooks_refresh_token = NULLIF($3, ''),
            freshbooks_account_id = NULLIF($4, ''),
            updated_at = NOW()
        WHERE user_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, userID, accessToken, refreshToken, accountID)
	if err != nil {
		return fmt.Errorf("failed to update freshbooks tokens for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSettingsRepository) UpdateFreshbooksAccessToken(ctx context.Context, userID string, accessToken string) error {
	query := `
        UPDATE settings SET
            freshbooks_access_token = $2,
            updated_at = NOW()
        WHERE user_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, userID, accessToken)
	if err != nil {
		return fmt.Errorf("failed to update freshbooks access token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
