package models

import "time"

// Settings is the persisted per-operator settings row, one-to-one with the
// operator's user record.
type Settings struct {
	SettingsID string `db:"settings_id"`
	UserID     string `db:"user_id"`

	DisplayName     *string `db:"display_name"`
	BusinessName    *string `db:"business_name"`
	BusinessEmail   *string `db:"business_email"`
	BusinessPhone   *string `db:"business_phone"`
	BusinessAddress *string `db:"business_address"`
	BusinessWebsite *string `db:"business_website"`

	EmailNotifications        bool `db:"email_notifications"`
	ClientUpdateNotifications bool `db:"client_update_notifications"`
	SystemAlerts              bool `db:"system_alerts"`
	WebsiteMonitoringAlerts   bool `db:"website_monitoring_alerts"`
	MonthlyReportEmails       bool `db:"monthly_report_emails"`

	Theme          string `db:"theme"`
	Timezone       string `db:"timezone"`
	DateFormat     string `db:"date_format"`
	Currency       string `db:"currency"`
	SessionTimeout int    `db:"session_timeout"`
	CompactMode    bool   `db:"compact_mode"`

	FreshbooksAccessToken   *string `db:"freshbooks_access_token"`
	FreshbooksRefreshToken  *string `db:"freshbooks_refresh_token"`
	FreshbooksAccountID     *string `db:"freshbooks_account_id"`
	FreshbooksAutoSync      bool    `db:"freshbooks_auto_sync"`
	FreshbooksSyncFrequency string  `db:"freshbooks_sync_frequency"`

	UpdownAPIKey        *string `db:"updown_api_key"`
	UpdownAutoSync      bool    `db:"updown_auto_sync"`
	UpdownSyncFrequency string  `db:"updown_sync_frequency"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Note is a persisted client annotation.
type Note struct {
	NoteID    string    `db:"note_id"`
	UserID    string    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Notification is a persisted operator-facing event.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	Type           string    `db:"type"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	Read           bool      `db:"read"`
	UserID         *string   `db:"user_id"`
	ClientID       *string   `db:"client_id"`
	CreatedAt      time.Time `db:"created_at"`
}
