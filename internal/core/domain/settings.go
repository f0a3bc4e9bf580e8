package domain

import "time"

// Settings is the single-row-per-operator record holding business profile,
// notification preferences, UI preferences, and third-party integration
// credentials (FreshBooks OAuth tokens, updown.io API key).
type Settings struct {
	SettingsID string `json:"settingsID"`
	UserID     string `json:"userID"`

	DisplayName     *string `json:"displayName,omitempty"`
	BusinessName    *string `json:"businessName,omitempty"`
	BusinessEmail   *string `json:"businessEmail,omitempty"`
	BusinessPhone   *string `json:"businessPhone,omitempty"`
	BusinessAddress *string `json:"businessAddress,omitempty"`
	BusinessWebsite *string `json:"businessWebsite,omitempty"`

	EmailNotifications        bool `json:"emailNotifications"`
	ClientUpdateNotifications bool `json:"clientUpdateNotifications"`
	SystemAlerts              bool `json:"systemAlerts"`
	WebsiteMonitoringAlerts   bool `json:"websiteMonitoringAlerts"`
	MonthlyReportEmails       bool `json:"monthlyReportEmails"`

	Theme          string `json:"theme"`
	Timezone       string `json:"timezone"`
	DateFormat     string `json:"dateFormat"`
	Currency       string `json:"currency"`
	SessionTimeout int    `json:"sessionTimeout"`
	CompactMode    bool   `json:"compactMode"`

	// FreshBooks OAuth state. The access token is always used together with
	// the account id; if either is absent the integration is not configured.
	FreshbooksAccessToken   *string `json:"-"`
	FreshbooksRefreshToken  *string `json:"-"`
	FreshbooksAccountID     *string `json:"freshbooksAccountID,omitempty"`
	FreshbooksAutoSync      bool    `json:"freshbooksAutoSync"`
	FreshbooksSyncFrequency string  `json:"freshbooksSyncFrequency"`

	UpdownAPIKey        *string `json:"-"`
	UpdownAutoSync      bool    `json:"updownAutoSync"`
	UpdownSyncFrequency string  `json:"updownSyncFrequency"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FreshbooksConnected reports whether the operator has completed the
// FreshBooks OAuth flow. Gateway reads must fail fast when this is false.
func (s *Settings) FreshbooksConnected() bool {
	return s != nil &&
		s.FreshbooksAccessToken != nil && *s.FreshbooksAccessToken != "" &&
		s.FreshbooksAccountID != nil && *s.FreshbooksAccountID != ""
}
