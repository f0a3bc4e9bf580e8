package dto

import (
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// UpdateSettingsRequest is the full settings form. Boolean fields lack
// pointers intentionally: the frontend always submits the whole form.
type UpdateSettingsRequest struct {
	DisplayName     *string `json:"displayName"`
	BusinessName    *string `json:"businessName"`
	BusinessEmail   *string `json:"businessEmail"`
	BusinessPhone   *string `json:"businessPhone"`
	BusinessAddress *string `json:"businessAddress"`
	BusinessWebsite *string `json:"businessWebsite"`

	EmailNotifications        bool `json:"emailNotifications"`
	ClientUpdateNotifications bool `json:"clientUpdateNotifications"`
	SystemAlerts              bool `json:"systemAlerts"`
	WebsiteMonitoringAlerts   bool `json:"websiteMonitoringAlerts"`
	MonthlyReportEmails       bool `json:"monthlyReportEmails"`

	Theme          string `json:"theme" binding:"required"`
	Timezone       string `json:"timezone" binding:"required"`
	DateFormat     string `json:"dateFormat" binding:"required"`
	Currency       string `json:"currency" binding:"required"`
	SessionTimeout int    `json:"sessionTimeout" binding:"required,min=1"`
	CompactMode    bool   `json:"compactMode"`

	FreshbooksAutoSync      bool    `json:"freshbooksAutoSync"`
	FreshbooksSyncFrequency string  `json:"freshbooksSyncFrequency"`
	UpdownAPIKey            *string `json:"updownApiKey"`
	UpdownAutoSync          bool    `json:"updownAutoSync"`
	UpdownSyncFrequency     string  `json:"updownSyncFrequency"`
}

// SettingsResponse is the outward settings shape. Tokens and keys are
// reported as presence flags, never echoed back.
type SettingsResponse struct {
	SettingsID string `json:"id"`
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

	FreshbooksConnected     bool   `json:"freshbooksConnected"`
	FreshbooksAccountID     string `json:"freshbooksAccountID,omitempty"`
	FreshbooksAutoSync      bool   `json:"freshbooksAutoSync"`
	FreshbooksSyncFrequency string `json:"freshbooksSyncFrequency"`

	UpdownConfigured    bool   `json:"updownConfigured"`
	UpdownAutoSync      bool   `json:"updownAutoSync"`
	UpdownSyncFrequency string `json:"updownSyncFrequency"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToSettingsResponse converts domain.Settings to its outward DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	resp := SettingsResponse{
		SettingsID:                s.SettingsID,
		UserID:                    s.UserID,
		DisplayName:               s.DisplayName,
		BusinessName:              s.BusinessName,
		BusinessEmail:             s.BusinessEmail,
		BusinessPhone:             s.BusinessPhone,
		BusinessAddress:           s.BusinessAddress,
		BusinessWebsite:           s.BusinessWebsite,
		EmailNotifications:        s.EmailNotifications,
		ClientUpdateNotifications: s.ClientUpdateNotifications,
		SystemAlerts:              s.SystemAlerts,
		WebsiteMonitoringAlerts:   s.WebsiteMonitoringAlerts,
		MonthlyReportEmails:       s.MonthlyReportEmails,
		Theme:                     s.Theme,
		Timezone:                  s.Timezone,
		DateFormat:                s.DateFormat,
		Currency:                  s.Currency,
		SessionTimeout:            s.SessionTimeout,
		CompactMode:               s.CompactMode,
		FreshbooksConnected:       s.FreshbooksConnected(),
		FreshbooksAutoSync:        s.FreshbooksAutoSync,
		FreshbooksSyncFrequency:   s.FreshbooksSyncFrequency,
		UpdownConfigured:          s.UpdownAPIKey != nil && *s.UpdownAPIKey != "",
		UpdownAutoSync:            s.UpdownAutoSync,
		UpdownSyncFrequency:       s.UpdownSyncFrequency,
		CreatedAt:                 s.CreatedAt,
		UpdatedAt:                 s.UpdatedAt,
	}
	if s.FreshbooksAccountID != nil {
		resp.FreshbooksAccountID = *s.FreshbooksAccountID
	}
	return resp
}
