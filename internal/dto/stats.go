package dto

import "time"

// UptimeStats is the rollup of client website statuses.
type UptimeStats struct {
	Total      int `json:"total"`
	Up         int `json:"up"`
	Down       int `json:"down"`
	Unknown    int `json:"unknown"`
	Checking   int `json:"checking"`
	Percentage int `json:"percentage"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	UserID    string    `json:"id"`
	Name      string    `json:"name"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
}

// DashboardStatsResponse is the admin landing-page summary.
type DashboardStatsResponse struct {
	TotalClients   int             `json:"totalClients"`
	ActiveClients  int             `json:"activeClients"`
	NewThisMonth   int             `json:"newThisMonth"`
	UptimeStats    UptimeStats     `json:"uptimeStats"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
}

// ReportClientStats summarizes client counts over one report period.
type ReportClientStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Active     int `json:"active"`
	Retention  int `json:"retention"`
	GrowthRate int `json:"growthRate"`
}

// ClientReportResponse is the period-scoped admin report.
type ClientReportResponse struct {
	PeriodDays     int               `json:"period"`
	Clients        ReportClientStats `json:"clients"`
	Uptime         UptimeStats       `json:"uptime"`
	RecentActivity []ActivityEntry   `json:"recentActivity"`
}

// UpdownAccountStatsResponse summarizes updown.io account usage alongside the
// local status rollup.
type UpdownAccountStatsResponse struct {
	Configured           bool        `json:"configured"`
	TotalChecks          int         `json:"totalChecks"`
	ActiveChecks         int         `json:"activeChecks"`
	DisabledChecks       int         `json:"disabledChecks"`
	ChecksDown           int         `json:"checksDown"`
	TotalMonthlyRequests int         `json:"totalMonthlyRequests"`
	ChecksByPeriod       map[int]int `json:"checksByPeriod"`
	AverageUptime        float64     `json:"averageUptime"`
	LocalStatus          UptimeStats `json:"localStatus"`
	LastUpdated          time.Time   `json:"lastUpdated"`
}

// WebsiteStatusResponse is the outcome of an on-demand website check.
type WebsiteStatusResponse struct {
	ClientID       string    `json:"clientID,omitempty"`
	Status         string    `json:"status"`
	LastChecked    time.Time `json:"lastChecked"`
	ResponseTimeMs int64     `json:"responseTimeMs,omitempty"`
	StatusCode     int       `json:"statusCode,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// AuthURLResponse carries the FreshBooks OAuth consent URL.
type AuthURLResponse struct {
	AuthURL string `json:"authUrl"`
}
