package dto

// SyncClientsResult summarizes one reconciliation run. Errors carries one
// entry per external client that failed to import or update; a non-empty
// Errors list does not mean the run failed.
type SyncClientsResult struct {
	Imported              int      `json:"imported"`
	Updated               int      `json:"updated"`
	Errors                []string `json:"errors"`
	FBClientsFound        int      `json:"fbClientsFound"`
	DashboardClientsFound int      `json:"dashboardClientsFound"`
}
