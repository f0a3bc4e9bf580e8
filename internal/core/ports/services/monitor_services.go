package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/dto"
	"github.com/dekinnovations/dashboard_backend/internal/platform/updown"
)

// UpdownGateway abstracts the updown.io API client for testing.
// *updown.Client satisfies this interface.
type UpdownGateway interface {
	// IsConfigured reports whether an API key is present.
	IsConfigured() bool

	// SetAPIKey installs an operator-stored API key over the configured
	// one; an empty key reverts to the configured key.
	SetAPIKey(key string)

	// ListChecks returns every check on the account.
	ListChecks(ctx context.Context) ([]updown.Check, error)

	// GetCheck returns one check by token.
	GetCheck(ctx context.Context, token string) (*updown.Check, error)

	// CreateCheck registers a new monitored URL.
	CreateCheck(ctx context.Context, url, alias string) (*updown.Check, error)

	// DeleteCheck removes a check by token.
	DeleteCheck(ctx context.Context, token string) error
}

// MonitorSvcFacade defines website uptime operations.
type MonitorSvcFacade interface {
	// CheckWebsite determines the current status of one client's website
	// and persists the result. Uses a registered updown check when one
	// exists, otherwise a direct HTTP probe.
	CheckWebsite(ctx context.Context, clientID string) (*dto.WebsiteStatusResponse, error)

	// CheckAllWebsites refreshes the status of every client with a
	// website on record.
	CheckAllWebsites(ctx context.Context) ([]dto.WebsiteStatusResponse, error)

	// AccountStats aggregates uptime metrics across all updown checks.
	AccountStats(ctx context.Context) (*dto.UpdownAccountStatsResponse, error)

	// RegisterCheck creates an updown check for the client's website and
	// stores its token on the client record.
	RegisterCheck(ctx context.Context, clientID string) (*dto.WebsiteStatusResponse, error)

	// UnregisterCheck deletes the client's updown check and clears the
	// stored token.
	UnregisterCheck(ctx context.Context, clientID string) error
}
