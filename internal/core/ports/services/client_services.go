package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
)

// ClientReaderSvc defines read operations for client records.
type ClientReaderSvc interface {
	// GetClient retrieves one client by ID.
	GetClient(ctx context.Context, clientID string) (*domain.User, error)

	// ListClients retrieves clients filtered and sorted per params.
	ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.User, error)

	// DashboardStats computes the admin landing-page summary.
	DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)

	// PeriodReport computes client growth and uptime figures for the
	// trailing periodDays days.
	PeriodReport(ctx context.Context, periodDays int) (*dto.ClientReportResponse, error)
}

// ClientWriterSvc defines write operations for client records.
type ClientWriterSvc interface {
	// CreateClient creates a client account from an operator action.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.User, error)

	// UpdateClient applies an operator edit.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.User, error)

	// DeleteClient hard-deletes a client; its notes cascade.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
