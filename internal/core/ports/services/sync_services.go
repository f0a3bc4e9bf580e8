package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/dto"
)

// SyncSvcFacade defines the client reconciliation operation.
type SyncSvcFacade interface {
	// SyncClients pulls the accounting provider's client list and
	// reconciles it into the directory. Runs are serialized; concurrent
	// calls wait rather than interleave.
	SyncClients(ctx context.Context, operatorUserID string) (*dto.SyncClientsResult, error)
}
