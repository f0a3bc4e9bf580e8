package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/dto"
)

// FinanceSvcFacade defines financial summary operations backed by the
// accounting provider.
type FinanceSvcFacade interface {
	// AccountOverview builds the account-wide financial overview for the
	// operator identified by userID. Returns Connected=false with zeroed
	// totals when the provider is unreachable or not linked.
	AccountOverview(ctx context.Context, userID string) (*dto.FreshbooksOverviewResponse, error)

	// ClientFinancials builds per-client invoice totals by matching the
	// directory record against the provider's customer list.
	ClientFinancials(ctx context.Context, operatorUserID, clientID string) (*dto.ClientFinancialsResponse, error)
}
