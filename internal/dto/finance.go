package dto

import (
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FreshbooksOverviewResponse is the account-wide financial overview. When
// Connected is false all figures are zero and the frontend shows its
// "connect FreshBooks" state instead of an error.
type FreshbooksOverviewResponse struct {
	Connected           bool                    `json:"connected"`
	TotalRevenue        decimal.Decimal         `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal         `json:"totalExpenses"`
	NetIncome           decimal.Decimal         `json:"netIncome"`
	OutstandingInvoices decimal.Decimal         `json:"outstandingInvoices"`
	PaidInvoices        int                     `json:"paidInvoices"`
	Currency            string                  `json:"currency"`
	RecentInvoices      []domain.InvoiceSummary `json:"recentInvoices"`
	UpcomingInvoices    []domain.InvoiceSummary `json:"upcomingInvoices"`
}

// ClientFinancialsResponse carries per-client figures. Matched is false when
// the local record has no FreshBooks cross-reference yet.
type ClientFinancialsResponse struct {
	Client     ClientResponse           `json:"client"`
	Configured bool                     `json:"configured"`
	Matched    bool                     `json:"matched"`
	Financials *domain.ClientFinancials `json:"financials,omitempty"`
}
