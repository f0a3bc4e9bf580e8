package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
	"github.com/dekinnovations/dashboard_backend/internal/platform/freshbooks"
)

// financePageSize bounds how many invoices and expenses one overview pulls.
// Accounts beyond this size get lower-bound figures rather than extra pages.
const financePageSize = 100

type financeService struct {
	gateway      portssvc.FreshbooksGateway
	userRepo     portsrepo.UserRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewFinanceService creates the financial summary service.
func NewFinanceService(gateway portssvc.FreshbooksGateway, userRepo portsrepo.UserRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.FinanceSvcFacade {
	return &financeService{gateway: gateway, userRepo: userRepo, settingsRepo: settingsRepo}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

// disconnectedOverview is what the frontend gets whenever provider data is
// unavailable: zeroed figures, never an error page.
func disconnectedOverview() *dto.FreshbooksOverviewResponse {
	return &dto.FreshbooksOverviewResponse{
		Connected:           false,
		TotalRevenue:        decimal.Zero,
		TotalExpenses:       decimal.Zero,
		NetIncome:           decimal.Zero,
		OutstandingInvoices: decimal.Zero,
		Currency:            "USD",
		RecentInvoices:      []domain.InvoiceSummary{},
		UpcomingInvoices:    []domain.InvoiceSummary{},
	}
}

func (s *financeService) AccountOverview(ctx context.Context, userID string) (*dto.FreshbooksOverviewResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	session, err := openFreshbooksSession(ctx, s.gateway, s.settingsRepo, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotConfigured) || errors.Is(err, apperrors.ErrNotFound) {
			return disconnectedOverview(), nil
		}
		return nil, err
	}

	var invoices *freshbooks.InvoiceList
	err = session.do(ctx, func() error {
		var fetchErr error
		invoices, fetchErr = s.gateway.GetInvoices(ctx, session.accountID, 1, financePageSize)
		return fetchErr
	})
	if err != nil {
		logger.Warn("FreshBooks invoice fetch failed, showing disconnected overview", slog.String("error", err.Error()))
		return disconnectedOverview(), nil
	}

	var expenses *freshbooks.ExpenseList
	err = session.do(ctx, func() error {
		var fetchErr error
		expenses, fetchErr = s.gateway.GetExpenses(ctx, session.accountID, 1, financePageSize)
		return fetchErr
	})
	if err != nil {
		logger.Warn("FreshBooks expense fetch failed, showing disconnected overview", slog.String("error", err.Error()))
		return disconnectedOverview(), nil
	}

	overview := &dto.FreshbooksOverviewResponse{
		Connected:           true,
		TotalRevenue:        decimal.Zero,
		TotalExpenses:       decimal.Zero,
		OutstandingInvoices: decimal.Zero,
		RecentInvoices:      []domain.InvoiceSummary{},
		UpcomingInvoices:    []domain.InvoiceSummary{},
	}

	var paid []domain.InvoiceSummary
	for _, inv := range invoices.Invoices {
		if overview.Currency == "" && inv.Currency != "" {
			overview.Currency = inv.Currency
		}
		if inv.Status == domain.InvoicePaid {
			overview.TotalRevenue = overview.TotalRevenue.Add(inv.Amount)
			overview.PaidInvoices++
			paid = append(paid, inv)
		}
		if inv.Outstanding.IsPositive() {
			overview.OutstandingInvoices = overview.OutstandingInvoices.Add(inv.Outstanding)
		}
	}
	if overview.Currency == "" {
		overview.Currency = "USD"
	}

	for _, exp := range expenses.Expenses {
		overview.TotalExpenses = overview.TotalExpenses.Add(exp.Amount)
	}
	overview.NetIncome = overview.TotalRevenue.Sub(overview.TotalExpenses)

	// Recent: last 10 paid invoices by payment date (creation date when the
	// provider omitted one).
	sort.SliceStable(paid, func(i, j int) bool {
		return paidSortTime(paid[i]).After(paidSortTime(paid[j]))
	})
	if len(paid) > 10 {
		paid = paid[:10]
	}
	overview.RecentInvoices = append(overview.RecentInvoices, paid...)

	// Upcoming: first 5 unpaid invoices due within 30 days.
	now := time.Now()
	horizon := now.AddDate(0, 0, 30)
	var upcoming []domain.InvoiceSummary
	for _, inv := range invoices.Invoices {
		if inv.Status == domain.InvoicePaid || inv.DueDate.IsZero() {
			continue
		}
		if inv.DueDate.Before(horizon) {
			upcoming = append(upcoming, inv)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	overview.UpcomingInvoices = append(overview.UpcomingInvoices, upcoming...)

	return overview, nil
}

func paidSortTime(inv domain.InvoiceSummary) time.Time {
	if inv.DatePaid != nil {
		return *inv.DatePaid
	}
	return inv.CreateDate
}

func (s *financeService) ClientFinancials(ctx context.Context, operatorUserID, clientID string) (*dto.ClientFinancialsResponse, error) {
	client, err := s.userRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ClientFinancialsResponse{
		Client: dto.ToClientResponse(client),
	}

	session, err := openFreshbooksSession(ctx, s.gateway, s.settingsRepo, operatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotConfigured) || errors.Is(err, apperrors.ErrNotFound) {
			return resp, nil
		}
		return nil, err
	}
	resp.Configured = true

	if client.FreshbooksID == nil || *client.FreshbooksID == "" {
		return resp, nil
	}
	customerID, err := strconv.ParseInt(*client.FreshbooksID, 10, 64)
	if err != nil {
		return resp, nil
	}
	resp.Matched = true

	var invoices *freshbooks.InvoiceList
	err = session.do(ctx, func() error {
		var fetchErr error
		invoices, fetchErr = s.gateway.GetInvoices(ctx, session.accountID, 1, financePageSize)
		return fetchErr
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthExpired) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch invoices for client financials: %w", err)
	}

	var expenses *freshbooks.ExpenseList
	err = session.do(ctx, func() error {
		var fetchErr error
		expenses, fetchErr = s.gateway.GetExpenses(ctx, session.accountID, 1, financePageSize)
		return fetchErr
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthExpired) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch expenses for client financials: %w", err)
	}

	fin := &domain.ClientFinancials{
		TotalInvoiced:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
		TotalExpenses:    decimal.Zero,
		Invoices:         []domain.InvoiceSummary{},
	}
	for _, inv := range invoices.Invoices {
		if inv.CustomerID != customerID {
			continue
		}
		fin.InvoiceCount++
		fin.TotalInvoiced = fin.TotalInvoiced.Add(inv.Amount)
		fin.TotalPaid = fin.TotalPaid.Add(inv.Paid)
		if inv.Outstanding.IsPositive() {
			fin.TotalOutstanding = fin.TotalOutstanding.Add(inv.Outstanding)
		}
		fin.Invoices = append(fin.Invoices, inv)
	}
	for _, exp := range expenses.Expenses {
		if exp.ClientID != customerID {
			continue
		}
		fin.ExpenseCount++
		fin.TotalExpenses = fin.TotalExpenses.Add(exp.Amount)
	}

	sort.SliceStable(fin.Invoices, func(i, j int) bool {
		return fin.Invoices[i].CreateDate.After(fin.Invoices[j].CreateDate)
	})
	if len(fin.Invoices) > 10 {
		fin.Invoices = fin.Invoices[:10]
	}

	resp.Financials = fin
	return resp, nil
}
