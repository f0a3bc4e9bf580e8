package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/platform/freshbooks"
)

// FreshbooksGateway abstracts the FreshBooks API client so services can be
// tested against a mock. *freshbooks.Client satisfies this interface.
type FreshbooksGateway interface {
	// IsConfigured reports whether OAuth app credentials are present.
	IsConfigured() bool

	// AuthorizationURL builds the consent URL for the given state token.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for a token pair.
	ExchangeCode(ctx context.Context, code string) (*freshbooks.TokenPair, error)

	// RefreshToken trades a refresh token for a new pair.
	RefreshToken(ctx context.Context, refreshToken string) (*freshbooks.TokenPair, error)

	// SetAccessToken installs the bearer token used by subsequent reads.
	SetAccessToken(token string)

	// GetUserProfile fetches the connected user's identity and memberships.
	GetUserProfile(ctx context.Context) (*freshbooks.Profile, error)

	// GetClients lists customers for an account, preserving provider order.
	GetClients(ctx context.Context, accountID string) ([]freshbooks.ClientData, error)

	// GetInvoices lists invoices for an account, one page at a time.
	GetInvoices(ctx context.Context, accountID string, page, perPage int) (*freshbooks.InvoiceList, error)

	// GetExpenses lists expenses for an account, one page at a time.
	GetExpenses(ctx context.Context, accountID string, page, perPage int) (*freshbooks.ExpenseList, error)
}

// FreshbooksSvcFacade defines the OAuth connection flow operations.
type FreshbooksSvcFacade interface {
	// AuthURL returns the consent URL, or ErrNotConfigured when app
	// credentials are absent.
	AuthURL(ctx context.Context, userID string) (string, error)

	// HandleCallback completes the OAuth flow: exchanges the code,
	// resolves the account ID from the profile, and stores tokens.
	HandleCallback(ctx context.Context, userID, code string) error

	// Disconnect removes the stored connection.
	Disconnect(ctx context.Context, userID string) error
}
