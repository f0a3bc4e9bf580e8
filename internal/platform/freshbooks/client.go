package freshbooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://api.freshbooks.com"
	authURL        = "https://auth.freshbooks.com/oauth/authorize"
	tokenURL       = "https://api.freshbooks.com/auth/oauth/token"

	requestTimeout = 10 * time.Second
)

// Config holds the FreshBooks OAuth application credentials. It is passed in
// explicitly so tests can supply fake credentials without touching process
// state.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// APIError is returned for non-2xx provider responses. The status code is
// surfaced so callers can detect a 401 and drive the refresh-and-retry-once
// policy; the Gateway itself never retries.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("freshbooks: HTTP %d: %s", e.StatusCode, e.Body)
}

// IsAuthError reports whether err is a provider 401.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client is a typed HTTP client for the FreshBooks accounting API. It owns
// the OAuth lifecycle and raw-response shaping; it performs no local
// persistence (callers persist tokens).
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (tests point it at an
// httptest server).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a FreshBooks API client from explicit configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsConfigured reports whether the OAuth application credentials are all
// present. Pure, no I/O.
func (c *Client) IsConfigured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" && c.cfg.RedirectURI != ""
}

func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		RedirectURL:  c.cfg.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizationURL builds the provider's OAuth consent URL for the given
// state token. Callers are expected to verify IsConfigured first.
func (c *Client) AuthorizationURL(state string) string {
	return c.oauthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode performs the OAuth authorization-code exchange.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenPair, error) {
	if !c.IsConfigured() {
		return nil, apperrors.ErrNotConfigured
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("freshbooks: code exchange failed: %w", err)
	}
	return &TokenPair{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken}, nil
}

// RefreshToken exchanges a refresh token for a new token pair. On success the
// client's in-memory access token is replaced so subsequent reads use it;
// persisting the new pair remains the caller's responsibility.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if !c.IsConfigured() {
		return nil, apperrors.ErrNotConfigured
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	src := c.oauthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("freshbooks: token refresh failed: %w", err)
	}
	c.SetAccessToken(tok.AccessToken)
	pair := &TokenPair{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken}
	if pair.RefreshToken == "" {
		pair.RefreshToken = refreshToken
	}
	return pair, nil
}

// SetAccessToken sets the bearer token used by all subsequent read calls.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	token := c.currentToken()
	if token == "" {
		return apperrors.ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("freshbooks: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("freshbooks: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("freshbooks: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("freshbooks: decode response: %w", err)
	}
	return nil
}

// GetUserProfile fetches the authenticated user's identity document.
func (c *Client) GetUserProfile(ctx context.Context) (*Profile, error) {
	var envelope struct {
		Response Profile `json:"response"`
	}
	if err := c.get(ctx, "/auth/api/v1/users/me", &envelope); err != nil {
		return nil, err
	}
	return &envelope.Response, nil
}

// GetClients lists the account's clients. The provider's ordering is
// preserved; callers must not re-sort before reconciliation.
func (c *Client) GetClients(ctx context.Context, accountID string) ([]ClientData, error) {
	var envelope struct {
		Response struct {
			Result struct {
				Clients []ClientData `json:"clients"`
			} `json:"result"`
		} `json:"response"`
	}
	path := fmt.Sprintf("/accounting/account/%s/users/clients", accountID)
	if err := c.get(ctx, path, &envelope); err != nil {
		return nil, err
	}
	return envelope.Response.Result.Clients, nil
}

// GetInvoices fetches one page of invoices, normalized to the internal
// invoice shape.
func (c *Client) GetInvoices(ctx context.Context, accountID string, page, perPage int) (*InvoiceList, error) {
	var envelope struct {
		Response struct {
			Result struct {
				Invoices []invoiceData `json:"invoices"`
				Total    int           `json:"total"`
			} `json:"result"`
		} `json:"response"`
	}
	path := fmt.Sprintf("/accounting/account/%s/invoices/invoices?page=%d&per_page=%d", accountID, page, perPage)
	if err := c.get(ctx, path, &envelope); err != nil {
		return nil, err
	}
	list := &InvoiceList{Total: envelope.Response.Result.Total}
	for _, inv := range envelope.Response.Result.Invoices {
		list.Invoices = append(list.Invoices, inv.toDomain())
	}
	return list, nil
}

// GetExpenses fetches one page of expenses, normalized to the internal
// expense shape.
func (c *Client) GetExpenses(ctx context.Context, accountID string, page, perPage int) (*ExpenseList, error) {
	var envelope struct {
		Response struct {
			Result struct {
				Expenses []expenseData `json:"expenses"`
				Total    int           `json:"total"`
			} `json:"result"`
		} `json:"response"`
	}
	path := fmt.Sprintf("/accounting/account/%s/expenses/expenses?page=%d&per_page=%d", accountID, page, perPage)
	if err := c.get(ctx, path, &envelope); err != nil {
		return nil, err
	}
	list := &ExpenseList{Total: envelope.Response.Result.Total}
	for _, exp := range envelope.Response.Result.Expenses {
		list.Expenses = append(list.Expenses, exp.toDomain())
	}
	return list, nil
}
