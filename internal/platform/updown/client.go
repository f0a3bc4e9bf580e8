package updown

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
)

const (
	defaultBaseURL = "https://updown.io/api"

	// defaultPeriod is the check interval in seconds for new checks.
	defaultPeriod = 300

	requestTimeout = 10 * time.Second
)

// Check is an updown.io uptime check.
type Check struct {
	Token       string  `json:"token"`
	URL         string  `json:"url"`
	Alias       *string `json:"alias"`
	Enabled     bool    `json:"enabled"`
	Down        bool    `json:"down"`
	Uptime      float64 `json:"uptime"`
	Period      int     `json:"period"`
	LastStatus  int     `json:"last_status"`
	Error       *string `json:"error"`
	LastCheckAt *string `json:"last_check_at"`
	CreatedAt   string  `json:"created_at"`
}

// APIError is returned for non-2xx updown.io responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("updown: HTTP %d: %s", e.StatusCode, e.Body)
}

// Client is a typed HTTP client for the updown.io monitoring API.
type Client struct {
	mu         sync.RWMutex
	envKey     string
	storedKey  string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates an updown.io API client. An empty API key makes every
// call fail fast with ErrNotConfigured; callers then fall back to pings.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		envKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAPIKey installs an operator-stored API key, which takes precedence over
// the one the client was constructed with. An empty key removes the stored
// one and falls back to the constructor key.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.storedKey = key
}

func (c *Client) currentKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.storedKey != "" {
		return c.storedKey
	}
	return c.envKey
}

// IsConfigured reports whether an API key is present.
func (c *Client) IsConfigured() bool {
	return c.currentKey() != ""
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	if !c.IsConfigured() {
		return apperrors.ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("updown: build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.currentKey())
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("updown: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("updown: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("updown: decode response: %w", err)
		}
	}
	return nil
}

// ListChecks fetches all checks on the account.
func (c *Client) ListChecks(ctx context.Context) ([]Check, error) {
	var checks []Check
	if err := c.do(ctx, http.MethodGet, "/checks", nil, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}

// GetCheck fetches one check by its token.
func (c *Client) GetCheck(ctx context.Context, token string) (*Check, error) {
	var check Check
	err := c.do(ctx, http.MethodGet, "/checks/"+url.PathEscape(token), nil, &check)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &check, nil
}

// CreateCheck registers a new uptime check for siteURL.
func (c *Client) CreateCheck(ctx context.Context, siteURL, alias string) (*Check, error) {
	form := url.Values{
		"url":       {NormalizeURL(siteURL)},
		"period":    {fmt.Sprintf("%d", defaultPeriod)},
		"apdex_t":   {"2.0"},
		"enabled":   {"true"},
		"published": {"false"},
	}
	if alias != "" {
		form.Set("alias", alias)
	}
	var check Check
	if err := c.do(ctx, http.MethodPost, "/checks", strings.NewReader(form.Encode()), &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// DeleteCheck removes a check by its token.
func (c *Client) DeleteCheck(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/checks/"+url.PathEscape(token), nil, nil)
}

// NormalizeURL prefixes https:// when the stored website has no scheme.
func NormalizeURL(site string) string {
	if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
		return site
	}
	return "https://" + site
}
