package webping

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/platform/updown"
)

const (
	userAgent      = "DEK-Dashboard-Monitor/1.0"
	requestTimeout = 10 * time.Second
)

// Result is the outcome of a direct HTTP reachability check.
type Result struct {
	Up           bool
	StatusCode   int
	ResponseTime time.Duration
	Err          string
}

// Pinger performs plain HEAD checks against client websites. It is the
// fallback when a site has no updown.io check registered.
type Pinger struct {
	httpClient *http.Client
}

// NewPinger creates a Pinger with a bounded request timeout.
func NewPinger(hc *http.Client) *Pinger {
	if hc == nil {
		hc = &http.Client{Timeout: requestTimeout}
	}
	return &Pinger{httpClient: hc}
}

// Ping issues a HEAD request to the site, following redirects. Only 2xx and
// 3xx final statuses count as up. An unreachable or timed-out site is
// reported as down with the error string set; this is the one place where
// "unreachable" is deliberately equated with a down status.
func (p *Pinger) Ping(ctx context.Context, site string) Result {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, updown.NormalizeURL(site), nil)
	if err != nil {
		return Result{Up: false, Err: err.Error()}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		msg := "connection failed - site cannot be reached"
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
			msg = "connection timeout"
		}
		return Result{Up: false, ResponseTime: time.Since(start), Err: msg}
	}
	defer resp.Body.Close()

	return Result{
		Up:           resp.StatusCode >= 200 && resp.StatusCode < 400,
		StatusCode:   resp.StatusCode,
		ResponseTime: time.Since(start),
	}
}
