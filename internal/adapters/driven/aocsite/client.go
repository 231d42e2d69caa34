// Package aocsite implements the input fetcher against adventofcode.com.
// Requests carry the user's session cookie and are throttled so repeated
// fetch commands stay well within the site's informal usage guidance.
package aocsite

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driven"
	"github.com/Gisleburt/advent-of-code-2023/internal/logger"
)

const (
	// DefaultBaseURL is the production puzzle site.
	DefaultBaseURL = "https://adventofcode.com"

	// ThrottleRate is the proactive request rate (one request per 2s).
	ThrottleRate = 0.5

	// requestTimeout bounds a single input download.
	requestTimeout = 30 * time.Second

	// userAgent identifies this tool to the site operators.
	userAgent = "github.com/Gisleburt/advent-of-code-2023 input fetcher"
)

// Ensure Client implements the interface.
var _ driven.InputFetcher = (*Client)(nil)

// Client downloads puzzle inputs over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	bucket     *rate.Limiter
}

// NewClient creates a client against the production puzzle site.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom base URL.
// Used by tests to point at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		bucket:     rate.NewLimiter(rate.Limit(ThrottleRate), 1),
	}
}

// FetchInput downloads the personal input for the given event year and day.
func (c *Client) FetchInput(ctx context.Context, session string, year, day int) (string, error) {
	if session == "" {
		return "", domain.ErrNoSession
	}

	if err := c.bucket.Wait(ctx); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day)
	logger.Debug("GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: session})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch input: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close failure is not actionable

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return string(body), nil
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError:
		// The site answers 400 or 500 to expired or malformed session cookies
		return "", fmt.Errorf("%w: site answered %d", domain.ErrSessionInvalid, resp.StatusCode)
	case http.StatusNotFound:
		return "", fmt.Errorf("%w: %d day %d", domain.ErrPuzzleUnavailable, year, day)
	default:
		return "", fmt.Errorf("fetch input: unexpected status %d", resp.StatusCode)
	}
}
