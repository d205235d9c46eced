package esportsbattle

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
	"github.com/tiagoh/esoccer-tracker/internal/platform/resilience"
)

const (
	// PageLive and PageResults are the two scraped pages: in-play fixtures
	// and the recent results feed.
	PageLive    = "live"
	PageResults = "results"

	defaultBaseURL = "https://football.esportsbattle.com/"
	defaultTimeout = 15 * time.Second

	// The breaker trips after a full scan cycle's worth of failed fetches
	// and cools off for one backoff window.
	breakerThreshold = 4
	breakerCooloff   = time.Minute
)

// ErrFetch marks transport-level scrape failures: connection errors,
// timeouts and non-2xx responses. The scheduler backs off on it.
var ErrFetch = crerr.New("esportsbattle fetch failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Location   *time.Location
	Logger     *logging.Logger
}

// Client scrapes football.esportsbattle.com match pages. It never retries;
// retry policy belongs to the poll scheduler.
type Client struct {
	httpClient *http.Client
	baseURL    string
	loc        *time.Location
	logger     *logging.Logger
	breaker    *resilience.Breaker
	now        func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		loc:        loc,
		logger:     logger,
		breaker:    resilience.NewBreaker(breakerThreshold, breakerCooloff),
		now:        time.Now,
	}
}

// LiveMatches scrapes the in-play page.
func (c *Client) LiveMatches(ctx context.Context) ([]match.Observation, error) {
	doc, err := c.FetchPage(ctx, PageLive)
	if err != nil {
		return nil, err
	}
	return c.parseMatches(doc), nil
}

// RecentResults scrapes the recent results page.
func (c *Client) RecentResults(ctx context.Context) ([]match.Observation, error) {
	doc, err := c.FetchPage(ctx, PageResults)
	if err != nil {
		return nil, err
	}
	return c.parseMatches(doc), nil
}

// FetchPage retrieves the raw document for a logical page. Any transport or
// HTTP-status failure is a hard ErrFetch, never a silent empty result. While
// the breaker is open, calls fail fast without touching the upstream.
func (c *Client) FetchPage(ctx context.Context, page string) (string, error) {
	if err := c.breaker.Allow(); err != nil {
		return "", crerr.Mark(crerr.Wrapf(err, "fetch %s suppressed", page), ErrFetch)
	}

	body, err := c.fetch(ctx, page)
	c.breaker.Record(err)
	return body, err
}

func (c *Client) fetch(ctx context.Context, page string) (string, error) {
	url := c.baseURL + "/" + strings.TrimLeft(page, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", crerr.Mark(crerr.Wrapf(err, "build request %s", url), ErrFetch)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", crerr.Mark(crerr.Wrapf(err, "get %s", url), ErrFetch)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", crerr.Mark(crerr.Newf("unexpected status %d for %s", resp.StatusCode, url), ErrFetch)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", crerr.Mark(crerr.Wrapf(err, "read body %s", url), ErrFetch)
	}

	return string(body), nil
}
