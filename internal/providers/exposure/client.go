package exposure

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	domaingames "github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/providers"
)

// Config controls how the client reaches the events site.
type Config struct {
	URL        string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches an event schedule page and extracts the games of one division.
type Client struct {
	url  string
	http *resty.Client
	now  func() time.Time
}

// NewClient constructs a schedule client with the provided configuration.
func NewClient(cfg Config) *Client {
	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	rc.SetTimeout(timeout).
		SetHeader("User-Agent", ua).
		SetHeader("Accept", "text/html")
	return &Client{
		url:  cfg.URL,
		http: rc,
		now:  time.Now,
	}
}

// FetchGames downloads the schedule page and returns the division's raw games.
func (c *Client) FetchGames(ctx context.Context, division string) ([]domaingames.RawGame, error) {
	body, err := c.fetchPage(ctx)
	if err != nil {
		return nil, err
	}
	return ParseSchedule(bytes.NewReader(body), division)
}

func (c *Client) fetchPage(ctx context.Context) ([]byte, error) {
	if c.url == "" {
		return nil, fmt.Errorf("%s: schedule url is empty", providerName)
	}
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("%s: get schedule: %w", providerName, err)
	}

	status := resp.StatusCode()
	if status == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: status,
			RetryAfter: c.retryAfter(resp.Header().Get("Retry-After")),
			Remaining:  resp.Header().Get("X-RateLimit-Remaining"),
			Message:    "schedule page rate limited",
		}
	}
	if status < 200 || status > 299 {
		body := resp.Body()
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, fmt.Errorf("%s: unexpected status %d: %s", providerName, status, strings.TrimSpace(string(body)))
	}
	return resp.Body(), nil
}

// retryAfter accepts either delay seconds or an HTTP date.
func (c *Client) retryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(c.now()); d > 0 {
			return d
		}
	}
	return 0
}
