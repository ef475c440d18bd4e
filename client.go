/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

// Package craftmarket is a throttled client for the CraftMarket HTTP API.
//
// The client keeps itself inside the API's published rate-limiting rules:
// every request first passes a per-class windowed throttle (see the throttle
// package), and 429 rejections are absorbed by honoring the server's
// Retry-After value and resending, so callers normally never observe them.
package craftmarket

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/retry"
	"github.com/craftmarket/go-craftmarket/throttle"
	"github.com/craftmarket/go-craftmarket/transport"
)

// DefaultBaseURL is the base API URL and version prepended to all endpoints.
const DefaultBaseURL = "https://api.craftmarket.org/v1"

const defaultUserAgent = "go-craftmarket"

// Client is the primary type for interactions with the CraftMarket API.
// It is safe for concurrent use; all in-flight requests share one throttle.
type Client struct {
	httpClient *http.Client
	throttle   *throttle.Throttle
	baseURL    string
	logger     log.FieldLogger
	collector  transport.MetricsCollector

	retryAfterUnit      time.Duration
	maxRateLimitRetries int
}

// Opts represents options for NewWithOpts.
type Opts struct {
	// BaseURL overrides DefaultBaseURL. Trailing slash is not expected.
	BaseURL string

	// Transport configures the underlying HTTP client (timeout, logging,
	// metrics, smoothing, transient retries). Defaults are used if nil.
	Transport *transport.Config

	// HTTPClient overrides the transport-built client entirely. Intended for
	// tests; when set, Transport is ignored but auth is NOT applied.
	HTTPClient *http.Client

	// Throttle configures per-class window budgets and the time source.
	Throttle throttle.Opts

	// Logger is used for stall and resend events. Disabled if nil.
	Logger log.FieldLogger

	// Collector receives stall durations and rate-limit hits. Optional.
	Collector transport.MetricsCollector

	// UserAgent overrides the default User-Agent header value.
	UserAgent string

	// RetryAfterUnit is the unit of the integer Retry-After header value.
	// The default is time.Second per RFC 7231; deployments that send
	// milliseconds should set time.Millisecond.
	RetryAfterUnit time.Duration

	// MaxRateLimitRetries caps how many consecutive 429s a single logical
	// request absorbs before giving up. 0 means no cap.
	MaxRateLimitRetries int

	// SkipHealthCheck disables the construction-time health probe.
	SkipHealthCheck bool

	// HealthCheckPolicy is the backoff policy for the construction-time
	// health probe. A constant 1s/2-attempt policy is used if nil.
	HealthCheckPolicy retry.Policy
}

// New constructs a client and verifies connectivity with a health probe.
// The probe is expected to always succeed under nominal conditions; if it
// fails even after retries, construction fails. The probe runs on ctx, so
// canceling ctx aborts construction.
func New(ctx context.Context, token APIToken) (*Client, error) {
	return NewWithOpts(ctx, token, Opts{})
}

// NewWithOpts constructs a client with the specified options.
// For options that are not presented, the default values will be used.
// ctx bounds the construction-time health probe; it is not retained.
func NewWithOpts(ctx context.Context, token APIToken, opts Opts) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = log.NewDisabledLogger()
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.RetryAfterUnit == 0 {
		opts.RetryAfterUnit = time.Second
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		cfg := opts.Transport
		if cfg == nil {
			cfg = transport.NewConfig()
			cfg.Timeout = transport.DefaultClientWaitTimeout
		}
		var err error
		httpClient, err = transport.New(cfg, transport.Opts{
			UserAgent:     opts.UserAgent,
			Logger:        opts.Logger,
			Collector:     opts.Collector,
			TokenProvider: token,
		})
		if err != nil {
			return nil, fmt.Errorf("build http client: %w", err)
		}
	}

	c := &Client{
		httpClient:          httpClient,
		throttle:            throttle.NewWithOpts(opts.Throttle),
		baseURL:             opts.BaseURL,
		logger:              opts.Logger,
		collector:           opts.Collector,
		retryAfterUnit:      opts.RetryAfterUnit,
		maxRateLimitRetries: opts.MaxRateLimitRetries,
	}

	if !opts.SkipHealthCheck {
		policy := opts.HealthCheckPolicy
		if policy == nil {
			policy = retry.NewConstantBackoffPolicy(time.Second, 2)
		}
		err := retry.DoWithRetry(ctx, policy, nil, nil, func(ctx context.Context) error {
			return c.Health(ctx)
		})
		if err != nil {
			return nil, fmt.Errorf("construction health check: %w", err)
		}
	}

	return c, nil
}

// Health requests the health endpoint, which is expected to always succeed
// under nominal conditions.
func (c *Client) Health(ctx context.Context) error {
	data, err := execute[string](ctx, c, throttle.ClassRead, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	if data != "ok" {
		return &ProtocolError{Message: fmt.Sprintf("health endpoint returned %q instead of \"ok\"", data)}
	}
	return nil
}

// Ping measures how long a health round trip takes. The duration includes
// any local stall imposed by the throttle.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := c.Health(ctx); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// Metrics fetches a snapshot of API-side metrics from the prior minute.
// The endpoint is only accessible to staff members and is intended to be
// polled about once a minute.
func (c *Client) Metrics(ctx context.Context) (MetricsSnapshot, error) {
	return execute[MetricsSnapshot](ctx, c, throttle.ClassRead, http.MethodGet, "/metrics", nil)
}

// ThrottleStats returns a snapshot of local throttling counters.
func (c *Client) ThrottleStats() throttle.Stats {
	return c.throttle.Stats()
}

// Resources returns a helper for the resources endpoints.
func (c *Client) Resources() *ResourcesService {
	return &ResourcesService{client: c}
}

// Members returns a helper for the members endpoints.
func (c *Client) Members() *MembersService {
	return &MembersService{client: c}
}

// Conversations returns a helper for the conversations endpoints.
func (c *Client) Conversations() *ConversationsService {
	return &ConversationsService{client: c}
}

// Threads returns a helper for the threads endpoints.
func (c *Client) Threads() *ThreadsService {
	return &ThreadsService{client: c}
}

// Alerts returns a helper for the alerts endpoints.
func (c *Client) Alerts() *AlertsService {
	return &AlertsService{client: c}
}
