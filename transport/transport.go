/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package transport

import (
	"fmt"
	"net/http"

	"github.com/acronis/go-appkit/httpclient"
	"github.com/acronis/go-appkit/log"
)

// Opts provides options for New and Must functions.
type Opts struct {
	// UserAgent is a user agent string.
	UserAgent string

	// Delegate is the next RoundTripper in the chain.
	Delegate http.RoundTripper

	// Logger is used for logging in the logging and retryable round trippers.
	Logger log.FieldLogger

	// RequestIDProvider is a function that provides a request ID.
	RequestIDProvider func() string

	// Collector is a metrics collector.
	Collector MetricsCollector

	// TokenProvider supplies the Authorization header for outgoing requests.
	TokenProvider TokenProvider
}

// New builds an *http.Client whose transport chain is, from the outside in:
// retryable -> auth -> request id -> user agent -> rate limiting -> metrics -> logging -> delegate.
// Disabled concerns are skipped. The retryable and rate limiting layers come
// from httpclient; retries are restricted to transient failures via
// CheckTransientRetry, so 429 responses always pass through.
func New(cfg *Config, opts Opts) (*http.Client, error) {
	var err error
	delegate := opts.Delegate

	if delegate == nil {
		delegate = http.DefaultTransport.(*http.Transport).Clone()
	}

	if cfg.Logger.Enabled {
		delegate = NewLoggingRoundTripperWithOpts(delegate, opts.Logger, LoggingRoundTripperOpts{
			Mode:                 LoggingMode(cfg.Logger.Mode),
			SlowRequestThreshold: cfg.Logger.SlowRequestThreshold,
		})
	}

	if cfg.Metrics.Enabled {
		delegate = NewMetricsRoundTripper(delegate, opts.Collector)
	}

	if cfg.RateLimits.Enabled {
		delegate, err = httpclient.NewRateLimitingRoundTripperWithOpts(
			delegate, cfg.RateLimits.Limit, cfg.RateLimits.TransportOpts(),
		)
		if err != nil {
			return nil, fmt.Errorf("create rate limiting round tripper: %w", err)
		}
	}

	if opts.UserAgent != "" {
		delegate = NewUserAgentRoundTripper(delegate, opts.UserAgent)
	}

	requestIDRoundTripper := NewRequestIDRoundTripper(delegate)
	requestIDRoundTripper.RequestIDProvider = opts.RequestIDProvider
	delegate = requestIDRoundTripper

	if opts.TokenProvider != nil {
		delegate = NewAuthRoundTripper(delegate, opts.TokenProvider)
	}

	if cfg.Retries.Enabled {
		delegate, err = httpclient.NewRetryableRoundTripperWithOpts(delegate, httpclient.RetryableRoundTripperOpts{
			Logger:           opts.Logger,
			MaxRetryAttempts: cfg.Retries.MaxAttempts,
			CheckRetryFunc:   CheckTransientRetry,
			BackoffPolicy:    cfg.Retries.GetPolicy(),
		})
		if err != nil {
			return nil, fmt.Errorf("create retryable round tripper: %w", err)
		}
	}

	return &http.Client{Transport: delegate, Timeout: cfg.Timeout}, nil
}

// Must is like New but panics if any error occurs.
func Must(cfg *Config, opts Opts) *http.Client {
	client, err := New(cfg, opts)
	if err != nil {
		panic(err)
	}
	return client
}
