/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package transport

import (
	"net/http"
	"time"

	"github.com/acronis/go-appkit/log"
)

// LoggingMode represents a mode of logging.
type LoggingMode string

// Logging modes.
const (
	LoggingModeNone   LoggingMode = "none"
	LoggingModeAll    LoggingMode = "all"
	LoggingModeFailed LoggingMode = "failed"
)

// IsValid checks if the logging mode is valid.
func (lm LoggingMode) IsValid() bool {
	switch lm {
	case LoggingModeNone, LoggingModeAll, LoggingModeFailed:
		return true
	}
	return false
}

// LoggingRoundTripperOpts represents an options for LoggingRoundTripper.
type LoggingRoundTripperOpts struct {
	// Mode of logging: none, all, failed.
	Mode LoggingMode

	// SlowRequestThreshold is a threshold for slow requests.
	// Requests that finish faster are not logged.
	SlowRequestThreshold time.Duration
}

// LoggingRoundTripper implements http.RoundTripper for logging outgoing requests.
type LoggingRoundTripper struct {
	Delegate http.RoundTripper
	Logger   log.FieldLogger
	Opts     LoggingRoundTripperOpts
}

// NewLoggingRoundTripper creates a new LoggingRoundTripper.
func NewLoggingRoundTripper(delegate http.RoundTripper, logger log.FieldLogger) *LoggingRoundTripper {
	return NewLoggingRoundTripperWithOpts(delegate, logger, LoggingRoundTripperOpts{})
}

// NewLoggingRoundTripperWithOpts creates a new LoggingRoundTripper with specified options.
func NewLoggingRoundTripperWithOpts(
	delegate http.RoundTripper, logger log.FieldLogger, opts LoggingRoundTripperOpts,
) *LoggingRoundTripper {
	return &LoggingRoundTripper{Delegate: delegate, Logger: logger, Opts: opts}
}

// RoundTrip executes a single HTTP transaction, returning a Response for the provided Request.
func (rt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.Opts.Mode == LoggingModeNone || rt.Logger == nil {
		return rt.Delegate.RoundTrip(req)
	}

	start := time.Now()
	resp, err := rt.Delegate.RoundTrip(req)
	elapsed := time.Since(start)
	if elapsed < rt.Opts.SlowRequestThreshold {
		return resp, err
	}

	fields := []log.Field{
		log.String("method", req.Method),
		log.String("uri", req.URL.String()),
		log.Duration("elapsed", elapsed),
	}
	if requestID := req.Header.Get(RequestIDHeader); requestID != "" {
		fields = append(fields, log.String("request_id", requestID))
	}

	if err != nil {
		rt.Logger.Error("api request failed", append(fields, log.Error(err))...)
		return resp, err
	}

	fields = append(fields, log.Int("status", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		rt.Logger.Warn("api request finished with error status", fields...)
		return resp, nil
	}
	if rt.Opts.Mode == LoggingModeAll {
		rt.Logger.Debug("api request finished", fields...)
	}
	return resp, nil
}
