/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package transport

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-appkit/config"
	"github.com/acronis/go-appkit/httpclient"
	"github.com/acronis/go-appkit/log"
)

func TestNewBuildsFullChain(t *testing.T) {
	var gotAuth, gotUserAgent, gotRequestID string
	var reqCount int
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		reqCount++
		gotAuth = r.Header.Get("Authorization")
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get(RequestIDHeader)
		if reqCount == 1 {
			rw.WriteHeader(http.StatusBadGateway)
			return
		}
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := NewConfig()
	cfg.Timeout = 10 * time.Second
	cfg.Logger = httpclient.LoggerConfig{Enabled: true, Mode: string(LoggingModeAll)}
	cfg.Retries = httpclient.RetriesConfig{
		Enabled:     true,
		MaxAttempts: 3,
		Policy: httpclient.PolicyConfig{
			Strategy:                httpclient.RetryPolicyConstant,
			ConstantBackoffInterval: time.Millisecond,
		},
	}
	cfg.RateLimits = httpclient.RateLimitConfig{Enabled: true, Limit: 100, Burst: 10}

	client, err := New(cfg, Opts{
		UserAgent:     "go-craftmarket/test",
		Logger:        log.NewDisabledLogger(),
		TokenProvider: staticTokenProvider("Private token-value"),
	})
	require.NoError(t, err)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, reqCount)
	require.Equal(t, "Private token-value", gotAuth)
	require.Equal(t, "go-craftmarket/test", gotUserAgent)
	require.NotEmpty(t, gotRequestID)
}

func TestNewInvalidRateLimit(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimits = httpclient.RateLimitConfig{Enabled: true, Limit: 0}
	_, err := New(cfg, Opts{})
	require.Error(t, err)
}

func TestConfigSetFromYAML(t *testing.T) {
	cfgData := bytes.NewBuffer([]byte(`
client:
  timeout: 20s
  retries:
    enabled: true
    maxAttempts: 4
    policy:
      strategy: exponential
      exponentialBackoffInitialInterval: 2s
      exponentialBackoffMultiplier: 3
  rateLimits:
    enabled: true
    limit: 15
    burst: 3
    waitTimeout: 5s
  logger:
    enabled: true
    mode: failed
    slowRequestThreshold: 1s
  metrics:
    enabled: true
`))

	cfg := NewConfigWithKeyPrefix("client")
	err := config.NewDefaultLoader("").LoadFromReader(cfgData, config.DataTypeYAML, cfg)
	require.NoError(t, err)

	require.Equal(t, 20*time.Second, cfg.Timeout)
	require.True(t, cfg.Retries.Enabled)
	require.Equal(t, 4, cfg.Retries.MaxAttempts)
	require.Equal(t, httpclient.RetryPolicyExponential, cfg.Retries.Policy.Strategy)
	require.Equal(t, 2*time.Second, cfg.Retries.Policy.ExponentialBackoffInitialInterval)
	require.Equal(t, float64(3), cfg.Retries.Policy.ExponentialBackoffMultiplier)
	require.NotNil(t, cfg.Retries.GetPolicy())
	require.True(t, cfg.RateLimits.Enabled)
	require.Equal(t, 15, cfg.RateLimits.Limit)
	require.Equal(t, 3, cfg.RateLimits.Burst)
	require.Equal(t, 5*time.Second, cfg.RateLimits.WaitTimeout)
	require.True(t, cfg.Logger.Enabled)
	require.Equal(t, string(LoggingModeFailed), cfg.Logger.Mode)
	require.Equal(t, time.Second, cfg.Logger.SlowRequestThreshold)
	require.True(t, cfg.Metrics.Enabled)
}

func TestConfigSetInvalidLoggerMode(t *testing.T) {
	cfgData := bytes.NewBuffer([]byte(`
logger:
  enabled: true
  mode: verbose
`))
	cfg := NewConfig()
	err := config.NewDefaultLoader("").LoadFromReader(cfgData, config.DataTypeYAML, cfg)
	require.ErrorContains(t, err, "invalid mode")
}
