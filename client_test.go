/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-appkit/retry"
	"github.com/craftmarket/go-craftmarket/throttle"
)

func TestNewPerformsHealthCheck(t *testing.T) {
	var healthCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		atomic.AddInt32(&healthCalls, 1)
		_, _ = rw.Write([]byte(`{"result":"success","data":"ok"}`))
	}))
	defer server.Close()

	client, err := NewWithOpts(context.Background(), PrivateToken("token"), Opts{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	require.EqualValues(t, 1, atomic.LoadInt32(&healthCalls))
}

func TestNewFailsWhenHealthCheckFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`{"result":"success","data":"degraded"}`))
	}))
	defer server.Close()

	_, err := NewWithOpts(context.Background(), PrivateToken("token"), Opts{
		BaseURL:           server.URL,
		HTTPClient:        server.Client(),
		HealthCheckPolicy: retry.NewConstantBackoffPolicy(time.Millisecond, 1),
	})
	require.Error(t, err)
	var protocolErr *ProtocolError
	require.ErrorAs(t, err, &protocolErr)
}

func TestNewHealthCheckHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := NewWithOpts(ctx, PrivateToken("token"), Opts{
		BaseURL:           server.URL,
		HTTPClient:        server.Client(),
		HealthCheckPolicy: retry.NewConstantBackoffPolicy(time.Minute, 10),
	})
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}

func TestPingMeasuresRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
		_, _ = rw.Write([]byte(`{"result":"success","data":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, Opts{})

	elapsed, err := client.Ping(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}

func TestMetricsSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/metrics", r.URL.Path)
		_, _ = rw.Write([]byte(`{"result":"success","data":{
			"interval":{"time":60,"unit":"seconds","last":1730000000},
			"metrics":{"connections":120,"requests":15000}}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, Opts{})

	snapshot, err := client.Metrics(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 60, snapshot.Interval.Time)
	require.Equal(t, "seconds", snapshot.Interval.Unit)
	require.EqualValues(t, 15000, snapshot.Metrics["requests"])
}

func TestAPITokenAuthorizationHeader(t *testing.T) {
	header, err := PrivateToken("abc123").AuthorizationHeader(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Private abc123", header)

	header, err = SharedToken("xyz789").AuthorizationHeader(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Shared xyz789", header)

	_, err = APIToken{}.AuthorizationHeader(context.Background())
	require.Error(t, err)
}

func TestListOptionsQueryString(t *testing.T) {
	tests := []struct {
		name string
		opts *ListOptions
		want string
	}{
		{"nil", nil, ""},
		{"empty", &ListOptions{}, ""},
		{"all fields", &ListOptions{Sort: "review_count", Order: "desc", Page: 3}, "?order=desc&page=3&sort=review_count"},
		{"page only", &ListOptions{Page: 2}, "?page=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.opts.queryString())
		})
	}
}

func TestThrottleStatsAccumulate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`{"result":"success","data":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, Opts{
		Throttle: throttle.Opts{
			Read:  []throttle.WindowLimit{{Limit: 100, Interval: time.Minute}},
			Write: []throttle.WindowLimit{{Limit: 100, Interval: time.Minute}},
		},
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, client.Health(context.Background()))
	}
	stats := client.ThrottleStats()
	require.EqualValues(t, 3, stats.RequestsSent)
	require.EqualValues(t, 0, stats.LimitHits)
}
