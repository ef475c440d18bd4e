/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package transport

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-appkit/httpclient"
	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/retry"
	"github.com/cenkalti/backoff/v4"
)

func TestCheckTransientRetry(t *testing.T) {
	tests := []struct {
		name       string
		resp       *http.Response
		err        error
		wantRetry  bool
		wantErrMsg string
	}{
		{
			name:      "temporary network error",
			err:       &net.DNSError{IsTemporary: true},
			wantRetry: true,
		},
		{
			name:      "permanent network error",
			err:       &net.DNSError{IsTemporary: false},
			wantRetry: false,
		},
		{
			name:      "too many requests is not retried",
			resp:      &http.Response{StatusCode: http.StatusTooManyRequests},
			wantRetry: false,
		},
		{
			name:      "service unavailable",
			resp:      &http.Response{StatusCode: http.StatusServiceUnavailable},
			wantRetry: true,
		},
		{
			name:      "ok",
			resp:      &http.Response{StatusCode: http.StatusOK},
			wantRetry: false,
		},
		{
			name:       "nil response and nil error",
			wantErrMsg: "both response and round trip error are nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needRetry, err := CheckTransientRetry(context.Background(), tt.resp, tt.err, 1)
			if tt.wantErrMsg != "" {
				require.ErrorContains(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRetry, needRetry)
		})
	}
}

func newInstantBackoffPolicy() retry.Policy {
	return retry.PolicyFunc(func() backoff.BackOff {
		return backoff.NewConstantBackOff(time.Millisecond)
	})
}

func TestRetryableRoundTripperRetriesServerErrors(t *testing.T) {
	var reqCount int
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		reqCount++
		if reqCount < 3 {
			rw.WriteHeader(http.StatusBadGateway)
			return
		}
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rt, err := httpclient.NewRetryableRoundTripperWithOpts(http.DefaultTransport, httpclient.RetryableRoundTripperOpts{
		Logger:           log.NewDisabledLogger(),
		MaxRetryAttempts: 5,
		CheckRetryFunc:   CheckTransientRetry,
		BackoffPolicy:    newInstantBackoffPolicy(),
	})
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 3, reqCount)
}

func TestRetryableRoundTripperPassesThroughTooManyRequests(t *testing.T) {
	var reqCount int
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		reqCount++
		rw.Header().Set("Retry-After", strconv.Itoa(1))
		rw.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	rt, err := httpclient.NewRetryableRoundTripperWithOpts(http.DefaultTransport, httpclient.RetryableRoundTripperOpts{
		Logger:           log.NewDisabledLogger(),
		MaxRetryAttempts: 5,
		CheckRetryFunc:   CheckTransientRetry,
		BackoffPolicy:    newInstantBackoffPolicy(),
	})
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	// A 429 with Retry-After must come back to the caller on the first
	// attempt. The executor resends it, not the transport.
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.Equal(t, 1, reqCount)
}
