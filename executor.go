/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/acronis/go-appkit/log"
	"github.com/craftmarket/go-craftmarket/throttle"
)

// execute performs a single logical API request: it stalls until the throttle
// admits the request, sends it, feeds the outcome back into the throttle, and
// automatically resends after server-mandated cool-downs.
//
// Error contract: a 429 is never surfaced to the caller unless the configured
// retry ceiling is hit; transport failures, protocol violations and envelope
// problems are terminal; API-level errors come back as *APIError.
func execute[T any](ctx context.Context, c *Client, class throttle.RequestClass, method, endpoint string, body any) (T, error) {
	var zero T

	var reqBody []byte
	if body != nil {
		var err error
		if reqBody, err = json.Marshal(body); err != nil {
			return zero, fmt.Errorf("marshal request body: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		if err := c.stall(ctx, class); err != nil {
			return zero, err
		}

		resp, err := c.send(ctx, method, endpoint, reqBody)
		if err != nil {
			return zero, &TransportError{Inner: err}
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			c.throttle.OnResponse(class, throttle.OK())
			return decodeResponse[T](resp)
		}

		retryAfter, err := c.retryAfterFromResponse(resp)
		drainAndClose(resp.Body)
		if err != nil {
			return zero, err
		}

		c.throttle.OnResponse(class, throttle.Limited(retryAfter))
		if c.collector != nil {
			c.collector.RateLimitHit(class.String())
		}
		c.logger.Warn("request was rate-limited, will resend",
			log.String("class", class.String()),
			log.String("endpoint", endpoint),
			log.Duration("retry_after", retryAfter),
			log.Int("attempt", attempt+1),
		)

		if c.maxRateLimitRetries > 0 && attempt+1 >= c.maxRateLimitRetries {
			return zero, &ProtocolError{Message: fmt.Sprintf(
				"request was rate-limited %d times in a row, giving up", attempt+1)}
		}
	}
}

// stall sleeps until the throttle admits a request of the given class.
// The sleep is interruptible by ctx; interruption leaves no window slot claimed.
func (c *Client) stall(ctx context.Context, class throttle.RequestClass) error {
	for {
		d := c.throttle.Acquire(class)
		if d == 0 {
			return nil
		}
		if c.collector != nil {
			c.collector.ThrottleStall(class.String(), d)
		}
		c.logger.Debug("stalling before request",
			log.String("class", class.String()), log.Duration("stall", d))

		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (c *Client) send(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}

// retryAfterFromResponse extracts the mandatory Retry-After value of a 429.
// A missing or unparsable header is a protocol violation.
func (c *Client) retryAfterFromResponse(resp *http.Response) (time.Duration, error) {
	headerValue := resp.Header.Get("Retry-After")
	if headerValue == "" {
		return 0, &ProtocolError{Message: "429 response is missing the Retry-After header"}
	}
	parsed, err := strconv.Atoi(headerValue)
	if err != nil || parsed < 0 {
		return 0, &ProtocolError{Message: fmt.Sprintf("429 response has unparsable Retry-After value %q", headerValue)}
	}
	return time.Duration(parsed) * c.retryAfterUnit, nil
}

func decodeResponse[T any](resp *http.Response) (T, error) {
	var zero T
	defer func() {
		_ = resp.Body.Close()
	}()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &TransportError{Inner: err}
	}
	return unmarshalEnvelope[T](raw, resp.StatusCode)
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
