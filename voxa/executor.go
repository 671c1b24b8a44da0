package voxa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/voxa-ai/voxa-go/internal/metrics"
)

// execute runs the shared retry loop for all three request shapes and
// returns the first successful response. Ownership of the response body and
// its deadline cancel passes to the caller; every failure path inside the
// loop drains and closes its own response so no connection handle leaks.
func (c *Client) execute(ctx context.Context, req *request) (*http.Response, context.CancelFunc, error) {
	metrics.RequestsTotal.WithLabelValues(req.op, req.method).Inc()

	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		start := time.Now()
		resp, cancel, err := c.transport.roundTrip(ctx, req)
		metrics.AttemptsTotal.WithLabelValues(req.op).Inc()
		metrics.AttemptLatency.WithLabelValues(req.op).Observe(time.Since(start).Seconds())

		if err != nil {
			// Transport failure: deadline exceeded or connection-level
			// fault. Outer cancellation is not the server's fault and is
			// surfaced as-is.
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			if c.retry.ShouldRetry(attempt, 0, true) {
				delay := c.retry.Delay(attempt, "")
				c.logger.Debug("request attempt failed, retrying",
					"op", req.op, "attempt", attempt, "delay", delay, "error", err)
				metrics.RetriesTotal.WithLabelValues("network").Inc()
				if serr := sleep(ctx, delay); serr != nil {
					return nil, nil, serr
				}
				continue
			}
			apiErr := networkError(err)
			metrics.ErrorsTotal.WithLabelValues(string(apiErr.Kind)).Inc()
			return nil, nil, apiErr
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, cancel, nil
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()
		if readErr != nil {
			body = nil
		}

		if !c.retry.RetryableStatus(resp.StatusCode) {
			apiErr := classifyStatus(resp.StatusCode, body)
			metrics.ErrorsTotal.WithLabelValues(string(apiErr.Kind)).Inc()
			return nil, nil, apiErr
		}
		if c.retry.ShouldRetry(attempt, resp.StatusCode, false) {
			delay := c.retry.Delay(attempt, resp.Header.Get("Retry-After"))
			c.logger.Debug("retryable status, retrying",
				"op", req.op, "attempt", attempt, "status", resp.StatusCode, "delay", delay)
			metrics.RetriesTotal.WithLabelValues("status").Inc()
			if serr := sleep(ctx, delay); serr != nil {
				return nil, nil, serr
			}
			continue
		}
		// Budget exhausted: classify the last response so the caller sees
		// the real HTTP status, not a generic exhaustion error.
		apiErr := classifyStatus(resp.StatusCode, body)
		metrics.ErrorsTotal.WithLabelValues(string(apiErr.Kind)).Inc()
		return nil, nil, apiErr
	}

	// Only reachable with a negative retry budget; still resolves to a
	// typed error.
	apiErr := &APIError{Kind: ErrRetriesExhausted, Code: "max_retries_exceeded", Message: "Max retries exceeded"}
	metrics.ErrorsTotal.WithLabelValues(string(apiErr.Kind)).Inc()
	return nil, nil, apiErr
}

// unary executes req and returns the raw JSON response. A 204 yields nil
// with no attempt to parse a body.
func (c *Client) unary(ctx context.Context, req *request) (json.RawMessage, error) {
	resp, cancel, err := c.execute(ctx, req)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(fmt.Errorf("read response body: %w", err))
	}
	return json.RawMessage(body), nil
}

// unaryInto executes req and decodes the JSON response into v. v may be nil
// when the caller expects no body.
func (c *Client) unaryInto(ctx context.Context, req *request, v any) error {
	raw, err := c.unary(ctx, req)
	if err != nil {
		return err
	}
	if v == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s response: %w", req.op, err)
	}
	return nil
}

// stream executes req and hands the raw body back as a caller-owned stream.
// The attempt deadline stays armed until the caller closes the stream.
func (c *Client) stream(ctx context.Context, req *request) (*AudioStream, error) {
	resp, cancel, err := c.execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return newAudioStream(resp, cancel), nil
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
