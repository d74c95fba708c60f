package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/observability"
)

// Client is an http.Client wrapper that speaks JSON and carries the
// cross-service conventions: an X-Request-ID header on every request,
// observability hooks, and retry on transient failures.
type Client struct {
	http *http.Client
}

// NewClient creates a client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// PostJSON sends body as JSON and decodes the response into out.
// Transient failures are retried with exponential backoff.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPayload, err, "encode request body")
	}
	return RetryWithBackoff(ctx, func() error {
		return c.do(ctx, http.MethodPost, rawURL, payload, out)
	})
}

// GetJSON fetches rawURL and decodes the response into out.
// Transient failures are retried with exponential backoff.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any) error {
	return RetryWithBackoff(ctx, func() error {
		return c.do(ctx, http.MethodGet, rawURL, nil, out)
	})
}

// do performs a single attempt. Transient outcomes come back wrapped in
// RetryableError so Retry knows to go again.
func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidURL, err, "parse %s", rawURL)
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	observability.HTTP().OnRequest(ctx, method, u.Host, u.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, method, u.Host, u.Path, err)
		if ctx.Err() != nil {
			return errors.Wrap(errors.ErrCodeTimeout, err, "%s %s", method, u.Host)
		}
		return &RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", method, u.Host)}
	}
	defer resp.Body.Close()

	observability.HTTP().OnResponse(ctx, method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RetryableError{Err: errors.New(errors.ErrCodeRateLimited, "%s rate limited", u.Host)}
	case resp.StatusCode >= 500:
		return &RetryableError{Err: errors.New(errors.ErrCodeServiceDown, "%s returned %d", u.Host, resp.StatusCode)}
	case resp.StatusCode >= 400:
		return errors.New(errors.ErrCodeInvalidInput, "%s returned %d", u.Host, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPayload, err, "decode response from %s", u.Host)
	}
	return nil
}
