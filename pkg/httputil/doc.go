// Package httputil provides HTTP utilities for the analysis service client.
//
// # Overview
//
// This package provides infrastructure shared by every outbound call:
//
//   - [Client]: JSON request helper with request IDs and instrumentation
//   - [Retry]: Automatic retry with exponential backoff
//
// # Client
//
// [Client] wraps http.Client with the conventions the analysis service
// expects: JSON bodies, an X-Request-ID header for correlating logs
// across services, and observability hooks on every request.
//
// Usage:
//
//	client := httputil.NewClient(30 * time.Second)
//	var out detectResponse
//	err := client.PostJSON(ctx, base+"/api/detect", req, &out)
//
// # Retry
//
// [Retry] wraps requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Non-transient failures (4xx other than 429, decode errors) are
// returned immediately. [Client] classifies responses and wraps the
// transient ones in [RetryableError] so the two compose without extra
// glue at call sites.
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Max retries: 3
//   - Base backoff: 1 second (doubling each retry)
package httputil
