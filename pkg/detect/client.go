package detect

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/cache"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/httputil"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/observability"
)

// keyType label for cache hooks.
const cacheKeyType = "verdict"

// Client calls the analysis service, with an optional verdict cache in
// front of it.
type Client struct {
	base  string
	http  *httputil.Client
	cache cache.Cache
	ttl   time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout (default 120s; analysis
// scrapes the article and runs models).
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http = httputil.NewClient(d) }
}

// WithCache fronts the service with a verdict cache. ttl <= 0 caches
// without expiry.
func WithCache(store cache.Cache, ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cache = store
		c.ttl = ttl
	}
}

// NewClient creates a client for the analysis service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  httputil.NewClient(120 * time.Second),
		cache: cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// detectRequest is the service request body.
type detectRequest struct {
	URL string `json:"url"`
}

// Detect analyzes the article at articleURL. Cached verdicts are
// returned without contacting the service.
func (c *Client) Detect(ctx context.Context, articleURL string) (*Verdict, error) {
	if err := validateURL(articleURL); err != nil {
		return nil, err
	}

	key := cache.VerdictKey(articleURL)
	if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		var v Verdict
		if err := json.Unmarshal(data, &v); err == nil {
			return &v, nil
		}
		// Corrupt cache entry: drop it and fall through to the service.
		_ = c.cache.Delete(ctx, key)
	} else {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	var v Verdict
	if err := c.http.PostJSON(ctx, c.base+"/api/detect", detectRequest{URL: articleURL}, &v); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(&v); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err == nil {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
		}
	}
	return &v, nil
}

// validateURL rejects article URLs the service would refuse anyway.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidURL, err, "parse %s", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrCodeInvalidURL, "article URL must be http(s): %s", raw)
	}
	if u.Host == "" {
		return errors.New(errors.ErrCodeInvalidURL, "article URL has no host: %s", raw)
	}
	return nil
}
