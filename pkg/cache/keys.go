package cache

import (
	"context"
	"time"
)

// Key prefixes, one per cached artifact kind.
const (
	prefixVerdict = "verdict"
	prefixLayout  = "layout"
	prefixRender  = "render"
)

// VerdictKey builds the cache key for an analysis verdict by article URL.
func VerdictKey(url string) string {
	return hashKey(prefixVerdict, url)
}

// LayoutKey builds the cache key for a settled layout. The seed and
// dimensions participate because they change the resulting positions.
func LayoutKey(graphHash string, seed int64, width, height float64) string {
	return hashKey(prefixLayout, graphHash, seed, width, height)
}

// RenderKey builds the cache key for a rendered artifact.
func RenderKey(layoutHash, format string) string {
	return hashKey(prefixRender, layoutHash, format)
}

// Scoped returns a key-prefixing wrapper for multi-tenant isolation,
// e.g. per-user namespaces on the hosted dashboard.
func Scoped(c Cache, prefix string) Cache {
	return &scopedCache{inner: c, prefix: prefix}
}

type scopedCache struct {
	inner  Cache
	prefix string
}

func (s *scopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *scopedCache) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *scopedCache) Close() error { return s.inner.Close() }

// Ensure scopedCache implements Cache.
var _ Cache = (*scopedCache)(nil)
