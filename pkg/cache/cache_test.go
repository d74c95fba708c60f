package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	key := VerdictKey("https://example.com/article")
	if err := c.Set(ctx, key, []byte(`{"score":0.8}`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(data) != `{"score":0.8}` {
		t.Errorf("Get = %q", data)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Error("key should be gone after Delete")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("expired entry: ok=%v err=%v", ok, err)
	}
}

func TestFileCacheMissingKey(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if _, ok, err := c.Get(ctx, "nope"); ok || err != nil {
		t.Errorf("missing key: ok=%v err=%v", ok, err)
	}
	if err := c.Delete(ctx, "nope"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestNullCacheNeverHits(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache must never report a hit")
	}
}

func TestRedisCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	c, err := NewRedisCache(ctx, mr.Addr(), "", 0)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	key := VerdictKey("https://example.com/article")
	if err := c.Set(ctx, key, []byte("cached"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(data) != "cached" {
		t.Errorf("Get = %q", data)
	}

	// Miss on unknown key, not an error.
	if _, ok, err := c.Get(ctx, "unknown"); ok || err != nil {
		t.Errorf("unknown key: ok=%v err=%v", ok, err)
	}
}

func TestRedisCacheTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	c, err := NewRedisCache(ctx, mr.Addr(), "", 0)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("entry should expire after the TTL")
	}
}

func TestScopedCachePrefixesKeys(t *testing.T) {
	ctx := context.Background()
	base, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer base.Close()

	scoped := Scoped(base, "tenant1:")
	if err := scoped.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, ok, _ := base.Get(ctx, "k"); ok {
		t.Error("unprefixed key should not exist in the base cache")
	}
	if data, ok, _ := base.Get(ctx, "tenant1:k"); !ok || string(data) != "v" {
		t.Errorf("prefixed key: ok=%v data=%q", ok, data)
	}
}

func TestKeysAreStableAndDistinct(t *testing.T) {
	if VerdictKey("https://a") != VerdictKey("https://a") {
		t.Error("same URL must hash to the same key")
	}
	if VerdictKey("https://a") == VerdictKey("https://b") {
		t.Error("different URLs must hash to different keys")
	}
	if LayoutKey("h", 42, 800, 600) == LayoutKey("h", 43, 800, 600) {
		t.Error("seed must participate in the layout key")
	}
	if RenderKey("h", "svg") == RenderKey("h", "png") {
		t.Error("format must participate in the render key")
	}
}
