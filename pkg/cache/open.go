package cache

import (
	"context"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
)

// Options selects and configures a backend for [Open].
type Options struct {
	// Backend is "file", "redis", "mongo", or "none". Empty means file.
	Backend string

	// Dir overrides the file backend's directory.
	Dir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

// Open constructs the configured cache backend.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "file", "":
		if opts.Dir != "" {
			return NewFileCache(opts.Dir)
		}
		return NewDefaultFileCache()
	case "redis":
		return NewRedisCache(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	case "mongo":
		return NewMongoCache(ctx, opts.MongoURI, opts.MongoDatabase, opts.MongoCollection)
	case "none":
		return NewNullCache(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %s", opts.Backend)
	}
}
