package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codeGROOVE-dev/bdcache"
	"github.com/codeGROOVE-dev/bdcache/persist/localfs"
)

// Disk wraps bdcache with disk persistence to implement the Cache interface.
// It is used by the CLI so repeated lookups across runs avoid re-fetching.
type Disk struct {
	cache *bdcache.Cache[string, []byte]
	ttl   time.Duration
}

// NewDisk creates a Disk cache with persistence under ~/.cache/figurehead.
// ttl is the time-to-live for cached entries.
func NewDisk(ttl time.Duration) (*Disk, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to temp dir if user cache dir not available
		cacheDir = os.TempDir()
	}
	return NewDiskWithPath(ttl, filepath.Join(cacheDir, "figurehead"))
}

// NewDiskWithPath creates a Disk cache with persistence at the specified path.
func NewDiskWithPath(ttl time.Duration, cachePath string) (*Disk, error) {
	if err := os.MkdirAll(cachePath, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	persist, err := localfs.New[string, []byte]("figurehead", cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create persistence layer: %w", err)
	}

	ctx := context.Background()
	cache, err := bdcache.New[string, []byte](
		ctx,
		bdcache.WithPersistence(persist),
		bdcache.WithDefaultTTL(ttl),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bdcache: %w", err)
	}

	return &Disk{cache: cache, ttl: ttl}, nil
}

// Get retrieves a cached value.
func (d *Disk) Get(ctx context.Context, kind, key string) (data []byte, found bool) {
	data, found, err := d.cache.Get(ctx, Key(kind, key))
	if err != nil || !found {
		return nil, false
	}
	return data, true
}

// Set stores a value. Cache write failures are ignored: they cost a
// re-fetch later, never a wrong answer.
func (d *Disk) Set(ctx context.Context, kind, key string, data []byte) error {
	_ = d.cache.Set(ctx, Key(kind, key), data, d.ttl) //nolint:errcheck // cache errors are non-critical
	return nil
}

// Close flushes and closes the cache.
func (d *Disk) Close() error {
	return d.cache.Close()
}

// Ensure Disk implements Cache.
var _ Cache = (*Disk)(nil)
