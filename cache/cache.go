// Package cache provides process-wide memoization for search results and page text.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Cache stores raw values keyed by a (kind, key) pair. Kind is a namespace
// such as "search:duckduckgo" or "page"; key is the query string or URL.
// Writes are whole-value replacements: concurrent populators of the same
// key may race, but the loser overwrites with an equivalent value.
type Cache interface {
	Get(ctx context.Context, kind, key string) (data []byte, found bool)
	Set(ctx context.Context, kind, key string, data []byte) error
}

// Key converts a (kind, key) pair to a uniform cache key using SHA256.
// This keeps keys filesystem-safe regardless of what the query contains.
func Key(kind, key string) string {
	hash := sha256.Sum256([]byte(kind + "|" + key))
	return hex.EncodeToString(hash[:])
}
