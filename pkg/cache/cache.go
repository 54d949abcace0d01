// Package cache stores generated building documents keyed by a hash of the
// request, so identical requests skip the solver entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage backend contract. Get reports a miss with a false
// second return rather than an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RequestKey derives a stable cache key from any JSON-encodable request.
// The key format is prefix:hash. Generation is deterministic, so two
// requests with the same key always produce the same document.
func RequestKey(prefix string, v any) string {
	data, _ := json.Marshal(v)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash returns the full SHA-256 hex digest of data.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
