// Package cache provides the injected TTL cache used by the recommendation
// services. A cache miss is always safe, just slower, so implementations never
// surface their own failures as request failures.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache is a best-effort key/value store with per-entry TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Fingerprint derives a stable cache key from request parts. Callers pass the
// parts already sorted where order must not matter.
func Fingerprint(prefix string, parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return prefix + ":" + hex.EncodeToString(sum[:16])
}
