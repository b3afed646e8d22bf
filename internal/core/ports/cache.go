package ports

import (
	"context"
	"time"
)

// Cache is the advisory key/value cache port. TTLs have whole-second
// resolution. Set silently overwrites an existing key. Get on a missing or
// expired key returns found == false, never an error; err is reserved for
// transport faults, which arrive as KindInternal.
type Cache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (value string, found bool, err error)
}
