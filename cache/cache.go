package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache collaborator. Get reports whether the key
// was present; decoding happens into dest.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}
