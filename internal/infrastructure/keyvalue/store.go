// internal/infrastructure/keyvalue/store.go
package keyvalue

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key does not exist in the store
var ErrKeyNotFound = errors.New("keyvalue: key not found")

// Store is the minimal key-value contract the mailbox buckets need.
// Values are opaque strings; callers own serialization.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}
