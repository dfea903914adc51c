package ports

import "context"

// SessionStorage is the key-value store the current Identity is persisted in.
// Get returns domain.ErrKeyNotFound for a missing key; Delete of a missing key
// is not an error.
type SessionStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
