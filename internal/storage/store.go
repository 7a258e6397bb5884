// Package storage implements the key/value store all user data lives in.
// Values are JSON-encoded; a stored value that no longer decodes is treated
// as absent rather than surfaced to callers.
package storage

import "context"

// Store is a synchronous string-key → bytes store.
//
// Contract:
//   - Get returns (nil, nil) for an absent key.
//   - Set overwrites any existing value.
//   - Remove is idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
