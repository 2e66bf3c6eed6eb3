// Package metadata is a string-keyed blob store in the local SQLite database.
// The session store keeps the signed-in user, the keep-logged-in flag and the
// auth token here.
package metadata

import (
	"context"
)

// Repository is a small key/value store. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context, prefix string) (map[string][]byte, error)
}
