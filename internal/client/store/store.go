// Package store persists small client-side settings (the access token and
// UI preferences) in a local SQLite file so they survive restarts.
package store

import "context"

// Well-known keys.
const (
	KeyAccessToken = "access_token"
	KeyTheme       = "theme"
)

// Store is a durable string key-value store. Get returns "" without error
// for an absent key; Delete of an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
