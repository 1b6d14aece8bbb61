// Package storage persists avatar files. Two backends exist: a local
// directory served by the HTTP layer under /static/, and an S3-compatible
// bucket. The services layer only sees the Store interface.
package storage

import (
	"context"
	"io"
)

// Store saves an uploaded blob under key and returns the public URL the
// stored file will be reachable at.
type Store interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
