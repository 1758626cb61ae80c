package storage

import (
	"context"
	"io"
)

// ObjectStore uploads media assets and returns the externally reachable URL.
type ObjectStore interface {
	Upload(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, folder, name string) error
}
