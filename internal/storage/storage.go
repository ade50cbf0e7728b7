// Package storage keeps uploaded project imagery.
package storage

import (
	"context"
	"io"
)

// Storage saves and removes image files.
type Storage interface {
	// Save writes data under key and returns the public URL of the file.
	// key is a slash separated relative path such as "projects/<uuid>.jpg".
	Save(ctx context.Context, key string, data io.Reader) (string, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
