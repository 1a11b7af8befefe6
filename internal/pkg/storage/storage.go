package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded files (profile images, absence
// receipts) and generated backups live.
type FileStorage interface {
	// Save writes the content under the given relative path and returns
	// the stored path.
	Save(ctx context.Context, path string, content io.Reader) (string, error)

	// Open returns a reader for a previously stored file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, path string) error
}
