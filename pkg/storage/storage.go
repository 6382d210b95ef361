package storage

import (
	"context"
	"io"
	"strings"
)

// FileStorage stores avatar files under a caller chosen name.
type FileStorage interface {
	// Save writes r under name, replacing any previous content, and returns its location
	// (a filesystem path or a URL depending on the backend).
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Delete removes the file at location. Missing files are not an error.
	Delete(ctx context.Context, location string) error
}

// IsRemote reports whether location is a URL rather than a local path.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
