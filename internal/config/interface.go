package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the document stored at path. It returns an error wrapping
	// ErrNotFound when there is no document at path, and a parse error when
	// the file exists but cannot be decoded.
	Load(ctx context.Context, path string) (*Document, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (*Document, error)

// Load calls f(ctx, path).
func (f LoaderFunc) Load(ctx context.Context, path string) (*Document, error) {
	return f(ctx, path)
}
