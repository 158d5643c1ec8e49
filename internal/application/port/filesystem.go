package port

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	// EnsureDir creates path and its parents when missing.
	EnsureDir(ctx context.Context, path string) error
	// GetSize returns the size of a file, or the total of a directory tree.
	// A missing path has size 0.
	GetSize(ctx context.Context, path string) (int64, error)
	RemoveAll(ctx context.Context, path string) error
}
