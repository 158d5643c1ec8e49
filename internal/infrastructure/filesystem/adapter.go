// Package filesystem implements port.FileSystem on top of afero, so the same
// code serves the real disk and in-memory trees in tests.
package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/shadowflee/fluxer/internal/application/port"
)

var _ port.FileSystem = (*Adapter)(nil)

// Adapter implements port.FileSystem.
type Adapter struct {
	fs afero.Fs
}

// New returns an adapter for the OS filesystem.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs returns an adapter over fsys.
func NewWithFs(fsys afero.Fs) *Adapter {
	return &Adapter{fs: fsys}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

func (a *Adapter) IsDirectory(_ context.Context, path string) (bool, error) {
	return afero.IsDir(a.fs, path)
}

// EnsureDir creates path with mode 0755.
func (a *Adapter) EnsureDir(_ context.Context, path string) error {
	return a.fs.MkdirAll(path, 0o755)
}

// GetSize sums regular files under path. Walking stops when ctx is done.
func (a *Adapter) GetSize(ctx context.Context, path string) (int64, error) {
	var total int64
	err := afero.Walk(a.fs, path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	return total, err
}

func (a *Adapter) RemoveAll(_ context.Context, path string) error {
	return a.fs.RemoveAll(path)
}
