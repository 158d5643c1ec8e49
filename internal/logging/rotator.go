package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	defaultMaxSizeMB = 10
	backupStamp      = "20060102T150405.000"
)

// RotatingFile appends log lines to one file. When a write would push the
// file past its size limit, the file is renamed to a timestamped backup,
// optionally gzipped, and a fresh file is started. Backups beyond the count
// or age limits are removed.
type RotatingFile struct {
	mu     sync.Mutex
	path   string
	policy FileConfig
	limit  int64

	f    *os.File
	size int64
}

// OpenRotatingFile opens policy.Dir/name for appending.
func OpenRotatingFile(policy FileConfig, name string) (*RotatingFile, error) {
	if policy.MaxSizeMB <= 0 {
		policy.MaxSizeMB = defaultMaxSizeMB
	}
	rf := &RotatingFile{
		path:   filepath.Join(policy.Dir, name),
		policy: policy,
		limit:  int64(policy.MaxSizeMB) << 20,
	}
	if err := rf.open(); err != nil {
		return nil, err
	}
	return rf, nil
}

func (rf *RotatingFile) open() error {
	f, err := os.OpenFile(rf.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	rf.f, rf.size = f, st.Size()
	return nil
}

// Write implements io.Writer.
func (rf *RotatingFile) Write(p []byte) (int, error) {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.f == nil {
		if err := rf.open(); err != nil {
			return 0, err
		}
	}
	if rf.size > 0 && rf.size+int64(len(p)) > rf.limit {
		if err := rf.roll(); err != nil {
			return 0, err
		}
	}

	n, err := rf.f.Write(p)
	rf.size += int64(n)
	return n, err
}

// roll moves the current file aside and starts a new one. Failures to
// compress or prune old backups do not stop logging.
func (rf *RotatingFile) roll() error {
	_ = rf.f.Close()
	rf.f = nil

	backup := rf.path + "." + time.Now().Format(backupStamp)
	if err := os.Rename(rf.path, backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if rf.policy.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation: %v\n", err)
		}
	}
	if err := rf.prune(time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation: %v\n", err)
	}
	return rf.open()
}

type backupFile struct {
	path    string
	modTime time.Time
}

func (rf *RotatingFile) backups() ([]backupFile, error) {
	entries, err := os.ReadDir(filepath.Dir(rf.path))
	if err != nil {
		return nil, err
	}
	prefix := filepath.Base(rf.path) + "."
	var out []backupFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, backupFile{
			path:    filepath.Join(filepath.Dir(rf.path), e.Name()),
			modTime: info.ModTime(),
		})
	}
	// Newest first.
	slices.SortFunc(out, func(a, b backupFile) int { return b.modTime.Compare(a.modTime) })
	return out, nil
}

// prune removes backups older than MaxAgeDays and all but the newest
// MaxBackups. Zero disables either limit.
func (rf *RotatingFile) prune(now time.Time) error {
	list, err := rf.backups()
	if err != nil {
		return err
	}
	maxAge := time.Duration(rf.policy.MaxAgeDays) * 24 * time.Hour

	var errs []error
	kept := 0
	for _, b := range list {
		expired := maxAge > 0 && now.Sub(b.modTime) > maxAge
		surplus := rf.policy.MaxBackups > 0 && kept >= rf.policy.MaxBackups
		if !expired && !surplus {
			kept++
			continue
		}
		if err := os.Remove(b.path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (err error) {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(dst)
	if _, err = io.Copy(zw, src); err == nil {
		err = zw.Close()
	}
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path + ".gz")
		return fmt.Errorf("compress %s: %w", filepath.Base(path), err)
	}
	return os.Remove(path)
}

// Close closes the current file. It is safe to call more than once.
func (rf *RotatingFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()
	if rf.f == nil {
		return nil
	}
	err := rf.f.Close()
	rf.f = nil
	return err
}
