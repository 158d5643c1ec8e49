package logging

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backupNames(t *testing.T, dir, name string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), name+".") {
			out = append(out, e.Name())
		}
	}
	return out
}

func TestRotatingFile_RotatesBySize(t *testing.T) {
	dir := t.TempDir()
	rf, err := OpenRotatingFile(FileConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 5}, "test.log")
	require.NoError(t, err)
	defer func() { _ = rf.Close() }()

	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = rf.Write(chunk)
	require.NoError(t, err)
	_, err = rf.Write(chunk)
	require.NoError(t, err)

	assert.Len(t, backupNames(t, dir, "test.log"), 1)

	info, err := os.Stat(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestRotatingFile_OversizedFirstWriteIsKept(t *testing.T) {
	dir := t.TempDir()
	rf, err := OpenRotatingFile(FileConfig{Dir: dir, MaxSizeMB: 1}, "test.log")
	require.NoError(t, err)
	defer func() { _ = rf.Close() }()

	_, err = rf.Write([]byte(strings.Repeat("y", 2<<20)))
	require.NoError(t, err)
	assert.Empty(t, backupNames(t, dir, "test.log"))
}

func TestRotatingFile_CompressesBackups(t *testing.T) {
	dir := t.TempDir()
	rf, err := OpenRotatingFile(FileConfig{Dir: dir, MaxSizeMB: 1, Compress: true}, "test.log")
	require.NoError(t, err)
	defer func() { _ = rf.Close() }()

	chunk := strings.Repeat("z", 700*1024)
	_, err = rf.Write([]byte(chunk))
	require.NoError(t, err)
	_, err = rf.Write([]byte(chunk))
	require.NoError(t, err)

	names := backupNames(t, dir, "test.log")
	require.Len(t, names, 1)
	require.True(t, strings.HasSuffix(names[0], ".gz"))

	f, err := os.Open(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, chunk, string(data))
}

func TestRotatingFile_PruneByCountAndAge(t *testing.T) {
	dir := t.TempDir()
	rf, err := OpenRotatingFile(FileConfig{Dir: dir, MaxBackups: 2, MaxAgeDays: 7}, "test.log")
	require.NoError(t, err)
	defer func() { _ = rf.Close() }()

	now := time.Now()
	ages := map[string]time.Duration{
		"test.log.a": time.Hour,
		"test.log.b": 2 * time.Hour,
		"test.log.c": 3 * time.Hour,
		"test.log.d": 30 * 24 * time.Hour,
	}
	for name, age := range ages {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("old"), 0o600))
		require.NoError(t, os.Chtimes(p, now.Add(-age), now.Add(-age)))
	}

	require.NoError(t, rf.prune(now))
	assert.ElementsMatch(t, []string{"test.log.a", "test.log.b"}, backupNames(t, dir, "test.log"))
}

func TestRotatingFile_CloseTwice(t *testing.T) {
	rf, err := OpenRotatingFile(FileConfig{Dir: t.TempDir(), MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1, Compress: true}, "test.log")
	require.NoError(t, err)
	require.NoError(t, rf.Close())
	require.NoError(t, rf.Close())
}
