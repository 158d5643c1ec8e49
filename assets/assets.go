package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// ErrorPageName is the file name of the bundled fallback page.
const ErrorPageName = "error.html"

// ErrorPage is the local page shown when the server cannot be reached or a
// navigation leaves the trusted origin.
//
//go:embed error.html
var ErrorPage []byte

// Icon is the application icon installed next to the desktop entry.
//
//go:embed fluxer.svg
var Icon []byte

// WriteErrorPage materializes ErrorPage under dir and returns its file:// URL.
// The file is only rewritten when its content differs.
func WriteErrorPage(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, ErrorPageName)

	current, err := os.ReadFile(path)
	if err != nil || !bytes.Equal(current, ErrorPage) {
		if err := os.WriteFile(path, ErrorPage, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: abs}).String(), nil
}
