package download

import (
	"fmt"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultFilename is used when no valid filename can be determined.
	DefaultFilename = "download"

	// DefaultMimeType is used when the URL extension maps to no known type.
	DefaultMimeType = "application/octet-stream"

	// MaxFilenameLength caps stored file names, in characters.
	MaxFilenameLength = 255
)

// SanitizeFilename sanitizes a filename to prevent path traversal attacks.
// It extracts only the base name and handles edge cases like "." or "..".
func SanitizeFilename(name string) string {
	// filepath.Base only handles the OS-native separator.
	name = strings.ReplaceAll(name, "\\", "/")

	clean := filepath.Base(name)
	if clean == "." || clean == ".." || clean == "" || clean == "/" {
		return DefaultFilename
	}

	return clean
}

// GuessFilename picks a file name for a download the way browsers do:
// the Content-Disposition filename wins, then the last URL path segment,
// and an extension is added from the MIME type when the name has none.
func GuessFilename(rawURL, contentDisposition, mimeType string) string {
	name := filenameFromDisposition(contentDisposition)
	if name == "" {
		name = ExtractFilenameFromURI(rawURL)
	}
	name = SanitizeFilename(name)

	if filepath.Ext(name) == "" {
		if ext := GetExtensionFromMimeType(mimeType); ext != "" {
			name += ext
		}
	}
	return name
}

// SafeDownloadName makes a guessed name safe to store: separators become
// underscores, the length is capped and a blank result falls back to
// DefaultFilename.
func SafeDownloadName(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if runes := []rune(name); len(runes) > MaxFilenameLength {
		name = string(runes[:MaxFilenameLength])
	}
	if strings.TrimSpace(name) == "" {
		return DefaultFilename
	}
	return name
}

// MimeTypeFromURL returns the MIME type implied by the URL's file extension,
// or DefaultMimeType.
func MimeTypeFromURL(rawURL string) string {
	p := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		p = parsed.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		return DefaultMimeType
	}
	if mt, _, err := mime.ParseMediaType(mime.TypeByExtension(ext)); err == nil && mt != "" {
		return mt
	}
	return DefaultMimeType
}

func filenameFromDisposition(cd string) string {
	if cd == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(cd)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(params["filename"])
}

// preferredExtensions maps MIME types whose stdlib extension list is
// platform-dependent (alphabetical order) to the canonical extension.
var preferredExtensions = map[string]string{
	"text/html":                ".html",
	"text/plain":               ".txt",
	"text/xml":                 ".xml",
	"application/xhtml+xml":    ".xhtml",
	"image/jpeg":               ".jpg",
	"image/svg+xml":            ".svg",
	"audio/mpeg":               ".mp3",
	"video/mp4":                ".mp4",
	"application/octet-stream": ".bin",
}

// GetExtensionFromMimeType returns a file extension for a given MIME type.
// Returns empty string if MIME type is unknown or empty.
func GetExtensionFromMimeType(mimeType string) string {
	if mimeType == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mediaType == "" {
		return ""
	}

	if ext, ok := preferredExtensions[mediaType]; ok {
		return ext
	}

	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}

	return exts[0]
}

// ExtractFilenameFromURI extracts the filename from a URI path component.
// Returns DefaultFilename for edge cases.
func ExtractFilenameFromURI(uri string) string {
	if uri == "" {
		return DefaultFilename
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return extractFromPath(uri)
	}

	return extractFromPath(parsed.Path)
}

func extractFromPath(p string) string {
	base := filepath.Base(p)
	if base == "." || base == "" || base == "/" {
		return DefaultFilename
	}
	return base
}

// MakeUniqueFilename generates a unique filename by appending _(N) if needed.
// The exists function should return true if the given path already exists.
func MakeUniqueFilename(dir, filename string, exists func(path string) bool) string {
	destPath := filepath.Join(dir, filename)
	if !exists(destPath) {
		return filename
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for i := 1; i < 1000; i++ {
		candidate := fmt.Sprintf("%s_(%d)%s", base, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}

	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
}
