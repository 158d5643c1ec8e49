package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/cli/styles"
)

// RecordingSurface stands in for the browser view. It remembers the page it
// was last asked to load and every script it ran, and prints both.
type RecordingSurface struct {
	out   io.Writer
	theme *styles.Theme

	mu      sync.Mutex
	current string
	loads   []string
	scripts []string
}

var _ port.ContentSurface = (*RecordingSurface)(nil)

// NewRecordingSurface creates a surface printing to out. out may be nil.
func NewRecordingSurface(out io.Writer, theme *styles.Theme) *RecordingSurface {
	if out == nil {
		out = io.Discard
	}
	return &RecordingSurface{out: out, theme: theme}
}

// LoadURL implements port.ContentSurface.
func (s *RecordingSurface) LoadURL(_ context.Context, url string) {
	s.mu.Lock()
	s.current = url
	s.loads = append(s.loads, url)
	s.mu.Unlock()

	fmt.Fprintln(s.out, s.theme.Field("load", url))
}

// EvaluateScript implements port.ContentSurface.
func (s *RecordingSurface) EvaluateScript(_ context.Context, script string) {
	s.mu.Lock()
	s.scripts = append(s.scripts, script)
	s.mu.Unlock()

	fmt.Fprintln(s.out, s.theme.Field("script", script))
}

// CurrentURL implements port.ContentSurface.
func (s *RecordingSurface) CurrentURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Landed records that the view now shows url without it having been loaded
// through LoadURL, as happens after a redirect.
func (s *RecordingSurface) Landed(url string) {
	s.mu.Lock()
	s.current = url
	s.mu.Unlock()
}

// Loads returns every address passed to LoadURL, in order.
func (s *RecordingSurface) Loads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.loads...)
}

// Scripts returns every script run, in order.
func (s *RecordingSurface) Scripts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.scripts...)
}

// PrintOpener reports external links instead of launching a browser.
type PrintOpener struct {
	Out   io.Writer
	Theme *styles.Theme
}

// Open implements port.ExternalOpener.
func (o PrintOpener) Open(_ context.Context, uri string) error {
	fmt.Fprintln(o.Out, o.Theme.Field("external", uri))
	return nil
}
