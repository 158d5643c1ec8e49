package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/logging"
)

// AcceptTypeFor builds the picker filter for the types a page accepts.
// Blank entries are dropped; no entries, or more than one, mean "*/*".
func AcceptTypeFor(acceptTypes []string) string {
	var kept []string
	for _, t := range acceptTypes {
		if strings.TrimSpace(t) != "" {
			kept = append(kept, t)
		}
	}
	joined := strings.Join(kept, ",")
	if joined == "" || strings.Contains(joined, ",") {
		return "*/*"
	}
	return joined
}

// FileChooser forwards page file inputs to the system picker. Only one
// chooser is outstanding: opening another resolves the stale one with nil.
type FileChooser struct {
	picker port.FilePicker

	mu      sync.Mutex
	seq     uint64
	pending func([]string)
	stop    context.CancelFunc
}

// NewFileChooser creates a chooser backed by picker.
func NewFileChooser(picker port.FilePicker) *FileChooser {
	return &FileChooser{picker: picker}
}

// Show opens the picker. callback receives the selected URIs, or nil when
// the user cancelled or the picker failed. It reports whether the picker
// was shown.
func (c *FileChooser) Show(ctx context.Context, acceptTypes []string, multiple bool, callback func([]string)) bool {
	log := logging.FromContext(ctx).With().Str("component", "file-chooser").Logger()

	pickCtx, stop := context.WithCancel(ctx)

	c.mu.Lock()
	stale, staleStop := c.pending, c.stop
	c.seq++
	seq := c.seq
	c.pending = callback
	c.stop = stop
	c.mu.Unlock()

	if staleStop != nil {
		staleStop()
	}
	if stale != nil {
		log.Debug().Msg("cancelling stale file chooser")
		stale(nil)
	}

	params := port.FileChooserParams{
		AcceptType: AcceptTypeFor(acceptTypes),
		Multiple:   multiple,
	}
	err := c.picker.PickFiles(pickCtx, params, func(uris []string) {
		if cb := c.take(seq); cb != nil {
			cb(uris)
		}
	})
	if err != nil {
		log.Warn().Err(err).Msg("file picker unavailable")
		if cb := c.take(seq); cb != nil {
			cb(nil)
		}
		return false
	}
	return true
}

// Cancel resolves any outstanding chooser with nil and cancels the context
// the picker was opened with.
func (c *FileChooser) Cancel() {
	c.mu.Lock()
	cb, stop := c.pending, c.stop
	c.pending, c.stop = nil, nil
	c.mu.Unlock()
	if stop != nil {
		stop()
	}
	if cb != nil {
		cb(nil)
	}
}

// take hands out the callback for chooser seq once.
func (c *FileChooser) take(seq uint64) func([]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq || c.pending == nil {
		return nil
	}
	cb := c.pending
	c.pending = nil
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	return cb
}
