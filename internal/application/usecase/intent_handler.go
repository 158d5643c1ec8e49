package usecase

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/logging"
)

// DefaultShareTextLimit caps shared text handed to the page, in characters.
const DefaultShareTextLimit = 4096

// IntentAction says what another application asked the shell to do.
type IntentAction int

const (
	// IntentView opens a link.
	IntentView IntentAction = iota
	// IntentSend shares text.
	IntentSend
)

// Intent is a request from outside the shell: a deep link or shared text.
type Intent struct {
	Action IntentAction
	// Data is the link for IntentView.
	Data string
	// Text is the shared content for IntentSend.
	Text string
}

var shareEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", "")

// EscapeShareText makes text safe inside a single-quoted script string.
// The result holds at most limit characters and never ends inside an
// escape sequence.
func EscapeShareText(text string, limit int) string {
	if limit <= 0 {
		limit = DefaultShareTextLimit
	}
	var b strings.Builder
	count := 0
	for _, r := range text {
		piece := shareEscaper.Replace(string(r))
		n := utf8.RuneCountInString(piece)
		if count+n > limit {
			break
		}
		b.WriteString(piece)
		count += n
	}
	return b.String()
}

// ShareScript returns the script delivering escaped text to the page.
func ShareScript(escaped string) string {
	return "if (typeof window.__fluxerReceiveShare === 'function') " +
		"{ window.__fluxerReceiveShare('" + escaped + "'); }"
}

// IntentHandler applies deep links and shared text to the surface.
type IntentHandler struct {
	serverURL string
	scheme    string
	limit     int
	surface   port.ContentSurface

	mu      sync.Mutex
	pending string
	hasText bool
}

// NewIntentHandler creates a handler for the configured server.
func NewIntentHandler(serverURL, scheme string, limit int, surface port.ContentSurface) *IntentHandler {
	if scheme == "" {
		scheme = url.DefaultDeepLinkScheme
	}
	if limit <= 0 {
		limit = DefaultShareTextLimit
	}
	return &IntentHandler{
		serverURL: serverURL,
		scheme:    scheme,
		limit:     limit,
		surface:   surface,
	}
}

// Handle applies intent and reports whether it changed what is loaded.
func (h *IntentHandler) Handle(ctx context.Context, intent Intent) bool {
	log := logging.FromContext(ctx).With().Str("component", "intent").Logger()

	switch intent.Action {
	case IntentView:
		target, ok := url.DeepLinkTarget(h.serverURL, intent.Data, h.scheme)
		if !ok {
			log.Debug().Str("data", intent.Data).Msg("link not handled")
			return false
		}
		log.Debug().Str("target", target).Msg("opening deep link")
		h.surface.LoadURL(ctx, target)
		return true

	case IntentSend:
		if intent.Text == "" || h.serverURL == "" {
			return false
		}
		h.mu.Lock()
		h.pending = intent.Text
		h.hasText = true
		h.mu.Unlock()
		log.Debug().Int("length", utf8.RuneCountInString(intent.Text)).Msg("shared text waiting for page")
		h.surface.LoadURL(ctx, h.serverURL)
		return true
	}
	return false
}

// HasPendingShare reports whether shared text waits for the next trusted page.
func (h *IntentHandler) HasPendingShare() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hasText
}

// DeliverPendingShare hands waiting text to the page. It runs after a trusted
// page landed; the text is delivered once.
func (h *IntentHandler) DeliverPendingShare(ctx context.Context) {
	h.mu.Lock()
	text, ok := h.pending, h.hasText
	h.pending, h.hasText = "", false
	h.mu.Unlock()

	if !ok {
		return
	}
	h.surface.EvaluateScript(ctx, ShareScript(EscapeShareText(text, h.limit)))
}
