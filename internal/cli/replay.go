package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/infrastructure/jsbridge"
	"github.com/shadowflee/fluxer/internal/infrastructure/netwatch"
	"github.com/shadowflee/fluxer/internal/logging"
)

// Event types understood by the replayer.
const (
	EventCapability     = "capability"
	EventNavigate       = "navigate"
	EventLanded         = "landed"
	EventTransportError = "transport_error"
	EventTLS            = "tls"
	EventBridge         = "bridge"
	EventNetwork        = "network"
	EventDeepLink       = "deeplink"
	EventShare          = "share"
	EventDownload       = "download"
	EventFileChooser    = "file_chooser"
	EventPiP            = "pip"
	EventLeave          = "leave"
	EventServer         = "server"
	EventClose          = "close"
)

// Event is one line of a replay file.
type Event struct {
	Type string `json:"type"`

	Origin       string   `json:"origin,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`

	URL       string `json:"url,omitempty"`
	Host      string `json:"host,omitempty"`
	Reason    string `json:"reason,omitempty"`
	MainFrame bool   `json:"main_frame,omitempty"`

	Script string `json:"script,omitempty"`
	Text   string `json:"text,omitempty"`
	// Online is the network state for network events.
	Online bool `json:"online,omitempty"`
	// Active is the floating-window state for pip events.
	Active bool `json:"active,omitempty"`

	// Accept and Multiple describe a page file input.
	Accept   []string `json:"accept,omitempty"`
	Multiple bool     `json:"multiple,omitempty"`

	UserAgent          string `json:"user_agent,omitempty"`
	ContentDisposition string `json:"content_disposition,omitempty"`
	MimeType           string `json:"mime_type,omitempty"`
}

// ReadEvents decodes a replay file: one JSON object per line. Blank lines and
// lines starting with # are skipped.
func ReadEvents(ctx context.Context, r io.Reader, out chan<- Event) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if ev.Type == "" {
			return fmt.Errorf("line %d: missing event type", line)
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// Replayer feeds recorded page events through a harness and prints what the
// shell decided.
type Replayer struct {
	h     *Harness
	out   io.Writer
	theme *styles.Theme

	// WatchNetwork forwards NetworkManager state changes while replaying.
	WatchNetwork bool

	mu      sync.Mutex
	runtime *jsbridge.Runtime
}

// NewReplayer creates a replayer. Every new session gets a fresh script
// runtime with the bridge installed.
func NewReplayer(h *Harness, out io.Writer, theme *styles.Theme) *Replayer {
	r := &Replayer{h: h, out: out, theme: theme}
	h.Shell.OnSession(func(ctx context.Context, s *usecase.Session) {
		rt, err := jsbridge.New(s.Bridge, jsbridge.Options{Name: usecase.BridgeName})
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("script runtime unavailable")
			return
		}
		r.mu.Lock()
		r.runtime = rt
		r.mu.Unlock()
	})
	return r
}

// Run replays every event from in, then waits for pending work to settle.
func (r *Replayer) Run(ctx context.Context, in io.Reader) error {
	g, gctx := errgroup.WithContext(ctx)
	events := make(chan Event)
	watchCtx, stopWatch := context.WithCancel(gctx)
	defer stopWatch()

	g.Go(func() error {
		defer close(events)
		return ReadEvents(gctx, in, events)
	})
	g.Go(func() error {
		defer stopWatch()
		for ev := range events {
			if err := r.Dispatch(gctx, ev); err != nil {
				return err
			}
		}
		return r.settle(gctx)
	})
	if r.WatchNetwork {
		g.Go(func() error {
			err := netwatch.NewWatcher(connectivityListener{r.h}).Run(watchCtx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logging.FromContext(ctx).Warn().Err(err).Msg("network watch stopped")
			}
			return nil
		})
	}
	return g.Wait()
}

// settle lets posted dialog answers and transfers finish.
func (r *Replayer) settle(ctx context.Context) error {
	if err := r.h.Loop.Flush(ctx); err != nil {
		return err
	}
	r.h.Downloads.Wait()
	return r.h.Loop.Flush(ctx)
}

// Dispatch handles one event. Bridge scripts run on the calling goroutine;
// everything else runs on the main loop.
func (r *Replayer) Dispatch(ctx context.Context, ev Event) error {
	if ev.Type == EventBridge {
		return r.evalBridge(ctx, ev.Script)
	}

	var err error
	callErr := r.h.Loop.Call(ctx, func() {
		if ev.Type == EventServer {
			err = r.h.Shell.Reconfigure(ctx, ev.URL)
			r.decision("server", ev.URL, errLabel(err, "switched"), err == nil)
			return
		}
		s := r.h.Shell.Session()
		if s == nil || s.Closed() {
			r.decision(ev.Type, ev.URL, "no session", false)
			return
		}
		err = r.apply(ctx, s, ev)
	})
	if callErr != nil {
		return callErr
	}
	return err
}

func (r *Replayer) apply(ctx context.Context, s *usecase.Session, ev Event) error {
	switch ev.Type {
	case EventCapability:
		caps := make([]entity.Capability, 0, len(ev.Capabilities))
		for _, c := range ev.Capabilities {
			caps = append(caps, entity.Capability(c))
		}
		req := entity.NewCapabilityRequest(ev.Origin, caps...)
		subject := ev.Origin + " " + strings.Join(ev.Capabilities, ",")
		s.Permissions.OnCapabilityRequested(ctx, req, usecase.CapabilityCallback{
			OnGrant: func(granted []entity.Capability) {
				r.decision("capability", subject, "grant "+strings.Join(entity.CapabilitiesToStrings(granted), ","), true)
			},
			OnDeny: func() { r.decision("capability", subject, "deny", false) },
		})

	case EventNavigate:
		d := s.Navigation.OnNavigation(ctx, ev.URL)
		r.decision("navigate", ev.URL, d.String(), d == entity.NavigationStay)

	case EventLanded:
		r.h.Surface.Landed(ev.URL)
		d := s.Navigation.OnPageLanded(ctx, ev.URL)
		r.decision("landed", ev.URL, d.String(), d != entity.LandingFallback)

	case EventTransportError:
		s.Navigation.OnTransportError(ctx, ev.MainFrame)
		r.decision("transport", r.h.Surface.CurrentURL(), "error", false)

	case EventTLS:
		s.Trust.HandleSSLError(ctx, port.TLSError{URL: ev.URL, Host: ev.Host, Reason: ev.Reason}, tlsOutcome{r: r, url: ev.URL})

	case EventNetwork:
		if ev.Online {
			s.Connectivity.OnAvailable(ctx)
		} else {
			s.Connectivity.OnLost(ctx)
		}
		r.decision("network", onlineLabel(ev.Online), "offline="+fmt.Sprint(s.Connectivity.Offline()), ev.Online)

	case EventDeepLink:
		ok := s.Intents.Handle(ctx, usecase.Intent{Action: usecase.IntentView, Data: ev.URL})
		r.decision("deeplink", ev.URL, handledLabel(ok), ok)

	case EventShare:
		ok := s.Intents.Handle(ctx, usecase.Intent{Action: usecase.IntentSend, Text: ev.Text})
		r.decision("share", fmt.Sprintf("%d chars", len([]rune(ev.Text))), handledLabel(ok), ok)

	case EventDownload:
		if s.Downloads == nil {
			r.decision("download", ev.URL, "no downloader", false)
			return nil
		}
		out, err := s.Downloads.Execute(ctx, usecase.HandleDownloadInput{
			URL:                ev.URL,
			UserAgent:          ev.UserAgent,
			ContentDisposition: ev.ContentDisposition,
			MimeType:           ev.MimeType,
		})
		switch {
		case err != nil:
			r.decision("download", ev.URL, err.Error(), false)
		case out == nil:
			r.decision("download", ev.URL, "ignored", false)
		default:
			r.decision("download", ev.URL, out.DestinationPath, true)
		}

	case EventFileChooser:
		subject := usecase.AcceptTypeFor(ev.Accept)
		if s.Files == nil {
			r.decision("file_chooser", subject, "no file picker", false)
			return nil
		}
		s.Files.Show(ctx, ev.Accept, ev.Multiple, func(uris []string) {
			if uris == nil {
				r.decision("file_chooser", subject, "nothing chosen", false)
				return
			}
			r.decision("file_chooser", subject, strings.Join(uris, ","), true)
		})

	case EventPiP:
		r.h.Shell.OnPictureInPictureChanged(ctx, ev.Active)

	case EventLeave:
		minimize := r.h.Shell.OnUserLeaveHint()
		r.decision("leave", s.Calls.State().String(), fmt.Sprintf("minimize=%t", minimize), minimize)

	case EventClose:
		r.h.Shell.Close(ctx)
		r.decision("close", s.ID, "closed", true)

	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

func (r *Replayer) evalBridge(ctx context.Context, script string) error {
	var exposed bool
	if err := r.h.Do(ctx, func(s *usecase.Session) {
		exposed = s != nil && !s.Closed() && s.Navigation.BridgeExposed()
	}); err != nil {
		return err
	}

	r.mu.Lock()
	rt := r.runtime
	r.mu.Unlock()
	if rt == nil {
		r.decision("bridge", script, "no runtime", false)
		return nil
	}
	if err := rt.Expose(exposed); err != nil {
		return err
	}

	res, err := rt.Eval(ctx, script)
	if err != nil {
		r.decision("bridge", script, err.Error(), false)
		return nil
	}
	for _, c := range res.Console {
		r.println(r.theme.Field("console."+c.Level, c.Message))
	}
	r.decision("bridge", script, fmt.Sprint(res.Value), exposed)
	return nil
}

func (r *Replayer) decision(gate, subject, outcome string, ok bool) {
	r.println(r.theme.Decision(gate, subject, outcome, ok))
}

func (r *Replayer) println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, line)
}

type tlsOutcome struct {
	r   *Replayer
	url string
}

func (t tlsOutcome) Proceed() { t.r.decision("tls", t.url, "proceed", true) }
func (t tlsOutcome) Cancel()  { t.r.decision("tls", t.url, "cancel", false) }

// connectivityListener posts NetworkManager transitions to the session.
type connectivityListener struct {
	h *Harness
}

func (l connectivityListener) OnLost(ctx context.Context) {
	l.h.Loop.Post(func() {
		if s := l.h.Shell.Session(); s != nil && !s.Closed() {
			s.Connectivity.OnLost(ctx)
		}
	})
}

func (l connectivityListener) OnAvailable(ctx context.Context) {
	l.h.Loop.Post(func() {
		if s := l.h.Shell.Session(); s != nil && !s.Closed() {
			s.Connectivity.OnAvailable(ctx)
		}
	})
}

func errLabel(err error, ok string) string {
	if err != nil {
		return err.Error()
	}
	return ok
}

func onlineLabel(online bool) string {
	if online {
		return "available"
	}
	return "lost"
}

func handledLabel(ok bool) string {
	if ok {
		return "handled"
	}
	return "ignored"
}
