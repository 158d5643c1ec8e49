// Package idle keeps the screen awake during calls through the XDG Desktop
// Portal Inhibit interface.
package idle

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// Inhibit flags from the portal interface.
	flagSuspend = 4
	flagIdle    = 8
)

var _ port.IdleInhibitor = (*PortalInhibitor)(nil)

// PortalInhibitor holds a portal inhibition while at least one caller asked
// for it. Without a session bus or portal it only counts, so a call still
// works on systems that cannot keep the screen on.
type PortalInhibitor struct {
	mu sync.Mutex

	conn      *dbus.Conn
	supported bool

	handle   dbus.ObjectPath
	refcount int
	// released is set when the portal answered the request with a Response
	// signal, after which the request object is gone.
	released bool

	stopWatch context.CancelFunc
}

// NewPortalInhibitor connects to the session bus and checks for the portal.
// It never fails: problems are logged and leave the inhibitor unsupported.
func NewPortalInhibitor(ctx context.Context) *PortalInhibitor {
	log := logging.FromContext(ctx).With().Str("component", "keep-awake").Logger()
	p := &PortalInhibitor{}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("no session bus, keep-awake disabled")
		return p
	}
	p.conn = conn

	var version uint32
	err = conn.Object(portalDest, portalPath).
		Call("org.freedesktop.DBus.Properties.Get", 0, portalInterface, "version").
		Store(&version)
	if err != nil {
		log.Debug().Err(err).Msg("inhibit portal not available, keep-awake disabled")
		return p
	}

	p.supported = true
	log.Debug().Uint32("version", version).Msg("inhibit portal available")
	return p
}

// Supported reports whether inhibition reaches the desktop.
func (p *PortalInhibitor) Supported() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.supported
}

// Inhibit takes a reference. The first reference asks the portal to keep
// the session from idling or suspending.
func (p *PortalInhibitor) Inhibit(ctx context.Context, reason string) error {
	log := logging.FromContext(ctx).With().Str("component", "keep-awake").Logger()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.refcount++
	if p.refcount > 1 || !p.supported || p.conn == nil {
		log.Debug().Int("refcount", p.refcount).Bool("supported", p.supported).Msg("inhibit")
		return nil
	}

	options := map[string]dbus.Variant{"reason": dbus.MakeVariant(reason)}
	var handle dbus.ObjectPath
	err := p.conn.Object(portalDest, portalPath).
		Call(portalInterface+".Inhibit", 0, "", uint32(flagIdle|flagSuspend), options).
		Store(&handle)
	if err != nil {
		p.refcount--
		log.Warn().Err(err).Msg("portal refused inhibition")
		return fmt.Errorf("portal inhibit: %w", err)
	}

	p.handle = handle
	p.released = false

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.stopWatch = cancel
	go p.watchResponse(watchCtx, handle)

	log.Info().Str("handle", string(handle)).Str("reason", reason).Msg("keep-awake on")
	return nil
}

// watchResponse notes when the portal completes the request on its own.
// GNOME does this immediately, and closing a finished request fails.
func (p *PortalInhibitor) watchResponse(ctx context.Context, handle dbus.ObjectPath) {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return
	}

	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(handle),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	}
	if err := conn.AddMatchSignalContext(ctx, match...); err != nil {
		log.Debug().Err(err).Msg("cannot watch inhibit request")
		return
	}
	signals := make(chan *dbus.Signal, 1)
	conn.Signal(signals)
	defer func() {
		conn.RemoveSignal(signals)
		_ = conn.RemoveMatchSignal(match...)
	}()

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return
			}
			if sig.Path != handle || sig.Name != requestIface+".Response" {
				continue
			}
			p.mu.Lock()
			if p.handle == handle {
				p.released = true
			}
			p.mu.Unlock()
			log.Debug().Str("handle", string(handle)).Msg("inhibit request completed by portal")
			return
		case <-ctx.Done():
			return
		}
	}
}

// Uninhibit drops a reference and releases the portal request with the last
// one. Extra calls are ignored.
func (p *PortalInhibitor) Uninhibit(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "keep-awake").Logger()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.refcount == 0 {
		return nil
	}
	p.refcount--
	if p.refcount > 0 {
		log.Debug().Int("refcount", p.refcount).Msg("uninhibit")
		return nil
	}

	p.releaseLocked()
	log.Info().Msg("keep-awake off")
	return nil
}

// IsInhibited reports whether any reference is held.
func (p *PortalInhibitor) IsInhibited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refcount > 0
}

// Close releases the inhibition and the bus connection.
func (p *PortalInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.releaseLocked()
	p.refcount = 0

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	p.supported = false
	return err
}

func (p *PortalInhibitor) releaseLocked() {
	if p.stopWatch != nil {
		p.stopWatch()
		p.stopWatch = nil
	}
	if p.conn != nil && p.handle != "" && !p.released {
		_ = p.conn.Object(portalDest, p.handle).Call(requestIface+".Close", 0).Err
	}
	p.handle = ""
	p.released = false
}
