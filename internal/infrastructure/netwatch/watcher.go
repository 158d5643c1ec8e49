// Package netwatch follows NetworkManager's global state on the system bus.
package netwatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/shadowflee/fluxer/internal/logging"
)

const (
	nmDest      = "org.freedesktop.NetworkManager"
	nmPath      = "/org/freedesktop/NetworkManager"
	nmInterface = "org.freedesktop.NetworkManager"
)

// NetworkManager NMState values.
const (
	StateUnknown         uint32 = 0
	StateAsleep          uint32 = 10
	StateDisconnected    uint32 = 20
	StateDisconnecting   uint32 = 30
	StateConnecting      uint32 = 40
	StateConnectedLocal  uint32 = 50
	StateConnectedSite   uint32 = 60
	StateConnectedGlobal uint32 = 70
)

// Change is the connectivity transition a state maps to.
type Change int

const (
	ChangeNone Change = iota
	ChangeLost
	ChangeAvailable
)

// Classify maps a NetworkManager state to a connectivity change. Transient
// states map to ChangeNone.
func Classify(state uint32) Change {
	switch {
	case state == StateAsleep, state == StateDisconnected:
		return ChangeLost
	case state >= StateConnectedLocal:
		return ChangeAvailable
	default:
		return ChangeNone
	}
}

// Listener receives connectivity changes.
type Listener interface {
	OnLost(ctx context.Context)
	OnAvailable(ctx context.Context)
}

// Watcher forwards connectivity transitions to a listener. Repeated states
// are reported once.
type Watcher struct {
	listener Listener

	mu   sync.Mutex
	last Change
}

// NewWatcher creates a watcher for listener.
func NewWatcher(listener Listener) *Watcher {
	return &Watcher{listener: listener}
}

// Handle processes one NetworkManager state.
func (w *Watcher) Handle(ctx context.Context, state uint32) {
	change := Classify(state)
	if change == ChangeNone {
		return
	}

	w.mu.Lock()
	if change == w.last {
		w.mu.Unlock()
		return
	}
	w.last = change
	w.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("component", "netwatch").
		Uint32("nm_state", state).
		Msg("connectivity changed")

	switch change {
	case ChangeLost:
		w.listener.OnLost(ctx)
	case ChangeAvailable:
		w.listener.OnAvailable(ctx)
	}
}

// Run connects to the system bus and forwards state changes until ctx is
// done.
func (w *Watcher) Run(ctx context.Context) error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("connect system bus: %w", err)
	}
	defer conn.Close()
	return w.watch(ctx, conn)
}

func (w *Watcher) watch(ctx context.Context, conn *dbus.Conn) error {
	log := logging.FromContext(ctx).With().Str("component", "netwatch").Logger()

	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(nmPath),
		dbus.WithMatchInterface(nmInterface),
		dbus.WithMatchMember("StateChanged"),
	}
	if err := conn.AddMatchSignalContext(ctx, match...); err != nil {
		return fmt.Errorf("watch NetworkManager: %w", err)
	}
	signals := make(chan *dbus.Signal, 8)
	conn.Signal(signals)
	defer func() {
		conn.RemoveSignal(signals)
		_ = conn.RemoveMatchSignal(match...)
	}()

	var state uint32
	err := conn.Object(nmDest, nmPath).
		CallWithContext(ctx, "org.freedesktop.DBus.Properties.Get", 0, nmInterface, "State").
		Store(&state)
	if err != nil {
		log.Debug().Err(err).Msg("cannot read NetworkManager state")
	} else {
		w.Handle(ctx, state)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-signals:
			if !ok || sig == nil {
				return nil
			}
			if sig.Name != nmInterface+".StateChanged" || len(sig.Body) == 0 {
				continue
			}
			s, ok := sig.Body[0].(uint32)
			if !ok {
				continue
			}
			w.Handle(ctx, s)
		}
	}
}
