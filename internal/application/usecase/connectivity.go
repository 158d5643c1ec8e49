package usecase

import (
	"context"
	"sync/atomic"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/logging"
)

const connectivityKey = "connectivity"

// ConnectivityMonitor reacts to network changes reported by the system.
// Its On* methods may be called from any goroutine; surface work is posted
// through post, keyed so that a burst of changes runs once.
type ConnectivityMonitor struct {
	serverURL    string
	fallbackPage string
	surface      port.ContentSurface
	toaster      port.Toaster
	post         func(key string, fn func())

	offline atomic.Bool
}

// NewConnectivityMonitor creates a monitor. A nil post runs work inline.
func NewConnectivityMonitor(
	serverURL, fallbackPage string,
	surface port.ContentSurface,
	toaster port.Toaster,
	post func(key string, fn func()),
) *ConnectivityMonitor {
	if post == nil {
		post = func(_ string, fn func()) { fn() }
	}
	return &ConnectivityMonitor{
		serverURL:    serverURL,
		fallbackPage: fallbackPage,
		surface:      surface,
		toaster:      toaster,
		post:         post,
	}
}

// Offline reports whether the last change was a loss of connectivity.
func (m *ConnectivityMonitor) Offline() bool {
	return m.offline.Load()
}

// OnLost records that the network went away.
func (m *ConnectivityMonitor) OnLost(ctx context.Context) {
	m.offline.Store(true)
	m.post(connectivityKey, func() {
		logging.FromContext(ctx).Info().Str("component", "connectivity").Msg("network lost")
		if m.toaster != nil {
			m.toaster.Show(ctx, "Network connection lost")
		}
	})
}

// OnAvailable records that the network is back. When the surface is sitting
// on the error page, or on nothing, the server is loaded again.
func (m *ConnectivityMonitor) OnAvailable(ctx context.Context) {
	if !m.offline.Swap(false) {
		return
	}
	m.post(connectivityKey, func() {
		current := m.surface.CurrentURL()
		if current != "" && !url.IsFallbackPage(current, m.fallbackPage) {
			return
		}
		logging.FromContext(ctx).Info().
			Str("component", "connectivity").
			Msg("network back, reloading server")
		m.surface.LoadURL(ctx, m.serverURL)
	})
}
