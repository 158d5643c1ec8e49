package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/logging"
)

// CallObserver is notified when the call state changes.
type CallObserver func(ctx context.Context, from, to entity.CallState)

// CallStateTracker holds whether the web app reported an active call.
// State may be read from any goroutine; transitions happen on the main loop.
type CallStateTracker struct {
	state atomic.Int32

	mu        sync.Mutex
	observers []CallObserver
}

// NewCallStateTracker creates a tracker with no call active.
func NewCallStateTracker() *CallStateTracker {
	return &CallStateTracker{}
}

// Subscribe registers an observer for state transitions.
func (t *CallStateTracker) Subscribe(obs CallObserver) {
	if obs == nil {
		return
	}
	t.mu.Lock()
	t.observers = append(t.observers, obs)
	t.mu.Unlock()
}

// State returns the current call state.
func (t *CallStateTracker) State() entity.CallState {
	return entity.CallState(t.state.Load())
}

// StartCall records a call of the given kind. Only "video" selects video.
func (t *CallStateTracker) StartCall(ctx context.Context, kind string) {
	t.set(ctx, entity.CallStateForKind(kind))
}

// EndCall records that no call is active.
func (t *CallStateTracker) EndCall(ctx context.Context) {
	t.set(ctx, entity.CallNone)
}

// ShouldAutoMinimize reports whether leaving the app should shrink it into a
// floating window instead of hiding it.
func (t *CallStateTracker) ShouldAutoMinimize() bool {
	return t.State().IsActive()
}

func (t *CallStateTracker) set(ctx context.Context, next entity.CallState) {
	prev := entity.CallState(t.state.Swap(int32(next)))
	if prev == next {
		return
	}

	logging.FromContext(ctx).Debug().
		Str("component", "call-state").
		Str("from", prev.String()).
		Str("to", next.String()).
		Msg("call state changed")

	t.mu.Lock()
	observers := make([]CallObserver, len(t.observers))
	copy(observers, t.observers)
	t.mu.Unlock()

	for _, obs := range observers {
		obs(ctx, prev, next)
	}
}

// KeepAwakeObserver holds the screen awake while a call is active.
func KeepAwakeObserver(inhibitor port.IdleInhibitor) CallObserver {
	return func(ctx context.Context, from, to entity.CallState) {
		log := logging.FromContext(ctx)
		switch {
		case !from.IsActive() && to.IsActive():
			if err := inhibitor.Inhibit(ctx, "Call in progress"); err != nil {
				log.Warn().Err(err).Msg("failed to keep screen awake")
			}
		case from.IsActive() && !to.IsActive():
			if err := inhibitor.Uninhibit(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to release screen keep-awake")
			}
		}
	}
}
