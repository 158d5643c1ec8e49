// Package mainloop provides the single decision thread of the shell.
//
// Every component that holds shell state is only touched from the loop
// goroutine. Producers living on other goroutines (script bridge calls, D-Bus
// signals, connectivity watchers, config reloads) hand work over with Post or
// Call.
package mainloop

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shadowflee/fluxer/internal/logging"
)

// ErrStopped is returned by Call once the loop has been stopped.
var ErrStopped = errors.New("main loop stopped")

// Loop runs posted functions one at a time, in posting order, on a single
// goroutine. The queue is unbounded so Post never blocks.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []func()
	stopped bool
	done    chan struct{}
	logger  *zerolog.Logger
}

// New starts a loop. The logger in ctx receives recovered task panics.
func New(ctx context.Context) *Loop {
	l := &Loop{
		done:   make(chan struct{}),
		logger: logging.FromContext(ctx),
	}
	l.cond = sync.NewCond(&l.mu)
	go l.run()
	return l
}

// Post queues fn. Work posted after Stop is dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.tasks = append(l.tasks, fn)
	l.cond.Signal()
}

// Call runs fn on the loop and waits for it to finish.
// It must not be called from the loop goroutine itself.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrStopped
	}
	l.tasks = append(l.tasks, func() {
		defer close(finished)
		fn()
	})
	l.cond.Signal()
	l.mu.Unlock()

	select {
	case <-finished:
		return nil
	case <-l.done:
		// The loop drains before exiting, so fn may still have run.
		select {
		case <-finished:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Flush waits until the queue is empty, including work posted by the tasks
// it waits for. It must not be called from the loop goroutine itself.
func (l *Loop) Flush(ctx context.Context) error {
	for {
		var empty bool
		err := l.Call(ctx, func() {
			l.mu.Lock()
			empty = len(l.tasks) == 0
			l.mu.Unlock()
		})
		if err != nil || empty {
			return err
		}
	}
}

// Stop runs the work already queued, then ends the loop and waits for it.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.stopped {
		l.stopped = true
		l.cond.Signal()
	}
	l.mu.Unlock()
	<-l.done
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		for len(l.tasks) == 0 && !l.stopped {
			l.cond.Wait()
		}
		if len(l.tasks) == 0 && l.stopped {
			l.mu.Unlock()
			return
		}
		task := l.tasks[0]
		l.tasks[0] = nil
		l.tasks = l.tasks[1:]
		l.mu.Unlock()

		l.exec(task)
	}
}

func (l *Loop) exec(task func()) {
	defer logging.RecoverTask(l.logger, "mainloop")
	task()
}
