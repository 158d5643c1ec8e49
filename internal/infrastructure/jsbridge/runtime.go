// Package jsbridge runs page script against the native bridge object.
package jsbridge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grafana/sobek"

	"github.com/shadowflee/fluxer/internal/logging"
)

const defaultTimeout = 5 * time.Second

// ErrTimeout is returned when a script runs past the configured timeout.
var ErrTimeout = errors.New("script timed out")

// Methods is the native side of the bridge.
type Methods interface {
	ShowNotification(ctx context.Context, title, body string)
	GetServerURL(ctx context.Context) string
	OpenChangeServer(ctx context.Context)
	OpenNotificationSettings(ctx context.Context)
	OpenCustomSoundPicker(ctx context.Context)
	StartCall(ctx context.Context, kind string)
	EndCall(ctx context.Context)
	GetCallState(ctx context.Context) string
}

// Options configures a Runtime.
type Options struct {
	// Name is the global the bridge object is installed under.
	Name    string
	Timeout time.Duration
}

// ConsoleEntry is one console call made by the script.
type ConsoleEntry struct {
	Level   string
	Message string
}

// Result is what a script evaluation produced.
type Result struct {
	Value   any
	Console []ConsoleEntry
}

// Runtime is a script VM with the bridge object installed. It is not safe
// for concurrent use; Eval serializes callers.
type Runtime struct {
	mu      sync.Mutex
	vm      *sobek.Runtime
	methods Methods
	opts    Options
	ctx     context.Context

	exposed bool
	console []ConsoleEntry
}

// New creates a runtime. The bridge object is installed right away; use
// Expose(false) to take it away.
func New(methods Methods, opts Options) (*Runtime, error) {
	if methods == nil {
		return nil, errors.New("jsbridge: methods are required")
	}
	if opts.Name == "" {
		return nil, errors.New("jsbridge: bridge name is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	r := &Runtime{
		vm:      sobek.New(),
		methods: methods,
		opts:    opts,
		ctx:     context.Background(),
	}
	r.vm.SetMaxCallStackSize(1024)

	for _, name := range []string{"require", "process", "module", "exports"} {
		if err := r.vm.Set(name, sobek.Undefined()); err != nil {
			return nil, fmt.Errorf("jsbridge: clear %s: %w", name, err)
		}
	}
	if err := r.installConsole(); err != nil {
		return nil, err
	}
	if err := r.Expose(true); err != nil {
		return nil, err
	}
	return r, nil
}

// Expose installs or removes the bridge global.
func (r *Runtime) Expose(on bool) error {
	if on == r.exposed {
		return nil
	}
	if !on {
		if err := r.vm.GlobalObject().Delete(r.opts.Name); err != nil {
			return fmt.Errorf("jsbridge: remove %s: %w", r.opts.Name, err)
		}
		r.exposed = false
		return nil
	}
	if err := r.vm.Set(r.opts.Name, r.bridgeObject()); err != nil {
		return fmt.Errorf("jsbridge: install %s: %w", r.opts.Name, err)
	}
	r.exposed = true
	return nil
}

// Exposed reports whether the bridge global is installed.
func (r *Runtime) Exposed() bool {
	return r.exposed
}

// Eval runs script. Bridge calls made by the script receive ctx.
func (r *Runtime) Eval(ctx context.Context, script string) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctx = ctx
	r.console = nil
	defer func() { r.ctx = context.Background() }()

	timer := time.NewTimer(r.opts.Timeout)
	defer timer.Stop()
	done := make(chan struct{})
	stopped := make(chan struct{})
	timedOut := make(chan struct{}, 1)
	go func() {
		defer close(stopped)
		select {
		case <-timer.C:
			timedOut <- struct{}{}
			r.vm.Interrupt("timeout")
		case <-ctx.Done():
			r.vm.Interrupt("cancelled")
		case <-done:
		}
	}()

	val, err := r.vm.RunString(script)
	close(done)
	<-stopped
	r.vm.ClearInterrupt()

	result := &Result{Console: r.console}
	if err != nil {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			select {
			case <-timedOut:
				return result, ErrTimeout
			default:
			}
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
		}
		return result, fmt.Errorf("script: %w", err)
	}
	if val != nil && !sobek.IsUndefined(val) && !sobek.IsNull(val) {
		result.Value = val.Export()
	}
	return result, nil
}

func (r *Runtime) bridgeObject() *sobek.Object {
	obj := r.vm.NewObject()
	m := r.methods

	set := func(name string, fn func(sobek.FunctionCall) sobek.Value) {
		_ = obj.Set(name, fn)
	}

	set("showNotification", func(call sobek.FunctionCall) sobek.Value {
		m.ShowNotification(r.ctx, argString(call, 0), argString(call, 1))
		return sobek.Undefined()
	})
	set("getServerUrl", func(sobek.FunctionCall) sobek.Value {
		return r.vm.ToValue(m.GetServerURL(r.ctx))
	})
	set("openChangeServer", func(sobek.FunctionCall) sobek.Value {
		m.OpenChangeServer(r.ctx)
		return sobek.Undefined()
	})
	set("openNotificationSettings", func(sobek.FunctionCall) sobek.Value {
		m.OpenNotificationSettings(r.ctx)
		return sobek.Undefined()
	})
	set("openCustomSoundPicker", func(sobek.FunctionCall) sobek.Value {
		m.OpenCustomSoundPicker(r.ctx)
		return sobek.Undefined()
	})
	set("startCall", func(call sobek.FunctionCall) sobek.Value {
		m.StartCall(r.ctx, argString(call, 0))
		return sobek.Undefined()
	})
	set("endCall", func(sobek.FunctionCall) sobek.Value {
		m.EndCall(r.ctx)
		return sobek.Undefined()
	})
	set("getCallState", func(sobek.FunctionCall) sobek.Value {
		return r.vm.ToValue(m.GetCallState(r.ctx))
	})
	return obj
}

func (r *Runtime) installConsole() error {
	console := r.vm.NewObject()
	for _, level := range []string{"log", "info", "warn", "error", "debug"} {
		if err := console.Set(level, r.consoleFunc(level)); err != nil {
			return fmt.Errorf("jsbridge: console.%s: %w", level, err)
		}
	}
	if err := r.vm.Set("console", console); err != nil {
		return fmt.Errorf("jsbridge: console: %w", err)
	}
	return nil
}

func (r *Runtime) consoleFunc(level string) func(sobek.FunctionCall) sobek.Value {
	return func(call sobek.FunctionCall) sobek.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		entry := ConsoleEntry{Level: level, Message: strings.Join(parts, " ")}
		r.console = append(r.console, entry)
		logging.FromContext(r.ctx).Debug().
			Str("component", "jsbridge").
			Str("level", level).
			Msg(entry.Message)
		return sobek.Undefined()
	}
}

// argString converts an untrusted argument to a string. Missing, null and
// undefined arguments become "".
func argString(call sobek.FunctionCall, i int) string {
	v := call.Argument(i)
	if v == nil || sobek.IsUndefined(v) || sobek.IsNull(v) {
		return ""
	}
	return v.String()
}
