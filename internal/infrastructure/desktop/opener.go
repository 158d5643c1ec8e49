package desktop

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/logging"
)

var (
	_ port.ExternalOpener = (*Opener)(nil)
	_ port.SettingsOpener = (*Opener)(nil)
)

// startFunc launches a command without waiting for it.
type startFunc func(name string, args ...string) (pid int, err error)

func startDetached(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// Reap the child so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return pid, nil
}

// Opener hands URIs to the user's default applications through xdg-open.
type Opener struct {
	command string
	start   startFunc
}

// NewOpener creates an opener using xdg-open.
func NewOpener() *Opener {
	return &Opener{command: "xdg-open", start: startDetached}
}

// Open implements port.ExternalOpener. It returns once the handler process
// has started.
func (o *Opener) Open(ctx context.Context, uri string) error {
	pid, err := o.start(o.command, uri)
	if err != nil {
		return fmt.Errorf("%s %s: %w", o.command, uri, err)
	}
	logging.FromContext(ctx).Debug().
		Str("component", "opener").
		Str("uri", uri).
		Int("pid", pid).
		Msg("handed off to external handler")
	return nil
}

// OpenChannelSettings implements port.SettingsOpener. Freedesktop
// notification servers expose no per-channel settings page.
func (o *Opener) OpenChannelSettings(_ context.Context, channelID string) error {
	return fmt.Errorf("channel %s settings: %w", channelID, port.ErrUnsupported)
}
