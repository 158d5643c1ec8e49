// Package notify posts desktop notifications through the
// org.freedesktop.Notifications D-Bus service and keeps the notification
// channel registry.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/logging"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"

	desktopEntry = "fluxer"

	urgencyLow    = byte(0)
	urgencyNormal = byte(1)
)

// Caller is the part of dbus.BusObject the notifier needs.
type Caller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call
}

// ChannelLookup finds the channel a notification is posted to.
type ChannelLookup interface {
	Lookup(ctx context.Context, id string) (entity.NotificationChannel, bool, error)
}

// Options configures a Notifier.
type Options struct {
	AppName   string
	TimeoutMs int32
}

var (
	_ port.SystemNotifier = (*Notifier)(nil)
	_ port.Toaster        = (*Notifier)(nil)
)

// Notifier posts notifications and toasts. Toasts are transient low-urgency
// notifications that do not stay in the notification history.
type Notifier struct {
	obj      Caller
	conn     *dbus.Conn
	opts     Options
	channels ChannelLookup

	mu sync.Mutex
	// serverIDs maps our notification ids to the ids the server assigned,
	// so reposting an id replaces the notification on screen.
	serverIDs map[int32]uint32
}

// NewNotifier connects to the session bus.
func NewNotifier(opts Options) (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	n := NewNotifierWithCaller(conn.Object(notifyDest, notifyPath), opts)
	n.conn = conn
	return n, nil
}

// NewNotifierWithCaller builds a notifier on an existing bus object.
func NewNotifierWithCaller(obj Caller, opts Options) *Notifier {
	if opts.AppName == "" {
		opts.AppName = "Fluxer"
	}
	return &Notifier{
		obj:       obj,
		opts:      opts,
		serverIDs: make(map[int32]uint32),
	}
}

// BindChannels makes Post apply the sound of the target channel when the
// notification carries none.
func (n *Notifier) BindChannels(channels ChannelLookup) {
	n.channels = channels
}

// Post implements port.SystemNotifier.
func (n *Notifier) Post(ctx context.Context, sn port.SystemNotification) error {
	log := logging.FromContext(ctx).With().
		Str("component", "notifier").
		Int32("notification_id", sn.ID).
		Str("channel", sn.ChannelID).
		Logger()

	if n.channels != nil && sn.ChannelID != "" && sn.SoundRef == "" && !sn.Silent {
		ch, ok, err := n.channels.Lookup(ctx, sn.ChannelID)
		switch {
		case err != nil:
			log.Debug().Err(err).Msg("channel lookup failed, using default sound")
		case ok:
			sn.SoundRef = ch.SoundRef
			sn.Silent = ch.Silent
		}
	}

	hints := map[string]dbus.Variant{
		"desktop-entry": dbus.MakeVariant(desktopEntry),
		"category":      dbus.MakeVariant("im.received"),
		"urgency":       dbus.MakeVariant(urgencyNormal),
	}
	switch {
	case sn.Silent:
		hints["suppress-sound"] = dbus.MakeVariant(true)
	case sn.SoundRef != "":
		hints["sound-file"] = dbus.MakeVariant(sn.SoundRef)
	}

	n.mu.Lock()
	replaces := n.serverIDs[sn.ID]
	n.mu.Unlock()

	serverID, err := n.notify(ctx, replaces, sn.Title, sn.Body, hints, n.opts.TimeoutMs)
	if err != nil {
		log.Debug().Err(err).Msg("notification not posted")
		return err
	}

	n.mu.Lock()
	n.serverIDs[sn.ID] = serverID
	n.mu.Unlock()

	log.Debug().Uint32("server_id", serverID).Msg("notification posted")
	return nil
}

// Show implements port.Toaster. Failures are logged only.
func (n *Notifier) Show(ctx context.Context, message string) {
	hints := map[string]dbus.Variant{
		"desktop-entry":  dbus.MakeVariant(desktopEntry),
		"transient":      dbus.MakeVariant(true),
		"urgency":        dbus.MakeVariant(urgencyLow),
		"suppress-sound": dbus.MakeVariant(true),
	}
	const toastTimeoutMs = 3000
	if _, err := n.notify(ctx, 0, n.opts.AppName, message, hints, toastTimeoutMs); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("component", "notifier").Msg("toast not shown")
	}
}

func (n *Notifier) notify(
	ctx context.Context,
	replaces uint32,
	summary, body string,
	hints map[string]dbus.Variant,
	timeoutMs int32,
) (uint32, error) {
	call := n.obj.CallWithContext(ctx, notifyMethod, 0,
		n.opts.AppName,
		replaces,
		"",
		summary,
		body,
		[]string{},
		hints,
		timeoutMs,
	)
	if call.Err != nil {
		return 0, classify(call.Err)
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("decode notify reply: %w", err)
	}
	return id, nil
}

// classify maps a refusal by the bus or a sandbox portal to
// port.ErrNotificationPermission.
func classify(err error) error {
	switch name := errorName(err); name {
	case "org.freedesktop.DBus.Error.AccessDenied",
		"org.freedesktop.portal.Error.NotAllowed":
		return fmt.Errorf("%w: %s", port.ErrNotificationPermission, name)
	case "org.freedesktop.DBus.Error.ServiceUnknown":
		return fmt.Errorf("%w: no notification server", port.ErrUnsupported)
	}
	return fmt.Errorf("notify: %w", err)
}

func errorName(err error) string {
	var byValue dbus.Error
	if errors.As(err, &byValue) {
		return byValue.Name
	}
	var byRef *dbus.Error
	if errors.As(err, &byRef) && byRef != nil {
		return byRef.Name
	}
	return ""
}

// Close releases the bus connection when the notifier owns one.
func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
