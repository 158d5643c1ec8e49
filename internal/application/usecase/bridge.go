package usecase

import (
	"context"
	"errors"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/logging"
)

// Limits applied to notification text coming from page script, in characters.
const (
	MaxNotificationTitle = 256
	MaxNotificationBody  = 1024
)

// BridgeName is the global name page script sees the bridge under.
const BridgeName = "FluxerAndroid"

// Bridge is the native object exposed to page script. Its methods are called
// from the script runtime's goroutine with untrusted arguments. Calls made
// while the page is not trusted are dropped; UI work is posted to the main
// loop.
type Bridge struct {
	session *Session
	post    func(func())

	onServerChanged func(ctx context.Context, serverURL string)
}

// NewBridge creates the bridge for a session.
func NewBridge(session *Session, post func(func())) *Bridge {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Bridge{session: session, post: post}
}

// OnServerChanged registers the callback run after the user saved a new
// server address from the setup screen.
func (b *Bridge) OnServerChanged(fn func(ctx context.Context, serverURL string)) {
	b.onServerChanged = fn
}

func (b *Bridge) allowed(ctx context.Context, method string) bool {
	if b.session.Closed() || !b.session.Navigation.BridgeExposed() {
		logging.FromContext(ctx).Debug().
			Str("component", "bridge").
			Str("method", method).
			Msg("bridge call from untrusted page dropped")
		return false
	}
	return true
}

// ShowNotification posts an OS notification on the active channel.
func (b *Bridge) ShowNotification(ctx context.Context, title, body string) {
	if !b.allowed(ctx, "showNotification") {
		return
	}
	notifier := b.session.deps.Notifier
	if notifier == nil {
		return
	}

	n := port.SystemNotification{
		ID:        b.session.NotificationIDs.Next(),
		ChannelID: b.session.Channels.ActiveID(),
		Title:     truncateRunes(title, MaxNotificationTitle),
		Body:      truncateRunes(body, MaxNotificationBody),
	}
	log := logging.FromContext(ctx).With().
		Str("component", "bridge").
		Int32("notification_id", n.ID).
		Str("channel_id", n.ChannelID).
		Logger()

	if err := notifier.Post(ctx, n); err != nil {
		if errors.Is(err, port.ErrNotificationPermission) {
			log.Debug().Msg("notification permission revoked, dropped")
			return
		}
		log.Warn().Err(err).Msg("failed to post notification")
	}
}

// GetServerURL returns the configured server address.
func (b *Bridge) GetServerURL(ctx context.Context) string {
	if !b.allowed(ctx, "getServerUrl") {
		return ""
	}
	return b.session.ServerURL
}

// OpenChangeServer shows the setup screen.
func (b *Bridge) OpenChangeServer(ctx context.Context) {
	if !b.allowed(ctx, "openChangeServer") {
		return
	}
	setup := b.session.deps.Setup
	if setup == nil {
		return
	}
	b.post(func() {
		setup.OpenSetup(ctx, b.session.ServerURL, func(serverURL string, ok bool) {
			if !ok || b.onServerChanged == nil {
				return
			}
			b.post(func() { b.onServerChanged(ctx, serverURL) })
		})
	})
}

// OpenNotificationSettings opens the system settings of the active channel,
// or the sound picker when the platform has none.
func (b *Bridge) OpenNotificationSettings(ctx context.Context) {
	if !b.allowed(ctx, "openNotificationSettings") {
		return
	}
	b.post(func() {
		if settings := b.session.deps.Settings; settings != nil {
			err := settings.OpenChannelSettings(ctx, b.session.Channels.ActiveID())
			if err == nil {
				return
			}
			logging.FromContext(ctx).Debug().Err(err).
				Str("component", "bridge").
				Msg("channel settings unavailable, opening sound picker")
		}
		b.pickSound(ctx)
	})
}

// OpenCustomSoundPicker lets the user choose the notification sound.
func (b *Bridge) OpenCustomSoundPicker(ctx context.Context) {
	if !b.allowed(ctx, "openCustomSoundPicker") {
		return
	}
	b.post(func() { b.pickSound(ctx) })
}

func (b *Bridge) pickSound(ctx context.Context) {
	sounds := b.session.deps.Sounds
	if sounds == nil {
		return
	}
	current := b.session.Channels.SoundRef(ctx)
	sounds.PickSound(ctx, current, func(ref string, ok bool) {
		if !ok {
			return
		}
		b.post(func() {
			if b.session.Closed() {
				return
			}
			if err := b.session.Channels.ChangeSound(ctx, ref); err != nil {
				logging.FromContext(ctx).Warn().Err(err).
					Str("component", "bridge").
					Msg("failed to change notification sound")
			}
		})
	})
}

// StartCall records that the page joined a call of the given kind.
func (b *Bridge) StartCall(ctx context.Context, kind string) {
	if !b.allowed(ctx, "startCall") {
		return
	}
	b.post(func() { b.session.Calls.StartCall(ctx, kind) })
}

// EndCall records that the page left its call.
func (b *Bridge) EndCall(ctx context.Context) {
	if !b.allowed(ctx, "endCall") {
		return
	}
	b.post(func() { b.session.Calls.EndCall(ctx) })
}

// GetCallState returns "audio", "video" or "".
func (b *Bridge) GetCallState(ctx context.Context) string {
	if !b.allowed(ctx, "getCallState") {
		return ""
	}
	return b.session.Calls.State().String()
}

func truncateRunes(s string, limit int) string {
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
