package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
)

type recordedCall struct {
	method string
	args   []any
}

type fakeBus struct {
	calls  []recordedCall
	nextID uint32
	err    error
}

func (f *fakeBus) CallWithContext(_ context.Context, method string, _ dbus.Flags, args ...any) *dbus.Call {
	f.calls = append(f.calls, recordedCall{method: method, args: args})
	if f.err != nil {
		return &dbus.Call{Err: f.err}
	}
	f.nextID++
	return &dbus.Call{Body: []any{f.nextID}}
}

func (f *fakeBus) hints(i int) map[string]dbus.Variant {
	return f.calls[i].args[6].(map[string]dbus.Variant)
}

func TestNotifier_PostSendsNotify(t *testing.T) {
	bus := &fakeBus{}
	n := NewNotifierWithCaller(bus, Options{AppName: "Fluxer", TimeoutMs: -1})

	err := n.Post(context.Background(), port.SystemNotification{
		ID: 3, ChannelID: "fluxer", Title: "Ada", Body: "hello",
	})
	require.NoError(t, err)

	require.Len(t, bus.calls, 1)
	call := bus.calls[0]
	assert.Equal(t, notifyMethod, call.method)
	assert.Equal(t, "Fluxer", call.args[0])
	assert.Equal(t, uint32(0), call.args[1])
	assert.Equal(t, "Ada", call.args[3])
	assert.Equal(t, "hello", call.args[4])
	assert.Equal(t, int32(-1), call.args[7])
	assert.Equal(t, "fluxer", bus.hints(0)["desktop-entry"].Value())
	assert.NotContains(t, bus.hints(0), "sound-file")
}

func TestNotifier_RepostReplaces(t *testing.T) {
	bus := &fakeBus{nextID: 40}
	n := NewNotifierWithCaller(bus, Options{})
	ctx := context.Background()

	require.NoError(t, n.Post(ctx, port.SystemNotification{ID: 1, Title: "a"}))
	require.NoError(t, n.Post(ctx, port.SystemNotification{ID: 1, Title: "b"}))
	require.NoError(t, n.Post(ctx, port.SystemNotification{ID: 2, Title: "c"}))

	assert.Equal(t, uint32(0), bus.calls[0].args[1])
	assert.Equal(t, uint32(41), bus.calls[1].args[1])
	assert.Equal(t, uint32(0), bus.calls[2].args[1])
}

func TestNotifier_SoundHints(t *testing.T) {
	bus := &fakeBus{}
	n := NewNotifierWithCaller(bus, Options{})
	ctx := context.Background()

	require.NoError(t, n.Post(ctx, port.SystemNotification{ID: 1, SoundRef: "/usr/share/sounds/ping.oga"}))
	require.NoError(t, n.Post(ctx, port.SystemNotification{ID: 2, SoundRef: "/x.oga", Silent: true}))

	assert.Equal(t, "/usr/share/sounds/ping.oga", bus.hints(0)["sound-file"].Value())
	assert.Equal(t, true, bus.hints(1)["suppress-sound"].Value())
	assert.NotContains(t, bus.hints(1), "sound-file")
}

func TestNotifier_ErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "access denied", err: dbus.Error{Name: "org.freedesktop.DBus.Error.AccessDenied"}, want: port.ErrNotificationPermission},
		{name: "no server", err: dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}, want: port.ErrUnsupported},
		{name: "other", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifierWithCaller(&fakeBus{err: tt.err}, Options{})
			err := n.Post(context.Background(), port.SystemNotification{ID: 1})
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			} else {
				assert.NotErrorIs(t, err, port.ErrNotificationPermission)
			}
		})
	}
}

func TestNotifier_ToastIsTransient(t *testing.T) {
	bus := &fakeBus{}
	n := NewNotifierWithCaller(bus, Options{AppName: "Fluxer"})

	n.Show(context.Background(), "Network connection lost")

	require.Len(t, bus.calls, 1)
	assert.Equal(t, "Fluxer", bus.calls[0].args[3])
	assert.Equal(t, "Network connection lost", bus.calls[0].args[4])
	assert.Equal(t, true, bus.hints(0)["transient"].Value())
}

func TestNotifier_ToastFailureIsSilent(t *testing.T) {
	n := NewNotifierWithCaller(&fakeBus{err: errors.New("down")}, Options{})
	assert.NotPanics(t, func() { n.Show(context.Background(), "x") })
}

type channelTable map[string]entity.NotificationChannel

func (c channelTable) Lookup(_ context.Context, id string) (entity.NotificationChannel, bool, error) {
	ch, ok := c[id]
	return ch, ok, nil
}

func TestNotifier_AppliesChannelSound(t *testing.T) {
	bus := &fakeBus{}
	n := NewNotifierWithCaller(bus, Options{})
	n.BindChannels(channelTable{
		"fluxer_12": {ID: "fluxer_12", SoundRef: "/sounds/ding.oga"},
		"fluxer_bg": {ID: "fluxer_bg", Silent: true},
	})
	ctx := context.Background()

	require.NoError(t, n.Post(ctx, port.SystemNotification{ID: 1, ChannelID: "fluxer_12"}))
	require.NoError(t, n.Post(ctx, port.SystemNotification{ID: 2, ChannelID: "fluxer_bg"}))
	require.NoError(t, n.Post(ctx, port.SystemNotification{ID: 3, ChannelID: "fluxer"}))

	assert.Equal(t, "/sounds/ding.oga", bus.hints(0)["sound-file"].Value())
	assert.Equal(t, true, bus.hints(1)["suppress-sound"].Value())
	assert.NotContains(t, bus.hints(2), "sound-file")
	assert.NotContains(t, bus.hints(2), "suppress-sound")
}
