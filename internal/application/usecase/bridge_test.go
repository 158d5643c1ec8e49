package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shadowflee/fluxer/internal/application/port"
	portmocks "github.com/shadowflee/fluxer/internal/application/port/mocks"
	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/domain/entity"
)

func newBridgeSession(t *testing.T, f *sessionFixture) *usecase.Session {
	t.Helper()
	s, err := usecase.NewSession(testContext(), sessionConfig(), f.deps, syncPost, nil)
	require.NoError(t, err)
	return s
}

func TestBridge_DropsCallsFromUntrustedPage(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	f.deps.Notifier = portmocks.NewMockSystemNotifier(t)
	f.deps.Setup = portmocks.NewMockSetupLauncher(t)
	f.deps.Sounds = portmocks.NewMockSoundPicker(t)
	f.deps.Settings = portmocks.NewMockSettingsOpener(t)
	s := newBridgeSession(t, f)

	s.Bridge.ShowNotification(ctx, "t", "b")
	s.Bridge.OpenChangeServer(ctx)
	s.Bridge.OpenNotificationSettings(ctx)
	s.Bridge.OpenCustomSoundPicker(ctx)
	s.Bridge.StartCall(ctx, "video")

	assert.Empty(t, s.Bridge.GetServerURL(ctx))
	assert.Empty(t, s.Bridge.GetCallState(ctx))
	assert.Equal(t, entity.CallNone, s.Calls.State())
}

func TestBridge_ShowNotification(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	notifier := portmocks.NewMockSystemNotifier(t)
	f.deps.Notifier = notifier

	var posted []port.SystemNotification
	notifier.EXPECT().Post(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, n port.SystemNotification) error {
			posted = append(posted, n)
			return nil
		}).Times(2)

	s := newBridgeSession(t, f)
	exposeBridge(t, ctx, f, s)

	longTitle := strings.Repeat("é", 300)
	longBody := strings.Repeat("b", 2000)
	s.Bridge.ShowNotification(ctx, longTitle, longBody)
	s.Bridge.ShowNotification(ctx, "Alice", "hi")

	require.Len(t, posted, 2)
	assert.Equal(t, usecase.MaxNotificationTitle, utf8.RuneCountInString(posted[0].Title))
	assert.Equal(t, usecase.MaxNotificationBody, utf8.RuneCountInString(posted[0].Body))
	assert.Equal(t, entity.DefaultChannelID, posted[0].ChannelID)
	assert.NotEqual(t, posted[0].ID, posted[1].ID)
	assert.Positive(t, posted[1].ID)
	assert.Equal(t, "Alice", posted[1].Title)
}

func TestBridge_ShowNotificationPermissionRevoked(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	notifier := portmocks.NewMockSystemNotifier(t)
	notifier.EXPECT().Post(mock.Anything, mock.Anything).
		Return(fmt.Errorf("post: %w", port.ErrNotificationPermission)).Once()
	f.deps.Notifier = notifier

	s := newBridgeSession(t, f)
	exposeBridge(t, ctx, f, s)
	s.Bridge.ShowNotification(ctx, "t", "b")
}

func TestBridge_CallState(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	s := newBridgeSession(t, f)
	exposeBridge(t, ctx, f, s)

	assert.Equal(t, "", s.Bridge.GetCallState(ctx))
	s.Bridge.StartCall(ctx, "video")
	assert.Equal(t, "video", s.Bridge.GetCallState(ctx))
	s.Bridge.StartCall(ctx, "anything")
	assert.Equal(t, "audio", s.Bridge.GetCallState(ctx))
	s.Bridge.EndCall(ctx)
	assert.Equal(t, "", s.Bridge.GetCallState(ctx))
}

func TestBridge_GetServerURL(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	s := newBridgeSession(t, f)
	exposeBridge(t, ctx, f, s)

	assert.Equal(t, trustedURL, s.Bridge.GetServerURL(ctx))
}

func TestBridge_OpenChangeServer(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	setup := portmocks.NewMockSetupLauncher(t)
	setup.EXPECT().OpenSetup(mock.Anything, trustedURL, mock.Anything).
		Run(func(_ context.Context, _ string, cb func(string, bool)) {
			cb("", false)
			cb("https://new.example.com", true)
		}).Once()
	f.deps.Setup = setup

	s := newBridgeSession(t, f)
	exposeBridge(t, ctx, f, s)

	var changed []string
	s.Bridge.OnServerChanged(func(_ context.Context, serverURL string) { changed = append(changed, serverURL) })
	s.Bridge.OpenChangeServer(ctx)

	assert.Equal(t, []string{"https://new.example.com"}, changed)
}

func TestBridge_OpenNotificationSettings(t *testing.T) {
	t.Run("settings available", func(t *testing.T) {
		ctx := testContext()
		f := newSessionFixture(t)
		settings := portmocks.NewMockSettingsOpener(t)
		settings.EXPECT().OpenChannelSettings(mock.Anything, entity.DefaultChannelID).Return(nil).Once()
		f.deps.Settings = settings
		f.deps.Sounds = portmocks.NewMockSoundPicker(t)

		s := newBridgeSession(t, f)
		exposeBridge(t, ctx, f, s)
		s.Bridge.OpenNotificationSettings(ctx)
	})

	t.Run("falls back to sound picker", func(t *testing.T) {
		ctx := testContext()
		f := newSessionFixture(t)
		settings := portmocks.NewMockSettingsOpener(t)
		settings.EXPECT().OpenChannelSettings(mock.Anything, mock.Anything).Return(port.ErrUnsupported).Once()
		sounds := portmocks.NewMockSoundPicker(t)
		sounds.EXPECT().PickSound(mock.Anything, "", mock.Anything).Once()
		f.deps.Settings = settings
		f.deps.Sounds = sounds

		s := newBridgeSession(t, f)
		exposeBridge(t, ctx, f, s)
		s.Bridge.OpenNotificationSettings(ctx)
	})
}

func TestBridge_OpenCustomSoundPicker(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	toaster := portmocks.NewMockToaster(t)
	toaster.EXPECT().Show(mock.Anything, "Notification sound: ding").Once()
	f.deps.Toaster = toaster

	sounds := portmocks.NewMockSoundPicker(t)
	sounds.EXPECT().PickSound(mock.Anything, "", mock.Anything).
		Run(func(_ context.Context, _ string, cb func(string, bool)) {
			cb("file:///sounds/ding.oga", true)
		}).Once()
	f.deps.Sounds = sounds

	s := newBridgeSession(t, f)
	exposeBridge(t, ctx, f, s)
	s.Bridge.OpenCustomSoundPicker(ctx)

	assert.Equal(t, entity.ChannelIDForSound("file:///sounds/ding.oga"), s.Channels.ActiveID())
}

func TestBridge_ClosedSessionDropsCalls(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	notifier := portmocks.NewMockSystemNotifier(t)
	f.deps.Notifier = notifier
	s := newBridgeSession(t, f)
	exposeBridge(t, ctx, f, s)

	s.Close(ctx)
	s.Bridge.ShowNotification(ctx, "t", "b")
	assert.Empty(t, s.Bridge.GetServerURL(ctx))
}

func TestBridge_NotificationErrorLogged(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	notifier := portmocks.NewMockSystemNotifier(t)
	notifier.EXPECT().Post(mock.Anything, mock.Anything).Return(errors.New("bus gone")).Once()
	f.deps.Notifier = notifier

	s := newBridgeSession(t, f)
	exposeBridge(t, ctx, f, s)
	s.Bridge.ShowNotification(ctx, "t", "b")
}
