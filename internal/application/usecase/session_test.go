package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/shadowflee/fluxer/internal/application/port/mocks"
	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// sessionFixture wires a session to mocks. Only the adapters every session
// touches are created here; tests add the rest.
type sessionFixture struct {
	surface  *portmocks.MockContentSurface
	dialog   *portmocks.MockPermissionDialog
	checker  *portmocks.MockGrantChecker
	channels *channelState
	deps     usecase.SessionDeps
}

func newSessionFixture(t *testing.T) *sessionFixture {
	registry, channels := newChannelRegistry(t)
	f := &sessionFixture{
		surface:  portmocks.NewMockContentSurface(t),
		dialog:   portmocks.NewMockPermissionDialog(t),
		checker:  portmocks.NewMockGrantChecker(t),
		channels: channels,
	}
	f.deps = usecase.SessionDeps{
		Surface:  f.surface,
		Dialog:   f.dialog,
		Checker:  f.checker,
		Registry: registry,
		Prefs:    newPreferences(t, nil),
	}
	return f
}

func sessionConfig() usecase.SessionConfig {
	return usecase.SessionConfig{
		ServerURL:    trustedURL,
		FallbackPage: fallbackPage,
	}
}

// exposeBridge lands a trusted page so the bridge accepts calls.
func exposeBridge(t *testing.T, ctx context.Context, f *sessionFixture, s *usecase.Session) {
	t.Helper()
	f.surface.EXPECT().EvaluateScript(mock.Anything, usecase.BridgeMarkerScript).Once()
	require.Equal(t, entity.LandingOK, s.Navigation.OnPageLanded(ctx, trustedURL+"/app"))
}

func TestNewSession_RejectsUnusableServer(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)

	for _, raw := range []string{"", "chat.example.com", "ftp://chat.example.com", "https://"} {
		cfg := sessionConfig()
		cfg.ServerURL = raw
		_, err := usecase.NewSession(ctx, cfg, f.deps, syncPost, nil)
		assert.ErrorIs(t, err, usecase.ErrInvalidServerURL, raw)
	}
}

func TestNewSession_RequiresAdapters(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	deps := f.deps
	deps.Dialog = nil

	_, err := usecase.NewSession(ctx, sessionConfig(), deps, syncPost, nil)
	assert.Error(t, err)
}

func TestSession_Start(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	f.surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()

	s, err := usecase.NewSession(ctx, sessionConfig(), f.deps, syncPost, nil)
	require.NoError(t, err)
	assert.Equal(t, trustedOrigin, s.Trusted)
	assert.NotEmpty(t, s.ID)

	require.NoError(t, s.Start(ctx))
	assert.Contains(t, f.channels.channels, entity.DefaultChannelID)
	assert.Contains(t, f.channels.channels, entity.BackgroundChannelID)
	assert.Equal(t, entity.DefaultChannelID, s.Channels.ActiveID())
}

func TestSession_CloseFlushesAndHidesBridge(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	f.checker.EXPECT().IsGranted(mock.Anything, mock.Anything).Return(false)
	f.dialog.EXPECT().RequestGrants(mock.Anything, mock.Anything, mock.Anything).Once()

	inhibitor := portmocks.NewMockIdleInhibitor(t)
	inhibitor.EXPECT().Inhibit(mock.Anything, mock.Anything).Return(nil).Once()
	inhibitor.EXPECT().Uninhibit(mock.Anything).Return(nil).Once()
	f.deps.Inhibitor = inhibitor

	s, err := usecase.NewSession(ctx, sessionConfig(), f.deps, syncPost, nil)
	require.NoError(t, err)
	exposeBridge(t, ctx, f, s)

	first, second := &recorder{}, &recorder{}
	s.Permissions.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), first)
	s.Permissions.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityVideo), second)
	s.Bridge.StartCall(ctx, "audio")
	require.Equal(t, entity.CallAudio, s.Calls.State())

	s.Close(ctx)
	s.Close(ctx)

	assert.True(t, s.Closed())
	assert.Equal(t, 1, first.denied)
	assert.Equal(t, 1, second.denied)
	assert.False(t, s.Navigation.BridgeExposed())
	assert.Equal(t, entity.CallNone, s.Calls.State())
	assert.ErrorIs(t, s.Start(ctx), usecase.ErrSessionClosed)
}

func TestSession_ShareDeliveredOnTrustedLanding(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	f.surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()
	f.surface.EXPECT().EvaluateScript(mock.Anything, usecase.ShareScript("hello")).Once()

	s, err := usecase.NewSession(ctx, sessionConfig(), f.deps, syncPost, nil)
	require.NoError(t, err)

	s.Intents.Handle(ctx, usecase.Intent{Action: usecase.IntentSend, Text: "hello"})
	exposeBridge(t, ctx, f, s)
	assert.False(t, s.Intents.HasPendingShare())
}

func TestNotificationIDSource(t *testing.T) {
	var ids usecase.NotificationIDSource
	assert.Equal(t, int32(1), ids.Next())
	assert.Equal(t, int32(2), ids.Next())
}
