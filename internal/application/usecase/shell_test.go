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
	"github.com/shadowflee/fluxer/internal/domain/repository"
)

func TestShell_StartWithStoredServer(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	f.deps.Prefs = newPreferences(t, map[string]string{repository.KeyServerURL: trustedURL})
	f.surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()

	sh := usecase.NewShell(sessionConfig(), f.deps, syncPost, nil)
	started := 0
	sh.OnSession(func(_ context.Context, s *usecase.Session) { started++ })

	require.NoError(t, sh.Start(ctx))
	require.NotNil(t, sh.Session())
	assert.Equal(t, trustedOrigin, sh.Session().Trusted)
	assert.Equal(t, 1, started)
}

func TestShell_StartWithoutServerOpensSetup(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	setup := portmocks.NewMockSetupLauncher(t)
	setup.EXPECT().OpenSetup(mock.Anything, "", mock.Anything).
		Run(func(_ context.Context, _ string, cb func(string, bool)) {
			cb("https://chat.example.com", true)
		}).Once()
	f.deps.Setup = setup
	f.surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()

	sh := usecase.NewShell(sessionConfig(), f.deps, syncPost, nil)
	require.NoError(t, sh.Start(ctx))
	require.NotNil(t, sh.Session())
}

func TestShell_ReconfigureReplacesSession(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	f.deps.Prefs = newPreferences(t, map[string]string{repository.KeyServerURL: trustedURL})
	f.surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()
	f.surface.EXPECT().LoadURL(mock.Anything, "https://other.example.net:8443").Once()

	sh := usecase.NewShell(sessionConfig(), f.deps, syncPost, nil)
	require.NoError(t, sh.Start(ctx))
	old := sh.Session()

	require.NoError(t, sh.Reconfigure(ctx, " https://other.example.net:8443 "))
	assert.True(t, old.Closed())
	assert.Equal(t, entity.Origin{Scheme: "https", Host: "other.example.net", Port: 8443}, sh.Session().Trusted)
}

func TestShell_ReconfigureRejectsInvalid(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	f.deps.Prefs = newPreferences(t, map[string]string{repository.KeyServerURL: trustedURL})
	f.surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()

	sh := usecase.NewShell(sessionConfig(), f.deps, syncPost, nil)
	require.NoError(t, sh.Start(ctx))
	old := sh.Session()

	var urlErr *entity.ServerURLError
	require.ErrorAs(t, sh.Reconfigure(ctx, "not a url"), &urlErr)
	assert.Same(t, old, sh.Session())
	assert.False(t, old.Closed())
}

func TestShell_PictureInPicture(t *testing.T) {
	ctx := testContext()
	f := newSessionFixture(t)
	f.deps.Prefs = newPreferences(t, map[string]string{repository.KeyServerURL: trustedURL})
	f.surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()
	f.surface.EXPECT().EvaluateScript(mock.Anything, usecase.PipScript(true)).Once()
	f.surface.EXPECT().EvaluateScript(mock.Anything, usecase.PipScript(false)).Once()

	sh := usecase.NewShell(sessionConfig(), f.deps, syncPost, nil)
	assert.False(t, sh.OnUserLeaveHint())
	require.NoError(t, sh.Start(ctx))
	assert.False(t, sh.OnUserLeaveHint())

	sh.Session().Calls.StartCall(ctx, "video")
	assert.True(t, sh.OnUserLeaveHint())

	sh.OnPictureInPictureChanged(ctx, true)
	sh.OnPictureInPictureChanged(ctx, false)
}

func TestPipScript(t *testing.T) {
	assert.Equal(t,
		"if (typeof window.__fluxerOnPipChanged === 'function') window.__fluxerOnPipChanged(true);",
		usecase.PipScript(true))
}
