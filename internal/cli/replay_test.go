package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/infrastructure/persistence/sqlite"
	"github.com/shadowflee/fluxer/internal/logging"
)

const (
	testServer   = "https://chat.example.com"
	testFallback = "file:///tmp/fluxer/error.html"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestRepos(t *testing.T, ctx context.Context) Repositories {
	t.Helper()
	db, err := sqlite.NewConnection(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return Repositories{
		Prefs:    sqlite.NewPreferenceRepository(db),
		Grants:   sqlite.NewGrantRepository(db),
		Channels: sqlite.NewChannelRepository(db),
	}
}

func newTestHarness(t *testing.T, allow, proceed bool, opts ...func(*HarnessOptions)) (*Harness, *syncBuffer, context.Context) {
	t.Helper()
	ctx := logging.WithContext(context.Background(), zerolog.Nop())

	repos := newTestRepos(t, ctx)
	_, err := usecase.NewConfigureServerUseCase(repos.Prefs).Save(ctx, testServer)
	require.NoError(t, err)

	return buildTestHarness(t, ctx, repos, allow, proceed, opts...)
}

func buildTestHarness(t *testing.T, ctx context.Context, repos Repositories, allow, proceed bool, opts ...func(*HarnessOptions)) (*Harness, *syncBuffer, context.Context) {
	t.Helper()
	out := &syncBuffer{}
	o := HarnessOptions{
		Session: usecase.SessionConfig{
			FallbackPage:       testFallback,
			DeepLinkScheme:     "fluxer",
			ShareTextLimit:     usecase.DefaultShareTextLimit,
			ChannelDisplayName: "Messages",
			DownloadDir:        t.TempDir(),
		},
		Repos:    repos,
		Dialog:   ScriptedDialog{Allow: allow},
		Prompter: ScriptedPrompter{Proceed: proceed},
		Out:      out,
		Theme:    styles.NewTheme(),
		NoBus:    true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	h, err := NewHarness(ctx, o)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(ctx) })
	return h, out, ctx
}

func withSetup(serverURL string) func(*HarnessOptions) {
	return func(o *HarnessOptions) {
		o.Setup = ScriptedSetup{ServerURL: serverURL, Out: o.Out, Theme: o.Theme}
	}
}

func withSound(sound string) func(*HarnessOptions) {
	return func(o *HarnessOptions) {
		o.Sounds = ScriptedSoundPicker{Sound: sound, Set: true, Out: o.Out, Theme: o.Theme}
	}
}

func withFiles(files ...string) func(*HarnessOptions) {
	return func(o *HarnessOptions) {
		o.Files = ScriptedFilePicker{Files: files, Out: o.Out, Theme: o.Theme}
	}
}

func sessionSound(t *testing.T, h *Harness, ctx context.Context) (ref, channelID string) {
	t.Helper()
	var running bool
	require.NoError(t, h.Do(ctx, func(s *usecase.Session) {
		if s == nil {
			return
		}
		running = true
		ref = s.Channels.SoundRef(ctx)
		channelID = s.Channels.ActiveID()
	}))
	require.True(t, running, "no session")
	return ref, channelID
}

func replay(t *testing.T, h *Harness, out *syncBuffer, ctx context.Context, lines ...string) []string {
	t.Helper()
	r := NewReplayer(h, out, styles.NewTheme())
	require.NoError(t, h.Start(ctx))
	require.NoError(t, r.Run(ctx, strings.NewReader(strings.Join(lines, "\n"))))
	return strings.Split(out.String(), "\n")
}

func lineWith(t *testing.T, lines []string, parts ...string) string {
	t.Helper()
	for _, l := range lines {
		ok := true
		for _, p := range parts {
			if !strings.Contains(l, p) {
				ok = false
				break
			}
		}
		if ok {
			return l
		}
	}
	t.Fatalf("no line contains %q in:\n%s", parts, strings.Join(lines, "\n"))
	return ""
}

func TestReplay_StartLoadsServer(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false)
	replay(t, h, out, ctx)

	assert.Equal(t, []string{testServer}, h.Surface.Loads())
}

func TestReplay_CapabilityRequests(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false)
	lines := replay(t, h, out, ctx,
		`{"type":"capability","origin":"https://chat.example.com","capabilities":["audio"]}`,
		`{"type":"capability","origin":"https://evil.example","capabilities":["audio"]}`,
		`{"type":"capability","origin":"https://chat.example.com","capabilities":["midi_sysex"]}`,
	)

	lineWith(t, lines, "https://chat.example.com audio", "grant audio")
	lineWith(t, lines, "https://evil.example audio", "deny")
	lineWith(t, lines, "midi_sysex", "deny")
	assert.True(t, h.Grants.IsGranted(ctx, entity.GrantMicrophone))
	assert.False(t, h.Grants.IsGranted(ctx, entity.GrantCamera))
}

func TestReplay_DeniedDialogIsRemembered(t *testing.T) {
	h, out, ctx := newTestHarness(t, false, false)
	lines := replay(t, h, out, ctx,
		`{"type":"capability","origin":"https://chat.example.com","capabilities":["video"]}`,
	)

	lineWith(t, lines, "video", "deny")
	records, err := h.Grants.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.GrantCamera, records[0].Grant)
	assert.False(t, records[0].Granted)
}

func TestReplay_NavigationAndLanding(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false)
	lines := replay(t, h, out, ctx,
		`{"type":"navigate","url":"https://chat.example.com/channels/@me"}`,
		`{"type":"navigate","url":"https://github.com/fluxerapp"}`,
		`{"type":"landed","url":"https://chat.example.com/channels/@me"}`,
		`{"type":"landed","url":"https://evil.example/"}`,
	)

	lineWith(t, lines, "navigate", "https://chat.example.com/channels/@me", "stay")
	lineWith(t, lines, "navigate", "https://github.com/fluxerapp", "delegate")
	lineWith(t, lines, "external", "https://github.com/fluxerapp")
	lineWith(t, lines, "landed", "https://evil.example/", "fallback")
	assert.Equal(t, []string{testServer, testFallback}, h.Surface.Loads())
	assert.Contains(t, h.Surface.Scripts(), usecase.BridgeMarkerScript)
}

func TestReplay_BridgeFollowsTrust(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false)
	lines := replay(t, h, out, ctx,
		`{"type":"bridge","script":"typeof FluxerAndroid"}`,
		`{"type":"landed","url":"https://chat.example.com/app"}`,
		`{"type":"bridge","script":"FluxerAndroid.getServerUrl()"}`,
		`{"type":"bridge","script":"FluxerAndroid.startCall('video')"}`,
		`{"type":"leave"}`,
		`{"type":"bridge","script":"FluxerAndroid.showNotification('Ping', 'hello')"}`,
		`{"type":"landed","url":"https://evil.example/"}`,
		`{"type":"bridge","script":"typeof FluxerAndroid"}`,
	)

	lineWith(t, lines, "typeof FluxerAndroid", "undefined")
	lineWith(t, lines, "getServerUrl", testServer)
	lineWith(t, lines, "leave", "video", "minimize=true")
	lineWith(t, lines, "notification", "Ping: hello")
}

func TestReplay_TLSErrors(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, true)
	lines := replay(t, h, out, ctx,
		`{"type":"tls","url":"https://chat.example.com/","host":"chat.example.com","reason":"self-signed"}`,
		`{"type":"tls","url":"https://cdn.example.net/a.js","host":"cdn.example.net","reason":"expired"}`,
	)

	lineWith(t, lines, "https://chat.example.com/", "proceed")
	lineWith(t, lines, "https://cdn.example.net/a.js", "cancel")
}

func TestReplay_IntentsAndNetwork(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false)
	lines := replay(t, h, out, ctx,
		`{"type":"landed","url":"https://chat.example.com/app"}`,
		`{"type":"deeplink","url":"fluxer://channels/1/2"}`,
		`{"type":"share","text":"it's here"}`,
		`{"type":"network","online":false}`,
		`{"type":"network","online":true}`,
	)

	lineWith(t, lines, "deeplink", "handled")
	lineWith(t, lines, "share", "9 chars", "handled")
	lineWith(t, lines, "network", "lost", "offline=true")
	lineWith(t, lines, "network", "available", "offline=false")
	assert.Contains(t, h.Surface.Loads(), "https://chat.example.com/#/channels/1/2")
}

func TestReplay_CloseDeniesLaterRequests(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false)
	lines := replay(t, h, out, ctx,
		`{"type":"close"}`,
		`{"type":"navigate","url":"https://chat.example.com/"}`,
	)

	lineWith(t, lines, "close", "closed")
	lineWith(t, lines, "navigate", "no session")
}

func TestReplay_BadInput(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false)
	r := NewReplayer(h, out, styles.NewTheme())
	require.NoError(t, h.Start(ctx))

	err := r.Run(ctx, strings.NewReader("# comment\n\n{\"type\":\"teleport\"}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")

	err = r.Run(ctx, strings.NewReader("{not json}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReplay_CustomSoundPickerChangesChannel(t *testing.T) {
	const ping = "file:///sounds/ping.ogg"
	h, out, ctx := newTestHarness(t, true, false, withSound(ping))
	lines := replay(t, h, out, ctx,
		`{"type":"landed","url":"https://chat.example.com/app"}`,
		`{"type":"bridge","script":"FluxerAndroid.openCustomSoundPicker()"}`,
	)

	lineWith(t, lines, "sound", "ping")
	lineWith(t, lines, "toast", "Notification sound: ping")
	ref, channelID := sessionSound(t, h, ctx)
	assert.Equal(t, ping, ref)
	assert.Equal(t, entity.ChannelIDForSound(ping), channelID)
	assert.NotEqual(t, entity.DefaultChannelID, channelID)
}

func TestReplay_NotificationSettingsFallsBackToSoundPicker(t *testing.T) {
	const chime = "file:///sounds/chime.wav"
	h, out, ctx := newTestHarness(t, true, false, withSound(chime))
	lines := replay(t, h, out, ctx,
		`{"type":"landed","url":"https://chat.example.com/app"}`,
		`{"type":"bridge","script":"FluxerAndroid.openNotificationSettings()"}`,
	)

	lineWith(t, lines, "sound", "chime")
	ref, channelID := sessionSound(t, h, ctx)
	assert.Equal(t, chime, ref)
	assert.Equal(t, entity.ChannelIDForSound(chime), channelID)
}

func TestReplay_ChangeServerLoadsNewServer(t *testing.T) {
	const other = "https://other.example.com"
	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	repos := newTestRepos(t, ctx)
	_, err := usecase.NewConfigureServerUseCase(repos.Prefs).Save(ctx, testServer)
	require.NoError(t, err)

	h, out, ctx := buildTestHarness(t, ctx, repos, true, false, withSetup(other))
	lines := replay(t, h, out, ctx,
		`{"type":"landed","url":"https://chat.example.com/app"}`,
		`{"type":"bridge","script":"FluxerAndroid.openChangeServer()"}`,
	)

	lineWith(t, lines, "setup", testServer, other)
	loads := h.Surface.Loads()
	require.NotEmpty(t, loads)
	assert.Equal(t, other, loads[len(loads)-1])

	stored, err := usecase.NewConfigureServerUseCase(repos.Prefs).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, other, stored)
}

func TestReplay_DefaultAdaptersDismiss(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false)
	lines := replay(t, h, out, ctx,
		`{"type":"landed","url":"https://chat.example.com/app"}`,
		`{"type":"bridge","script":"FluxerAndroid.openCustomSoundPicker()"}`,
		`{"type":"bridge","script":"FluxerAndroid.openChangeServer()"}`,
		`{"type":"file_chooser","accept":["image/png"]}`,
	)

	lineWith(t, lines, "sound", "dismissed")
	assert.NotContains(t, out.String(), "Notification sound")
	lineWith(t, lines, "setup", testServer, "dismissed")
	lineWith(t, lines, "files", "image/png", "cancelled")
	lineWith(t, lines, "file_chooser", "image/png", "nothing chosen")
	assert.Equal(t, []string{testServer}, h.Surface.Loads())
	ref, channelID := sessionSound(t, h, ctx)
	assert.Empty(t, ref)
	assert.Equal(t, entity.DefaultChannelID, channelID)
}

func TestReplay_StartWithoutServerOpensSetup(t *testing.T) {
	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	h, out, ctx := buildTestHarness(t, ctx, newTestRepos(t, ctx), true, false, withSetup(testServer))
	lines := replay(t, h, out, ctx)

	lineWith(t, lines, "setup", testServer)
	assert.Equal(t, []string{testServer}, h.Surface.Loads())
}

func TestReplay_FileChooser(t *testing.T) {
	h, out, ctx := newTestHarness(t, true, false, withFiles("/tmp/a.png", "/tmp/b.png"))
	lines := replay(t, h, out, ctx,
		`{"type":"landed","url":"https://chat.example.com/app"}`,
		`{"type":"file_chooser","accept":["image/png"]}`,
		`{"type":"file_chooser","accept":["image/png"],"multiple":true}`,
	)

	single := lineWith(t, lines, "file_chooser", "file:///tmp/a.png")
	assert.NotContains(t, single, "b.png")
	lineWith(t, lines, "file_chooser", "file:///tmp/a.png,file:///tmp/b.png")
}
