package idle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalInhibitor_RefcountWithoutPortal(t *testing.T) {
	ctx := context.Background()
	p := &PortalInhibitor{}

	assert.False(t, p.Supported())
	assert.False(t, p.IsInhibited())

	require.NoError(t, p.Inhibit(ctx, "Call in progress"))
	require.NoError(t, p.Inhibit(ctx, "Call in progress"))
	assert.True(t, p.IsInhibited())

	require.NoError(t, p.Uninhibit(ctx))
	assert.True(t, p.IsInhibited(), "one reference still held")

	require.NoError(t, p.Uninhibit(ctx))
	assert.False(t, p.IsInhibited())

	require.NoError(t, p.Uninhibit(ctx), "extra uninhibit is a no-op")
	assert.False(t, p.IsInhibited())
}

func TestPortalInhibitor_CloseResets(t *testing.T) {
	ctx := context.Background()
	p := &PortalInhibitor{}

	require.NoError(t, p.Inhibit(ctx, "Call in progress"))
	require.NoError(t, p.Close())
	assert.False(t, p.IsInhibited())
	require.NoError(t, p.Close())
}
