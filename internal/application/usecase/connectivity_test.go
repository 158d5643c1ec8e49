package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	portmocks "github.com/shadowflee/fluxer/internal/application/port/mocks"
	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/mainloop"
)

func TestConnectivityMonitor_LostThenBackOnErrorPage(t *testing.T) {
	ctx := testContext()
	surface := portmocks.NewMockContentSurface(t)
	surface.EXPECT().CurrentURL().Return(fallbackPage).Once()
	surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()
	toaster := portmocks.NewMockToaster(t)
	toaster.EXPECT().Show(mock.Anything, "Network connection lost").Once()

	m := usecase.NewConnectivityMonitor(trustedURL, fallbackPage, surface, toaster, nil)
	m.OnLost(ctx)
	assert.True(t, m.Offline())
	m.OnAvailable(ctx)
	assert.False(t, m.Offline())
}

func TestConnectivityMonitor_BackOnBlankSurface(t *testing.T) {
	ctx := testContext()
	surface := portmocks.NewMockContentSurface(t)
	surface.EXPECT().CurrentURL().Return("").Once()
	surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()
	toaster := portmocks.NewMockToaster(t)
	toaster.EXPECT().Show(mock.Anything, mock.Anything).Once()

	m := usecase.NewConnectivityMonitor(trustedURL, fallbackPage, surface, toaster, nil)
	m.OnLost(ctx)
	m.OnAvailable(ctx)
}

func TestConnectivityMonitor_BackOnLivePageDoesNothing(t *testing.T) {
	ctx := testContext()
	surface := portmocks.NewMockContentSurface(t)
	surface.EXPECT().CurrentURL().Return(trustedURL + "/channels/1").Once()
	toaster := portmocks.NewMockToaster(t)
	toaster.EXPECT().Show(mock.Anything, mock.Anything).Once()

	m := usecase.NewConnectivityMonitor(trustedURL, fallbackPage, surface, toaster, nil)
	m.OnLost(ctx)
	m.OnAvailable(ctx)
}

func TestConnectivityMonitor_AvailableWithoutLossIgnored(t *testing.T) {
	ctx := testContext()
	m := usecase.NewConnectivityMonitor(trustedURL, fallbackPage,
		portmocks.NewMockContentSurface(t), portmocks.NewMockToaster(t), nil)
	m.OnAvailable(ctx)
	m.OnAvailable(ctx)
}

func TestConnectivityMonitor_BurstCoalesced(t *testing.T) {
	ctx := testContext()
	var queued []func()
	coalescer := mainloop.NewCoalescer(func(fn func()) { queued = append(queued, fn) })
	defer coalescer.Destroy()

	surface := portmocks.NewMockContentSurface(t)
	surface.EXPECT().CurrentURL().Return("").Once()
	surface.EXPECT().LoadURL(mock.Anything, trustedURL).Once()

	m := usecase.NewConnectivityMonitor(trustedURL, fallbackPage, surface, portmocks.NewMockToaster(t), coalescer.Post)
	m.OnLost(ctx)
	m.OnAvailable(ctx)
	m.OnLost(ctx)
	m.OnAvailable(ctx)

	assert.Len(t, queued, 1, "one task for the whole burst")
	for _, fn := range queued {
		fn()
	}
}
