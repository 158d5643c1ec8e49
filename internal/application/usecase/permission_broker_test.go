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

// grantState is a mutable set of held grants behind a GrantChecker mock.
type grantState map[entity.Grant]bool

func newChecker(t *testing.T, held grantState) *portmocks.MockGrantChecker {
	checker := portmocks.NewMockGrantChecker(t)
	checker.EXPECT().IsGranted(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, g entity.Grant) bool { return held[g] }).
		Maybe()
	return checker
}

// dialogLog captures every dialog the broker opens.
type dialogLog struct {
	ctxs      []context.Context
	requests  [][]entity.Grant
	callbacks []func(map[entity.Grant]bool)
}

func newDialog(t *testing.T, log *dialogLog) *portmocks.MockPermissionDialog {
	dialog := portmocks.NewMockPermissionDialog(t)
	dialog.EXPECT().RequestGrants(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, grants []entity.Grant, cb func(map[entity.Grant]bool)) {
			log.ctxs = append(log.ctxs, ctx)
			log.requests = append(log.requests, grants)
			log.callbacks = append(log.callbacks, cb)
		}).
		Maybe()
	return dialog
}

func TestPermissionBroker_CrossOriginDeniedAndNotQueued(t *testing.T) {
	ctx := testContext()
	held := grantState{}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx,
		entity.NewCapabilityRequest("https://evil.example.org", entity.CapabilityAudio), rec)

	assert.Equal(t, 1, rec.denied)
	assert.Empty(t, rec.granted)
	assert.Equal(t, 0, broker.QueueLen())
	assert.Empty(t, dialogs.requests)
}

func TestPermissionBroker_UnparseableOriginDenied(t *testing.T) {
	ctx := testContext()
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, grantState{}), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest("", entity.CapabilityAudio), rec)

	assert.Equal(t, 1, rec.denied)
	assert.Equal(t, 0, broker.QueueLen())
}

func TestPermissionBroker_UnsupportedOnlyDenied(t *testing.T) {
	ctx := testContext()
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, grantState{}), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx,
		entity.NewCapabilityRequest(trustedURL, entity.CapabilityProtectedMedia, entity.CapabilityMIDISysex), rec)

	assert.Equal(t, 1, rec.denied)
	assert.Empty(t, dialogs.requests)
}

func TestPermissionBroker_FastGrantWhenHeld(t *testing.T) {
	ctx := testContext()
	held := grantState{entity.GrantMicrophone: true, entity.GrantCamera: true}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx,
		entity.NewCapabilityRequest(trustedURL+"/channels/1", entity.CapabilityAudio, entity.CapabilityVideo, entity.CapabilityProtectedMedia), rec)

	require.Len(t, rec.granted, 1)
	assert.Equal(t, []entity.Capability{entity.CapabilityAudio, entity.CapabilityVideo}, rec.granted[0])
	assert.Empty(t, dialogs.requests)
	assert.Equal(t, 0, broker.QueueLen())
}

func TestPermissionBroker_OneDialogForBothGrants_PartialApproval(t *testing.T) {
	ctx := testContext()
	held := grantState{}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx,
		entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio, entity.CapabilityVideo), rec)

	require.Len(t, dialogs.requests, 1)
	assert.ElementsMatch(t, []entity.Grant{entity.GrantMicrophone, entity.GrantCamera}, dialogs.requests[0])
	assert.True(t, broker.DialogInFlight())
	assert.Equal(t, 0, rec.resolutions())

	held[entity.GrantMicrophone] = true
	dialogs.callbacks[0](map[entity.Grant]bool{entity.GrantMicrophone: true, entity.GrantCamera: false})

	require.Len(t, rec.granted, 1)
	assert.Equal(t, []entity.Capability{entity.CapabilityAudio}, rec.granted[0])
	assert.Equal(t, 0, rec.denied)
	assert.False(t, broker.DialogInFlight())
	assert.Equal(t, 0, broker.QueueLen())
}

func TestPermissionBroker_DialogOnlyAsksMissingGrants(t *testing.T) {
	ctx := testContext()
	held := grantState{entity.GrantMicrophone: true}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx,
		entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio, entity.CapabilityVideo), rec)

	require.Len(t, dialogs.requests, 1)
	assert.Equal(t, []entity.Grant{entity.GrantCamera}, dialogs.requests[0])

	// The result only mentions the camera; the microphone is still held.
	dialogs.callbacks[0](map[entity.Grant]bool{entity.GrantCamera: true})

	require.Len(t, rec.granted, 1)
	assert.Equal(t, []entity.Capability{entity.CapabilityAudio, entity.CapabilityVideo}, rec.granted[0])
}

func TestPermissionBroker_DeniedDialogDeniesRequest(t *testing.T) {
	ctx := testContext()
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, grantState{}), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityVideo), rec)
	require.Len(t, dialogs.callbacks, 1)

	dialogs.callbacks[0](map[entity.Grant]bool{})

	assert.Equal(t, 1, rec.denied)
	assert.Empty(t, rec.granted)
}

func TestPermissionBroker_BackToBack_SecondFastGranted(t *testing.T) {
	ctx := testContext()
	held := grantState{}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	first, second := &recorder{}, &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), first)
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), second)

	require.Len(t, dialogs.requests, 1, "second request must wait behind the first dialog")
	assert.Equal(t, 2, broker.QueueLen())
	assert.Equal(t, 0, second.resolutions())

	held[entity.GrantMicrophone] = true
	dialogs.callbacks[0](map[entity.Grant]bool{entity.GrantMicrophone: true})

	assert.Len(t, first.granted, 1)
	assert.Len(t, second.granted, 1, "second request is granted from held grants")
	assert.Len(t, dialogs.requests, 1, "no second dialog")
	assert.Equal(t, 0, broker.QueueLen())
}

func TestPermissionBroker_BackToBack_SecondNeedsItsOwnDialog(t *testing.T) {
	ctx := testContext()
	held := grantState{}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	first, second := &recorder{}, &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), first)
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityVideo), second)
	require.Len(t, dialogs.requests, 1)

	held[entity.GrantMicrophone] = true
	dialogs.callbacks[0](map[entity.Grant]bool{entity.GrantMicrophone: true})

	assert.Len(t, first.granted, 1)
	assert.Equal(t, 0, second.resolutions())
	require.Len(t, dialogs.requests, 2)
	assert.Equal(t, []entity.Grant{entity.GrantCamera}, dialogs.requests[1])
	assert.True(t, broker.DialogInFlight())
	assert.Equal(t, 1, broker.QueueLen())

	dialogs.callbacks[1](map[entity.Grant]bool{entity.GrantCamera: false})
	assert.Equal(t, 1, second.denied)
	assert.False(t, broker.DialogInFlight())
}

func TestPermissionBroker_NeverTwoDialogsAndEachResolvedOnce(t *testing.T) {
	ctx := testContext()
	held := grantState{}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	const n = 50
	recs := make([]*recorder, n)
	withMissing := 0
	for i := range recs {
		recs[i] = &recorder{}
		capability := entity.CapabilityAudio
		if i%3 == 0 {
			capability = entity.CapabilityVideo
		}
		broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, capability), recs[i])
		withMissing++
	}

	resolved := 0
	for broker.DialogInFlight() {
		// Exactly one callback is live: the latest one.
		assert.Equal(t, resolved+1, len(dialogs.requests))
		last := dialogs.callbacks[len(dialogs.callbacks)-1]
		for _, g := range dialogs.requests[len(dialogs.requests)-1] {
			held[g] = true
		}
		last(map[entity.Grant]bool{entity.GrantMicrophone: true, entity.GrantCamera: true})
		resolved++
	}

	assert.LessOrEqual(t, len(dialogs.requests), withMissing)
	assert.Equal(t, 2, len(dialogs.requests), "one dialog per distinct missing grant")
	for i, r := range recs {
		assert.Equal(t, 1, r.resolutions(), "request %d resolved exactly once", i)
	}
}

func TestPermissionBroker_StaleCallbackIgnored(t *testing.T) {
	ctx := testContext()
	held := grantState{}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), rec)
	cb := dialogs.callbacks[0]

	cb(map[entity.Grant]bool{entity.GrantMicrophone: true})
	cb(map[entity.Grant]bool{entity.GrantMicrophone: true})

	assert.Equal(t, 1, rec.resolutions())
}

func TestPermissionBroker_CloseFlushesWithDenial(t *testing.T) {
	ctx := testContext()
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, grantState{}), newDialog(t, &dialogs), syncPost)

	a, b := &recorder{}, &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), a)
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityVideo), b)

	broker.Close(ctx)

	assert.Equal(t, 1, a.denied)
	assert.Equal(t, 1, b.denied)
	assert.Equal(t, 0, broker.QueueLen())

	// A late answer to the dialog that was showing changes nothing.
	dialogs.callbacks[0](map[entity.Grant]bool{entity.GrantMicrophone: true})
	assert.Equal(t, 1, a.resolutions())

	c := &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), c)
	assert.Equal(t, 1, c.denied)
	assert.Len(t, dialogs.requests, 1)
}

func TestPermissionBroker_CloseCancelsOpenDialog(t *testing.T) {
	ctx := testContext()
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, grantState{}), newDialog(t, &dialogs), syncPost)

	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), &recorder{})
	require.Len(t, dialogs.ctxs, 1)
	require.NoError(t, dialogs.ctxs[0].Err())

	broker.Close(ctx)
	assert.ErrorIs(t, dialogs.ctxs[0].Err(), context.Canceled)
	assert.NoError(t, ctx.Err(), "only the dialog's context is cancelled")
}

func TestPermissionBroker_AnsweredDialogContextReleased(t *testing.T) {
	ctx := testContext()
	held := grantState{}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), &recorder{})
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityVideo), &recorder{})
	dialogs.callbacks[0](map[entity.Grant]bool{entity.GrantMicrophone: true})

	require.Len(t, dialogs.ctxs, 2)
	assert.Error(t, dialogs.ctxs[0].Err())
	assert.NoError(t, dialogs.ctxs[1].Err(), "the camera dialog is still showing")
}

func TestPermissionBroker_LongRunOfFastGrantsAfterOneDialog(t *testing.T) {
	ctx := testContext()
	held := grantState{}
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, held), newDialog(t, &dialogs), syncPost)

	const n = 1000
	recs := make([]*recorder, n)
	for i := range recs {
		recs[i] = &recorder{}
		broker.OnCapabilityRequested(ctx,
			entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio, entity.CapabilityVideo), recs[i])
	}
	require.Len(t, dialogs.requests, 1)
	assert.Equal(t, n, broker.QueueLen())

	held[entity.GrantMicrophone] = true
	held[entity.GrantCamera] = true
	dialogs.callbacks[0](map[entity.Grant]bool{entity.GrantMicrophone: true, entity.GrantCamera: true})

	assert.Equal(t, 0, broker.QueueLen())
	assert.False(t, broker.DialogInFlight())
	assert.Len(t, dialogs.requests, 1)
	for i, r := range recs {
		require.Len(t, r.granted, 1, "request %d", i)
		assert.Equal(t, 0, r.denied, "request %d", i)
	}
}

func TestPermissionBroker_ResultsPostedToMainLoop(t *testing.T) {
	ctx := testContext()
	var dialogs dialogLog
	var posted []func()
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, grantState{}), newDialog(t, &dialogs),
		func(fn func()) { posted = append(posted, fn) })

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), rec)
	dialogs.callbacks[0](map[entity.Grant]bool{entity.GrantMicrophone: true})

	assert.Equal(t, 0, rec.resolutions(), "nothing applied until the loop runs the task")
	require.Len(t, posted, 1)
	posted[0]()
	assert.Len(t, rec.granted, 1)
}

func TestPermissionBroker_OnDialogResult(t *testing.T) {
	ctx := testContext()
	var dialogs dialogLog
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, grantState{}), newDialog(t, &dialogs), syncPost)

	rec := &recorder{}
	broker.OnCapabilityRequested(ctx, entity.NewCapabilityRequest(trustedURL, entity.CapabilityAudio), rec)
	broker.OnDialogResult(ctx, map[entity.Grant]bool{entity.GrantMicrophone: true})
	assert.Len(t, rec.granted, 1)

	// No dialog showing: nothing to resolve.
	broker.OnDialogResult(ctx, map[entity.Grant]bool{entity.GrantMicrophone: true})
	assert.Equal(t, 1, rec.resolutions())
}

func TestPermissionBroker_GeolocationAlwaysDenied(t *testing.T) {
	ctx := testContext()
	broker := usecase.NewPermissionBroker(trustedOrigin, newChecker(t, grantState{}), newDialog(t, &dialogLog{}), syncPost)

	allowed := true
	broker.OnGeolocationRequested(ctx, trustedURL, func(allow bool) { allowed = allow })
	assert.False(t, allowed)
}

func TestCapabilityCallback(t *testing.T) {
	var got []entity.Capability
	denied := false
	cb := usecase.CapabilityCallback{
		OnGrant: func(caps []entity.Capability) { got = caps },
		OnDeny:  func() { denied = true },
	}
	cb.Grant([]entity.Capability{entity.CapabilityAudio})
	cb.Deny()

	assert.Equal(t, []entity.Capability{entity.CapabilityAudio}, got)
	assert.True(t, denied)

	// Zero value is safe.
	usecase.CapabilityCallback{}.Deny()
}
