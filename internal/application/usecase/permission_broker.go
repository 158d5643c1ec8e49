package usecase

import (
	"context"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/logging"
)

// CapabilityCallback adapts a pair of functions to port.CapabilityResponder.
type CapabilityCallback struct {
	OnGrant func(caps []entity.Capability)
	OnDeny  func()
}

// Grant implements port.CapabilityResponder.
func (c CapabilityCallback) Grant(caps []entity.Capability) {
	if c.OnGrant != nil {
		c.OnGrant(caps)
	}
}

// Deny implements port.CapabilityResponder.
func (c CapabilityCallback) Deny() {
	if c.OnDeny != nil {
		c.OnDeny()
	}
}

type pendingRequest struct {
	req       *entity.CapabilityRequest
	responder port.CapabilityResponder
	narrowed  []entity.Capability
	// asked holds the grants shown in this request's dialog.
	asked map[entity.Grant]bool
}

// PermissionBroker arbitrates page capability requests against a platform
// that can show only one permission dialog at a time.
//
// Requests from other origins and requests for unsupported capabilities are
// denied without a word. The rest are answered at once when every grant they
// need is already held, and otherwise queued behind a single dialog in FIFO
// order. All methods must be called from the main loop.
type PermissionBroker struct {
	trusted entity.Origin
	checker port.GrantChecker
	dialog  port.PermissionDialog
	post    func(func())

	queue        []*pendingRequest
	inFlight     bool
	dialogSeq    uint64
	cancelDialog context.CancelFunc
	closed       bool
}

// NewPermissionBroker creates a broker for the trusted origin. post marshals
// dialog results back onto the main loop.
func NewPermissionBroker(
	trusted entity.Origin,
	checker port.GrantChecker,
	dialog port.PermissionDialog,
	post func(func()),
) *PermissionBroker {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &PermissionBroker{
		trusted: trusted,
		checker: checker,
		dialog:  dialog,
		post:    post,
	}
}

// OnCapabilityRequested handles a capture request raised by the surface.
// It never blocks: a needed dialog resolves later through OnDialogResult.
func (b *PermissionBroker) OnCapabilityRequested(
	ctx context.Context,
	req *entity.CapabilityRequest,
	responder port.CapabilityResponder,
) {
	if req == nil || responder == nil {
		return
	}
	log := logging.FromContext(ctx).With().
		Str("component", "permission-broker").
		Str("request_id", req.ID).
		Str("origin", req.Origin).
		Strs("capabilities", entity.CapabilitiesToStrings(req.Capabilities)).
		Logger()

	if b.closed {
		log.Debug().Msg("session closed, denying")
		responder.Deny()
		return
	}

	if !url.SameOriginAs(req.Origin, b.trusted) {
		log.Debug().Msg("cross-origin capability request, denying")
		responder.Deny()
		return
	}

	narrowed := narrowCapabilities(req.Capabilities)
	if len(narrowed) == 0 {
		log.Debug().Msg("no supported capability requested, denying")
		responder.Deny()
		return
	}

	missing := b.missingGrants(ctx, narrowed)
	if len(missing) == 0 {
		log.Debug().Msg("all grants held, granting")
		responder.Grant(narrowed)
		return
	}

	wasEmpty := len(b.queue) == 0
	b.queue = append(b.queue, &pendingRequest{
		req:       req,
		responder: responder,
		narrowed:  narrowed,
	})
	log.Debug().Int("queue_len", len(b.queue)).Msg("capability request queued")

	if wasEmpty && !b.inFlight {
		b.openDialog(ctx, b.queue[0], missing)
	}
}

// OnGeolocationRequested always refuses location access.
func (b *PermissionBroker) OnGeolocationRequested(ctx context.Context, origin string, callback func(allow bool)) {
	logging.FromContext(ctx).Debug().
		Str("component", "permission-broker").
		Str("origin", origin).
		Msg("geolocation request denied")
	if callback != nil {
		callback(false)
	}
}

// OnDialogResult resolves the dialog currently in flight with the user's
// answer, then advances the queue.
func (b *PermissionBroker) OnDialogResult(ctx context.Context, results map[entity.Grant]bool) {
	b.resolveDialog(ctx, b.dialogSeq, results)
}

// Close denies every queued request and cancels the context of the dialog
// on screen. Later requests are denied at once and late dialog results are
// ignored.
func (b *PermissionBroker) Close(ctx context.Context) {
	if b.closed {
		return
	}
	b.closed = true
	b.inFlight = false
	b.stopDialog()

	pending := b.queue
	b.queue = nil
	for _, p := range pending {
		logging.FromContext(ctx).Debug().
			Str("component", "permission-broker").
			Str("request_id", p.req.ID).
			Msg("flushing queued request on close")
		p.responder.Deny()
	}
}

// QueueLen returns the number of requests waiting, including the one whose
// dialog is showing.
func (b *PermissionBroker) QueueLen() int {
	return len(b.queue)
}

// DialogInFlight reports whether a permission dialog is showing.
func (b *PermissionBroker) DialogInFlight() bool {
	return b.inFlight
}

func (b *PermissionBroker) openDialog(ctx context.Context, head *pendingRequest, missing []entity.Grant) {
	b.dialogSeq++
	seq := b.dialogSeq
	b.inFlight = true

	dialogCtx, cancel := context.WithCancel(ctx)
	b.cancelDialog = cancel

	head.asked = make(map[entity.Grant]bool, len(missing))
	for _, g := range missing {
		head.asked[g] = true
	}

	logging.FromContext(ctx).Debug().
		Str("component", "permission-broker").
		Str("request_id", head.req.ID).
		Strs("grants", entity.GrantsToStrings(missing)).
		Msg("requesting grants")

	b.dialog.RequestGrants(dialogCtx, missing, func(results map[entity.Grant]bool) {
		b.post(func() { b.resolveDialog(ctx, seq, results) })
	})
}

func (b *PermissionBroker) resolveDialog(ctx context.Context, seq uint64, results map[entity.Grant]bool) {
	log := logging.FromContext(ctx).With().Str("component", "permission-broker").Logger()

	if b.closed || !b.inFlight || seq != b.dialogSeq || len(b.queue) == 0 {
		log.Debug().Uint64("dialog", seq).Msg("ignoring stale dialog result")
		return
	}
	b.inFlight = false
	b.stopDialog()

	head := b.queue[0]
	b.queue[0] = nil
	b.queue = b.queue[1:]

	decision := b.partition(ctx, head, results)
	b.apply(ctx, head, decision)
	b.advance(ctx)
}

func (b *PermissionBroker) stopDialog() {
	if b.cancelDialog != nil {
		b.cancelDialog()
		b.cancelDialog = nil
	}
}

// advance answers queued requests whose grants are now all held and stops at
// the first one that needs a dialog. It loops rather than recursing so a long
// run of fast grants does not grow the stack.
func (b *PermissionBroker) advance(ctx context.Context) {
	for len(b.queue) > 0 && !b.inFlight && !b.closed {
		head := b.queue[0]
		missing := b.missingGrants(ctx, head.narrowed)
		if len(missing) > 0 {
			b.openDialog(ctx, head, missing)
			return
		}
		b.queue[0] = nil
		b.queue = b.queue[1:]
		b.apply(ctx, head, decide(head, func(entity.Capability) bool { return true }))
	}
}

// partition splits the head's capabilities after its dialog. A capability is
// granted only if every grant it maps to was approved in the dialog, or was
// not part of the dialog and is still held.
func (b *PermissionBroker) partition(
	ctx context.Context,
	head *pendingRequest,
	results map[entity.Grant]bool,
) entity.GrantDecision {
	return decide(head, func(c entity.Capability) bool {
		for _, g := range entity.RequiredGrants(c) {
			if head.asked[g] {
				if !results[g] {
					return false
				}
			} else if !b.checker.IsGranted(ctx, g) {
				return false
			}
		}
		return true
	})
}

// decide builds the decision over everything the page asked for, so that
// unsupported capabilities show up as denied.
func decide(p *pendingRequest, granted func(entity.Capability) bool) entity.GrantDecision {
	var decision entity.GrantDecision
	supported := make(map[entity.Capability]bool, len(p.narrowed))
	for _, c := range p.narrowed {
		supported[c] = true
	}
	seen := make(map[entity.Capability]bool)
	for _, c := range p.req.Capabilities {
		if seen[c] {
			continue
		}
		seen[c] = true
		if supported[c] && granted(c) {
			decision.Granted = append(decision.Granted, c)
		} else {
			decision.Denied = append(decision.Denied, c)
		}
	}
	return decision
}

func (b *PermissionBroker) apply(ctx context.Context, p *pendingRequest, decision entity.GrantDecision) {
	logging.FromContext(ctx).Debug().
		Str("component", "permission-broker").
		Str("request_id", p.req.ID).
		Strs("granted", entity.CapabilitiesToStrings(decision.Granted)).
		Strs("denied", entity.CapabilitiesToStrings(decision.Denied)).
		Msg("capability request resolved")

	if decision.IsDenied() {
		p.responder.Deny()
		return
	}
	p.responder.Grant(decision.Granted)
}

func (b *PermissionBroker) missingGrants(ctx context.Context, caps []entity.Capability) []entity.Grant {
	var missing []entity.Grant
	seen := make(map[entity.Grant]bool)
	for _, c := range caps {
		for _, g := range entity.RequiredGrants(c) {
			if seen[g] {
				continue
			}
			seen[g] = true
			if !b.checker.IsGranted(ctx, g) {
				missing = append(missing, g)
			}
		}
	}
	return missing
}

func narrowCapabilities(caps []entity.Capability) []entity.Capability {
	var narrowed []entity.Capability
	seen := make(map[entity.Capability]bool)
	for _, c := range caps {
		if !c.IsSupported() || seen[c] {
			continue
		}
		seen[c] = true
		narrowed = append(narrowed, c)
	}
	return narrowed
}
