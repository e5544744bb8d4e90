package policy

import (
	"log/slog"
	"sync/atomic"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// PermissiveWhitelist is the last-resort arbiter in a policy chain. It runs
// after every other whitelist refused an operation and decides, by Mode,
// whether to convert that refusal into a permit, recording every unsafe
// signature it lets through.
//
// In entities.ModeEnabled the arbiter re-asks the whole chain whether some
// other policy would have permitted the operation on its own merits. Because
// the arbiter is itself part of that chain, the recheck holds a
// per-goroutine guard and the arbiter answers deny while re-entered, so the
// recheck measures the chain's verdict without the arbiter's influence.
type PermissiveWhitelist struct {
	rejector ports.Rejector
	queue    ports.ApprovalQueue
	log      *slog.Logger
	chain    ports.Whitelist
	guard    recheckGuard
	mode     atomic.Int32
}

// PermissiveOption configures a PermissiveWhitelist.
type PermissiveOption func(*PermissiveWhitelist)

// WithApprovalQueue sets the audit queue unsafe signatures are registered
// with. Without a queue only the log line is emitted.
func WithApprovalQueue(queue ports.ApprovalQueue) PermissiveOption {
	return func(w *PermissiveWhitelist) {
		w.queue = queue
	}
}

// WithLogger sets the logger for the "Unsecure signature found" audit line.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) PermissiveOption {
	return func(w *PermissiveWhitelist) {
		w.log = log
	}
}

// NewPermissiveWhitelist creates the arbiter with an initial mode and the
// deny-list collaborator it consults. The mode may be changed at runtime
// via SetMode.
func NewPermissiveWhitelist(mode entities.Mode, rejector ports.Rejector, opts ...PermissiveOption) *PermissiveWhitelist {
	w := &PermissiveWhitelist{
		rejector: rejector,
		log:      slog.Default(),
	}
	w.mode.Store(int32(mode))
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// BindChain wires the chain this arbiter belongs to, enabling the recheck.
// NewChain calls this for its own members; bind manually when assembling a
// chain some other way. While no chain is bound every recheck reports
// "otherwise denied", so rejected operations are logged and queued.
// Bind before the first evaluation.
func (w *PermissiveWhitelist) BindChain(chain ports.Whitelist) {
	w.chain = chain
}

// Mode returns the currently configured mode.
func (w *PermissiveWhitelist) Mode() entities.Mode {
	return entities.Mode(w.mode.Load())
}

// SetMode reconfigures the arbiter. Safe to call concurrently with
// evaluations; the next evaluation observes the new mode.
func (w *PermissiveWhitelist) SetMode(mode entities.Mode) {
	w.mode.Store(int32(mode))
}

// decide is the single decision function behind every entry point. The
// deny-list outcome and the recheck are both taken lazily so the modes that
// do not need them never compute them.
func (w *PermissiveWhitelist) decide(reject func() *entities.Rejection, recheck func() bool) bool {
	// Re-entered from our own recheck on this goroutine: answer deny so the
	// recheck reports the chain's verdict without this whitelist.
	if w.guard.held() {
		return false
	}

	switch w.Mode() {
	case entities.ModeNoSecurity:
		return true
	case entities.ModeEnabled:
		rejection := reject()
		if rejection == nil {
			// Nothing to decide; the chain's verdict stands.
			return false
		}
		if !w.otherwisePermitted(recheck) {
			w.record(rejection)
		}
		return true
	default:
		return false
	}
}

// otherwisePermitted re-runs the full chain with the guard held. The guard
// is released on every exit path, including a panicking member whitelist.
func (w *PermissiveWhitelist) otherwisePermitted(recheck func() bool) bool {
	if w.chain == nil {
		return false
	}
	w.guard.enter()
	defer w.guard.exit()
	return recheck()
}

// record emits the audit log line and registers the signature for review.
// The verdict is already decided by the time record runs; failures here are
// logged and swallowed.
func (w *PermissiveWhitelist) record(rejection *entities.Rejection) {
	w.log.Info("Unsecure signature found: " + rejection.Signature)
	if w.queue == nil {
		return
	}
	if err := w.queue.Register(rejection, entities.CurrentApprovalContext()); err != nil {
		w.log.Warn("failed to register pending signature", "signature", rejection.Signature, "error", err)
	}
}

// Ensure PermissiveWhitelist satisfies the whitelist contract.
var _ ports.Whitelist = (*PermissiveWhitelist)(nil)

func (w *PermissiveWhitelist) PermitsMethod(d entities.AccessDescriptor, receiver any, args []any) bool {
	return w.decide(
		func() *entities.Rejection { return w.rejector.RejectMethod(d) },
		func() bool { return w.chain.PermitsMethod(d, receiver, args) },
	)
}

func (w *PermissiveWhitelist) PermitsConstructor(d entities.AccessDescriptor, args []any) bool {
	return w.decide(
		func() *entities.Rejection { return w.rejector.RejectConstructor(d) },
		func() bool { return w.chain.PermitsConstructor(d, args) },
	)
}

func (w *PermissiveWhitelist) PermitsStaticMethod(d entities.AccessDescriptor, args []any) bool {
	return w.decide(
		func() *entities.Rejection { return w.rejector.RejectStaticMethod(d) },
		func() bool { return w.chain.PermitsStaticMethod(d, args) },
	)
}

func (w *PermissiveWhitelist) PermitsFieldGet(d entities.AccessDescriptor, receiver any) bool {
	return w.decide(
		func() *entities.Rejection { return w.rejector.RejectFieldGet(d) },
		func() bool { return w.chain.PermitsFieldGet(d, receiver) },
	)
}

func (w *PermissiveWhitelist) PermitsFieldSet(d entities.AccessDescriptor, receiver any, value any) bool {
	return w.decide(
		func() *entities.Rejection { return w.rejector.RejectFieldSet(d) },
		func() bool { return w.chain.PermitsFieldSet(d, receiver, value) },
	)
}

func (w *PermissiveWhitelist) PermitsStaticFieldGet(d entities.AccessDescriptor) bool {
	return w.decide(
		func() *entities.Rejection { return w.rejector.RejectStaticField(d) },
		func() bool { return w.chain.PermitsStaticFieldGet(d) },
	)
}

func (w *PermissiveWhitelist) PermitsStaticFieldSet(d entities.AccessDescriptor, value any) bool {
	return w.decide(
		func() *entities.Rejection { return w.rejector.RejectStaticField(d) },
		func() bool { return w.chain.PermitsStaticFieldSet(d, value) },
	)
}
