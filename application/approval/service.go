// Package approval implements the audit queue for unsafe signatures: pending
// registrations recorded by the permissive arbiter, reviewer decisions, and
// the whitelist that honors approved signatures on later evaluations.
package approval

import (
	"sync"
	"time"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/errors"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// serviceConfig holds configuration for the Service.
type serviceConfig struct {
	store ports.ApprovalStore
	now   func() time.Time
}

func defaultServiceConfig() serviceConfig {
	return serviceConfig{
		now: time.Now,
	}
}

// ServiceOption configures a Service instance.
type ServiceOption func(*serviceConfig)

// WithStore sets the persistence backend. Without a store the queue is
// memory-only.
func WithStore(store ports.ApprovalStore) ServiceOption {
	return func(c *serviceConfig) {
		c.store = store
	}
}

// WithClock overrides the time source for pending entries.
func WithClock(now func() time.Time) ServiceOption {
	return func(c *serviceConfig) {
		c.now = now
	}
}

// Service is the approval queue: it accepts registrations of unsafe
// signatures, deduplicates them, records reviewer decisions and persists
// the whole state through an ApprovalStore.
type Service struct {
	mu       sync.Mutex
	pending  []entities.PendingSignature
	approved map[string]struct{}
	config   serviceConfig
}

// Ensure Service satisfies the queue contract.
var _ ports.ApprovalQueue = (*Service)(nil)

// NewService creates a Service. When a store is configured the previously
// persisted state is loaded; a load failure surfaces as an error.
func NewService(opts ...ServiceOption) (*Service, error) {
	cfg := defaultServiceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Service{
		approved: make(map[string]struct{}),
		config:   cfg,
	}

	if cfg.store != nil {
		state, err := cfg.store.Load()
		if err != nil {
			return nil, &errors.StoreError{Err: err, Op: "load", Path: cfg.store.ConfigPath()}
		}
		s.pending = state.Pending
		for _, sig := range state.Approved {
			s.approved[sig] = struct{}{}
		}
	}
	return s, nil
}

// Register queues a rejected signature for review. Signatures already
// pending or already approved are not queued again.
func (s *Service) Register(rejection *entities.Rejection, ctx entities.ApprovalContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sig := rejection.Signature
	if _, ok := s.approved[sig]; ok {
		return nil
	}
	for _, p := range s.pending {
		if p.Signature == sig {
			return nil
		}
	}

	s.pending = append(s.pending, entities.PendingSignature{
		Signature: sig,
		User:      ctx.User,
		Time:      s.config.now(),
	})
	return s.persistLocked()
}

// Pending returns a copy of the signatures awaiting review.
func (s *Service) Pending() []entities.PendingSignature {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.PendingSignature(nil), s.pending...)
}

// Approved returns the approved signatures in no particular order.
func (s *Service) Approved() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sigs := make([]string, 0, len(s.approved))
	for sig := range s.approved {
		sigs = append(sigs, sig)
	}
	return sigs
}

// IsApproved reports whether a signature has been approved by a reviewer.
func (s *Service) IsApproved(signature string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.approved[signature]
	return ok
}

// Approve marks a signature as approved and removes it from the pending
// queue if present.
func (s *Service) Approve(signature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approved[signature] = struct{}{}
	s.removePendingLocked(signature)
	return s.persistLocked()
}

// Deny removes a signature from the pending queue without approving it.
// A later registration will queue it again.
func (s *Service) Deny(signature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removePendingLocked(signature)
	return s.persistLocked()
}

// Clear drops all pending entries, keeping approvals.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	return s.persistLocked()
}

func (s *Service) removePendingLocked(signature string) {
	kept := s.pending[:0]
	for _, p := range s.pending {
		if p.Signature != signature {
			kept = append(kept, p)
		}
	}
	s.pending = kept
}

func (s *Service) persistLocked() error {
	if s.config.store == nil {
		return nil
	}
	state := &entities.ApprovalState{
		Pending:  append([]entities.PendingSignature(nil), s.pending...),
		Approved: make([]string, 0, len(s.approved)),
	}
	for sig := range s.approved {
		state.Approved = append(state.Approved, sig)
	}
	if err := s.config.store.Save(state); err != nil {
		return &errors.StoreError{Err: err, Op: "save", Path: s.config.store.ConfigPath()}
	}
	return nil
}
