package policy

import (
	"log/slog"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// Ensure implementations satisfy the interface.
var _ ports.DenialHandler = (*SlogDenialHandler)(nil)
var _ ports.DenialHandler = (*QueueDenialHandler)(nil)
var _ ports.DenialHandler = (*NopDenialHandler)(nil)
var _ ports.DenialHandler = (DenialHandlers)(nil)

// SlogDenialHandler logs final denials through slog.
type SlogDenialHandler struct {
	Log *slog.Logger // nil means slog.Default()
}

func (h *SlogDenialHandler) OnDenial(signature, reason string) {
	log := h.Log
	if log == nil {
		log = slog.Default()
	}
	log.Warn("access rejected", "signature", signature, "reason", reason)
}

// QueueDenialHandler registers finally-denied signatures with the approval
// queue so a reviewer can approve them later. The permissive arbiter only
// records signatures while its mode is enabled; this handler covers denials
// issued while it is disabled.
type QueueDenialHandler struct {
	Queue ports.ApprovalQueue
	Log   *slog.Logger // nil means slog.Default()
}

func (h *QueueDenialHandler) OnDenial(signature, reason string) {
	if h.Queue == nil {
		return
	}
	rejection := &entities.Rejection{Signature: signature}
	if err := h.Queue.Register(rejection, entities.CurrentApprovalContext()); err != nil {
		log := h.Log
		if log == nil {
			log = slog.Default()
		}
		log.Warn("failed to register pending signature", "signature", signature, "error", err)
	}
}

// NopDenialHandler does nothing.
type NopDenialHandler struct{}

func (h *NopDenialHandler) OnDenial(signature, reason string) {}

// DenialHandlers fans one denial out to every handler in order.
type DenialHandlers []ports.DenialHandler

func (hs DenialHandlers) OnDenial(signature, reason string) {
	for _, h := range hs {
		h.OnDenial(signature, reason)
	}
}
