package approval

import (
	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// Whitelist permits operations whose signatures a reviewer has approved.
// Placed in a chain ahead of the permissive arbiter it turns a one-time
// approval into a silent permit on every later evaluation.
type Whitelist struct {
	service *Service
}

// NewWhitelist creates a whitelist backed by the approval service.
func NewWhitelist(service *Service) *Whitelist {
	return &Whitelist{service: service}
}

var _ ports.Whitelist = (*Whitelist)(nil)

func (w *Whitelist) permits(d entities.AccessDescriptor) bool {
	return w.service.IsApproved(d.Signature())
}

func (w *Whitelist) PermitsMethod(d entities.AccessDescriptor, receiver any, args []any) bool {
	return w.permits(d)
}

func (w *Whitelist) PermitsConstructor(d entities.AccessDescriptor, args []any) bool {
	return w.permits(d)
}

func (w *Whitelist) PermitsStaticMethod(d entities.AccessDescriptor, args []any) bool {
	return w.permits(d)
}

func (w *Whitelist) PermitsFieldGet(d entities.AccessDescriptor, receiver any) bool {
	return w.permits(d)
}

func (w *Whitelist) PermitsFieldSet(d entities.AccessDescriptor, receiver any, value any) bool {
	return w.permits(d)
}

func (w *Whitelist) PermitsStaticFieldGet(d entities.AccessDescriptor) bool {
	return w.permits(d)
}

func (w *Whitelist) PermitsStaticFieldSet(d entities.AccessDescriptor, value any) bool {
	return w.permits(d)
}
