package policy

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// StaticWhitelist permits operations whose canonical signature matches one
// of a fixed set of patterns. It is the usual "known safe" entry at the
// front of a chain. It never inspects receivers, arguments or values.
type StaticWhitelist struct {
	patterns []string
}

// NewStaticWhitelist builds a StaticWhitelist from signature patterns.
// Invalid doublestar patterns are dropped.
func NewStaticWhitelist(patterns ...string) *StaticWhitelist {
	w := &StaticWhitelist{}
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			w.patterns = append(w.patterns, p)
		}
	}
	return w
}

func (w *StaticWhitelist) permits(d entities.AccessDescriptor) bool {
	sig := d.Signature()
	for _, p := range w.patterns {
		if matched, _ := doublestar.Match(p, sig); matched {
			return true
		}
	}
	return false
}

// Ensure StaticWhitelist satisfies the whitelist contract.
var _ ports.Whitelist = (*StaticWhitelist)(nil)

func (w *StaticWhitelist) PermitsMethod(d entities.AccessDescriptor, receiver any, args []any) bool {
	return w.permits(d)
}

func (w *StaticWhitelist) PermitsConstructor(d entities.AccessDescriptor, args []any) bool {
	return w.permits(d)
}

func (w *StaticWhitelist) PermitsStaticMethod(d entities.AccessDescriptor, args []any) bool {
	return w.permits(d)
}

func (w *StaticWhitelist) PermitsFieldGet(d entities.AccessDescriptor, receiver any) bool {
	return w.permits(d)
}

func (w *StaticWhitelist) PermitsFieldSet(d entities.AccessDescriptor, receiver any, value any) bool {
	return w.permits(d)
}

func (w *StaticWhitelist) PermitsStaticFieldGet(d entities.AccessDescriptor) bool {
	return w.permits(d)
}

func (w *StaticWhitelist) PermitsStaticFieldSet(d entities.AccessDescriptor, value any) bool {
	return w.permits(d)
}
