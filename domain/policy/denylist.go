package policy

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// DefaultDeniedSignatures lists operations on the host object graph that no
// script should reach without an explicit approval. Patterns use doublestar
// syntax matched against the canonical signature. "*" spans spaces but not
// the "/" in a package path; use "**" to span both.
var DefaultDeniedSignatures = []string{
	"method os/exec.Cmd Run",
	"method os/exec.Cmd Start",
	"method os/exec.Cmd Output",
	"staticMethod os Remove string",
	"staticMethod os RemoveAll string",
	"staticMethod os Setenv string string",
	"staticMethod os/exec Command *",
	"new os.File *",
	"field os/exec.Cmd Env",
	"staticField syscall *",
}

// DenyList is the deny-list policy: explicit lists of disallowed signature
// patterns, computing a structured Rejection when a disallowed operation is
// attempted and nothing for anything else.
type DenyList struct {
	patterns []string
}

// NewDenyList builds a DenyList from signature patterns. Invalid doublestar
// patterns are dropped.
func NewDenyList(patterns ...string) *DenyList {
	l := &DenyList{}
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			l.patterns = append(l.patterns, p)
		}
	}
	return l
}

// NewDefaultDenyList builds a DenyList covering DefaultDeniedSignatures.
func NewDefaultDenyList() *DenyList {
	return NewDenyList(DefaultDeniedSignatures...)
}

func (l *DenyList) reject(d entities.AccessDescriptor) *entities.Rejection {
	sig := d.Signature()
	for _, p := range l.patterns {
		if matched, _ := doublestar.Match(p, sig); matched {
			return entities.NewRejection(d)
		}
	}
	return nil
}

// Ensure DenyList satisfies the deny-list contract.
var _ ports.Rejector = (*DenyList)(nil)

func (l *DenyList) RejectMethod(d entities.AccessDescriptor) *entities.Rejection {
	return l.reject(d)
}

func (l *DenyList) RejectConstructor(d entities.AccessDescriptor) *entities.Rejection {
	return l.reject(d)
}

func (l *DenyList) RejectStaticMethod(d entities.AccessDescriptor) *entities.Rejection {
	return l.reject(d)
}

func (l *DenyList) RejectFieldGet(d entities.AccessDescriptor) *entities.Rejection {
	return l.reject(d)
}

func (l *DenyList) RejectFieldSet(d entities.AccessDescriptor) *entities.Rejection {
	return l.reject(d)
}

func (l *DenyList) RejectStaticField(d entities.AccessDescriptor) *entities.Rejection {
	return l.reject(d)
}
