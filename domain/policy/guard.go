package policy

import (
	"sync"

	"github.com/petermattis/goid"
)

// recheckGuard marks the goroutines currently inside a recheck. The flag is
// keyed by goroutine id: a recheck held on one goroutine must never block or
// affect an independent evaluation on another, and the only recursion it
// guards against is a single goroutine re-entering its own recheck.
type recheckGuard struct {
	flags sync.Map // goroutine id -> struct{}
}

func (g *recheckGuard) enter() {
	g.flags.Store(goid.Get(), struct{}{})
}

func (g *recheckGuard) exit() {
	g.flags.Delete(goid.Get())
}

// held reports whether the calling goroutine is inside a recheck.
func (g *recheckGuard) held() bool {
	_, ok := g.flags.Load(goid.Get())
	return ok
}
