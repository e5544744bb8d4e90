package policy

import (
	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// Chain is the policy-chain evaluator: it consults every registered
// whitelist in order, first permit wins, otherwise deny. Chain itself
// implements ports.Whitelist, which is what lets a member policy re-enter
// it as the "recheck everyone" primitive. The chain holds no per-call
// state; reentrancy protection is the re-entering policy's concern.
type Chain struct {
	whitelists []ports.Whitelist
}

// NewChain builds a Chain over the given whitelists, consulted in order.
// Any PermissiveWhitelist members are bound to the chain so their recheck
// can re-ask the whole chain.
func NewChain(whitelists ...ports.Whitelist) *Chain {
	c := &Chain{whitelists: whitelists}
	for _, w := range whitelists {
		if p, ok := w.(*PermissiveWhitelist); ok {
			p.BindChain(c)
		}
	}
	return c
}

// Ensure Chain satisfies the whitelist contract.
var _ ports.Whitelist = (*Chain)(nil)

func (c *Chain) PermitsMethod(d entities.AccessDescriptor, receiver any, args []any) bool {
	for _, w := range c.whitelists {
		if w.PermitsMethod(d, receiver, args) {
			return true
		}
	}
	return false
}

func (c *Chain) PermitsConstructor(d entities.AccessDescriptor, args []any) bool {
	for _, w := range c.whitelists {
		if w.PermitsConstructor(d, args) {
			return true
		}
	}
	return false
}

func (c *Chain) PermitsStaticMethod(d entities.AccessDescriptor, args []any) bool {
	for _, w := range c.whitelists {
		if w.PermitsStaticMethod(d, args) {
			return true
		}
	}
	return false
}

func (c *Chain) PermitsFieldGet(d entities.AccessDescriptor, receiver any) bool {
	for _, w := range c.whitelists {
		if w.PermitsFieldGet(d, receiver) {
			return true
		}
	}
	return false
}

func (c *Chain) PermitsFieldSet(d entities.AccessDescriptor, receiver any, value any) bool {
	for _, w := range c.whitelists {
		if w.PermitsFieldSet(d, receiver, value) {
			return true
		}
	}
	return false
}

func (c *Chain) PermitsStaticFieldGet(d entities.AccessDescriptor) bool {
	for _, w := range c.whitelists {
		if w.PermitsStaticFieldGet(d) {
			return true
		}
	}
	return false
}

func (c *Chain) PermitsStaticFieldSet(d entities.AccessDescriptor, value any) bool {
	for _, w := range c.whitelists {
		if w.PermitsStaticFieldSet(d, value) {
			return true
		}
	}
	return false
}
