package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// countingWhitelist answers a fixed verdict and counts consultations.
type countingWhitelist struct {
	verdict bool
	calls   int
}

var _ ports.Whitelist = (*countingWhitelist)(nil)

func (w *countingWhitelist) permits() bool {
	w.calls++
	return w.verdict
}

func (w *countingWhitelist) PermitsMethod(entities.AccessDescriptor, any, []any) bool {
	return w.permits()
}
func (w *countingWhitelist) PermitsConstructor(entities.AccessDescriptor, []any) bool {
	return w.permits()
}
func (w *countingWhitelist) PermitsStaticMethod(entities.AccessDescriptor, []any) bool {
	return w.permits()
}
func (w *countingWhitelist) PermitsFieldGet(entities.AccessDescriptor, any) bool {
	return w.permits()
}
func (w *countingWhitelist) PermitsFieldSet(entities.AccessDescriptor, any, any) bool {
	return w.permits()
}
func (w *countingWhitelist) PermitsStaticFieldGet(entities.AccessDescriptor) bool {
	return w.permits()
}
func (w *countingWhitelist) PermitsStaticFieldSet(entities.AccessDescriptor, any) bool {
	return w.permits()
}

func TestChain_FirstPermitWins(t *testing.T) {
	first := &countingWhitelist{verdict: false}
	second := &countingWhitelist{verdict: true}
	third := &countingWhitelist{verdict: true}
	chain := NewChain(first, second, third)

	d := entities.MethodAccess("strings.Builder", "String")
	assert.True(t, chain.PermitsMethod(d, nil, nil))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls, "evaluation stops at the first permit")
}

func TestChain_AllDenyMeansDeny(t *testing.T) {
	first := &countingWhitelist{verdict: false}
	second := &countingWhitelist{verdict: false}
	chain := NewChain(first, second)

	assert.False(t, chain.PermitsConstructor(entities.ConstructorAccess("os.File", "string"), nil))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestChain_EmptyDeniesEverything(t *testing.T) {
	chain := NewChain()

	assert.False(t, chain.PermitsStaticMethod(entities.StaticMethodAccess("math", "Abs", "float64"), nil))
	assert.False(t, chain.PermitsFieldGet(entities.FieldGetAccess("time.Time", "wall"), nil))
	assert.False(t, chain.PermitsFieldSet(entities.FieldSetAccess("time.Time", "wall"), nil, nil))
	assert.False(t, chain.PermitsStaticFieldGet(entities.StaticFieldGetAccess("os", "Args")))
	assert.False(t, chain.PermitsStaticFieldSet(entities.StaticFieldSetAccess("os", "Args"), nil))
}

func TestChain_BindsPermissiveMembers(t *testing.T) {
	permissive := NewPermissiveWhitelist(entities.ModeEnabled, NewDefaultDenyList())
	chain := NewChain(NewStaticWhitelist(), permissive)

	assert.Same(t, chain, permissive.chain)
}
