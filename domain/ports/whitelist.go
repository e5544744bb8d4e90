package ports

import "github.com/scriptguard-dev/scriptguard/domain/entities"

// Whitelist is a single access-control policy consulted by the chain for
// every reflective operation a sandboxed script attempts. Receiver, argument
// and value parameters are passed through uninterpreted; policies that match
// on signatures alone may ignore them.
//
// Static field reads and writes are distinct entry points but share one
// signature form, mirroring the descriptor kinds.
type Whitelist interface {
	PermitsMethod(d entities.AccessDescriptor, receiver any, args []any) bool
	PermitsConstructor(d entities.AccessDescriptor, args []any) bool
	PermitsStaticMethod(d entities.AccessDescriptor, args []any) bool
	PermitsFieldGet(d entities.AccessDescriptor, receiver any) bool
	PermitsFieldSet(d entities.AccessDescriptor, receiver any, value any) bool
	PermitsStaticFieldGet(d entities.AccessDescriptor) bool
	PermitsStaticFieldSet(d entities.AccessDescriptor, value any) bool
}
