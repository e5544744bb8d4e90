package ports

import "github.com/scriptguard-dev/scriptguard/domain/entities"

// Rejector is the deny-list collaborator: six pure functions, one per access
// kind, each returning a structured Rejection when the operation is
// disallowed and nil otherwise. Both static field entry points map to
// RejectStaticField.
type Rejector interface {
	RejectMethod(d entities.AccessDescriptor) *entities.Rejection
	RejectConstructor(d entities.AccessDescriptor) *entities.Rejection
	RejectStaticMethod(d entities.AccessDescriptor) *entities.Rejection
	RejectFieldGet(d entities.AccessDescriptor) *entities.Rejection
	RejectFieldSet(d entities.AccessDescriptor) *entities.Rejection
	RejectStaticField(d entities.AccessDescriptor) *entities.Rejection
}
