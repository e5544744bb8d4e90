package entities

// Rejection describes a single denied reflective operation: the descriptor
// plus the canonical signature the deny list matched. A Rejection is created
// fresh per evaluation and never retained by policies.
type Rejection struct {
	Descriptor AccessDescriptor
	Signature  string
}

// NewRejection builds a Rejection for the given descriptor.
func NewRejection(d AccessDescriptor) *Rejection {
	return &Rejection{Descriptor: d, Signature: d.Signature()}
}
