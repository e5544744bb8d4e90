package ports

// DenialHandler is notified when the final verdict for an operation is deny.
// Implementations can log, collect metrics, or surface the failure to the
// script author.
type DenialHandler interface {
	// OnDenial is called once per finally-denied operation.
	// signature: the canonical signature of the denied operation
	// reason: human-readable denial reason
	OnDenial(signature string, reason string)
}
