package ports

import "github.com/scriptguard-dev/scriptguard/domain/entities"

// ApprovalStore provides persistence for the approval queue.
type ApprovalStore interface {
	// Load retrieves the approval state.
	// Returns an empty state (not an error) if none exists yet.
	Load() (*entities.ApprovalState, error)

	// Save persists the approval state.
	Save(state *entities.ApprovalState) error

	// ConfigPath returns the path to the backing store (for user messaging).
	ConfigPath() string
}
