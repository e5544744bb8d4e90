package ports

import "github.com/scriptguard-dev/scriptguard/domain/entities"

// ReviewDecision is the outcome of prompting a reviewer about one pending
// signature.
type ReviewDecision int

const (
	ReviewSkip ReviewDecision = iota
	ReviewApprove
	ReviewDeny
)

// Prompter handles interactive review of pending signatures.
type Prompter interface {
	// IsInteractive returns true if running in an interactive terminal.
	IsInteractive() bool

	// PromptForSignature asks the reviewer to approve, deny or skip a
	// pending signature.
	PromptForSignature(p entities.PendingSignature) (ReviewDecision, error)

	// FormatNonInteractiveError creates a helpful error for non-interactive
	// mode.
	FormatNonInteractiveError(pending []entities.PendingSignature) error
}
