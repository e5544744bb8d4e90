package approval

import (
	"fmt"

	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// Review walks the pending queue through an interactive prompter, applying
// each decision as it is made. In a non-interactive session it returns the
// prompter's explanatory error instead of blocking on input.
func (s *Service) Review(prompter ports.Prompter) error {
	pending := s.Pending()
	if len(pending) == 0 {
		return nil
	}

	if !prompter.IsInteractive() {
		return prompter.FormatNonInteractiveError(pending)
	}

	for _, p := range pending {
		decision, err := prompter.PromptForSignature(p)
		if err != nil {
			return fmt.Errorf("review aborted at %s: %w", p.Signature, err)
		}
		switch decision {
		case ports.ReviewApprove:
			if err := s.Approve(p.Signature); err != nil {
				return err
			}
		case ports.ReviewDeny:
			if err := s.Deny(p.Signature); err != nil {
				return err
			}
		}
	}
	return nil
}
