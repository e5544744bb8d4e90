package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// CliPrompter implements ports.Prompter for CLI environments.
type CliPrompter struct {
	in  io.Reader
	out io.Writer
}

var _ ports.Prompter = (*CliPrompter)(nil)

// NewCliPrompter creates a new CliPrompter.
func NewCliPrompter(in io.Reader, out io.Writer) *CliPrompter {
	return &CliPrompter{in: in, out: out}
}

// IsInteractive checks if the input is a terminal.
func (p *CliPrompter) IsInteractive() bool {
	if f, ok := p.in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// PromptForSignature asks the reviewer to decide one pending signature.
func (p *CliPrompter) PromptForSignature(pending entities.PendingSignature) (ports.ReviewDecision, error) {
	_, _ = fmt.Fprintf(p.out, "Pending signature: %s\n", pending.Signature)
	if pending.User != "" {
		_, _ = fmt.Fprintf(p.out, "First seen from: %s at %s\n", pending.User, pending.Time.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintf(p.out, "Approve? [y/n/skip]: ")

	scanner := bufio.NewScanner(p.in)
	if scanner.Scan() {
		text := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch text {
		case "y", "yes":
			return ports.ReviewApprove, nil
		case "n", "no":
			return ports.ReviewDeny, nil
		default:
			return ports.ReviewSkip, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return ports.ReviewSkip, err
	}
	return ports.ReviewSkip, io.EOF
}

// FormatNonInteractiveError creates a helpful error.
func (p *CliPrompter) FormatNonInteractiveError(pending []entities.PendingSignature) error {
	var b strings.Builder
	b.WriteString("signatures await review in non-interactive mode:\n")
	for _, entry := range pending {
		b.WriteString("  - ")
		b.WriteString(entry.Signature)
		b.WriteString("\n")
	}
	b.WriteString("run the review from an interactive terminal or approve them in the approvals file")
	return fmt.Errorf("%s", b.String())
}
