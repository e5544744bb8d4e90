package entities

import "strings"

// Mode controls how the permissive fallback whitelist treats operations the
// rest of the policy chain refused.
type Mode int

const (
	// ModeDisabled never permits; operations the chain refused stay refused.
	ModeDisabled Mode = iota

	// ModeEnabled permits refused operations after confirming no other
	// policy would have permitted them, recording each one for review.
	ModeEnabled

	// ModeNoSecurity permits everything, with no logging and no audit trail.
	ModeNoSecurity
)

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDisabled:
		return "disabled"
	case ModeEnabled:
		return "enabled"
	case ModeNoSecurity:
		return "no_security"
	default:
		return "unknown"
	}
}

// ParseMode maps a configuration value to a Mode: "true" enables the
// fallback, "no_security" turns security off entirely, and anything else
// (including the empty string) leaves the fallback disabled.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return ModeEnabled
	case "no_security":
		return ModeNoSecurity
	default:
		return ModeDisabled
	}
}
