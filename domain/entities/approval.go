package entities

import (
	"os/user"
	"time"
)

// ApprovalContext carries the "current user" context attached to an audit
// registration.
type ApprovalContext struct {
	User       string `json:"user,omitempty" yaml:"user,omitempty"`
	ScriptHash string `json:"script_hash,omitempty" yaml:"script_hash,omitempty"`
}

// CurrentApprovalContext builds an ApprovalContext for the user running the
// host process. Failure to resolve the user yields an empty context rather
// than an error; the registration itself must still go through.
func CurrentApprovalContext() ApprovalContext {
	u, err := user.Current()
	if err != nil {
		return ApprovalContext{}
	}
	return ApprovalContext{User: u.Username}
}

// PendingSignature is one audit-queue entry awaiting a human allow/deny
// decision.
type PendingSignature struct {
	Signature string    `json:"signature" yaml:"signature"`
	User      string    `json:"user,omitempty" yaml:"user,omitempty"`
	Time      time.Time `json:"time" yaml:"time"`
}

// ApprovalState is the persisted shape of the approval queue: signatures
// still awaiting review plus signatures a reviewer already approved.
type ApprovalState struct {
	Pending  []PendingSignature `json:"pending,omitempty" yaml:"pending,omitempty"`
	Approved []string           `json:"approved,omitempty" yaml:"approved,omitempty"`
}
