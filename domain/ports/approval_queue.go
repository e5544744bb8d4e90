package ports

import "github.com/scriptguard-dev/scriptguard/domain/entities"

// ApprovalQueue records denied signatures as pending, human-reviewable
// approval requests. Deduplication of repeated identical registrations is
// the queue's responsibility, not the caller's.
type ApprovalQueue interface {
	Register(rejection *entities.Rejection, ctx entities.ApprovalContext) error
}
