package entities

import "time"

// DesignApprovalStatus represents the lifecycle of a buyer design submission.
//
// Domain notes:
//   - pending, under_review and resubmitted all wait on the seller.
//   - approved and rejected are terminal; changes_requested hands the ball
//     back to the buyer, who resubmits under the same record.
//   - Records are never deleted; superseded approvals stay in history.

type DesignApprovalStatus string

const (
	DesignStatusPending          DesignApprovalStatus = "pending"
	DesignStatusUnderReview      DesignApprovalStatus = "under_review"
	DesignStatusApproved         DesignApprovalStatus = "approved"
	DesignStatusRejected         DesignApprovalStatus = "rejected"
	DesignStatusChangesRequested DesignApprovalStatus = "changes_requested"
	DesignStatusResubmitted      DesignApprovalStatus = "resubmitted"
)

// DesignAction is a seller decision applied to a submission.

type DesignAction string

const (
	DesignActionApprove        DesignAction = "approve"
	DesignActionReject         DesignAction = "reject"
	DesignActionRequestChanges DesignAction = "request_changes"
	DesignActionStartReview    DesignAction = "start_review"
)

// DesignApproval is a buyer-submitted design awaiting seller sign-off,
// scoped to one (conversation, item, scopeKey) triple.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (conversation_id-index): conversation_id
//
// Files holds the current submission; ArchivedFiles accumulates every prior
// set replaced by a resubmission, so no upload is ever lost from history.

type DesignApproval struct {
	ID            string               `json:"id"`
	ConversationID string              `json:"conversation_id"`
	ItemID        string               `json:"item_id"`
	ItemKind      ItemKind             `json:"item_kind"`
	ScopeKey      string               `json:"scope_key"`
	Files         []FileRef            `json:"files"`
	ArchivedFiles []FileRef            `json:"archived_files,omitempty"`
	Status        DesignApprovalStatus `json:"status"`
	SellerNotes   string               `json:"seller_notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	ApprovedAt    *time.Time           `json:"approved_at,omitempty"`
}

// IsTerminal reports whether no further transition is allowed on the record.
func (s DesignApprovalStatus) IsTerminal() bool {
	return s == DesignStatusApproved || s == DesignStatusRejected
}

// IsPendingSellerAction reports whether the submission waits on the seller.
// At most one record per triple may be in such a state at a time.
func (s DesignApprovalStatus) IsPendingSellerAction() bool {
	switch s {
	case DesignStatusPending, DesignStatusUnderReview, DesignStatusResubmitted:
		return true
	}
	return false
}

// NextStatusForAction validates a seller action against the current status
// and returns the status it transitions to. ok is false when the transition
// is not allowed from the current state.
func (s DesignApprovalStatus) NextStatusForAction(action DesignAction) (DesignApprovalStatus, bool) {
	switch action {
	case DesignActionApprove:
		if s.IsPendingSellerAction() {
			return DesignStatusApproved, true
		}
	case DesignActionReject:
		if s.IsPendingSellerAction() {
			return DesignStatusRejected, true
		}
	case DesignActionRequestChanges:
		if s.IsPendingSellerAction() {
			return DesignStatusChangesRequested, true
		}
	case DesignActionStartReview:
		if s == DesignStatusPending || s == DesignStatusResubmitted {
			return DesignStatusUnderReview, true
		}
	}
	return "", false
}

// CanResubmit reports whether the buyer may upload a replacement file set.
func (s DesignApprovalStatus) CanResubmit() bool {
	return s == DesignStatusChangesRequested
}
