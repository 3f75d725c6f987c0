package response

import (
	"time"

	"craftbridge/internal/domain/entities"
)

type DesignApprovalResponse struct {
	ID             string             `json:"id"`
	ConversationID string             `json:"conversation_id"`
	ItemID         string             `json:"item_id"`
	ItemKind       string             `json:"item_kind"`
	ScopeKey       string             `json:"scope_key"`
	Files          []entities.FileRef `json:"files"`
	ArchivedFiles  []entities.FileRef `json:"archived_files,omitempty"`
	Status         string             `json:"status"`
	SellerNotes    string             `json:"seller_notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	ApprovedAt     *time.Time         `json:"approved_at,omitempty"`
}

func FromDesignApproval(a entities.DesignApproval) DesignApprovalResponse {
	return DesignApprovalResponse{
		ID:             a.ID,
		ConversationID: a.ConversationID,
		ItemID:         a.ItemID,
		ItemKind:       string(a.ItemKind),
		ScopeKey:       a.ScopeKey,
		Files:          a.Files,
		ArchivedFiles:  a.ArchivedFiles,
		Status:         string(a.Status),
		SellerNotes:    a.SellerNotes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		ApprovedAt:     a.ApprovedAt,
	}
}

func FromDesignApprovals(in []entities.DesignApproval) []DesignApprovalResponse {
	out := make([]DesignApprovalResponse, 0, len(in))
	for _, a := range in {
		out = append(out, FromDesignApproval(a))
	}
	return out
}
