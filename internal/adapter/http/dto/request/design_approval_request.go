package request

import (
	"strings"

	"craftbridge/internal/domain/entities"
)

type FileRefRequest struct {
	Key         string `json:"key" binding:"required"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// CreateDesignApprovalRequest is the buyer upload payload. The option
// selection (variant or package) resolves to the scope key server-side so
// clients cannot mis-scope a submission.
type CreateDesignApprovalRequest struct {
	ItemID    string           `json:"item_id" binding:"required"`
	ItemKind  string           `json:"item_kind" binding:"required"`
	VariantID string           `json:"variant_id"`
	PackageID string           `json:"package_id"`
	Files     []FileRefRequest `json:"files" binding:"required"`
}

func (r CreateDesignApprovalRequest) ResolveItemRef() entities.ItemRef {
	return entities.ItemRef{ID: strings.TrimSpace(r.ItemID), Kind: entities.ItemKind(strings.TrimSpace(r.ItemKind))}
}

func (r CreateDesignApprovalRequest) ResolveScopeKey() string {
	return entities.ResolveScopeKey(r.ResolveItemRef().Kind, r.VariantID, r.PackageID)
}

func (r CreateDesignApprovalRequest) ResolveFiles() []entities.FileRef {
	return toFileRefs(r.Files)
}

// DesignDecisionRequest carries the seller's notes for reject/request-changes.
type DesignDecisionRequest struct {
	Notes string `json:"notes"`
}

// ResubmitDesignRequest is the buyer's replacement file set.
type ResubmitDesignRequest struct {
	Files []FileRefRequest `json:"files" binding:"required"`
}

func (r ResubmitDesignRequest) ResolveFiles() []entities.FileRef {
	return toFileRefs(r.Files)
}

func toFileRefs(in []FileRefRequest) []entities.FileRef {
	out := make([]entities.FileRef, 0, len(in))
	for _, f := range in {
		out = append(out, entities.FileRef{
			Key:         strings.TrimSpace(f.Key),
			Name:        strings.TrimSpace(f.Name),
			ContentType: f.ContentType,
			SizeBytes:   f.SizeBytes,
		})
	}
	return out
}
