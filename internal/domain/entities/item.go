package entities

import "github.com/shopspring/decimal"

// ItemKind distinguishes the two listing types a conversation can be about.

type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

func (k ItemKind) Valid() bool {
	return k == ItemKindProduct || k == ItemKindService
}

// Item carries the workflow-relevant slice of a listing. The catalog service
// owns the full record; this core only reads the two prerequisite flags and
// the list price used when no accepted quote overrides it.

type Item struct {
	ID                     string          `json:"id"`
	Kind                   ItemKind        `json:"kind"`
	RequiresDesignApproval bool            `json:"requires_design_approval"`
	RequiresQuote          bool            `json:"requires_quote"`
	ListPrice              decimal.Decimal `json:"list_price"`
}

// ItemRef identifies an item inside a conversation-scoped request.

type ItemRef struct {
	ID   string   `json:"id"`
	Kind ItemKind `json:"kind"`
}

// FileRef points at an uploaded design artifact in object storage.
// Upload itself happens outside this service; we only keep the reference.

type FileRef struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}
