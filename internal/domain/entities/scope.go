package entities

import "strings"

// ScopeKeyCustom is the sentinel scope used when the buyer did not pick a
// concrete variant or package (free-form "custom" specification).
const ScopeKeyCustom = "custom"

// ResolveScopeKey derives the grouping key every approval and quote hangs off.
//
// Resolution rules:
//   - product + variant selected  => variant id
//   - service + package selected  => package id
//   - anything else               => "custom"
//
// The function is pure and total: equivalent selections always yield the
// identical key. Every other component groups by this key, so mis-resolution
// silently mis-scopes records; keep this the single implementation.
func ResolveScopeKey(kind ItemKind, variantID, packageID string) string {
	variantID = strings.TrimSpace(variantID)
	packageID = strings.TrimSpace(packageID)

	switch kind {
	case ItemKindProduct:
		if variantID != "" {
			return variantID
		}
	case ItemKindService:
		if packageID != "" {
			return packageID
		}
	}
	return ScopeKeyCustom
}
