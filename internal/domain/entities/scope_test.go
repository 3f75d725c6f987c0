package entities

import "testing"

func TestResolveScopeKey(t *testing.T) {
	cases := []struct {
		name      string
		kind      ItemKind
		variantID string
		packageID string
		want      string
	}{
		{name: "product with variant", kind: ItemKindProduct, variantID: "var-1", want: "var-1"},
		{name: "product without variant", kind: ItemKindProduct, want: ScopeKeyCustom},
		{name: "product ignores package", kind: ItemKindProduct, packageID: "pkg-1", want: ScopeKeyCustom},
		{name: "service with package", kind: ItemKindService, packageID: "pkg-1", want: "pkg-1"},
		{name: "service without package", kind: ItemKindService, want: ScopeKeyCustom},
		{name: "service ignores variant", kind: ItemKindService, variantID: "var-1", want: ScopeKeyCustom},
		{name: "whitespace only variant", kind: ItemKindProduct, variantID: "   ", want: ScopeKeyCustom},
		{name: "variant trimmed", kind: ItemKindProduct, variantID: " var-1 ", want: "var-1"},
		{name: "unknown kind", kind: ItemKind("bundle"), variantID: "var-1", packageID: "pkg-1", want: ScopeKeyCustom},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveScopeKey(tc.kind, tc.variantID, tc.packageID)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveScopeKey_Deterministic(t *testing.T) {
	a := ResolveScopeKey(ItemKindProduct, "var-9", "")
	b := ResolveScopeKey(ItemKindProduct, "var-9", "")
	if a != b {
		t.Fatalf("equivalent selections resolved differently: %q vs %q", a, b)
	}
}
