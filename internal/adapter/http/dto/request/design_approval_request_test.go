package request

import (
	"testing"

	"craftbridge/internal/domain/entities"
)

func TestCreateDesignApprovalRequest_ResolveItemRef(t *testing.T) {
	r := CreateDesignApprovalRequest{ItemID: "  item-1  ", ItemKind: " product "}
	ref := r.ResolveItemRef()
	if ref.ID != "item-1" {
		t.Fatalf("expected trimmed id, got %q", ref.ID)
	}
	if ref.Kind != entities.ItemKindProduct {
		t.Fatalf("expected product kind, got %q", ref.Kind)
	}
}

func TestCreateDesignApprovalRequest_ResolveScopeKey(t *testing.T) {
	tests := []struct {
		name string
		req  CreateDesignApprovalRequest
		want string
	}{
		{
			name: "product with variant",
			req:  CreateDesignApprovalRequest{ItemID: "item-1", ItemKind: "product", VariantID: "var-a"},
			want: "var-a",
		},
		{
			name: "service with package",
			req:  CreateDesignApprovalRequest{ItemID: "item-2", ItemKind: "service", PackageID: "pkg-1"},
			want: "pkg-1",
		},
		{
			name: "product ignores package id",
			req:  CreateDesignApprovalRequest{ItemID: "item-1", ItemKind: "product", PackageID: "pkg-1"},
			want: "custom",
		},
		{
			name: "no selection",
			req:  CreateDesignApprovalRequest{ItemID: "item-1", ItemKind: "product"},
			want: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.ResolveScopeKey(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCreateDesignApprovalRequest_ResolveFiles(t *testing.T) {
	r := CreateDesignApprovalRequest{
		Files: []FileRefRequest{
			{Key: " uploads/a.png ", Name: " a.png ", ContentType: "image/png", SizeBytes: 1024},
			{Key: "uploads/b.png"},
		},
	}

	files := r.ResolveFiles()
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Key != "uploads/a.png" || files[0].Name != "a.png" {
		t.Fatalf("expected trimmed key and name, got %+v", files[0])
	}
	if files[0].ContentType != "image/png" || files[0].SizeBytes != 1024 {
		t.Fatalf("metadata not carried: %+v", files[0])
	}
}

func TestResubmitDesignRequest_ResolveFiles(t *testing.T) {
	r := ResubmitDesignRequest{Files: []FileRefRequest{{Key: "uploads/c.png"}}}
	files := r.ResolveFiles()
	if len(files) != 1 || files[0].Key != "uploads/c.png" {
		t.Fatalf("unexpected files: %+v", files)
	}
}
