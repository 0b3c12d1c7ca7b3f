package service

import (
	"context"
	"testing"
)

func TestKeywordCategoryResolver(t *testing.T) {
	resolver := NewKeywordCategoryResolver(nil)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"embroidery keyword", "Floral Embroidery Hoop", "embroidery"},
		{"stitch maps to embroidery", "cross stitch sampler", "embroidery"},
		{"knit keyword", "Chunky Knit Blanket", "knitting"},
		{"pottery keyword", "hand thrown pottery mug", "ceramics"},
		{"ceramic keyword", "Ceramic vase set", "ceramics"},
		{"carving maps to woodworking", "Bear carving", "woodworking"},
		{"watercolor wins over paint", "Watercolor painting of a lake", "painting"},
		{"bead maps to jewelry", "Glass bead necklace", "jewelry"},
		{"no match falls back", "Mystery gift box", FallbackCategory},
		{"empty title falls back", "", FallbackCategory},
		{"whitespace is normalized", "  ceramic \n mug  ", "ceramics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(context.Background(), tt.title)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestKeywordCategoryResolverOrderWins(t *testing.T) {
	resolver := NewKeywordCategoryResolver([]CategoryKeyword{
		{"holiday", "seasonal"},
		{"ornament", "decor"},
	})

	// Both keywords match; the earlier entry decides
	got := resolver.Resolve(context.Background(), "Holiday ornament")
	if got != "seasonal" {
		t.Errorf("Resolve() = %q, want %q", got, "seasonal")
	}
}
