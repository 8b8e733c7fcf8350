package query

import (
	"strings"
	"testing"

	"portico-hq/portico/pkg/document"
)

// TestBuild_SingleType tests the query for one selected type with no other
// filters.
func TestBuild_SingleType(t *testing.T) {
	req := &document.ExportRequest{
		Types:        []string{"post"},
		MaxDocuments: 1000,
	}

	got := Build(req)
	want := `*[_type in ["post"]][0...1000]`
	if got != want {
		t.Errorf("Build():\n  want %s\n  got  %s", want, got)
	}
}

// TestBuild_TypeAndDateFilter tests that type membership and creation-date
// conditions are combined with AND.
func TestBuild_TypeAndDateFilter(t *testing.T) {
	req := &document.ExportRequest{
		Types:        []string{"post", "page"},
		CreatedAfter: "2023-01-01",
		MaxDocuments: 500,
	}

	got := Build(req)
	want := `*[_type in ["post", "page"] && _createdAt >= "2023-01-01"][0...500]`
	if got != want {
		t.Errorf("Build():\n  want %s\n  got  %s", want, got)
	}
}

// TestBuild_RequiredFields tests that field-presence predicates are
// OR-combined from the comma-split field list.
func TestBuild_RequiredFields(t *testing.T) {
	req := &document.ExportRequest{
		Types:          []string{"post"},
		RequiredFields: " title, slug , ,",
		MaxDocuments:   100,
	}

	got := Build(req)
	want := `*[_type in ["post"] && (defined(title) || defined(slug))][0...100]`
	if got != want {
		t.Errorf("Build():\n  want %s\n  got  %s", want, got)
	}
}

// TestBuild_SingleRequiredField tests that a lone presence predicate is not
// parenthesized.
func TestBuild_SingleRequiredField(t *testing.T) {
	req := &document.ExportRequest{
		RequiredFields: "title",
		MaxDocuments:   100,
	}

	got := Build(req)
	want := `*[defined(title)][0...100]`
	if got != want {
		t.Errorf("Build():\n  want %s\n  got  %s", want, got)
	}
}

// TestBuild_NoConditionsSelectsAll tests the select-all query when no
// filter applies.
func TestBuild_NoConditionsSelectsAll(t *testing.T) {
	req := &document.ExportRequest{MaxDocuments: 250}

	got := Build(req)
	want := `*[][0...250]`
	if got != want {
		t.Errorf("Build():\n  want %s\n  got  %s", want, got)
	}
}

// TestBuild_CustomQueryOverride tests that an enabled non-blank custom
// query is returned verbatim, ignoring every other parameter.
func TestBuild_CustomQueryOverride(t *testing.T) {
	custom := `*[_type == "author" && defined(bio)]`
	req := &document.ExportRequest{
		Types:            []string{"post", "page"},
		CreatedAfter:     "2023-01-01",
		RequiredFields:   "title",
		CustomQuery:      custom,
		UseCustomQuery:   true,
		ExpandReferences: true,
		ReferenceDepth:   3,
		MaxDocuments:     10,
	}

	if got := Build(req); got != custom {
		t.Errorf("Expected custom query verbatim, got %s", got)
	}
}

// TestBuild_BlankCustomQueryFallsThrough tests that an enabled but blank
// custom query does not override the built filters.
func TestBuild_BlankCustomQueryFallsThrough(t *testing.T) {
	req := &document.ExportRequest{
		Types:          []string{"post"},
		CustomQuery:    "   ",
		UseCustomQuery: true,
		MaxDocuments:   1000,
	}

	got := Build(req)
	want := `*[_type in ["post"]][0...1000]`
	if got != want {
		t.Errorf("Build():\n  want %s\n  got  %s", want, got)
	}
}

// TestBuild_ReferenceExpansionSuffix tests that the projection suffix keeps
// all original fields and appends the reference block.
func TestBuild_ReferenceExpansionSuffix(t *testing.T) {
	req := &document.ExportRequest{
		Types:            []string{"post"},
		ExpandReferences: true,
		ReferenceDepth:   1,
		MaxDocuments:     1000,
	}

	got := Build(req)
	want := `*[_type in ["post"]][0...1000]{..., "references": *[references(^._id)]{_id, _type, title, name, slug}}`
	if got != want {
		t.Errorf("Build():\n  want %s\n  got  %s", want, got)
	}
}

// TestBuild_ExpansionDisabledAtZeroDepth tests that depth zero suppresses
// the projection suffix even when expansion is requested.
func TestBuild_ExpansionDisabledAtZeroDepth(t *testing.T) {
	req := &document.ExportRequest{
		Types:            []string{"post"},
		ExpandReferences: true,
		ReferenceDepth:   0,
		MaxDocuments:     1000,
	}

	got := Build(req)
	if strings.Contains(got, "{") {
		t.Errorf("Expected no projection suffix at depth 0, got %s", got)
	}
}

// TestBuild_Idempotent tests that building the same request twice yields
// identical strings.
func TestBuild_Idempotent(t *testing.T) {
	req := &document.ExportRequest{
		Types:            []string{"post", "page"},
		CreatedAfter:     "2024-03-01",
		RequiredFields:   "title,slug",
		ExpandReferences: true,
		ReferenceDepth:   2,
		MaxDocuments:     42,
	}

	first := Build(req)
	second := Build(req)
	if first != second {
		t.Errorf("Build() is not deterministic:\n  first:  %s\n  second: %s", first, second)
	}
}

// TestSplitFields tests comma splitting with trimming and empty-part
// removal.
func TestSplitFields(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"title", []string{"title"}},
		{"title,slug", []string{"title", "slug"}},
		{" title , slug ,, ", []string{"title", "slug"}},
	}

	for _, tt := range tests {
		got := SplitFields(tt.raw)
		if len(got) != len(tt.want) {
			t.Errorf("SplitFields(%q): expected %v, got %v", tt.raw, tt.want, got)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("SplitFields(%q)[%d]: expected %q, got %q", tt.raw, i, tt.want[i], got[i])
			}
		}
	}
}
