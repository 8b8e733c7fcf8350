package format

import (
	"encoding/json"
	"strings"
	"testing"

	"portico-hq/portico/pkg/document"
)

func mustDocument(t *testing.T, data string) *document.Document {
	t.Helper()
	var doc document.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatalf("Failed to build test document from %s: %v", data, err)
	}
	return &doc
}

// TestTabularConverter_EmptyInput tests that an empty document list yields
// an empty string.
func TestTabularConverter_EmptyInput(t *testing.T) {
	out, err := NewTabularConverter().Convert(nil)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}
	if out != "" {
		t.Errorf("Expected empty output for empty input, got %q", out)
	}
}

// TestTabularConverter_HeaderUnionAndSparseRows tests header discovery
// across documents with different field sets.
func TestTabularConverter_HeaderUnionAndSparseRows(t *testing.T) {
	docs := []*document.Document{
		mustDocument(t, `{"_id":"a","_type":"post","title":"Hi"}`),
		mustDocument(t, `{"_id":"b","_type":"post","tags":["x"]}`),
	}

	out, err := NewTabularConverter().Convert(docs)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines (header + 2 rows), got %d:\n%s", len(lines), out)
	}

	if lines[0] != "_id,_type,title,tags" {
		t.Errorf("Expected header '_id,_type,title,tags', got %q", lines[0])
	}
	if lines[1] != "a,post,Hi," {
		t.Errorf("Expected row 'a,post,Hi,', got %q", lines[1])
	}
	// The array value is serialized inline; the CSV writer quotes it
	// because it contains quote characters.
	if lines[2] != `b,post,,"[""x""]"` {
		t.Errorf("Unexpected row for document b: %q", lines[2])
	}
}

// TestTabularConverter_NestedObjectsExcludedFromHeader tests that a field
// whose value is a nested object in every document never becomes a header,
// while a field that is nested in one document but scalar in another does.
func TestTabularConverter_NestedObjectsExcludedFromHeader(t *testing.T) {
	docs := []*document.Document{
		mustDocument(t, `{"_id":"a","meta":{"x":1},"mixed":{"y":2}}`),
		mustDocument(t, `{"_id":"b","meta":{"x":2},"mixed":"plain"}`),
	}

	out, err := NewTabularConverter().Convert(docs)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "_id,mixed" {
		t.Errorf("Expected header '_id,mixed', got %q", lines[0])
	}

	// Document a's mixed value is an object, emitted in serialized form.
	if !strings.Contains(lines[1], `""y"":2`) {
		t.Errorf("Expected inline serialized object in row a, got %q", lines[1])
	}
	if lines[2] != "b,plain" {
		t.Errorf("Expected row 'b,plain', got %q", lines[2])
	}
}

// TestTabularConverter_NullAndAbsentAreEmpty tests that null values and
// absent fields both yield empty cells, while null still qualifies the
// field for the header.
func TestTabularConverter_NullAndAbsentAreEmpty(t *testing.T) {
	docs := []*document.Document{
		mustDocument(t, `{"_id":"a","subtitle":null}`),
		mustDocument(t, `{"_id":"b"}`),
	}

	out, err := NewTabularConverter().Convert(docs)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "_id,subtitle" {
		t.Errorf("Expected header '_id,subtitle', got %q", lines[0])
	}
	if lines[1] != "a," {
		t.Errorf("Expected row 'a,', got %q", lines[1])
	}
	if lines[2] != "b," {
		t.Errorf("Expected row 'b,', got %q", lines[2])
	}
}

// TestTabularConverter_CommaValuesQuoted tests that plain-text values
// containing commas are quoted with internal quotes doubled.
func TestTabularConverter_CommaValuesQuoted(t *testing.T) {
	docs := []*document.Document{
		mustDocument(t, `{"_id":"a","title":"Hello, \"World\""}`),
	}

	out, err := NewTabularConverter().Convert(docs)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[1] != `a,"Hello, ""World"""` {
		t.Errorf("Unexpected quoting: %q", lines[1])
	}
}

// TestTabularConverter_ScalarRendering tests number and boolean cells.
func TestTabularConverter_ScalarRendering(t *testing.T) {
	docs := []*document.Document{
		mustDocument(t, `{"_id":"a","views":42,"draft":false,"score":-1.5}`),
	}

	out, err := NewTabularConverter().Convert(docs)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[1] != "a,42,false,-1.5" {
		t.Errorf("Unexpected scalar rendering: %q", lines[1])
	}
}
