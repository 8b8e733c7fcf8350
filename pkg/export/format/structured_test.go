package format

import (
	"encoding/json"
	"strings"
	"testing"

	"portico-hq/portico/pkg/document"
)

// TestStructuredConverter_EmptyInput tests that an empty list serializes as
// an empty JSON array.
func TestStructuredConverter_EmptyInput(t *testing.T) {
	out, err := NewStructuredConverter().Convert(nil)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}
	if out != "[]" {
		t.Errorf("Expected '[]' for empty input, got %q", out)
	}
}

// TestStructuredConverter_PreservesFieldOrder tests that field order and
// nested structures survive conversion.
func TestStructuredConverter_PreservesFieldOrder(t *testing.T) {
	docs := []*document.Document{
		mustDocument(t, `{"_id":"a","_type":"post","body":{"blocks":[{"text":"hello"}]},"title":"Hi"}`),
	}

	out, err := NewStructuredConverter().Convert(docs)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	// Field order: _id before _type before body before title.
	idx := func(s string) int { return strings.Index(out, s) }
	if !(idx(`"_id"`) < idx(`"_type"`) && idx(`"_type"`) < idx(`"body"`) && idx(`"body"`) < idx(`"title"`)) {
		t.Errorf("Field order not preserved:\n%s", out)
	}

	// Nested structure intact.
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	body, ok := decoded[0]["body"].(map[string]any)
	if !ok {
		t.Fatalf("Expected nested body object, got %T", decoded[0]["body"])
	}
	if _, ok := body["blocks"].([]any); !ok {
		t.Errorf("Expected nested blocks array, got %T", body["blocks"])
	}
}

// TestStructuredConverter_PrettyPrinted tests that the output is indented.
func TestStructuredConverter_PrettyPrinted(t *testing.T) {
	docs := []*document.Document{
		mustDocument(t, `{"_id":"a","title":"Hi"}`),
	}

	out, err := NewStructuredConverter().Convert(docs)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	if !strings.Contains(out, "\n  ") {
		t.Errorf("Expected indented output, got:\n%s", out)
	}
}

// TestForFormat tests converter selection.
func TestForFormat(t *testing.T) {
	if _, err := ForFormat(document.FormatStructured); err != nil {
		t.Errorf("ForFormat(structured) failed: %v", err)
	}
	if _, err := ForFormat(document.FormatTabular); err != nil {
		t.Errorf("ForFormat(tabular) failed: %v", err)
	}
	if _, err := ForFormat("xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}
