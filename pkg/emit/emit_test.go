package emit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestFileEmitter_WritesFile tests file creation, including creating the
// output directory on first use.
func TestFileEmitter_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	e := NewFileEmitter(dir, nil)

	if err := e.Emit(`[{"_id":"a"}]`, "export-post-2024-06-15.json", "application/json"); err != nil {
		t.Fatalf("Emit() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "export-post-2024-06-15.json"))
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}
	if string(data) != `[{"_id":"a"}]` {
		t.Errorf("Unexpected content: %s", data)
	}
}

// TestFileEmitter_Overwrites tests that re-emitting the same name replaces
// the previous content.
func TestFileEmitter_Overwrites(t *testing.T) {
	e := NewFileEmitter(t.TempDir(), nil)

	if err := e.Emit("first", "out.csv", "text/csv"); err != nil {
		t.Fatalf("Emit() failed: %v", err)
	}
	if err := e.Emit("second", "out.csv", "text/csv"); err != nil {
		t.Fatalf("Emit() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(e.Dir(), "out.csv"))
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected overwrite, got: %s", data)
	}
}

// TestWriterEmitter tests streaming output and the trailing newline.
func TestWriterEmitter(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriterEmitter(&buf)

	if err := e.Emit("a,b\n1,2\n", "ignored.csv", "text/csv"); err != nil {
		t.Fatalf("Emit() failed: %v", err)
	}
	if buf.String() != "a,b\n1,2\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}

	buf.Reset()
	if err := e.Emit("[]", "ignored.json", "application/json"); err != nil {
		t.Fatalf("Emit() failed: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("Expected trailing newline, got: %q", buf.String())
	}
}
