package emit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileEmitter writes exported content into a directory, creating it on
// first use. It implements document.Emitter.
type FileEmitter struct {
	dir    string
	logger *slog.Logger
}

// NewFileEmitter creates an emitter that writes files under dir.
func NewFileEmitter(dir string, logger *slog.Logger) *FileEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileEmitter{
		dir:    dir,
		logger: logger.With("component", "emit"),
	}
}

// Emit writes content to dir/filename. The content type is ignored; the
// filename's extension already encodes the format.
func (e *FileEmitter) Emit(content, filename, contentType string) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", e.dir, err)
	}

	path := filepath.Join(e.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	e.logger.Info("export written", "path", path, "bytes", len(content))
	return nil
}

// Dir returns the output directory.
func (e *FileEmitter) Dir() string {
	return e.dir
}

// WriterEmitter streams exported content to a writer, ignoring the
// filename. Used for stdout output.
type WriterEmitter struct {
	w io.Writer
}

// NewWriterEmitter creates an emitter over w.
func NewWriterEmitter(w io.Writer) *WriterEmitter {
	return &WriterEmitter{w: w}
}

// Emit writes the content to the underlying writer with a trailing newline.
func (e *WriterEmitter) Emit(content, filename, contentType string) error {
	if _, err := io.WriteString(e.w, content); err != nil {
		return err
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		if _, err := io.WriteString(e.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
