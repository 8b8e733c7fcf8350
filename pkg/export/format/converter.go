package format

import (
	"fmt"

	"portico-hq/portico/pkg/document"
)

// Converter serializes a document list into export content.
// Implementations are deterministic and perform no I/O.
type Converter interface {
	Convert(docs []*document.Document) (string, error)
}

// ForFormat returns the converter for the given format.
func ForFormat(f document.Format) (Converter, error) {
	switch f {
	case document.FormatStructured:
		return NewStructuredConverter(), nil
	case document.FormatTabular:
		return NewTabularConverter(), nil
	default:
		return nil, document.NewConvertError(f, 0, fmt.Errorf("unknown format: %q", f))
	}
}
