package format

import (
	"encoding/json"

	"portico-hq/portico/pkg/document"
)

// StructuredConverter serializes documents as a pretty-printed JSON array,
// preserving top-level field order and nested structures verbatim.
type StructuredConverter struct {
	// Indent is the indentation unit. Defaults to two spaces.
	Indent string
}

// NewStructuredConverter creates a new structured (JSON) converter.
func NewStructuredConverter() *StructuredConverter {
	return &StructuredConverter{Indent: "  "}
}

// Convert serializes the document list. An empty list yields "[]".
func (c *StructuredConverter) Convert(docs []*document.Document) (string, error) {
	if len(docs) == 0 {
		return "[]", nil
	}

	indent := c.Indent
	if indent == "" {
		indent = "  "
	}

	data, err := json.MarshalIndent(docs, "", indent)
	if err != nil {
		return "", document.NewConvertError(document.FormatStructured, len(docs), err)
	}
	return string(data), nil
}
