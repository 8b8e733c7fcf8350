package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"portico-hq/portico/pkg/document"
)

// TabularConverter serializes documents as CSV: one header row followed by
// one row per document.
//
// The header set is the union, across all documents, of every top-level
// field name whose value in at least one document is not a nested object.
// Scalars, null, and arrays qualify a field; a nested object does not
// contribute that occurrence, but the same name may still qualify through
// another document. Header order is first-seen order.
type TabularConverter struct{}

// NewTabularConverter creates a new tabular (CSV) converter.
func NewTabularConverter() *TabularConverter {
	return &TabularConverter{}
}

// Convert serializes the document list. An empty list yields "".
func (c *TabularConverter) Convert(docs []*document.Document) (string, error) {
	if len(docs) == 0 {
		return "", nil
	}

	headers := headerSet(docs)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return "", document.NewConvertError(document.FormatTabular, len(docs), err)
	}

	row := make([]string, len(headers))
	for _, doc := range docs {
		for i, name := range headers {
			row[i] = cellValue(doc, name)
		}
		if err := w.Write(row); err != nil {
			return "", document.NewConvertError(document.FormatTabular, len(docs), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", document.NewConvertError(document.FormatTabular, len(docs), err)
	}
	return buf.String(), nil
}

// headerSet computes the tabular header names in discovery order.
func headerSet(docs []*document.Document) []string {
	var headers []string
	seen := make(map[string]bool)

	for _, doc := range docs {
		for _, name := range doc.Names() {
			if seen[name] {
				continue
			}
			raw, _ := doc.Get(name)
			if document.KindOf(raw) == document.KindObject {
				continue
			}
			seen[name] = true
			headers = append(headers, name)
		}
	}
	return headers
}

// cellValue renders a single cell: empty for absent or null fields, the
// serialized form for nested values, and plain text otherwise. Quoting of
// comma-containing text is handled by the CSV writer.
func cellValue(doc *document.Document, name string) string {
	raw, ok := doc.Get(name)
	if !ok {
		return ""
	}

	switch document.KindOf(raw) {
	case document.KindNull:
		return ""
	case document.KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return strings.TrimSpace(string(raw))
		}
		return s
	case document.KindObject, document.KindArray:
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return strings.TrimSpace(string(raw))
		}
		return compact.String()
	default:
		return strings.TrimSpace(string(raw))
	}
}
