package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Well-known system field names present on every store document.
const (
	FieldID        = "_id"
	FieldType      = "_type"
	FieldCreatedAt = "_createdAt"
	FieldUpdatedAt = "_updatedAt"
)

// Document is a single record returned by the document store. It preserves
// the top-level field order of the JSON the store returned, because field
// order is observable in tabular output (headers follow discovery order).
// Field values are kept as raw JSON so nested structures survive a round
// trip verbatim.
//
// A Document is a read-only snapshot; the store owns the underlying record.
type Document struct {
	names  []string
	values map[string]json.RawMessage
}

// New creates an empty document.
func New() *Document {
	return &Document{
		values: make(map[string]json.RawMessage),
	}
}

// Set stores a field value, appending the name to the field order if it has
// not been seen before.
func (d *Document) Set(name string, value json.RawMessage) {
	if d.values == nil {
		d.values = make(map[string]json.RawMessage)
	}
	if _, exists := d.values[name]; !exists {
		d.names = append(d.names, name)
	}
	d.values[name] = value
}

// Get returns the raw value of a field and whether the field is present.
func (d *Document) Get(name string) (json.RawMessage, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Names returns the field names in discovery order. The returned slice is
// shared with the document and must not be modified.
func (d *Document) Names() []string {
	return d.names
}

// Len returns the number of top-level fields.
func (d *Document) Len() int {
	return len(d.names)
}

// ID returns the document identifier (the "_id" field), or "" if absent.
func (d *Document) ID() string {
	return d.StringField(FieldID)
}

// Type returns the document type tag (the "_type" field), or "" if absent.
func (d *Document) Type() string {
	return d.StringField(FieldType)
}

// CreatedAt returns the creation timestamp, or the zero time if the
// "_createdAt" field is absent or not RFC 3339.
func (d *Document) CreatedAt() time.Time {
	return d.timeField(FieldCreatedAt)
}

// UpdatedAt returns the last-update timestamp, or the zero time if the
// "_updatedAt" field is absent or not RFC 3339.
func (d *Document) UpdatedAt() time.Time {
	return d.timeField(FieldUpdatedAt)
}

// StringField returns the value of a string field, or "" if the field is
// absent or not a JSON string.
func (d *Document) StringField(name string) string {
	raw, ok := d.values[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func (d *Document) timeField(name string) time.Time {
	s := d.StringField(name)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// UnmarshalJSON decodes a JSON object into the document, recording top-level
// field names in the order they appear.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("document: expected JSON object, got %v", tok)
	}

	d.names = nil
	d.values = make(map[string]json.RawMessage)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("document: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("document: expected field name, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("document: field %q: %w", key, err)
		}
		d.Set(key, raw)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	return nil
}

// MarshalJSON encodes the document as a JSON object with fields in
// discovery order. Nested values are emitted verbatim.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		raw := d.values[name]
		if len(raw) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(raw)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Kind describes the JSON shape of a field value.
type Kind int

const (
	// KindNull is a JSON null (or an empty raw value).
	KindNull Kind = iota
	// KindObject is a nested JSON object.
	KindObject
	// KindArray is a JSON array.
	KindArray
	// KindString is a JSON string.
	KindString
	// KindNumber is a JSON number.
	KindNumber
	// KindBool is a JSON boolean.
	KindBool
)

// KindOf reports the JSON shape of a raw value by inspecting its first
// non-whitespace byte.
func KindOf(raw json.RawMessage) Kind {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return KindObject
		case '[':
			return KindArray
		case '"':
			return KindString
		case 't', 'f':
			return KindBool
		case 'n':
			return KindNull
		default:
			return KindNumber
		}
	}
	return KindNull
}
