// Package format converts fetched documents into export content.
//
// Two formats are supported: structured (pretty-printed JSON preserving
// full nested structure and field order) and tabular (CSV with a header
// row derived from the union of non-nested field names, in first-seen
// order). Converters are pure; they never perform I/O.
package format
