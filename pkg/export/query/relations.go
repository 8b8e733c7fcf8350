package query

import "fmt"

// referenceFields is the fixed field subset projected for each referencing
// document: identifier, type, and the common display fields.
const referenceFields = "_id, _type, title, name, slug"

// ReferenceMarker is the selection fragment that matches documents
// referencing the current document. ExpandReferences emits it exactly once
// per depth level.
const ReferenceMarker = "*[references(^._id)]"

// ExpandReferences builds the reference projection fragment for the given
// expansion depth.
//
// A depth of zero or less yields an empty string. Depth one yields a single
// projection selecting documents that reference the current document's
// identifier. Greater depths nest the next level inside the parent's
// projection, so each referencing document carries its own referencing
// documents, depth levels deep.
//
// The function is pure and accepts unbounded depth; capping the depth is a
// caller responsibility.
func ExpandReferences(depth int) string {
	if depth <= 0 {
		return ""
	}
	if depth == 1 {
		return fmt.Sprintf("%q: %s{%s}", "references", ReferenceMarker, referenceFields)
	}
	return fmt.Sprintf("%q: %s{%s, %s}", "references", ReferenceMarker, referenceFields, ExpandReferences(depth-1))
}
