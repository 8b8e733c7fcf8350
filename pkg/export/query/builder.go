package query

import (
	"fmt"
	"strconv"
	"strings"

	"portico-hq/portico/pkg/document"
)

// Build assembles the store query string for an export request.
//
// When the custom query override is enabled and non-blank, the custom query
// is returned verbatim and every other filter parameter is ignored.
// Otherwise, filter conditions are combined with logical AND in a fixed
// order: type membership, creation-date lower bound, then field presence.
// With no conditions the query selects all documents. A trailing range
// clause always bounds the result to [0, MaxDocuments), and when reference
// expansion is requested with depth > 0 a projection suffix is appended
// that keeps all original fields plus the reference block.
//
// Build is pure: no side effects, identical input yields identical output.
func Build(req *document.ExportRequest) string {
	if req.UseCustomQuery && strings.TrimSpace(req.CustomQuery) != "" {
		return req.CustomQuery
	}

	var conds []string

	if len(req.Types) > 0 {
		quoted := make([]string, len(req.Types))
		for i, t := range req.Types {
			quoted[i] = strconv.Quote(t)
		}
		conds = append(conds, fmt.Sprintf("_type in [%s]", strings.Join(quoted, ", ")))
	}

	if after := strings.TrimSpace(req.CreatedAfter); after != "" {
		conds = append(conds, fmt.Sprintf("_createdAt >= %q", after))
	}

	if fields := SplitFields(req.RequiredFields); len(fields) > 0 {
		preds := make([]string, len(fields))
		for i, f := range fields {
			preds[i] = fmt.Sprintf("defined(%s)", f)
		}
		cond := strings.Join(preds, " || ")
		if len(preds) > 1 {
			cond = "(" + cond + ")"
		}
		conds = append(conds, cond)
	}

	var b strings.Builder
	b.WriteString("*[")
	b.WriteString(strings.Join(conds, " && "))
	b.WriteString("]")
	fmt.Fprintf(&b, "[0...%d]", req.MaxDocuments)

	if req.ExpandReferences && req.ReferenceDepth > 0 {
		b.WriteString("{..., ")
		b.WriteString(ExpandReferences(req.ReferenceDepth))
		b.WriteString("}")
	}

	return b.String()
}

// SplitFields splits a comma-separated field list into trimmed, non-empty
// names.
func SplitFields(raw string) []string {
	var fields []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			fields = append(fields, name)
		}
	}
	return fields
}
