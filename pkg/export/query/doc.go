// Package query builds document-store query strings from export requests.
//
// Queries follow the store's GROQ-style syntax: a filter over all documents
// (`*[...]`), an explicit result range, and an optional projection. The
// package has three concerns:
//
//   - Build: filter parameters to a complete query string, with the custom
//     query override short-circuiting everything else.
//   - ExpandReferences: the recursive projection fragment that pulls in
//     documents referencing each exported document, one level per depth.
//   - Validate / ApplyDefaults: request-level parameter checks and default
//     values, applied before a run starts.
//
// All functions are pure; building the same request twice yields the same
// string.
package query
