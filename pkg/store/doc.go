// Package store provides an HTTP client for a document store's query API.
//
// Queries are sent as GET requests to the store's query endpoint:
//
//	GET {endpoint}/v1/data/query/{dataset}?query=...
//
// with an optional bearer token. The client decodes the store's result
// envelope into order-preserving documents and satisfies the fetch and
// type-listing capabilities the export orchestrator and CLI consume.
package store
