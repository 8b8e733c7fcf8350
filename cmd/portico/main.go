// Portico exports documents from a GROQ-queryable content store.
//
// It builds store queries from type, date, and field filters (or a raw
// custom query), fetches the matching documents, and writes them out as
// structured JSON or tabular CSV:
//
//	# Export all posts as JSON
//	portico export --types post
//
//	# Tabular export with filters
//	portico export --types post,page --created-after 2024-01-01 --format tabular
//
//	# Raw query
//	portico export --query '*[_type == "post" && defined(slug)][0...100]'
//
//	# List the document types present in the store
//	portico types
//
//	# Show recent export runs
//	portico history list
//
//	# Run configured export jobs on their cron schedules
//	portico schedule
package main

func main() {
	Execute()
}
