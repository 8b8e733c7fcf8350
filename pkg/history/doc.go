// Package history persists export run records for auditing.
//
// Every run the orchestrator finishes, including zero-document runs and
// failures, is written through the Recorder interface. Two backends exist:
// SQLiteStore for production use (WAL mode, schema versioning, retention
// pruning) and MemoryStore for tests. The orchestrator depends only on the
// narrow Recorder interface; the CLI uses the full Store for listing and
// pruning.
package history
