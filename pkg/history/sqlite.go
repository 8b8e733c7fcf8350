package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SchemaVersion is the current history database schema version.
const SchemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS export_runs (
    id TEXT PRIMARY KEY,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP NOT NULL,
    query TEXT NOT NULL,
    format TEXT NOT NULL,
    filename TEXT,
    exported INTEGER NOT NULL,
    status TEXT NOT NULL,
    error TEXT
);

CREATE INDEX IF NOT EXISTS idx_export_runs_started_at ON export_runs(started_at);
CREATE INDEX IF NOT EXISTS idx_export_runs_status ON export_runs(status);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

const insertSchemaVersion = `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`
const getSchemaVersion = `SELECT version FROM schema_version ORDER BY version DESC LIMIT 1`

// SQLiteConfig contains configuration for the SQLite history backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 10
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int

	// WALMode enables Write-Ahead Logging mode for better concurrency.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/history.db",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite history backend. It initializes the
// schema and enables WAL mode if configured.
func NewSQLiteStore(config *SQLiteConfig) (*SQLiteStore, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "history.sqlite")

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, NewStorageError("sqlite", "open", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	s := &SQLiteStore{
		db:     db,
		config: config,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("history store initialized",
		"path", config.Path,
		"wal_mode", config.WALMode,
	)

	return s, nil
}

// initialize sets up the schema and pragmas.
func (s *SQLiteStore) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return NewStorageError("sqlite", "enable_wal", err)
		}
	}

	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", s.config.BusyTimeout.Milliseconds())); err != nil {
		return NewStorageError("sqlite", "set_busy_timeout", err)
	}

	if _, err := s.db.Exec(schema); err != nil {
		return NewStorageError("sqlite", "create_schema", err)
	}

	if _, err := s.db.Exec(insertSchemaVersion, SchemaVersion); err != nil {
		return NewStorageError("sqlite", "insert_schema_version", err)
	}

	var version int
	if err := s.db.QueryRow(getSchemaVersion).Scan(&version); err != nil && err != sql.ErrNoRows {
		return NewStorageError("sqlite", "get_schema_version", err)
	}
	if version != SchemaVersion {
		return NewStorageError("sqlite", "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}

	return nil
}

// Record persists a finished run.
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	query := `
		INSERT INTO export_runs (
			id, started_at, finished_at, query, format, filename, exported, status, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var errorVal interface{}
	if run.Error != "" {
		errorVal = run.Error
	}

	_, err := s.db.ExecContext(ctx, query,
		run.ID, run.StartedAt, run.FinishedAt,
		run.Query, run.Format, run.Filename,
		run.Exported, run.Status, errorVal,
	)
	if err != nil {
		return NewStorageError("sqlite", "record", err)
	}

	s.logger.Debug("run recorded",
		"run_id", run.ID,
		"status", run.Status,
		"exported", run.Exported,
	)
	return nil
}

// Recent returns up to limit runs, most recent first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, started_at, finished_at, query, format, filename, exported, status, error
		FROM export_runs
		ORDER BY started_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, NewStorageError("sqlite", "recent", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var filename, errMsg sql.NullString
		if err := rows.Scan(
			&run.ID, &run.StartedAt, &run.FinishedAt,
			&run.Query, &run.Format, &filename,
			&run.Exported, &run.Status, &errMsg,
		); err != nil {
			return nil, NewStorageError("sqlite", "scan", err)
		}
		run.Filename = filename.String
		run.Error = errMsg.String
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStorageError("sqlite", "recent", err)
	}

	return runs, nil
}

// Count returns the total number of recorded runs.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM export_runs`).Scan(&count)
	if err != nil {
		return 0, NewStorageError("sqlite", "count", err)
	}
	return count, nil
}

// Prune deletes runs that started more than retentionDays ago and returns
// the number deleted.
func (s *SQLiteStore) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result, err := s.db.ExecContext(ctx, `DELETE FROM export_runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, NewStorageError("sqlite", "prune", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, NewStorageError("sqlite", "prune", err)
	}

	if deleted > 0 {
		s.logger.Info("pruned export runs",
			"deleted", deleted,
			"retention_days", retentionDays,
		)
	}
	return deleted, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return NewStorageError("sqlite", "close", err)
	}
	return nil
}
