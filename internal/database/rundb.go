package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/srcweld/srcweld/internal/model"
)

// dbFileName is the history database file name inside the data directory.
const dbFileName = "srcweld.db"

// ErrDatabaseNotFound is returned by Open when the database file does not
// exist and CreateIfNotExists is false.
var ErrDatabaseNotFound = errors.New("history database not found")

// RunDB provides SQLite-based storage for combine-run history.
type RunDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RunDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a RunDB in the specified directory.
func Open(dbDir string, opts Options) (*RunDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite DSN: mode=rw prevents creating new files,
	// mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports a single writer; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RunDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

// Path returns the database file path.
func (rdb *RunDB) Path() string {
	return rdb.dbPath
}

// createTables creates the schema if it doesn't exist.
func (rdb *RunDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		project_list TEXT NOT NULL,
		output_path TEXT NOT NULL,
		file_count INTEGER NOT NULL,
		namespace_count INTEGER NOT NULL,
		namespaces TEXT,
		bytes_written INTEGER NOT NULL,
		minified INTEGER NOT NULL DEFAULT 0,
		unterminated_comments INTEGER NOT NULL DEFAULT 0,
		elapsed_ms INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	CREATE INDEX IF NOT EXISTS idx_runs_output ON runs(output_path);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// RunRecord is a stored combine run.
type RunRecord struct {
	ID                   int64
	Timestamp            time.Time
	ProjectList          string
	OutputPath           string
	FileCount            int
	NamespaceCount       int
	Namespaces           []string
	BytesWritten         int
	Minified             bool
	UnterminatedComments int
	Elapsed              time.Duration
}

// InsertRun records one combine run and returns its row ID.
func (rdb *RunDB) InsertRun(ctx context.Context, report *model.RunReport) (int64, error) {
	query := `
	INSERT INTO runs (timestamp, project_list, output_path, file_count,
		namespace_count, namespaces, bytes_written, minified,
		unterminated_comments, elapsed_ms)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := rdb.db.ExecContext(ctx, query,
		report.GeneratedAt.UTC(),
		report.ProjectListPath,
		report.OutputPath,
		report.FileCount,
		len(report.Namespaces),
		strings.Join(report.Namespaces, ","),
		report.BytesWritten,
		report.Minified,
		report.UnterminatedComments,
		report.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return result.LastInsertId()
}

// ListRuns returns the most recent runs, newest first, up to limit rows.
// A non-positive limit returns all rows.
func (rdb *RunDB) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := `
	SELECT id, timestamp, project_list, output_path, file_count,
		namespace_count, namespaces, bytes_written, minified,
		unterminated_comments, elapsed_ms
	FROM runs
	ORDER BY timestamp DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var namespaces string
		var elapsedMS int64

		if err := rows.Scan(&r.ID, &r.Timestamp, &r.ProjectList, &r.OutputPath,
			&r.FileCount, &r.NamespaceCount, &namespaces, &r.BytesWritten,
			&r.Minified, &r.UnterminatedComments, &elapsedMS); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}

		if namespaces != "" {
			r.Namespaces = strings.Split(namespaces, ",")
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run rows: %w", err)
	}

	return records, nil
}
