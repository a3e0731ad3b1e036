package errorlog

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/clock"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	// DefaultListLimit applies when List is called without a limit
	DefaultListLimit = 50

	dsnOptions = "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
)

// Config holds the configuration for the SQLite repository
type Config struct {
	Path  string
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", c.Path, vb)
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*sqliteRepository)(nil)

// Open opens the error table and applies migrations
func Open(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	db, err := sql.Open("sqlite", filepath.Clean(cfg.Path)+dsnOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to ping sqlite db")
	}
	if err := applyMigrations(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to run migrations")
	}

	return &sqliteRepository{db: db, clock: cfg.Clock}, nil
}

// Close releases the connection
func (r *sqliteRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Record appends a failure
func (r *sqliteRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	if err := errors.FromContext(ctx); err != nil {
		return nil, err
	}
	input.ErrorData = strings.TrimSpace(input.ErrorData)
	if input.ErrorData == "" {
		return nil, errors.InvalidArgument("error data is required")
	}

	entry := &Entry{
		CreatedAt: r.clock.Now().UTC(),
		GenKey:    input.GenKey,
		ErrorData: input.ErrorData,
		Settings:  input.Settings,
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO generation_errors (created_at, gen_key, error_data, settings)
VALUES (?, ?, ?, ?)
`,
		entry.CreatedAt.UnixMilli(),
		entry.GenKey,
		entry.ErrorData,
		entry.Settings,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record generation error")
	}
	if entry.ID, err = res.LastInsertId(); err != nil {
		return nil, errors.Wrapf(err, "failed to read generation error id")
	}

	return &RecordOutput{Entry: entry}, nil
}

// List returns failures newest first
func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if err := errors.FromContext(ctx); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, created_at, gen_key, error_data, settings
FROM generation_errors
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list generation errors")
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*Entry, 0, limit)
	for rows.Next() {
		var (
			entry     Entry
			createdAt int64
		)
		if err := rows.Scan(&entry.ID, &createdAt, &entry.GenKey, &entry.ErrorData, &entry.Settings); err != nil {
			return nil, errors.Wrapf(err, "failed to scan generation error")
		}
		entry.CreatedAt = time.UnixMilli(createdAt).UTC()
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate generation errors")
	}

	return &ListOutput{Entries: entries}, nil
}

// applyMigrations runs every embedded .sql file once, in name order.
func applyMigrations(db *sql.DB, migrations fs.FS) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return errors.Wrapf(err, "failed to ensure migration table")
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return errors.Wrapf(err, "failed to list migrations")
	}
	slices.Sort(files)

	for _, name := range files {
		var applied int
		if err := db.QueryRow(`SELECT COUNT(1) FROM schema_migrations WHERE name = ?`, name).Scan(&applied); err != nil {
			return errors.Wrapf(err, "failed to check migration %s", name)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(migrations, name)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", name)
		}

		tx, err := db.Begin()
		if err != nil {
			return errors.Wrapf(err, "failed to begin migration %s", name)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to apply migration %s", name)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, strftime('%s','now'))`, name); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to mark migration %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit migration %s", name)
		}
	}
	return nil
}
