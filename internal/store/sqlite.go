package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/Ajugbo/aiq-platform/internal/scorer"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const (
	resultsTableName = "aiq_results"
	resultSlot       = 1
)

var resultColumns = []string{
	"slot", "score", "level",
	"clarity", "depth", "efficiency", "creativity",
	"certificate_code", "recorded_at",
}

func resultsTable() *schema.Table {
	return schema.NewTable(resultsTableName).
		AddPrimary(&schema.Column{Name: "slot", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "score", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "level", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "clarity", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "depth", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "efficiency", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "creativity", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "certificate_code", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "recorded_at", Type: field.TypeString})
}

// SQLite stores the result as a single row in a SQLite database.
type SQLite struct {
	db  *sql.DB
	drv *entsql.Driver
	mu  sync.Mutex
}

// OpenSQLite connects to the SQLite database at dsn, applies pragmas and
// creates the results table if needed.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", withConnPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	migrate, err := schema.NewMigrate(drv)
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	if err := migrate.Create(ctx, resultsTable()); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &SQLite{db: db, drv: drv}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) Put(ctx context.Context, r *Result) error {
	if err := r.Validate(); err != nil {
		return err
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(resultsTableName).
		Columns(resultColumns...).
		Values(
			resultSlot, r.Score, string(r.Level),
			r.Breakdown.Clarity, r.Breakdown.Depth, r.Breakdown.Efficiency, r.Breakdown.Creativity,
			r.CertificateCode, r.Timestamp.Format(time.RFC3339Nano),
		).
		OnConflict(entsql.ConflictColumns("slot"), entsql.ResolveWithNewValues()).
		Query()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context) (*Result, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(resultColumns[1:]...).
		From(entsql.Table(resultsTableName)).
		Where(entsql.EQ("slot", resultSlot)).
		Query()

	var (
		r     Result
		level string
		ts    string
	)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&r.Score, &level,
		&r.Breakdown.Clarity, &r.Breakdown.Depth, &r.Breakdown.Efficiency, &r.Breakdown.Creativity,
		&r.CertificateCode, &ts,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}

	r.Level = scorer.Level(level)
	r.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp: %w", err)
	}
	return &r, nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(resultsTableName).Query()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear result: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.drv.Close()
}

// withConnPragmas adds the per-connection pragmas to dsn so every pooled
// connection gets them, not only the one applyPragmas ran on.
func withConnPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
