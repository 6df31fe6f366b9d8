// Package store persists the single most recent assessment result.
//
// Every backend holds at most one record: a Put replaces whatever was there
// before. Backends are selected with Open from a config.Store.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ajugbo/aiq-platform/internal/config"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
)

// Key names the stored record in key/value backends.
const Key = "aiqResults"

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Result is a completed assessment, created once per submitted session.
type Result struct {
	Score           int              `json:"score"`
	Level           scorer.Level     `json:"level"`
	Breakdown       scorer.Breakdown `json:"breakdown"`
	CertificateCode string           `json:"certificateCode"`
	Timestamp       time.Time        `json:"timestamp"`
}

// ResultStore is the persistence contract shared by all backends.
type ResultStore interface {
	// Put replaces the stored result.
	Put(ctx context.Context, r *Result) error

	// Get returns the stored result, or nil if none exists.
	Get(ctx context.Context) (*Result, error)

	// Clear removes the stored result.
	Clear(ctx context.Context) error

	Close() error
}

// Open creates the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.Store) (ResultStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendFile:
		if err := config.EnsureDir(cfg.FilePath); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return NewFile(cfg.FilePath), nil
	case config.BackendSQLite, "":
		if err := config.EnsureDir(cfg.DBPath); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return OpenSQLite(ctx, cfg.DBPath)
	case config.BackendRedis:
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
