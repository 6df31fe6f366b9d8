// Package config resolves runtime settings. Command-line flags win over
// environment variables, which win over the defaults computed here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Backend names a Result Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// Backends returns every supported backend.
func Backends() []Backend {
	return []Backend{BackendMemory, BackendFile, BackendSQLite, BackendRedis}
}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Backends() {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown store backend %q", s)
}

// Store configures the Result Store.
type Store struct {
	Backend   Backend
	DBPath    string // sqlite database file
	FilePath  string // JSON result file
	RedisAddr string
	RedisDB   int
}

// Config is the full runtime configuration.
type Config struct {
	Store       Store
	HTTPAddr    string
	CORSOrigins []string
}

// FromEnv builds a Config from AIQ_* environment variables and defaults.
func FromEnv() (Config, error) {
	backend, err := ParseBackend(envOr("AIQ_STORE", string(BackendSQLite)))
	if err != nil {
		return Config{}, err
	}

	dataDir, err := DataDir()
	if err != nil {
		return Config{}, err
	}

	redisDB, err := envInt("AIQ_REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Store: Store{
			Backend:   backend,
			DBPath:    envOr("AIQ_DB", filepath.Join(dataDir, "aiq.db")),
			FilePath:  envOr("AIQ_FILE", filepath.Join(dataDir, "aiq.json")),
			RedisAddr: envOr("AIQ_REDIS_ADDR", "localhost:6379"),
			RedisDB:   redisDB,
		},
		HTTPAddr:    envOr("AIQ_HTTP_ADDR", ":8080"),
		CORSOrigins: csvOr("AIQ_CORS_ORIGINS", "http://localhost:3000"),
	}, nil
}

// DataDir resolves the directory holding local data files:
// 1. $XDG_DATA_HOME/aiq
// 2. ~/.local/share/aiq
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "aiq"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", k, err)
	}
	return n, nil
}

func csvOr(k, def string) []string {
	raw := envOr(k, def)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
