package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajugbo/aiq-platform/internal/config"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
)

func sampleResult(code string, score int) *Result {
	return &Result{
		Score: score,
		Level: scorer.LevelFor(score),
		Breakdown: scorer.Breakdown{
			Clarity: 20, Depth: 15, Efficiency: 12, Creativity: 7,
		},
		CertificateCode: code,
		Timestamp:       time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func assertSameResult(t *testing.T, want, got *Result) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Level, got.Level)
	assert.Equal(t, want.Breakdown, got.Breakdown)
	assert.Equal(t, want.CertificateCode, got.CertificateCode)
	assert.True(t, want.Timestamp.Equal(got.Timestamp), "timestamp %v != %v", got.Timestamp, want.Timestamp)
}

// runContract exercises the behavior every backend shares.
func runContract(t *testing.T, s ResultStore) {
	t.Helper()
	ctx := context.Background()

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "empty store should return nil")

	first := sampleResult("AIQ-ABCD1234", 54)
	require.NoError(t, s.Put(ctx, first))
	got, err = s.Get(ctx)
	require.NoError(t, err)
	assertSameResult(t, first, got)

	second := sampleResult("AIQ-ZZZZ9999", 91)
	require.NoError(t, s.Put(ctx, second))
	got, err = s.Get(ctx)
	require.NoError(t, err)
	assertSameResult(t, second, got)

	bad := sampleResult("not-a-code", 50)
	err = s.Put(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidResult)
	got, err = s.Get(ctx)
	require.NoError(t, err)
	assertSameResult(t, second, got)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "cleared store should return nil")

	// Clearing an empty store is a no-op.
	require.NoError(t, s.Clear(ctx))
}

func TestMemoryContract(t *testing.T) {
	runContract(t, NewMemory())
}

func TestMemory_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Put(ctx, sampleResult("AIQ-ABCD1234", 54)))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	got.Score = 0

	again, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 54, again.Score)
}

func TestFileContract(t *testing.T) {
	runContract(t, NewFile(filepath.Join(t.TempDir(), "aiq.json")))
}

func TestFile_RejectsCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aiq.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"score": 140, "level": "AI Wizard"}`), 0o644))

	_, err := NewFile(path).Get(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResult)
}

func TestFile_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	s := NewFile(filepath.Join(dir, "aiq.json"))
	require.NoError(t, s.Put(context.Background(), sampleResult("AIQ-ABCD1234", 54)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "aiq.json", entries[0].Name())
}

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "aiq.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteContract(t *testing.T) {
	runContract(t, openTestSQLite(t))
}

func TestSQLite_PragmasApplied(t *testing.T) {
	s := openTestSQLite(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
	}
	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSQLite_SingleRow(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)
	for i, code := range []string{"AIQ-AAAA0001", "AIQ-AAAA0002", "AIQ-AAAA0003"} {
		require.NoError(t, s.Put(ctx, sampleResult(code, 40+i)))
	}

	var n int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM aiq_results").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "aiq.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	want := sampleResult("AIQ-ABCD1234", 54)
	require.NoError(t, s.Put(ctx, want))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx)
	require.NoError(t, err)
	assertSameResult(t, want, got)
}

func TestRedisContract(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := NewRedis(client, "")
	runContract(t, s)
}

func TestRedis_StoresJSONUnderKey(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := OpenRedis(ctx, mr.Addr(), 0)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(ctx, sampleResult("AIQ-ABCD1234", 54)))
	raw, err := mr.Get(Key)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSON([]byte(raw)))
}

func TestRedis_RejectsCorruptRecord(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set(Key, `{"score":"high"}`))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	_, err := NewRedis(client, Key).Get(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResult)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  config.Store
	}{
		{"memory", config.Store{Backend: config.BackendMemory}},
		{"file", config.Store{Backend: config.BackendFile, FilePath: filepath.Join(dir, "nested", "aiq.json")}},
		{"sqlite", config.Store{Backend: config.BackendSQLite, DBPath: filepath.Join(dir, "nested", "aiq.db")}},
		{"redis", config.Store{Backend: config.BackendRedis, RedisAddr: mr.Addr()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.cfg)
			require.NoError(t, err)
			defer s.Close()
			require.NoError(t, s.Put(ctx, sampleResult("AIQ-ABCD1234", 54)))
		})
	}

	_, err := Open(ctx, config.Store{Backend: "postgres"})
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Result)
		wantErr bool
	}{
		{"valid", func(r *Result) {}, false},
		{"score above range", func(r *Result) { r.Score = 101 }, true},
		{"score below range", func(r *Result) { r.Score = -1 }, true},
		{"unknown level", func(r *Result) { r.Level = "AI Wizard" }, true},
		{"category above cap", func(r *Result) { r.Breakdown.Depth = 26 }, true},
		{"lowercase code", func(r *Result) { r.CertificateCode = "AIQ-abcd1234" }, true},
		{"short code", func(r *Result) { r.CertificateCode = "AIQ-ABC" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleResult("AIQ-ABCD1234", 54)
			tt.mutate(r)
			err := r.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidResult)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseResult_BadTimestamp(t *testing.T) {
	raw := `{"score":54,"level":"AI Beginner","breakdown":{"clarity":1,"depth":1,"efficiency":1,"creativity":1},` +
		`"certificateCode":"AIQ-ABCD1234","timestamp":"yesterday"}`
	_, err := ParseResult([]byte(raw))
	assert.ErrorIs(t, err, ErrInvalidResult)
}
