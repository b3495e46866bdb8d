package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// Snapshot records the outcome of one diagram render.
type Snapshot struct {
	RunID         string    `json:"run_id"`
	SchemaVersion int       `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	SourcePath    string    `json:"source_path"`
	ModuleCount   int       `json:"module_count"`
	ClassCount    int       `json:"class_count"`
	FunctionCount int       `json:"function_count"`
	EdgeCount     int       `json:"edge_count"`
	ExternalCount int       `json:"external_count"`
	WarningCount  int       `json:"warning_count"`
	OutputBytes   int       `json:"output_bytes"`
}

type Store struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
}

func Open(path string) (*Store, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("history path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("history path %q is a directory, expected file", cleanPath)
	}

	dir := filepath.Dir(cleanPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory %q: %w", dir, err)
		}
	}

	// busy_timeout + WAL reduce lock conflicts during watch-mode churn.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)", cleanPath)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite history %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite history %q: %w", cleanPath, err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize sqlite schema %q: %w", cleanPath, err)
	}

	return &Store{path: cleanPath, db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record persists one render snapshot, filling in run id, timestamp and
// schema version when absent.
func (s *Store) Record(snapshot Snapshot) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot.RunID == "" {
		snapshot.RunID = uuid.NewString()
	}
	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = time.Now().UTC()
	}
	if snapshot.SchemaVersion == 0 {
		snapshot.SchemaVersion = SchemaVersion
	}
	if snapshot.SchemaVersion != SchemaVersion {
		return snapshot, fmt.Errorf("unsupported snapshot schema version %d", snapshot.SchemaVersion)
	}

	_, err := s.db.Exec(`
INSERT INTO renders (
  run_id, schema_version, ts_utc, source_path, module_count, class_count,
  function_count, edge_count, external_count, warning_count, output_bytes
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshot.RunID,
		snapshot.SchemaVersion,
		snapshot.Timestamp.UTC().Format(time.RFC3339Nano),
		snapshot.SourcePath,
		snapshot.ModuleCount,
		snapshot.ClassCount,
		snapshot.FunctionCount,
		snapshot.EdgeCount,
		snapshot.ExternalCount,
		snapshot.WarningCount,
		snapshot.OutputBytes,
	)
	if err != nil {
		return snapshot, fmt.Errorf("insert render snapshot: %w", err)
	}

	return snapshot, nil
}

// Recent returns up to limit snapshots, newest first.
func (s *Store) Recent(limit int) ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
SELECT run_id, schema_version, ts_utc, source_path, module_count, class_count,
       function_count, edge_count, external_count, warning_count, output_bytes
FROM renders
ORDER BY ts_utc DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query render snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var ts string
		if err := rows.Scan(
			&snap.RunID, &snap.SchemaVersion, &ts, &snap.SourcePath,
			&snap.ModuleCount, &snap.ClassCount, &snap.FunctionCount,
			&snap.EdgeCount, &snap.ExternalCount, &snap.WarningCount,
			&snap.OutputBytes,
		); err != nil {
			return nil, fmt.Errorf("scan render snapshot: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			snap.Timestamp = parsed
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}
