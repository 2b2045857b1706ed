package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/agentic-research/ringscan/internal/config"
	"github.com/agentic-research/ringscan/internal/survey"
	_ "modernc.org/sqlite"
)

// Writer persists MatchedSystem rows into a single SQLite file. Rows go into
// a temp file first; the file only appears at its final path when Close
// succeeds, so a failed run never leaves a usable-looking artifact behind.
//
// Indexes are created after the bulk load, which is much faster than
// maintaining them per insert.
type Writer struct {
	db        *sql.DB
	tx        *sql.Tx
	stmt      *sql.Stmt
	batchSize int
	count     int
	tmpPath   string
	finalPath string
}

const schema = `
CREATE TABLE IF NOT EXISTS systems (
	system_name TEXT NOT NULL,
	x REAL NOT NULL,
	y REAL NOT NULL,
	z REAL NOT NULL,
	distance_from_origin REAL NOT NULL,
	body_count INTEGER NOT NULL,
	matched_body_name TEXT NOT NULL,
	matched_body JSON,
	system_data JSON
);
`

// NewWriter opens a temp database next to path and initializes the schema.
// Resource settings tune the engine only; they never change what gets stored.
func NewWriter(path string, res config.ResourceConfig, batchSize int) (*Writer, error) {
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	db, err := sql.Open("sqlite", tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", tmpPath, err)
	}

	// Bulk-load tuning. Durability of intermediate state does not matter,
	// the artifact is only renamed into place after a clean Close.
	pragmas := []string{
		"PRAGMA synchronous = OFF",
		"PRAGMA journal_mode = MEMORY",
	}
	if res.MemoryLimitMB > 0 {
		pragmas = append(pragmas, fmt.Sprintf("PRAGMA cache_size = -%d", res.MemoryLimitMB*1024))
	}
	if res.TempDir != "" {
		pragmas = append(pragmas, fmt.Sprintf("PRAGMA temp_store_directory = '%s'", res.TempDir))
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	w := &Writer{
		db:        db,
		batchSize: batchSize,
		tmpPath:   tmpPath,
		finalPath: path,
	}
	if w.batchSize <= 0 {
		w.batchSize = 10000
	}

	if err := w.beginTx(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) beginTx() error {
	var err error
	w.tx, err = w.db.Begin()
	if err != nil {
		return err
	}
	w.stmt, err = w.tx.Prepare(`
		INSERT INTO systems (system_name, x, y, z, distance_from_origin,
			body_count, matched_body_name, matched_body, system_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	return err
}

func (w *Writer) commitTx() error {
	if w.stmt != nil {
		_ = w.stmt.Close()
	}
	return w.tx.Commit()
}

// Add writes one row. Callers are expected to add rows already sorted by
// distance_from_origin.
func (w *Writer) Add(m *survey.MatchedSystem) error {
	body := []byte(m.MatchedBody.Raw)
	if len(body) == 0 {
		var err error
		if body, err = json.Marshal(&m.MatchedBody); err != nil {
			return fmt.Errorf("encode matched body: %w", err)
		}
	}

	_, err := w.stmt.Exec(
		m.SystemName,
		m.X, m.Y, m.Z,
		m.DistanceFromOrigin,
		m.BodyCount,
		m.MatchedBodyName,
		string(body),
		string(m.SystemDataJSON()),
	)
	if err != nil {
		return fmt.Errorf("insert system %s: %w", m.SystemName, err)
	}

	w.count++
	if w.count >= w.batchSize {
		if err := w.commitTx(); err != nil {
			return fmt.Errorf("commit batch: %w", err)
		}
		if err := w.beginTx(); err != nil {
			return fmt.Errorf("begin batch: %w", err)
		}
		w.count = 0
	}
	return nil
}

// Close commits pending rows, builds the lookup indexes and publishes the
// artifact at its final path.
func (w *Writer) Close() error {
	if err := w.commitTx(); err != nil {
		_ = w.db.Close()
		return fmt.Errorf("commit final batch: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_distance ON systems(distance_from_origin)",
		"CREATE INDEX IF NOT EXISTS idx_body_count ON systems(body_count DESC)",
		"CREATE INDEX IF NOT EXISTS idx_system_name ON systems(system_name)",
	}
	for _, idx := range indexes {
		if _, err := w.db.Exec(idx); err != nil {
			_ = w.db.Close()
			return fmt.Errorf("create index: %w", err)
		}
	}

	if err := w.db.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	_ = os.Remove(w.finalPath) // overwrite previous run
	if err := os.Rename(w.tmpPath, w.finalPath); err != nil {
		return fmt.Errorf("publish store: %w", err)
	}
	return nil
}

// Abort discards the temp database. Safe to call after a failed Add.
func (w *Writer) Abort() {
	if w.tx != nil {
		_ = w.tx.Rollback()
	}
	_ = w.db.Close()
	_ = os.Remove(w.tmpPath)
}
