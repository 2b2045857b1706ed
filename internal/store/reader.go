package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Row is one persisted match, as read back from a finished store.
type Row struct {
	SystemName         string
	X, Y, Z            float64
	DistanceFromOrigin float64
	BodyCount          int64
	MatchedBodyName    string
	MatchedBody        []byte
	SystemData         []byte
}

// Stats summarizes a finished store for the stats command.
type Stats struct {
	Systems     int64
	MinDistance float64
	MaxDistance float64
}

// StreamRows iterates the systems table in ascending distance order, calling
// fn for each row. Only one row is alive at a time.
func StreamRows(dbPath string, fn func(Row) error) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	rows, err := db.Query(`
		SELECT system_name, x, y, z, distance_from_origin,
			body_count, matched_body_name, matched_body, system_data
		FROM systems ORDER BY distance_from_origin
	`)
	if err != nil {
		return fmt.Errorf("query systems: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.SystemName, &r.X, &r.Y, &r.Z, &r.DistanceFromOrigin,
			&r.BodyCount, &r.MatchedBodyName, &r.MatchedBody, &r.SystemData); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	return rows.Err()
}

// ReadStats reopens a finished store and reports row count and distance range.
func ReadStats(dbPath string) (Stats, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return Stats{}, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	var s Stats
	err = db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(MIN(distance_from_origin), 0),
			COALESCE(MAX(distance_from_origin), 0)
		FROM systems
	`).Scan(&s.Systems, &s.MinDistance, &s.MaxDistance)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return s, nil
}
