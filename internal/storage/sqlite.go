// Package storage provides SQLite-based persistence for level results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// LevelResult is one completed run of a level.
type LevelResult struct {
	ID         int64
	LevelID    string
	ShapesUsed int
	Stars      int
	Goals      int // goals claimed, equal to the level's goal count
	CreatedAt  time.Time
}

// LevelStats contains aggregated results for one level.
type LevelStats struct {
	LevelID      string
	Completions  int
	BestStars    int
	FewestShapes int
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			shapes_used INTEGER NOT NULL,
			stars INTEGER NOT NULL,
			goals INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_results_level_id ON level_results(level_id);
		CREATE INDEX IF NOT EXISTS idx_level_results_best ON level_results(level_id, stars DESC, shapes_used ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a completed level run.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r LevelResult) (int64, error) {
	if r.LevelID == "" {
		return 0, errors.New("storage: level id is required")
	}
	if r.Stars < 1 || r.Stars > 3 {
		return 0, fmt.Errorf("storage: stars must be 1..3, got %d", r.Stars)
	}

	result, err := s.db.Exec(
		"INSERT INTO level_results (level_id, shapes_used, stars, goals) VALUES (?, ?, ?, ?)",
		r.LevelID, r.ShapesUsed, r.Stars, r.Goals,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Results retrieves the most recent results for a level, newest first.
func (s *Store) Results(levelID string, limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, shapes_used, stars, goals, created_at
		 FROM level_results
		 WHERE level_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// BestResult returns the best run of a level: most stars, then fewest
// shapes, then earliest. Returns nil if the level has no results.
func (s *Store) BestResult(levelID string) (*LevelResult, error) {
	var r LevelResult
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, level_id, shapes_used, stars, goals, created_at
		 FROM level_results
		 WHERE level_id = ?
		 ORDER BY stars DESC, shapes_used ASC, id ASC
		 LIMIT 1`,
		levelID,
	).Scan(&r.ID, &r.LevelID, &r.ShapesUsed, &r.Stars, &r.Goals, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best result: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// AllBest returns the best run of every level that has results, keyed by
// level ID.
func (s *Store) AllBest() (map[string]LevelResult, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, shapes_used, stars, goals, created_at
		 FROM (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY level_id
				ORDER BY stars DESC, shapes_used ASC, id ASC
			) AS rn
			FROM level_results
		 )
		 WHERE rn = 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}

	best := make(map[string]LevelResult, len(results))
	for _, r := range results {
		best[r.LevelID] = r
	}
	return best, nil
}

// ClearResults deletes all results for the given level.
func (s *Store) ClearResults(levelID string) error {
	_, err := s.db.Exec("DELETE FROM level_results WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(stars), 0), COALESCE(MIN(shapes_used), 0), MAX(created_at)
		 FROM level_results WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Completions, &stats.BestStars, &stats.FewestShapes, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllLevelStats retrieves statistics for all levels that have been completed.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MAX(stars), MIN(shapes_used), MAX(created_at)
		 FROM level_results
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Completions, &st.BestStars, &st.FewestShapes, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func scanResults(rows *sql.Rows) ([]LevelResult, error) {
	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.ShapesUsed, &r.Stars, &r.Goals, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
