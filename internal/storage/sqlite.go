// Package storage provides SQLite-based persistence for completed
// game sessions. It is a write-behind journal: the engine never reads
// from it, and a missing database never blocks play. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionRecord is one completed game session.
type SessionRecord struct {
	ID             int64
	StoryID        string
	CharacterID    string
	Ending         string
	ElapsedMinutes int
	ItemsCollected int
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path. It
// creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			story_id TEXT NOT NULL,
			character_id TEXT NOT NULL,
			ending TEXT NOT NULL,
			elapsed_minutes INTEGER NOT NULL,
			items_collected INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_story ON sessions(story_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_best ON sessions(story_id, elapsed_minutes ASC);
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

// SaveSession records a completed session. Returns the ID of the
// inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (story_id, character_id, ending, elapsed_minutes, items_collected)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.StoryID, rec.CharacterID, rec.Ending, rec.ElapsedMinutes, rec.ItemsCollected,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions retrieves the most recent sessions for a story,
// newest first. An empty storyID returns sessions across all stories.
func (s *Store) RecentSessions(storyID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, story_id, character_id, ending, elapsed_minutes, items_collected, created_at
	          FROM sessions`
	args := []any{}
	if storyID != "" {
		query += " WHERE story_id = ?"
		args = append(args, storyID)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.StoryID, &rec.CharacterID, &rec.Ending,
			&rec.ElapsedMinutes, &rec.ItemsCollected, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseCreatedAt(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// BestTime returns the lowest elapsed time among non-failure sessions
// for a story. Returns ok=false if no successful session exists.
func (s *Store) BestTime(storyID string) (minutes int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		`SELECT MIN(elapsed_minutes) FROM sessions
		 WHERE story_id = ? AND ending != 'failure'`,
		storyID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// EndingTally returns how many sessions of a story finished with each
// ending kind.
func (s *Store) EndingTally(storyID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT ending, COUNT(*) FROM sessions WHERE story_id = ? GROUP BY ending`,
		storyID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ending tally: %w", err)
	}
	defer rows.Close()

	tally := make(map[string]int)
	for rows.Next() {
		var ending string
		var n int
		if err := rows.Scan(&ending, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tally[ending] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return tally, nil
}

// StoryStats contains aggregated statistics for one story.
type StoryStats struct {
	StoryID    string
	Sessions   int
	Saves      int // sessions with a non-failure ending
	BestTime   int // lowest elapsed minutes among saves, 0 if none
	LastPlayed time.Time
}

// GetStoryStats retrieves aggregated statistics for a story.
func (s *Store) GetStoryStats(storyID string) (*StoryStats, error) {
	stats := &StoryStats{StoryID: storyID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN ending != 'failure' THEN 1 ELSE 0 END), 0)
		 FROM sessions WHERE story_id = ?`,
		storyID,
	).Scan(&stats.Sessions, &stats.Saves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get story stats: %w", err)
	}

	if best, ok, err := s.BestTime(storyID); err != nil {
		return nil, err
	} else if ok {
		stats.BestTime = best
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE story_id = ? ORDER BY created_at DESC LIMIT 1`,
		storyID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// parseCreatedAt handles the driver returning either time.Time or a
// string for DATETIME columns.
func parseCreatedAt(v any) time.Time {
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
