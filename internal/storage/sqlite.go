// Package storage keeps high scores for the widgets that have them, in a
// SQLite file opened through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// DefaultPath is where scores live unless --db says otherwise.
const DefaultPath = "~/.showcase/scores.db"

// ErrNotScored is returned when saving a score for a widget that keeps none.
var ErrNotScored = errors.New("storage: widget does not keep scores")

// scoredGames lists the widgets whose final score is recorded.
var scoredGames = map[string]bool{
	"memory": true,
	"merge":  true,
}

// Scored reports whether the widget keeps a high score table.
func Scored(gameID string) bool {
	return scoredGames[gameID]
}

// SSH sessions share one Store, so writers wait on each other instead of
// failing with SQLITE_BUSY.
const pragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// migrations run in order. PRAGMA user_version records how many have run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT    NOT NULL,
		score      INTEGER NOT NULL,
		created_at INTEGER NOT NULL -- unix milliseconds
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`,
}

// Store is a handle on the scores database. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// ScoreEntry is one recorded score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates every score recorded for one widget.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time // zero when nothing was recorded
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", p, err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Open opens the database at dbPath, creating the file, its directory and
// the schema as needed. An empty path means DefaultPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath
	}
	path, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", "file:"+path+pragmas)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("storage: read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		// PRAGMA takes no bind parameters
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Close closes the database. It is safe on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a final score and returns its row id. Widgets that keep
// no scores are rejected with ErrNotScored.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	if !Scored(gameID) {
		return 0, fmt.Errorf("storage: save %q: %w", gameID, ErrNotScored)
	}
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, created_at) VALUES (?, ?, ?)",
		gameID, score, s.now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save %q: %w", gameID, err)
	}
	return res.LastInsertId()
}

// TopScores returns the best limit scores, highest first and oldest first
// on ties. A limit of zero or less means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.scores(gameID, limit)
}

// AllScores returns every score for the widget in TopScores order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.scores(gameID, -1) // LIMIT -1 is unbounded in SQLite
}

func (s *Store) scores(gameID string, limit int) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: scores for %q: %w", gameID, err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var ms int64
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &ms); err != nil {
			return nil, fmt.Errorf("storage: scores for %q: %w", gameID, err)
		}
		e.CreatedAt = time.UnixMilli(ms)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: scores for %q: %w", gameID, err)
	}
	return out, nil
}

// HighScore returns the best score for the widget, or 0 when none exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow("SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score for %q: %w", gameID, err)
	}
	return best, nil
}

// ClearScores deletes every score for the widget.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: clear %q: %w", gameID, err)
	}
	return nil
}

const statsColumns = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(score), 0), MAX(created_at)`

// scanStats fills gs from a row of statsColumns.
func scanStats(sc interface{ Scan(...any) error }, gs *GameStats, extra ...any) error {
	var last sql.NullInt64
	dest := append(extra, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &last)
	if err := sc.Scan(dest...); err != nil {
		return err
	}
	if last.Valid {
		gs.LastPlayed = time.UnixMilli(last.Int64)
	}
	return nil
}

// GetGameStats aggregates the widget's scores. A widget with no scores
// gets zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	gs := &GameStats{GameID: gameID}
	row := s.db.QueryRow("SELECT "+statsColumns+" FROM scores WHERE game_id = ?", gameID)
	if err := scanStats(row, gs); err != nil {
		return nil, fmt.Errorf("storage: stats for %q: %w", gameID, err)
	}
	return gs, nil
}

// GetAllGamesStats aggregates scores for every widget that has any.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT game_id, " + statsColumns + " FROM scores GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		gs := &GameStats{}
		if err := scanStats(rows, gs, &gs.GameID); err != nil {
			return nil, fmt.Errorf("storage: stats: %w", err)
		}
		all[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	return all, nil
}
