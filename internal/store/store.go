// Package store handles SQLite persistence for scores.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuimole/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for high scores and round history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			achieved_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			played_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			key TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_s INTEGER NOT NULL,
			level INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_played_at ON rounds(played_at);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_key ON rounds(key);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Best returns the recorded high score for a key, zero when none exists.
func (s *Store) Best(ctx context.Context, key string) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx,
		`SELECT score FROM high_scores WHERE key = ?`, key).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return score, nil
}

// SetBest records a high score. The stored value is monotonically
// non-decreasing: a lower score never overwrites a higher one.
func (s *Store) SetBest(ctx context.Context, key string, score int, achievedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO high_scores (key, score, achieved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			score = excluded.score,
			achieved_at = excluded.achieved_at
		 WHERE excluded.score > high_scores.score`,
		key, score, achievedAt.Format(time.RFC3339Nano))
	return err
}

// InsertRound stores one completed round.
func (s *Store) InsertRound(ctx context.Context, rec model.RoundRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (played_at, mode, key, score, duration_s, level)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.PlayedAt.Format(time.RFC3339Nano),
		string(rec.Mode),
		rec.Key,
		rec.Score,
		int(rec.Duration/time.Second),
		rec.Level,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRounds returns round history matching the filter, oldest first.
func (s *Store) ListRounds(ctx context.Context, filter model.RoundFilter) ([]model.RoundRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, string(filter.Mode))
	}
	if filter.Key != "" {
		clauses = append(clauses, "key = ?")
		args = append(args, filter.Key)
	}
	if filter.Since != nil {
		clauses = append(clauses, "played_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, played_at, mode, key, score, duration_s, level
		FROM rounds
		WHERE %s
		ORDER BY played_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var rounds []model.RoundRecord
	for rows.Next() {
		var rec model.RoundRecord
		var playedAt, mode string
		var durationS int
		if err := rows.Scan(&rec.ID, &playedAt, &mode, &rec.Key, &rec.Score, &durationS, &rec.Level); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, playedAt)
		if err != nil {
			return nil, err
		}
		rec.PlayedAt = parsed
		rec.Mode = model.Mode(mode)
		rec.Duration = time.Duration(durationS) * time.Second
		rounds = append(rounds, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(rounds) > filter.Last {
		rounds = rounds[len(rounds)-filter.Last:]
	}
	return rounds, nil
}

// ListBests returns every recorded high score ordered by key.
func (s *Store) ListBests(ctx context.Context) ([]model.BestEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, score, achieved_at FROM high_scores ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var bests []model.BestEntry
	for rows.Next() {
		var entry model.BestEntry
		var achievedAt string
		if err := rows.Scan(&entry.Key, &entry.Score, &achievedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, achievedAt)
		if err != nil {
			return nil, err
		}
		entry.AchievedAt = parsed
		bests = append(bests, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bests, nil
}
