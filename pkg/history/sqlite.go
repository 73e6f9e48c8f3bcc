package history

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // needed
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS hand_history (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    hand_number INTEGER NOT NULL,
    outcome INTEGER NOT NULL,
    player_score INTEGER NOT NULL,
    player_hand TEXT NOT NULL,
    dealer_score INTEGER NOT NULL,
    dealer_hand TEXT NOT NULL,
    ended_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS hand_history_ended_ms_idx ON hand_history (ended_ms DESC);`

// NewSQLite opens (or creates) a SQLite database file and returns a recorder
// The path ":memory:" keeps the history for the life of the process.
func NewSQLite(path string) (Recorder, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("empty sqlite database path")
	}

	if path != ":memory:" {
		if parent := filepath.Dir(path); parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// a single connection keeps an in-memory database alive and serializes writers
	dbh.SetMaxOpenConns(1)
	dbh.SetMaxIdleConns(1)
	dbh.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, stmt := range []string{`PRAGMA busy_timeout = 5000;`, sqliteSchema} {
		if _, err := dbh.ExecContext(ctx, stmt); err != nil {
			_ = dbh.Close()
			return nil, err
		}
	}

	return &sqlStore{
		db: dbh,
		insertQuery: `
INSERT INTO hand_history (` + historyColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recentQuery: `
SELECT ` + historyColumns + `
FROM hand_history
ORDER BY ended_ms DESC
LIMIT ?`,
	}, nil
}
