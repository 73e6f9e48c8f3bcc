package history

import (
	"blackjack-server/pkg/db"
)

// NewPostgres opens the database, runs the migrations and returns a recorder
// If migrationsPath is empty, the schema is assumed to be current
func NewPostgres(dsn, migrationsPath string) (Recorder, error) {
	dbh, err := db.Open(dsn)
	if err != nil {
		return nil, err
	}

	if migrationsPath != "" {
		if err := db.Migrate(dbh, migrationsPath); err != nil {
			_ = dbh.Close()
			return nil, err
		}
	}

	return &sqlStore{
		db: dbh,
		insertQuery: `
INSERT INTO hand_history (` + historyColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		recentQuery: `
SELECT ` + historyColumns + `
FROM hand_history
ORDER BY ended_ms DESC
LIMIT $1`,
	}, nil
}
