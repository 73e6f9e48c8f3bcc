// Package history records the result of every completed hand
package history

import (
	"blackjack-server/pkg/blackjack"
	"context"
	"fmt"
	"strings"
)

// DefaultRecentLimit is how many hands Recent returns when no limit is given
const DefaultRecentLimit = 100

// Record is a completed hand
type Record struct {
	ID        string                `json:"id"`
	SessionID string                `json:"sessionId"`
	Hand      *blackjack.HandResult `json:"hand"`
}

// Recorder stores completed hands
// Implementations must be safe for concurrent use; each session records from its own goroutine
type Recorder interface {
	// RecordHand stores the result of a hand played in the given session
	RecordHand(ctx context.Context, sessionID string, result *blackjack.HandResult) (*Record, error)

	// Recent returns up to limit hands, newest first
	Recent(ctx context.Context, limit int) ([]*Record, error)

	Close() error
}

// Options selects and configures a Recorder
type Options struct {
	// Driver is one of "", "none", "memory", "postgres" or "sqlite"
	Driver         string
	DSN            string
	MigrationsPath string
	RecentLimit    int
}

// New returns the recorder for the configured driver
func New(opts Options) (Recorder, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", "none":
		return Noop{}, nil
	case "memory":
		return NewMemory(opts.RecentLimit), nil
	case "postgres":
		return NewPostgres(opts.DSN, opts.MigrationsPath)
	case "sqlite":
		return NewSQLite(opts.DSN)
	}

	return nil, fmt.Errorf("unknown history driver: %s", opts.Driver)
}

// Noop discards every hand
type Noop struct{}

// RecordHand returns the record without storing it
func (Noop) RecordHand(_ context.Context, sessionID string, result *blackjack.HandResult) (*Record, error) {
	return newRecord(sessionID, result), nil
}

// Recent always returns an empty list
func (Noop) Recent(context.Context, int) ([]*Record, error) {
	return []*Record{}, nil
}

// Close is a no-op
func (Noop) Close() error {
	return nil
}
