package history

import (
	"blackjack-server/pkg/blackjack"
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory keeps the most recent hands in memory
type Memory struct {
	lock    sync.RWMutex
	records []*Record
	limit   int
}

// NewMemory returns a recorder that keeps up to limit hands
func NewMemory(limit int) *Memory {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	return &Memory{limit: limit}
}

func newRecord(sessionID string, result *blackjack.HandResult) *Record {
	return &Record{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Hand:      result,
	}
}

// RecordHand stores the hand, dropping the oldest once the limit is reached
func (m *Memory) RecordHand(_ context.Context, sessionID string, result *blackjack.HandResult) (*Record, error) {
	record := newRecord(sessionID, result)

	m.lock.Lock()
	defer m.lock.Unlock()

	records := append(m.records, record)
	if count := len(records); count > m.limit {
		records = records[count-m.limit:]
	}

	m.records = records
	return record, nil
}

// Recent returns up to limit hands, newest first
func (m *Memory) Recent(_ context.Context, limit int) ([]*Record, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if limit <= 0 || limit > len(m.records) {
		limit = len(m.records)
	}

	records := make([]*Record, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, m.records[i])
	}

	return records, nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
