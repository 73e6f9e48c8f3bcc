package history

import (
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/db"
	"blackjack-server/pkg/deck"
	"context"
	"database/sql"
	"time"
)

const historyColumns = `id, session_id, hand_number, outcome, player_score, player_hand, dealer_score, dealer_hand, ended_ms`

// sqlStore is shared by the PostgreSQL and SQLite recorders; only the placeholders differ
type sqlStore struct {
	db          *sql.DB
	insertQuery string
	recentQuery string
}

func (s *sqlStore) RecordHand(ctx context.Context, sessionID string, result *blackjack.HandResult) (*Record, error) {
	record := newRecord(sessionID, result)

	_, err := s.db.ExecContext(ctx, s.insertQuery,
		record.ID,
		sessionID,
		result.HandNumber,
		int(result.Outcome),
		result.PlayerScore,
		result.PlayerHand.String(),
		result.DealerScore,
		result.DealerHand.String(),
		result.Ended.UnixMilli(),
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (s *sqlStore) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := s.db.QueryContext(ctx, s.recentQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Record, 0, limit)
	for rows.Next() {
		record, err := recordFromRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func recordFromRow(row db.Scanner) (*Record, error) {
	var r Record
	var h blackjack.HandResult
	var outcome int
	var playerHand, dealerHand string
	var endedMs int64

	if err := row.Scan(&r.ID, &r.SessionID, &h.HandNumber, &outcome, &h.PlayerScore, &playerHand, &h.DealerScore, &dealerHand, &endedMs); err != nil {
		return nil, err
	}

	cards, err := deck.CardsFromString(playerHand)
	if err != nil {
		return nil, err
	}
	h.PlayerHand = cards

	cards, err = deck.CardsFromString(dealerHand)
	if err != nil {
		return nil, err
	}
	h.DealerHand = cards

	h.Outcome = blackjack.Outcome(outcome)
	h.Ended = time.UnixMilli(endedMs)
	r.Hand = &h

	return &r, nil
}
