package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/talmalka/worduel/api/internal/model"
)

// GuessRepo handles persisted guess operations.
type GuessRepo struct {
	db *sql.DB
}

// NewGuessRepo creates a GuessRepo.
func NewGuessRepo(db *sql.DB) *GuessRepo {
	return &GuessRepo{db: db}
}

// Save inserts one scored guess.
func (r *GuessRepo) Save(ctx context.Context, matchID, participant, guess string, feedback json.RawMessage, turn int) (*model.GuessRecord, error) {
	var g model.GuessRecord
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO guesses (match_id, participant, guess, feedback, turn)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, match_id, participant, guess, feedback, turn, created_at`,
		matchID, participant, guess, []byte(feedback), turn,
	).Scan(&g.ID, &g.MatchID, &g.Participant, &g.Guess, (*[]byte)(&g.Feedback), &g.Turn, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save guess: %w", err)
	}
	return &g, nil
}

// ListByMatch returns every guess of a match in turn order, both participants
// interleaved.
func (r *GuessRepo) ListByMatch(ctx context.Context, matchID string) ([]model.GuessRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, match_id, participant, guess, feedback, turn, created_at
		 FROM guesses WHERE match_id = $1 ORDER BY turn, created_at`, matchID)
	if err != nil {
		return nil, fmt.Errorf("list guesses: %w", err)
	}
	defer rows.Close()

	var out []model.GuessRecord
	for rows.Next() {
		var g model.GuessRecord
		var fb []byte
		if err := rows.Scan(&g.ID, &g.MatchID, &g.Participant, &g.Guess, &fb, &g.Turn, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan guess: %w", err)
		}
		g.Feedback = json.RawMessage(fb)
		out = append(out, g)
	}
	return out, rows.Err()
}
