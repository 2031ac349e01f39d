package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/talmalka/worduel/api/internal/model"
)

// MatchRepo handles match database operations.
type MatchRepo struct {
	db *sql.DB
}

// NewMatchRepo creates a MatchRepo.
func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

const matchColumns = `id, creator_id, status, language, difficulty, bot_strategy, winner, secret,
	created_at, started_at, finished_at`

func scanMatch(row interface{ Scan(...any) error }) (*model.Match, error) {
	var m model.Match
	var winner sql.NullString
	err := row.Scan(&m.ID, &m.CreatorID, &m.Status, &m.Language, &m.Difficulty, &m.BotStrategy,
		&winner, &m.Secret, &m.CreatedAt, &m.StartedAt, &m.FinishedAt)
	if err != nil {
		return nil, err
	}
	m.Winner = winner.String
	return &m, nil
}

// Create inserts a new match in "waiting" status.
func (r *MatchRepo) Create(ctx context.Context, creatorID, language, difficulty, botStrategy, secret string) (*model.Match, error) {
	m, err := scanMatch(r.db.QueryRowContext(ctx,
		`INSERT INTO matches (creator_id, language, difficulty, bot_strategy, secret)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+matchColumns,
		creatorID, language, difficulty, botStrategy, secret,
	))
	if err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	return m, nil
}

// FindByID returns a match by ID, or nil when absent.
func (r *MatchRepo) FindByID(ctx context.Context, id string) (*model.Match, error) {
	m, err := scanMatch(r.db.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}
	return m, nil
}

// ListByUser returns the matches a user created, newest first.
func (r *MatchRepo) ListByUser(ctx context.Context, userID string) ([]model.Match, error) {
	return r.list(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE creator_id = $1 ORDER BY created_at DESC LIMIT 50`,
		userID)
}

// ListActive returns every match in "active" status, used for recovery after
// a restart.
func (r *MatchRepo) ListActive(ctx context.Context) ([]model.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches WHERE status = 'active'`)
}

func (r *MatchRepo) list(ctx context.Context, query string, args ...any) ([]model.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

// SetStarted flips a match to "active" and stamps the start time.
func (r *MatchRepo) SetStarted(ctx context.Context, matchID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE matches SET status = 'active', started_at = now() WHERE id = $1`, matchID)
	if err != nil {
		return fmt.Errorf("set match started: %w", err)
	}
	return nil
}

// SetFinished flips a match to "finished" and records the winner
// (empty string for a draw).
func (r *MatchRepo) SetFinished(ctx context.Context, matchID, winner string) error {
	var w sql.NullString
	if winner != "" {
		w = sql.NullString{String: winner, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE matches SET status = 'finished', winner = $1, finished_at = now() WHERE id = $2`,
		w, matchID)
	if err != nil {
		return fmt.Errorf("set match finished: %w", err)
	}
	return nil
}

// Delete removes a match and, via cascade, its guesses.
func (r *MatchRepo) Delete(ctx context.Context, matchID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}
