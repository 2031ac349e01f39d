package repository

import (
	"context"
	"encoding/json"

	"github.com/talmalka/worduel/api/internal/model"
)

// UserRepository defines user data operations.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByProviderID(ctx context.Context, provider, providerID string) (*model.User, error)
	Upsert(ctx context.Context, provider, providerID, displayName, avatarURL string) (*model.User, error)
	UpdateDisplayName(ctx context.Context, id, displayName string) error
}

// MatchRepository defines match data operations.
type MatchRepository interface {
	Create(ctx context.Context, creatorID, language, difficulty, botStrategy, secret string) (*model.Match, error)
	FindByID(ctx context.Context, id string) (*model.Match, error)
	ListByUser(ctx context.Context, userID string) ([]model.Match, error)
	ListActive(ctx context.Context) ([]model.Match, error)
	SetStarted(ctx context.Context, matchID string) error
	SetFinished(ctx context.Context, matchID, winner string) error
	Delete(ctx context.Context, matchID string) error
}

// GuessRepository defines persisted guess operations.
type GuessRepository interface {
	Save(ctx context.Context, matchID, participant, guess string, feedback json.RawMessage, turn int) (*model.GuessRecord, error)
	ListByMatch(ctx context.Context, matchID string) ([]model.GuessRecord, error)
}

// MatchCache defines live match state operations (Redis).
type MatchCache interface {
	SetMatchState(ctx context.Context, matchID string, state json.RawMessage) error
	GetMatchState(ctx context.Context, matchID string) (json.RawMessage, error)
	SetHint(ctx context.Context, matchID, mode string, guessCount int, payload json.RawMessage) error
	GetHint(ctx context.Context, matchID, mode string, guessCount int) (json.RawMessage, error)
	DeleteMatchData(ctx context.Context, matchID string) error
}
