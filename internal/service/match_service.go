package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/talmalka/worduel/api/internal/model"
	"github.com/talmalka/worduel/api/internal/repository"
	"github.com/talmalka/worduel/api/internal/words"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrMatchNotWaiting = errors.New("match is not in waiting status")
	ErrMatchNotActive  = errors.New("match is not active")
	ErrNotCreator      = errors.New("only the creator can do that")
	ErrBadLanguage     = errors.New("unsupported language")
	ErrWordNotAllowed  = errors.New("word is not in the allowed list")
)

// MatchService handles match lifecycle operations.
type MatchService struct {
	matchRepo repository.MatchRepository
	guessRepo repository.GuessRepository
	cache     repository.MatchCache
	store     *words.Store
	bcast     Broadcaster
}

// NewMatchService creates a MatchService.
func NewMatchService(matchRepo repository.MatchRepository, guessRepo repository.GuessRepository, cache repository.MatchCache, store *words.Store, bcast Broadcaster) *MatchService {
	return &MatchService{matchRepo: matchRepo, guessRepo: guessRepo, cache: cache, store: store, bcast: bcast}
}

// CreateMatch creates a match in "waiting" status with a freshly drawn
// secret. The secret never leaves the server.
func (s *MatchService) CreateMatch(ctx context.Context, creatorID, language string, difficulty wordle.Difficulty, botStrategy string) (*model.Match, error) {
	supported := false
	for _, l := range words.Languages() {
		if l == language {
			supported = true
			break
		}
	}
	if !supported {
		return nil, ErrBadLanguage
	}
	switch difficulty {
	case wordle.Easy, wordle.Normal, wordle.Hard:
	default:
		difficulty = wordle.Normal
	}
	if botStrategy == "" {
		botStrategy = "frequency"
	}

	secret, err := s.store.RandomAnswer(language, difficulty.Width())
	if err != nil {
		return nil, fmt.Errorf("draw secret: %w", err)
	}
	return s.matchRepo.Create(ctx, creatorID, language, string(difficulty), botStrategy, secret)
}

// StartMatch flips a waiting match to active and seeds the live state.
func (s *MatchService) StartMatch(ctx context.Context, matchID, userID string) (*model.Match, error) {
	m, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	if m.CreatorID != userID {
		return nil, ErrNotCreator
	}
	if m.Status != "waiting" {
		return nil, ErrMatchNotWaiting
	}

	live := wordle.NewMatch(m.Secret, wordle.DefaultMaxGuesses)
	if err := s.saveLive(ctx, matchID, live); err != nil {
		return nil, err
	}
	if err := s.matchRepo.SetStarted(ctx, matchID); err != nil {
		return nil, err
	}
	s.bcast.BroadcastMatchEvent(matchID, "match.started", map[string]any{
		"match_id": matchID,
		"width":    live.Width,
	})
	return s.matchRepo.FindByID(ctx, matchID)
}

// GetMatch returns a match to its creator. Matches are single-player duels
// against the bot, so nobody else has a reason to read them.
func (s *MatchService) GetMatch(ctx context.Context, matchID, userID string) (*model.Match, error) {
	m, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	if m.CreatorID != userID {
		return nil, ErrNotCreator
	}
	return m, nil
}

// ListMyMatches returns the matches a user created.
func (s *MatchService) ListMyMatches(ctx context.Context, userID string) ([]model.Match, error) {
	return s.matchRepo.ListByUser(ctx, userID)
}

// DeleteMatch removes a match and its cached state.
func (s *MatchService) DeleteMatch(ctx context.Context, matchID, userID string) error {
	m, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMatchNotFound
	}
	if m.CreatorID != userID {
		return ErrNotCreator
	}
	if err := s.cache.DeleteMatchData(ctx, matchID); err != nil {
		return err
	}
	return s.matchRepo.Delete(ctx, matchID)
}

// Live returns the in-progress duel state for an active match, rebuilding it
// from the persisted guesses when the cache is cold.
func (s *MatchService) Live(ctx context.Context, m *model.Match) (*wordle.Match, error) {
	raw, err := s.cache.GetMatchState(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var live wordle.Match
		if err := json.Unmarshal(raw, &live); err != nil {
			return nil, fmt.Errorf("decode live match: %w", err)
		}
		return &live, nil
	}
	return s.rebuild(ctx, m)
}

// rebuild replays the persisted guesses against the secret. Scoring is
// deterministic, so the replayed state is identical to the lost one.
func (s *MatchService) rebuild(ctx context.Context, m *model.Match) (*wordle.Match, error) {
	live := wordle.NewMatch(m.Secret, wordle.DefaultMaxGuesses)
	records, err := s.guessRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if _, err := live.ApplyGuess(wordle.Participant(rec.Participant), rec.Guess); err != nil {
			return nil, fmt.Errorf("replay guess %d: %w", rec.Turn, err)
		}
	}
	if err := s.saveLive(ctx, m.ID, live); err != nil {
		return nil, err
	}
	return live, nil
}

func (s *MatchService) saveLive(ctx context.Context, matchID string, live *wordle.Match) error {
	raw, err := json.Marshal(live)
	if err != nil {
		return fmt.Errorf("encode live match: %w", err)
	}
	return s.cache.SetMatchState(ctx, matchID, raw)
}
