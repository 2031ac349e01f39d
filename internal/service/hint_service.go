package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talmalka/worduel/api/internal/repository"
	"github.com/talmalka/worduel/api/pkg/hints"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

// Hint modes.
const (
	HintDense  = "dense"
	HintSparse = "sparse"
)

// DenseHint is the dense-mode response payload.
type DenseHint struct {
	Row hints.Row `json:"row"`
}

// SparseHint is the sparse-mode response payload.
type SparseHint struct {
	Positions []hints.PositionHint `json:"positions"`
}

// HintService synthesizes composite hints from both participants' feedback
// histories. Results are cached per match and guess count: the synthesis is
// a pure function of the history, so a cached payload never goes stale
// within the same guess count.
type HintService struct {
	matches   *MatchService
	matchRepo repository.MatchRepository
	cache     repository.MatchCache
	engine    hints.Engine
}

// NewHintService creates a HintService.
func NewHintService(matches *MatchService, matchRepo repository.MatchRepository, cache repository.MatchCache) *HintService {
	return &HintService{
		matches:   matches,
		matchRepo: matchRepo,
		cache:     cache,
		engine:    hints.DefaultEngine(),
	}
}

// Dense returns the single best composite row for the match.
func (s *HintService) Dense(ctx context.Context, matchID, userID string) (*DenseHint, error) {
	var out DenseHint
	err := s.hint(ctx, matchID, userID, HintDense, &out, func(human, ai []hints.Row) any {
		return DenseHint{Row: s.engine.BestCompositeRow(human, ai)}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Sparse returns the per-position candidate overlay for the match.
func (s *HintService) Sparse(ctx context.Context, matchID, userID string) (*SparseHint, error) {
	var out SparseHint
	err := s.hint(ctx, matchID, userID, HintSparse, &out, func(human, ai []hints.Row) any {
		return SparseHint{Positions: s.engine.SparseHintMap(human, ai)}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HintService) hint(ctx context.Context, matchID, userID, mode string, out any, compute func(human, ai []hints.Row) any) error {
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
	if m.Status != "active" {
		return ErrMatchNotActive
	}

	live, err := s.matches.Live(ctx, m)
	if err != nil {
		return err
	}
	guessCount := len(live.Guesses[wordle.Human]) + len(live.Guesses[wordle.Bot])

	if cached, err := s.cache.GetHint(ctx, matchID, mode, guessCount); err == nil && cached != nil {
		return json.Unmarshal(cached, out)
	}

	payload := compute(live.Histories[wordle.Human], live.Histories[wordle.Bot])
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode hint: %w", err)
	}
	if err := s.cache.SetHint(ctx, matchID, mode, guessCount, raw); err != nil {
		return fmt.Errorf("cache hint: %w", err)
	}
	return json.Unmarshal(raw, out)
}
