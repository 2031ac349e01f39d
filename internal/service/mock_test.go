package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/talmalka/worduel/api/internal/model"
)

type mockMatchRepo struct {
	matches map[string]*model.Match
}

func newMockMatchRepo() *mockMatchRepo {
	return &mockMatchRepo{matches: make(map[string]*model.Match)}
}

func (m *mockMatchRepo) Create(_ context.Context, creatorID, language, difficulty, botStrategy, secret string) (*model.Match, error) {
	mt := &model.Match{
		ID:          fmt.Sprintf("match-%d", len(m.matches)+1),
		CreatorID:   creatorID,
		Status:      "waiting",
		Language:    language,
		Difficulty:  difficulty,
		BotStrategy: botStrategy,
		Secret:      secret,
		CreatedAt:   time.Now(),
	}
	m.matches[mt.ID] = mt
	return mt, nil
}

func (m *mockMatchRepo) FindByID(_ context.Context, id string) (*model.Match, error) {
	mt, ok := m.matches[id]
	if !ok {
		return nil, nil
	}
	cp := *mt
	return &cp, nil
}

func (m *mockMatchRepo) ListByUser(_ context.Context, userID string) ([]model.Match, error) {
	var out []model.Match
	for _, mt := range m.matches {
		if mt.CreatorID == userID {
			out = append(out, *mt)
		}
	}
	return out, nil
}

func (m *mockMatchRepo) ListActive(_ context.Context) ([]model.Match, error) {
	var out []model.Match
	for _, mt := range m.matches {
		if mt.Status == "active" {
			out = append(out, *mt)
		}
	}
	return out, nil
}

func (m *mockMatchRepo) SetStarted(_ context.Context, matchID string) error {
	mt, ok := m.matches[matchID]
	if !ok {
		return fmt.Errorf("match %s not found", matchID)
	}
	mt.Status = "active"
	return nil
}

func (m *mockMatchRepo) SetFinished(_ context.Context, matchID, winner string) error {
	mt, ok := m.matches[matchID]
	if !ok {
		return fmt.Errorf("match %s not found", matchID)
	}
	mt.Status = "finished"
	mt.Winner = winner
	return nil
}

func (m *mockMatchRepo) Delete(_ context.Context, matchID string) error {
	delete(m.matches, matchID)
	return nil
}

type mockGuessRepo struct {
	records map[string][]model.GuessRecord
}

func newMockGuessRepo() *mockGuessRepo {
	return &mockGuessRepo{records: make(map[string][]model.GuessRecord)}
}

func (m *mockGuessRepo) Save(_ context.Context, matchID, participant, guess string, feedback json.RawMessage, turn int) (*model.GuessRecord, error) {
	rec := model.GuessRecord{
		ID:          fmt.Sprintf("guess-%d", len(m.records[matchID])+1),
		MatchID:     matchID,
		Participant: participant,
		Guess:       guess,
		Feedback:    feedback,
		Turn:        turn,
		CreatedAt:   time.Now(),
	}
	m.records[matchID] = append(m.records[matchID], rec)
	return &rec, nil
}

func (m *mockGuessRepo) ListByMatch(_ context.Context, matchID string) ([]model.GuessRecord, error) {
	return append([]model.GuessRecord(nil), m.records[matchID]...), nil
}

type mockCache struct {
	states map[string]json.RawMessage
	hints  map[string]json.RawMessage
}

func newMockCache() *mockCache {
	return &mockCache{
		states: make(map[string]json.RawMessage),
		hints:  make(map[string]json.RawMessage),
	}
}

func (m *mockCache) SetMatchState(_ context.Context, matchID string, state json.RawMessage) error {
	m.states[matchID] = state
	return nil
}

func (m *mockCache) GetMatchState(_ context.Context, matchID string) (json.RawMessage, error) {
	return m.states[matchID], nil
}

func hintCacheKey(matchID, mode string, guessCount int) string {
	return fmt.Sprintf("%s:%s:%d", matchID, mode, guessCount)
}

func (m *mockCache) SetHint(_ context.Context, matchID, mode string, guessCount int, payload json.RawMessage) error {
	m.hints[hintCacheKey(matchID, mode, guessCount)] = payload
	return nil
}

func (m *mockCache) GetHint(_ context.Context, matchID, mode string, guessCount int) (json.RawMessage, error) {
	return m.hints[hintCacheKey(matchID, mode, guessCount)], nil
}

func (m *mockCache) DeleteMatchData(_ context.Context, matchID string) error {
	delete(m.states, matchID)
	return nil
}
