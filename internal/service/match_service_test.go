package service

import (
	"context"
	"testing"

	"github.com/talmalka/worduel/api/internal/words"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

type fixture struct {
	matches   *MatchService
	guesses   *GuessService
	hints     *HintService
	matchRepo *mockMatchRepo
	guessRepo *mockGuessRepo
	cache     *mockCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := words.Load("")
	if err != nil {
		t.Fatalf("words.Load: %v", err)
	}
	matchRepo := newMockMatchRepo()
	guessRepo := newMockGuessRepo()
	cache := newMockCache()
	matches := NewMatchService(matchRepo, guessRepo, cache, store, NoopBroadcaster{})
	return &fixture{
		matches:   matches,
		guesses:   NewGuessService(matches, matchRepo, guessRepo, store, NoopBroadcaster{}),
		hints:     NewHintService(matches, matchRepo, cache),
		matchRepo: matchRepo,
		guessRepo: guessRepo,
		cache:     cache,
	}
}

// startMatch creates and starts a match with a fixed secret so guess
// outcomes are predictable.
func (f *fixture) startMatch(t *testing.T, secret string) string {
	t.Helper()
	ctx := context.Background()
	m, err := f.matches.CreateMatch(ctx, "user-1", "en", wordle.Normal, "frequency")
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	f.matchRepo.matches[m.ID].Secret = secret
	if _, err := f.matches.StartMatch(ctx, m.ID, "user-1"); err != nil {
		t.Fatalf("StartMatch: %v", err)
	}
	return m.ID
}

func TestCreateMatchDrawsSecret(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.matches.CreateMatch(ctx, "user-1", "en", wordle.Normal, "")
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if m.Status != "waiting" {
		t.Errorf("status = %q, want waiting", m.Status)
	}
	if m.BotStrategy != "frequency" {
		t.Errorf("default strategy = %q, want frequency", m.BotStrategy)
	}
	if len([]rune(f.matchRepo.matches[m.ID].Secret)) != 5 {
		t.Errorf("secret width = %d, want 5", len([]rune(m.Secret)))
	}
}

func TestCreateMatchRejectsUnknownLanguage(t *testing.T) {
	f := newFixture(t)
	if _, err := f.matches.CreateMatch(context.Background(), "user-1", "fr", wordle.Normal, ""); err != ErrBadLanguage {
		t.Errorf("err = %v, want ErrBadLanguage", err)
	}
}

func TestStartMatchChecksCreatorAndStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m, err := f.matches.CreateMatch(ctx, "user-1", "en", wordle.Easy, "entropy")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.matches.StartMatch(ctx, m.ID, "user-2"); err != ErrNotCreator {
		t.Errorf("foreign start err = %v, want ErrNotCreator", err)
	}

	started, err := f.matches.StartMatch(ctx, m.ID, "user-1")
	if err != nil {
		t.Fatalf("StartMatch: %v", err)
	}
	if started.Status != "active" {
		t.Errorf("status = %q, want active", started.Status)
	}
	if f.cache.states[m.ID] == nil {
		t.Error("live state not seeded in cache")
	}

	if _, err := f.matches.StartMatch(ctx, m.ID, "user-1"); err != ErrMatchNotWaiting {
		t.Errorf("double start err = %v, want ErrMatchNotWaiting", err)
	}
}

func TestGetMatchChecksCreator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.startMatch(t, "crane")

	if _, err := f.matches.GetMatch(ctx, id, "user-2"); err != ErrNotCreator {
		t.Errorf("foreign read err = %v, want ErrNotCreator", err)
	}
	m, err := f.matches.GetMatch(ctx, id, "user-1")
	if err != nil {
		t.Fatalf("creator read: %v", err)
	}
	if m.ID != id {
		t.Errorf("match ID = %q, want %q", m.ID, id)
	}
	if _, err := f.matches.GetMatch(ctx, "no-such", "user-1"); err != ErrMatchNotFound {
		t.Errorf("missing match err = %v, want ErrMatchNotFound", err)
	}
}

func TestLiveRebuildsFromGuesses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.startMatch(t, "crane")

	if _, err := f.guesses.SubmitGuess(ctx, id, "user-1", "slate"); err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}

	// Drop the cached state and force a replay from the persisted guesses.
	delete(f.cache.states, id)

	m, _ := f.matchRepo.FindByID(ctx, id)
	live, err := f.matches.Live(ctx, m)
	if err != nil {
		t.Fatalf("Live: %v", err)
	}
	if got := len(live.Guesses[wordle.Human]); got != 1 {
		t.Errorf("replayed human guesses = %d, want 1", got)
	}
	if got := len(live.Guesses[wordle.Bot]); got != 1 {
		t.Errorf("replayed bot guesses = %d, want 1", got)
	}
	if f.cache.states[id] == nil {
		t.Error("rebuild should re-seed the cache")
	}
}

func TestDeleteMatchClearsCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.startMatch(t, "crane")

	if err := f.matches.DeleteMatch(ctx, id, "user-2"); err != ErrNotCreator {
		t.Errorf("foreign delete err = %v, want ErrNotCreator", err)
	}
	if err := f.matches.DeleteMatch(ctx, id, "user-1"); err != nil {
		t.Fatalf("DeleteMatch: %v", err)
	}
	if _, ok := f.matchRepo.matches[id]; ok {
		t.Error("match row not deleted")
	}
	if f.cache.states[id] != nil {
		t.Error("cached state not deleted")
	}
}
