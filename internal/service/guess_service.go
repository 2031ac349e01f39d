package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talmalka/worduel/api/internal/bot"
	"github.com/talmalka/worduel/api/internal/model"
	"github.com/talmalka/worduel/api/internal/repository"
	"github.com/talmalka/worduel/api/internal/words"
	"github.com/talmalka/worduel/api/pkg/hints"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

// GuessResult is the outcome of one human guess and the bot's reply.
type GuessResult struct {
	Feedback    hints.Row  `json:"feedback"`
	BotFeedback hints.Row  `json:"bot_feedback,omitempty"`
	GuessNumber int        `json:"guess_number"`
	Finished    bool       `json:"finished"`
	Winner      string     `json:"winner,omitempty"`
	Solution    string     `json:"solution,omitempty"` // revealed only once finished
}

// GuessService scores human guesses and drives the bot's replies.
type GuessService struct {
	matches   *MatchService
	matchRepo repository.MatchRepository
	guessRepo repository.GuessRepository
	store     *words.Store
	bcast     Broadcaster
}

// NewGuessService creates a GuessService.
func NewGuessService(matches *MatchService, matchRepo repository.MatchRepository, guessRepo repository.GuessRepository, store *words.Store, bcast Broadcaster) *GuessService {
	return &GuessService{matches: matches, matchRepo: matchRepo, guessRepo: guessRepo, store: store, bcast: bcast}
}

// SubmitGuess validates and scores one human guess, then plays the bot's
// answering guess with the match's configured strategy. Both feedback rows
// are persisted and broadcast; the bot's guessed word itself stays hidden
// until the match ends.
func (s *GuessService) SubmitGuess(ctx context.Context, matchID, userID, guess string) (*GuessResult, error) {
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
	if m.Status != "active" {
		return nil, ErrMatchNotActive
	}

	live, err := s.matches.Live(ctx, m)
	if err != nil {
		return nil, err
	}

	if !s.store.IsAllowed(m.Language, live.Width, guess) {
		return nil, ErrWordNotAllowed
	}

	row, err := live.ApplyGuess(wordle.Human, guess)
	if err != nil {
		return nil, err
	}
	turn := len(live.Guesses[wordle.Human])
	if err := s.persist(ctx, matchID, wordle.Human, live.Guesses[wordle.Human][turn-1], row, turn); err != nil {
		return nil, err
	}

	result := &GuessResult{Feedback: row, GuessNumber: turn}

	// The bot answers every human guess until it solves the word or runs out
	// of budget.
	if !live.Finished && len(live.Guesses[wordle.Bot]) < live.MaxGuesses && !live.Solved(wordle.Bot) {
		botRow, err := s.playBot(ctx, m, live)
		if err != nil {
			return nil, err
		}
		result.BotFeedback = botRow
	}

	if err := s.matches.saveLive(ctx, matchID, live); err != nil {
		return nil, err
	}

	if live.Finished {
		winner := string(live.Winner)
		if err := s.matchRepo.SetFinished(ctx, matchID, winner); err != nil {
			return nil, err
		}
		result.Finished = true
		result.Winner = winner
		result.Solution = live.Secret
		s.bcast.BroadcastMatchEvent(matchID, "match.finished", map[string]any{
			"match_id": matchID,
			"winner":   winner,
			"solution": live.Secret,
		})
	} else {
		s.bcast.BroadcastMatchEvent(matchID, "guess.scored", map[string]any{
			"match_id":     matchID,
			"guess_number": turn,
			"feedback":     row,
			"bot_feedback": result.BotFeedback,
		})
	}
	return result, nil
}

// History returns both participants' persisted guesses. The bot's words are
// redacted while the match is running.
func (s *GuessService) History(ctx context.Context, matchID, userID string) ([]model.GuessRecord, error) {
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
	records, err := s.guessRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status != "finished" {
		for i := range records {
			if records[i].Participant == string(wordle.Bot) {
				records[i].Guess = ""
			}
		}
	}
	return records, nil
}

func (s *GuessService) playBot(ctx context.Context, m *model.Match, live *wordle.Match) (hints.Row, error) {
	strategy := bot.StrategyForName(m.BotStrategy)
	pool := s.store.Answers(m.Language, live.Width)
	word, err := strategy.NextGuess(live, pool)
	if err != nil {
		return nil, fmt.Errorf("bot guess: %w", err)
	}
	row, err := live.ApplyGuess(wordle.Bot, word)
	if err != nil {
		return nil, fmt.Errorf("apply bot guess: %w", err)
	}
	turn := len(live.Guesses[wordle.Bot])
	if err := s.persist(ctx, m.ID, wordle.Bot, word, row, turn); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *GuessService) persist(ctx context.Context, matchID string, p wordle.Participant, word string, row hints.Row, turn int) error {
	feedback, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}
	if _, err := s.guessRepo.Save(ctx, matchID, string(p), word, feedback, turn); err != nil {
		return err
	}
	return nil
}
