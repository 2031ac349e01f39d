// Package bot implements the guessing strategies the bot side of a duel can
// play with, from uniform random picks to ONNX-backed neural inference.
package bot

import (
	"errors"
	"log"

	"github.com/talmalka/worduel/api/pkg/wordle"
)

// Strategy picks the bot's next guess in a duel.
//
// pool is the answer list for the match's language and width; strategies
// narrow it to the words consistent with the bot's own feedback history.
type Strategy interface {
	Name() string
	NextGuess(m *wordle.Match, pool []string) (string, error)
}

// ErrNoCandidates is returned when the pool has no word left to guess.
var ErrNoCandidates = errors.New("bot: no candidate words remain")

// StrategyForName returns the strategy for a match's bot_strategy setting.
func StrategyForName(name string) Strategy {
	switch name {
	case "random":
		return &RandomStrategy{}
	case "entropy":
		return &EntropyStrategy{}
	case "neural":
		return newGonnxOrFallback()
	default:
		return &FrequencyStrategy{}
	}
}

// newGonnxOrFallback attempts to create a GonnxStrategy. If the model path is
// not configured or loading fails, it falls back to EntropyStrategy so the
// match can proceed.
func newGonnxOrFallback() Strategy {
	s, err := NewGonnxStrategy(GonnxModelPath)
	if err != nil {
		log.Printf("bot: neural strategy requested but model load failed: %v; falling back to entropy", err)
		return &EntropyStrategy{}
	}
	return s
}

// --- RandomStrategy ---

// RandomStrategy guesses a uniformly random word that is still consistent
// with its feedback so far.
type RandomStrategy struct{}

func (RandomStrategy) Name() string { return "random" }

func (RandomStrategy) NextGuess(m *wordle.Match, pool []string) (string, error) {
	cands := Candidates(m, pool)
	if len(cands) == 0 {
		return "", ErrNoCandidates
	}
	return cands[botIntn(len(cands))], nil
}
