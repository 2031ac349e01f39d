package bot

import (
	"github.com/talmalka/worduel/api/pkg/hints"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

// FrequencyStrategy scores each candidate by positional letter frequency
// over the remaining candidate set and guesses the highest scorer. Repeated
// letters in a word only count once toward its presence bonus, which steers
// early guesses toward words that probe more distinct letters.
type FrequencyStrategy struct{}

func (FrequencyStrategy) Name() string { return "frequency" }

func (FrequencyStrategy) NextGuess(m *wordle.Match, pool []string) (string, error) {
	cands := Candidates(m, pool)
	if len(cands) == 0 {
		return "", ErrNoCandidates
	}
	if len(cands) == 1 {
		return cands[0], nil
	}

	positional := make([]map[hints.Letter]int, m.Width)
	for i := range positional {
		positional[i] = make(map[hints.Letter]int)
	}
	presence := make(map[hints.Letter]int)
	for _, w := range cands {
		seen := make(map[hints.Letter]bool)
		for i, r := range []rune(w) {
			l := hints.Letter(r)
			positional[i][l]++
			if !seen[l] {
				presence[l]++
				seen[l] = true
			}
		}
	}

	best := ""
	bestScore := -1
	for _, w := range cands {
		score := 0
		seen := make(map[hints.Letter]bool)
		for i, r := range []rune(w) {
			l := hints.Letter(r)
			score += positional[i][l]
			if !seen[l] {
				score += presence[l]
				seen[l] = true
			}
		}
		// Ties break to the lexicographically smaller word so replays of the
		// same match are reproducible.
		if score > bestScore || (score == bestScore && w < best) {
			best, bestScore = w, score
		}
	}
	return best, nil
}
