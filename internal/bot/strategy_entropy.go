package bot

import (
	"math"

	"github.com/talmalka/worduel/api/pkg/wordle"
)

// entropyPoolLimit caps the candidate set size the entropy computation runs
// over. Scoring is quadratic in the candidate count; past this limit the
// frequency heuristic is nearly as good and far cheaper.
const entropyPoolLimit = 600

// EntropyStrategy guesses the candidate whose feedback partitions the
// remaining candidates most evenly, maximizing expected information gain.
type EntropyStrategy struct{}

func (EntropyStrategy) Name() string { return "entropy" }

func (EntropyStrategy) NextGuess(m *wordle.Match, pool []string) (string, error) {
	cands := Candidates(m, pool)
	if len(cands) == 0 {
		return "", ErrNoCandidates
	}
	if len(cands) <= 2 {
		return cands[0], nil
	}
	if len(cands) > entropyPoolLimit {
		return FrequencyStrategy{}.NextGuess(m, pool)
	}

	best := ""
	bestEntropy := -1.0
	for _, guess := range cands {
		// Partition the candidates by the feedback pattern this guess would
		// produce against each of them as the secret.
		buckets := make(map[string]int)
		for _, secret := range cands {
			buckets[wordle.Score(secret, guess).Key()]++
		}
		h := 0.0
		total := float64(len(cands))
		for _, n := range buckets {
			p := float64(n) / total
			h -= p * math.Log2(p)
		}
		if h > bestEntropy || (h == bestEntropy && guess < best) {
			best, bestEntropy = guess, h
		}
	}
	return best, nil
}
