package bot

import (
	"github.com/talmalka/worduel/api/pkg/hints"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

// Candidates narrows the pool to words consistent with the bot's feedback so
// far: a word survives if, had it been the secret, every past guess would
// have produced exactly the feedback the bot received. Already-guessed words
// are excluded.
func Candidates(m *wordle.Match, pool []string) []string {
	guesses := m.Guesses[wordle.Bot]
	history := m.Histories[wordle.Bot]

	guessed := make(map[string]bool, len(guesses))
	for _, g := range guesses {
		guessed[g] = true
	}

	var out []string
	for _, w := range pool {
		if guessed[w] {
			continue
		}
		if consistent(w, guesses, history) {
			out = append(out, w)
		}
	}
	return out
}

func consistent(word string, guesses []string, history []hints.Row) bool {
	for i, g := range guesses {
		if wordle.Score(word, g).Key() != history[i].Key() {
			return false
		}
	}
	return true
}
