// Package wordle implements the duel rules: two participants (a human and a
// bot) guess the same secret word in parallel, and each guess is scored with
// the classic two-pass algorithm into the feedback rows the hints engine
// consumes.
package wordle

import (
	"errors"
	"strings"

	"github.com/talmalka/worduel/api/pkg/hints"
)

// Participant identifies one side of a duel.
type Participant string

const (
	Human Participant = "human"
	Bot   Participant = "bot"
)

// Difficulty selects the board width.
type Difficulty string

const (
	Easy   Difficulty = "easy"   // 4 letters
	Normal Difficulty = "normal" // 5 letters
	Hard   Difficulty = "hard"   // 6 letters
)

// Width returns the word length for the difficulty. Unknown difficulties
// fall back to Normal.
func (d Difficulty) Width() int {
	switch d {
	case Easy:
		return 4
	case Hard:
		return 6
	default:
		return 5
	}
}

var (
	ErrMatchFinished = errors.New("match already finished")
	ErrWrongWidth    = errors.New("guess has wrong length")
	ErrNotALetter    = errors.New("guess contains non-letter characters")
	ErrUnknownPlayer = errors.New("unknown participant")
	ErrOutOfTurn     = errors.New("participant has no guesses left")
)

// DefaultMaxGuesses is the per-participant guess budget.
const DefaultMaxGuesses = 6

// Match is the live state of a single duel.
type Match struct {
	Secret     string                       `json:"secret"` // normalized letters
	Width      int                          `json:"width"`
	MaxGuesses int                          `json:"max_guesses"`
	Guesses    map[Participant][]string     `json:"guesses"`
	Histories  map[Participant][]hints.Row  `json:"histories"`
	Finished   bool                         `json:"finished"`
	Winner     Participant                  `json:"winner,omitempty"` // empty until someone solves it
}

// NewMatch creates a match for the given secret. The secret is normalized
// through the alphabet; its length fixes the board width.
func NewMatch(secret string, maxGuesses int) *Match {
	norm := normalizeWord(secret)
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	return &Match{
		Secret:     norm,
		Width:      len([]rune(norm)),
		MaxGuesses: maxGuesses,
		Guesses:    map[Participant][]string{Human: {}, Bot: {}},
		Histories:  map[Participant][]hints.Row{Human: {}, Bot: {}},
	}
}

// ApplyGuess validates and scores a guess for one participant, appending the
// feedback row to that participant's history.
//
// The match finishes when a participant scores all greens (they win) or when
// both participants exhaust their guess budgets (no winner).
func (m *Match) ApplyGuess(p Participant, guess string) (hints.Row, error) {
	if m.Finished {
		return nil, ErrMatchFinished
	}
	if p != Human && p != Bot {
		return nil, ErrUnknownPlayer
	}
	if len(m.Guesses[p]) >= m.MaxGuesses {
		return nil, ErrOutOfTurn
	}

	norm := normalizeWord(guess)
	runes := []rune(norm)
	if len(runes) != m.Width {
		return nil, ErrWrongWidth
	}
	for _, r := range runes {
		if alphabet.NormalizeRune(r) == hints.NoLetter {
			return nil, ErrNotALetter
		}
	}

	row := Score(m.Secret, norm)
	m.Guesses[p] = append(m.Guesses[p], norm)
	m.Histories[p] = append(m.Histories[p], row)

	if allGreen(row) {
		m.Finished = true
		m.Winner = p
	} else if len(m.Guesses[Human]) >= m.MaxGuesses && len(m.Guesses[Bot]) >= m.MaxGuesses {
		m.Finished = true
	}
	return row, nil
}

// HistoryFor returns a participant's feedback rows.
func (m *Match) HistoryFor(p Participant) []hints.Row {
	return m.Histories[p]
}

// Solved reports whether the participant's last row is all green.
func (m *Match) Solved(p Participant) bool {
	h := m.Histories[p]
	return len(h) > 0 && allGreen(h[len(h)-1])
}

var alphabet = hints.DefaultAlphabet()

// Score runs the standard two-pass scoring of guess against secret.
//
// Pass 1 marks exact matches and counts the remaining secret letters. Pass 2
// resolves the rest: a remaining count yields yellow and decrements,
// otherwise gray. This handles repeated letters in both words correctly.
// Both words are expected normalized; Score normalizes defensively.
func Score(secret, guess string) hints.Row {
	s := []rune(normalizeWord(secret))
	g := []rune(normalizeWord(guess))

	n := len(g)
	row := make(hints.Row, n)
	remaining := make(map[rune]int)

	for i := 0; i < n; i++ {
		if i < len(s) && g[i] == s[i] {
			row[i] = hints.Cell{Letter: hints.Letter(g[i]), Color: hints.ExactMatch}
		} else if i < len(s) {
			remaining[s[i]]++
		}
	}
	for i := 0; i < n; i++ {
		if row[i].Color == hints.ExactMatch {
			continue
		}
		color := hints.NoMatch
		if remaining[g[i]] > 0 {
			remaining[g[i]]--
			color = hints.PartialMatch
		}
		row[i] = hints.Cell{Letter: hints.Letter(g[i]), Color: color}
	}
	return row
}

// normalizeWord folds every rune of a word through the alphabet, dropping
// whitespace.
func normalizeWord(w string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(w) {
		l := alphabet.NormalizeRune(r)
		if l == hints.NoLetter {
			continue
		}
		b.WriteRune(rune(l))
	}
	return b.String()
}

func allGreen(r hints.Row) bool {
	for _, c := range r {
		if c.Color != hints.ExactMatch {
			return false
		}
	}
	return len(r) > 0
}
