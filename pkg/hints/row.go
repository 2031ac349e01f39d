package hints

import "strings"

// LetterColor is the per-cell feedback for a guessed letter.
type LetterColor int

const (
	// NoGuess marks a cell that carries no observation at all.
	NoGuess LetterColor = iota
	// NoMatch (gray): no unaccounted copies of the letter exist in the secret.
	NoMatch
	// PartialMatch (yellow): the letter is present but not at this position.
	PartialMatch
	// ExactMatch (green): the letter is correct at this exact position.
	ExactMatch
)

// String returns the color name used in JSON payloads and test output.
func (c LetterColor) String() string {
	switch c {
	case ExactMatch:
		return "green"
	case PartialMatch:
		return "yellow"
	case NoMatch:
		return "gray"
	default:
		return "none"
	}
}

// colored reports whether the cell feedback confirms the letter's presence.
func (c LetterColor) colored() bool {
	return c == ExactMatch || c == PartialMatch
}

// Cell pairs a normalized letter with its feedback color.
type Cell struct {
	Letter Letter      `json:"letter"`
	Color  LetterColor `json:"color"`
}

// Empty reports whether the cell carries no observation.
func (c Cell) Empty() bool {
	return c.Letter == NoLetter || c.Color == NoGuess
}

// Row is one completed guess by one participant: a fixed-width ordered
// sequence of cells. Rows are treated as immutable once recorded.
type Row []Cell

// Key returns a canonical string encoding of the row, used for
// deduplication and as the deterministic tie-break ordering.
func (r Row) Key() string {
	var b strings.Builder
	for _, c := range r {
		if c.Empty() {
			b.WriteByte('.')
			b.WriteByte('0')
			continue
		}
		b.WriteRune(rune(c.Letter))
		b.WriteByte(byte('0' + int(c.Color)))
	}
	return b.String()
}

// EmptyRow returns an all-NoGuess row of the given width.
func EmptyRow(width int) Row {
	return make(Row, width)
}

// padded right-pads a ragged row with NoGuess cells up to width. Rows already
// at width are returned unchanged.
func (r Row) padded(width int) Row {
	if len(r) >= width {
		return r
	}
	out := make(Row, width)
	copy(out, r)
	return out
}

// PositionHint is one entry of the sparse hint map: the feasible colored
// cells for a single board position. Positions with nothing informative are
// omitted from sparse output entirely.
type PositionHint struct {
	Pos   int    `json:"pos"`
	Cells []Cell `json:"cells"`
}
