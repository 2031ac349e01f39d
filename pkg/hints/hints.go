// Package hints merges independent guess histories from a human player and
// an AI opponent into a single, maximally informative composite feedback
// row. It consumes only game history — rows of guessed letters with
// per-cell color feedback — and produces either the highest-entropy full row
// (dense mode) or a sparse per-position candidate map.
//
// Every entry point is a pure function of its inputs: all derived state
// (caps, bans, observations, candidates) is recomputed from scratch on each
// call, so identical history always yields an identical result and
// concurrent callers need no locking.
package hints

// Engine holds the configuration for hint synthesis. The zero value is not
// usable; construct with DefaultEngine.
type Engine struct {
	// Alphabet supplies letter normalization (case folding, Hebrew
	// final-form collapse).
	Alphabet Alphabet

	// KeepLonelyYellows retains a yellow whose letter was colored in exactly
	// one row even when it cannot be distinguished from noise. Inclusion
	// policy, on by default.
	KeepLonelyYellows bool
}

// DefaultEngine returns an Engine with the standard alphabet and policies.
func DefaultEngine() Engine {
	return Engine{Alphabet: DefaultAlphabet(), KeepLonelyYellows: true}
}

// BestCompositeRow returns the single highest-entropy row consistent with
// both histories, for rendering as a consolidated hint display. Empty
// history yields an empty row.
func (e Engine) BestCompositeRow(human, ai []Row) Row {
	rows, width := e.prepare(human, ai)
	if width == 0 {
		return EmptyRow(0)
	}
	cs := aggregate(rows)
	idx := observe(rows, width)
	candidates := buildCandidates(idx, cs, e.KeepLonelyYellows)
	return selectBestRow(enumerateRows(candidates, cs), candidates)
}

// SparseHintMap returns only the informative positions, without
// enumeration and without repositioning any yellow away from where it was
// originally observed. Intended for lightweight overlays.
func (e Engine) SparseHintMap(human, ai []Row) []PositionHint {
	rows, width := e.prepare(human, ai)
	if width == 0 {
		return nil
	}
	cs := aggregate(rows)
	return project(observe(rows, width), cs)
}

// prepare merges both histories into one normalized, right-padded row list.
// The board width is the widest row seen; ragged rows are padded with
// NoGuess cells ("no information yet", never an error).
func (e Engine) prepare(human, ai []Row) ([]Row, int) {
	width := 0
	for _, r := range human {
		if len(r) > width {
			width = len(r)
		}
	}
	for _, r := range ai {
		if len(r) > width {
			width = len(r)
		}
	}
	if width == 0 {
		return nil, 0
	}

	rows := make([]Row, 0, len(human)+len(ai))
	for _, src := range [][]Row{human, ai} {
		for _, r := range src {
			rows = append(rows, e.normalizeRow(r.padded(width)))
		}
	}
	return rows, width
}

// normalizeRow folds every cell letter through the alphabet. Cells whose
// letter normalizes to nothing are treated as unobserved.
func (e Engine) normalizeRow(r Row) Row {
	out := make(Row, len(r))
	for i, c := range r {
		l := e.Alphabet.NormalizeRune(rune(c.Letter))
		if l == NoLetter || c.Color == NoGuess {
			out[i] = Cell{}
			continue
		}
		out[i] = Cell{Letter: l, Color: c.Color}
	}
	return out
}

// BestCompositeRow runs the dense query with the default engine.
func BestCompositeRow(human, ai []Row) Row {
	return DefaultEngine().BestCompositeRow(human, ai)
}

// SparseHintMap runs the sparse query with the default engine.
func SparseHintMap(human, ai []Row) []PositionHint {
	return DefaultEngine().SparseHintMap(human, ai)
}
