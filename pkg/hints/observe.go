package hints

// observation is a single deduplicated (letter, color) sighting at a position.
type observation struct {
	letter Letter
	color  LetterColor
}

// obsIndex records, per board position, the set of (letter, color) pairs ever
// seen there across all histories. The merge is additive, idempotent, and
// commutative, so the order rows arrive in never affects the result.
type obsIndex []map[observation]bool

// observe builds the position observation index over width positions,
// skipping NoGuess cells and empty letters.
func observe(rows []Row, width int) obsIndex {
	idx := make(obsIndex, width)
	for j := range idx {
		idx[j] = make(map[observation]bool)
	}
	for _, row := range rows {
		for j := 0; j < width && j < len(row); j++ {
			c := row[j]
			if c.Empty() {
				continue
			}
			idx[j][observation{letter: c.Letter, color: c.Color}] = true
		}
	}
	return idx
}

// greensByLetter returns, per letter, the set of positions locked green for
// it. Repeated greens at the same position across rows count once.
func (idx obsIndex) greensByLetter() map[Letter]map[int]bool {
	greens := make(map[Letter]map[int]bool)
	for j, set := range idx {
		for o := range set {
			if o.color != ExactMatch {
				continue
			}
			if greens[o.letter] == nil {
				greens[o.letter] = make(map[int]bool)
			}
			greens[o.letter][j] = true
		}
	}
	return greens
}

// yellowPositions returns, per letter, the sorted positions where the letter
// was ever observed as yellow.
func (idx obsIndex) yellowPositions() map[Letter][]int {
	yellows := make(map[Letter][]int)
	for j, set := range idx {
		for o := range set {
			if o.color == PartialMatch {
				yellows[o.letter] = append(yellows[o.letter], j)
			}
		}
	}
	// Positions were appended in ascending j order; each letter appears at
	// most once per position set, so the slices are already sorted.
	return yellows
}
