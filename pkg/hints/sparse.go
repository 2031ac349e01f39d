package hints

import "sort"

// project computes the sparse hint map without enumeration. Greens keep
// their locked positions. Each letter still owes some yellow placements —
// the colored count proven for it (bounded by its cap) minus the greens
// already confirmed — and those markers are distributed only across the
// positions where the letter was originally observed as yellow, capped at
// the distinct positions available. A letter is never rehomed
// to a position it was never actually seen at. Positions left with no greens
// and no yellows are omitted.
func project(idx obsIndex, cs constraints) []PositionHint {
	greens := idx.greensByLetter()
	yellowPos := idx.yellowPositions()

	cells := make([][]Cell, len(idx))
	greenLocked := make([]bool, len(idx))
	for j, set := range idx {
		for o := range set {
			if o.color == ExactMatch && !cs.banned[o.letter] {
				cells[j] = append(cells[j], Cell{Letter: o.letter, Color: ExactMatch})
				greenLocked[j] = true
			}
		}
	}

	letters := make([]Letter, 0, len(yellowPos))
	for l := range yellowPos {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, k int) bool { return letters[i] < letters[k] })

	for _, l := range letters {
		if cs.banned[l] {
			continue
		}
		proven := cs.maxColored[l]
		if c := cs.cap(l); c < proven {
			proven = c
		}
		owed := proven - len(greens[l])
		if owed <= 0 {
			continue
		}

		positions := yellowPos[l][:0:0]
		for _, j := range yellowPos[l] {
			if !greenLocked[j] {
				positions = append(positions, j)
			}
		}
		if len(positions) == 0 {
			continue
		}

		// More owed copies than distinct positions would only re-hit slots
		// already holding this letter, so the overflow is dropped.
		if owed > len(positions) {
			owed = len(positions)
		}
		for i := 0; i < owed; i++ {
			j := positions[i]
			cells[j] = append(cells[j], Cell{Letter: l, Color: PartialMatch})
		}
	}

	var out []PositionHint
	for j, pc := range cells {
		if len(pc) == 0 {
			continue
		}
		sortCells(pc)
		out = append(out, PositionHint{Pos: j, Cells: pc})
	}
	return out
}
