package hints

import "sort"

// buildCandidates derives the feasible colored-letter options per position
// for dense-mode enumeration.
//
// Per position: banned letters are dropped first. Any green observation locks
// the position — only the green pair(s) survive. Otherwise yellows are kept
// while their letter has residual cap capacity beyond the greens already
// placed elsewhere, and only when they carry new information: the secret
// needs more copies than greens account for, or the letter was colored in
// exactly one row ever (the "lonely" signal, a tunable inclusion policy).
// Grays survive only at positions with no colored candidate at all, at most
// one per letter, as "known absent here" markers.
func buildCandidates(idx obsIndex, cs constraints, keepLonelyYellows bool) [][]Cell {
	greens := idx.greensByLetter()

	candidates := make([][]Cell, len(idx))
	for j, set := range idx {
		var greenCells, yellowCells, grayCells []Cell
		seenGray := make(map[Letter]bool)

		for o := range set {
			if cs.banned[o.letter] {
				continue
			}
			cell := Cell{Letter: o.letter, Color: o.color}
			switch o.color {
			case ExactMatch:
				greenCells = append(greenCells, cell)
			case PartialMatch:
				placed := len(greens[o.letter])
				if cs.cap(o.letter)-placed <= 0 {
					continue
				}
				if cs.maxColored[o.letter] <= placed &&
					!(keepLonelyYellows && cs.coloredRows[o.letter] == 1) {
					continue
				}
				yellowCells = append(yellowCells, cell)
			case NoMatch:
				if !seenGray[o.letter] {
					seenGray[o.letter] = true
					grayCells = append(grayCells, cell)
				}
			}
		}

		switch {
		case len(greenCells) > 0:
			candidates[j] = greenCells
		case len(yellowCells) > 0:
			candidates[j] = yellowCells
		default:
			candidates[j] = grayCells
		}
		sortCells(candidates[j])
	}
	return candidates
}

// sortCells orders cells by descending color priority, then by letter, so
// candidate lists (and everything derived from them) are deterministic.
func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, k int) bool {
		if cells[i].Color != cells[k].Color {
			return cells[i].Color > cells[k].Color
		}
		return cells[i].Letter < cells[k].Letter
	})
}
