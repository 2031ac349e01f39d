package hints

// enumerator walks positions left to right, assigning one candidate per
// position while per-letter usage counters enforce the global caps along the
// current search path. Counters are incremented on descent and decremented on
// return, so no state is shared across branches.
type enumerator struct {
	candidates [][]Cell
	cs         constraints
	colored    map[Letter]int // colored placements along the current path
	gray       map[Letter]int // gray placements along the current path
	cur        Row
	seen       map[string]bool
	out        []Row
}

// enumerateRows produces every unique, internally consistent full row that
// can be assembled from the per-position candidates under the letter caps.
// Rows with no colored cell carry no information and are discarded.
func enumerateRows(candidates [][]Cell, cs constraints) []Row {
	e := &enumerator{
		candidates: candidates,
		cs:         cs,
		colored:    make(map[Letter]int),
		gray:       make(map[Letter]int),
		cur:        make(Row, len(candidates)),
		seen:       make(map[string]bool),
	}
	e.walk(0)
	return e.out
}

func (e *enumerator) walk(pos int) {
	if pos == len(e.cur) {
		e.accept()
		return
	}

	cands := e.candidates[pos]

	// Greens are never optional: when a position has a green candidate, the
	// yellow/gray alternatives there are pruned outright. Candidates are
	// sorted by descending color, so greens form a prefix.
	if len(cands) > 0 && cands[0].Color == ExactMatch {
		end := 0
		for end < len(cands) && cands[end].Color == ExactMatch {
			end++
		}
		cands = cands[:end]
	}

	explored := false
	for _, c := range cands {
		if c.Color.colored() {
			if e.colored[c.Letter]+1 > e.cs.cap(c.Letter) {
				continue
			}
			e.colored[c.Letter]++
			e.cur[pos] = c
			e.walk(pos + 1)
			e.colored[c.Letter]--
		} else {
			// A row should not restate "this letter is absent" twice.
			if e.gray[c.Letter] >= 1 {
				continue
			}
			e.gray[c.Letter]++
			e.cur[pos] = c
			e.walk(pos + 1)
			e.gray[c.Letter]--
		}
		explored = true
	}

	// Positions with no feasible candidate stay empty rather than dead-ending
	// the search.
	if !explored {
		e.cur[pos] = Cell{}
		e.walk(pos + 1)
	}
}

func (e *enumerator) accept() {
	informative := false
	for _, c := range e.cur {
		if c.Color.colored() {
			informative = true
			break
		}
	}
	if !informative {
		return
	}
	key := e.cur.Key()
	if e.seen[key] {
		return
	}
	e.seen[key] = true
	row := make(Row, len(e.cur))
	copy(row, e.cur)
	e.out = append(e.out, row)
}
