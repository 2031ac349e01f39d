package hints

import "math"

// unbounded is the cap value for letters with no occurrence evidence.
const unbounded = math.MaxInt32

// constraints is the per-letter evidence derived from every historical row:
// occurrence caps, ban flags, and the colored-count bookkeeping the candidate
// builder and sparse projector reason over.
type constraints struct {
	caps        map[Letter]int  // tightest proven occurrence cap; absent = unbounded
	maxColored  map[Letter]int  // largest colored count ever proven in a single row
	coloredRows map[Letter]int  // number of rows in which the letter was colored
	banned      map[Letter]bool // proven absent from the secret
}

// cap returns the effective occurrence cap for a letter. Banned letters are
// forced to 0 regardless of any other derived value.
func (cs constraints) cap(l Letter) int {
	if cs.banned[l] {
		return 0
	}
	if c, ok := cs.caps[l]; ok {
		return c
	}
	return unbounded
}

// rowTally is the per-row, per-letter color census used during aggregation.
type rowTally struct {
	green, yellow, gray int
}

// aggregate scans every row and derives occurrence caps and bans.
//
// Per row, per letter: a gray cell alongside a colored cell for the same
// letter in the same row is decisive — the secret holds exactly the colored
// count, so the cap tightens to it. A row where the letter is only gray is
// recorded as gray-only evidence. A letter is banned iff it has gray-only
// evidence and was never colored anywhere. Caps never drop below the largest
// colored count ever proven in a single row.
func aggregate(rows []Row) constraints {
	cs := constraints{
		caps:        make(map[Letter]int),
		maxColored:  make(map[Letter]int),
		coloredRows: make(map[Letter]int),
		banned:      make(map[Letter]bool),
	}
	grayOnly := make(map[Letter]bool)

	for _, row := range rows {
		tallies := make(map[Letter]*rowTally)
		for _, c := range row {
			if c.Empty() {
				continue
			}
			t := tallies[c.Letter]
			if t == nil {
				t = &rowTally{}
				tallies[c.Letter] = t
			}
			switch c.Color {
			case ExactMatch:
				t.green++
			case PartialMatch:
				t.yellow++
			case NoMatch:
				t.gray++
			}
		}

		for l, t := range tallies {
			colored := t.green + t.yellow
			if colored > 0 {
				cs.coloredRows[l]++
				if colored > cs.maxColored[l] {
					cs.maxColored[l] = colored
				}
				if t.gray > 0 {
					// Decisive: the gray proves the extra guessed copies are
					// not present, so the true count equals the colored count.
					if cur, ok := cs.caps[l]; !ok || colored < cur {
						cs.caps[l] = colored
					}
				}
			} else if t.gray > 0 {
				grayOnly[l] = true
			}
		}
	}

	for l := range grayOnly {
		if cs.coloredRows[l] == 0 {
			cs.banned[l] = true
			cs.caps[l] = 0
		}
	}

	// A letter cannot be capped below the largest count it was ever proven to
	// have. Letters with colored evidence but no decisive row keep an
	// unbounded cap.
	for l, max := range cs.maxColored {
		if cs.banned[l] {
			continue
		}
		if cur, ok := cs.caps[l]; ok && cur < max {
			cs.caps[l] = max
		}
	}

	return cs
}
