package hints

import "math"

// Color weights for entropy scoring: a confirmed position carries more
// information than a partial one.
const (
	greenWeight  = 3.0
	yellowWeight = 1.0
)

func colorWeight(c LetterColor) float64 {
	switch c {
	case ExactMatch:
		return greenWeight
	case PartialMatch:
		return yellowWeight
	default:
		return 0
	}
}

// positionDenominators sums the weights of the distinct colored candidates at
// each position. Positions with no colored candidates use 1 to avoid
// division by zero.
func positionDenominators(candidates [][]Cell) []float64 {
	denoms := make([]float64, len(candidates))
	for j, cands := range candidates {
		sum := 0.0
		for _, c := range cands {
			if c.Color.colored() {
				sum += colorWeight(c.Color)
			}
		}
		if sum == 0 {
			sum = 1
		}
		denoms[j] = sum
	}
	return denoms
}

// rowScore is the weighted information content of a candidate row: the sum
// over its colored cells of -log2(weight/denominator).
func rowScore(r Row, denoms []float64) float64 {
	score := 0.0
	for j, c := range r {
		if !c.Color.colored() {
			continue
		}
		score += -math.Log2(colorWeight(c.Color) / denoms[j])
	}
	return score
}

func greenCount(r Row) int {
	n := 0
	for _, c := range r {
		if c.Color == ExactMatch {
			n++
		}
	}
	return n
}

// selectBestRow picks the maximum-scoring row. Ties break by preferring more
// green cells, then by the canonical row key, so selection is a total order
// and identical history always yields an identical result. An empty
// candidate set resolves to an all-empty row.
func selectBestRow(rows []Row, candidates [][]Cell) Row {
	if len(rows) == 0 {
		return EmptyRow(len(candidates))
	}
	denoms := positionDenominators(candidates)

	best := rows[0]
	bestScore := rowScore(best, denoms)
	for _, r := range rows[1:] {
		s := rowScore(r, denoms)
		switch {
		case s > bestScore:
			best, bestScore = r, s
		case s == bestScore:
			bg, rg := greenCount(best), greenCount(r)
			if rg > bg || (rg == bg && r.Key() < best.Key()) {
				best = r
			}
		}
	}
	return best
}
