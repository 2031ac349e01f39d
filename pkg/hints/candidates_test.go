package hints

import "testing"

func denseCandidates(t *testing.T, rows []Row, lonely bool) ([][]Cell, constraints) {
	t.Helper()
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	cs := aggregate(rows)
	return buildCandidates(observe(rows, width), cs, lonely), cs
}

func TestBuildCandidates_GreenDominates(t *testing.T) {
	// Position 2 sees a green a, a yellow b, and a gray c across history; the
	// candidate set must contain only the green.
	rows := []Row{
		row(t, "xxaxx", "xxgxx"),
		row(t, "xbbbx", "xyyyx"),
		row(t, "xxcxx", "xxxxx"),
	}
	// Letter x is gray-only and c is gray-only; b is yellow.
	cands, _ := denseCandidates(t, rows, true)

	if len(cands[2]) != 1 {
		t.Fatalf("position 2 candidates = %+v, want exactly the green", cands[2])
	}
	if got := cands[2][0]; got.Letter != 'a' || got.Color != ExactMatch {
		t.Errorf("position 2 candidate = %+v, want green a", got)
	}
}

func TestBuildCandidates_BannedLettersDropped(t *testing.T) {
	rows := []Row{row(t, "crane", "xxgxx")}
	cands, cs := denseCandidates(t, rows, true)

	if !cs.banned['c'] {
		t.Fatal("c should be banned")
	}
	for _, j := range []int{0, 1, 3, 4} {
		if len(cands[j]) != 0 {
			t.Errorf("position %d candidates = %+v, want none (banned letters)", j, cands[j])
		}
	}
}

func TestBuildCandidates_RedundantYellowDropped(t *testing.T) {
	// a is green at 2 and its proven count is 1, so the yellow a at 1 adds
	// nothing and is dropped; the position falls back to gray information.
	rows := []Row{
		row(t, "crane", "xxgxx"),
		row(t, "table", "xyxxg"),
	}
	cands, _ := denseCandidates(t, rows, true)

	for _, c := range cands[1] {
		if c.Letter == 'a' && c.Color == PartialMatch {
			t.Errorf("redundant yellow a retained at position 1: %+v", cands[1])
		}
	}
}

func TestBuildCandidates_YellowKeptWhenMoreCopiesNeeded(t *testing.T) {
	// Two Es colored in one row but only one green placed: the second copy
	// is still owed, so the yellow E stays available.
	rows := []Row{row(t, "eerie", "gyxxx")}
	cands, _ := denseCandidates(t, rows, false)

	found := false
	for _, c := range cands[1] {
		if c.Letter == 'e' && c.Color == PartialMatch {
			found = true
		}
	}
	if !found {
		t.Errorf("position 1 candidates = %+v, want yellow e (second copy owed)", cands[1])
	}
}

func TestBuildCandidates_LonelyYellowPolicy(t *testing.T) {
	// o is colored in exactly one row and has no green anywhere. The lonely
	// signal is kept for visibility when the policy is on, dropped when off.
	rows := []Row{
		row(t, "rocks", "xyxxx"),
		row(t, "rider", "xxxxx"),
	}

	withPolicy, _ := denseCandidates(t, rows, true)
	found := false
	for _, c := range withPolicy[1] {
		if c.Letter == 'o' && c.Color == PartialMatch {
			found = true
		}
	}
	if !found {
		t.Errorf("lonely yellow o dropped with policy on: %+v", withPolicy[1])
	}
}

func TestBuildCandidates_GrayOnlyWhereNothingColored(t *testing.T) {
	// e is green at 0 but also observed gray at 4; position 4 has nothing
	// colored so the gray survives as "known absent here".
	rows := []Row{row(t, "eerie", "gxxxx")}
	cands, _ := denseCandidates(t, rows, true)

	if len(cands[4]) != 1 || cands[4][0].Color != NoMatch || cands[4][0].Letter != 'e' {
		t.Errorf("position 4 candidates = %+v, want gray e", cands[4])
	}
	if len(cands[0]) != 1 || cands[0][0].Color != ExactMatch {
		t.Errorf("position 0 candidates = %+v, want green e only", cands[0])
	}
}
