package hints

import "testing"

func TestEnumerateRows_GreensForced(t *testing.T) {
	candidates := [][]Cell{
		{{Letter: 'a', Color: ExactMatch}, {Letter: 'b', Color: PartialMatch}},
		{{Letter: 'c', Color: PartialMatch}},
	}
	cs := aggregate(nil)

	rows := enumerateRows(candidates, cs)
	for _, r := range rows {
		if r[0].Letter != 'a' || r[0].Color != ExactMatch {
			t.Errorf("row %s does not honor the forced green at position 0", r.Key())
		}
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (green forced, single yellow)", len(rows))
	}
}

func TestEnumerateRows_CapPruning(t *testing.T) {
	// e is capped to 1: a path placing it twice must be pruned.
	history := []Row{row(t, "eerie", "gxxxx")}
	cs := aggregate(history)
	candidates := [][]Cell{
		{{Letter: 'e', Color: ExactMatch}},
		{{Letter: 'e', Color: PartialMatch}},
	}

	for _, r := range enumerateRows(candidates, cs) {
		n := 0
		for _, c := range r {
			if c.Letter == 'e' && c.Color.colored() {
				n++
			}
		}
		if n > 1 {
			t.Errorf("row %s exceeds cap(e)=1", r.Key())
		}
	}
}

func TestEnumerateRows_OneGrayPerLetter(t *testing.T) {
	candidates := [][]Cell{
		{{Letter: 'q', Color: NoMatch}},
		{{Letter: 'q', Color: NoMatch}},
		{{Letter: 'z', Color: PartialMatch}},
	}
	cs := aggregate(nil)

	for _, r := range enumerateRows(candidates, cs) {
		grays := 0
		for _, c := range r {
			if c.Letter == 'q' && c.Color == NoMatch {
				grays++
			}
		}
		if grays > 1 {
			t.Errorf("row %s restates the absence of q twice", r.Key())
		}
	}
}

func TestEnumerateRows_DiscardsUninformativeRows(t *testing.T) {
	// All-gray assignments carry no information and are dropped.
	candidates := [][]Cell{
		{{Letter: 'q', Color: NoMatch}},
		{{Letter: 'w', Color: NoMatch}},
	}
	if rows := enumerateRows(candidates, aggregate(nil)); len(rows) != 0 {
		t.Errorf("got %d rows from all-gray candidates, want 0", len(rows))
	}
}

func TestEnumerateRows_Dedup(t *testing.T) {
	// The same cell offered twice at a position must not duplicate rows.
	candidates := [][]Cell{
		{{Letter: 'a', Color: PartialMatch}, {Letter: 'a', Color: PartialMatch}},
	}
	rows := enumerateRows(candidates, aggregate(nil))
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1 after dedup", len(rows))
	}
}

func TestEnumerateRows_EmptyPositionsStayEmpty(t *testing.T) {
	candidates := [][]Cell{
		nil,
		{{Letter: 'a', Color: ExactMatch}},
		nil,
	}
	rows := enumerateRows(candidates, aggregate(nil))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := rows[0]
	if !r[0].Empty() || !r[2].Empty() {
		t.Errorf("row %s fills positions with no candidates", r.Key())
	}
	if r[1].Letter != 'a' || r[1].Color != ExactMatch {
		t.Errorf("row %s lost the green at position 1", r.Key())
	}
}
