package hints

import (
	"reflect"
	"testing"
)

// row builds a Row from parallel letter and color strings.
// Colors: g=green, y=yellow, x=gray, .=no guess.
func row(t *testing.T, letters, colors string) Row {
	t.Helper()
	lr := []rune(letters)
	cr := []rune(colors)
	if len(lr) != len(cr) {
		t.Fatalf("row: letters %q and colors %q length mismatch", letters, colors)
	}
	r := make(Row, len(lr))
	for i := range lr {
		var c LetterColor
		switch cr[i] {
		case 'g':
			c = ExactMatch
		case 'y':
			c = PartialMatch
		case 'x':
			c = NoMatch
		case '.':
			r[i] = Cell{}
			continue
		default:
			t.Fatalf("row: unknown color %q", cr[i])
		}
		r[i] = Cell{Letter: Letter(lr[i]), Color: c}
	}
	return r
}

func TestBestCompositeRow_CraneTable(t *testing.T) {
	// Human guessed CRANE (only A at index 2 correct); the bot guessed TABLE
	// (A present elsewhere, E correct at index 4).
	human := []Row{row(t, "crane", "xxgxx")}
	ai := []Row{row(t, "table", "xyxxg")}

	got := BestCompositeRow(human, ai)
	if len(got) != 5 {
		t.Fatalf("expected width 5, got %d", len(got))
	}
	if got[2].Letter != 'a' || got[2].Color != ExactMatch {
		t.Errorf("index 2 = %+v, want green a", got[2])
	}
	if got[4].Letter != 'e' || got[4].Color != ExactMatch {
		t.Errorf("index 4 = %+v, want green e", got[4])
	}
	// Grays only contributed no colored signal at 0 and 3; those letters are
	// banned and the positions stay empty.
	for _, j := range []int{0, 3} {
		if !got[j].Empty() {
			t.Errorf("index %d = %+v, want empty", j, got[j])
		}
	}
	// If a yellow A survives anywhere it must not shadow the locked greens.
	for _, j := range []int{2, 4} {
		if got[j].Color == PartialMatch {
			t.Errorf("index %d holds a yellow over a green-locked position", j)
		}
	}
}

func TestSparseHintMap_CraneTable(t *testing.T) {
	human := []Row{row(t, "crane", "xxgxx")}
	ai := []Row{row(t, "table", "xyxxg")}

	got := SparseHintMap(human, ai)

	byPos := make(map[int][]Cell)
	for _, ph := range got {
		byPos[ph.Pos] = ph.Cells
	}
	if cells := byPos[2]; len(cells) != 1 || cells[0] != (Cell{Letter: 'a', Color: ExactMatch}) {
		t.Errorf("pos 2 = %+v, want single green a", cells)
	}
	if cells := byPos[4]; len(cells) != 1 || cells[0] != (Cell{Letter: 'e', Color: ExactMatch}) {
		t.Errorf("pos 4 = %+v, want single green e", cells)
	}
	for _, j := range []int{0, 3} {
		if _, ok := byPos[j]; ok {
			t.Errorf("pos %d present in sparse map, want omitted", j)
		}
	}
	// A yellow A, if retained, stays at its original slot (index 1) and is
	// never rehomed.
	for pos, cells := range byPos {
		for _, c := range cells {
			if c.Letter == 'a' && c.Color == PartialMatch && pos != 1 {
				t.Errorf("yellow a rehomed to pos %d, original slot is 1", pos)
			}
		}
	}
}

func TestBestCompositeRow_DoubleLetterCap(t *testing.T) {
	// ELBOW: E green at 0, one E total. A second row guesses E twice — one
	// green, one gray — which proves the secret holds exactly one E.
	human := []Row{row(t, "elbow", "gxxxx")}
	ai := []Row{row(t, "eerie", "gxxxx")}

	rows, width := DefaultEngine().prepare(human, ai)
	cs := aggregate(rows)
	if got := cs.cap('e'); got != 1 {
		t.Fatalf("cap(e) = %d, want 1", got)
	}

	idx := observe(rows, width)
	candidates := buildCandidates(idx, cs, true)
	for _, r := range enumerateRows(candidates, cs) {
		n := 0
		for _, c := range r {
			if c.Letter == 'e' && c.Color.colored() {
				n++
			}
		}
		if n > 1 {
			t.Errorf("row %s places e colored %d times, cap is 1", r.Key(), n)
		}
	}
}

func TestBestCompositeRow_EmptyHistory(t *testing.T) {
	dense := BestCompositeRow(nil, nil)
	if len(dense) != 0 {
		t.Errorf("dense query on empty history = %v, want empty row", dense)
	}
	sparse := SparseHintMap(nil, nil)
	if len(sparse) != 0 {
		t.Errorf("sparse query on empty history = %v, want nil", sparse)
	}
}

func TestBestCompositeRow_Deterministic(t *testing.T) {
	human := []Row{
		row(t, "crane", "xygxy"),
		row(t, "slate", "yxgxy"),
	}
	ai := []Row{
		row(t, "table", "xyxyg"),
		row(t, "pears", "xgyxy"),
	}

	first := BestCompositeRow(human, ai).Key()
	for i := 0; i < 20; i++ {
		if got := BestCompositeRow(human, ai).Key(); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
}

func TestBestCompositeRow_RowValidity(t *testing.T) {
	// Every enumerated row must respect the caps derived from the same
	// history.
	human := []Row{
		row(t, "eerie", "gyxxx"),
		row(t, "where", "xxgyx"),
	}
	ai := []Row{
		row(t, "crane", "xyxxy"),
	}

	rows, width := DefaultEngine().prepare(human, ai)
	cs := aggregate(rows)
	idx := observe(rows, width)
	candidates := buildCandidates(idx, cs, true)

	for _, r := range enumerateRows(candidates, cs) {
		usage := make(map[Letter]int)
		for _, c := range r {
			if c.Color.colored() {
				usage[c.Letter]++
			}
		}
		for l, n := range usage {
			if n > cs.cap(l) {
				t.Errorf("row %s uses %c colored %d times, cap %d", r.Key(), l, n, cs.cap(l))
			}
		}
	}
}

func TestBestCompositeRow_RaggedRowsPadded(t *testing.T) {
	// A short row at the ingestion boundary is treated as "no information
	// yet" for the missing cells, never as an error.
	human := []Row{row(t, "cra", "xxg")}
	ai := []Row{row(t, "table", "xyxxg")}

	got := BestCompositeRow(human, ai)
	if len(got) != 5 {
		t.Fatalf("expected width 5 after padding, got %d", len(got))
	}
	if got[2].Letter != 'a' || got[2].Color != ExactMatch {
		t.Errorf("index 2 = %+v, want green a from the ragged row", got[2])
	}
}

func TestBestCompositeRow_HebrewFinalFormsMerge(t *testing.T) {
	// A final mem and a medial mem are the same letter for counting: the
	// gray final form plus the yellow base form in the same row is decisive
	// evidence for one copy, not a ban.
	human := []Row{{
		{Letter: 'ם', Color: NoMatch},
		{Letter: 'מ', Color: PartialMatch},
		{Letter: 'ש', Color: ExactMatch},
	}}

	rows, _ := DefaultEngine().prepare(human, nil)
	cs := aggregate(rows)
	if cs.banned['מ'] {
		t.Fatal("mem banned despite yellow evidence in the same row")
	}
	if got := cs.cap('מ'); got != 1 {
		t.Errorf("cap(mem) = %d, want 1 (gray+colored in one row)", got)
	}
}

func TestEngine_InputsNotMutated(t *testing.T) {
	human := []Row{row(t, "CRANE", "xxgxx")}
	want := make(Row, len(human[0]))
	copy(want, human[0])

	BestCompositeRow(human, nil)
	SparseHintMap(human, nil)

	if !reflect.DeepEqual(human[0], want) {
		t.Error("engine mutated its input history")
	}
}
