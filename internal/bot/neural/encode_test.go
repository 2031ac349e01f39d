package neural

import (
	"testing"

	"github.com/talmalka/worduel/api/pkg/hints"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

func TestLetterIndex(t *testing.T) {
	tests := []struct {
		letter hints.Letter
		want   int
	}{
		{'a', 0},
		{'z', 25},
		{'א', 26},
		// Base letters past an interleaved final form shift down so the
		// block stays contiguous.
		{'כ', 36},
		{'מ', 38},
		{'נ', 39},
		{'פ', 42},
		{'צ', 43},
		{'ק', 44},
		{'ר', 45},
		{'ש', 46},
		{'ת', 47},
		// Final forms are folded away before encoding and get no index.
		{'ך', -1},
		{'ץ', -1},
		{'1', -1},
		{hints.NoLetter, -1},
	}
	for _, tt := range tests {
		if got := LetterIndex(tt.letter); got != tt.want {
			t.Errorf("LetterIndex(%q) = %d, want %d", rune(tt.letter), got, tt.want)
		}
	}
}

func TestLetterIndexCoversAlphabetsInRange(t *testing.T) {
	a := hints.DefaultAlphabet()
	seen := make(map[int]bool)
	check := func(lo, hi rune) {
		t.Helper()
		for r := lo; r <= hi; r++ {
			idx := LetterIndex(a.NormalizeRune(r))
			if idx < 0 || idx >= NumLetters {
				t.Errorf("LetterIndex(normalize(%q)) = %d, out of [0, %d)", r, idx, NumLetters)
			}
			seen[idx] = true
		}
	}
	check('a', 'z')
	check('א', 'ת')
	if len(seen) != NumLetters {
		t.Errorf("alphabets map onto %d indices, want %d", len(seen), NumLetters)
	}
}

func TestEncodeHistoryFullHebrewBoard(t *testing.T) {
	// A full board whose last cell holds the highest-index letter must stay
	// inside the tensor backing and leave the color and occupancy bits intact.
	width := 4
	rows := make([]hints.Row, MaxRows)
	for i := range rows {
		rows[i] = wordle.Score("תתתת", "תתתת")
	}
	data := EncodeHistory(rows, width)

	last := (MaxRows*width - 1) * FeaturesPerCell
	if data[last+LetterIndex('ת')] != 1 {
		t.Error("letter bit not set for the final cell")
	}
	if data[last+NumLetters+2] != 1 {
		t.Error("green color bit not set for the final cell")
	}
	if data[last+NumLetters+NumColors] != 1 {
		t.Error("occupancy bit not set for the final cell")
	}
}

func TestEncodeHistoryShapeAndOccupancy(t *testing.T) {
	width := 5
	rows := []hints.Row{wordle.Score("crane", "slate")}
	data := EncodeHistory(rows, width)

	if len(data) != MaxRows*width*FeaturesPerCell {
		t.Fatalf("len = %d, want %d", len(data), MaxRows*width*FeaturesPerCell)
	}

	// First row cells are occupied, second row is all zero.
	for ci := 0; ci < width; ci++ {
		base := ci * FeaturesPerCell
		if data[base+NumLetters+NumColors] != 1 {
			t.Errorf("cell %d occupancy not set", ci)
		}
	}
	rowTwo := data[width*FeaturesPerCell : 2*width*FeaturesPerCell]
	for i, v := range rowTwo {
		if v != 0 {
			t.Fatalf("padding row has nonzero value at %d", i)
		}
	}

	// slate vs crane: the final e is an exact match.
	lastCell := 4 * FeaturesPerCell
	if data[lastCell+NumLetters+2] != 1 {
		t.Error("green color bit not set for exact match")
	}
	if data[lastCell+LetterIndex('e')] != 1 {
		t.Error("letter bit not set")
	}
}

func TestEncodeHistoryKeepsRecentRows(t *testing.T) {
	width := 5
	rows := make([]hints.Row, MaxRows+2)
	for i := range rows {
		rows[i] = wordle.Score("crane", "slate")
	}
	data := EncodeHistory(rows, width)
	if len(data) != MaxRows*width*FeaturesPerCell {
		t.Fatalf("len = %d, want %d", len(data), MaxRows*width*FeaturesPerCell)
	}
}

func TestScoreWordPrefersLikelyLetters(t *testing.T) {
	width := 2
	logits := make([]float32, width*NumLetters)
	logits[0*NumLetters+LetterIndex('g')] = 2
	logits[1*NumLetters+LetterIndex('o')] = 3

	if got := ScoreWord(logits, "go", width); got != 5 {
		t.Errorf("ScoreWord(go) = %v, want 5", got)
	}
	if hi, lo := ScoreWord(logits, "go", width), ScoreWord(logits, "ox", width); hi <= lo {
		t.Errorf("expected go (%v) to outscore ox (%v)", hi, lo)
	}
}
