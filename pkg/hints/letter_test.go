package hints

import "testing"

func TestAlphabet_Normalize(t *testing.T) {
	a := DefaultAlphabet()
	tests := []struct {
		in   string
		want Letter
	}{
		{"A", 'a'},
		{"a", 'a'},
		{" Q ", 'q'},
		{"", NoLetter},
		{"   ", NoLetter},
		{"\t", NoLetter},
		{"ך", 'כ'},
		{"ם", 'מ'},
		{"ן", 'נ'},
		{"ף", 'פ'},
		{"ץ", 'צ'},
		{"כ", 'כ'},
		{"ש", 'ש'},
	}
	for _, tt := range tests {
		if got := a.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAlphabet_NormalizeIdempotent(t *testing.T) {
	a := DefaultAlphabet()
	inputs := []string{"A", "z", "ך", "ם", "ן", "ף", "ץ", "ש", "", " "}
	for _, in := range inputs {
		once := a.Normalize(in)
		twice := a.NormalizeRune(rune(once))
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestAlphabet_Finalize(t *testing.T) {
	a := DefaultAlphabet()
	tests := []struct {
		l    Letter
		last bool
		want rune
	}{
		{'כ', true, 'ך'},
		{'כ', false, 'כ'},
		{'מ', true, 'ם'},
		{'ש', true, 'ש'},
		{'a', true, 'a'},
	}
	for _, tt := range tests {
		if got := a.Finalize(tt.l, tt.last); got != tt.want {
			t.Errorf("Finalize(%q, %v) = %q, want %q", tt.l, tt.last, got, tt.want)
		}
	}
}

func TestAlphabet_FinalizeRoundTrip(t *testing.T) {
	// Re-finalization must recover the display form the normalizer folded.
	a := DefaultAlphabet()
	for fin, base := range hebrewFinals {
		norm := a.NormalizeRune(fin)
		if norm != Letter(base) {
			t.Errorf("NormalizeRune(%q) = %q, want %q", fin, norm, base)
		}
		if got := a.Finalize(norm, true); got != fin {
			t.Errorf("Finalize(%q, last) = %q, want %q", norm, got, fin)
		}
	}
}
