package hints

import (
	"strings"
	"unicode"
)

// Letter is a single normalized guess character. The zero value means
// "no letter" (an empty or unguessed cell).
type Letter rune

// NoLetter is the sentinel for blank or whitespace input.
const NoLetter Letter = 0

// Alphabet owns the normalization tables for guess letters. It is an
// immutable value; construct one with DefaultAlphabet and share it freely.
type Alphabet struct {
	finalToBase map[rune]rune
	baseToFinal map[rune]rune
}

// hebrewFinals maps the five Hebrew word-final letter forms to their base
// forms. Kept in sync with the game's allowed alphabet configuration.
var hebrewFinals = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}

// DefaultAlphabet returns the alphabet used by the standard game:
// case-folded Latin plus Hebrew with final forms collapsed.
func DefaultAlphabet() Alphabet {
	base := make(map[rune]rune, len(hebrewFinals))
	for fin, b := range hebrewFinals {
		base[b] = fin
	}
	return Alphabet{finalToBase: hebrewFinals, baseToFinal: base}
}

// Normalize canonicalizes a raw guess token into a comparable Letter.
// Latin letters are lowercased and Hebrew final forms fold to their base
// form. Blank or whitespace input yields NoLetter. Normalize is idempotent:
// normalizing an already-normalized letter is a no-op.
func (a Alphabet) Normalize(raw string) Letter {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NoLetter
	}
	r := []rune(s)[0]
	if base, ok := a.finalToBase[r]; ok {
		r = base
	}
	return Letter(unicode.ToLower(r))
}

// NormalizeRune is Normalize for a single rune, skipping string handling.
func (a Alphabet) NormalizeRune(r rune) Letter {
	if r == 0 || unicode.IsSpace(r) {
		return NoLetter
	}
	if base, ok := a.finalToBase[r]; ok {
		r = base
	}
	return Letter(unicode.ToLower(r))
}

// Finalize recovers the display form of a normalized letter given its
// position-in-word context: the word-final variant when the letter closes a
// word, the base form otherwise. Letters without a final variant render
// unchanged.
func (a Alphabet) Finalize(l Letter, lastInWord bool) rune {
	if !lastInWord {
		return rune(l)
	}
	if fin, ok := a.baseToFinal[rune(l)]; ok {
		return fin
	}
	return rune(l)
}
