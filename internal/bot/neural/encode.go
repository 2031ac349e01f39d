// Package neural encodes duel feedback history into the tensors the ONNX
// policy model consumes and decodes its letter logits back into word scores.
package neural

import (
	"github.com/talmalka/worduel/api/pkg/hints"
)

// Model dimensions. The policy model is trained on a fixed 6-row board; a
// shorter history is zero-padded and the occupancy feature marks real cells.
const (
	NumLetters      = 48 // 26 Latin + 22 Hebrew base letters
	NumColors       = 3  // gray, yellow, green
	MaxRows         = 6
	FeaturesPerCell = NumLetters + NumColors + 1 // +1 occupancy flag
)

// hebrewFinalOffsets are the positions of the five final-form code points
// inside the א..ת block. Normalization folds finals to their base letters
// before any encoding, so the finals get no index of their own and the base
// letters above them shift down to keep the 22 indices contiguous.
var hebrewFinalOffsets = [...]rune{'ך' - 'א', 'ם' - 'א', 'ן' - 'א', 'ף' - 'א', 'ץ' - 'א'}

// LetterIndex maps a normalized letter to its model input index, or -1 for
// letters outside the supported alphabets.
func LetterIndex(l hints.Letter) int {
	r := rune(l)
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= 'א' && r <= 'ת':
		off := r - 'א'
		idx := off
		for _, fin := range hebrewFinalOffsets {
			if fin == off {
				return -1
			}
			if fin < off {
				idx--
			}
		}
		return 26 + int(idx)
	default:
		return -1
	}
}

// EncodeHistory flattens the feedback rows into a board tensor backing of
// shape (MaxRows, width, FeaturesPerCell). Rows beyond MaxRows are dropped
// oldest-first; the model only needs the recent evidence.
func EncodeHistory(rows []hints.Row, width int) []float32 {
	if len(rows) > MaxRows {
		rows = rows[len(rows)-MaxRows:]
	}
	data := make([]float32, MaxRows*width*FeaturesPerCell)
	for ri, row := range rows {
		for ci := 0; ci < width && ci < len(row); ci++ {
			cell := row[ci]
			if cell.Empty() {
				continue
			}
			base := (ri*width + ci) * FeaturesPerCell
			if idx := LetterIndex(cell.Letter); idx >= 0 {
				data[base+idx] = 1
			}
			switch cell.Color {
			case hints.NoMatch:
				data[base+NumLetters] = 1
			case hints.PartialMatch:
				data[base+NumLetters+1] = 1
			case hints.ExactMatch:
				data[base+NumLetters+2] = 1
			}
			data[base+NumLetters+NumColors] = 1
		}
	}
	return data
}

// ScoreWord sums the per-position letter logits for a candidate word.
// logits is the flattened model output of shape (width, NumLetters).
func ScoreWord(logits []float32, word string, width int) float64 {
	score := 0.0
	for i, r := range []rune(word) {
		if i >= width {
			break
		}
		idx := LetterIndex(hints.Letter(r))
		if idx < 0 {
			continue
		}
		flat := i*NumLetters + idx
		if flat < len(logits) {
			score += float64(logits[flat])
		}
	}
	return score
}
