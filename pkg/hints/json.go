package hints

import (
	"encoding/json"
	"fmt"
)

// JSON forms: Letter marshals as a one-character string ("" for NoLetter),
// LetterColor as its name. Keeps payloads readable for API consumers and
// stable across alphabet scripts.

func (l Letter) MarshalJSON() ([]byte, error) {
	if l == NoLetter {
		return json.Marshal("")
	}
	return json.Marshal(string(rune(l)))
}

func (l *Letter) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*l = NoLetter
		return nil
	}
	*l = Letter([]rune(s)[0])
	return nil
}

func (c LetterColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *LetterColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "green":
		*c = ExactMatch
	case "yellow":
		*c = PartialMatch
	case "gray":
		*c = NoMatch
	case "none", "":
		*c = NoGuess
	default:
		return fmt.Errorf("unknown letter color %q", s)
	}
	return nil
}
