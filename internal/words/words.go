// Package words loads and serves the per-language answer and guess lists.
//
// Lists are stored one word per line, already normalized: lowercase ASCII for
// English, final letters folded to their base forms for Hebrew. Embedded
// defaults ship with the binary; a directory of override files can replace
// any of them at startup.
package words

import (
	"bufio"
	"crypto/rand"
	"embed"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/talmalka/worduel/api/pkg/hints"
)

//go:embed lists/*.txt
var listFS embed.FS

// Supported languages.
const (
	English = "en"
	Hebrew  = "he"
)

var languages = []string{English, Hebrew}
var widths = []int{4, 5, 6}

type listKey struct {
	language string
	width    int
}

type list struct {
	answers []string
	allowed map[string]struct{}
}

// Store holds the loaded word lists for every language and width.
type Store struct {
	alphabet hints.Alphabet
	lists    map[listKey]*list
}

// Load builds a Store from the embedded lists. If dir is non-empty, files
// named <language>_<width>.txt under it replace the embedded list for that
// language and width, and optional <language>_<width>_allowed.txt files
// extend the set of accepted guesses beyond the answers.
func Load(dir string) (*Store, error) {
	s := &Store{
		alphabet: hints.DefaultAlphabet(),
		lists:    make(map[listKey]*list),
	}
	for _, lang := range languages {
		for _, width := range widths {
			answers, err := s.loadAnswers(dir, lang, width)
			if err != nil {
				return nil, err
			}
			if len(answers) == 0 {
				return nil, fmt.Errorf("words: empty answer list for %s/%d", lang, width)
			}
			l := &list{answers: answers, allowed: make(map[string]struct{}, len(answers))}
			for _, w := range answers {
				l.allowed[w] = struct{}{}
			}
			if dir != "" {
				extra, err := s.readFile(filepath.Join(dir, fmt.Sprintf("%s_%d_allowed.txt", lang, width)), width)
				if err != nil && !os.IsNotExist(err) {
					return nil, err
				}
				for _, w := range extra {
					l.allowed[w] = struct{}{}
				}
			}
			s.lists[listKey{lang, width}] = l
		}
	}
	return s, nil
}

func (s *Store) loadAnswers(dir, lang string, width int) ([]string, error) {
	name := fmt.Sprintf("%s_%d.txt", lang, width)
	if dir != "" {
		answers, err := s.readFile(filepath.Join(dir, name), width)
		if err == nil {
			return answers, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	data, err := listFS.ReadFile("lists/" + name)
	if err != nil {
		return nil, fmt.Errorf("words: embedded list %s: %w", name, err)
	}
	return s.parse(strings.NewReader(string(data)), width), nil
}

func (s *Store) readFile(path string, width int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return s.parse(f, width), nil
}

// parse reads one word per line, normalizes it, and keeps only words of the
// requested width whose every rune the alphabet accepts.
func (s *Store) parse(r io.Reader, width int) []string {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw := strings.TrimSpace(sc.Text())
		if utf8.RuneCountInString(raw) != width {
			continue
		}
		norm, ok := s.normalize(raw)
		if ok {
			out = append(out, norm)
		}
	}
	return out
}

func (s *Store) normalize(word string) (string, bool) {
	var b strings.Builder
	for _, r := range word {
		l := s.alphabet.NormalizeRune(r)
		if l == hints.NoLetter {
			return "", false
		}
		b.WriteRune(rune(l))
	}
	return b.String(), true
}

// RandomAnswer returns a uniformly random answer for the language and width.
func (s *Store) RandomAnswer(language string, width int) (string, error) {
	l, ok := s.lists[listKey{language, width}]
	if !ok {
		return "", fmt.Errorf("words: no list for %s/%d", language, width)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return "", fmt.Errorf("words: random answer: %w", err)
	}
	return l.answers[n.Int64()], nil
}

// IsAllowed reports whether word is an accepted guess for the language and
// width. The word is normalized before lookup, so guesses typed with Hebrew
// final letters or English capitals match their canonical list entries.
func (s *Store) IsAllowed(language string, width int, word string) bool {
	l, ok := s.lists[listKey{language, width}]
	if !ok {
		return false
	}
	norm, ok := s.normalize(word)
	if !ok {
		return false
	}
	_, ok = l.allowed[norm]
	return ok
}

// Answers returns the answer list for a language and width. The returned
// slice is shared; callers must not modify it.
func (s *Store) Answers(language string, width int) []string {
	l, ok := s.lists[listKey{language, width}]
	if !ok {
		return nil
	}
	return l.answers
}

// Languages returns the supported language codes.
func Languages() []string {
	return append([]string(nil), languages...)
}
