// Package words is the dictionary collaborator for the solver: an ordered
// list of five-letter lowercase words plus a per-word popularity score.
//
// The embedded list is ordered most common first. Frequency returns a
// Zipf-style score derived from that rank, so higher means more common.
// The score is only ever used for tie-breaking and terminal guesses,
// never to decide whether a word is a valid answer.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

//go:embed words.txt
var wordsFile string

// Words the NYT site rejects even though dictionaries carry them.
//
//go:embed nonwords.txt
var nonWordsFile string

const WordLength = 5

var ErrEmptyList = errors.New("word list is empty")

// List is an immutable, de-duplicated, frequency-ordered word list.
type List struct {
	words []string
	rank  map[string]int
}

// Load parses the embedded word list, dropping denylisted non-words.
func Load() (*List, error) {
	deny, err := parse(nonWordsFile)
	if err != nil {
		return nil, fmt.Errorf("nonwords list: %w", err)
	}
	denySet := make(map[string]struct{}, len(deny))
	for _, w := range deny {
		denySet[w] = struct{}{}
	}

	all, err := parse(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("word list: %w", err)
	}
	kept := all[:0]
	for _, w := range all {
		if _, ok := denySet[w]; !ok {
			kept = append(kept, w)
		}
	}
	return New(kept)
}

// New builds a List from an already-ordered slice of words. Words must be
// exactly five lowercase ASCII letters; duplicates keep their first rank.
func New(words []string) (*List, error) {
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	l := &List{
		words: make([]string, 0, len(words)),
		rank:  make(map[string]int, len(words)),
	}
	for _, w := range words {
		if !Valid(w) {
			return nil, fmt.Errorf("not a %d-letter lowercase word: %q", WordLength, w)
		}
		if _, ok := l.rank[w]; ok {
			continue
		}
		l.rank[w] = len(l.words)
		l.words = append(l.words, w)
	}
	return l, nil
}

// Valid reports whether w is exactly five ASCII lowercase letters.
func Valid(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Words returns the list in frequency order. Callers must not modify it.
func (l *List) Words() []string {
	return l.words
}

func (l *List) Len() int {
	return len(l.words)
}

func (l *List) Contains(w string) bool {
	_, ok := l.rank[w]
	return ok
}

// Frequency returns a Zipf-style popularity proxy for w: the most common
// word scores 7.0 and the score decays with log10 of the rank. Unknown
// words score 0.
func (l *List) Frequency(w string) float64 {
	r, ok := l.rank[w]
	if !ok {
		return 0
	}
	return 7.0 - math.Log10(float64(r)+1)
}

// Random returns a uniformly random word from the list.
func (l *List) Random() string {
	return l.words[rand.Intn(len(l.words))]
}

// Truncated returns a List holding only the n most common words, or the
// whole list if n is zero or out of range. Smaller dictionaries keep the
// interactive commands fast while debugging.
func (l *List) Truncated(n int) *List {
	if n <= 0 || n >= len(l.words) {
		return l
	}
	t, err := New(l.words[:n])
	if err != nil {
		// the prefix of a valid list is a valid list
		panic(err)
	}
	return t
}

func parse(file string) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(file))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !Valid(line) {
			return nil, fmt.Errorf("not a %d-letter lowercase word: %q", WordLength, line)
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
