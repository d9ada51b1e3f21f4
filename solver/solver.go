// Package solver is the constraint-tracking and guess-scoring engine
// for Wordle. A Solver accumulates per-letter knowledge from feedback,
// maintains the set of dictionary words still consistent with every
// round seen so far, and proposes the next guess that best narrows
// that set.
//
// A Solver is built once per game from an immutable dictionary and is
// not safe for concurrent use; run one Solver per session.
package solver

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
	"github.com/rs/zerolog"
)

const (
	// WordLength is the only supported word length.
	WordLength = 5
	// GuessLimit is the number of guesses a standard game allows.
	GuessLimit = 6
)

// Dictionary supplies the word list and a popularity score. Words must
// be five lowercase ASCII letters, ordered, de-duplicated. Frequency is
// only used for tie-breaking and terminal guesses, never for filtering.
type Dictionary interface {
	Words() []string
	Frequency(word string) float64
}

// letterRecord is everything proven about one letter of the alphabet.
// appearsAt and doesNotAppearAt are always disjoint. count never
// decreases, and is frozen once exactCount is true.
type letterRecord struct {
	appearsAt       mapset.Set // board positions confirmed for this letter
	doesNotAppearAt mapset.Set // positions confirmed not this letter
	count           int        // minimum occurrences; exact when exactCount
	exactCount      bool
	freq            float64 // fraction of possible words that would still teach us something
}

// Solver owns all mutable session state. The possible-word set is a
// bitset over dictionary indices; it only ever shrinks.
type Solver struct {
	dict     Dictionary
	words    []string
	index    map[string]uint
	possible *bitset.BitSet
	removed  *bitset.BitSet // words dropped from consideration by the operator
	known    [WordLength]byte
	letters  [26]letterRecord
	log      zerolog.Logger
}

// New builds a Solver whose possible-word set is the whole dictionary.
func New(dict Dictionary) (*Solver, error) {
	ws := dict.Words()
	if len(ws) == 0 {
		return nil, ErrEmptyDictionary
	}
	s := &Solver{
		dict:     dict,
		words:    ws,
		index:    make(map[string]uint, len(ws)),
		possible: bitset.New(uint(len(ws))),
		removed:  bitset.New(uint(len(ws))),
		log:      zerolog.Nop(),
	}
	for i, w := range ws {
		if !ValidWord(w) {
			return nil, fmt.Errorf("%w: dictionary word %q", ErrMalformedInput, w)
		}
		s.index[w] = uint(i)
		s.possible.Set(uint(i))
	}
	for li := range s.letters {
		s.letters[li] = letterRecord{
			appearsAt:       mapset.NewThreadUnsafeSet(),
			doesNotAppearAt: mapset.NewThreadUnsafeSet(),
		}
	}
	s.updateLetterFreq()
	return s, nil
}

// SetLogger attaches a logger for inference and strategy debug events.
func (s *Solver) SetLogger(log zerolog.Logger) {
	s.log = log
}

// snapshot is an independent copy of the solver's mutable state, taken
// at the start of a feedback transaction and swapped back on rollback.
type snapshot struct {
	possible *bitset.BitSet
	known    [WordLength]byte
	letters  [26]letterRecord
}

func (s *Solver) snapshot() snapshot {
	snap := snapshot{
		possible: s.possible.Clone(),
		known:    s.known,
	}
	for li, rec := range s.letters {
		rec.appearsAt = rec.appearsAt.Clone()
		rec.doesNotAppearAt = rec.doesNotAppearAt.Clone()
		snap.letters[li] = rec
	}
	return snap
}

func (s *Solver) restore(snap snapshot) {
	s.possible = snap.possible
	s.known = snap.known
	s.letters = snap.letters
}

// ProcessFeedback runs one feedback round as a transaction: snapshot,
// update letter knowledge, refilter the possible-word set, recompute
// letter informativeness. On ErrContradiction or ErrUnsatisfiable the
// pre-transaction state is restored bit for bit before returning.
// Malformed input is rejected before any mutation.
func (s *Solver) ProcessFeedback(word string, fb Feedback) error {
	word = strings.ToLower(word)
	if !ValidWord(word) {
		return fmt.Errorf("%w: guess %q", ErrMalformedInput, word)
	}
	if err := fb.validate(); err != nil {
		return err
	}
	snap := s.snapshot()
	if err := s.applyFeedback(word, fb); err != nil {
		s.restore(snap)
		return err
	}
	if err := s.recompute(); err != nil {
		s.restore(snap)
		return err
	}
	s.updateLetterFreq()
	s.log.Debug().
		Str("guess", word).
		Str("feedback", fb.String()).
		Uint("possible", s.possible.Count()).
		Msg("feedback accepted")
	return nil
}

// ProcessResponse is ProcessFeedback with the textual feedback protocol.
func (s *Solver) ProcessResponse(word, response string) error {
	fb, err := ParseFeedback(response)
	if err != nil {
		return err
	}
	return s.ProcessFeedback(word, fb)
}

// Possible returns the remaining candidate words in dictionary order.
func (s *Solver) Possible() []string {
	out := make([]string, 0, s.possible.Count())
	for i, ok := s.possible.NextSet(0); ok; i, ok = s.possible.NextSet(i + 1) {
		out = append(out, s.words[i])
	}
	return out
}

// PossibleCount returns the size of the possible-word set.
func (s *Solver) PossibleCount() int {
	return int(s.possible.Count())
}

// Remove drops a word from consideration entirely, both as a candidate
// answer and as a future guess. Removing the last possible word is
// refused with ErrUnsatisfiable.
func (s *Solver) Remove(word string) error {
	word = strings.ToLower(word)
	i, ok := s.index[word]
	if !ok {
		return fmt.Errorf("%w: %q not in dictionary", ErrMalformedInput, word)
	}
	s.removed.Set(i)
	if !s.possible.Test(i) {
		return nil
	}
	s.possible.Clear(i)
	if s.possible.Count() == 0 {
		s.possible.Set(i)
		s.removed.Clear(i)
		return fmt.Errorf("%w: %q is the only remaining possible word", ErrUnsatisfiable, word)
	}
	s.updateLetterFreq()
	return nil
}

// Dump returns a human-readable description of the solver state.
func (s *Solver) Dump() string {
	var b strings.Builder
	b.WriteString("Known letters: ")
	for _, c := range s.known {
		if c == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte(c)
		}
	}
	b.WriteByte('\n')
	b.WriteString("Eliminated letters:")
	for li := range s.letters {
		if rec := &s.letters[li]; rec.exactCount && rec.count == 0 {
			b.WriteByte(' ')
			b.WriteByte(byte('a' + li))
		}
	}
	b.WriteByte('\n')
	b.WriteString("Letter knowledge:\n")
	for li := range s.letters {
		rec := &s.letters[li]
		if rec.count == 0 && (rec.exactCount || rec.freq == 0) {
			continue
		}
		op := ">="
		if rec.exactCount {
			op = "=="
		}
		fmt.Fprintf(&b, "  %c: count %s%d freq %.2f\n", 'a'+li, op, rec.count, rec.freq)
	}
	fmt.Fprintf(&b, "%d possible words\n", s.possible.Count())
	return b.String()
}
