package solver

import (
	"math"
	"math/rand"
)

// updateLetterFreq refreshes each letter's informativeness: the
// fraction of currently-possible words containing strictly more
// occurrences of the letter than already proven. Runs after every
// accepted feedback round.
func (s *Solver) updateLetterFreq() {
	n := float64(s.possible.Count())
	for li := range s.letters {
		rec := &s.letters[li]
		c := byte('a' + li)
		hits := 0
		for i, ok := s.possible.NextSet(0); ok; i, ok = s.possible.NextSet(i + 1) {
			if countLetter(s.words[i], c) > rec.count {
				hits++
			}
		}
		rec.freq = float64(hits) / n
	}
}

// wordWeight scores a candidate guess by how much it could still teach
// us. A letter contributes its freq once if the guess probes its count
// (more copies than the proven floor, count not yet exact) and once per
// position whose status for that letter is unresolved. A letter
// informative on both axes is counted on both, deliberately.
func (s *Solver) wordWeight(w string) float64 {
	weight := 0.0
	var counted [26]bool
	for i := 0; i < len(w); i++ {
		li := w[i] - 'a'
		rec := &s.letters[li]
		if !counted[li] {
			counted[li] = true
			if !rec.exactCount && countLetter(w, w[i]) > rec.count {
				weight += rec.freq
			}
		}
		if !rec.appearsAt.Contains(i) && !rec.doesNotAppearAt.Contains(i) {
			weight += rec.freq
		}
	}
	return weight
}

// NextGuess proposes a guess for the given 1-based guess number. The
// strategy depends on the phase of the game:
//
//  1. one possible word left: guess it
//  2. enough guesses remain to try every possible word: guess the most
//     common possible word, the best odds of finishing early
//  3. otherwise: guess the most informative word from the whole
//     dictionary, ties broken at random
//  4. last guess: take a stab at the most common possible word
func (s *Solver) NextGuess(guessNum int) string {
	n := int(s.possible.Count())
	switch {
	case n == 1:
		first, _ := s.possible.NextSet(0)
		return s.words[first]
	case GuessLimit-guessNum >= n:
		return s.mostFrequentPossible()
	case guessNum < GuessLimit:
		return s.mostInformative()
	default:
		return s.mostFrequentPossible()
	}
}

func (s *Solver) mostFrequentPossible() string {
	best := ""
	bestScore := math.Inf(-1)
	for i, ok := s.possible.NextSet(0); ok; i, ok = s.possible.NextSet(i + 1) {
		if f := s.dict.Frequency(s.words[i]); f > bestScore {
			best, bestScore = s.words[i], f
		}
	}
	return best
}

// mostInformative weighs every dictionary word, not just the possible
// ones: a word that can no longer be the answer may still split the
// remaining candidates best. Ties are broken randomly so repeated play
// does not always walk the same path.
func (s *Solver) mostInformative() string {
	var ties []uint
	best := 0.0
	for i := range s.words {
		if s.removed.Test(uint(i)) {
			continue
		}
		weight := s.wordWeight(s.words[i])
		switch {
		case weight > best:
			best = weight
			ties = append(ties[:0], uint(i))
		case weight == best && weight > 0:
			ties = append(ties, uint(i))
		}
	}
	if len(ties) == 0 {
		// nothing left to learn, guess an answer
		possible := s.Possible()
		return possible[rand.Intn(len(possible))]
	}
	return s.words[ties[rand.Intn(len(ties))]]
}
