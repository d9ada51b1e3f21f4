package solver

import "fmt"

// Mark is the per-position classification of one guessed letter.
type Mark uint8

const (
	// Absent: the letter occurs no more times in the secret than
	// already accounted for by its other marks in the same guess.
	Absent Mark = iota
	// Present: the letter is in the secret but not at this position.
	Present
	// Exact: the letter is in the secret at this position.
	Exact
)

// Feedback is one full response to a five-letter guess.
type Feedback [WordLength]Mark

// ParseFeedback parses the textual protocol: five case-insensitive
// symbols, G for exact, Y or O for present, - or W for absent. Both
// historical symbol sets are accepted.
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	if len(s) != WordLength {
		return fb, fmt.Errorf("%w: feedback %q must be %d symbols", ErrMalformedInput, s, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		switch s[i] {
		case 'G', 'g':
			fb[i] = Exact
		case 'Y', 'y', 'O', 'o':
			fb[i] = Present
		case '-', 'W', 'w':
			fb[i] = Absent
		default:
			return Feedback{}, fmt.Errorf("%w: feedback symbol %q in %q", ErrMalformedInput, string(s[i]), s)
		}
	}
	return fb, nil
}

// String renders the canonical encoding: G, Y and -.
func (f Feedback) String() string {
	buf := make([]byte, WordLength)
	for i, m := range f {
		switch m {
		case Exact:
			buf[i] = 'G'
		case Present:
			buf[i] = 'Y'
		default:
			buf[i] = '-'
		}
	}
	return string(buf)
}

// Success reports whether every position is an exact match.
func (f Feedback) Success() bool {
	for _, m := range f {
		if m != Exact {
			return false
		}
	}
	return true
}

func (f Feedback) validate() error {
	for i, m := range f {
		if m > Exact {
			return fmt.Errorf("%w: feedback mark %d at position %d", ErrMalformedInput, m, i)
		}
	}
	return nil
}

// ValidWord reports whether w is exactly five ASCII lowercase letters.
func ValidWord(w string) bool {
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

func countLetter(w string, c byte) int {
	n := 0
	for i := 0; i < len(w); i++ {
		if w[i] == c {
			n++
		}
	}
	return n
}
