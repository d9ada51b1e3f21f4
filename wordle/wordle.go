// Package wordle is the game side of the table: the feedback oracle
// that scores a guess against a known secret, terminal rendering of
// feedback, and a self-play harness driving the solver.
package wordle

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/wrdl/assist/solver"
)

// Respond scores a guess against the secret the way the game does.
// Exact matches claim their secret letters first; each remaining guess
// letter is PRESENT only while unclaimed copies of it remain, left to
// right, so a guess never gets more credit for a letter than the
// secret holds.
func Respond(secret, guess string) (bool, solver.Feedback, error) {
	secret = strings.ToLower(secret)
	guess = strings.ToLower(guess)
	var fb solver.Feedback
	if !solver.ValidWord(secret) {
		return false, fb, fmt.Errorf("%w: secret %q", solver.ErrMalformedInput, secret)
	}
	if !solver.ValidWord(guess) {
		return false, fb, fmt.Errorf("%w: guess %q", solver.ErrMalformedInput, guess)
	}
	var unclaimed [26]int
	for i := 0; i < solver.WordLength; i++ {
		if guess[i] == secret[i] {
			fb[i] = solver.Exact
		} else {
			unclaimed[secret[i]-'a']++
		}
	}
	for i := 0; i < solver.WordLength; i++ {
		if fb[i] == solver.Exact {
			continue
		}
		if li := guess[i] - 'a'; unclaimed[li] > 0 {
			unclaimed[li]--
			fb[i] = solver.Present
		}
	}
	return fb.Success(), fb, nil
}

// Colorize renders a guess like the game board: green for EXACT,
// yellow for PRESENT, uncolored for ABSENT.
func Colorize(guess string, fb solver.Feedback) string {
	var b strings.Builder
	for i := 0; i < solver.WordLength; i++ {
		switch fb[i] {
		case solver.Exact:
			fmt.Fprintf(&b, "[green]%c[reset]", guess[i])
		case solver.Present:
			fmt.Fprintf(&b, "[yellow]%c[reset]", guess[i])
		default:
			b.WriteByte(guess[i])
		}
	}
	return colorstring.Color(b.String())
}
