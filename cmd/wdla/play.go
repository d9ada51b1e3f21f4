package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wrdl/assist/solver"
	"github.com/wrdl/assist/wordle"
	"github.com/wrdl/assist/words"
)

// runPlay hosts a terminal game: the program holds the secret and the
// human guesses.
func runPlay(dict *words.List, secret string, in io.Reader, out io.Writer) error {
	if secret == "" {
		secret = dict.Random()
	}
	secret = strings.ToLower(secret)
	if !dict.Contains(secret) {
		return fmt.Errorf("%w: secret %q not in dictionary", solver.ErrMalformedInput, secret)
	}

	sc := bufio.NewScanner(in)
	for guessNum := 1; guessNum <= solver.GuessLimit; guessNum++ {
		var guess string
		for {
			fmt.Fprintf(out, "guess %d/%d: ", guessNum, solver.GuessLimit)
			if !sc.Scan() {
				return sc.Err()
			}
			guess = strings.ToLower(strings.TrimSpace(sc.Text()))
			if guess == "quit" || guess == "q" {
				fmt.Fprintln(out, "the word was", secret)
				return nil
			}
			if dict.Contains(guess) {
				break
			}
			fmt.Fprintln(out, "not in word list")
		}
		won, fb, err := wordle.Respond(secret, guess)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, wordle.Colorize(guess, fb))
		if won {
			fmt.Fprintf(out, "solved in %d\n", guessNum)
			return nil
		}
	}
	fmt.Fprintln(out, "out of guesses, the word was", secret)
	return nil
}
