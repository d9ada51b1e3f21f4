package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wrdl/assist/solver"
	"github.com/wrdl/assist/words"
)

const assistHelp = `commands:
  <guess> <result>  record a round, result is five of G (exact), Y (present), - (absent)
  <result>          record a round for the last suggested guess
  guess, g          suggest the next guess
  list, l           list the remaining candidates
  remove <word>     drop a word the game rejected
  dump              show everything known so far
  help, h           this text
  quit, q           leave
`

// runAssist is the interactive session against a game running
// elsewhere. Rejected rounds leave the session state untouched, so a
// typo never poisons the game.
func runAssist(dict *words.List, logger zerolog.Logger, in io.Reader, out io.Writer) error {
	s, err := solver.New(dict)
	if err != nil {
		return err
	}
	s.SetLogger(logger)

	guessNum := 1
	lastGuess := ""
	fmt.Fprintln(out, "enter: <guess> <result>   result letters: G exact, Y present, - absent   'help' for more")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		fields := strings.Fields(strings.ToLower(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "q", "exit":
			return nil
		case "help", "h":
			fmt.Fprint(out, assistHelp)
		case "guess", "g":
			lastGuess = s.NextGuess(guessNum)
			fmt.Fprintln(out, lastGuess)
		case "list", "l":
			fmt.Fprintln(out, strings.Join(s.Possible(), " "))
		case "dump":
			fmt.Fprint(out, s.Dump())
		case "remove":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: remove <word>")
				continue
			}
			if err := s.Remove(fields[1]); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			printPossible(out, s)
		default:
			var word, result string
			switch len(fields) {
			case 1:
				if lastGuess == "" {
					fmt.Fprintln(out, "no suggested guess yet, enter <guess> <result>")
					continue
				}
				word, result = lastGuess, fields[0]
			case 2:
				word, result = fields[0], fields[1]
			default:
				fmt.Fprintln(out, "enter <guess> <result>, or 'help'")
				continue
			}
			fb, err := solver.ParseFeedback(result)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if fb.Success() {
				fmt.Fprintln(out, "solved!")
				return nil
			}
			if err := s.ProcessFeedback(word, fb); err != nil {
				fmt.Fprintf(out, "%v (nothing recorded)\n", err)
				continue
			}
			guessNum++
			lastGuess = ""
			printPossible(out, s)
		}
	}
}
