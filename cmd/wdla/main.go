package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/wrdl/assist/solver"
	"github.com/wrdl/assist/wordle"
	"github.com/wrdl/assist/words"
)

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func newLogger(debug, quiet bool) zerolog.Logger {
	if quiet {
		return zerolog.Nop()
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
}

func loadDictionary(count int) (*words.List, error) {
	dict, err := words.Load()
	if err != nil {
		return nil, err
	}
	return dict.Truncated(count), nil
}

// processPairs replays recorded rounds of [guess result]... and prints
// what is still possible plus a suggested next guess.
func processPairs(dict *words.List, logger zerolog.Logger, args []string) error {
	s, err := solver.New(dict)
	if err != nil {
		return err
	}
	s.SetLogger(logger)
	for i := 0; i < len(args); i += 2 {
		if err := s.ProcessResponse(args[i], args[i+1]); err != nil {
			return fmt.Errorf("round %d (%s %s): %w", i/2+1, args[i], args[i+1], err)
		}
	}
	printPossible(os.Stdout, s)
	fmt.Println("next guess:", s.NextGuess(len(args)/2+1))
	return nil
}

// printPossible lists the remaining candidates, or just counts them
// once the list stops being useful to read.
func printPossible(out io.Writer, s *solver.Solver) {
	possible := s.Possible()
	if len(possible) <= 10 {
		fmt.Fprintln(out, strings.Join(possible, " "))
	}
	fmt.Fprintf(out, "%d possible words\n", len(possible))
}

func printReport(out io.Writer, r wordle.Report) {
	for n := 1; n <= solver.GuessLimit; n++ {
		fmt.Fprintf(out, "%d guesses: %d\n", n, r.Tally[n])
	}
	fmt.Fprintf(out, "played %d, average %.2f\n", r.Played, r.Average())
	if len(r.Failures) > 0 {
		fmt.Fprintln(out, "unsolved:", strings.Join(r.Failures, " "))
	}
}

func main() {
	debug := false
	quiet := false
	count := int64(0)
	profile := false
	// command specific flags
	word := ""
	games := int64(0)
	all := false
	workers := int64(0)
	progress := false
	cmd := &cli.Command{
		Name:  "wdla",
		Usage: "wordle assistant",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &count,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Value:       false,
				Aliases:     []string{"d"},
				Usage:       "log solver decisions",
				Destination: &debug,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Value:       false,
				Aliases:     []string{"q"},
				Usage:       "no logging at all",
				Destination: &quiet,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "process",
				Usage: `process [guess result]...
				Replay recorded rounds and print the remaining candidates and a
				suggested next guess. Results are five of G (exact), Y (present),
				- (absent), like "Y-G--".
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					if cmd.NArg() == 0 || cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess result", 1)
					}
					dict, err := loadDictionary(int(count))
					if err != nil {
						return err
					}
					return processPairs(dict, newLogger(debug, quiet), cmd.Args().Slice())
				},
			},
			{
				Name: "assist",
				Usage: `assist
				Interactive session against a game running elsewhere: type each
				guess and the result it got, get back the remaining candidates.
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					dict, err := loadDictionary(int(count))
					if err != nil {
						return err
					}
					return runAssist(dict, newLogger(debug, quiet), os.Stdin, os.Stdout)
				},
			},
			{
				Name: "auto",
				Usage: `auto
				Self-play games and report how many guesses they took.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "games",
						Aliases:     []string{"n", "g"},
						Usage:       "number of games to play",
						Destination: &games,
					},
					&cli.StringFlag{
						Name:        "word",
						Aliases:     []string{"w"},
						Usage:       "play against this secret instead of random ones",
						Destination: &word,
					},
					&cli.BoolFlag{
						Name:        "all",
						Aliases:     []string{"a"},
						Usage:       "play every dictionary word once",
						Destination: &all,
					},
					&cli.IntFlag{
						Name:        "workers",
						Usage:       "concurrent games, 0 is one per CPU",
						Destination: &workers,
					},
					&cli.BoolFlag{
						Name:        "progress",
						Aliases:     []string{"p"},
						Usage:       "show progress bar",
						Destination: &progress,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					dict, err := loadDictionary(int(count))
					if err != nil {
						return err
					}
					report, err := wordle.Auto(dict, wordle.AutoOptions{
						Games:    int(games),
						Word:     word,
						All:      all,
						Workers:  int(workers),
						Progress: progress,
						Log:      newLogger(debug, quiet),
					})
					if err != nil {
						return err
					}
					printReport(os.Stdout, report)
					return nil
				},
			},
			{
				Name: "play",
				Usage: `play
				Play a game in the terminal against a random secret.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "word",
						Aliases:     []string{"w"},
						Usage:       "use this secret instead of a random one",
						Destination: &word,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					dict, err := loadDictionary(int(count))
					if err != nil {
						return err
					}
					return runPlay(dict, word, os.Stdin, os.Stdout)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
