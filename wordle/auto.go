package wordle

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/wrdl/assist/solver"
)

// GameResult records one self-played game.
type GameResult struct {
	Secret  string
	Guesses []string
	Solved  bool
	Err     error
}

// Play runs the solver against a known secret until it wins or the
// guess limit is spent. A solver error mid-game (an oracle bug or a
// secret outside the dictionary) ends the game unsolved with Err set.
func Play(dict solver.Dictionary, secret string, log zerolog.Logger) GameResult {
	res := GameResult{Secret: secret}
	s, err := solver.New(dict)
	if err != nil {
		res.Err = err
		return res
	}
	s.SetLogger(log)
	for guessNum := 1; guessNum <= solver.GuessLimit; guessNum++ {
		guess := s.NextGuess(guessNum)
		res.Guesses = append(res.Guesses, guess)
		won, fb, err := Respond(secret, guess)
		if err != nil {
			res.Err = err
			return res
		}
		if won {
			res.Solved = true
			return res
		}
		if err := s.ProcessFeedback(guess, fb); err != nil {
			res.Err = err
			return res
		}
	}
	return res
}

// AutoOptions configures a batch of self-played games.
type AutoOptions struct {
	Games    int    // how many games to play, default 100
	Word     string // play this secret instead of random ones
	All      bool   // play every dictionary word once
	Workers  int    // concurrent games, default GOMAXPROCS
	Progress bool
	Log      zerolog.Logger
}

// Report aggregates a batch of self-played games.
type Report struct {
	Played   int
	Tally    map[int]int // guesses used -> games won in that many
	Failures []string    // secrets not solved within the limit, sorted
}

// Average returns the mean number of guesses over the solved games.
func (r Report) Average() float64 {
	games, guesses := 0, 0
	for n, won := range r.Tally {
		games += won
		guesses += n * won
	}
	if games == 0 {
		return 0
	}
	return float64(guesses) / float64(games)
}

// Auto plays a batch of games concurrently and tallies the outcomes.
// Individual game failures land in the report; only a bad batch
// configuration is an error.
func Auto(dict solver.Dictionary, opts AutoOptions) (Report, error) {
	report := Report{Tally: make(map[int]int)}
	ws := dict.Words()
	if len(ws) == 0 {
		return report, solver.ErrEmptyDictionary
	}

	games := opts.Games
	if games <= 0 {
		games = 100
	}
	var secrets []string
	switch {
	case opts.All:
		secrets = ws
	case opts.Word != "":
		// repeating one secret is the point: random tie-breaking
		// makes every game take its own path
		w := strings.ToLower(opts.Word)
		if !solver.ValidWord(w) {
			return report, fmt.Errorf("%w: secret %q", solver.ErrMalformedInput, opts.Word)
		}
		for i := 0; i < games; i++ {
			secrets = append(secrets, w)
		}
	default:
		for i := 0; i < games; i++ {
			secrets = append(secrets, ws[rand.Intn(len(ws))])
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bar := progressbar.DefaultSilent(int64(len(secrets)))
	if opts.Progress {
		bar = progressbar.Default(int64(len(secrets)))
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(workers)
	for _, secret := range secrets {
		secret := secret
		g.Go(func() error {
			res := Play(dict, secret, opts.Log)
			if res.Err != nil {
				opts.Log.Error().Err(res.Err).Str("secret", res.Secret).Msg("game aborted")
			}
			mu.Lock()
			report.Played++
			if res.Solved {
				report.Tally[len(res.Guesses)]++
			} else {
				report.Failures = append(report.Failures, res.Secret)
			}
			mu.Unlock()
			bar.Add(1)
			return nil
		})
	}
	// workers report through the mutex, never through errors
	_ = g.Wait()

	sort.Strings(report.Failures)
	return report, nil
}
