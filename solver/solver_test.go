package solver

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrdl/assist/words"
)

func newTestSolver(t *testing.T, ws ...string) *Solver {
	t.Helper()
	dict, err := words.New(ws)
	require.NoError(t, err)
	s, err := New(dict)
	require.NoError(t, err)
	return s
}

// captureState is the test-side mirror of the transaction snapshot,
// used to check rollbacks leave nothing behind.
func captureState(s *Solver) snapshot {
	return s.snapshot()
}

func assertStateEqual(t *testing.T, want snapshot, s *Solver) {
	t.Helper()
	assert.True(t, want.possible.Equal(s.possible), "possible-word set changed")
	assert.Equal(t, want.known, s.known, "known-letters board changed")
	assert.True(t, reflect.DeepEqual(want.letters, s.letters), "letter records changed")
}

func TestNewRejectsEmptyDictionary(t *testing.T) {
	dict, err := words.New([]string{"slate"})
	require.NoError(t, err)
	_, err = New(dict)
	require.NoError(t, err)

	_, err = New(emptyDict{})
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

type emptyDict struct{}

func (emptyDict) Words() []string          { return nil }
func (emptyDict) Frequency(string) float64 { return 0 }

func TestRoundTrip(t *testing.T) {
	s := newTestSolver(t, "slate", "crane", "trace", "grape")
	require.NoError(t, s.ProcessResponse("trace", "GGGGG"))
	assert.Equal(t, []string{"trace"}, s.Possible())
}

func TestCraneAgainstTrace(t *testing.T) {
	// secret "trace": C is present elsewhere, R, A and E are exact.
	s := newTestSolver(t, "slate", "crane", "trace", "grape")
	require.NoError(t, s.ProcessResponse("crane", "YGG-G"))
	assert.Equal(t, []string{"trace"}, s.Possible())
}

func TestRecomputeIdempotent(t *testing.T) {
	s := newTestSolver(t, "slate", "crane", "trace", "grape", "still", "split")
	require.NoError(t, s.ProcessResponse("crane", "-----"))

	before := s.possible.Clone()
	require.NoError(t, s.recompute())
	assert.True(t, before.Equal(s.possible))
}

func TestPossibleSetMonotonic(t *testing.T) {
	s := newTestSolver(t, "slate", "crane", "trace", "grape", "still", "split", "swims", "choir")
	// three rounds against secret "swims"
	rounds := []struct{ word, resp string }{
		{"crane", "-----"},
		{"split", "G--Y-"},
		{"swims", "GGGGG"},
	}
	prev := s.PossibleCount()
	for _, r := range rounds {
		err := s.ProcessFeedback(r.word, mustParse(t, r.resp))
		if err != nil {
			// a rejected round must not change the count either
			assert.Equal(t, prev, s.PossibleCount())
			continue
		}
		assert.LessOrEqual(t, s.PossibleCount(), prev)
		assert.NotZero(t, s.PossibleCount())
		prev = s.PossibleCount()
	}
}

func mustParse(t *testing.T, resp string) Feedback {
	t.Helper()
	fb, err := ParseFeedback(resp)
	require.NoError(t, err)
	return fb
}

func TestContradictionRollsBack(t *testing.T) {
	s := newTestSolver(t, "slate", "crane")
	// secret "slate": A and E exact, C/R/N absent.
	require.NoError(t, s.ProcessResponse("crane", "--G-G"))
	require.Equal(t, []string{"slate"}, s.Possible())

	before := captureState(s)
	err := s.ProcessResponse("query", "--G--") // binds E where A is known
	assert.ErrorIs(t, err, ErrContradiction)
	assertStateEqual(t, before, s)
}

func TestUnsatisfiableRollsBack(t *testing.T) {
	s := newTestSolver(t, "slate", "crane")
	before := captureState(s)
	// claiming T, R, A, C and E are all absent leaves nothing
	err := s.ProcessResponse("trace", "-----")
	assert.ErrorIs(t, err, ErrUnsatisfiable)
	assertStateEqual(t, before, s)
}

func TestMalformedInputRejectedBeforeMutation(t *testing.T) {
	s := newTestSolver(t, "slate", "crane")
	before := captureState(s)

	assert.ErrorIs(t, s.ProcessResponse("abc", "GGGGG"), ErrMalformedInput)
	assert.ErrorIs(t, s.ProcessResponse("slate!", "GGGGG"), ErrMalformedInput)
	assert.ErrorIs(t, s.ProcessResponse("slate", "GGG"), ErrMalformedInput)
	assert.ErrorIs(t, s.ProcessResponse("slate", "GGXGG"), ErrMalformedInput)
	assert.ErrorIs(t, s.ProcessFeedback("slate", Feedback{9, 0, 0, 0, 0}), ErrMalformedInput)

	assertStateEqual(t, before, s)
}

func TestInferenceBindsUnanimousLetter(t *testing.T) {
	// every word starts with S but no EXACT feedback ever said so
	s := newTestSolver(t, "still", "split", "swims")
	require.NoError(t, s.ProcessResponse("crane", "-----"))

	assert.Equal(t, 3, s.PossibleCount())
	assert.Equal(t, byte('s'), s.known[0])
	rec := &s.letters['s'-'a']
	assert.True(t, rec.appearsAt.Contains(0))
	assert.Equal(t, 1, rec.count)
}

func TestDuplicateLetterCounts(t *testing.T) {
	// guess "array" against secret "radar": one A exact, one A present,
	// both R's present, Y absent.
	s := newTestSolver(t, "radar", "array", "alarm", "amber")
	require.NoError(t, s.ProcessResponse("array", "YYYG-"))

	a := &s.letters['a'-'a']
	assert.Equal(t, 2, a.count, "two credited A's set the floor")
	assert.False(t, a.exactCount)

	r := &s.letters['r'-'a']
	assert.Equal(t, 2, r.count)
	assert.False(t, r.exactCount)

	y := &s.letters['y'-'a']
	assert.Equal(t, 0, y.count)
	assert.True(t, y.exactCount, "an absent Y fixes its count at zero")

	assert.Equal(t, []string{"radar"}, s.Possible())
}

func TestExactCountFreezesFloor(t *testing.T) {
	s := newTestSolver(t, "slate", "crane", "about", "alarm")
	// one A credited, one A absent: exactly one A
	require.NoError(t, s.applyFeedback("aroma", mustParse(t, "Y---W")))
	a := &s.letters['a'-'a']
	require.True(t, a.exactCount)
	require.Equal(t, 1, a.count)

	// a later round crediting the same single A changes nothing
	require.NoError(t, s.applyFeedback("alarm", mustParse(t, "Y----")))
	assert.Equal(t, 1, a.count)
	assert.True(t, a.exactCount)
}

func TestFrozenCountContradiction(t *testing.T) {
	s := newTestSolver(t, "winch", "slime", "about")
	// every letter of the guess absent: A is fixed at zero copies
	require.NoError(t, s.ProcessResponse("about", "-----"))
	before := captureState(s)

	// a later round claiming an A anyway must be refused whole, not
	// partially applied through its other letters
	err := s.ProcessResponse("armed", "Y----")
	assert.ErrorIs(t, err, ErrContradiction)
	assertStateEqual(t, before, s)
	assert.Equal(t, []string{"winch", "slime"}, s.Possible())
}

func TestExactCountIsSticky(t *testing.T) {
	s := newTestSolver(t, "slate", "crane", "about", "alarm")
	require.NoError(t, s.applyFeedback("about", mustParse(t, "Y----")))
	a := &s.letters['a'-'a']
	require.False(t, a.exactCount)
	require.Equal(t, 1, a.count)

	require.NoError(t, s.applyFeedback("alarm", mustParse(t, "Y----")))
	assert.Equal(t, 1, a.count)

	// a round with an absent A freezes the count...
	require.NoError(t, s.applyFeedback("aroma", mustParse(t, "Y---W")))
	require.True(t, a.exactCount)
	// ...and a later round without one must not unfreeze it
	require.NoError(t, s.applyFeedback("again", mustParse(t, "Y----")))
	assert.True(t, a.exactCount)
}

func TestNextGuessSinglePossible(t *testing.T) {
	s := newTestSolver(t, "slate", "crane", "trace", "grape")
	require.NoError(t, s.ProcessResponse("trace", "GGGGG"))
	assert.Equal(t, "trace", s.NextGuess(2))
}

func TestNextGuessGuaranteedWinPhase(t *testing.T) {
	// 4 possible words, 5 guesses left: eliminate one at a time,
	// starting with the most common word.
	s := newTestSolver(t, "slate", "crane", "trace", "grape")
	assert.Equal(t, "slate", s.NextGuess(1))
}

func TestNextGuessInformativePhase(t *testing.T) {
	ws := []string{"slate", "crane", "trace", "grape", "still", "split", "swims", "choir"}
	s := newTestSolver(t, ws...)
	guess := s.NextGuess(1) // 8 possible > 5 remaining guesses
	assert.True(t, ValidWord(guess))
	assert.Contains(t, ws, guess)
}

func TestNextGuessLastGuess(t *testing.T) {
	ws := []string{"slate", "crane", "trace", "grape", "still", "split", "swims", "choir"}
	s := newTestSolver(t, ws...)
	assert.Equal(t, "slate", s.NextGuess(GuessLimit))
}

func TestRemove(t *testing.T) {
	s := newTestSolver(t, "slate", "crane", "trace")
	require.NoError(t, s.Remove("crane"))
	assert.Equal(t, []string{"slate", "trace"}, s.Possible())

	assert.ErrorIs(t, s.Remove("zzzzz"), ErrMalformedInput)

	require.NoError(t, s.Remove("slate"))
	err := s.Remove("trace")
	assert.ErrorIs(t, err, ErrUnsatisfiable)
	assert.Equal(t, []string{"trace"}, s.Possible())
}

func TestDump(t *testing.T) {
	s := newTestSolver(t, "slate", "crane")
	require.NoError(t, s.ProcessResponse("crane", "--G-G"))
	dump := s.Dump()
	assert.Contains(t, dump, "Known letters: ")
	assert.Contains(t, dump, "possible words")
}

func TestParseFeedbackSymbolSets(t *testing.T) {
	canonical := mustParse(t, "GY--G")
	for _, alias := range []string{"gy--g", "GO--G", "gOwWg", "GYWWG"} {
		fb, err := ParseFeedback(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, canonical, fb, alias)
	}
	assert.Equal(t, "GY--G", canonical.String())
	assert.False(t, canonical.Success())
	assert.True(t, mustParse(t, "GGGGG").Success())
}
