package solver

import "errors"

// The three error kinds a feedback transaction can produce. All are
// recoverable: the solver state is unchanged when any of them is
// returned, so the caller may retry with corrected input.
var (
	// ErrMalformedInput: guess or feedback is not exactly five symbols
	// from the permitted alphabets. Detected before any state mutation.
	ErrMalformedInput = errors.New("malformed input")

	// ErrContradiction: feedback conflicts with positional knowledge
	// already proven, e.g. EXACT feedback for a slot bound to a
	// different letter. The transaction is rolled back.
	ErrContradiction = errors.New("contradictory feedback")

	// ErrUnsatisfiable: the accumulated feedback is consistent with no
	// dictionary word at all. Usually an operator typo or a secret
	// outside the dictionary. The transaction is rolled back.
	ErrUnsatisfiable = errors.New("no possible words remain")
)

// ErrEmptyDictionary is returned by New for a dictionary with no words.
var ErrEmptyDictionary = errors.New("dictionary has no words")
