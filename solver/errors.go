package solver

import "errors"

var (
	// ErrLengthMismatch reports a word whose length disagrees with the
	// dictionary's fixed word length.
	ErrLengthMismatch = errors.New("word length mismatch")
	// ErrNoCandidates reports a guess selection over an empty pool.
	ErrNoCandidates = errors.New("no candidate guesses")
	// ErrEmptyPossibleSet reports that filtering eliminated every secret,
	// meaning the observed feedback contradicts the dictionary.
	ErrEmptyPossibleSet = errors.New("empty possible secret set")
	// ErrExternal reports a failure in the submit or observe channel.
	ErrExternal = errors.New("external channel failed")
)
