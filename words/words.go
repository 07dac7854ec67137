// Package words ships the embedded word lists: the answer universe the
// solver deduces over, and the larger vocabulary of words a game
// accepts as guesses. Lists are validated once at load and read-only
// afterwards.
package words

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"

	"github.com/wordlent/wordlent/solver"
)

//go:embed answers.txt
var answersFile string

// guesses.txt holds the words accepted as guesses that are never
// answers; the full guess vocabulary is its union with the answers.
//
//go:embed guesses.txt
var guessesFile string

// Lists holds the validated dictionaries for one game configuration.
type Lists struct {
	Answers []string // secret universe, sorted
	Guesses []string // allowed guesses, sorted, superset of Answers
	Length  int
}

// Load parses and validates the embedded word lists.
func Load() (*Lists, error) {
	return New(parse(answersFile), parse(guessesFile))
}

// New builds validated Lists from an answer list and extra allowed-only
// guesses. Words must be lowercase a-z and all one length; duplicates
// within and across the lists are dropped.
func New(answers, extra []string) (*Lists, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("words: empty answer list")
	}
	length := len(answers[0])

	answerSet := mapset.NewSet()
	guessSet := mapset.NewSet()
	for _, word := range answers {
		if err := check(word, length); err != nil {
			return nil, err
		}
		answerSet.Add(word)
		guessSet.Add(word)
	}
	for _, word := range extra {
		if err := check(word, length); err != nil {
			return nil, err
		}
		guessSet.Add(word)
	}

	// guessSet is the union of the answers and the extras, so the
	// Answers-subset-of-Guesses invariant holds by construction.
	ret := &Lists{
		Answers: collect(answerSet),
		Guesses: collect(guessSet),
		Length:  length,
	}
	return ret, nil
}

// Allowed reports whether word may legally be guessed.
func (l *Lists) Allowed(word string) bool {
	i := sort.SearchStrings(l.Guesses, word)
	return i < len(l.Guesses) && l.Guesses[i] == word
}

func check(word string, length int) error {
	if len(word) != length {
		return fmt.Errorf("words: %q: %w: want %d letters", word, solver.ErrLengthMismatch, length)
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("words: %q: letters must be lowercase a-z", word)
		}
	}
	return nil
}

func collect(set mapset.Set) []string {
	ret := make([]string, 0, set.Cardinality())
	for word := range set.Iter() {
		ret = append(ret, word.(string))
	}
	sort.Strings(ret)
	return ret
}

func parse(file string) []string {
	var ret []string
	for _, line := range strings.Split(file, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ret = append(ret, line)
		}
	}
	return ret
}
