package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTable(t *testing.T, words []string) (*Dictionary, *Table) {
	t.Helper()
	dict, err := NewDictionary(words)
	if err != nil {
		t.Fatal(err)
	}
	return dict, NewTable(dict)
}

func TestEntropyDistinctPatterns(t *testing.T) {
	dict, table := newTestTable(t, []string{"abcde", "abcdf", "zzzzz"})
	possible := dict.AllCandidates()

	// abcde splits the three candidates into three distinct patterns
	got := Entropy(table, "abcde", possible)
	assert.InDelta(t, math.Log2(3), got, 1e-12)
}

func TestEntropyNoInformation(t *testing.T) {
	dict, table := newTestTable(t, []string{"abcde", "abcdf"})
	possible := dict.AllCandidates()

	// zzzzz answers rrrrr for both candidates, learning nothing
	assert.Zero(t, Entropy(table, "zzzzz", possible))
}

func TestEntropyBounds(t *testing.T) {
	words := []string{"ababa", "aabbb", "zzzzz", "abcde", "aaaaa", "babab", "cdcdc"}
	dict, table := newTestTable(t, words)
	possible := dict.AllCandidates()
	limit := math.Log2(float64(possible.Len()))
	for _, guess := range words {
		score := Entropy(table, guess, possible)
		assert.GreaterOrEqual(t, score, 0.0, guess)
		assert.LessOrEqual(t, score, limit+1e-12, guess)
	}
}

func TestEntropySingleCandidate(t *testing.T) {
	dict, table := newTestTable(t, []string{"abcde", "abcdf"})
	possible, err := dict.Candidates([]string{"abcde"})
	assert.NoError(t, err)
	assert.Zero(t, Entropy(table, "abcdf", possible))
}
