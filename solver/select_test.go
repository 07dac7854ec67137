package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBestSplitter(t *testing.T) {
	dict, table := newTestTable(t, []string{"abcde", "abcdf", "zzzzz"})
	selector := NewSelector(table, dict.Words())

	got, err := selector.Select(context.Background(), dict.AllCandidates())
	assert.NoError(t, err)
	// abcde and abcdf both split all three candidates apart; the tie
	// resolves to the smaller word
	assert.Equal(t, "abcde", got.Word)
}

func TestSelectDeterministic(t *testing.T) {
	words := []string{"ababa", "aabbb", "zzzzz", "abcde", "aaaaa", "babab"}
	dict, table := newTestTable(t, words)
	selector := NewSelector(table, words)
	possible := dict.AllCandidates()

	first, err := selector.Select(context.Background(), possible)
	assert.NoError(t, err)
	for range 10 {
		again, err := selector.Select(context.Background(), possible)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSelectTieBreakLexicographic(t *testing.T) {
	// both remaining words score identically against each other
	dict, table := newTestTable(t, []string{"bbbbb", "aaaaa"})
	selector := NewSelector(table, dict.Words())

	got, err := selector.Select(context.Background(), dict.AllCandidates())
	assert.NoError(t, err)
	assert.Equal(t, "aaaaa", got.Word)
}

func TestSelectFewCandidatesGuessesDirectly(t *testing.T) {
	words := []string{"abcde", "abcdf", "zzzzz", "qqqqq"}
	dict, table := newTestTable(t, words)
	selector := NewSelector(table, []string{"zzzzz", "qqqqq"})

	possible, err := dict.Candidates([]string{"abcde", "abcdf"})
	assert.NoError(t, err)

	// two candidates left: the pool is the candidates themselves, not
	// the information-only vocabulary
	got, err := selector.Select(context.Background(), possible)
	assert.NoError(t, err)
	assert.Equal(t, "abcde", got.Word)
}

func TestSelectCutoffTunable(t *testing.T) {
	words := []string{"abcde", "abcdf", "abcdg", "zzzzz"}
	dict, table := newTestTable(t, words)
	selector := NewSelector(table, words)
	selector.FewCutoff = 3

	possible, err := dict.Candidates([]string{"abcde", "abcdf", "abcdg"})
	assert.NoError(t, err)
	got, err := selector.Select(context.Background(), possible)
	assert.NoError(t, err)
	assert.Contains(t, []string{"abcde", "abcdf", "abcdg"}, got.Word)
}

func TestSelectNoCandidates(t *testing.T) {
	dict, table := newTestTable(t, []string{"abcde", "abcdf", "zzzzz"})
	selector := NewSelector(table, nil)

	_, err := selector.Select(context.Background(), dict.AllCandidates())
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestSelectSingleWorker(t *testing.T) {
	words := []string{"ababa", "aabbb", "zzzzz", "abcde", "aaaaa"}
	dict, table := newTestTable(t, words)
	parallel := NewSelector(table, words)
	serial := NewSelector(table, words)
	serial.Workers = 1

	want, err := serial.Select(context.Background(), dict.AllCandidates())
	assert.NoError(t, err)
	got, err := parallel.Select(context.Background(), dict.AllCandidates())
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
