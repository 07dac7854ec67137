package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionSolves(t *testing.T) {
	assert := assert.New(t)
	dict, table := newTestTable(t, []string{"abcde", "abcdf", "zzzzz"})
	selector := NewSelector(table, dict.Words())

	result := Simulate(context.Background(), dict, table, selector, "abcde", 0)
	assert.Equal(Solved, result.Status)
	assert.NoError(result.Reason)
	assert.NotEmpty(result.Steps)
	last := result.Steps[len(result.Steps)-1]
	assert.Equal("abcde", last.Guess)
	assert.Equal(AllCorrect(5), last.Observed)
	assert.Equal(result.Turns, last.Turn)
}

func TestSessionSolvesEveryWord(t *testing.T) {
	words := []string{"clack", "clamp", "clank", "cloak", "local", "octal", "vocal", "toast"}
	dict, table := newTestTable(t, words)
	selector := NewSelector(table, dict.Words())
	for _, secret := range words {
		result := Simulate(context.Background(), dict, table, selector, secret, 0)
		assert.Equal(t, Solved, result.Status, secret)
		assert.LessOrEqual(t, result.Turns, DefaultMaxTurns, secret)
	}
}

type failingGame struct {
	submitErr  error
	observeErr error
}

func (g *failingGame) Submit(context.Context, string) error {
	return g.submitErr
}

func (g *failingGame) Observe(context.Context, int) (Pattern, error) {
	return 0, g.observeErr
}

func TestSessionAbortsOnSubmitFailure(t *testing.T) {
	dict, table := newTestTable(t, []string{"abcde", "abcdf", "zzzzz"})
	selector := NewSelector(table, dict.Words())
	session := NewSession(dict, table, selector, 0)

	result := session.Run(context.Background(), &failingGame{submitErr: errors.New("keyboard missing")})
	assert.Equal(t, Aborted, result.Status)
	assert.ErrorIs(t, result.Reason, ErrExternal)
	assert.Empty(t, result.Steps)
}

func TestSessionAbortsOnObserveFailure(t *testing.T) {
	dict, table := newTestTable(t, []string{"abcde", "abcdf", "zzzzz"})
	selector := NewSelector(table, dict.Words())
	session := NewSession(dict, table, selector, 0)

	result := session.Run(context.Background(), &failingGame{observeErr: errors.New("board unreadable")})
	assert.Equal(t, Aborted, result.Status)
	assert.ErrorIs(t, result.Reason, ErrExternal)
}

// lyingGame reports all-absent no matter the guess, which no secret in
// the dictionary can explain.
type lyingGame struct{}

func (lyingGame) Submit(context.Context, string) error { return nil }

func (lyingGame) Observe(context.Context, int) (Pattern, error) { return 0, nil }

func TestSessionExhaustsOnInconsistentFeedback(t *testing.T) {
	dict, table := newTestTable(t, []string{"aaaaa", "aaaab"})
	selector := NewSelector(table, dict.Words())
	session := NewSession(dict, table, selector, 0)

	result := session.Run(context.Background(), lyingGame{})
	assert.Equal(t, Exhausted, result.Status)
	assert.ErrorIs(t, result.Reason, ErrEmptyPossibleSet)
	// the diagnostic trail keeps the turn that emptied the set
	assert.Len(t, result.Steps, 1)
	assert.Zero(t, result.Steps[0].Remaining)
}

func TestSessionExhaustsOnTurnLimit(t *testing.T) {
	dict, table := newTestTable(t, []string{"abcde", "abcdf", "zzzzz"})
	selector := NewSelector(table, dict.Words())
	session := NewSession(dict, table, selector, 1)

	// honest feedback for abcdf, but only one turn to work with
	result := session.Run(context.Background(), &scriptedGame{secret: "abcdf"})
	assert.Equal(t, Exhausted, result.Status)
	assert.NoError(t, result.Reason)
	assert.Equal(t, 1, result.Turns)
}
