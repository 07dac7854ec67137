package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordlent/wordlent/solver"
)

func newTestStore(t *testing.T) *Store {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	assert.Nil(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInsertAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	solved := solver.Result{
		Status: solver.Solved,
		Turns:  3,
		Steps: []solver.Step{
			{Turn: 1, Guess: "crane"},
			{Turn: 2, Guess: "moist"},
			{Turn: 3, Guess: "pluck"},
		},
	}
	assert.Nil(t, store.Insert(ctx, "pluck", solved))

	exhausted := solver.Result{
		Status: solver.Exhausted,
		Turns:  6,
		Steps:  []solver.Step{{Turn: 1, Guess: "crane"}},
	}
	assert.Nil(t, store.Insert(ctx, "jazzy", exhausted))

	records, err := store.Recent(ctx, 10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(records))

	// Newest first.
	assert.Equal(t, "jazzy", records[0].Secret)
	assert.Equal(t, "exhausted", records[0].Status)
	assert.Equal(t, 6, records[0].Turns)
	assert.Equal(t, []string{"crane"}, records[0].Guesses)

	assert.Equal(t, "pluck", records[1].Secret)
	assert.Equal(t, "solved", records[1].Status)
	assert.Equal(t, []string{"crane", "moist", "pluck"}, records[1].Guesses)
	assert.False(t, records[1].CreatedAt.IsZero())
}

func TestRecentLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		result := solver.Result{Status: solver.Solved, Turns: 1,
			Steps: []solver.Step{{Turn: 1, Guess: "crane"}}}
		assert.Nil(t, store.Insert(ctx, "crane", result))
	}

	records, err := store.Recent(ctx, 3)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(records))
}

func TestRecentEmpty(t *testing.T) {
	store := newTestStore(t)
	records, err := store.Recent(context.Background(), 0)
	assert.Nil(t, err)
	assert.Empty(t, records)
}
