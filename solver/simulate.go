package solver

import "context"

// scriptedGame answers feedback for a fixed known secret, which turns a
// Session into a self-play simulation.
type scriptedGame struct {
	secret  string
	guesses []string
}

func (g *scriptedGame) Submit(_ context.Context, guess string) error {
	g.guesses = append(g.guesses, guess)
	return nil
}

func (g *scriptedGame) Observe(_ context.Context, turn int) (Pattern, error) {
	return Compute(g.guesses[turn-1], g.secret), nil
}

// Simulate plays one full session against a known secret and returns
// the terminal result.
func Simulate(ctx context.Context, dict *Dictionary, table *Table, selector *Selector, secret string, maxTurns int) Result {
	session := NewSession(dict, table, selector, maxTurns)
	return session.Run(ctx, &scriptedGame{secret: secret})
}
