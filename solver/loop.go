package solver

import (
	"context"
	"fmt"
)

// DefaultMaxTurns is the number of guesses a session may use.
const DefaultMaxTurns = 6

// Game is the external side of a solving session: something that
// accepts a submitted guess and reports the observed feedback for a
// turn. Errors from either call stop the session; any retry policy
// belongs to the implementation, not the loop.
type Game interface {
	Submit(ctx context.Context, guess string) error
	Observe(ctx context.Context, turn int) (Pattern, error)
}

// Status is the terminal state of a session.
type Status int

const (
	// Solved means a guess came back all-correct.
	Solved Status = iota
	// Exhausted means the turns ran out, or the candidate set ran empty
	// because the feedback contradicted the dictionary.
	Exhausted
	// Aborted means the external game failed to take a guess or report
	// feedback.
	Aborted
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Step records one completed turn.
type Step struct {
	Turn      int
	Guess     string
	Score     float64
	Observed  Pattern
	Remaining int // possible secrets left after this turn
}

// Result describes how a session ended. Steps is the full trail of
// guesses and observed patterns, which is the diagnostic detail for an
// Exhausted or Aborted run.
type Result struct {
	Status Status
	Turns  int
	Steps  []Step
	Reason error // set for Aborted runs and inconsistent-feedback Exhausted runs
}

// Session owns one solving run: the shrinking possible-secret set plus
// the shared read-only table and selector. Sessions are sequential by
// nature, turn N needs turn N-1's feedback, but independent sessions
// can share one table and selector freely.
type Session struct {
	table    *Table
	selector *Selector
	possible *CandidateSet
	maxTurns int
}

// NewSession starts a session over the full secret universe.
// maxTurns <= 0 means DefaultMaxTurns.
func NewSession(dict *Dictionary, table *Table, selector *Selector, maxTurns int) *Session {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Session{
		table:    table,
		selector: selector,
		possible: dict.AllCandidates(),
		maxTurns: maxTurns,
	}
}

// Possible is the current possible-secret set.
func (s *Session) Possible() *CandidateSet { return s.possible }

// Run drives the session to a terminal state: select a guess, submit
// it, observe feedback, filter, repeat. External failures abort the
// run without retrying. An empty candidate set ends in Exhausted with
// the reason attached rather than panicking, since it usually means a
// mistranscribed pattern at the boundary, not a solver bug.
func (s *Session) Run(ctx context.Context, game Game) Result {
	var result Result
	solvedPattern := AllCorrect(s.possible.dict.length)
	for turn := 1; turn <= s.maxTurns; turn++ {
		result.Turns = turn
		if s.possible.Len() == 0 {
			result.Status = Exhausted
			result.Reason = fmt.Errorf("turn %d: %w: feedback is inconsistent with the dictionary", turn, ErrEmptyPossibleSet)
			return result
		}
		guess, err := s.selector.Select(ctx, s.possible)
		if err != nil {
			result.Status = Aborted
			result.Reason = err
			return result
		}
		if err := game.Submit(ctx, guess.Word); err != nil {
			result.Status = Aborted
			result.Reason = fmt.Errorf("submit %q: %w: %w", guess.Word, ErrExternal, err)
			return result
		}
		observed, err := game.Observe(ctx, turn)
		if err != nil {
			result.Status = Aborted
			result.Reason = fmt.Errorf("observe turn %d: %w: %w", turn, ErrExternal, err)
			return result
		}
		if observed == solvedPattern {
			result.Steps = append(result.Steps, Step{
				Turn: turn, Guess: guess.Word, Score: guess.Score, Observed: observed, Remaining: 1,
			})
			result.Status = Solved
			return result
		}
		s.possible = Filter(s.table, s.possible, guess.Word, observed)
		result.Steps = append(result.Steps, Step{
			Turn: turn, Guess: guess.Word, Score: guess.Score, Observed: observed, Remaining: s.possible.Len(),
		})
	}
	result.Status = Exhausted
	return result
}
