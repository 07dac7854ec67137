package solver

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// DefaultFewCutoff is the candidate count at or below which the
// selector guesses a possible secret directly instead of an
// information-only word: with this few candidates left a lucky guess
// ends the game, which beats one more scouting turn.
const DefaultFewCutoff = 2

// ScoredGuess pairs a candidate guess with its entropy score.
type ScoredGuess struct {
	Word  string
	Score float64
}

// Selector picks the next guess for a shrinking possible-secret set.
// The table and allowed vocabulary are shared read-only, so one
// Selector serves concurrent sessions.
type Selector struct {
	Table   *Table
	Allowed []string // full guess vocabulary, sorted
	// FewCutoff overrides DefaultFewCutoff when positive.
	FewCutoff int
	// Workers is the number of scoring goroutines, one per CPU when zero.
	Workers int
}

// NewSelector returns a Selector over the given guess vocabulary.
func NewSelector(table *Table, allowed []string) *Selector {
	sorted := make([]string, len(allowed))
	copy(sorted, allowed)
	sort.Strings(sorted)
	return &Selector{Table: table, Allowed: sorted}
}

func (s *Selector) fewCutoff() int {
	if s.FewCutoff > 0 {
		return s.FewCutoff
	}
	return DefaultFewCutoff
}

func (s *Selector) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Select scores every candidate guess against the possible secrets and
// returns the best one. Ties on score resolve to the lexicographically
// smallest word, so identical inputs always produce identical output.
func (s *Selector) Select(ctx context.Context, possible *CandidateSet) (ScoredGuess, error) {
	candidates := s.Allowed
	if possible.Len() <= s.fewCutoff() {
		candidates = possible.Words()
	}
	if len(candidates) == 0 {
		return ScoredGuess{}, fmt.Errorf("select: %w", ErrNoCandidates)
	}
	scores, err := s.scoreAll(ctx, candidates, possible)
	if err != nil {
		return ScoredGuess{}, err
	}
	best := ScoredGuess{Word: candidates[0], Score: scores[0]}
	for i := 1; i < len(candidates); i++ {
		if scores[i] > best.Score || (scores[i] == best.Score && candidates[i] < best.Word) {
			best = ScoredGuess{Word: candidates[i], Score: scores[i]}
		}
	}
	return best, nil
}

// scoreAll is a parallel map over candidates. Workers read the shared
// table and candidate set and each writes only its own slice chunk, so
// no locking is needed beyond the table's own lazy fill.
func (s *Selector) scoreAll(ctx context.Context, candidates []string, possible *CandidateSet) ([]float64, error) {
	scores := make([]float64, len(candidates))
	workers := s.workers()
	chunk := (len(candidates) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(candidates); start += chunk {
		end := min(start+chunk, len(candidates))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				scores[i] = Entropy(s.Table, candidates[i], possible)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
