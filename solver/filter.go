package solver

// Filter returns the subset of possible secrets whose feedback for
// guess equals observed. The result is always a subset of the input,
// and a secret that genuinely produced observed is never eliminated,
// which is what keeps the solving loop sound. Filtering twice with the
// same guess and pattern is a no-op.
func Filter(table *Table, possible *CandidateSet, guess string, observed Pattern) *CandidateSet {
	row := table.Row(guess)
	next := possible.dict.emptyCandidates()
	for i := range possible.Range {
		if row[i] == observed {
			next.bits.Set(uint(i))
		}
	}
	return next
}
