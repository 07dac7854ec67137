package solver

import "math"

// Entropy scores guess by the Shannon entropy, in bits, of the feedback
// pattern distribution it induces over the possible secrets, under a
// uniform prior. Higher is better: the observed pattern is expected to
// cut the candidate set harder. The score is 0 when one or zero
// candidates remain and never exceeds log2 of the candidate count,
// which is reached only when every candidate answers with a distinct
// pattern.
func Entropy(table *Table, guess string, possible *CandidateSet) float64 {
	n := possible.Len()
	if n <= 1 {
		return 0
	}
	row := table.Row(guess)
	counts := make(map[Pattern]int, 32)
	for i := range possible.Range {
		counts[row[i]]++
	}
	total := float64(n)
	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
