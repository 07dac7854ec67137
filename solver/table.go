package solver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Table caches the feedback pattern of every (guess, secret) pair. Each
// row holds the patterns of one guess against the whole secret
// universe, indexed by dictionary position. Rows are filled either up
// front by Build or lazily on first access; once filled they are never
// rewritten, so scoring can read the table from many goroutines.
type Table struct {
	dict *Dictionary
	mu   sync.RWMutex
	rows map[string][]Pattern
}

// NewTable returns an empty table over dict's secret universe.
func NewTable(dict *Dictionary) *Table {
	return &Table{dict: dict, rows: make(map[string][]Pattern)}
}

// Dict returns the secret universe the table is built over.
func (t *Table) Dict() *Dictionary { return t.dict }

func (t *Table) computeRow(guess string) []Pattern {
	row := make([]Pattern, len(t.dict.words))
	for i, secret := range t.dict.words {
		row[i] = Compute(guess, secret)
	}
	return row
}

// Row returns the pattern row for guess, computing and memoizing it on
// first access. Concurrent misses may compute the same row twice; the
// results are identical and the first stored copy wins.
func (t *Table) Row(guess string) []Pattern {
	t.mu.RLock()
	row, ok := t.rows[guess]
	t.mu.RUnlock()
	if ok {
		return row
	}
	row = t.computeRow(guess)
	t.mu.Lock()
	if have, ok := t.rows[guess]; ok {
		row = have
	} else {
		t.rows[guess] = row
	}
	t.mu.Unlock()
	return row
}

// Get returns the pattern for guess against secret.
func (t *Table) Get(guess, secret string) (Pattern, bool) {
	i, ok := t.dict.index[secret]
	if !ok {
		return 0, false
	}
	return t.Row(guess)[i], true
}

// Build fills a row for every guess, parallel across guesses since the
// rows are independent. workers <= 0 means one per available CPU.
// progress, when non-nil, is called once per finished guess, possibly
// from several goroutines.
func (t *Table) Build(ctx context.Context, guesses []string, workers int, progress func(n int)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, guess := range guesses {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := t.computeRow(guess)
			t.mu.Lock()
			t.rows[guess] = row
			t.mu.Unlock()
			if progress != nil {
				progress(1)
			}
			return nil
		})
	}
	return g.Wait()
}

// Rows returns a snapshot of the filled rows, keyed by guess.
func (t *Table) Rows() map[string][]Pattern {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ret := make(map[string][]Pattern, len(t.rows))
	for guess, row := range t.rows {
		ret[guess] = row
	}
	return ret
}

// Restore installs previously persisted rows, replacing any current
// fill. Every row must span the dictionary.
func (t *Table) Restore(rows map[string][]Pattern) error {
	fresh := make(map[string][]Pattern, len(rows))
	for guess, row := range rows {
		if len(row) != len(t.dict.words) {
			return fmt.Errorf("table: row %q has %d entries, dictionary has %d", guess, len(row), len(t.dict.words))
		}
		fresh[guess] = row
	}
	t.mu.Lock()
	t.rows = fresh
	t.mu.Unlock()
	return nil
}

// Fingerprint identifies a (guess vocabulary, secret universe) pairing
// for cache validation: the hex sha256 of both sorted lists. A cached
// table whose fingerprint disagrees with the loaded word lists must be
// rebuilt, not reused.
func Fingerprint(guesses, secrets []string) string {
	h := sha256.New()
	for _, list := range [][]string{guesses, secrets} {
		sorted := make([]string, len(list))
		copy(sorted, list)
		sort.Strings(sorted)
		h.Write([]byte(strings.Join(sorted, "\n")))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
