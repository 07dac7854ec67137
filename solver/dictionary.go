package solver

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Dictionary is the secret universe: the sorted list of words that may
// be the hidden answer, with an index for membership lookups. It is
// immutable once built and shared read-only by all sessions.
type Dictionary struct {
	words  []string
	index  map[string]int
	length int
}

// NewDictionary builds a Dictionary from the secret universe. Words
// must all be one length, at most 16 letters.
func NewDictionary(words []string) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary: no words")
	}
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)
	length := len(sorted[0])
	if length == 0 || length > maxWordLen {
		return nil, fmt.Errorf("dictionary: %w: unsupported word length %d", ErrLengthMismatch, length)
	}
	d := &Dictionary{
		words:  sorted,
		index:  make(map[string]int, len(sorted)),
		length: length,
	}
	for i, word := range sorted {
		if len(word) != length {
			return nil, fmt.Errorf("dictionary: %w: %q is not %d letters", ErrLengthMismatch, word, length)
		}
		d.index[word] = i
	}
	return d, nil
}

// Len is the number of words in the universe.
func (d *Dictionary) Len() int { return len(d.words) }

// Length is the fixed word length.
func (d *Dictionary) Length() int { return d.length }

// Word returns the word at index i in sorted order.
func (d *Dictionary) Word(i int) string { return d.words[i] }

// Index returns the sorted position of word.
func (d *Dictionary) Index(word string) (int, bool) {
	i, ok := d.index[word]
	return i, ok
}

// Words returns a copy of the sorted word list.
func (d *Dictionary) Words() []string {
	ret := make([]string, len(d.words))
	copy(ret, d.words)
	return ret
}

// CandidateSet is a set of still-possible secrets, one bit per
// dictionary index. It only ever shrinks over the life of a session:
// Filter replaces it with a subset, nothing grows it.
type CandidateSet struct {
	dict *Dictionary
	bits *bitset.BitSet
}

// AllCandidates returns the full secret universe, the possible-secret
// set a session starts from.
func (d *Dictionary) AllCandidates() *CandidateSet {
	bits := bitset.New(uint(len(d.words)))
	for i := range d.words {
		bits.Set(uint(i))
	}
	return &CandidateSet{dict: d, bits: bits}
}

// Candidates returns the subset of the universe holding exactly the
// given words.
func (d *Dictionary) Candidates(words []string) (*CandidateSet, error) {
	cs := d.emptyCandidates()
	for _, word := range words {
		i, ok := d.index[word]
		if !ok {
			return nil, fmt.Errorf("candidates: %q not in dictionary", word)
		}
		cs.bits.Set(uint(i))
	}
	return cs, nil
}

func (d *Dictionary) emptyCandidates() *CandidateSet {
	return &CandidateSet{dict: d, bits: bitset.New(uint(len(d.words)))}
}

// Len is the number of possible secrets remaining.
func (cs *CandidateSet) Len() int { return int(cs.bits.Count()) }

// Contains reports whether word is still possible.
func (cs *CandidateSet) Contains(word string) bool {
	i, ok := cs.dict.index[word]
	return ok && cs.bits.Test(uint(i))
}

// Range iterates the candidates in dictionary (lexicographic) order,
// yielding each word's dictionary index and the word itself.
func (cs *CandidateSet) Range(yield func(i int, word string) bool) {
	for i, ok := cs.bits.NextSet(0); ok; i, ok = cs.bits.NextSet(i + 1) {
		if !yield(int(i), cs.dict.words[i]) {
			return
		}
	}
}

// Words returns the remaining candidates in lexicographic order.
func (cs *CandidateSet) Words() []string {
	ret := make([]string, 0, cs.Len())
	for _, word := range cs.Range {
		ret = append(ret, word)
	}
	return ret
}

// First returns the lexicographically smallest remaining candidate.
func (cs *CandidateSet) First() (string, bool) {
	i, ok := cs.bits.NextSet(0)
	if !ok {
		return "", false
	}
	return cs.dict.words[i], true
}
