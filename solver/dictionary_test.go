package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDictionarySortsAndIndexes(t *testing.T) {
	assert := assert.New(t)
	dict, err := NewDictionary([]string{"zzzzz", "abcde", "abcdf"})
	assert.NoError(err)
	assert.Equal([]string{"abcde", "abcdf", "zzzzz"}, dict.Words())
	assert.Equal(5, dict.Length())

	i, ok := dict.Index("abcdf")
	assert.True(ok)
	assert.Equal(1, i)
	assert.Equal("abcdf", dict.Word(1))

	_, ok = dict.Index("qqqqq")
	assert.False(ok)
}

func TestNewDictionaryLengthMismatch(t *testing.T) {
	_, err := NewDictionary([]string{"abcde", "abcd"})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewDictionary(nil)
	assert.Error(t, err)
}

func TestCandidateSet(t *testing.T) {
	assert := assert.New(t)
	dict, err := NewDictionary([]string{"abcde", "abcdf", "zzzzz"})
	assert.NoError(err)

	all := dict.AllCandidates()
	assert.Equal(3, all.Len())
	assert.Equal(dict.Words(), all.Words())
	assert.True(all.Contains("zzzzz"))

	some, err := dict.Candidates([]string{"zzzzz"})
	assert.NoError(err)
	assert.Equal(1, some.Len())
	assert.False(some.Contains("abcde"))
	first, ok := some.First()
	assert.True(ok)
	assert.Equal("zzzzz", first)

	_, err = dict.Candidates([]string{"nope!"})
	assert.Error(err)
}
