package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFrequency(t *testing.T) {
	part := mustPartition(t, mustWordList(t, "abcde", "abcdf", "xbcdf"), 5)
	got, err := DefaultSelector.Select(part.All())
	require.NoError(t, err)
	assert.Equal(t, Word("abcdf"), got)

	ranked := DefaultSelector.Rank(part.All())
	assert.Equal(t, []WordScore{{"abcdf", 13}, {"abcde", 12}, {"xbcdf", 12}}, ranked)
}

func TestSelectTieGoesToFirst(t *testing.T) {
	part := mustPartition(t, mustWordList(t, "abcde", "edcba"), 5)
	got, err := DefaultSelector.Select(part.All())
	require.NoError(t, err)
	assert.Equal(t, Word("abcde"), got)

	part = mustPartition(t, mustWordList(t, "edcba", "abcde"), 5)
	got, err = DefaultSelector.Select(part.All())
	require.NoError(t, err)
	assert.Equal(t, Word("edcba"), got)
}

func TestSelectDuplicatePenalty(t *testing.T) {
	part := mustPartition(t, mustWordList(t, "aabbc", "aabcd", "xxxxx"), 5)
	got, err := Selector{}.Select(part.All())
	require.NoError(t, err)
	assert.Equal(t, Word("aabbc"), got)

	got, err = Selector{DuplicatePenalty: 1}.Select(part.All())
	require.NoError(t, err)
	assert.Equal(t, Word("aabcd"), got)

	ranked := Selector{DuplicatePenalty: 1}.Rank(part.All())
	assert.Equal(t, []WordScore{{"aabcd", 7}, {"aabbc", 6}, {"xxxxx", 1}}, ranked)
}

func TestSelectSingleAndEmpty(t *testing.T) {
	part := mustPartition(t, mustWordList(t, "zzzzz", "abcde", "abcdf"), 5)
	single, err := part.PoolOf("zzzzz")
	require.NoError(t, err)
	for _, sel := range []Selector{{}, {DuplicatePenalty: 100}} {
		got, err := sel.Select(single)
		require.NoError(t, err)
		assert.Equal(t, Word("zzzzz"), got)
	}

	_, err = DefaultSelector.Select(part.Empty())
	assert.ErrorIs(t, err, ErrEmptyPool)
	_, err = DefaultSelector.Select(Pool{})
	assert.ErrorIs(t, err, ErrEmptyPool)
	assert.Empty(t, DefaultSelector.Rank(part.Empty()))
}
