package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordList(t *testing.T) {
	wl, err := NewWordList([]string{"# comment", " Raise", "arise", "", "raise", "cat", "ÁGUAS"})
	require.NoError(t, err)
	assert.Equal(t, []Word{"raise", "arise", "cat", "águas"}, wl.Words())
	assert.Equal(t, 4, wl.Len())
	assert.Equal(t, []int{5, 3}, wl.Lengths())
	assert.Equal(t, 5, wl.DefaultLength())
	assert.True(t, wl.Contains("cat"))
	assert.False(t, wl.Contains("dog"))

	part, err := wl.Partition(5)
	require.NoError(t, err)
	assert.Equal(t, 3, part.Len())
	assert.Equal(t, Word("águas"), part.Word(2))
	i, ok := part.Lookup("arise")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, err = wl.Partition(4)
	assert.ErrorIs(t, err, ErrInvalidWordList)
}

func TestNewWordListInvalid(t *testing.T) {
	_, err := NewWordList(nil)
	assert.ErrorIs(t, err, ErrInvalidWordList)
	_, err = NewWordList([]string{"", "  "})
	assert.ErrorIs(t, err, ErrInvalidWordList)
	_, err = NewWordList([]string{"raise", "ra1se"})
	assert.ErrorIs(t, err, ErrInvalidWordList)
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestDefaultWordList(t *testing.T) {
	wl := defaultList(t)
	assert.Equal(t, []int{5}, wl.Lengths())
	assert.Greater(t, wl.Len(), 200)
	assert.True(t, wl.Contains("train"))
}

func TestPool(t *testing.T) {
	part := mustPartition(t, mustWordList(t, "raise", "arise", "train"), 5)
	all := part.All()
	assert.Equal(t, 3, all.Len())
	assert.Equal(t, 5, all.WordLength())
	first, ok := all.First()
	assert.True(t, ok)
	assert.Equal(t, Word("raise"), first)

	pool, err := part.PoolOf("train", "raise")
	require.NoError(t, err)
	assert.Equal(t, []Word{"raise", "train"}, pool.Words())
	assert.False(t, pool.Contains("arise"))
	assert.False(t, pool.Equal(all))

	_, err = part.PoolOf("crane")
	assert.ErrorIs(t, err, ErrUnknownWord)

	_, ok = part.Empty().First()
	assert.False(t, ok)
	assert.True(t, part.Empty().Equal(Pool{}))
	assert.Equal(t, 0, Pool{}.Len())
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("GRyyr")
	require.NoError(t, err)
	assert.Equal(t, Pattern{Exact, Absent, Partial, Partial, Absent}, p)
	assert.Equal(t, "gryyr", p.String())
	assert.Equal(t, "🟩⬜🟨🟨⬜", p.Emoji())
	assert.False(t, p.Solved())
	assert.True(t, P(t, "ggg").Solved())
	assert.False(t, Pattern{}.Solved())

	_, err = ParsePattern("grxyr")
	assert.ErrorIs(t, err, ErrInvalidPattern)
	_, err = ParsePattern("")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestParseRecords(t *testing.T) {
	records, err := ParseRecords([]string{"raise", "rryrr", "hotly", "yryrr"})
	require.NoError(t, err)
	assert.Equal(t, []GuessRecord{{"raise", P(t, "rryrr")}, {"hotly", P(t, "yryrr")}}, records)

	_, err = ParseRecords([]string{"raise"})
	assert.ErrorIs(t, err, ErrInvalidPattern)
	_, err = ParseRecords([]string{"raise", "rry"})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSolve(t *testing.T) {
	wl := defaultList(t)
	records := []GuessRecord{}
	for _, guess := range []Word{"raise", "cloth"} {
		pattern, err := Score("petal", guess)
		require.NoError(t, err)
		records = append(records, GuessRecord{Guess: guess, Pattern: pattern})
	}
	next, pool, err := Solve(wl, DefaultSelector, records)
	require.NoError(t, err)
	assert.True(t, pool.Contains("petal"))
	assert.True(t, pool.Contains(next))

	next, pool, err = Solve(wl, DefaultSelector, nil)
	require.NoError(t, err)
	assert.Equal(t, wl.Len(), pool.Len())
	assert.NotEmpty(t, next)

	_, _, err = Solve(wl, DefaultSelector, []GuessRecord{{"petal", P(t, "ggggg")}, {"metal", P(t, "ggggg")}})
	assert.ErrorIs(t, err, ErrEmptyPool)
}
