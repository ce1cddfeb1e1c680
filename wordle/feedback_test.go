package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func P(t testing.TB, colors string) Pattern {
	t.Helper()
	p, err := ParsePattern(colors)
	require.NoError(t, err)
	return p
}

func TestScore(t *testing.T) {
	tests := []struct {
		secret, guess, want string
	}{
		{"train", "train", "ggggg"},
		{"train", "tarin", "gyygg"},
		{"train", "cigar", "ryryy"},
		// e appears once in the secret: one credit, the second e is absent
		{"abide", "speed", "rryry"},
		{"steal", "eerie", "yrrrr"},
		{"speed", "erase", "yrryy"},
		{"level", "eerie", "ygrrr"},
		// the exact e at the end takes the only e, the earlier ones get nothing
		{"abide", "eerie", "rrryg"},
		{"aabbb", "bbaaa", "yyyyr"},
	}
	for _, tt := range tests {
		t.Run(tt.secret+"/"+tt.guess, func(t *testing.T) {
			got, err := Score(Word(tt.secret), Word(tt.guess))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	_, err := Score("train", "trains")
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestScoreRunes(t *testing.T) {
	got, err := Score("maçãs", "ação!")
	require.NoError(t, err)
	assert.Len(t, got, 5)
	got, err = Score("maçãs", "maçãs")
	require.NoError(t, err)
	assert.True(t, got.Solved())
}

// a letter is credited (exact or partial) exactly min(count in secret, count in guess) times
func TestScoreLetterCredits(t *testing.T) {
	words := DefaultWords()[1:80]
	for _, secret := range words {
		for _, guess := range words {
			pattern, err := Score(Word(secret), Word(guess))
			require.NoError(t, err)
			credited := map[rune]int{}
			for i, letter := range []rune(guess) {
				if pattern[i] != Absent {
					credited[letter]++
				}
			}
			secretCounts, guessCounts := map[rune]int{}, map[rune]int{}
			for _, letter := range secret {
				secretCounts[letter]++
			}
			for _, letter := range guess {
				guessCounts[letter]++
			}
			for letter, count := range guessCounts {
				assert.Equal(t, min(count, secretCounts[letter]), credited[letter], "%s/%s letter %c", secret, guess, letter)
			}
		}
	}
}
