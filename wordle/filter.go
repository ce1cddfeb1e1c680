package wordle

import "fmt"

// Filter returns the candidates of pool that are consistent with guess having
// received pattern. Candidates keep their list order and pool is not modified.
//
// Every candidate is checked on its own with Consistent. Index.Filter returns
// the same pool using set operations.
func Filter(pool Pool, guess Word, pattern Pattern) (Pool, error) {
	guessRunes, err := checkFilterArgs(pool, guess, pattern)
	if err != nil {
		return Pool{}, err
	}
	confirmed := confirmedCounts(guessRunes, pattern)
	ret := pool.part.Empty()
	for index := range pool.indexes {
		if consistent(pool.part.runes[index], guessRunes, pattern, confirmed) {
			ret.set.Set(uint(index))
		}
	}
	return ret, nil
}

// Consistent reports whether candidate could be the secret given that guess
// received pattern. Words of different lengths are never consistent.
func Consistent(candidate, guess Word, pattern Pattern) bool {
	c, g := []rune(string(candidate)), []rune(string(guess))
	if len(c) != len(g) || len(g) != len(pattern) {
		return false
	}
	return consistent(c, g, pattern, confirmedCounts(g, pattern))
}

func checkFilterArgs(pool Pool, guess Word, pattern Pattern) ([]rune, error) {
	if pool.part == nil {
		return nil, fmt.Errorf("%w: pool has no word list", ErrEmptyPool)
	}
	guessRunes := []rune(string(guess))
	if len(guessRunes) != pool.part.length {
		return nil, fmt.Errorf("%w: guess %q has %d letters, pool words have %d", ErrLengthMismatch, guess, len(guessRunes), pool.part.length)
	}
	if len(pattern) != len(guessRunes) {
		return nil, fmt.Errorf("%w: pattern %s does not fit guess %q", ErrLengthMismatch, pattern, guess)
	}
	return guessRunes, nil
}

// confirmedCounts is the number of Exact plus Partial marks of each guess letter.
func confirmedCounts(guess []rune, pattern Pattern) map[rune]int {
	ret := make(map[rune]int, len(guess))
	for i, m := range pattern {
		if m == Exact || m == Partial {
			ret[guess[i]]++
		}
	}
	return ret
}

// consistent applies the checks in order: exact letters, partial letters and
// then absent letters, stopping at the first failure.
func consistent(candidate, guess []rune, pattern Pattern, confirmed map[rune]int) bool {
	for i, m := range pattern {
		if m == Exact && candidate[i] != guess[i] {
			return false
		}
	}

	counts := make(map[rune]int, len(candidate))
	for _, letter := range candidate {
		counts[letter]++
	}

	// partial: somewhere else in the word, and at least as many copies as
	// the guess confirmed
	for i, m := range pattern {
		if m != Partial {
			continue
		}
		letter := guess[i]
		if counts[letter] == 0 || candidate[i] == letter || counts[letter] < confirmed[letter] {
			return false
		}
	}

	// absent: no copies beyond the confirmed ones. aaxyz/yrrrr allows one a
	for i, m := range pattern {
		if m == Absent && counts[guess[i]] > confirmed[guess[i]] {
			return false
		}
	}
	return true
}
