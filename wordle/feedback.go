package wordle

import "fmt"

// Score returns the feedback for guess when the hidden word is secret.
//
// Exact letters are marked first and removed from the pool of secret letters,
// then the remaining guess letters, left to right, are Partial while the pool
// still holds a copy of the letter and Absent otherwise. A letter is never
// credited more often than it appears in the secret.
func Score(secret, guess Word) (Pattern, error) {
	return scoreRunes([]rune(string(secret)), []rune(string(guess)))
}

func scoreRunes(secret, guess []rune) (Pattern, error) {
	if len(secret) != len(guess) {
		return nil, fmt.Errorf("%w: secret has %d letters, guess %q has %d", ErrLengthMismatch, len(secret), string(guess), len(guess))
	}
	ret := make(Pattern, len(guess))
	remaining := make(map[rune]int, len(secret))
	for _, letter := range secret {
		remaining[letter]++
	}
	for i, letter := range guess {
		if letter == secret[i] {
			ret[i] = Exact
			remaining[letter]--
		}
	}
	// turn the absent to partial if the letter is still unused
	for i, letter := range guess {
		if ret[i] == Exact {
			continue
		}
		if remaining[letter] > 0 {
			ret[i] = Partial
			remaining[letter]--
		}
	}
	return ret, nil
}
