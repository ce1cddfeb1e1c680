package wordle

import (
	"fmt"
)

// Solve replays the guess/answer pairs of a game played elsewhere, for example
// on a web page, and returns the next guess together with the words still
// possible. With no records it suggests an opening for the default length.
func Solve(list *WordList, sel Selector, records []GuessRecord) (Word, Pool, error) {
	if list == nil || list.Len() == 0 {
		return "", Pool{}, fmt.Errorf("%w: no words", ErrInvalidWordList)
	}
	length := list.DefaultLength()
	if len(records) > 0 {
		length = records[0].Guess.Len()
	}
	part, err := list.Partition(length)
	if err != nil {
		return "", Pool{}, err
	}
	pool := part.All()
	for _, record := range records {
		pool, err = Filter(pool, record.Guess, record.Pattern)
		if err != nil {
			return "", Pool{}, fmt.Errorf("%s: %w", record, err)
		}
	}
	next, err := sel.Select(pool)
	if err != nil {
		return "", pool, err
	}
	return next, pool, nil
}

// ParseRecords reads alternating guess and answer strings, like
// "raise", "rryrr", "hotly", "yryrr".
func ParseRecords(pairs []string) ([]GuessRecord, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: must have pairs of guess answer", ErrInvalidPattern)
	}
	ret := make([]GuessRecord, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		guess, err := NormalizeWord(pairs[i])
		if err != nil {
			return nil, err
		}
		pattern, err := ParsePattern(pairs[i+1])
		if err != nil {
			return nil, err
		}
		if len(pattern) != guess.Len() {
			return nil, fmt.Errorf("%w: answer %s does not fit guess %q", ErrLengthMismatch, pattern, guess)
		}
		ret = append(ret, GuessRecord{Guess: guess, Pattern: pattern})
	}
	return ret, nil
}
