package wordle

import "errors"

var (
	// ErrLengthMismatch is returned when a guess, pattern or secret does not
	// have the word length of the game or pool it is used with.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrEmptyPool means no candidate is consistent with the feedback so far.
	ErrEmptyPool = errors.New("empty candidate pool")

	// ErrInvalidWordList is returned for an empty word list or when no word
	// of the requested length exists.
	ErrInvalidWordList = errors.New("invalid word list")

	ErrInvalidWord    = errors.New("invalid word")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrUnknownWord    = errors.New("word not in word list")
	ErrGameOver       = errors.New("game over")
	ErrInvalidConfig  = errors.New("invalid batch configuration")
)
