package wordle

// Renderer draws a board: the finished guesses and the letters typed so far
// for the current one.
type Renderer interface {
	Render(history []GuessRecord, partial string) error
}

// Charter displays how many games were won in each number of turns.
type Charter interface {
	Chart(winsByTurns map[int]int) error
}
