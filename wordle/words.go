package wordle

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed words.txt
var embeddedWords string

// DefaultWords returns the embedded five letter word list.
func DefaultWords() []string {
	return strings.Split(embeddedWords, "\n")
}

var defaultWordList = sync.OnceValues(func() (*WordList, error) {
	return NewWordList(DefaultWords())
})

// DefaultWordList returns the embedded list, parsed once.
func DefaultWordList() (*WordList, error) {
	return defaultWordList()
}
