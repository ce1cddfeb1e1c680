package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// GlobalConfiguration is built from the global flags before any command runs.
type GlobalConfiguration struct {
	words    *wordle.WordList
	length   int
	selector wordle.Selector
	opening  string
	progress bool
}

// gameOptions are the NewGame options shared by the commands.
func (c GlobalConfiguration) gameOptions() []wordle.Option {
	opts := []wordle.Option{wordle.WithSelector(c.selector)}
	if c.length != 0 {
		opts = append(opts, wordle.WithLength(c.length))
	}
	return opts
}

// loadWords reads one word per line from path, or the embedded list when path
// is empty. count > 0 keeps only the first count words.
func loadWords(path string, count int) (*wordle.WordList, error) {
	words := wordle.DefaultWords()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		words = nil
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			words = append(words, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	wl, err := wordle.NewWordList(words)
	if err != nil {
		return nil, err
	}
	if count > 0 && count < wl.Len() {
		limited := make([]string, 0, count)
		for _, w := range wl.Words()[:count] {
			limited = append(limited, string(w))
		}
		return wordle.NewWordList(limited)
	}
	return wl, nil
}

func globalConfiguration(wordsFile string, count, length, penalty int, opening string, progress bool) (GlobalConfiguration, error) {
	wl, err := loadWords(wordsFile, count)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	log.Debug().Int("words", wl.Len()).Ints("lengths", wl.Lengths()).Str("file", wordsFile).Msg("word list loaded")
	return GlobalConfiguration{
		words:    wl,
		length:   length,
		selector: wordle.Selector{DuplicatePenalty: penalty},
		opening:  opening,
		progress: progress,
	}, nil
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return nil
}
