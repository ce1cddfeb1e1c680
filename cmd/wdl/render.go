package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/samber/lo"
)

// textRenderer draws the board one guess per line with colored squares.
type textRenderer struct {
	w      io.Writer
	length int
}

func (r textRenderer) Render(history []wordle.GuessRecord, partial string) error {
	for _, record := range history {
		if _, err := fmt.Fprintf(r.w, "%s %s\n", record.Pattern.Emoji(), strings.ToUpper(string(record.Guess))); err != nil {
			return err
		}
	}
	for range wordle.MaxTurns - len(history) {
		row := strings.Repeat("_", r.length)
		if partial != "" {
			row = strings.ToUpper(partial) + strings.Repeat("_", max(0, r.length-len([]rune(partial))))
			partial = ""
		}
		if _, err := fmt.Fprintln(r.w, row); err != nil {
			return err
		}
	}
	return nil
}

// barCharter prints a horizontal bar per number of turns.
type barCharter struct {
	w     io.Writer
	width int
}

func (c barCharter) Chart(winsByTurns map[int]int) error {
	turns := lo.Keys(winsByTurns)
	sort.Ints(turns)
	most := lo.Max(lo.Values(winsByTurns))
	for _, t := range turns {
		bar := 0
		if most > 0 {
			bar = winsByTurns[t] * c.width / most
		}
		if _, err := fmt.Fprintf(c.w, "%2d %-*s %d\n", t, c.width, strings.Repeat("#", bar), winsByTurns[t]); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ wordle.Renderer = textRenderer{}
	_ wordle.Charter  = barCharter{}
)
