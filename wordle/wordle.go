package wordle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word is a lower case word. Its length is the number of runes.
type Word string

// Len returns the number of letters in w.
func (w Word) Len() int {
	return utf8.RuneCountInString(string(w))
}

func (w Word) String() string {
	return string(w)
}

// NormalizeWord trims and lower cases s. Only letters are accepted.
func NormalizeWord(s string) (Word, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidWord, s)
		}
	}
	return Word(s), nil
}

// Mark is the feedback for one letter of a guess.
type Mark uint8

const (
	Absent Mark = iota
	Partial
	Exact
)

// String returns the one letter color code: r(ed), y(ellow) or g(reen).
func (m Mark) String() string {
	switch m {
	case Absent:
		return "r"
	case Partial:
		return "y"
	case Exact:
		return "g"
	}
	return "?"
}

// Pattern is the feedback for a whole guess, one Mark per letter.
type Pattern []Mark

// ParsePattern reads a pattern written with the color codes r, y and g,
// for example "grryy". Upper case is accepted.
func ParsePattern(colors string) (Pattern, error) {
	ret := make(Pattern, 0, len(colors))
	for _, color := range strings.ToLower(strings.TrimSpace(colors)) {
		switch color {
		case 'r':
			ret = append(ret, Absent)
		case 'y':
			ret = append(ret, Partial)
		case 'g':
			ret = append(ret, Exact)
		default:
			return nil, fmt.Errorf("%w: %q, use r,y,g like rrggy", ErrInvalidPattern, colors)
		}
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	return ret, nil
}

func (p Pattern) String() string {
	var sb strings.Builder
	for _, m := range p {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// Emoji renders the pattern with colored squares.
func (p Pattern) Emoji() string {
	var sb strings.Builder
	for _, m := range p {
		switch m {
		case Exact:
			sb.WriteString("🟩")
		case Partial:
			sb.WriteString("🟨")
		default:
			sb.WriteString("⬜")
		}
	}
	return sb.String()
}

// Solved reports whether every letter is Exact.
func (p Pattern) Solved() bool {
	if len(p) == 0 {
		return false
	}
	for _, m := range p {
		if m != Exact {
			return false
		}
	}
	return true
}

// Equal reports whether p and o hold the same marks.
func (p Pattern) Equal(o Pattern) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// GuessRecord pairs a submitted guess with the feedback it received.
type GuessRecord struct {
	Guess   Word
	Pattern Pattern
}

func (r GuessRecord) String() string {
	return string(r.Guess) + ":" + r.Pattern.String()
}
