package wordle

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
)

/*
Index answers filter questions for a whole partition with set operations.

letters[0]['a'] is the set of words whose first letter is an a, letters[1]['a']
words with an a in the second position, ...

atLeast['a'][0] is the set of words with 1 or more a, atLeast['a'][1] words
with 2 or more a, ...

A word is represented by its index in the partition.
*/
type Index struct {
	part    *Partition
	letters []map[rune]*bitset.BitSet
	atLeast map[rune][]*bitset.BitSet
}

func newIndex(p *Partition) *Index {
	size := uint(p.Len())
	ret := &Index{
		part:    p,
		letters: make([]map[rune]*bitset.BitSet, p.length),
		atLeast: make(map[rune][]*bitset.BitSet, 26),
	}
	for l := range ret.letters {
		ret.letters[l] = make(map[rune]*bitset.BitSet)
	}
	for w, word := range p.runes {
		wordLetters := make(map[rune]int, len(word))
		for l, letter := range word {
			set, ok := ret.letters[l][letter]
			if !ok {
				set = bitset.New(size)
				ret.letters[l][letter] = set
			}
			set.Set(uint(w))
			wordLetters[letter]++
		}
		for letter, count := range wordLetters {
			for len(ret.atLeast[letter]) < count {
				ret.atLeast[letter] = append(ret.atLeast[letter], bitset.New(size))
			}
			for c := 0; c < count; c++ {
				ret.atLeast[letter][c].Set(uint(w))
			}
		}
	}
	return ret
}

// withAtLeast returns the words with count or more copies of letter, nil when
// there are none.
func (ix *Index) withAtLeast(letter rune, count int) *bitset.BitSet {
	counts := ix.atLeast[letter]
	if count < 1 || len(counts) < count {
		return nil
	}
	return counts[count-1]
}

// Filter returns the same pool as the package level Filter. The pool must come
// from the partition the index was built for.
func (ix *Index) Filter(pool Pool, guess Word, pattern Pattern) (Pool, error) {
	guessRunes, err := checkFilterArgs(pool, guess, pattern)
	if err != nil {
		return Pool{}, err
	}
	if pool.part != ix.part {
		return Pool{}, fmt.Errorf("%w: pool is not from the indexed partition", ErrInvalidWordList)
	}
	confirmed := confirmedCounts(guessRunes, pattern)
	ret := pool.set.Clone()

	partial := mapset.NewThreadUnsafeSet()
	absent := mapset.NewThreadUnsafeSet()
	for i, m := range pattern {
		letter := guessRunes[i]
		at := ix.letters[i][letter]
		switch m {
		case Exact:
			// only words with the matching letter
			if at == nil {
				ret.ClearAll()
			} else {
				ret.InPlaceIntersection(at)
			}
		case Partial:
			// would have been exact
			if at != nil {
				ret.InPlaceDifference(at)
			}
			partial.Add(letter)
		case Absent:
			absent.Add(letter)
		}
	}

	// partial letters must be in the word at least as often as confirmed
	for _, item := range partial.ToSlice() {
		letter := item.(rune)
		set := ix.withAtLeast(letter, confirmed[letter])
		if set == nil {
			ret.ClearAll()
			break
		}
		ret.InPlaceIntersection(set)
	}

	// absent letters remove the words with more copies than confirmed
	for _, item := range absent.ToSlice() {
		letter := item.(rune)
		if set := ix.withAtLeast(letter, confirmed[letter]+1); set != nil {
			ret.InPlaceDifference(set)
		}
	}
	return Pool{part: pool.part, set: ret}, nil
}
