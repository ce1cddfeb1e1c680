package wordle

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// Selector picks the next guess from the candidates using positional letter
// frequencies: a word scores the number of candidates sharing each of its
// letters in the same position.
type Selector struct {
	// DuplicatePenalty is subtracted once for every repeated letter of a word,
	// favoring guesses that test more distinct letters. 0 disables it.
	DuplicatePenalty int
}

// DefaultSelector penalizes each repeated letter by one point.
var DefaultSelector = Selector{DuplicatePenalty: 1}

// WordScore is a candidate and its selector score, higher is better.
type WordScore struct {
	Word  Word
	Score int
}

// Select returns the highest scoring candidate. Ties go to the word that comes
// first in list order, so the result is deterministic. An empty pool returns
// ErrEmptyPool.
func (s Selector) Select(pool Pool) (Word, error) {
	if pool.Len() == 0 {
		return "", ErrEmptyPool
	}
	if pool.Len() == 1 {
		w, _ := pool.First()
		return w, nil
	}
	freq := s.frequencies(pool)
	best, bestScore := -1, 0
	for index := range pool.indexes {
		score := s.score(freq, pool.part.runes[index])
		if best < 0 || score > bestScore {
			best, bestScore = index, score
		}
	}
	return pool.part.words[best], nil
}

// Rank returns every candidate ordered by descending score, ties in list order.
func (s Selector) Rank(pool Pool) []WordScore {
	freq := s.frequencies(pool)
	ret := make([]WordScore, 0, pool.Len())
	for index := range pool.indexes {
		ret = append(ret, WordScore{Word: pool.part.words[index], Score: s.score(freq, pool.part.runes[index])})
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Score > ret[j].Score
	})
	return ret
}

// frequencies counts, for each position, how many candidates have each letter
// there.
func (s Selector) frequencies(pool Pool) []map[rune]int {
	freq := make([]map[rune]int, pool.WordLength())
	for l := range freq {
		freq[l] = make(map[rune]int)
	}
	for index := range pool.indexes {
		for l, letter := range pool.part.runes[index] {
			freq[l][letter]++
		}
	}
	return freq
}

func (s Selector) score(freq []map[rune]int, word []rune) int {
	score := 0
	distinct := mapset.NewThreadUnsafeSet()
	for l, letter := range word {
		score += freq[l][letter]
		distinct.Add(letter)
	}
	return score - s.DuplicatePenalty*(len(word)-distinct.Cardinality())
}
