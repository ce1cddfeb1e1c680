package wordle

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/samber/lo"
)

// WordList is an immutable list of words partitioned by length. A word is
// addressed by its index inside its Partition.
type WordList struct {
	words      []Word
	lengths    []int
	partitions map[int]*Partition
}

// Partition holds the words of one length in list order.
type Partition struct {
	length int
	words  []Word
	runes  [][]rune
	lookup map[Word]int

	indexOnce sync.Once
	index     *Index
}

// NewWordList normalizes (trim, lower case) and de-duplicates words, keeping
// the first occurrence. Blank entries and lines starting with # are skipped.
// A word with a non letter character or an empty result returns
// ErrInvalidWordList.
func NewWordList(words []string) (*WordList, error) {
	words = lo.FilterMap(words, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != "" && !strings.HasPrefix(s, "#")
	})
	normalized := make([]Word, 0, len(words))
	for _, s := range words {
		w, err := NormalizeWord(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWordList, err)
		}
		normalized = append(normalized, w)
	}
	normalized = lo.Uniq(normalized)
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidWordList)
	}

	ret := &WordList{
		words:      normalized,
		partitions: make(map[int]*Partition),
	}
	for _, w := range normalized {
		runes := []rune(string(w))
		p, ok := ret.partitions[len(runes)]
		if !ok {
			p = &Partition{length: len(runes), lookup: make(map[Word]int)}
			ret.partitions[len(runes)] = p
			ret.lengths = append(ret.lengths, len(runes))
		}
		p.lookup[w] = len(p.words)
		p.words = append(p.words, w)
		p.runes = append(p.runes, runes)
	}
	return ret, nil
}

// Len returns the number of distinct words.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Words returns the words in list order.
func (wl *WordList) Words() []Word {
	return append([]Word(nil), wl.words...)
}

// Lengths returns the word lengths present, in order of first appearance.
func (wl *WordList) Lengths() []int {
	return append([]int(nil), wl.lengths...)
}

// DefaultLength is the length of the first listed word.
func (wl *WordList) DefaultLength() int {
	return wl.lengths[0]
}

// Partition returns the words of the given length.
func (wl *WordList) Partition(length int) (*Partition, error) {
	p, ok := wl.partitions[length]
	if !ok {
		return nil, fmt.Errorf("%w: no words of length %d", ErrInvalidWordList, length)
	}
	return p, nil
}

// Contains reports whether w is in the list.
func (wl *WordList) Contains(w Word) bool {
	p, ok := wl.partitions[w.Len()]
	if !ok {
		return false
	}
	_, ok = p.lookup[w]
	return ok
}

func (p *Partition) Len() int {
	return len(p.words)
}

// WordLength is the length of every word in the partition.
func (p *Partition) WordLength() int {
	return p.length
}

func (p *Partition) Word(i int) Word {
	return p.words[i]
}

// Lookup returns the index of w in the partition.
func (p *Partition) Lookup(w Word) (int, bool) {
	i, ok := p.lookup[w]
	return i, ok
}

// Index returns the filter index of the partition, building it on first use.
// It is safe for concurrent use.
func (p *Partition) Index() *Index {
	p.indexOnce.Do(func() {
		p.index = newIndex(p)
	})
	return p.index
}

// All returns a pool holding every word of the partition.
func (p *Partition) All() Pool {
	set := bitset.New(uint(p.Len()))
	for i := range p.words {
		set.Set(uint(i))
	}
	return Pool{part: p, set: set}
}

// Empty returns a pool with no words.
func (p *Partition) Empty() Pool {
	return Pool{part: p, set: bitset.New(uint(p.Len()))}
}

// PoolOf returns a pool holding the given words. Every word must be in the
// partition.
func (p *Partition) PoolOf(words ...Word) (Pool, error) {
	ret := p.Empty()
	for _, w := range words {
		i, ok := p.lookup[w]
		if !ok {
			return Pool{}, fmt.Errorf("%w: %s", ErrUnknownWord, w)
		}
		ret.set.Set(uint(i))
	}
	return ret, nil
}

// Pool is a set of candidate words from one Partition. Pools are values and
// are never modified once returned; filtering produces a new Pool.
type Pool struct {
	part *Partition
	set  *bitset.BitSet
}

// Len returns the number of candidates.
func (pl Pool) Len() int {
	if pl.set == nil {
		return 0
	}
	return int(pl.set.Count())
}

// WordLength returns the length of the words in the pool.
func (pl Pool) WordLength() int {
	if pl.part == nil {
		return 0
	}
	return pl.part.length
}

// Contains reports whether w is a candidate.
func (pl Pool) Contains(w Word) bool {
	if pl.part == nil {
		return false
	}
	i, ok := pl.part.lookup[w]
	return ok && pl.set.Test(uint(i))
}

// All iterates the candidates in list order.
func (pl Pool) All(yield func(i int, word Word) bool) {
	if pl.set == nil {
		return
	}
	i := 0
	for index, ok := pl.set.NextSet(0); ok; index, ok = pl.set.NextSet(index + 1) {
		if !yield(i, pl.part.words[index]) {
			return
		}
		i++
	}
}

// Words returns the candidates in list order.
func (pl Pool) Words() []Word {
	ret := make([]Word, 0, pl.Len())
	for _, w := range pl.All {
		ret = append(ret, w)
	}
	return ret
}

// First returns the first candidate in list order.
func (pl Pool) First() (Word, bool) {
	for _, w := range pl.All {
		return w, true
	}
	return "", false
}

// Equal reports whether both pools hold the same candidates.
func (pl Pool) Equal(o Pool) bool {
	if pl.Len() == 0 || o.Len() == 0 {
		return pl.Len() == o.Len()
	}
	return pl.part == o.part && pl.set.Equal(o.set)
}

// indexes iterates the partition indexes of the candidates.
func (pl Pool) indexes(yield func(index int) bool) {
	if pl.set == nil {
		return
	}
	for index, ok := pl.set.NextSet(0); ok; index, ok = pl.set.NextSet(index + 1) {
		if !yield(int(index)) {
			return
		}
	}
}
