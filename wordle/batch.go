package wordle

import (
	"container/heap"
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// BatchConfig describes an opening word ranking run.
type BatchConfig struct {
	// Openings to rank. Empty means every word of the list.
	Openings []string
	// Simulations is the number of games played per opening, each against a
	// random secret of the opening's length.
	Simulations int
	// Concurrency is the number of workers, 0 means GOMAXPROCS.
	Concurrency int
	// Seed makes the run reproducible whatever the concurrency. 0 draws secrets
	// from a fresh random source.
	Seed int64
	// Selector picks the guesses after the opening, nil means DefaultSelector.
	Selector *Selector
	// Progress is called after each opening is done, possibly from several
	// goroutines at once.
	Progress func(BatchResult)
}

// BatchResult is the outcome of the games played with one opening.
type BatchResult struct {
	Opening Word
	// MeanTurns averages the turns used; a lost game counts MaxTurns+1.
	MeanTurns   float64
	Wins        int
	Losses      int
	WinsByTurns map[int]int
}

// RunBatch plays cfg.Simulations automated games for every opening and returns
// the openings ordered by ascending mean turns, ties in opening order.
//
// The openings are split into Concurrency shards that share nothing. When ctx
// is cancelled the workers stop before their next opening and the openings
// already finished are returned with the context error.
func RunBatch(ctx context.Context, list *WordList, cfg BatchConfig) ([]BatchResult, error) {
	if list == nil || list.Len() == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidWordList)
	}
	if cfg.Simulations < 1 {
		return nil, fmt.Errorf("%w: simulations must be positive, got %d", ErrInvalidConfig, cfg.Simulations)
	}
	openings, err := batchOpenings(list, cfg.Openings)
	if err != nil {
		return nil, err
	}
	sel := DefaultSelector
	if cfg.Selector != nil {
		sel = *cfg.Selector
	}
	workers := cfg.Concurrency
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(openings))

	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("openings", len(openings)).Int("simulations", cfg.Simulations).Int("workers", workers).Msg("batch started")

	// each opening index is written by exactly one shard
	results := make([]*BatchResult, len(openings))
	g, gctx := errgroup.WithContext(ctx)
	for shard := range workers {
		g.Go(func() error {
			for i := shard; i < len(openings); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				var rng Rand
				if cfg.Seed == 0 {
					rng = frand.New()
				} else {
					rng = rand.New(rand.NewSource(cfg.Seed + int64(i)))
				}
				result, err := simulateOpening(list, openings[i], cfg.Simulations, sel, rng)
				if err != nil {
					return err
				}
				results[i] = &result
				if cfg.Progress != nil {
					cfg.Progress(result)
				}
			}
			logger.Debug().Int("shard", shard).Msg("shard finished")
			return nil
		})
	}
	err = g.Wait()
	return mergeResults(results), err
}

func batchOpenings(list *WordList, openings []string) ([]Word, error) {
	if len(openings) == 0 {
		return list.Words(), nil
	}
	ret := make([]Word, 0, len(openings))
	for _, s := range openings {
		w, err := NormalizeWord(s)
		if err != nil {
			return nil, fmt.Errorf("opening: %w", err)
		}
		if _, err := list.Partition(w.Len()); err != nil {
			return nil, fmt.Errorf("opening %q: %w", w, err)
		}
		ret = append(ret, w)
	}
	return ret, nil
}

func simulateOpening(list *WordList, opening Word, simulations int, sel Selector, rng Rand) (BatchResult, error) {
	ret := BatchResult{Opening: opening, WinsByTurns: make(map[int]int)}
	total := 0
	for range simulations {
		game, err := NewGame(list,
			WithLength(opening.Len()),
			WithOpening(string(opening)),
			WithSelector(sel),
			WithRand(rng))
		if err != nil {
			return ret, err
		}
		turns, err := game.AutoPlay()
		if err != nil {
			return ret, fmt.Errorf("opening %q secret %q: %w", opening, game.Secret(), err)
		}
		if game.State() == Won {
			ret.Wins++
			ret.WinsByTurns[turns]++
			total += turns
		} else {
			ret.Losses++
			total += MaxTurns + 1
		}
	}
	ret.MeanTurns = float64(total) / float64(simulations)
	return ret, nil
}

// MinHeap is a generic min-heap that can store any type T.
type MinHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func (h *MinHeap[T]) Len() int           { return len(h.data) }
func (h *MinHeap[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h *MinHeap[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

// Push adds an element to the heap.
func (h *MinHeap[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

// Pop removes the highest-priority element.
func (h *MinHeap[T]) Pop() any {
	n := len(h.data)
	item := h.data[n-1]
	h.data = h.data[0 : n-1]
	return item
}

type rankedResult struct {
	order  int
	result *BatchResult
}

// mergeResults orders the finished results by mean turns, then by opening
// order. Unfinished openings are nil and skipped.
func mergeResults(results []*BatchResult) []BatchResult {
	h := &MinHeap[rankedResult]{
		less: func(a, b rankedResult) bool {
			if a.result.MeanTurns != b.result.MeanTurns {
				return a.result.MeanTurns < b.result.MeanTurns
			}
			return a.order < b.order
		},
	}
	for i, result := range results {
		if result != nil {
			heap.Push(h, rankedResult{order: i, result: result})
		}
	}
	ret := make([]BatchResult, 0, h.Len())
	for h.Len() > 0 {
		ret = append(ret, *heap.Pop(h).(rankedResult).result)
	}
	return ret
}
