// Package dealcount exhaustively counts n-card deals that contain no
// SuperSet, to find the smallest deal size guaranteed to contain one.
//
// The search works on card indices and the precomputed completion
// table rather than packed cards, building hands recursively and
// abandoning a branch as soon as the partial hand contains a
// SuperSet. Because a pruned branch skips its sub-deals, each deal
// size must be counted in its own run.
package dealcount

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/setsquared/set"
)

const superSetSize = 4

// Result summarizes a count for one deal size.
type Result struct {
	DealSize     int
	NullDeals    uint64 // deals containing no superset
	Combinations uint64 // C(81, DealSize)
	Elapsed      time.Duration
}

// SuperSetDeals returns the number of deals that contain at least one
// SuperSet.
func (r Result) SuperSetDeals() uint64 {
	return r.Combinations - r.NullDeals
}

// PctWithout returns the percentage of deals with no SuperSet.
func (r Result) PctWithout() float64 {
	return float64(r.NullDeals) / float64(r.Combinations) * 100
}

// CountNullSuperSets counts the dealSize-card deals with no SuperSet,
// fanning the top-card axis out across the given number of workers
// (<= 0 means one per available CPU, via errgroup's limiter).
func CountNullSuperSets(ctx context.Context, dealSize, workers int) (Result, error) {
	if dealSize < superSetSize {
		return Result{}, fmt.Errorf("deal size %d is smaller than a superset", dealSize)
	}

	start := time.Now()
	table := set.CompletionTable()

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	var nullDeals atomic.Uint64
	for top := dealSize - 1; top < set.DeckSize; top++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nullDeals.Add(dealHands(table, top, dealSize))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{
		DealSize:     dealSize,
		NullDeals:    nullDeals.Load(),
		Combinations: Choose(set.DeckSize, uint64(dealSize)),
		Elapsed:      time.Since(start),
	}, nil
}

// dealHands counts superset-free deals whose highest card index is
// top.
func dealHands(table *[set.DeckSize][set.DeckSize]uint8, top, dealSize int) uint64 {
	hand := make([]int, 1, dealSize)
	hand[0] = top

	var nullCount uint64
	dealAnotherCard(table, hand, dealSize-2, top, &nullCount)
	return nullCount
}

// dealAnotherCard extends hand with every card index below limit,
// recursing until depth reaches zero. depth is the number of cards
// still needed after the one being added.
func dealAnotherCard(table *[set.DeckSize][set.DeckSize]uint8, hand []int, depth, limit int, nullCount *uint64) {
	for next := depth; next < limit; next++ {
		if len(hand) >= superSetSize-1 && containsSuperSet(table, hand, next) {
			// the branch already holds a superset; skip it
			continue
		}

		if depth == 0 {
			// the hand is full and contains no superset
			*nullCount++
			continue
		}

		hand = append(hand, next)
		dealAnotherCard(table, hand, depth-1, next, nullCount)
		hand = hand[:len(hand)-1]
	}
}

// isSuperSet tests four card indices with the completion table: some
// split into two pairs must complete to the same card.
func isSuperSet(table *[set.DeckSize][set.DeckSize]uint8, a, b, c, d int) bool {
	return table[a][b] == table[c][d] ||
		table[a][c] == table[b][d] ||
		table[a][d] == table[b][c]
}

// containsSuperSet assumes hand is superset-free and tests only the
// combinations that include extra.
func containsSuperSet(table *[set.DeckSize][set.DeckSize]uint8, hand []int, extra int) bool {
	for a := 2; a < len(hand); a++ {
		for b := 1; b < a; b++ {
			for c := 0; c < b; c++ {
				if isSuperSet(table, hand[a], hand[b], hand[c], extra) {
					return true
				}
			}
		}
	}
	return false
}

// Choose computes the binomial coefficient C(n, k). It overflows
// uint64 for C(81, k) when 18 < k < 63, which is ample for the deal
// sizes searched here.
func Choose(n, k uint64) uint64 {
	m := min(k, n-k) + 1
	var product uint64 = 1
	for i := uint64(1); i < m; i++ {
		product = product * (n + 1 - i) / i
	}
	return product
}
