// Package simulator plays large numbers of solitaire games against
// the rule engine and tallies how often layouts were playable and how
// games ended.
package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/setsquared/internal/randutil"
	"github.com/lox/setsquared/internal/statistics"
	"github.com/lox/setsquared/set"
)

// Config holds configuration for a simulation run.
type Config struct {
	Games      int
	Rules      set.Rules
	Seed       int64
	Workers    int // 0 means GOMAXPROCS
	Simplified bool
	Logger     *log.Logger
}

// Simulator runs solitaire game simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run plays the configured number of games across worker goroutines
// and returns the merged statistics. Each worker derives an
// independent deterministic rng from the run seed, so results are
// reproducible for a fixed seed and worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > s.config.Games {
		workers = max(s.config.Games, 1)
	}

	gamesPerWorker := s.config.Games / workers
	remainder := s.config.Games % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, workers)

	for w := range workers {
		games := gamesPerWorker
		if w < remainder {
			games++
		}
		// independent rng per worker to avoid contention
		workerSeed := s.config.Seed + int64(w)

		g.Go(func() error {
			rng := randutil.New(workerSeed)
			stats := &statistics.Statistics{}
			for i := 0; i < games; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.playGame(rng, stats)
			}
			s.config.Logger.Debug("worker finished", "worker", w, "games", games)

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	totals := &statistics.Statistics{}
	for stats := range results {
		totals.Merge(stats)
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	return totals, nil
}

// playGame deals a fresh deck and plays until the layout is stuck with
// an empty stock, recording a tally at every decision point.
func (s *Simulator) playGame(rng *rand.Rand, stats *statistics.Statistics) {
	rules := s.config.Rules
	deck := set.NewDeck(rng)
	if s.config.Simplified {
		deck.Simplify()
	}
	layout := deck.Draw(rules.InitialDealSize())

	for {
		match := s.randomMatch(rng, layout)
		if match == nil {
			stats.NoMatches[len(layout)]++

			if deck.IsEmpty() {
				// no matches and no stock remaining: game over
				stats.Remainder[len(layout)]++
				return
			}
			// deal more cards to increase the odds of a match
			layout = append(layout, deck.Draw(rules.SetSize())...)
			continue
		}

		stats.Matches[len(layout)]++
		layout = removeCards(layout, match)

		if len(layout) < rules.InitialDealSize() {
			// replace the removed match
			layout = append(layout, deck.Draw(rules.SetSize())...)
		}
	}
}

// randomMatch returns the cards of a uniformly chosen match in the
// layout, or nil when the layout is stuck. Choosing uniformly rather
// than taking the first hit avoids biasing toward cards early in the
// layout.
func (s *Simulator) randomMatch(rng *rand.Rand, layout []set.Card) []set.Card {
	switch s.config.Rules.SetSize() {
	case 3:
		sets := set.FindAllSets(layout)
		if len(sets) == 0 {
			return nil
		}
		a, b, c := sets[rng.IntN(len(sets))].Cards()
		return []set.Card{a, b, c}
	case 4:
		supersets := set.FindAllSuperSets(layout)
		if len(supersets) == 0 {
			return nil
		}
		ss := supersets[rng.IntN(len(supersets))]
		left, right := ss.Left(), ss.Right()
		return []set.Card{left.A, left.B, right.A, right.B}
	default:
		panic(fmt.Sprintf("simulator: unsupported match size %d", s.config.Rules.SetSize()))
	}
}

func removeCards(layout, cards []set.Card) []set.Card {
	kept := layout[:0]
	for _, c := range layout {
		drop := false
		for _, m := range cards {
			if c == m {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	return kept
}
