// Package statistics accumulates tallies from simulated solitaire
// games: how often a layout of each size was playable, and how many
// cards were left when games ended.
package statistics

import (
	"fmt"
	"strings"
)

// MaxLayout bounds the layout sizes we tally. A layout only grows past
// the initial deal while it is stuck, so in practice it never reaches
// 21 cards.
const MaxLayout = 22

// Statistics tracks per-layout-size outcomes across many games. It is
// owned by one worker at a time; combine workers with Merge.
type Statistics struct {
	// Matches[n] counts layouts of size n that contained a match.
	Matches [MaxLayout]uint64
	// NoMatches[n] counts layouts of size n that were stuck.
	NoMatches [MaxLayout]uint64
	// Remainder[n] counts games that ended with n cards on the table.
	Remainder [MaxLayout]uint64
}

// Merge adds other's tallies into s.
func (s *Statistics) Merge(other *Statistics) {
	for i := range MaxLayout {
		s.Matches[i] += other.Matches[i]
		s.NoMatches[i] += other.NoMatches[i]
		s.Remainder[i] += other.Remainder[i]
	}
}

// Games returns the number of completed games, which is the sum of
// the end-of-game remainder tallies.
func (s *Statistics) Games() uint64 {
	var total uint64
	for _, n := range s.Remainder {
		total += n
	}
	return total
}

// LayoutRow is one row of the per-layout-size summary.
type LayoutRow struct {
	Size      int
	Matches   uint64
	NoMatches uint64
	Total     uint64
	Ratio     string  // matches : no matches, rounded
	PctStuck  float64 // stuck layouts as a percentage of this size
}

// LayoutRows summarizes layout sizes that were ever stuck, smallest
// first.
func (s *Statistics) LayoutRows() []LayoutRow {
	var rows []LayoutRow
	for size := 1; size < MaxLayout; size++ {
		matches, noMatches := s.Matches[size], s.NoMatches[size]
		if noMatches == 0 {
			continue
		}

		total := matches + noMatches
		rows = append(rows, LayoutRow{
			Size:      size,
			Matches:   matches,
			NoMatches: noMatches,
			Total:     total,
			Ratio:     ratio(matches, noMatches),
			PctStuck:  float64(noMatches) / float64(total) * 100,
		})
	}
	return rows
}

// EndRow is one row of the end-of-game summary.
type EndRow struct {
	CardsLeft   int
	Occurrences uint64
	PctGames    float64
}

// EndRows summarizes how games ended, fewest cards left first.
func (s *Statistics) EndRows() []EndRow {
	games := s.Games()
	var rows []EndRow
	for size, count := range s.Remainder {
		if count == 0 {
			continue
		}
		rows = append(rows, EndRow{
			CardsLeft:   size,
			Occurrences: count,
			PctGames:    float64(count) / float64(games) * 100,
		})
	}
	return rows
}

func ratio(matches, noMatches uint64) string {
	r := float64(matches) / float64(noMatches)
	if r > 1 {
		return fmt.Sprintf("%.0f:1", r)
	}
	return fmt.Sprintf("1:%.0f", 1/r)
}

// Pretty formats a count with underscore group separators, e.g.
// 1_000_000.
func Pretty(n uint64) string {
	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, "_")
}
