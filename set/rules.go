package set

import (
	rand "math/rand/v2"
	"slices"
)

// Rules parameterizes the two game variants. The game-flow layer picks
// a Rules value and drives everything else through it; the engine
// itself never branches on the variant.
type Rules interface {
	Name() string

	// DealOrder returns a stack of tableau cell indices: top indices
	// are dealt first when replacement cards are laid out.
	DealOrder() []int

	InitialDealSize() int
	SetSize() int

	// ValidSet reports whether a selection of exactly SetSize cards
	// is a winning group. A selection of any other size is a caller
	// bug and panics.
	ValidSet(selection []Card) bool

	// Hint returns two cards from the layout that extend to a winning
	// group, or nil when the layout is stuck.
	Hint(rng *rand.Rand, cards []Card) []Card

	// Stuck reports whether the layout contains no winning group.
	Stuck(cards []Card) bool

	CountSets(cards []Card) int
}

// SetRules is the classic three-card variant.
type SetRules struct{}

func (SetRules) Name() string { return "Set" }

func (SetRules) DealOrder() []int {
	//
	//  XX   1   2   3  XX
	//   5   6   7   8   9
	//  10  11  12  13  14
	//  15  16  17  18  19
	//
	return []int{19, 14, 9, 15, 10, 5, 18, 17, 16, 13, 12, 11, 8, 7, 6, 3, 2, 1}
}

func (SetRules) InitialDealSize() int { return 12 }
func (SetRules) SetSize() int         { return 3 }

func (r SetRules) ValidSet(selection []Card) bool {
	assertSelectionSize(len(selection), r.SetSize())
	_, ok := ToSet(selection[0], selection[1], selection[2])
	return ok
}

func (SetRules) Hint(rng *rand.Rand, cards []Card) []Card {
	// By shuffling here, we randomize both the order of the
	// discovered sets and the order of the cards within the returned
	// hint pair. Otherwise we favor sets and cards earlier in the
	// layout.
	shuffled := slices.Clone(cards)
	Shuffle(rng, shuffled)

	s, ok := FindFirstSet(shuffled)
	if !ok {
		return nil
	}
	a, b, _ := s.Cards()
	return []Card{a, b}
}

func (SetRules) Stuck(cards []Card) bool {
	return !ContainsSet(cards)
}

func (SetRules) CountSets(cards []Card) int {
	return CountSets(cards)
}

// SuperSetRules is the four-card variant.
type SuperSetRules struct{}

func (SuperSetRules) Name() string { return "SuperSet" }

func (SuperSetRules) DealOrder() []int {
	//
	//  XX   1   2   3  XX
	//  XX   6  XX   8  XX
	//  XX  11  XX  13  XX
	//  XX  16  17  18  XX
	//
	return []int{18, 17, 16, 13, 11, 8, 6, 3, 2, 1}
}

func (SuperSetRules) InitialDealSize() int { return 10 }
func (SuperSetRules) SetSize() int         { return 4 }

func (r SuperSetRules) ValidSet(selection []Card) bool {
	assertSelectionSize(len(selection), r.SetSize())
	return ContainsSuperSet(selection)
}

func (SuperSetRules) Hint(rng *rand.Rand, cards []Card) []Card {
	// Same rationale for randomizing as in SetRules.Hint.
	shuffled := slices.Clone(cards)
	Shuffle(rng, shuffled)

	ss, ok := FindFirstSuperSet(shuffled)
	if !ok {
		return nil
	}
	pair := ss.Left() // or Right
	return []Card{pair.A, pair.B}
}

func (SuperSetRules) Stuck(cards []Card) bool {
	return !ContainsSuperSet(cards)
}

func (SuperSetRules) CountSets(cards []Card) int {
	return CountSuperSets(cards)
}

func assertSelectionSize(got, want int) {
	if got != want {
		panic("set: selection size mismatch")
	}
}
