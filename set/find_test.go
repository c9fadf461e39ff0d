package set

import "testing"

func cardsAt(indices ...int) []Card {
	cards := make([]Card, len(indices))
	for i, ix := range indices {
		cards[i] = NewCard(ix)
	}
	return cards
}

func TestCountSetsFullDeck(t *testing.T) {
	t.Parallel()
	cards := Cards()
	if got := len(FindAllSets(cards)); got != 1080 {
		t.Errorf("FindAllSets = %d sets, want 1080", got)
	}
	if got := CountSets(cards); got != 1080 {
		t.Errorf("CountSets = %d, want 1080", got)
	}
}

func TestCountSuperSetsFullDeck(t *testing.T) {
	t.Parallel()
	cards := Cards()
	if got := len(FindAllSuperSets(cards)); got != 63180 {
		t.Errorf("FindAllSuperSets = %d supersets, want 63180", got)
	}
	if got := CountSuperSets(cards); got != 63180 {
		t.Errorf("CountSuperSets = %d, want 63180", got)
	}
}

func TestFindFirstSet(t *testing.T) {
	t.Parallel()
	// 9 cards containing exactly one set: (21, 41, 58)
	cards := cardsAt(11, 19, 31, 34, 64, 72, 21, 41, 58)
	if got := CountSets(cards); got != 1 {
		t.Fatalf("CountSets = %d, want 1", got)
	}
	if !ContainsSet(cards) {
		t.Fatal("ContainsSet = false")
	}

	s, ok := FindFirstSet(cards)
	if !ok {
		t.Fatal("FindFirstSet found nothing")
	}
	a, b, c := s.Cards()
	got := map[int]bool{a.Index(): true, b.Index(): true, c.Index(): true}
	for _, want := range []int{21, 41, 58} {
		if !got[want] {
			t.Errorf("set %v %v %v missing card %d", a, b, c, want)
		}
	}
}

func TestFindNothing(t *testing.T) {
	t.Parallel()
	// too few cards for either match arity
	cards := cardsAt(0, 1)

	if _, ok := FindFirstSet(cards); ok {
		t.Error("found a set in 2 cards")
	}
	if _, ok := FindFirstSuperSet(cards); ok {
		t.Error("found a superset in 2 cards")
	}
	if ContainsSet(cards) || ContainsSuperSet(cards) {
		t.Error("contains reported a match in 2 cards")
	}
	if all := FindAllSets(cards); len(all) != 0 {
		t.Errorf("FindAllSets = %v", all)
	}
}

func TestFindConsistency(t *testing.T) {
	t.Parallel()
	// the first 20 cards of the deck exercise both hits and misses
	cards := Cards()[:20]

	all := FindAllSets(cards)
	if got := CountSets(cards); got != len(all) {
		t.Errorf("CountSets = %d, FindAllSets = %d", got, len(all))
	}
	if got := ContainsSet(cards); got != (len(all) > 0) {
		t.Errorf("ContainsSet = %v with %d sets", got, len(all))
	}
	if first, ok := FindFirstSet(cards); ok != (len(all) > 0) {
		t.Errorf("FindFirstSet ok = %v with %d sets", ok, len(all))
	} else if ok && first != all[0] {
		t.Error("FindFirstSet disagrees with FindAllSets order")
	}
}
