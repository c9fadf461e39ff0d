package set

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
)

// Cards returns all 81 cards of a fresh deck, in index order.
func Cards() []Card {
	cards := make([]Card, DeckSize)
	for i := range cards {
		cards[i] = NewCard(i)
	}
	return cards
}

// Deck is an ordered stock of cards with stack semantics: draws come
// off the top (the end of the slice). A Deck is owned by a single
// caller; it is not safe for concurrent mutation.
type Deck struct {
	stock []Card
	rng   *rand.Rand
}

// NewDeck returns a full, shuffled deck using the provided random
// source for this and all later shuffles.
func NewDeck(rng *rand.Rand) *Deck {
	cards := Cards()
	Shuffle(rng, cards)
	return &Deck{stock: cards, rng: rng}
}

// Simplify removes every card that does not have solid shading,
// leaving the 27-card beginner deck. Call it before the first draw so
// the deck is still complete and uniformly shuffled.
func (d *Deck) Simplify() {
	d.stock = slices.DeleteFunc(d.stock, func(c Card) bool {
		return c.Shading() != Solid
	})
}

func (d *Deck) IsEmpty() bool {
	return len(d.stock) == 0
}

// Remainder returns the number of cards left in the stock.
func (d *Deck) Remainder() int {
	return len(d.stock)
}

// Draw removes and returns the top n cards. The count is clamped to
// the cards available: drawing from a short or empty deck returns
// fewer cards (possibly none), never an error.
func (d *Deck) Draw(n int) []Card {
	x := min(n, len(d.stock))
	cut := len(d.stock) - x
	draw := slices.Clone(d.stock[cut:])
	d.stock = d.stock[:cut]
	return draw
}

// DrawGuaranteeingSet draws 3 cards such that hand plus the draw (18
// cards) contains at least one Set.
//
// The smallest number of cards guaranteed to contain a Set is 21. The
// odds that 18 cards contain none are so low it almost never happens,
// but when it does we can doctor the deck: with 15 cards on the table
// and at least 6 in the stock, the 21 cards in play must contain a
// Set, and the fixers below make sure its cards end up in the draw.
//
// Three doctoring cases, tried in order after the plain draw fails:
//
//  1. Two cards of a Set are in the hand and its completion is in the
//     stock: move that card into the draw.
//  2. One card is in the hand and two are in the stock: draw that
//     stock pair.
//  3. The whole Set is in the stock: draw exactly those three cards.
//
// The hand must hold exactly 15 cards and the stock at least 6;
// violating either is a caller bug and panics. The second result is
// false only if every tier fails, which cannot happen when the hand
// truly contains no Set and the preconditions hold.
func (d *Deck) DrawGuaranteeingSet(hand []Card) ([]Card, bool) {
	if len(hand) != 15 {
		panic(fmt.Sprintf("set: DrawGuaranteeingSet needs a 15-card hand, got %d", len(hand)))
	}
	if len(d.stock) < 6 {
		panic(fmt.Sprintf("set: DrawGuaranteeingSet needs at least 6 stock cards, got %d", len(d.stock)))
	}

	// A plain draw almost always works.
	draw := d.Draw(3)
	test := append(slices.Clone(hand), draw...)
	if ContainsSet(test) {
		return draw, true
	}
	// return the draw to the stock so we can doctor the deck
	d.stock = append(d.stock, draw...)

	if draw, ok := d.fixOneCard(hand); ok {
		return draw, true
	}
	if draw, ok := d.fixTwoCards(hand); ok {
		return draw, true
	}
	return d.fixThreeCards()
}

// fixOneCard looks for a hand pair whose completion card is somewhere
// in the stock, moves that card to the top, and draws normally.
func (d *Deck) fixOneCard(hand []Card) ([]Card, bool) {
	// shuffle a copy of the hand so we don't favor cards at the
	// front of the layout
	hand = slices.Clone(hand)
	Shuffle(d.rng, hand)

	for i, j := range Pairs(len(hand)) {
		c := Complete(hand[i], hand[j])
		ix := slices.Index(d.stock, c)
		if ix < 0 {
			continue
		}

		// swap the matching card with the top card
		last := len(d.stock) - 1
		d.stock[ix], d.stock[last] = d.stock[last], d.stock[ix]

		draw := d.Draw(3)
		// shuffle to randomize the position of the found card
		Shuffle(d.rng, draw)
		return draw, true
	}
	return nil, false
}

// fixTwoCards looks for a stock pair whose completion card is in the
// hand, removes the pair from the stock, and pads the draw with one
// more arbitrary card.
func (d *Deck) fixTwoCards(hand []Card) ([]Card, bool) {
	for i, j := range Pairs(len(d.stock)) {
		a, b := d.stock[i], d.stock[j]
		if !slices.Contains(hand, Complete(a, b)) {
			continue
		}

		result := []Card{a, b}
		d.stock = slices.DeleteFunc(d.stock, func(c Card) bool {
			return c == a || c == b
		})

		// need 1 more card... any will do
		result = append(result, d.Draw(1)...)
		Shuffle(d.rng, result)
		return result, true
	}
	return nil, false
}

// fixThreeCards pulls the first whole Set out of the stock. The result
// is already a Set, so no shuffling is needed.
func (d *Deck) fixThreeCards() ([]Card, bool) {
	s, ok := FindFirstSet(d.stock)
	if !ok {
		return nil, false
	}

	a, b, c := s.Cards()
	d.stock = slices.DeleteFunc(d.stock, func(n Card) bool {
		return n == a || n == b || n == c
	})
	return []Card{a, b, c}, true
}
