package set

import "math/bits"

// Set is a validated triple of cards. The zero value is not valid;
// obtain one from ToSet or by searching.
type Set struct {
	a, b, c Card
}

// Cards returns the three constituent cards.
func (s Set) Cards() (Card, Card, Card) {
	return s.a, s.b, s.c
}

// ToSet reports whether three cards form a valid Set and returns the
// validated value. Three cards match when their trit-wise sum is zero
// modulo 3 in every feature; with one trit per byte lane the packed
// sum never carries across lanes (lane maximum is 2+2+2), so each
// byte of the word sum can be tested independently.
func ToSet(a, b, c Card) (Set, bool) {
	sum := uint32(a) + uint32(b) + uint32(c)
	for sum != 0 {
		if (sum&0xff)%3 != 0 {
			return Set{}, false
		}
		sum >>= 8
	}
	return Set{a, b, c}, true
}

// Pair is an unordered pair of cards.
type Pair struct {
	A, B Card
}

// SuperSet is a validated group of four cards that splits into two
// pairs with an identical Set completion. The two witnessing pairs are
// interchangeable, but both are exposed for hinting.
type SuperSet struct {
	left, right Pair
}

func (ss SuperSet) Left() Pair {
	return ss.left
}

func (ss SuperSet) Right() Pair {
	return ss.right
}

// ToSuperSet reports whether four cards form a valid SuperSet. It
// tries the three ways of splitting four cards into two pairs and
// accepts the first split whose pair completions coincide.
func ToSuperSet(a, b, c, d Card) (SuperSet, bool) {
	pairings := [3][2]Pair{
		{{a, b}, {c, d}},
		{{a, c}, {b, d}},
		{{a, d}, {b, c}},
	}

	for _, p := range pairings {
		left, right := p[0], p[1]
		if Complete(left.A, left.B) == Complete(right.A, right.B) {
			return SuperSet{left: left, right: right}, true
		}
	}
	return SuperSet{}, false
}

// completions maps the trit-wise sum of two cards to the trit of the
// card completing their Set. For each lane we need the unique x with
// ta+tb+x == 0 (mod 3); two equal trits complete with that same trit,
// two different trits complete with the third, remaining value:
//
//	 A | B | A+B | x
//	---+---+-----+---
//	 0 | 0 |   0 | 0
//	 0 | 1 |   1 | 2
//	 0 | 2 |   2 | 1
//	 1 | 1 |   2 | 1
//	 1 | 2 |   3 | 0
//	 2 | 2 |   4 | 2
var completions = [5]uint32{0, 2, 1, 0, 2}

// Complete returns the unique third card that turns the given pair
// into a valid Set. Complete is commutative, and its result is always
// distinct from both inputs when they are distinct.
func Complete(a, b Card) Card {
	sum := uint32(a) + uint32(b)

	// Compose the per-lane lookups in natural significance order,
	// then flip the bytes back into the order NewCard packs them.
	value := completions[sum&0xff]
	for range 3 {
		value <<= 8
		sum >>= 8
		value |= completions[sum&0xff]
	}
	return Card(bits.ReverseBytes32(value))
}
