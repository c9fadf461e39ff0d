// Package set implements the rule engine for the Set and SuperSet card
// games: an 81-card deck where every card is a vector of four features,
// each with three possible values.
//
// A card is equivalent to a four-element vector of ternary digits
// (trits). The implementation packs that vector into the four bytes of
// a uint32, which lets the match rules run as lane-wise modular
// arithmetic instead of per-feature branching.
package set

import "fmt"

// DeckSize is the number of distinct cards: 3^4 feature combinations.
const DeckSize = 81

// Card is an immutable card value. The four features are packed one
// trit per byte, with the least significant trit of the card index in
// the most significant byte. That reversal is deliberate: Complete
// accumulates lane sums in natural significance order and flips the
// bytes once at the end.
type Card uint32

// NewCard converts a card index in [0,81) to its packed representation.
// An out-of-range index is a caller bug and panics.
func NewCard(index int) Card {
	if index < 0 || index >= DeckSize {
		panic(fmt.Sprintf("set: card index %d out of range [0,%d)", index, DeckSize))
	}

	value := uint32(index % 3)
	for range 3 {
		value <<= 8
		index /= 3
		value |= uint32(index % 3)
	}
	return Card(value)
}

// Index maps the packed value back to the index it was derived from.
func (c Card) Index() int {
	value := uint32(c)
	result := value & 0xff
	for range 3 {
		value >>= 8
		result *= 3
		result += value & 0xff
	}
	return int(result)
}

func (c Card) String() string {
	return fmt.Sprintf("Card(%d)", c.Index())
}

// feature identifies one of the four byte lanes.
type feature uint

const (
	featureCount feature = iota
	featureShape
	featureColor
	featureShading
)

// Shape is one of the three symbol shapes drawn on a card.
type Shape uint8

const (
	Oval Shape = iota
	Squiggle
	Diamond
)

func (s Shape) String() string {
	switch s {
	case Oval:
		return "oval"
	case Squiggle:
		return "squiggle"
	default:
		return "diamond"
	}
}

// Color is a scheme-agnostic color label. Unlike the other features it
// has no fixed interpretation; the renderer decides what A, B, and C
// look like.
type Color uint8

const (
	ColorA Color = iota
	ColorB
	ColorC
)

func (c Color) String() string {
	switch c {
	case ColorA:
		return "A"
	case ColorB:
		return "B"
	default:
		return "C"
	}
}

// Shading is the fill style of a card's symbols.
type Shading uint8

const (
	Solid Shading = iota
	Striped
	Outlined
)

func (s Shading) String() string {
	switch s {
	case Solid:
		return "solid"
	case Striped:
		return "striped"
	default:
		return "outlined"
	}
}

// trit extracts the byte lane for the given feature. The lanes hold
// ternary digits, so the result is always in [0,2].
func (c Card) trit(f feature) uint8 {
	return uint8(uint32(c) >> (uint32(f) * 8) & 0xff)
}

// Count returns the number of symbols on the card, in [1,3].
func (c Card) Count() int {
	return int(c.trit(featureCount)) + 1
}

func (c Card) Shape() Shape {
	return Shape(c.trit(featureShape))
}

func (c Card) Color() Color {
	return Color(c.trit(featureColor))
}

func (c Card) Shading() Shading {
	return Shading(c.trit(featureShading))
}
