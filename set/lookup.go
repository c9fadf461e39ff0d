package set

import "sync"

// completionTable builds the table on first use. sync.OnceValue makes
// concurrent first access safe; afterwards the table is read-only.
var completionTable = sync.OnceValue(buildCompletionTable)

// CompletionTable returns the 81x81 table mapping two distinct card
// indices to the index of the card completing their Set. The table is
// symmetric and its diagonal is meaningless (a card cannot pair with
// itself). It is built once, lazily, and is safe for concurrent
// readers.
func CompletionTable() *[DeckSize][DeckSize]uint8 {
	return completionTable()
}

func buildCompletionTable() *[DeckSize][DeckSize]uint8 {
	cards := Cards()
	var table [DeckSize][DeckSize]uint8

	for a, b := range Pairs(DeckSize) {
		c := uint8(Complete(cards[a], cards[b]).Index())
		table[a][b] = c
		// Complete is commutative
		table[b][a] = c
	}
	return &table
}
