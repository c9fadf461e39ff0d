package set

import "testing"

func TestCompletionTable(t *testing.T) {
	t.Parallel()
	table := CompletionTable()
	cards := Cards()

	for a, b := range Pairs(DeckSize) {
		c := int(table[a][b])
		if got := int(table[b][a]); got != c {
			t.Fatalf("table[%d][%d] = %d but table[%d][%d] = %d", a, b, c, b, a, got)
		}
		if want := Complete(cards[a], cards[b]).Index(); c != want {
			t.Fatalf("table[%d][%d] = %d, want %d", a, b, c, want)
		}
		if _, ok := ToSet(cards[a], cards[b], cards[c]); !ok {
			t.Fatalf("table entry (%d, %d, %d) is not a set", a, b, c)
		}
	}
}

func TestCompletionTableSharedInstance(t *testing.T) {
	t.Parallel()
	if CompletionTable() != CompletionTable() {
		t.Error("CompletionTable returned different instances")
	}
}
