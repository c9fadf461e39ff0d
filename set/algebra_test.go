package set

import "testing"

// Re-derive the per-lane completion lookup from the defining rule:
// for each pair of trits the completing trit is the unique x with
// ta+tb+x == 0 (mod 3).
func TestCompletionLookupDerivation(t *testing.T) {
	t.Parallel()
	for ta := uint32(0); ta < 3; ta++ {
		for tb := uint32(0); tb < 3; tb++ {
			x := (3 - (ta+tb)%3) % 3
			if got := completions[ta+tb]; got != x {
				t.Errorf("completions[%d+%d] = %d, want %d", ta, tb, got, x)
			}
		}
	}
}

func TestCompleteAllPairs(t *testing.T) {
	t.Parallel()
	cards := Cards()
	setCount := 0

	for i, j := range Pairs(len(cards)) {
		a, b := cards[i], cards[j]
		c := Complete(a, b)

		if got := Complete(b, a); got != c {
			t.Fatalf("Complete(%v, %v) = %v, reversed = %v", a, b, c, got)
		}
		if c == a || c == b {
			t.Fatalf("Complete(%v, %v) = %v collides with an input", a, b, c)
		}
		if _, ok := ToSet(a, b, c); !ok {
			t.Fatalf("(%v, %v, %v) is not a set", a, b, c)
		}
		setCount++
	}

	// C(81,2) pairs, and each of the 1080 sets is completed once per
	// choice of input pair
	if setCount != 3240 {
		t.Errorf("completed %d pairs, want 3240", setCount)
	}
	if setCount != 1080*3 {
		t.Errorf("completed %d pairs, want 1080 sets x 3", setCount)
	}
}

func TestToSet(t *testing.T) {
	t.Parallel()
	// indices 21, 41, 58 sum to 0 mod 3 in every feature lane
	a, b, c := NewCard(21), NewCard(41), NewCard(58)
	s, ok := ToSet(a, b, c)
	if !ok {
		t.Fatal("expected a valid set")
	}
	x, y, z := s.Cards()
	if x != a || y != b || z != c {
		t.Errorf("Cards() = %v, %v, %v", x, y, z)
	}

	if _, ok := ToSet(NewCard(0), NewCard(1), NewCard(3)); ok {
		t.Error("cards 0, 1, 3 should not form a set")
	}
}

func TestToSuperSet(t *testing.T) {
	t.Parallel()
	// Build a quad from two pairs sharing a completion: pick any two
	// pairs out of a known set's complement structure.
	target := NewCard(0)
	var quad []Card
	for i, j := range Pairs(DeckSize) {
		a, b := NewCard(i), NewCard(j)
		if a == target || b == target {
			continue
		}
		if Complete(a, b) == target {
			quad = append(quad, a, b)
			if len(quad) == 4 {
				break
			}
		}
	}
	if len(quad) != 4 {
		t.Fatal("could not build witness quad")
	}

	ss, ok := ToSuperSet(quad[0], quad[1], quad[2], quad[3])
	if !ok {
		t.Fatal("expected a valid superset")
	}
	left, right := ss.Left(), ss.Right()
	if Complete(left.A, left.B) != Complete(right.A, right.B) {
		t.Error("witness pairs disagree on their completion")
	}

	// a whole set plus a fourth card is never a superset: for any
	// pairing, equal completions would force two of the four cards
	// to coincide
	if _, ok := ToSuperSet(NewCard(21), NewCard(41), NewCard(58), NewCard(0)); ok {
		t.Error("set plus unrelated card should not form a superset")
	}
}

func TestToSuperSetRejects(t *testing.T) {
	t.Parallel()
	// 4 of the 20-card set-free layout used by the deck tests; none
	// of the three pairings share a completion
	a, b, c, d := NewCard(0), NewCard(1), NewCard(3), NewCard(9)
	pairs := [3][4]Card{
		{a, b, c, d},
		{a, c, b, d},
		{a, d, b, c},
	}
	valid := false
	for _, p := range pairs {
		if Complete(p[0], p[1]) == Complete(p[2], p[3]) {
			valid = true
		}
	}
	if _, ok := ToSuperSet(a, b, c, d); ok != valid {
		t.Errorf("ToSuperSet = %v, pairwise check = %v", ok, valid)
	}
}
