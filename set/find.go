package set

// forEachSet invokes fn for every valid Set among cards, visiting
// triples in descending index order (a > b > c). The ordering visits
// each combination exactly once. Traversal stops when fn returns
// false.
func forEachSet(cards []Card, fn func(Set) bool) {
	for a := 2; a < len(cards); a++ {
		for b := 1; b < a; b++ {
			for c := 0; c < b; c++ {
				if s, ok := ToSet(cards[a], cards[b], cards[c]); ok {
					if !fn(s) {
						return
					}
				}
			}
		}
	}
}

// forEachSuperSet is the four-card analogue of forEachSet.
func forEachSuperSet(cards []Card, fn func(SuperSet) bool) {
	for a := 3; a < len(cards); a++ {
		for b := 2; b < a; b++ {
			for c := 1; c < b; c++ {
				for d := 0; d < c; d++ {
					if ss, ok := ToSuperSet(cards[a], cards[b], cards[c], cards[d]); ok {
						if !fn(ss) {
							return
						}
					}
				}
			}
		}
	}
}

// FindFirstSet returns the first Set found among cards, in traversal
// order. The second result is false when none exists.
func FindFirstSet(cards []Card) (Set, bool) {
	var first Set
	var found bool
	forEachSet(cards, func(s Set) bool {
		first, found = s, true
		return false
	})
	return first, found
}

// FindAllSets returns every Set among cards, in traversal order.
func FindAllSets(cards []Card) []Set {
	var all []Set
	forEachSet(cards, func(s Set) bool {
		all = append(all, s)
		return true
	})
	return all
}

// CountSets counts the Sets among cards without materializing them.
func CountSets(cards []Card) int {
	num := 0
	forEachSet(cards, func(Set) bool {
		num++
		return true
	})
	return num
}

// ContainsSet reports whether cards contain at least one Set. It
// short-circuits on the first hit.
func ContainsSet(cards []Card) bool {
	contains := false
	forEachSet(cards, func(Set) bool {
		contains = true
		return false
	})
	return contains
}

// FindFirstSuperSet returns the first SuperSet found among cards, in
// traversal order. The second result is false when none exists.
func FindFirstSuperSet(cards []Card) (SuperSet, bool) {
	var first SuperSet
	var found bool
	forEachSuperSet(cards, func(ss SuperSet) bool {
		first, found = ss, true
		return false
	})
	return first, found
}

// FindAllSuperSets returns every SuperSet among cards, in traversal
// order.
func FindAllSuperSets(cards []Card) []SuperSet {
	var all []SuperSet
	forEachSuperSet(cards, func(ss SuperSet) bool {
		all = append(all, ss)
		return true
	})
	return all
}

// CountSuperSets counts the SuperSets among cards.
func CountSuperSets(cards []Card) int {
	num := 0
	forEachSuperSet(cards, func(SuperSet) bool {
		num++
		return true
	})
	return num
}

// ContainsSuperSet reports whether cards contain at least one
// SuperSet.
func ContainsSuperSet(cards []Card) bool {
	contains := false
	forEachSuperSet(cards, func(SuperSet) bool {
		contains = true
		return false
	})
	return contains
}
