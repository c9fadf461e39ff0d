package set

import "iter"

// Pairs yields every unordered index pair (i, j) with i > j from a
// sequence of length n. There are n*(n-1)/2 such pairs, yielded in the
// fixed order (1,0), (2,0), (2,1), (3,0), (3,1), (3,2), ... Both the
// completion table construction and the deck fixers rely on this
// order.
func Pairs(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 1; i < n; i++ {
			for j := range i {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}
