package engine

import "math"

// Enumerator yields every combination of the resolved value sets as the
// full cartesian product, in lexicographic order over the option order
// with the last option varying fastest. Enumeration is stateless per
// index: every combination is recomputed from its mixed-radix
// decomposition, so the sequence is deterministic and restartable.
type Enumerator struct {
	names []string
	sets  [][]any
	total int
	next  int
}

// NewEnumerator creates an enumerator over the given resolved sets.
// names[i] pairs with sets[i]; both follow schema declaration order.
// Zero options yields exactly one empty combination.
func NewEnumerator(names []string, sets [][]any) *Enumerator {
	sizes := make([]int, len(sets))
	for i, set := range sets {
		sizes[i] = len(set)
	}
	return &Enumerator{
		names: names,
		sets:  sets,
		total: Product(sizes),
	}
}

// Total returns the number of combinations the enumerator yields.
func (e *Enumerator) Total() int {
	return e.total
}

// At returns the idx-th combination. The last option is the least
// significant digit of the mixed-radix decomposition of idx.
func (e *Enumerator) At(idx int) Combination {
	c := make(Combination, len(e.names))
	for i := len(e.names) - 1; i >= 0; i-- {
		n := len(e.sets[i])
		c[e.names[i]] = e.sets[i][idx%n]
		idx /= n
	}
	return c
}

// Next returns the next combination in sequence, or false when exhausted.
func (e *Enumerator) Next() (Combination, bool) {
	if e.next >= e.total {
		return nil, false
	}
	c := e.At(e.next)
	e.next++
	return c, true
}

// Reset rewinds the enumerator so the identical sequence replays.
func (e *Enumerator) Reset() {
	e.next = 0
}

// Product multiplies the given set sizes, saturating at math.MaxInt
// instead of overflowing. An empty list yields 1 (the empty combination).
func Product(sizes []int) int {
	total := 1
	for _, n := range sizes {
		if n == 0 {
			return 0
		}
		if total > math.MaxInt/n {
			return math.MaxInt
		}
		total *= n
	}
	return total
}
