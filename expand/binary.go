package expand

import "github.com/katalvlaran/knapsack/catalog"

// Binary decomposes it (with multiplicity it.Count) into splits of
// multiplier 1, 2, 4, ... and a final remainder. origin is recorded on
// every split. A Count below 1 yields no splits.
func Binary(origin int, it catalog.Item) []Split {
	out := make([]Split, 0, splitCount(it.Count))
	rem := it.Count
	for k := 1; k <= rem; k <<= 1 {
		out = append(out, split(origin, it, k))
		rem -= k
	}
	if rem > 0 {
		out = append(out, split(origin, it, rem))
	}

	return out
}

// Splits decomposes every item of an AttrCount catalog, in catalog order.
func Splits(c *catalog.Catalog) ([]Split, error) {
	if c.Attribute() != catalog.AttrCount {
		return nil, ErrWrongAttribute
	}
	total := 0
	for i := 0; i < c.Len(); i++ {
		total += splitCount(c.Item(i).Count)
	}
	out := make([]Split, 0, total)
	for i := 0; i < c.Len(); i++ {
		out = append(out, Binary(i, c.Item(i))...)
	}

	return out, nil
}

func split(origin int, it catalog.Item, k int) Split {
	return Split{Origin: origin, Multiplier: k, Weight: it.Weight * k, Value: it.Value * k}
}

// splitCount returns ⌈log2(c+1)⌉, the number of splits Binary emits.
func splitCount(c int) int {
	n := 0
	for c > 0 {
		n++
		c >>= 1
	}

	return n
}
