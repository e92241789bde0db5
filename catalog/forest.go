package catalog

// Visitation colours for parent-chain walks.
const (
	white = iota // not yet reached
	gray         // on the chain currently being followed
	black        // known to terminate at a root
)

// buildForest derives roots and child lists from Parent pointers, then
// rejects cycles and, for attachment catalogs, nesting deeper than one level.
func (c *Catalog) buildForest() error {
	n := len(c.items)
	c.children = make([][]int, n)
	c.roots = make([]int, 0)

	for i, it := range c.items {
		if it.Parent == 0 {
			c.roots = append(c.roots, i)
			continue
		}
		p := it.Parent - 1
		c.children[p] = append(c.children[p], i)
	}

	if at, ok := findCycle(c.items); ok {
		return &ItemError{Index: at, Err: ErrCyclicDependency}
	}

	if c.attr == AttrAttachment {
		for i, it := range c.items {
			if it.Parent > 0 && c.items[it.Parent-1].Parent != 0 {
				return &ItemError{Index: i, Err: ErrNestedAttachment}
			}
		}
	}

	return nil
}

// findCycle follows every parent chain once, colouring items gray while the
// chain is open and black once it reaches a root. Meeting a gray item means
// the chain loops; the index of that item is returned.
//
// Each item changes colour at most twice, so the walk is O(n) overall and
// needs no recursion.
func findCycle(items []Item) (int, bool) {
	state := make([]int, len(items))
	chain := make([]int, 0)

	for start := range items {
		if state[start] != white {
			continue
		}
		chain = chain[:0]
		cur := start
		for {
			if state[cur] == gray {
				return cur, true
			}
			if state[cur] == black {
				break
			}
			state[cur] = gray
			chain = append(chain, cur)
			if items[cur].Parent == 0 {
				break
			}
			cur = items[cur].Parent - 1
		}
		for _, v := range chain {
			state[v] = black
		}
	}

	return 0, false
}
