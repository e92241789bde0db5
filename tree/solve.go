package tree

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/trace"
)

// Node states of the post-order walk.
const (
	unvisited = iota
	visiting
	solved
)

type solver struct {
	ctx      context.Context
	cat      *catalog.Catalog
	capacity int
	rec      *trace.Recorder
	opts     Options

	children [][]int
	state    []int
	nodes    [][]int
	chosen   [][]int // chosen[x][j]: budget handed to x when it was folded into its parent (or the forest) at j
	subW     []int
	cells    int
}

// Solve computes every subtree array of the AttrTree catalog c, folds the
// roots together and recovers one optimal selection. rec may be nil.
func Solve(ctx context.Context, c *catalog.Catalog, capacity int, rec *trace.Recorder, opts ...Option) (*Result, error) {
	if c.Attribute() != catalog.AttrTree {
		return nil, ErrWrongAttribute
	}
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := c.Len()
	s := &solver{
		ctx:      ctx,
		cat:      c,
		capacity: capacity,
		rec:      rec,
		opts:     o,
		children: c.Adjacency(),
		state:    make([]int, n),
		nodes:    make([][]int, n),
		chosen:   make([][]int, n),
		subW:     make([]int, n),
	}
	flat := make([]int, 2*n*(capacity+1))
	for u := 0; u < n; u++ {
		s.nodes[u] = flat[u*(capacity+1) : (u+1)*(capacity+1) : (u+1)*(capacity+1)]
		off := (n + u) * (capacity + 1)
		s.chosen[u] = flat[off : off+capacity+1 : off+capacity+1]
	}

	roots := c.Roots()
	for _, r := range roots {
		var err error
		if o.Traversal == Iterative {
			err = s.walk(r)
		} else {
			err = s.visit(r, 1)
		}
		if err != nil {
			return nil, err
		}
	}

	forest := make([]int, capacity+1)
	for _, r := range roots {
		s.fold(forest, 0, r, -1)
		if rec.Enabled() {
			rec.Record(summary(-1, r, forest))
		}
	}

	return &Result{
		Nodes:    s.nodes,
		Forest:   forest,
		Best:     forest[capacity],
		Selected: s.recover(roots),
		Roots:    roots,
		Children: s.children,
		Cells:    s.cells,
	}, nil
}

// visit is the call-stack post-order walk.
func (s *solver) visit(u, depth int) error {
	if depth > s.opts.MaxDepth {
		return fmt.Errorf("%w: node %d at depth %d, limit %d", ErrDepthExceeded, u, depth, s.opts.MaxDepth)
	}
	if err := s.enter(u); err != nil {
		return err
	}
	for _, ch := range s.children[u] {
		if err := s.visit(ch, depth+1); err != nil {
			return err
		}
	}

	return s.finish(u)
}

// walk is the explicit-stack post-order walk; it visits nodes in exactly
// the order visit does.
func (s *solver) walk(root int) error {
	type frame struct{ node, next int }

	if err := s.enter(root); err != nil {
		return err
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if ch := s.children[top.node]; top.next < len(ch) {
			next := ch[top.next]
			top.next++
			if err := s.enter(next); err != nil {
				return err
			}
			stack = append(stack, frame{node: next})
			continue
		}
		if err := s.finish(top.node); err != nil {
			return err
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}

func (s *solver) enter(u int) error {
	if s.state[u] != unvisited {
		return fmt.Errorf("%w: node %d", ErrCycle, u)
	}
	s.state[u] = visiting

	return nil
}

// finish builds node u's array once all of its children are solved.
func (s *solver) finish(u int) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	it := s.cat.Item(u)
	dp := s.nodes[u]
	for j := it.Weight; j <= s.capacity; j++ {
		dp[j] = it.Value
	}

	s.subW[u] = it.Weight
	for _, ch := range s.children[u] {
		s.fold(dp, it.Weight, ch, u)
		s.subW[u] += s.subW[ch]
		if s.rec.Enabled() {
			s.rec.Record(summary(u, ch, dp))
		}
	}
	s.state[u] = solved

	if s.rec.Enabled() {
		s.rec.Record(s.complete(u, it))
	}

	return nil
}

// fold merges child's array into dst for budgets j in [lo, C], descending.
// node is the owner of dst, or -1 for the forest; cells are traced only for
// owned arrays.
func (s *solver) fold(dst []int, lo, child, node int) {
	src := s.nodes[child]
	pick := s.chosen[child]
	for j := s.capacity; j >= lo; j-- {
		kmax := j - lo
		if s.opts.SubtreeBound && kmax > s.subW[child] {
			kmax = s.subW[child]
		}
		best, bk := dst[j], 0
		for k := 0; k <= kmax; k++ {
			if v := dst[j-k] + src[k]; v > best {
				best, bk = v, k
			}
		}
		dst[j] = best
		pick[j] = bk

		if node < 0 {
			continue
		}
		s.cells++
		if s.rec.Enabled() {
			s.rec.Record(cell(node, child, j, bk, best))
		}
	}
}

func (s *solver) complete(u int, it catalog.Item) trace.Step {
	dp := s.nodes[u]
	bestJ := min(it.Weight, s.capacity)
	for j := bestJ; j <= s.capacity; j++ {
		if dp[j] > dp[bestJ] {
			bestJ = j
		}
	}
	st := trace.Step{
		Kind:     trace.KindComplete,
		Row:      u,
		Col:      bestJ,
		Vol:      trace.NoVol,
		Value:    dp[bestJ],
		Decision: trace.Skip,
		Item:     u,
		Choice:   -1,
		Node:     u,
		Child:    -1,
		Parent:   it.Parent - 1,
		Weight:   it.Weight,
		Snapshot: append([]int(nil), dp...),
	}
	if st.Value > 0 {
		st.Decision = trace.Take
	}

	return st
}

func cell(node, child, j, k, v int) trace.Step {
	st := trace.Step{
		Row:      node,
		Col:      j,
		Vol:      trace.NoVol,
		Value:    v,
		Decision: trace.Merge,
		Item:     node,
		Choice:   -1,
		Node:     node,
		Child:    child,
		Parent:   -1,
	}
	if k == 0 {
		st.Sources = []trace.Source{{Row: node, Col: j, Vol: trace.NoVol, Role: trace.Without}}
	} else {
		st.Sources = []trace.Source{
			{Row: node, Col: j - k, Vol: trace.NoVol, Role: trace.Without},
			{Row: child, Col: k, Vol: trace.NoVol, Role: trace.With},
		}
	}

	return st
}

func summary(node, child int, dp []int) trace.Step {
	return trace.Step{
		Kind:     trace.KindMerge,
		Row:      node,
		Col:      len(dp) - 1,
		Vol:      trace.NoVol,
		Value:    dp[len(dp)-1],
		Decision: trace.Merge,
		Item:     child,
		Choice:   -1,
		Node:     node,
		Child:    child,
		Parent:   -1,
		Snapshot: append([]int(nil), dp...),
	}
}

// recover replays the recorded budget choices from the forest optimum
// down to every selected node.
func (s *solver) recover(roots []int) []Choice {
	type frame struct{ node, budget int }

	stack := make([]frame, 0, len(roots))
	j := s.capacity
	for t := len(roots) - 1; t >= 0; t-- {
		r := roots[t]
		if k := s.chosen[r][j]; k > 0 {
			stack = append(stack, frame{r, k})
			j -= k
		}
	}

	out := make([]Choice, 0)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, Choice{Node: f.node, Budget: f.budget})

		b := f.budget
		ch := s.children[f.node]
		for t := len(ch) - 1; t >= 0; t-- {
			if k := s.chosen[ch[t]][b]; k > 0 {
				stack = append(stack, frame{ch[t], k})
				b -= k
			}
		}
	}

	return out
}
