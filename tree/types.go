package tree

import "errors"

// Traversal selects how the forest is walked.
type Traversal int

const (
	// Recursive walks with the call stack, bounded by Options.MaxDepth.
	Recursive Traversal = iota
	// Iterative walks with an explicit stack and has no depth limit.
	Iterative
)

// String returns "recursive" or "iterative".
func (t Traversal) String() string {
	if t == Iterative {
		return "iterative"
	}

	return "recursive"
}

// DefaultMaxDepth is the deepest forest the recursive walk accepts.
const DefaultMaxDepth = 10000

var (
	// ErrDepthExceeded indicates a forest deeper than MaxDepth under the
	// recursive traversal.
	ErrDepthExceeded = errors.New("tree: forest deeper than the recursive walk allows")

	// ErrInvalidCapacity indicates a negative capacity.
	ErrInvalidCapacity = errors.New("tree: capacity must be non-negative")

	// ErrWrongAttribute indicates a catalog not built with AttrTree.
	ErrWrongAttribute = errors.New("tree: catalog is not a tree catalog")

	// ErrCycle indicates a node reached again while its subtree was open.
	// catalog.New rejects such input, so seeing it means a broken catalog.
	ErrCycle = errors.New("tree: node revisited during its own subtree")
)

// Options configures Solve.
type Options struct {
	Traversal    Traversal
	MaxDepth     int
	SubtreeBound bool
}

// DefaultOptions returns the recursive walk with DefaultMaxDepth and no
// subtree bound.
func DefaultOptions() Options {
	return Options{Traversal: Recursive, MaxDepth: DefaultMaxDepth}
}

// Option customises Options.
type Option func(*Options)

// WithTraversal selects the walk.
func WithTraversal(t Traversal) Option {
	return func(o *Options) { o.Traversal = t }
}

// WithMaxDepth sets the recursive depth ceiling. It panics if d < 1.
func WithMaxDepth(d int) Option {
	if d < 1 {
		panic("tree: WithMaxDepth requires d >= 1")
	}

	return func(o *Options) { o.MaxDepth = d }
}

// WithSubtreeBound enables the subtree-weight cap on child budgets.
func WithSubtreeBound() Option {
	return func(o *Options) { o.SubtreeBound = true }
}

// Choice is one selected node and the budget its subtree was given.
type Choice struct {
	Node   int
	Budget int
}

// Result is the outcome of Solve.
type Result struct {
	Nodes    [][]int  // Nodes[u][j]: best value of u's subtree including u, budget j
	Forest   []int    // merged root arrays; Forest[C] == Best
	Best     int
	Selected []Choice // pre-order, roots in input order
	Roots    []int
	Children [][]int
	Cells    int // KindCell evaluations
}
