// Package tree solves the tree-structured knapsack: items form a forest
// through their Parent pointers and a node may be selected only together
// with its parent.
//
// Per node u with weight w and value v (capacity C):
//
//  1. Every child is solved first (strict post-order, children in input
//     order).
//  2. node[u][j] = v for j >= w, 0 below: picking anything in the subtree
//     requires u itself.
//  3. Each child c is folded in, j descending from C to w:
//     node[u][j] = max over k in [0, j-w] of node[u][j-k] + node[c][k].
//     The first k that is strictly better wins, which fixes the trace.
//
// The roots are finally folded into one forest array with the same
// combine (k ∈ [0, j]); its entry at C is the optimum.
//
// Traversal:
//
//	Recursive (default) walks with the call stack and refuses forests
//	deeper than MaxDepth (DefaultMaxDepth unless overridden) with
//	ErrDepthExceeded. Iterative uses an explicit stack and has no depth
//	limit. Both produce identical arrays, traces and selections.
//
// Subtree bound:
//
//	WithSubtreeBound caps k by the child's total subtree weight. Larger
//	budgets cannot improve the child's contribution, so every observable
//	output is unchanged while the inner loop shrinks from O(C) to
//	O(min(C, subtree weight)).
//
// Trace:
//
//	For every (node, child) merge: one KindCell step per j (descending),
//	then one KindMerge summary with a Snapshot of the node array. For
//	every node: one KindComplete step naming the best budget. The forest
//	fold adds one KindMerge summary per root with Node == -1.
//
// Selection:
//
//	The k chosen at every (child, budget) is kept, so Solve can walk back
//	from the forest optimum and report every selected node with the budget
//	it was given.
//
// Complexity: O(n·C²) time without the subtree bound, O(n·C) memory.
// Cycles are rejected before solving by catalog.New.
package tree
