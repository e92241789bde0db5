// Package knapsack solves ten capacity-constrained selection problems with
// dynamic programming and returns, besides the optimum, a replayable trace
// of every cell evaluated and one backtracked optimal selection.
//
// 🚀 Variants (Variant, short name):
//
//	ZeroOne         "01"        each item at most once
//	Complete        "complete"  each item any number of times
//	Multiple        "multiple"  each item up to Count times (binary splits)
//	TwoDimensional  "2d"        weight and volume bounds
//	Group           "group"     at most one item per group id
//	Dependency      "depend"    attachments only with their main item
//	Mixed           "mixed"     per-item Kind: once, unbounded or multiple
//	Count           "count"     number of subsets of exact weight
//	Kth             "kth"       K best totals (package topk)
//	Tree            "tree"      a node only with its parent (package tree)
//
// ⚙️ Usage:
//
//	res, err := knapsack.Solve(knapsack.Problem{
//	    Variant:  knapsack.ZeroOne,
//	    Capacity: knapsack.Capacity{Weight: 10},
//	    Items:    []catalog.Item{{Weight: 2, Value: 3}, {Weight: 3, Value: 4}},
//	}, knapsack.WithLogger(logger))
//
// Pipeline:
//
//	catalog.New validates the items for the variant's attribute. Multiple
//	and Dependency rewrite the catalog through package expand. One rowRule
//	per table row is chosen up front (once, package, unbounded, bounded,
//	count or group) and every row is filled in ascending column order, each
//	cell recorded as a trace.Step. The backtracker then walks from the
//	terminal cell. Equal values mean skip. Unbounded rows are revisited
//	after a take, bounded rows emit one pick per copy, and a taken package
//	jumps past the other packages of its main.
//
// Tie-breaking:
//
//	A with-branch must be strictly better to win. Group rows keep the first
//	member (group order) reaching the maximum; groups are rows in ascending
//	id order. Bounded rows keep the smallest multiplier reaching it.
//
// Errors:
//
//	ErrInvalidCapacity, ErrVariantMismatch, ErrUnknownVariant, ErrNilCatalog,
//	plus the sentinels of catalog, expand, topk and tree, all matchable
//	with errors.Is. A failing call returns a nil *Result.
//
// Complexity: O(rows·C) time and memory for the row variants, O(n·C·M)
// for TwoDimensional; see Result.Complexity.
package knapsack
