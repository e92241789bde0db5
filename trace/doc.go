// Package trace records the cell-by-cell history of a dynamic-programming
// fill so that it can be replayed, animated or audited later.
//
// What is recorded?
//
//	One Step per DP cell evaluated, appended in the order the solver fills
//	the table: row-major, then column, then (for two-resource tables) the
//	secondary column. Consumers replay the slice front to back to rebuild
//	the table incrementally, so this order is part of the contract.
//
//	A Step names the cell (Row, Col, Vol), the value written, a Decision
//	tag and the Sources it was derived from. Variant-specific annotations
//	ride along in optional fields:
//	  • Values      top-K sequence of a k-th-best cell
//	  • Candidates  every member tried for a grouped cell, with Choice
//	  • Addends     the two summands of a counting cell
//	  • Origin      the original item behind a split row, with Multiplier
//	  • Label       the package description behind a dependency row
//	  • Node/Child  tree merge bookkeeping, with a Snapshot of the node array
//
//	Tree solves additionally emit KindMerge summaries (one per child merge)
//	and KindComplete entries (one per solved node) between the cells.
//
// Recorder
//
//	A *Recorder collects steps for exactly one solve. A nil *Recorder is
//	valid and records nothing; solvers check Enabled before building a
//	Step so that disabled tracing costs no allocations.
//
// Complexity: Record is amortised O(1); memory is O(steps).
package trace
