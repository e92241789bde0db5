// Package catalog holds the validated, immutable item collections that every
// knapsack solver in this module consumes.
//
// What:
//
//   - Item: weight, value and one variant-discriminant attribute
//     (secondary cost, type tag, group id, parent id or multiplicity).
//   - Catalog: an ordered, read-only list of items plus the derived
//     structures some solvers need:
//   - Groups, ordered by ascending group id with members in input order.
//   - Children/Roots adjacency for attachment (two-level) and tree catalogs.
//
// Why:
//
//	All contract violations (non-positive weight, negative value, unknown
//	type tag, dangling or cyclic parent pointers, ...) are rejected here,
//	at construction time, so that no solver ever discovers bad input in the
//	middle of a table fill.
//
// Ordering:
//
//	Group order (ascending id) and child order (input order) decide the
//	row order of the DP tables and therefore the order of trace steps and
//	backtracked picks. Every consumer relies on the order exposed here; it
//	is part of the contract.
//
// Errors:
//
//   - ErrInvalidWeight     weight <= 0
//   - ErrInvalidValue      value < 0
//   - ErrInvalidVolume     secondary cost < 0
//   - ErrInvalidCount      multiplicity < 1 (or < 0 for mixed items)
//   - ErrInvalidKind       type tag outside {0,1,2}
//   - ErrInvalidParent     parent id outside [0, n]
//   - ErrNestedAttachment  attachment whose parent is itself an attachment
//   - ErrCyclicDependency  parent pointers that form a cycle
//
// Every per-item error is wrapped in *ItemError carrying the 0-based index;
// match with errors.Is.
//
// Complexity: New runs in O(n log n) (group id sort) and O(n) memory.
package catalog
