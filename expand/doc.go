// Package expand rewrites items that a plain 0/1 fill cannot express into
// lists of 0/1 pseudo-items.
//
// Two rewrites are provided:
//
//   - Binary decomposition (Binary, Splits). An item with multiplicity C
//     becomes splits of multiplier 1, 2, 4, ... while the multiplier still
//     fits in what remains, followed by one split for the non-zero
//     remainder. Every total 0..C is reachable as a 0/1 combination of the
//     splits and there are exactly ⌈log2(C+1)⌉ of them. Each Split keeps
//     its Origin so a selection can be mapped back to true repeat counts.
//
//   - Package enumeration (Packages, Package, Subsets). A main item with k
//     attachments becomes 2^k packages: the main plus every subset of its
//     attachments. Every package contains the main itself, so a solver
//     must take at most one package per main; package knapsack does this
//     by treating a main's packages as one choice.
//
// Order:
//
//	Splits follow catalog order, then ascending multiplier. Packages follow
//	main items in input order, then ascending subset mask; bit b of a mask
//	selects the main's b-th attachment in input order. Trace and backtrack
//	order depend on this.
//
// Cost:
//
//	Package enumeration is exponential: Σ 2^k packages overall. Packages
//	refuses a catalog in which any main owns more than the configured
//	attachment ceiling (DefaultMaxAttachments unless overridden) and does
//	so before enumerating anything.
//
// Errors:
//
//	ErrTooManyAttachments, ErrWrongAttribute.
package expand
