// Package knapsack is the module root of a dynamic-programming workbench for
// ten knapsack variants, built to show every step of the table fill, not
// only the optimum.
//
// 🚀 What is in the box?
//
//	• 0/1, complete, multiple (binary split), mixed and counting tables
//	• 2D cost cube, group and dependency (package) knapsacks
//	• K-th optimal via bounded top-K merge
//	• tree knapsack over a forest of prerequisites
//	• per-cell trace, backtracked selection and complexity figures
//
// The library lives in subpackages:
//
//	catalog/   validated item lists, groups and parent forests
//	expand/    binary splits and dependency packages
//	trace/     step records and the recorder
//	topk/      bounded descending merges for the K-th optimum
//	tree/      forest DP, recursive or explicit-stack walk
//	knapsack/  variants, Solve, tables and backtracking
//
// Binaries and their plumbing sit under cmd/knapsack and internal/:
// positional arguments (argv), request documents (request), JSON and
// table output (render), config, logging, metrics, a batch runner and the
// HTTP server.
//
// Quick example (0/1, capacity 10):
//
//	knapsack solve 01 10 4 2,3 3,4 4,5 5,6
//	# max_value 13, path picks items 3, 1, 0
package knapsack
