// Package topk solves the k-th-best 0/1 knapsack: instead of one maximum
// per cell it keeps the K largest achievable totals.
//
// Cell state:
//
//	seq[i][j] is a non-increasing sequence of at most K totals reachable by
//	subsets of the first i items with weight at most j. Duplicates are
//	kept: two different selections with the same total occupy two slots,
//	so the answer is "k-th best selection", not "k-th distinct value".
//	Every base cell seq[0][j] is [0], the empty selection.
//
// Transition:
//
//	seq[i][j] = Merge(seq[i-1][j], seq[i-1][j-w]+v, K)   when j >= w
//	seq[i][j] = Merge(seq[i-1][j], nil, K)               otherwise
//
//	Merge is a two-pointer merge of descending inputs that consumes the
//	first argument on ties and stops at K elements.
//
// Report:
//
//	Best is seq[n][C][0]. Kth is seq[n][C][K-1] when the sequence is long
//	enough and 0 otherwise; callers that must tell "absent" from "zero"
//	should check Len(TopK) >= K themselves.
//
// Complexity: O(n·C·K) time and memory.
package topk
