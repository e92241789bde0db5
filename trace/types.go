package trace

import "fmt"

// Decision tags how a cell value was produced.
type Decision string

const (
	// Skip: the cell inherited the without-branch.
	Skip Decision = "skip"
	// Take: the with-branch improved on the without-branch.
	Take Decision = "take"
	// Add: both branches were summed (solution counting).
	Add Decision = "add"
	// Merge: sequences or arrays were combined (top-K, group, tree).
	Merge Decision = "merge"
)

// Role names which branch a source cell fed.
type Role string

const (
	// Without is the branch that leaves the row's item out.
	Without Role = "without"
	// With is the branch that takes the row's item.
	With Role = "with"
)

// StepKind separates ordinary cell evaluations from tree bookkeeping entries.
type StepKind int

const (
	// KindCell is one DP cell evaluation.
	KindCell StepKind = iota
	// KindMerge summarises the merge of one child array into its parent.
	KindMerge
	// KindComplete marks a tree node whose subtree array is final.
	KindComplete
)

// String returns the action label consumers display for the kind.
func (k StepKind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindMerge:
		return "merge"
	case KindComplete:
		return "complete"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// NoVol marks a Step or Source that has no secondary column.
const NoVol = -1

// Source is one cell a Step read from.
type Source struct {
	Row  int
	Col  int
	Vol  int // NoVol unless the table is two-resource
	Role Role
}

// Candidate is one group member considered for a grouped cell.
type Candidate struct {
	Item   int // 0-based catalog index
	Weight int
	Value  int
	Fits   bool // Weight <= column
	Result int  // value of the with-branch, meaningful only when Fits
}

// Step is one entry of the fill history.
//
// Row/Col/Vol address the cell (Vol == NoVol for single-resource tables).
// For tree steps Row is the node index (or -1 for the final forest merge)
// and Col the capacity budget.
type Step struct {
	Kind     StepKind
	Row      int
	Col      int
	Vol      int
	Value    int
	Decision Decision
	Sources  []Source

	// Item is the 0-based index of whatever the row stands for: a catalog
	// item, a split, a package or a group position.
	Item int

	Values     []int       // k-th best: the cell's descending top-K sequence
	Candidates []Candidate // grouped: members in group order
	Choice     int         // grouped: winning candidate item, -1 if none
	Group      int         // grouped: group id of the row
	ItemKind   int         // mixed: the row's kind tag
	Origin     int         // bounded: original item of the split row
	Multiplier int         // bounded: split multiplier
	Label      string      // dependency: package description
	Addends    []int       // counting: [without, with]

	Node     int   // tree: node being solved, -1 for the forest merge
	Child    int   // tree: child merged in this step, -1 if none
	Parent   int   // tree: parent of Node, -1 for roots
	Weight   int   // tree complete: node weight
	Snapshot []int // tree: node array after the step
}
