package knapsack

import (
	"errors"
	"time"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/expand"
	"github.com/katalvlaran/knapsack/topk"
	"github.com/katalvlaran/knapsack/trace"
	"github.com/katalvlaran/knapsack/tree"
)

var (
	// ErrInvalidCapacity indicates a negative weight or volume bound.
	ErrInvalidCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrVariantMismatch indicates a catalog validated for a different
	// attribute than the variant reads.
	ErrVariantMismatch = errors.New("knapsack: catalog attribute does not fit the variant")

	// ErrUnknownVariant indicates a Variant value or name that is not defined.
	ErrUnknownVariant = errors.New("knapsack: unknown variant")

	// ErrNilCatalog indicates a nil *catalog.Catalog.
	ErrNilCatalog = errors.New("knapsack: catalog is nil")
)

// Capacity holds the primary weight bound and, for TwoDimensional, the
// secondary volume bound.
type Capacity struct {
	Weight int
	Volume int
}

// Problem is one decoded solve request.
type Problem struct {
	Variant  Variant
	Capacity Capacity
	K        int // Kth only
	Items    []catalog.Item
}

// Pick is one unit of a backtracked selection.
//
// Row and Col address the table cell the unit was read from (Vol too for
// TwoDimensional, trace.NoVol otherwise). Item is the 0-based original
// item: the main item for Dependency picks, the node for Tree picks.
type Pick struct {
	Row        int
	Col        int
	Vol        int
	Item       int
	Multiplier int    // copies this pick stands for (split multiplier for Multiple)
	Label      string // Dependency: package label
	Members    []int  // Dependency: every item in the package
	Group      int    // Group: group id, 0 otherwise
}

// Result is everything one solve produces. Fields that do not apply to
// the variant are left zero.
type Result struct {
	Variant  Variant
	Capacity Capacity
	K        int
	Items    []catalog.Item

	Table *Table       // prefix table of the row-based variants
	Cube  *Cube        // TwoDimensional
	TopK  *topk.Result // Kth
	Tree  *tree.Result // Tree

	Splits   []expand.Split
	Packages []expand.Package
	Groups   []catalog.Group

	Steps []trace.Step
	Path  []Pick

	// Value is the optimum: t[n][C] for Count (subsets of weight exactly C),
	// the best total for Kth.
	Value int
	// Kth is the K-th best total, 0 when fewer than K totals exist.
	Kth int

	// Quantities[i] is how many copies of item i the path selects.
	Quantities []int

	Cells   int // DP cells evaluated
	Elapsed time.Duration
}
