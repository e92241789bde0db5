package knapsack

import (
	"fmt"

	"github.com/katalvlaran/knapsack/catalog"
)

// Variant selects the transition rule family.
type Variant int

const (
	ZeroOne Variant = iota
	Complete
	Multiple
	TwoDimensional
	Group
	Dependency
	Mixed
	Count
	Kth
	Tree
)

type variantInfo struct {
	name  string
	title string
	attr  catalog.Attribute
}

var variants = [...]variantInfo{
	ZeroOne:        {"01", "0/1 Knapsack", catalog.AttrNone},
	Complete:       {"complete", "Complete Knapsack", catalog.AttrNone},
	Multiple:       {"multiple", "Multiple Knapsack", catalog.AttrCount},
	TwoDimensional: {"2d", "2D Cost", catalog.AttrVolume},
	Group:          {"group", "Group Knapsack", catalog.AttrGroup},
	Dependency:     {"depend", "Dependency Knapsack", catalog.AttrAttachment},
	Mixed:          {"mixed", "Mixed Knapsack", catalog.AttrKind},
	Count:          {"count", "Solution Counting", catalog.AttrNone},
	Kth:            {"kth", "Kth Optimal", catalog.AttrNone},
	Tree:           {"tree", "Tree Knapsack", catalog.AttrTree},
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	for i := range variants {
		out[i] = Variant(i)
	}

	return out
}

// ParseVariant maps a short name ("01", "complete", ...) to its Variant.
func ParseVariant(name string) (Variant, error) {
	for i, info := range variants {
		if info.name == name {
			return Variant(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Valid reports whether v is a defined variant.
func (v Variant) Valid() bool { return v >= 0 && int(v) < len(variants) }

// String returns the short name used on the command line.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return variants[v].name
}

// Title returns the human-readable problem name.
func (v Variant) Title() string {
	if !v.Valid() {
		return v.String()
	}

	return variants[v].title
}

// Attribute returns the catalog attribute the variant reads.
func (v Variant) Attribute() catalog.Attribute {
	if !v.Valid() {
		return catalog.AttrNone
	}

	return variants[v].attr
}

// accepts reports whether a catalog with attribute a can feed v. Variants
// that read only weight and value take any catalog.
func (v Variant) accepts(a catalog.Attribute) bool {
	want := v.Attribute()

	return want == catalog.AttrNone || want == a
}
