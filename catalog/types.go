package catalog

import (
	"errors"
	"fmt"
)

// Kind tags how many copies of an item a mixed catalog may select.
type Kind int

const (
	// Once allows at most one copy (0/1 rule).
	Once Kind = iota
	// Unbounded allows any number of copies (complete rule).
	Unbounded
	// Multiple allows up to Item.Count copies (bounded rule).
	Multiple
)

// DefaultMixedCount is the multiplicity given to a Multiple item of a mixed
// catalog when the caller did not supply one.
const DefaultMixedCount = 3

// String returns the short label used in traces.
func (k Kind) String() string {
	switch k {
	case Once:
		return "0/1"
	case Unbounded:
		return "Complete"
	case Multiple:
		return "Multiple"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Attribute names the variant-discriminant field that a catalog carries.
// It decides which Item fields New validates and which derived structures
// it builds.
type Attribute int

const (
	// AttrNone: weight and value only (0/1, complete, counting, k-th best).
	AttrNone Attribute = iota
	// AttrVolume: a secondary cost read by the two-dimensional variant.
	AttrVolume
	// AttrKind: a per-item Kind tag (mixed variant).
	AttrKind
	// AttrGroup: a group id; items sharing an id are mutually exclusive.
	AttrGroup
	// AttrAttachment: a parent id of a main item (dependency variant, two levels).
	AttrAttachment
	// AttrTree: a parent id forming an arbitrary-depth forest (tree variant).
	AttrTree
	// AttrCount: a multiplicity ceiling (bounded variant).
	AttrCount
)

// String returns a lower-case name for the attribute.
func (a Attribute) String() string {
	switch a {
	case AttrNone:
		return "none"
	case AttrVolume:
		return "volume"
	case AttrKind:
		return "kind"
	case AttrGroup:
		return "group"
	case AttrAttachment:
		return "attachment"
	case AttrTree:
		return "tree"
	case AttrCount:
		return "count"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// Item is one selectable entry. Only the discriminant field matching the
// catalog's Attribute is read; the others are carried through untouched.
type Item struct {
	Weight int // cost against the primary capacity, > 0
	Value  int // objective contribution, >= 0
	Volume int // secondary cost (AttrVolume), >= 0
	Kind   Kind
	Count  int // multiplicity ceiling (AttrCount, or AttrKind with Kind == Multiple)
	Group  int
	Parent int // 1-based index of the parent item, 0 for a root/main item
}

// Group is an ordered set of item indices sharing one group id.
type Group struct {
	ID      int
	Members []int
}

var (
	// ErrInvalidWeight indicates an item weight <= 0.
	ErrInvalidWeight = errors.New("catalog: weight must be positive")

	// ErrInvalidValue indicates a negative item value.
	ErrInvalidValue = errors.New("catalog: value must be non-negative")

	// ErrInvalidVolume indicates a negative secondary cost.
	ErrInvalidVolume = errors.New("catalog: volume must be non-negative")

	// ErrInvalidCount indicates a multiplicity below the allowed minimum.
	ErrInvalidCount = errors.New("catalog: count must be at least 1")

	// ErrInvalidKind indicates a type tag outside {Once, Unbounded, Multiple}.
	ErrInvalidKind = errors.New("catalog: unknown item kind")

	// ErrInvalidParent indicates a parent id outside [0, n].
	ErrInvalidParent = errors.New("catalog: parent id out of range")

	// ErrNestedAttachment indicates an attachment whose parent is not a main item.
	ErrNestedAttachment = errors.New("catalog: attachment parent must be a main item")

	// ErrCyclicDependency indicates parent pointers that form a cycle.
	ErrCyclicDependency = errors.New("catalog: cyclic parent dependency")

	// ErrUnknownAttribute indicates an Attribute value New does not know.
	ErrUnknownAttribute = errors.New("catalog: unknown attribute")
)

// ItemError reports which item failed validation.
type ItemError struct {
	Index int // 0-based position in the input slice
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("catalog: item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
