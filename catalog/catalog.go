package catalog

import "slices"

// Catalog is an immutable, validated item list. The zero value is an empty
// AttrNone catalog.
type Catalog struct {
	attr     Attribute
	items    []Item
	groups   []Group // AttrGroup only
	children [][]int // AttrAttachment and AttrTree only
	roots    []int   // AttrAttachment and AttrTree only
}

// New validates items against attr and returns a catalog that owns a copy
// of them.
//
// Stages:
//  1. Per-item checks (weight, value and the attr-specific field).
//  2. attr-specific structure: group index, or parent adjacency followed by
//     cycle detection (and the two-level rule for AttrAttachment).
//
// A Multiple item of an AttrKind catalog with Count == 0 is given
// DefaultMixedCount copies.
//
// Complexity: O(n log n) time, O(n) memory.
func New(attr Attribute, items []Item) (*Catalog, error) {
	if attr < AttrNone || attr > AttrCount {
		return nil, ErrUnknownAttribute
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	for i := range owned {
		if err := validateItem(attr, &owned[i], len(owned)); err != nil {
			return nil, &ItemError{Index: i, Err: err}
		}
	}

	c := &Catalog{attr: attr, items: owned}

	switch attr {
	case AttrGroup:
		c.groups = buildGroups(owned)
	case AttrAttachment, AttrTree:
		if err := c.buildForest(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// validateItem applies the shared and attr-specific rules to one item,
// normalising defaults in place.
func validateItem(attr Attribute, it *Item, n int) error {
	if it.Weight <= 0 {
		return ErrInvalidWeight
	}
	if it.Value < 0 {
		return ErrInvalidValue
	}

	switch attr {
	case AttrVolume:
		if it.Volume < 0 {
			return ErrInvalidVolume
		}
	case AttrKind:
		switch it.Kind {
		case Once, Unbounded:
		case Multiple:
			if it.Count < 0 {
				return ErrInvalidCount
			}
			if it.Count == 0 {
				it.Count = DefaultMixedCount
			}
		default:
			return ErrInvalidKind
		}
	case AttrCount:
		if it.Count < 1 {
			return ErrInvalidCount
		}
	case AttrAttachment, AttrTree:
		if it.Parent < 0 || it.Parent > n {
			return ErrInvalidParent
		}
	}

	return nil
}

// Attribute reports which discriminant field the catalog was validated for.
func (c *Catalog) Attribute() Attribute { return c.attr }

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Item returns the i-th item (0-based). It panics on an out-of-range index,
// like a slice access.
func (c *Catalog) Item(i int) Item { return c.items[i] }

// Items returns a copy of the item list in input order.
func (c *Catalog) Items() []Item { return slices.Clone(c.items) }

// Groups returns the groups in ascending id order with members in input
// order. Nil unless the catalog is AttrGroup.
func (c *Catalog) Groups() []Group {
	if c.groups == nil {
		return nil
	}
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = Group{ID: g.ID, Members: slices.Clone(g.Members)}
	}

	return out
}

// NumGroups returns the number of distinct group ids.
func (c *Catalog) NumGroups() int { return len(c.groups) }

// Group returns the g-th group in ascending id order. The Members slice is
// shared with the catalog and must not be modified.
func (c *Catalog) Group(g int) Group { return c.groups[g] }

// Children returns the 0-based indices of item i's children (attachments
// for AttrAttachment) in input order.
func (c *Catalog) Children(i int) []int {
	if c.children == nil {
		return nil
	}

	return slices.Clone(c.children[i])
}

// Roots returns the 0-based indices of items with Parent == 0 in input
// order: the main items of an attachment catalog, the tree roots otherwise.
func (c *Catalog) Roots() []int { return slices.Clone(c.roots) }

// Adjacency returns the full child lists indexed by item, as a deep copy.
func (c *Catalog) Adjacency() [][]int {
	if c.children == nil {
		return nil
	}
	out := make([][]int, len(c.children))
	for i, ch := range c.children {
		out[i] = slices.Clone(ch)
	}

	return out
}
