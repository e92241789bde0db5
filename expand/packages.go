package expand

import (
	"fmt"
	"iter"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/catalog"
)

// Subsets yields every subset of {0..k-1} in ascending mask order, as the
// mask and the ascending list of member positions. The member slice is
// fresh for every subset. Subsets panics if k is outside [0, MaxSubsetBits].
func Subsets(k int) iter.Seq2[int, []int] {
	if k < 0 || k > MaxSubsetBits {
		panic(fmt.Sprintf("expand: Subsets(%d) outside [0,%d]", k, MaxSubsetBits))
	}

	return func(yield func(int, []int) bool) {
		for mask := 0; mask < 1<<k; mask++ {
			members := make([]int, 0, bits.OnesCount(uint(mask)))
			for b := 0; b < k; b++ {
				if mask&(1<<b) != 0 {
					members = append(members, b)
				}
			}
			if !yield(mask, members) {
				return
			}
		}
	}
}

// Packages enumerates every package of an AttrAttachment catalog. A main
// with more than maxAttachments attachments fails the whole call with
// ErrTooManyAttachments; maxAttachments <= 0 selects DefaultMaxAttachments.
//
// Complexity: O(Σ 2^k · k) time and memory over all mains.
func Packages(c *catalog.Catalog, maxAttachments int) ([]Package, error) {
	if c.Attribute() != catalog.AttrAttachment {
		return nil, ErrWrongAttribute
	}
	if maxAttachments <= 0 {
		maxAttachments = DefaultMaxAttachments
	}
	if maxAttachments > MaxSubsetBits {
		maxAttachments = MaxSubsetBits
	}

	mains := c.Roots()
	total := 0
	for _, m := range mains {
		k := len(c.Children(m))
		if k > maxAttachments {
			return nil, fmt.Errorf("%w: main %d has %d, limit %d", ErrTooManyAttachments, m+1, k, maxAttachments)
		}
		total += 1 << k
	}

	out := make([]Package, 0, total)
	for _, m := range mains {
		atts := c.Children(m)
		for mask, picked := range Subsets(len(atts)) {
			out = append(out, build(c, m, mask, atts, picked))
		}
	}

	return out, nil
}

// PackageOf builds the single package of main (0-based) selected by mask.
// Bits at or above the main's attachment count are ignored.
func PackageOf(c *catalog.Catalog, main, mask int) (Package, error) {
	if c.Attribute() != catalog.AttrAttachment {
		return Package{}, ErrWrongAttribute
	}
	atts := c.Children(main)
	picked := make([]int, 0, len(atts))
	for b := range atts {
		if mask&(1<<b) != 0 {
			picked = append(picked, b)
		}
	}

	return build(c, main, mask&(1<<len(atts)-1), atts, picked), nil
}

func build(c *catalog.Catalog, main, mask int, atts, picked []int) Package {
	it := c.Item(main)
	p := Package{
		Main:    main,
		Mask:    mask,
		Members: make([]int, 0, len(picked)+1),
		Weight:  it.Weight,
		Value:   it.Value,
	}
	p.Members = append(p.Members, main)

	var label strings.Builder
	label.WriteString("Main")
	label.WriteString(strconv.Itoa(main + 1))
	for _, b := range picked {
		idx := atts[b]
		a := c.Item(idx)
		p.Weight += a.Weight
		p.Value += a.Value
		p.Members = append(p.Members, idx)
		label.WriteString("+Attachment")
		label.WriteString(strconv.Itoa(idx + 1))
	}
	p.Label = label.String()

	return p
}
