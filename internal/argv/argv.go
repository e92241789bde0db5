// Package argv decodes the positional command line of the knapsack tools:
//
//	<capacity> [capacity2 | K] <n> <tuple> ... <tuple>
//
// The middle header value exists only for the 2d (capacity2) and kth (K)
// variants. Each tuple is a comma-separated list whose layout depends on
// the variant:
//
//	01, complete, count, kth   w,v
//	multiple                   w,v,c
//	2d                         w,m,v
//	group                      w,v,g
//	depend, tree               w,v,p       (p: 1-based parent, 0 for none)
//	mixed                      w,v,t[,c]   (t: 0 once, 1 complete, 2 multiple)
//
// Arguments past the declared n tuples are ignored. Fewer tuples than
// declared is tolerated: the items that were supplied are returned together
// with a *ShortInputError.
package argv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/knapsack"
)

// Header returns how many header values precede the tuples for v.
func Header(v knapsack.Variant) int {
	if v == knapsack.TwoDimensional || v == knapsack.Kth {
		return 3
	}

	return 2
}

// Decode parses args for variant v.
//
// A nil error or a *ShortInputError both come with a usable Problem; any
// other error comes with the zero Problem. Item contents are not validated
// here beyond being integers; catalog.New does that.
func Decode(v knapsack.Variant, args []string) (knapsack.Problem, error) {
	if !v.Valid() {
		return knapsack.Problem{}, fmt.Errorf("%w: %d", knapsack.ErrUnknownVariant, int(v))
	}
	h := Header(v)
	if len(args) < h {
		return knapsack.Problem{}, fmt.Errorf("%w: %s needs %d header values, got %d", ErrInsufficientArguments, v, h, len(args))
	}

	head := make([]int, h)
	names := headerNames(v)
	for i := range head {
		n, err := atoi(args[i], i, names[i])
		if err != nil {
			return knapsack.Problem{}, err
		}
		head[i] = n
	}

	p := knapsack.Problem{Variant: v, Capacity: knapsack.Capacity{Weight: head[0]}}
	switch v {
	case knapsack.TwoDimensional:
		p.Capacity.Volume = head[1]
	case knapsack.Kth:
		p.K = head[1]
	}

	n := head[h-1]
	if n < 0 {
		return knapsack.Problem{}, &FieldError{Arg: h - 1, Field: "n", Text: args[h-1], Cause: errors.New("negative item count")}
	}

	tuples := args[h:]
	supplied := min(n, len(tuples))
	p.Items = make([]catalog.Item, supplied)
	for i := 0; i < supplied; i++ {
		it, err := decodeTuple(v, tuples[i], h+i)
		if err != nil {
			return knapsack.Problem{}, err
		}
		p.Items[i] = it
	}

	if supplied < n {
		return p, &ShortInputError{Declared: n, Supplied: supplied}
	}

	return p, nil
}

func headerNames(v knapsack.Variant) []string {
	switch v {
	case knapsack.TwoDimensional:
		return []string{"capacity", "capacity2", "n"}
	case knapsack.Kth:
		return []string{"capacity", "K", "n"}
	default:
		return []string{"capacity", "n"}
	}
}

// layout returns the field names of a tuple for v and how many trailing
// fields may be omitted.
func layout(v knapsack.Variant) (fields []string, optional int) {
	switch v {
	case knapsack.Multiple:
		return []string{"w", "v", "c"}, 0
	case knapsack.TwoDimensional:
		return []string{"w", "m", "v"}, 0
	case knapsack.Group:
		return []string{"w", "v", "g"}, 0
	case knapsack.Dependency, knapsack.Tree:
		return []string{"w", "v", "p"}, 0
	case knapsack.Mixed:
		return []string{"w", "v", "t", "c"}, 1
	default:
		return []string{"w", "v"}, 0
	}
}

func decodeTuple(v knapsack.Variant, s string, arg int) (catalog.Item, error) {
	names, optional := layout(v)
	parts := strings.Split(s, ",")
	if len(parts) > len(names) || len(parts) < len(names)-optional {
		return catalog.Item{}, &FieldError{
			Arg:   arg,
			Field: strings.Join(names, ","),
			Text:  s,
			Cause: fmt.Errorf("want %d fields, got %d", len(names)-optional, len(parts)),
		}
	}

	var it catalog.Item
	for i, part := range parts {
		n, err := atoi(part, arg, names[i])
		if err != nil {
			return catalog.Item{}, err
		}
		switch names[i] {
		case "w":
			it.Weight = n
		case "v":
			it.Value = n
		case "m":
			it.Volume = n
		case "c":
			it.Count = n
		case "g":
			it.Group = n
		case "p":
			it.Parent = n
		case "t":
			it.Kind = catalog.Kind(n)
		}
	}

	return it, nil
}

func atoi(s string, arg int, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &FieldError{Arg: arg, Field: field, Text: s, Cause: err}
	}

	return n, nil
}
