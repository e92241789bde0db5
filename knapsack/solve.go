package knapsack

import (
	"fmt"
	"time"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/expand"
	"github.com/katalvlaran/knapsack/topk"
	"github.com/katalvlaran/knapsack/trace"
	"github.com/katalvlaran/knapsack/tree"
)

// session carries the per-call state shared by the variant drivers.
type session struct {
	opts  Options
	rec   *trace.Recorder
	cells int
}

func (s *session) alive() error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
		return nil
	}
}

// Solve validates p.Items for p.Variant and solves the instance.
//
// Stages:
//  1. Resolve the variant and build the catalog (item validation).
//  2. SolveCatalog: validate capacities, expand, fill, backtrack.
//
// A failing call returns a nil Result; nothing partial escapes.
func Solve(p Problem, opts ...Option) (*Result, error) {
	if !p.Variant.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(p.Variant))
	}
	cat, err := catalog.New(p.Variant.Attribute(), p.Items)
	if err != nil {
		return nil, err
	}

	return SolveCatalog(p.Variant, cat, p.Capacity, p.K, opts...)
}

// SolveCatalog solves variant v over an already validated catalog. k is
// read only by Kth.
func SolveCatalog(v Variant, cat *catalog.Catalog, capacity Capacity, k int, opts ...Option) (*Result, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if !v.accepts(cat.Attribute()) {
		return nil, fmt.Errorf("%w: %s needs %s, got %s", ErrVariantMismatch, v, v.Attribute(), cat.Attribute())
	}
	if capacity.Weight < 0 || (v == TwoDimensional && capacity.Volume < 0) {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidCapacity, capacity)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &session{opts: o}
	if o.Trace {
		s.rec = trace.NewRecorder(0)
	}

	log := o.Logger.WithValues("variant", v.String(), "items", cat.Len(), "capacity", capacity.Weight)
	log.V(1).Info("solve started")
	start := time.Now()

	res := &Result{Variant: v, Capacity: capacity, K: k, Items: cat.Items()}
	var err error
	switch v {
	case ZeroOne, Complete, Mixed, Count:
		err = s.solveItems(res, cat)
	case Multiple:
		err = s.solveSplits(res, cat)
	case Dependency:
		err = s.solvePackages(res, cat)
	case Group:
		err = s.solveGroups(res, cat)
	case TwoDimensional:
		err = s.solveCube(res, cat)
	case Kth:
		err = s.solveTopK(res, cat, k)
	case Tree:
		err = s.solveTree(res, cat)
	}
	if err != nil {
		log.V(1).Info("solve failed", "error", err.Error())
		return nil, err
	}

	res.Steps = s.rec.Steps()
	res.Cells = s.cells
	res.Elapsed = time.Since(start)
	if res.Path != nil {
		res.Quantities = quantities(cat.Len(), res.Path)
	}
	log.V(1).Info("solve finished", "cells", res.Cells, "value", res.Value, "elapsed", res.Elapsed)

	return res, nil
}

// solveItems drives the variants whose rows are the catalog items.
func (s *session) solveItems(res *Result, cat *catalog.Catalog) error {
	rules := make([]rowRule, cat.Len())
	for i := range rules {
		it := cat.Item(i)
		u := unit{item: i, w: it.Weight, v: it.Value, origin: i, mult: 1}
		switch res.Variant {
		case ZeroOne:
			rules[i] = &onceRule{u}
		case Complete:
			rules[i] = &unboundedRule{u}
		case Count:
			rules[i] = &countRule{u}
		case Mixed:
			u.kind, u.sparse = it.Kind, true
			switch it.Kind {
			case catalog.Unbounded:
				rules[i] = &unboundedRule{u}
			case catalog.Multiple:
				rules[i] = &boundedRule{unit: u, count: it.Count}
			default:
				rules[i] = &onceRule{u}
			}
		}
	}

	t := newTable(len(rules)+1, res.Capacity.Weight+1)
	if res.Variant == Count {
		t.set(0, 0, 1)
	}
	if err := s.fillRows(t, rules); err != nil {
		return err
	}
	res.Table = t
	res.Value = t.At(len(rules), res.Capacity.Weight)
	if res.Variant == Count {
		res.Path = make([]Pick, 0)
	} else {
		res.Path = backtrack(t, rules)
	}

	return nil
}

// solveSplits reduces Multiple to 0/1 over binary splits.
func (s *session) solveSplits(res *Result, cat *catalog.Catalog) error {
	splits, err := expand.Splits(cat)
	if err != nil {
		return err
	}
	rules := make([]rowRule, len(splits))
	for i, sp := range splits {
		rules[i] = &onceRule{unit{item: i, w: sp.Weight, v: sp.Value, origin: sp.Origin, mult: sp.Multiplier}}
	}

	return s.solveOnce(res, rules, func() { res.Splits = splits })
}

// solvePackages reduces Dependency to one row per package. Packages of a
// main are contiguous; each of them reads the row before the first one.
func (s *session) solvePackages(res *Result, cat *catalog.Catalog) error {
	pkgs, err := expand.Packages(cat, s.opts.MaxAttachments)
	if err != nil {
		return err
	}
	rules := make([]rowRule, len(pkgs))
	base := 0
	for i, p := range pkgs {
		if i > 0 && p.Main != pkgs[i-1].Main {
			base = i
		}
		u := unit{item: i, w: p.Weight, v: p.Value, origin: p.Main, mult: 1, label: p.Label, members: p.Members}
		rules[i] = &packageRule{unit: u, base: base}
	}

	return s.solveOnce(res, rules, func() { res.Packages = pkgs })
}

func (s *session) solveOnce(res *Result, rules []rowRule, attach func()) error {
	t := newTable(len(rules)+1, res.Capacity.Weight+1)
	if err := s.fillRows(t, rules); err != nil {
		return err
	}
	attach()
	res.Table = t
	res.Value = t.At(len(rules), res.Capacity.Weight)
	res.Path = backtrack(t, rules)

	return nil
}

// solveGroups fills one row per group in ascending id order.
func (s *session) solveGroups(res *Result, cat *catalog.Catalog) error {
	groups := cat.Groups()
	items := cat.Items()
	rules := make([]rowRule, len(groups))
	for g, grp := range groups {
		rules[g] = &groupRule{pos: g, id: grp.ID, members: grp.Members, items: items}
	}

	return s.solveOnce(res, rules, func() { res.Groups = groups })
}

func (s *session) solveCube(res *Result, cat *catalog.Catalog) error {
	n := cat.Len()
	w, m, v := make([]int, n), make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		it := cat.Item(i)
		w[i], m[i], v[i] = it.Weight, it.Volume, it.Value
	}
	c := newCube(n+1, res.Capacity.Weight+1, res.Capacity.Volume+1)
	if err := s.fillCube(c, w, m, v); err != nil {
		return err
	}
	res.Cube = c
	res.Value = c.At(n, res.Capacity.Weight, res.Capacity.Volume)
	res.Path = backtrackCube(c, w, m)

	return nil
}

func (s *session) solveTopK(res *Result, cat *catalog.Catalog, k int) error {
	tr, err := topk.Solve(s.opts.Ctx, cat, res.Capacity.Weight, k, s.rec)
	if err != nil {
		return err
	}
	res.TopK = tr
	res.Value = tr.Best
	res.Kth = tr.Kth
	res.Path = make([]Pick, 0)
	s.cells += tr.Cells

	return nil
}

func (s *session) solveTree(res *Result, cat *catalog.Catalog) error {
	tr, err := tree.Solve(s.opts.Ctx, cat, res.Capacity.Weight, s.rec, s.opts.TreeOptions...)
	if err != nil {
		return err
	}
	res.Tree = tr
	res.Value = tr.Best
	res.Path = make([]Pick, len(tr.Selected))
	for i, ch := range tr.Selected {
		res.Path[i] = Pick{Row: ch.Node, Col: ch.Budget, Vol: trace.NoVol, Item: ch.Node, Multiplier: 1}
	}
	s.cells += tr.Cells

	return nil
}
