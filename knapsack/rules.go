package knapsack

import (
	"slices"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/trace"
)

// rowRule fills one table row from the row above it (and, for unbounded
// rules, from the already-filled left part of the same row) and knows how
// to undo that row during backtracking. A solve picks one rule per row up
// front and never re-examines item attributes inside the fill.
type rowRule interface {
	// fill computes row i (1-based) for every column, ascending.
	fill(t *Table, i int, rec *trace.Recorder)

	// back inspects cell (i, j) and returns the units taken there and the
	// cell to continue from.
	back(t *Table, i, j int) (picks []Pick, row, col int)
}

// unit is the 0/1 view of one row: an item, a split or a package.
type unit struct {
	item    int // row subject: item, split or package index
	w, v    int
	origin  int // original item reported in picks
	mult    int
	label   string
	members []int
	kind    catalog.Kind
	sparse  bool // list the with-source only when it won
}

func (u *unit) step(i, j, val int) trace.Step {
	return trace.Step{
		Row:        i,
		Col:        j,
		Vol:        trace.NoVol,
		Value:      val,
		Decision:   trace.Skip,
		Item:       u.item,
		Choice:     -1,
		ItemKind:   int(u.kind),
		Origin:     u.origin,
		Multiplier: u.mult,
		Label:      u.label,
		Node:       -1,
		Child:      -1,
		Parent:     -1,
	}
}

func (u *unit) pick(i, j int) Pick {
	return Pick{
		Row:        i,
		Col:        j,
		Vol:        trace.NoVol,
		Item:       u.origin,
		Multiplier: u.mult,
		Label:      u.label,
		Members:    slices.Clone(u.members),
	}
}

// onceRule: t[i][j] = max(t[i-1][j], t[i-1][j-w]+v).
type onceRule struct{ unit }

func (r *onceRule) fill(t *Table, i int, rec *trace.Recorder) {
	for j := 0; j < t.cols; j++ {
		without := t.At(i-1, j)
		val := without
		fits := j >= r.w
		if fits {
			if with := t.At(i-1, j-r.w) + r.v; with > val {
				val = with
			}
		}
		t.set(i, j, val)

		if rec.Enabled() {
			s := r.step(i, j, val)
			s.Sources = sources(trace.Source{Row: i - 1, Col: j - r.w, Vol: trace.NoVol, Role: trace.With},
				i-1, j, fits && (!r.sparse || val != without))
			if val != without {
				s.Decision = trace.Take
			}
			rec.Record(s)
		}
	}
}

func (r *onceRule) back(t *Table, i, j int) ([]Pick, int, int) {
	if t.At(i, j) == t.At(i-1, j) {
		return nil, i - 1, j
	}

	return []Pick{r.pick(i, j)}, i - 1, j - r.w
}

// packageRule is onceRule for one package of a main item. The with-branch
// reads the row just before the main's first package, so two packages of
// one main are never both taken.
type packageRule struct {
	unit
	base int
}

func (r *packageRule) fill(t *Table, i int, rec *trace.Recorder) {
	for j := 0; j < t.cols; j++ {
		without := t.At(i-1, j)
		val := without
		fits := j >= r.w
		if fits {
			if with := t.At(r.base, j-r.w) + r.v; with > val {
				val = with
			}
		}
		t.set(i, j, val)

		if rec.Enabled() {
			s := r.step(i, j, val)
			s.Sources = sources(trace.Source{Row: r.base, Col: j - r.w, Vol: trace.NoVol, Role: trace.With}, i-1, j, fits)
			if val != without {
				s.Decision = trace.Take
			}
			rec.Record(s)
		}
	}
}

// back jumps over the main's remaining packages after a take.
func (r *packageRule) back(t *Table, i, j int) ([]Pick, int, int) {
	if t.At(i, j) == t.At(i-1, j) {
		return nil, i - 1, j
	}

	return []Pick{r.pick(i, j)}, r.base, j - r.w
}

// unboundedRule: t[i][j] = max(t[i-1][j], t[i][j-w]+v), columns ascending.
type unboundedRule struct{ unit }

func (r *unboundedRule) fill(t *Table, i int, rec *trace.Recorder) {
	for j := 0; j < t.cols; j++ {
		without := t.At(i-1, j)
		val := without
		fits := j >= r.w
		if fits {
			if with := t.At(i, j-r.w) + r.v; with > val {
				val = with
			}
		}
		t.set(i, j, val)

		if rec.Enabled() {
			s := r.step(i, j, val)
			s.Sources = sources(trace.Source{Row: i, Col: j - r.w, Vol: trace.NoVol, Role: trace.With},
				i-1, j, fits && (!r.sparse || val != without))
			if val != without {
				s.Decision = trace.Take
			}
			rec.Record(s)
		}
	}
}

// back stays on row i after a take: the same item may recur.
func (r *unboundedRule) back(t *Table, i, j int) ([]Pick, int, int) {
	if t.At(i, j) == t.At(i-1, j) {
		return nil, i - 1, j
	}

	return []Pick{r.pick(i, j)}, i, j - r.w
}

// boundedRule: t[i][j] = max over k in [0, count] of t[i-1][j-k·w] + k·v,
// the first strictly better k winning.
type boundedRule struct {
	unit
	count int
}

func (r *boundedRule) fill(t *Table, i int, rec *trace.Recorder) {
	for j := 0; j < t.cols; j++ {
		without := t.At(i-1, j)
		val, from := without, 0
		for k := 1; k <= r.count && k*r.w <= j; k++ {
			if c := t.At(i-1, j-k*r.w) + k*r.v; c > val {
				val, from = c, k
			}
		}
		t.set(i, j, val)

		if rec.Enabled() {
			s := r.step(i, j, val)
			s.Sources = sources(trace.Source{Row: i - 1, Col: j - from*r.w, Vol: trace.NoVol, Role: trace.With},
				i-1, j, from > 0)
			if from > 0 {
				s.Decision = trace.Take
				s.Multiplier = from
			}
			rec.Record(s)
		}
	}
}

// back emits one single-copy pick per unit of the smallest matching k.
func (r *boundedRule) back(t *Table, i, j int) ([]Pick, int, int) {
	cur := t.At(i, j)
	if cur == t.At(i-1, j) {
		return nil, i - 1, j
	}
	for k := 1; k <= r.count && k*r.w <= j; k++ {
		if t.At(i-1, j-k*r.w)+k*r.v != cur {
			continue
		}
		picks := make([]Pick, k)
		for x := range picks {
			picks[x] = r.pick(i, j-x*r.w)
		}

		return picks, i - 1, j - k*r.w
	}

	return nil, i - 1, j
}

// countRule: t[i][j] = t[i-1][j] + t[i-1][j-w]; no selection semantics.
type countRule struct{ unit }

func (r *countRule) fill(t *Table, i int, rec *trace.Recorder) {
	for j := 0; j < t.cols; j++ {
		without, with := t.At(i-1, j), 0
		fits := j >= r.w
		if fits {
			with = t.At(i-1, j-r.w)
		}
		t.set(i, j, without+with)

		if rec.Enabled() {
			s := r.step(i, j, without+with)
			s.Decision = trace.Add
			s.Addends = []int{without, with}
			s.Sources = sources(trace.Source{Row: i - 1, Col: j - r.w, Vol: trace.NoVol, Role: trace.With}, i-1, j, fits)
			rec.Record(s)
		}
	}
}

func (r *countRule) back(_ *Table, i, j int) ([]Pick, int, int) { return nil, i - 1, j }

// groupRule: t[g+1][j] = max(t[g][j], max over members of t[g][j-w]+v).
// Ties keep the skip branch, then the first member in group order.
type groupRule struct {
	pos     int // 0-based group position
	id      int
	members []int
	items   []catalog.Item
}

func (r *groupRule) fill(t *Table, i int, rec *trace.Recorder) {
	for j := 0; j < t.cols; j++ {
		without := t.At(i-1, j)
		val, choice := without, -1

		var cands []trace.Candidate
		if rec.Enabled() {
			cands = make([]trace.Candidate, 0, len(r.members))
		}
		for _, idx := range r.members {
			it := r.items[idx]
			fits := j >= it.Weight
			res := 0
			if fits {
				res = t.At(i-1, j-it.Weight) + it.Value
				if res > val {
					val, choice = res, idx
				}
			}
			if cands != nil {
				cands = append(cands, trace.Candidate{Item: idx, Weight: it.Weight, Value: it.Value, Fits: fits, Result: res})
			}
		}
		t.set(i, j, val)

		if rec.Enabled() {
			s := trace.Step{
				Row:        i,
				Col:        j,
				Vol:        trace.NoVol,
				Value:      val,
				Decision:   trace.Merge,
				Item:       r.pos,
				Candidates: cands,
				Choice:     choice,
				Group:      r.id,
				Node:       -1,
				Child:      -1,
				Parent:     -1,
			}
			w := 0
			if choice >= 0 {
				w = r.items[choice].Weight
			}
			s.Sources = sources(trace.Source{Row: i - 1, Col: j - w, Vol: trace.NoVol, Role: trace.With}, i-1, j, choice >= 0)
			rec.Record(s)
		}
	}
}

func (r *groupRule) back(t *Table, i, j int) ([]Pick, int, int) {
	cur := t.At(i, j)
	if cur == t.At(i-1, j) {
		return nil, i - 1, j
	}
	for _, idx := range r.members {
		it := r.items[idx]
		if j >= it.Weight && t.At(i-1, j-it.Weight)+it.Value == cur {
			p := Pick{Row: i, Col: j, Vol: trace.NoVol, Item: idx, Multiplier: 1, Group: r.id}
			return []Pick{p}, i - 1, j - it.Weight
		}
	}

	return nil, i - 1, j
}

// sources lists the without-source (row, col) and, when withOK, the
// with-source.
func sources(with trace.Source, row, col int, withOK bool) []trace.Source {
	out := make([]trace.Source, 1, 2)
	out[0] = trace.Source{Row: row, Col: col, Vol: trace.NoVol, Role: trace.Without}
	if withOK {
		out = append(out, with)
	}

	return out
}

// fillRows runs every rule in order over a table whose row 0 is already
// initialised. ctx is checked before each row.
func (s *session) fillRows(t *Table, rules []rowRule) error {
	for i := 1; i <= len(rules); i++ {
		if err := s.alive(); err != nil {
			return err
		}
		rules[i-1].fill(t, i, s.rec)
	}
	s.cells += len(rules) * t.cols

	return nil
}
