package knapsack

import "github.com/katalvlaran/knapsack/trace"

// backtrack walks from cell (rows-1, C) towards row 0, asking each row's
// rule what was taken there and which cell comes next. Equal values mean
// the row was skipped. Picks come out in discovery order: last row first.
func backtrack(t *Table, rules []rowRule) []Pick {
	path := make([]Pick, 0)
	for i, j := len(rules), t.cols-1; i > 0 && j > 0; {
		var picks []Pick
		picks, i, j = rules[i-1].back(t, i, j)
		path = append(path, picks...)
	}

	return path
}

// backtrackCube is the two-resource walk. Volume may reach 0 before
// weight does, so only the weight column ends the walk early.
func backtrackCube(c *Cube, w, m []int) []Pick {
	path := make([]Pick, 0)
	j, k := c.cols-1, c.vols-1
	for i := c.rows - 1; i > 0 && j > 0; i-- {
		if c.At(i, j, k) == c.At(i-1, j, k) {
			continue
		}
		path = append(path, Pick{Row: i, Col: j, Vol: k, Item: i - 1, Multiplier: 1})
		j -= w[i-1]
		k -= m[i-1]
	}

	return path
}

// quantities totals copies per original item over path.
func quantities(n int, path []Pick) []int {
	q := make([]int, n)
	for _, p := range path {
		if len(p.Members) > 0 {
			for _, m := range p.Members {
				q[m]++
			}
			continue
		}
		q[p.Item] += p.Multiplier
	}

	return q
}

// fillCube runs the two-resource 0/1 rule over (j, k) cells, k innermost.
func (s *session) fillCube(c *Cube, w, m, v []int) error {
	for i := 1; i < c.rows; i++ {
		if err := s.alive(); err != nil {
			return err
		}
		wi, mi, vi := w[i-1], m[i-1], v[i-1]
		for j := 0; j < c.cols; j++ {
			for k := 0; k < c.vols; k++ {
				without := c.At(i-1, j, k)
				val, took := without, false
				if j >= wi && k >= mi {
					if with := c.At(i-1, j-wi, k-mi) + vi; with > val {
						val, took = with, true
					}
				}
				c.set(i, j, k, val)

				if s.rec.Enabled() {
					st := trace.Step{
						Row:        i,
						Col:        j,
						Vol:        k,
						Value:      val,
						Decision:   trace.Skip,
						Item:       i - 1,
						Choice:     -1,
						Origin:     i - 1,
						Multiplier: 1,
						Node:       -1,
						Child:      -1,
						Parent:     -1,
						Sources:    []trace.Source{{Row: i - 1, Col: j, Vol: k, Role: trace.Without}},
					}
					if took {
						st.Decision = trace.Take
						st.Sources = append(st.Sources, trace.Source{Row: i - 1, Col: j - wi, Vol: k - mi, Role: trace.With})
					}
					s.rec.Record(st)
				}
			}
		}
	}
	s.cells += (c.rows - 1) * c.cols * c.vols

	return nil
}
