package knapsack

// Table is a dense rows×cols DP table stored row-major in one flat slice.
// Row 0 is the base row.
type Table struct {
	rows, cols int
	data       []int
}

func newTable(rows, cols int) *Table {
	return &Table{rows: rows, cols: cols, data: make([]int, rows*cols)}
}

// Rows returns the number of rows, base row included.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of capacity columns (C+1).
func (t *Table) Cols() int { return t.cols }

// At returns cell (i, j). It panics outside the table like a slice access.
func (t *Table) At(i, j int) int { return t.data[i*t.cols+j] }

func (t *Table) set(i, j, v int) { t.data[i*t.cols+j] = v }

// Row returns a copy of row i.
func (t *Table) Row(i int) []int {
	out := make([]int, t.cols)
	copy(out, t.data[i*t.cols:(i+1)*t.cols])

	return out
}

// Values returns the table as a fresh slice of rows.
func (t *Table) Values() [][]int {
	out := make([][]int, t.rows)
	for i := range out {
		out[i] = t.Row(i)
	}

	return out
}

// Cube is a dense rows×cols×vols table for the two-resource variant.
type Cube struct {
	rows, cols, vols int
	data             []int
}

func newCube(rows, cols, vols int) *Cube {
	return &Cube{rows: rows, cols: cols, vols: vols, data: make([]int, rows*cols*vols)}
}

// Rows returns the number of rows, base row included.
func (c *Cube) Rows() int { return c.rows }

// Cols returns the number of weight columns (C+1).
func (c *Cube) Cols() int { return c.cols }

// Vols returns the number of volume columns (M+1).
func (c *Cube) Vols() int { return c.vols }

// At returns cell (i, j, k).
func (c *Cube) At(i, j, k int) int { return c.data[(i*c.cols+j)*c.vols+k] }

func (c *Cube) set(i, j, k, v int) { c.data[(i*c.cols+j)*c.vols+k] = v }

// Layer returns a copy of row i as a cols×vols slice.
func (c *Cube) Layer(i int) [][]int {
	out := make([][]int, c.cols)
	for j := range out {
		out[j] = make([]int, c.vols)
		base := (i*c.cols + j) * c.vols
		copy(out[j], c.data[base:base+c.vols])
	}

	return out
}
