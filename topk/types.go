package topk

import "errors"

// ErrInvalidK indicates K < 1.
var ErrInvalidK = errors.New("topk: K must be at least 1")

// ErrInvalidCapacity indicates a negative capacity.
var ErrInvalidCapacity = errors.New("topk: capacity must be non-negative")

// Grid is a dense (rows × cols) table of top-K sequences.
type Grid struct {
	rows, cols int
	cells      [][]int
}

func newGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([][]int, rows*cols)}
}

// Rows returns the number of prefix rows (n+1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of capacity columns (C+1).
func (g *Grid) Cols() int { return g.cols }

// At returns the sequence of cell (i, j). The slice is shared with the grid.
func (g *Grid) At(i, j int) []int { return g.cells[i*g.cols+j] }

func (g *Grid) set(i, j int, s []int) { g.cells[i*g.cols+j] = s }

// Result is the outcome of Solve.
type Result struct {
	K     int
	Grid  *Grid
	TopK  []int // seq[n][C]
	Best  int
	Kth   int
	Cells int // cells evaluated, excluding the base row
}
