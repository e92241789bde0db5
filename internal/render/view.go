package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/knapsack/knapsack"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorTaken  = lipgloss.Color("#F4D03F")
	colorMuted  = lipgloss.Color("#2C4A54")
)

type palette struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	taken  lipgloss.Style
	muted  lipgloss.Style
}

func newPalette(color bool) palette {
	p := palette{
		title:  lipgloss.NewStyle(),
		header: lipgloss.NewStyle(),
		cell:   lipgloss.NewStyle(),
		taken:  lipgloss.NewStyle(),
		muted:  lipgloss.NewStyle(),
	}
	if color {
		p.title = p.title.Bold(true).Foreground(colorAccent)
		p.header = p.header.Foreground(colorAccent)
		p.taken = p.taken.Bold(true).Foreground(colorTaken)
		p.muted = p.muted.Foreground(colorMuted)
	}

	return p
}

// View renders res for a terminal: a title line, the final table with the
// backtracked cells marked, the selection and the optimum. Every cell is
// right-aligned to the widest value. Without color the output is plain
// text; cells on the path are then starred.
func View(res *knapsack.Result, color bool) string {
	p := newPalette(color)
	rows, label := grid(res)

	marked := make(map[[2]int]bool, len(res.Path))
	for _, pk := range res.Path {
		marked[[2]int{pk.Row, pk.Col}] = true
	}

	width := 1
	for _, r := range rows {
		for _, v := range r {
			width = max(width, len(strconv.Itoa(v))+1)
		}
	}
	labelWidth := 4
	for i := range rows {
		labelWidth = max(labelWidth, len(label(i))+1)
	}

	var b strings.Builder
	b.WriteString(p.title.Render(fmt.Sprintf("%s  capacity=%d", res.Variant.Title(), res.Capacity.Weight)))
	b.WriteByte('\n')

	if len(rows) > 0 {
		head := []string{p.header.Width(labelWidth).Render("")}
		for j := range rows[0] {
			head = append(head, p.header.Width(width+1).Align(lipgloss.Right).Render(strconv.Itoa(j)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, head...))
		b.WriteByte('\n')

		for i, r := range rows {
			line := []string{p.muted.Width(labelWidth).Render(label(i))}
			for j, v := range r {
				st, suffix := p.cell, " "
				if marked[[2]int{i, j}] {
					st = p.taken
					if !color {
						suffix = "*"
					}
				}
				line = append(line, st.Width(width+1).Align(lipgloss.Right).Render(strconv.Itoa(v)+suffix))
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
			b.WriteByte('\n')
		}
	}

	for _, pk := range res.Path {
		desc := fmt.Sprintf("item %d", pk.Item)
		if pk.Label != "" {
			desc = pk.Label
		}
		if pk.Multiplier > 1 {
			desc += fmt.Sprintf(" x%d", pk.Multiplier)
		}
		b.WriteString(p.muted.Render("  take "))
		b.WriteString(desc)
		b.WriteByte('\n')
	}

	switch res.Variant {
	case knapsack.Kth:
		b.WriteString(p.title.Render(fmt.Sprintf("top-%d: %v  k-th: %d", res.K, res.TopK.TopK, res.Kth)))
	case knapsack.Count:
		b.WriteString(p.title.Render(fmt.Sprintf("subsets of weight %d: %d", res.Capacity.Weight, res.Value)))
	default:
		b.WriteString(p.title.Render(fmt.Sprintf("max value: %d", res.Value)))
	}
	b.WriteByte('\n')

	return b.String()
}

// grid picks the two-dimensional view of res. TwoDimensional shows the
// layer at the volume bound, Kth the best total per cell, Tree one row per
// node.
func grid(res *knapsack.Result) ([][]int, func(int) string) {
	rowLabel := func(i int) string { return strconv.Itoa(i) }

	switch {
	case res.Table != nil:
		return res.Table.Values(), rowLabel
	case res.Cube != nil:
		c := res.Cube
		out := make([][]int, c.Rows())
		for i := range out {
			out[i] = make([]int, c.Cols())
			for j := range out[i] {
				out[i][j] = c.At(i, j, res.Capacity.Volume)
			}
		}
		return out, rowLabel
	case res.TopK != nil:
		g := res.TopK.Grid
		out := make([][]int, g.Rows())
		for i := range out {
			out[i] = make([]int, g.Cols())
			for j := range out[i] {
				if s := g.At(i, j); len(s) > 0 {
					out[i][j] = s[0]
				}
			}
		}
		return out, rowLabel
	case res.Tree != nil:
		return res.Tree.Nodes, func(i int) string { return "n" + strconv.Itoa(i) }
	}

	return nil, rowLabel
}
