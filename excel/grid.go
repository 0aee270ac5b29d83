package excel

import (
	"sort"

	"github.com/xuri/excelize/v2"
	"kastelo.dev/appraisal"
)

// Cell is a value plus the name of a style registered on the grid.
type Cell struct {
	appraisal.Value
	Style string
}

type coord struct{ col, row int }

type merge struct {
	first, last, row int
}

// Grid is a single sheet laid out in memory: cell values and formulas,
// named styles, merged regions, column widths and the frozen pane. XLSX
// turns it into a workbook.
type Grid struct {
	Sheet string

	// Freeze is the top left cell of the scrolling region; rows above
	// and columns to the left of it stay visible.
	Freeze string

	cells  map[coord]Cell
	styles map[string]*excelize.Style
	merges []merge
	widths map[int]float64
}

func NewGrid(sheet string) *Grid {
	return &Grid{
		Sheet:  sheet,
		cells:  make(map[coord]Cell),
		styles: make(map[string]*excelize.Style),
		widths: make(map[int]float64),
	}
}

// DefineStyle registers a named style for use by cells.
func (g *Grid) DefineStyle(name string, s *excelize.Style) {
	g.styles[name] = s
}

func (g *Grid) Set(col, row int, v appraisal.Value, style string) {
	g.cells[coord{col, row}] = Cell{Value: v, Style: style}
}

func (g *Grid) Cell(col, row int) (Cell, bool) {
	c, ok := g.cells[coord{col, row}]
	return c, ok
}

// At returns the cell at an A1-style reference.
func (g *Grid) At(ref string) (Cell, bool) {
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return Cell{}, false
	}
	return g.Cell(col, row)
}

// SetRow writes a data row with every column styled by styleOf.
func (g *Grid) SetRow(row int, r *appraisal.Row, styleOf func(appraisal.Column) string) {
	for i, v := range r {
		g.Set(i+1, row, v, styleOf(appraisal.Columns[i]))
	}
}

// Merge sets the value of the first cell and merges it across columns
// first to last of the row. Every covered cell gets the style, so borders
// and fills span the region.
func (g *Grid) Merge(first, last, row int, v appraisal.Value, style string) {
	for col := first; col <= last; col++ {
		g.Set(col, row, appraisal.Value{}, style)
	}
	g.Set(first, row, v, style)
	g.merges = append(g.merges, merge{first, last, row})
}

// Merged returns the merged ranges as "A1:R1" strings.
func (g *Grid) Merged() []string {
	res := make([]string, len(g.merges))
	for i, m := range g.merges {
		res[i] = appraisal.CellRef(m.first, m.row) + ":" + appraisal.CellRef(m.last, m.row)
	}
	return res
}

func (g *Grid) SetWidth(first, last int, width float64) {
	for col := first; col <= last; col++ {
		g.widths[col] = width
	}
}

func (g *Grid) Width(col int) float64 {
	return g.widths[col]
}

// Rows returns the number of the last row holding a cell.
func (g *Grid) Rows() int {
	last := 0
	for c := range g.cells {
		if c.row > last {
			last = c.row
		}
	}
	return last
}

func (g *Grid) sortedCells() []coord {
	res := make([]coord, 0, len(g.cells))
	for c := range g.cells {
		res = append(res, c)
	}
	sort.Slice(res, func(a, b int) bool {
		if res[a].row != res[b].row {
			return res[a].row < res[b].row
		}
		return res[a].col < res[b].col
	})
	return res
}
