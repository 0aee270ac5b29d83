package excel

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"kastelo.dev/appraisal"
)

// XLSX renders the grid as a single-sheet workbook.
func XLSX(g *Grid) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/appraisal",
		DocSecurity: 2,
	})
	_ = xlsx.SetDocProps(&excelize.DocProperties{
		Title:   g.Sheet,
		Creator: "kastelo.dev/appraisal",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, g.Sheet); err != nil {
		return nil, errors.Wrapf(err, "sheet name %q", g.Sheet)
	}
	sheet = g.Sheet

	cols := make([]int, 0, len(g.widths))
	for col := range g.widths {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	for _, col := range cols {
		name := appraisal.ColumnName(col)
		_ = xlsx.SetColWidth(sheet, name, name, g.widths[col])
	}

	styleIDs := make(map[string]int, len(g.styles))
	for name, s := range g.styles {
		id, err := xlsx.NewStyle(s)
		if err != nil {
			return nil, errors.Wrapf(err, "style %q", name)
		}
		styleIDs[name] = id
	}

	for _, c := range g.sortedCells() {
		cell := g.cells[c]
		ref := appraisal.CellRef(c.col, c.row)
		switch {
		case cell.Formula != "":
			if err := xlsx.SetCellFormula(sheet, ref, cell.Formula); err != nil {
				return nil, errors.Wrapf(err, "formula in %s", ref)
			}
		case !cell.IsBlank():
			if err := xlsx.SetCellValue(sheet, ref, cell.Literal); err != nil {
				return nil, errors.Wrapf(err, "value in %s", ref)
			}
		}
		if id, ok := styleIDs[cell.Style]; ok {
			_ = xlsx.SetCellStyle(sheet, ref, ref, id)
		}
	}

	for _, m := range g.merges {
		if err := xlsx.MergeCell(sheet, appraisal.CellRef(m.first, m.row), appraisal.CellRef(m.last, m.row)); err != nil {
			return nil, errors.Wrap(err, "merging cells")
		}
	}

	if g.Freeze != "" {
		panes, err := freezePanes(g.Freeze)
		if err != nil {
			return nil, err
		}
		_ = xlsx.SetPanes(sheet, panes)
	}

	// Increase size of window
	for i := range xlsx.WorkBook.BookViews.WorkBookView {
		xlsx.WorkBook.BookViews.WorkBookView[i].XWindow = "1000"
		xlsx.WorkBook.BookViews.WorkBookView[i].YWindow = "1000"
		xlsx.WorkBook.BookViews.WorkBookView[i].WindowWidth = 25000
		xlsx.WorkBook.BookViews.WorkBookView[i].WindowHeight = 25000 / 3 * 2
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func freezePanes(topLeft string) (*excelize.Panes, error) {
	col, row, err := excelize.CellNameToCoordinates(topLeft)
	if err != nil {
		return nil, errors.Wrap(err, "freeze cell")
	}
	p := &excelize.Panes{
		Freeze:      true,
		XSplit:      col - 1,
		YSplit:      row - 1,
		TopLeftCell: topLeft,
	}
	switch {
	case p.XSplit > 0 && p.YSplit > 0:
		p.ActivePane = "bottomRight"
	case p.YSplit > 0:
		p.ActivePane = "bottomLeft"
	case p.XSplit > 0:
		p.ActivePane = "topRight"
	}
	return p, nil
}

// Save renders the grid and writes it to path. It fails unless the file
// exists and is non-empty afterwards. A failed write may leave a partial
// file behind.
func Save(g *Grid, path string) error {
	bs, err := XLSX(g)
	if err != nil {
		return appraisal.NewWriteError(path, err)
	}
	if err := os.WriteFile(path, bs, 0o644); err != nil {
		return appraisal.NewWriteError(path, err)
	}
	return verify(path)
}

func verify(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return appraisal.NewWriteError(path, err)
	}
	if fi.Size() == 0 {
		return appraisal.NewWriteError(path, errors.New("output file is empty"))
	}
	return nil
}
