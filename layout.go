package appraisal

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	NumIdentity  = 9
	NumQuestions = 12
	NumTraining  = 10
	NumColumns   = NumIdentity + 2*(NumQuestions+3) + NumTraining
)

// Section is a contiguous group of report columns.
type Section int

const (
	Identity Section = iota
	EmployeeScores
	EmployeeSummary
	ManagerScores
	ManagerSummary
	Training
)

// Summary column offsets within EmployeeSummary and ManagerSummary.
const (
	TotalCol = iota
	ScoreCol
	RatingCol
)

// Identity column offsets.
const (
	CompanyCol = iota
	DepartmentCol
	NameCol
	StaffNoCol
	FormCol
	RoleCol
	PositionCol
	DateJoinedCol
	PeriodCol
)

// Column describes one report column.
type Column struct {
	Section Section
	Index   int // position within the section
	Label   string
	Width   float64
}

// Numeric reports whether the column holds ratings, totals, scores or
// grades.
func (c Column) Numeric() bool {
	return c.Section != Identity && c.Section != Training
}

var identity = []struct {
	label string
	width float64
}{
	{"Company", 15},
	{"Dept", 12},
	{"Name", 18},
	{"Staff No.", 12},
	{"Form", 20},
	{"Role", 10},
	{"Position", 18},
	{"Date Joined", 12},
	{"Period", 20},
}

// Columns is the fixed report layout in column order. Column number n
// (1-based, as in spreadsheets) is Columns[n-1].
var Columns = buildColumns()

var sectionStart = func() map[Section]int {
	res := make(map[Section]int)
	for i := len(Columns) - 1; i >= 0; i-- {
		res[Columns[i].Section] = i + 1
	}
	return res
}()

var sectionLen = map[Section]int{
	Identity:        NumIdentity,
	EmployeeScores:  NumQuestions,
	EmployeeSummary: 3,
	ManagerScores:   NumQuestions,
	ManagerSummary:  3,
	Training:        NumTraining,
}

func buildColumns() []Column {
	cols := make([]Column, 0, NumColumns)
	for i, id := range identity {
		cols = append(cols, Column{Identity, i, id.label, id.width})
	}
	questions := func(sec Section) {
		for i := 0; i < NumQuestions; i++ {
			cols = append(cols, Column{sec, i, fmt.Sprintf("Q%d", i+1), 6})
		}
	}
	questions(EmployeeScores)
	cols = append(cols,
		Column{EmployeeSummary, TotalCol, "Total", 10},
		Column{EmployeeSummary, ScoreCol, "Score", 10},
		Column{EmployeeSummary, RatingCol, "Rating", 10},
	)
	questions(ManagerScores)
	cols = append(cols,
		Column{ManagerSummary, TotalCol, "Total", 10},
		Column{ManagerSummary, ScoreCol, "Score", 10},
		Column{ManagerSummary, RatingCol, "Final Rating", 12},
	)
	for i := 0; i < NumTraining; i++ {
		cols = append(cols, Column{Training, i, fmt.Sprintf("T%d", i+1), 30})
	}
	return cols
}

// Col returns the 1-based column number of the i'th column in sec. It
// panics if i is outside the section.
func Col(sec Section, i int) int {
	if i < 0 || i >= sectionLen[sec] {
		panic(fmt.Sprintf("column %d out of range for section %d", i, sec))
	}
	return sectionStart[sec] + i
}

// Span returns the first and last column numbers covered by the given
// sections, which are expected to be adjacent.
func Span(secs ...Section) (first, last int) {
	for _, sec := range secs {
		s := sectionStart[sec]
		e := s + sectionLen[sec] - 1
		if first == 0 || s < first {
			first = s
		}
		if e > last {
			last = e
		}
	}
	return first, last
}

// ScoresOf returns the question section of a side.
func ScoresOf(side Side) Section {
	if side == ManagerSide {
		return ManagerScores
	}
	return EmployeeScores
}

// SummaryOf returns the total/score/rating section of a side.
func SummaryOf(side Side) Section {
	if side == ManagerSide {
		return ManagerSummary
	}
	return EmployeeSummary
}

// ColumnName returns the spreadsheet letters for a 1-based column number.
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		panic(err)
	}
	return name
}

// CellRef returns the A1-style reference of a cell.
func CellRef(col, row int) string {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(err)
	}
	return ref
}

// Value is the content of one cell: a literal, a formula, or nothing.
type Value struct {
	Literal any
	Formula string // without leading "="
}

func Lit(v any) Value { return Value{Literal: v} }

func Formula(format string, args ...any) Value {
	return Value{Formula: fmt.Sprintf(format, args...)}
}

func (v Value) IsBlank() bool {
	return v.Formula == "" && (v.Literal == nil || v.Literal == "")
}

// Row is one report data row, indexed by column number minus one.
type Row [NumColumns]Value

func (r *Row) Set(sec Section, i int, v Value) {
	r[Col(sec, i)-1] = v
}

func (r *Row) Get(sec Section, i int) Value {
	return r[Col(sec, i)-1]
}

// SetRatings fills the question columns of sec from ratings. Ratings past
// the twelfth are dropped, missing ones and zeros are left blank.
func (r *Row) SetRatings(sec Section, ratings []float64) {
	for i := 0; i < NumQuestions; i++ {
		var v Value
		if i < len(ratings) && ratings[i] != 0 {
			v = Lit(ratings[i])
		}
		r.Set(sec, i, v)
	}
}

// SetTraining fills the training columns. Needs past the tenth are dropped.
func (r *Row) SetTraining(needs []string) {
	for i := 0; i < NumTraining; i++ {
		var v Value
		if i < len(needs) {
			v = Lit(needs[i])
		}
		r.Set(Training, i, v)
	}
}

// SetSummary fills the total, score and rating columns of a side.
func (r *Row) SetSummary(side Side, s Summary) {
	sec := SummaryOf(side)
	r.Set(sec, TotalCol, s.Total)
	r.Set(sec, ScoreCol, s.Score)
	r.Set(sec, RatingCol, s.Rating)
}
