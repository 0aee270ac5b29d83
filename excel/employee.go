package excel

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"kastelo.dev/appraisal"
)

// Rows of the single-employee sheet.
const (
	employeeTitleRow   = 1
	employeeSectionRow = 3
	employeeHeaderRow  = 4
	employeeFirstRow   = 5
)

// EmployeeGrid lays out the single-employee report. Totals, scores and
// ratings are formulas, so the sheet stays consistent when ratings are
// edited. An empty sheet name selects "<year> Report".
func EmployeeGrid(rep *appraisal.EmployeeReport, sheet string) *Grid {
	if sheet == "" {
		sheet = fmt.Sprintf("%s Report", rep.Year)
	}
	g := NewGrid(sheet)
	g.DefineStyle("title", mergeStyles(fontBold(), fontSize(14)))
	g.DefineStyle("section", mergeStyles(fill("#B4C6E7"), fontBold(), fontSize(10), textAlignment("center"), verticalCenter(), wrapText()))
	g.DefineStyle("header", mergeStyles(fill("#366092"), fontBold(), fontColor("#FFFFFF"), fontSize(11), textAlignment("center"), verticalCenter(), wrapText(), box()))
	g.DefineStyle("identity", mergeStyles(box(), textAlignment("left"), verticalCenter(), wrapText()))
	g.DefineStyle("score", mergeStyles(box(), textAlignment("center"), verticalCenter(), wrapText()))

	company := rep.Employee.CompanyName
	if company == "" {
		company = "N/A"
	}
	title := fmt.Sprintf("Summary of %s Appraisal Ratings - %s", rep.Year, company)
	g.Merge(1, 18, employeeTitleRow, appraisal.Lit(title), "title")

	first, last := appraisal.Span(appraisal.EmployeeScores)
	g.Merge(first, last, employeeSectionRow, appraisal.Lit("Performance Assessment - Employee Scores"), "section")
	first, last = appraisal.Span(appraisal.ManagerScores)
	g.Merge(first, last, employeeSectionRow, appraisal.Lit("Performance Assessment - Manager Scores"), "section")
	first, last = appraisal.Span(appraisal.Training)
	g.Merge(first, last, employeeSectionRow, appraisal.Lit("Training & Development Needs"), "section")

	for i, c := range appraisal.Columns {
		g.Set(i+1, employeeHeaderRow, appraisal.Lit(c.Label), "header")
		g.SetWidth(i+1, i+1, c.Width)
	}

	scorer := appraisal.NewLiveFormula(rep.Employee.Role)
	row := employeeFirstRow
	for _, a := range rep.Appraisals {
		r := employeeRow(rep.Employee, a, row, scorer)
		g.SetRow(row, r, alignedStyle)
		row++
	}

	g.Freeze = appraisal.CellRef(1, employeeFirstRow)
	return g
}

func employeeRow(emp appraisal.Employee, a appraisal.Appraisal, row int, scorer appraisal.Scorer) *appraisal.Row {
	var r appraisal.Row
	r.Set(appraisal.Identity, appraisal.CompanyCol, appraisal.Lit(emp.CompanyName))
	r.Set(appraisal.Identity, appraisal.DepartmentCol, appraisal.Lit(emp.Department))
	r.Set(appraisal.Identity, appraisal.NameCol, appraisal.Lit(emp.Name))
	r.Set(appraisal.Identity, appraisal.StaffNoCol, appraisal.Lit(emp.EmpNumber))
	r.Set(appraisal.Identity, appraisal.FormCol, appraisal.Lit(a.FormTitle))
	r.Set(appraisal.Identity, appraisal.RoleCol, appraisal.Lit(titleCase(emp.Role)))
	r.Set(appraisal.Identity, appraisal.PositionCol, appraisal.Lit(emp.Position))
	r.Set(appraisal.Identity, appraisal.DateJoinedCol, appraisal.Lit(emp.DateJoined))
	r.Set(appraisal.Identity, appraisal.PeriodCol, appraisal.Lit(a.Period()))

	for _, side := range []appraisal.Side{appraisal.EmployeeSide, appraisal.ManagerSide} {
		ratings := a.Ratings(side)
		r.SetRatings(appraisal.ScoresOf(side), ratings)
		r.SetSummary(side, scorer.Summarize(row, side, ratings))
	}
	r.SetTraining(a.TrainingNeeds)
	return &r
}

func alignedStyle(c appraisal.Column) string {
	if c.Section == appraisal.Identity {
		return "identity"
	}
	return "score"
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
