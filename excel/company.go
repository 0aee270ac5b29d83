package excel

import (
	"fmt"

	"kastelo.dev/appraisal"
)

const (
	companyTitleRow    = 1
	companySubtitleRow = 2
	companySectionRow  = 4
	companyHeaderRow   = 5
	companyFirstRow    = 6

	// The title rows span A:AZ, a little wider than the data.
	companyTitleWidth = 52
	companyColWidth   = 15
)

// CompanyGrid lays out the all-employees report: one row per appraisal of
// every employee, with precomputed literal scores. The employee side grade
// is computed; the manager side shows the grade stored on the appraisal.
func CompanyGrid(rep *appraisal.CompanyReport, sheet string) *Grid {
	if sheet == "" {
		sheet = "All Employees Report"
	}
	g := NewGrid(sheet)
	g.DefineStyle("title", mergeStyles(fill("#0066CC"), fontBold(), fontSize(14), fontColor("#FFFFFF"), textAlignment("center")))
	g.DefineStyle("subtitle", mergeStyles(fontBold(), fontSize(12), textAlignment("center")))
	g.DefineStyle("section-employee", mergeStyles(fill("#4472C4"), fontBold(), fontColor("#FFFFFF"), textAlignment("center")))
	g.DefineStyle("section-manager", mergeStyles(fill("#70AD47"), fontBold(), fontColor("#FFFFFF"), textAlignment("center")))
	g.DefineStyle("section-training", mergeStyles(fill("#FFC000"), fontBold(), fontColor("#FFFFFF"), textAlignment("center")))
	g.DefineStyle("header", mergeStyles(fill("#44546A"), fontBold(), fontColor("#FFFFFF"), textAlignment("center"), verticalCenter(), box()))
	g.DefineStyle("identity", mergeStyles(box(), textAlignment("left"), verticalCenter()))
	g.DefineStyle("score", mergeStyles(box(), textAlignment("center"), verticalCenter()))

	g.Merge(1, companyTitleWidth, companyTitleRow, appraisal.Lit("PERFORMANCE ASSESSMENT - ALL EMPLOYEES REPORT"), "title")
	g.Merge(1, companyTitleWidth, companySubtitleRow, appraisal.Lit(fmt.Sprintf("%s - %s", rep.CompanyName, rep.Year)), "subtitle")

	first, last := appraisal.Span(appraisal.EmployeeScores, appraisal.EmployeeSummary)
	g.Merge(first, last, companySectionRow, appraisal.Lit("Performance Assessment - Employee Scores"), "section-employee")
	first, last = appraisal.Span(appraisal.ManagerScores, appraisal.ManagerSummary)
	g.Merge(first, last, companySectionRow, appraisal.Lit("Performance Assessment - Manager Scores"), "section-manager")
	first, last = appraisal.Span(appraisal.Training)
	g.Merge(first, last, companySectionRow, appraisal.Lit("Training & Development Needs"), "section-training")

	for i, c := range appraisal.Columns {
		g.Set(i+1, companyHeaderRow, appraisal.Lit(c.Label), "header")
	}
	g.SetWidth(1, appraisal.NumColumns, companyColWidth)

	row := companyFirstRow
	for _, emp := range rep.Employees {
		for _, a := range emp.Appraisals {
			r := companyRow(rep.CompanyName, emp.Employee, a, row, appraisal.Precomputed{})
			g.SetRow(row, r, alignedStyle)
			row++
		}
	}

	_, last = appraisal.Span(appraisal.Identity)
	g.Freeze = appraisal.CellRef(last+1, companyFirstRow)
	return g
}

func companyRow(company string, emp appraisal.Employee, a appraisal.Appraisal, row int, scorer appraisal.Scorer) *appraisal.Row {
	var r appraisal.Row
	r.Set(appraisal.Identity, appraisal.CompanyCol, appraisal.Lit(company))
	r.Set(appraisal.Identity, appraisal.DepartmentCol, appraisal.Lit(emp.Department))
	r.Set(appraisal.Identity, appraisal.NameCol, appraisal.Lit(emp.Name))
	r.Set(appraisal.Identity, appraisal.StaffNoCol, appraisal.Lit(emp.EmpNumber))
	r.Set(appraisal.Identity, appraisal.FormCol, appraisal.Lit(a.FormTitle))
	r.Set(appraisal.Identity, appraisal.RoleCol, appraisal.Lit("Employee"))
	r.Set(appraisal.Identity, appraisal.PositionCol, appraisal.Lit(emp.Position))
	r.Set(appraisal.Identity, appraisal.DateJoinedCol, appraisal.Lit(emp.DateJoined))
	r.Set(appraisal.Identity, appraisal.PeriodCol, appraisal.Lit(a.Period()))

	for _, side := range []appraisal.Side{appraisal.EmployeeSide, appraisal.ManagerSide} {
		ratings := a.Ratings(side)
		r.SetRatings(appraisal.ScoresOf(side), ratings)
		sum := scorer.Summarize(row, side, ratings)
		if side == appraisal.ManagerSide {
			sum.Rating = appraisal.Lit(a.Grade)
		}
		r.SetSummary(side, sum)
	}
	r.SetTraining(a.TrainingNeeds)
	return &r
}
