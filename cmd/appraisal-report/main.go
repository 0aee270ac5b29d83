// appraisal-report writes the yearly appraisal summary of one employee as
// an Excel workbook with live total, score and rating formulas.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/fatih/color"
	"kastelo.dev/appraisal"
	"kastelo.dev/appraisal/excel"
)

var (
	inputFile  = kingpin.Arg("input", "Appraisal data (JSON)").Required().String()
	outputFile = kingpin.Arg("output", "Workbook to write (default Appraisal_Report_<name>_<year>.xlsx)").String()
	sheetName  = kingpin.Flag("sheet", "Sheet title").Envar("APPRAISAL_SHEET").String()
	verbose    = kingpin.Flag("verbose", "Log every rating and training need").Short('v').Envar("APPRAISAL_VERBOSE").Bool()
)

func main() {
	kingpin.Parse()
	slog.SetDefault(newLogger(*verbose))

	out, err := run(*inputFile, *outputFile, *sheetName)
	if err != nil {
		slog.Error("Error generating appraisal report", "kind", appraisal.KindOf(err).String(), "error", err)
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		color.New(color.FgRed).Fprintf(os.Stdout, "ERROR: %v\n", err)
		os.Exit(1)
	}
	color.New(color.FgGreen).Fprintf(os.Stdout, "SUCCESS: Excel report saved to %s\n", out)
}

func run(input, output, sheet string) (string, error) {
	doc, err := appraisal.Load(input)
	if err != nil {
		return "", err
	}
	rep, err := appraisal.ParseEmployeeReport(doc)
	if err != nil {
		return "", err
	}

	slog.Info("Generating report", "employee", rep.Employee.Name, "year", rep.Year, "appraisals", len(rep.Appraisals))
	for _, a := range rep.Appraisals {
		logAppraisal(a)
	}

	if output == "" {
		output = rep.FileName()
	}
	if err := excel.Save(excel.EmployeeGrid(rep, sheet), output); err != nil {
		return "", err
	}
	return output, nil
}

func logAppraisal(a appraisal.Appraisal) {
	l := slog.With("appraisal", a.ID)
	l.Debug("Appraisal", "questions", len(a.Questions), "training", len(a.TrainingNeeds))
	for i, q := range a.Questions {
		l.Debug("Question", "q", i+1, "employee", q.EmployeeRating, "manager", q.ManagerRating)
	}
	for i, t := range a.TrainingNeeds {
		l.Debug("Training need", "t", i+1, "need", t)
	}
	if len(a.Questions) > appraisal.NumQuestions {
		l.Info("Dropping questions past the last column", "questions", len(a.Questions), "kept", appraisal.NumQuestions)
	}
	if len(a.TrainingNeeds) > appraisal.NumTraining {
		l.Info("Dropping training needs past the last column", "needs", len(a.TrainingNeeds), "kept", appraisal.NumTraining)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
