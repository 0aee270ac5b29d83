// company-report writes the yearly appraisal summary of every employee in a
// company as an Excel workbook with precomputed scores and grades.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/fatih/color"
	"kastelo.dev/appraisal"
	"kastelo.dev/appraisal/excel"
)

var (
	inputFile  = kingpin.Arg("input", "Company appraisal data (JSON)").Required().String()
	outputFile = kingpin.Arg("output", "Workbook to write (default All_Employees_Report_<company>_<year>.xlsx)").String()
	sheetName  = kingpin.Flag("sheet", "Sheet title").Envar("APPRAISAL_SHEET").String()
	verbose    = kingpin.Flag("verbose", "Log every employee and appraisal").Short('v').Envar("APPRAISAL_VERBOSE").Bool()
)

func main() {
	kingpin.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	out, err := run(*inputFile, *outputFile, *sheetName)
	if err != nil {
		slog.Error("Error generating company report", "kind", appraisal.KindOf(err).String(), "error", err)
		color.New(color.FgRed).Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
	color.New(color.FgGreen).Fprintf(os.Stdout, "Report generated successfully: %s\n", out)
}

func run(input, output, sheet string) (string, error) {
	doc, err := appraisal.Load(input)
	if err != nil {
		return "", err
	}
	rep, err := appraisal.ParseCompanyReport(doc)
	if err != nil {
		return "", err
	}

	rows := 0
	for _, emp := range rep.Employees {
		rows += len(emp.Appraisals)
		slog.Debug("Employee", "name", emp.Name, "appraisals", len(emp.Appraisals))
	}
	slog.Info("Generating report", "company", rep.CompanyName, "year", rep.Year, "employees", len(rep.Employees), "rows", rows)

	if output == "" {
		output = rep.FileName()
	}
	if err := excel.Save(excel.CompanyGrid(rep, sheet), output); err != nil {
		return "", err
	}
	return output, nil
}
