package appraisal

import "regexp"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// FileName builds a default output file name such as
// "Appraisal_Report_Jane_Doe_2024.xlsx".
func FileName(prefix, name, year string) string {
	return prefix + "_" + unsafeChars.ReplaceAllString(name, "_") + "_" + unsafeChars.ReplaceAllString(year, "_") + ".xlsx"
}

func (r *EmployeeReport) FileName() string {
	return FileName("Appraisal_Report", r.Employee.Name, r.Year)
}

func (r *CompanyReport) FileName() string {
	return FileName("All_Employees_Report", r.CompanyName, r.Year)
}
