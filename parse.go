package appraisal

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseEmployeeReport extracts the single-employee report input. The
// employee, appraisals and year keys are required; every other field falls
// back to an empty string.
func ParseEmployeeReport(doc *Document) (*EmployeeReport, error) {
	root, ok := doc.Root.(map[string]any)
	if !ok {
		return nil, dataError(MissingRequiredField, doc.Path, "employee", nil)
	}

	emp, ok := root["employee"].(map[string]any)
	if !ok {
		return nil, dataError(MissingRequiredField, doc.Path, "employee", nil)
	}
	apps, ok := root["appraisals"].([]any)
	if !ok {
		return nil, dataError(MissingRequiredField, doc.Path, "appraisals", nil)
	}
	year, ok := root["year"]
	if !ok {
		return nil, dataError(MissingRequiredField, doc.Path, "year", nil)
	}

	rep := &EmployeeReport{
		Year:     toText(year),
		Employee: parseEmployee(emp, ""),
	}
	for _, v := range apps {
		m, _ := v.(map[string]any)
		rep.Appraisals = append(rep.Appraisals, parseAppraisal(m, ""))
	}
	return rep, nil
}

// ParseCompanyReport extracts the all-employees report input. Only the
// employees key is required. Missing identity fields become "-".
func ParseCompanyReport(doc *Document) (*CompanyReport, error) {
	root, ok := doc.Root.(map[string]any)
	if !ok {
		return nil, dataError(MissingRequiredField, doc.Path, "employees", nil)
	}

	emps, ok := root["employees"].([]any)
	if !ok {
		return nil, dataError(MissingRequiredField, doc.Path, "employees", nil)
	}

	rep := &CompanyReport{
		CompanyName: text(root, "company_name", "Company"),
		Year:        text(root, "year", ""),
	}
	for _, v := range emps {
		m, _ := v.(map[string]any)
		ce := CompanyEmployee{Employee: parseEmployee(m, "-")}
		apps, _ := m["appraisals"].([]any)
		for _, a := range apps {
			am, _ := a.(map[string]any)
			ce.Appraisals = append(ce.Appraisals, parseAppraisal(am, "-"))
		}
		rep.Employees = append(rep.Employees, ce)
	}
	return rep, nil
}

func parseEmployee(m map[string]any, def string) Employee {
	return Employee{
		Name:        text(m, "name", def),
		CompanyName: text(m, "company_name", def),
		Department:  text(m, "department", def),
		EmpNumber:   text(m, "emp_number", def),
		Role:        text(m, "role", def),
		Position:    text(m, "position", def),
		DateJoined:  text(m, "date_joined", def),
	}
}

func parseAppraisal(m map[string]any, def string) Appraisal {
	a := Appraisal{
		ID:         text(m, "id", ""),
		FormTitle:  text(m, "form_title", def),
		PeriodFrom: text(m, "period_from", ""),
		PeriodTo:   text(m, "period_to", ""),
		Grade:      text(m, "grade", def),
	}

	qs, _ := m["questions"].([]any)
	for _, q := range qs {
		qm, _ := q.(map[string]any)
		a.Questions = append(a.Questions, Question{
			EmployeeRating: ParseRating(qm["employee_rating"]),
			ManagerRating:  ParseRating(qm["manager_rating"]),
		})
	}

	tns, _ := m["training_needs"].([]any)
	for _, tn := range tns {
		a.TrainingNeeds = append(a.TrainingNeeds, toText(tn))
	}
	return a
}

// text returns m[key] as a string, or def when the key is absent. A key
// that is present with a null value gives an empty string.
func text(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok {
		return def
	}
	return toText(v)
}

func toText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		bs, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(bs)
	}
}

// ParseRating converts a decoded JSON rating to a number. Numbers and
// numeric strings are accepted; anything else, including null, counts as
// not rated and yields zero.
func ParseRating(v any) float64 {
	var f float64
	var err error
	switch v := v.(type) {
	case json.Number:
		f, err = v.Float64()
	case float64:
		f = v
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
