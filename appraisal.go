package appraisal // import "kastelo.dev/appraisal"

// Employee identity fields. All of them are optional in the input and fall
// back to a report-specific default.
type Employee struct {
	Name        string
	CompanyName string
	Department  string
	EmpNumber   string
	Role        string
	Position    string
	DateJoined  string
}

type Appraisal struct {
	ID            string
	FormTitle     string
	PeriodFrom    string
	PeriodTo      string
	Grade         string
	Questions     []Question
	TrainingNeeds []string
}

// Period is the "from to to" label shown in the identity columns.
func (a Appraisal) Period() string {
	return a.PeriodFrom + " to " + a.PeriodTo
}

// Question ratings use zero for "not rated".
type Question struct {
	EmployeeRating float64
	ManagerRating  float64
}

// EmployeeReport is the input of the single-employee report.
type EmployeeReport struct {
	Year       string
	Employee   Employee
	Appraisals []Appraisal
}

// CompanyReport is the input of the all-employees report.
type CompanyReport struct {
	CompanyName string
	Year        string
	Employees   []CompanyEmployee
}

type CompanyEmployee struct {
	Employee
	Appraisals []Appraisal
}

// Side selects the employee-submitted or manager-submitted ratings.
type Side int

const (
	EmployeeSide Side = iota
	ManagerSide
)

func (s Side) String() string {
	if s == ManagerSide {
		return "manager"
	}
	return "employee"
}

// Ratings returns the ratings of one side in question order.
func (a Appraisal) Ratings(side Side) []float64 {
	res := make([]float64, len(a.Questions))
	for i, q := range a.Questions {
		if side == ManagerSide {
			res[i] = q.ManagerRating
		} else {
			res[i] = q.EmployeeRating
		}
	}
	return res
}
