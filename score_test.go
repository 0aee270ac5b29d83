package appraisal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRating(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, ""},
		{1, "C"},
		{49, "C"},
		{49.9, "C"},
		{50, "B-"},
		{59, "B-"},
		{60, "B"},
		{74, "B"},
		{75, "B+"},
		{84, "B+"},
		{85, "A"},
		{120, "A"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Rating(tc.score), "Rating(%v)", tc.score)
	}
}

func TestGrade(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "C"},
		{59.99, "C"},
		{60, "B-"},
		{64.99, "B-"},
		{65, "B"},
		{74.99, "B"},
		{75, "B+"},
		{84.99, "B+"},
		{85, "A"},
		{100, "A"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Grade(tc.score), "Grade(%v)", tc.score)
	}
}

func TestRatingFormula(t *testing.T) {
	assert.Equal(t,
		`IF(W5=0,"",IF(W5<50,"C",IF(W5<60,"B-",IF(W5<75,"B",IF(W5<85,"B+","A")))))`,
		RatingFormula("W5"))
}

func TestDivisor(t *testing.T) {
	cases := map[string]string{
		"manager":        "1.2",
		"Line Manager":   "1.2",
		"ADMIN":          "1.2",
		"sysadmin":       "1.2",
		"worker":         "0.8",
		"Factory Worker": "0.8",
		"employee":       "1",
		"":               "1",
		"hr":             "1",
	}
	for role, want := range cases {
		assert.Equal(t, want, Divisor(role), "Divisor(%q)", role)
	}
}

func TestLiveFormula(t *testing.T) {
	l := NewLiveFormula("Line Manager")

	emp := l.Summarize(5, EmployeeSide, []float64{8, 9})
	assert.Equal(t, Formula("SUM(J5:U5)"), emp.Total)
	assert.Equal(t, Formula("ROUND(V5/1.2,0)"), emp.Score)
	assert.Equal(t, RatingFormula("W5"), emp.Rating.Formula)

	mgr := l.Summarize(7, ManagerSide, nil)
	assert.Equal(t, Formula("SUM(Y7:AJ7)"), mgr.Total)
	assert.Equal(t, Formula("ROUND(AK7/1.2,0)"), mgr.Score)
	assert.Equal(t, RatingFormula("AL7"), mgr.Rating.Formula)

	assert.Equal(t, Formula("ROUND(V5/1,0)"), LiveFormula{}.Summarize(5, EmployeeSide, nil).Score)
}

func TestPrecomputedScore(t *testing.T) {
	cases := []struct {
		name         string
		ratings      []float64
		total, score float64
	}{
		{"none", nil, 0, 0},
		{"all zero", []float64{0, 0, 0}, 0, 0},
		{"zeros skipped", []float64{8, 9, 0}, 17, 85},
		{"two decimals", []float64{5, 6, 6}, 17, 56.67},
		{"fractional", []float64{7.5, 8}, 15.5, 77.5},
		{"past twelve ignored", []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 10, 10}, 12, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, score := PrecomputedScore(tc.ratings)
			assert.Equal(t, tc.total, total)
			assert.InDelta(t, tc.score, score, 1e-9)
		})
	}
}

func TestPrecomputedSummary(t *testing.T) {
	s := Precomputed{}.Summarize(6, EmployeeSide, nil)
	assert.Equal(t, Lit(0.0), s.Total)
	assert.Equal(t, Lit(0.0), s.Score)
	assert.Equal(t, Lit("C"), s.Rating)

	s = Precomputed{}.Summarize(6, ManagerSide, []float64{7, 6})
	assert.Equal(t, Lit(13.0), s.Total)
	assert.Equal(t, Lit(65.0), s.Score)
	assert.Equal(t, Lit("B"), s.Rating)
}

