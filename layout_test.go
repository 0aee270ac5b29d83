package appraisal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	require.Len(t, Columns, 49)
	assert.Equal(t, NumColumns, len(Columns))

	cases := []struct {
		sec         Section
		first, last string
	}{
		{Identity, "A", "I"},
		{EmployeeScores, "J", "U"},
		{EmployeeSummary, "V", "X"},
		{ManagerScores, "Y", "AJ"},
		{ManagerSummary, "AK", "AM"},
		{Training, "AN", "AW"},
	}
	for _, tc := range cases {
		first, last := Span(tc.sec)
		assert.Equal(t, tc.first, ColumnName(first), "first column of section %d", tc.sec)
		assert.Equal(t, tc.last, ColumnName(last), "last column of section %d", tc.sec)
	}

	first, last := Span(ManagerScores, ManagerSummary)
	assert.Equal(t, "Y", ColumnName(first))
	assert.Equal(t, "AM", ColumnName(last))
}

func TestColumnLabelsAndWidths(t *testing.T) {
	assert.Equal(t, "Company", Columns[Col(Identity, CompanyCol)-1].Label)
	assert.Equal(t, "Period", Columns[Col(Identity, PeriodCol)-1].Label)
	assert.Equal(t, "Q1", Columns[Col(EmployeeScores, 0)-1].Label)
	assert.Equal(t, "Q12", Columns[Col(ManagerScores, 11)-1].Label)
	assert.Equal(t, "Rating", Columns[Col(EmployeeSummary, RatingCol)-1].Label)
	assert.Equal(t, "Final Rating", Columns[Col(ManagerSummary, RatingCol)-1].Label)
	assert.Equal(t, "T10", Columns[Col(Training, 9)-1].Label)

	widths := map[string]float64{
		"A": 15, "C": 18, "I": 20,
		"J": 6, "U": 6, "V": 10, "X": 10,
		"Y": 6, "AJ": 6, "AK": 10, "AM": 12,
		"AN": 30, "AW": 30,
	}
	for i, c := range Columns {
		if w, ok := widths[ColumnName(i+1)]; ok {
			assert.Equal(t, w, c.Width, "width of %s", ColumnName(i+1))
		}
	}

	assert.False(t, Columns[0].Numeric())
	assert.True(t, Columns[Col(EmployeeScores, 3)-1].Numeric())
	assert.True(t, Columns[Col(ManagerSummary, ScoreCol)-1].Numeric())
	assert.False(t, Columns[Col(Training, 0)-1].Numeric())
}

func TestColOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Col(EmployeeScores, NumQuestions) })
	assert.Panics(t, func() { Col(Training, -1) })
}

func TestRowRatings(t *testing.T) {
	t.Run("short list", func(t *testing.T) {
		var r Row
		r.SetRatings(EmployeeScores, []float64{8, 9, 0})
		assert.Equal(t, Lit(8.0), r.Get(EmployeeScores, 0))
		assert.Equal(t, Lit(9.0), r.Get(EmployeeScores, 1))
		for i := 2; i < NumQuestions; i++ {
			assert.True(t, r.Get(EmployeeScores, i).IsBlank(), "Q%d should be blank", i+1)
		}
	})

	t.Run("long list", func(t *testing.T) {
		ratings := make([]float64, 15)
		for i := range ratings {
			ratings[i] = float64(i + 1)
		}
		var r Row
		r.SetRatings(ManagerScores, ratings)
		for i := 0; i < NumQuestions; i++ {
			assert.Equal(t, Lit(float64(i+1)), r.Get(ManagerScores, i))
		}
		// Nothing spills into the summary columns.
		assert.True(t, r.Get(ManagerSummary, TotalCol).IsBlank())
	})
}

func TestRowTraining(t *testing.T) {
	var r Row
	r.SetTraining([]string{"a", "b"})
	assert.Equal(t, Lit("a"), r.Get(Training, 0))
	assert.Equal(t, Lit("b"), r.Get(Training, 1))
	for i := 2; i < NumTraining; i++ {
		assert.True(t, r.Get(Training, i).IsBlank())
	}

	needs := make([]string, 12)
	for i := range needs {
		needs[i] = string(rune('a' + i))
	}
	r.SetTraining(needs)
	assert.Equal(t, Lit("j"), r.Get(Training, 9))
	assert.Equal(t, Lit("j"), r[NumColumns-1])
}

func TestCellRef(t *testing.T) {
	assert.Equal(t, "J5", CellRef(10, 5))
	assert.Equal(t, "AW12", CellRef(49, 12))
}
