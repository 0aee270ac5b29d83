package appraisal

import (
	"fmt"
	"math"
	"strings"
)

type threshold struct {
	below float64
	grade string
}

// ratingScale is used by the live formulas of the single-employee report.
var ratingScale = []threshold{
	{50, "C"},
	{60, "B-"},
	{75, "B"},
	{85, "B+"},
}

// gradeScale is used for precomputed scores in the all-employees report.
var gradeScale = []threshold{
	{60, "C"},
	{65, "B-"},
	{75, "B"},
	{85, "B+"},
}

const topGrade = "A"

func lookup(scale []threshold, score float64) string {
	for _, t := range scale {
		if score < t.below {
			return t.grade
		}
	}
	return topGrade
}

// Rating maps a score to a letter using the live formula scale. A zero
// score means nothing was rated and gives an empty rating.
func Rating(score float64) string {
	if score == 0 {
		return ""
	}
	return lookup(ratingScale, score)
}

// Grade maps a precomputed score to a letter. Unlike Rating, a zero score
// is a "C".
func Grade(score float64) string {
	return lookup(gradeScale, score)
}

// RatingFormula returns the spreadsheet expression equivalent to Rating
// applied to the cell at ref.
func RatingFormula(ref string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `IF(%s=0,"",`, ref)
	for _, t := range ratingScale {
		fmt.Fprintf(&b, `IF(%s<%v,"%s",`, ref, t.below, t.grade)
	}
	fmt.Fprintf(&b, `"%s"`, topGrade)
	b.WriteString(strings.Repeat(")", len(ratingScale)+1))
	return b.String()
}

// Summary holds the total, score and rating cells of one side of a row.
type Summary struct {
	Total  Value
	Score  Value
	Rating Value
}

// A Scorer computes the summary cells for one side of an appraisal row.
type Scorer interface {
	Summarize(row int, side Side, ratings []float64) Summary
}

// LiveFormula emits formulas so the sheet recalculates when ratings are
// edited. The score is the total divided by a role dependent divisor,
// rounded to an integer.
type LiveFormula struct {
	Divisor string
}

func NewLiveFormula(role string) LiveFormula {
	return LiveFormula{Divisor: Divisor(role)}
}

// Divisor returns the score divisor for a role, as it appears in formulas.
func Divisor(role string) string {
	role = strings.ToLower(role)
	switch {
	case strings.Contains(role, "manager"), strings.Contains(role, "admin"):
		return "1.2"
	case strings.Contains(role, "worker"):
		return "0.8"
	default:
		return "1"
	}
}

func (l LiveFormula) Summarize(row int, side Side, _ []float64) Summary {
	first, last := Span(ScoresOf(side))
	sec := SummaryOf(side)
	totalRef := CellRef(Col(sec, TotalCol), row)
	scoreRef := CellRef(Col(sec, ScoreCol), row)

	divisor := l.Divisor
	if divisor == "" {
		divisor = "1"
	}
	return Summary{
		Total:  Formula("SUM(%s:%s)", CellRef(first, row), CellRef(last, row)),
		Score:  Formula("ROUND(%s/%s,0)", totalRef, divisor),
		Rating: Value{Formula: RatingFormula(scoreRef)},
	}
}

// Precomputed writes literal values. The score is the mean of the rated
// questions times ten, rounded to two decimals, and zero when nothing was
// rated.
type Precomputed struct{}

func (Precomputed) Summarize(_ int, _ Side, ratings []float64) Summary {
	total, score := PrecomputedScore(ratings)
	return Summary{
		Total:  Lit(total),
		Score:  Lit(score),
		Rating: Lit(Grade(score)),
	}
}

// PrecomputedScore returns the total of the rated questions among the
// first twelve and the resulting score.
func PrecomputedScore(ratings []float64) (total, score float64) {
	if len(ratings) > NumQuestions {
		ratings = ratings[:NumQuestions]
	}
	n := 0
	for _, r := range ratings {
		if r == 0 {
			continue
		}
		total += r
		n++
	}
	if n == 0 {
		return total, 0
	}
	return total, math.Round(total/float64(n)*10*100) / 100
}
