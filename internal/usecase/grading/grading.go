// Package grading maps numeric metrics onto the four ordered letter grades
// through descending-threshold tables, and derives the composite grade from
// the five metric scores.
package grading

import (
	"math"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
)

// canonical grades, best first; parallel to a four-entry threshold table.
var ladder = []domain.Grade{
	domain.GradeExcellent,
	domain.GradeGood,
	domain.GradeCaution,
	domain.GradeRisk,
}

// scores maps each grade onto the composite scale.
var scores = map[domain.GradeCode]float64{
	domain.GradeA: 100,
	domain.GradeB: 75,
	domain.GradeC: 50,
	domain.GradeD: 25,
}

// Classify returns the grade of the first threshold the value meets or
// exceeds, scanning from the most favorable downward. A value below every
// threshold gets the least favorable grade, so classification is total.
func Classify(value float64, thresholds []float64) domain.Grade {
	for i, threshold := range thresholds {
		if i >= len(ladder) {
			break
		}
		if value >= threshold {
			return ladder[i]
		}
	}
	return ladder[len(ladder)-1]
}

// Score returns the composite-scale score of a grade.
func Score(g domain.Grade) float64 {
	return scores[g.Code]
}

// Grade builds the full grade set for a metric snapshot. The debt metric is
// graded on its inverse (100 - debt ratio) so that lower debt maps to a
// better grade; the composite is the arithmetic mean of the five metric
// scores re-classified against the overall table.
func Grade(m domain.Metrics, p policy.Policy) domain.GradeSet {
	set := domain.GradeSet{
		DebtRatio:     Classify(100-m.DebtRatio, p.Grades.DebtScore),
		SavingsRate:   Classify(m.SavingsRate, p.Grades.SavingsRate),
		EmergencyFund: Classify(m.EmergencyMonths, p.Grades.EmergencyMonths),
		Retirement:    Classify(m.RetirementReadyRate, p.Grades.Retirement),
		Insurance:     Classify(m.InsuranceCoverageRate, p.Grades.Insurance),
	}

	total := Score(set.DebtRatio) +
		Score(set.SavingsRate) +
		Score(set.EmergencyFund) +
		Score(set.Retirement) +
		Score(set.Insurance)
	set.OverallScore = math.Round(total / 5)
	set.Overall = Classify(set.OverallScore, p.Grades.Overall)

	return set
}
