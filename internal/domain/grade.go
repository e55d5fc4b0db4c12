package domain

// GradeCode is one of the four ordered letter grades.
type GradeCode string

const (
	GradeA GradeCode = "A"
	GradeB GradeCode = "B"
	GradeC GradeCode = "C"
	GradeD GradeCode = "D"
)

// Grade is a classified metric level with its display attributes. Grades are
// produced per snapshot and never persisted.
type Grade struct {
	Code  GradeCode `json:"code"`
	Label string    `json:"label"`
	Color string    `json:"color"`
}

// The four canonical grades, best first.
var (
	GradeExcellent = Grade{Code: GradeA, Label: "Excellent", Color: "#2e7d32"}
	GradeGood      = Grade{Code: GradeB, Label: "Good", Color: "#1565c0"}
	GradeCaution   = Grade{Code: GradeC, Label: "Caution", Color: "#ef6c00"}
	GradeRisk      = Grade{Code: GradeD, Label: "Risk", Color: "#c62828"}
)

// GradeSet collects the per-metric grades and the composite.
type GradeSet struct {
	DebtRatio     Grade   `json:"debt_ratio"`
	SavingsRate   Grade   `json:"savings_rate"`
	EmergencyFund Grade   `json:"emergency_fund"`
	Retirement    Grade   `json:"retirement"`
	Insurance     Grade   `json:"insurance"`
	Overall       Grade   `json:"overall"`
	OverallScore  float64 `json:"overall_score"`
}
