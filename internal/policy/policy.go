// Package policy holds the tunable tables the snapshot pipeline classifies
// against: tax bracket schedules, deduction amounts, grade thresholds,
// insurance needs, and the stage/action-plan targets. Defaults are compiled
// in; an optional YAML file can override any of them.
package policy

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Bracket is one step of a progressive rate schedule in man-won units.
// Upper == 0 marks the open-ended final bracket.
type Bracket struct {
	Upper int64   `yaml:"upper"`
	Rate  float64 `yaml:"rate"`
}

// InheritancePolicy is the inheritance-tax schedule and deduction amounts.
type InheritancePolicy struct {
	Brackets        []Bracket `yaml:"brackets"`
	BasicDeduction  int64     `yaml:"basic_deduction"`
	SpouseDeduction int64     `yaml:"spouse_deduction"`
	ChildDeduction  int64     `yaml:"child_deduction"`
}

// IncomeTaxPolicy is the earned-income tax schedule.
type IncomeTaxPolicy struct {
	Brackets []Bracket `yaml:"brackets"`
}

// GradeTables holds the descending threshold sets, one per graded metric.
// Each set has four entries mapping to grades A through D.
type GradeTables struct {
	SavingsRate     []float64 `yaml:"savings_rate"`
	DebtScore       []float64 `yaml:"debt_score"`
	EmergencyMonths []float64 `yaml:"emergency_months"`
	Retirement      []float64 `yaml:"retirement"`
	Insurance       []float64 `yaml:"insurance"`
	Overall         []float64 `yaml:"overall"`
}

// CoverageNeed defines how the needed amount of one insurance item is
// derived: Base plus multiples of annual income and total debt. Binary items
// ignore the amounts and need a subscription (prepared 0/1).
type CoverageNeed struct {
	Key            string  `yaml:"key"`
	Label          string  `yaml:"label"`
	Base           int64   `yaml:"base"`
	IncomeMultiple float64 `yaml:"income_multiple"`
	DebtMultiple   float64 `yaml:"debt_multiple"`
	Binary         bool    `yaml:"binary"`
}

// Policy is the full tunable table set.
type Policy struct {
	LifeExpectancy        int     `yaml:"life_expectancy"`
	EmergencyMonthsSingle float64 `yaml:"emergency_months_single"`
	EmergencyMonthsDual   float64 `yaml:"emergency_months_dual"`
	InvestableAssetGate   int64   `yaml:"investable_asset_gate"`
	SavingsRateTarget     float64 `yaml:"savings_rate_target"`
	RealEstateCeiling     float64 `yaml:"real_estate_ceiling"`

	Inheritance InheritancePolicy `yaml:"inheritance"`
	IncomeTax   IncomeTaxPolicy   `yaml:"income_tax"`
	Grades      GradeTables       `yaml:"grades"`
	Insurance   []CoverageNeed    `yaml:"insurance"`
}

// EmergencyTarget returns the emergency-fund target months for the
// household's income structure.
func (p Policy) EmergencyTarget(dualIncome bool) float64 {
	if dualIncome {
		return p.EmergencyMonthsDual
	}
	return p.EmergencyMonthsSingle
}

// Default returns the built-in policy tables.
func Default() Policy {
	return Policy{
		LifeExpectancy:        90,
		EmergencyMonthsSingle: 6,
		EmergencyMonthsDual:   3,
		InvestableAssetGate:   100000,
		SavingsRateTarget:     20,
		RealEstateCeiling:     70,
		Inheritance: InheritancePolicy{
			Brackets: []Bracket{
				{Upper: 10000, Rate: 0.10},
				{Upper: 50000, Rate: 0.20},
				{Upper: 100000, Rate: 0.30},
				{Upper: 300000, Rate: 0.40},
				{Upper: 0, Rate: 0.50},
			},
			BasicDeduction:  20000,
			SpouseDeduction: 50000,
			ChildDeduction:  5000,
		},
		IncomeTax: IncomeTaxPolicy{
			Brackets: []Bracket{
				{Upper: 1400, Rate: 0.06},
				{Upper: 5000, Rate: 0.15},
				{Upper: 8800, Rate: 0.24},
				{Upper: 15000, Rate: 0.35},
				{Upper: 30000, Rate: 0.38},
				{Upper: 50000, Rate: 0.40},
				{Upper: 100000, Rate: 0.42},
				{Upper: 0, Rate: 0.45},
			},
		},
		Grades: GradeTables{
			SavingsRate:     []float64{30, 20, 10, 0},
			DebtScore:       []float64{80, 60, 40, 0},
			EmergencyMonths: []float64{6, 3, 1, 0},
			Retirement:      []float64{100, 70, 40, 0},
			Insurance:       []float64{90, 70, 50, 0},
			Overall:         []float64{80, 60, 40, 0},
		},
		Insurance: []CoverageNeed{
			{Key: "death", Label: "Death benefit", Base: 10000, IncomeMultiple: 3, DebtMultiple: 1},
			{Key: "disability", Label: "Disability", Base: 5000, IncomeMultiple: 2},
			{Key: "critical", Label: "Critical illness", Base: 3000, IncomeMultiple: 1},
			{Key: "accident", Label: "Accident", Base: 3000, IncomeMultiple: 1},
			{Key: "hospital", Label: "Hospitalization", Base: 1000, IncomeMultiple: 0.5},
			{Key: "care", Label: "Long-term care", Base: 3000, IncomeMultiple: 0.5},
			{Key: "medical", Label: "Medical indemnity", Binary: true},
			{Key: "driver", Label: "Driver", Binary: true},
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path, if one
// exists. A missing file is not an error; a malformed one is.
func Load(path string) (Policy, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, eris.Wrap(err, "policy: read file")
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, eris.Wrap(err, "policy: parse file")
	}
	return p, nil
}
