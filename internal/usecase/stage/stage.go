// Package stage classifies the household into the six-stage DESIRE
// financial-maturity progression. The gates are an ordered data structure
// evaluated top to bottom; the first match wins and later gates are never
// consulted. The classifier is stateless: every snapshot re-evaluates all
// gates from scratch.
package stage

import (
	"github.com/shopspring/decimal"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
)

// gate pairs a stage with its entry condition.
type gate struct {
	stage domain.DesireStage
	match func(m domain.Metrics, dualIncome bool, p policy.Policy) bool
}

var gates = []gate{
	{
		stage: domain.StageDebtFree,
		match: func(m domain.Metrics, _ bool, _ policy.Policy) bool {
			return m.CreditDebtTotal.GreaterThan(decimal.Zero)
		},
	},
	{
		stage: domain.StageEmergency,
		match: func(m domain.Metrics, dualIncome bool, p policy.Policy) bool {
			return m.EmergencyMonths < p.EmergencyTarget(dualIncome)
		},
	},
	{
		stage: domain.StageSavings,
		match: func(m domain.Metrics, _ bool, _ policy.Policy) bool {
			return m.MonthlySavingsTotal.LessThanOrEqual(decimal.Zero)
		},
	},
	{
		stage: domain.StageInvestment,
		match: func(m domain.Metrics, _ bool, p policy.Policy) bool {
			return m.InvestableAssets.LessThan(decimal.NewFromInt(p.InvestableAssetGate))
		},
	},
	{
		stage: domain.StageRetirement,
		match: func(m domain.Metrics, _ bool, _ policy.Policy) bool {
			return m.MortgageDebtTotal.GreaterThan(decimal.Zero)
		},
	},
}

// Classify selects the current stage. Total over all inputs: when no gate
// matches, the household has reached the terminal Enjoy stage.
func Classify(m domain.Metrics, dualIncome bool, p policy.Policy) domain.DesireStage {
	for _, g := range gates {
		if g.match(m, dualIncome, p) {
			return g.stage
		}
	}
	return domain.StageEnjoy
}
