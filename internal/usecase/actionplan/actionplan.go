// Package actionplan turns the computed snapshot into a priority-ordered
// list of recommended actions. Rules are a fixed ordered list: each rule that
// fires appends one item at the next priority, so priorities are contiguous
// and reflect evaluation order, not severity.
package actionplan

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
)

type rule struct {
	domain string
	when   func(in Input) bool
	action func(in Input) (string, string)
}

// Input is everything the rules inspect.
type Input struct {
	Metrics    domain.Metrics
	Stage      domain.DesireStage
	DualIncome bool
	Policy     policy.Policy
}

var rules = []rule{
	{
		domain: "debt",
		when:   func(in Input) bool { return in.Stage.Seq == domain.StageDebtFree.Seq },
		action: func(in Input) (string, string) {
			return "Pay off credit-type debt first",
				fmt.Sprintf("Outstanding credit-type debt is %s; clearing it precedes every other goal.",
					in.Metrics.CreditDebtTotal.Round(0))
		},
	},
	{
		domain: "emergency",
		when: func(in Input) bool {
			return in.Metrics.EmergencyMonths < in.Policy.EmergencyTarget(in.DualIncome)
		},
		action: func(in Input) (string, string) {
			target := in.Policy.EmergencyTarget(in.DualIncome)
			return "Build up the emergency fund",
				fmt.Sprintf("The emergency fund covers %.1f months of essential expenses; the target is %.0f months.",
					in.Metrics.EmergencyMonths, target)
		},
	},
	{
		domain: "retirement",
		when:   func(in Input) bool { return in.Metrics.MonthlyShortfall.GreaterThan(decimal.Zero) },
		action: func(in Input) (string, string) {
			return "Increase retirement savings",
				fmt.Sprintf("Projected retirement income falls %s short per month; saving about %s more each month until retirement closes the gap.",
					in.Metrics.MonthlyShortfall.Round(0), in.Metrics.AdditionalMonthlySaving.Round(0))
		},
	},
	{
		domain: "insurance",
		when:   func(in Input) bool { return in.Metrics.InsuranceLackCount > 0 },
		action: func(in Input) (string, string) {
			return "Close insurance coverage gaps",
				fmt.Sprintf("%d of %d coverage items are below the needed level; overall coverage is %.0f%%.",
					in.Metrics.InsuranceLackCount, len(in.Metrics.InsuranceItems), in.Metrics.InsuranceCoverageRate)
		},
	},
	{
		domain: "savings",
		when:   func(in Input) bool { return in.Metrics.SavingsRate < in.Policy.SavingsRateTarget },
		action: func(in Input) (string, string) {
			return "Raise the savings rate",
				fmt.Sprintf("The savings rate is %.0f%% of income; the target is %.0f%%.",
					in.Metrics.SavingsRate, in.Policy.SavingsRateTarget)
		},
	},
	{
		domain: "realestate",
		when: func(in Input) bool {
			return in.Metrics.RealEstateConcentration > in.Policy.RealEstateCeiling
		},
		action: func(in Input) (string, string) {
			return "Rebalance away from real estate",
				fmt.Sprintf("Real estate is %.0f%% of total assets, above the %.0f%% ceiling; shifting part into financial assets improves liquidity.",
					in.Metrics.RealEstateConcentration, in.Policy.RealEstateCeiling)
		},
	},
}

// Generate evaluates the rule list in order. When nothing fires, a single
// maintain-course item is emitted so the plan is never empty.
func Generate(in Input) []domain.ActionPlanItem {
	var plan []domain.ActionPlanItem
	priority := 1

	for _, r := range rules {
		if !r.when(in) {
			continue
		}
		action, detail := r.action(in)
		plan = append(plan, domain.ActionPlanItem{
			Priority: priority,
			Domain:   r.domain,
			Action:   action,
			Detail:   detail,
		})
		priority++
	}

	if len(plan) == 0 {
		plan = append(plan, domain.ActionPlanItem{
			Priority: 1,
			Domain:   "general",
			Action:   "Maintain course",
			Detail:   "Every monitored metric is at or above target; keep the current structure.",
		})
	}
	return plan
}
