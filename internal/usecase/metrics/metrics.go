// Package metrics derives every ratio and index in the snapshot from the
// normalized model. All division is zero-guarded: a zero denominator yields
// 0, never NaN, Inf, or an error.
package metrics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
)

var twelve = decimal.NewFromInt(12)

// Compute derives the full metric set. Pure; the model is never mutated.
func Compute(m domain.Model, p policy.Policy) domain.Metrics {
	out := domain.Metrics{}

	// Cash flow.
	out.MonthlyRequiredExpense = m.Expense.Living.
		Add(m.Expense.InsurancePremium).
		Add(m.Expense.LoanService)
	out.EmergencyMonths = round1(ratio(m.Assets.EmergencyFund, out.MonthlyRequiredExpense))
	out.MonthlySavingsTotal = m.Expense.Savings.Add(m.Expense.Pension)
	out.SavingsRate = percent(out.MonthlySavingsTotal, m.Income.Total)
	out.DSR = percent(m.Expense.LoanService, m.Income.Total)

	// Balance sheet.
	out.NetWorth = m.Assets.Total.Sub(m.Debts.Total)
	out.DebtRatio = percent(m.Debts.Total, m.Assets.Total)
	out.WealthIndex = wealthIndex(out.NetWorth, m.Profile.Age, m.Income.Total)

	// Debt composition.
	out.MortgageDebtTotal = m.Debts.MortgageTotal()
	out.CreditDebtTotal = m.Debts.CreditTotal()
	out.OtherDebtTotal = m.Debts.OtherTotal()
	out.DebtComposition = domain.DebtComposition{
		Mortgage: percent(out.MortgageDebtTotal, m.Debts.Total),
		Credit:   percent(out.CreditDebtTotal, m.Debts.Total),
		Other:    percent(out.OtherDebtTotal, m.Debts.Total),
	}

	computeRetirement(&out, m.Retirement, p)
	computeInsurance(&out, m.Insurance, p)

	out.InvestableAssets = m.Investment.TotalAssets
	out.RealEstateConcentration = percent(
		m.Investment.ResidentialRealEstate.Add(m.Investment.InvestmentRealEstate),
		m.Investment.TotalAssets,
	)

	out.GoalMonthlySaving = monthlyFor(m.Goal.TargetAmount, m.Goal.HorizonYears)

	return out
}

func computeRetirement(out *domain.Metrics, plan domain.RetirementPlan, p policy.Policy) {
	out.RetirementRequired = plan.MonthlyExpense

	// Lump sum amortized over the remaining life expectancy after
	// retirement.
	monthsInRetirement := int64(0)
	if years := p.LifeExpectancy - plan.RetirementAge; years > 0 {
		monthsInRetirement = int64(years) * 12
	}
	lumpMonthly := decimal.Zero
	if monthsInRetirement > 0 {
		lumpMonthly = plan.LumpSum.Div(decimal.NewFromInt(monthsInRetirement))
	}

	out.RetirementPrepared = plan.PublicPension.
		Add(plan.PrivatePension).
		Add(lumpMonthly).
		Add(plan.RentalIncome).
		Add(plan.FinancialIncome)
	out.RetirementReadyRate = percent(out.RetirementPrepared, out.RetirementRequired)

	out.MonthlyShortfall = decimal.Max(decimal.Zero, out.RetirementRequired.Sub(out.RetirementPrepared))
	yearsInRetirement := int64(0)
	if years := p.LifeExpectancy - plan.RetirementAge; years > 0 {
		yearsInRetirement = int64(years)
	}
	out.RetirementFundingGap = out.MonthlyShortfall.Mul(twelve).Mul(decimal.NewFromInt(yearsInRetirement))

	out.AdditionalMonthlySaving = decimal.Zero
	if yearsToRetirement := plan.RetirementAge - plan.CurrentAge; yearsToRetirement > 0 {
		out.AdditionalMonthlySaving = out.RetirementFundingGap.
			Div(decimal.NewFromInt(int64(yearsToRetirement) * 12)).
			Round(1)
	}
}

func computeInsurance(out *domain.Metrics, ins domain.InsurancePortfolio, p policy.Policy) {
	neededSum := decimal.Zero
	preparedSum := decimal.Zero
	items := make([]domain.CoverageAssessment, 0, len(p.Insurance))

	for _, need := range p.Insurance {
		prepared := ins.PreparedFor(need.Key)
		item := domain.CoverageAssessment{
			Key:      need.Key,
			Label:    need.Label,
			Binary:   need.Binary,
			Prepared: prepared,
		}

		if need.Binary {
			// Subscription items count toward the lack count only.
			item.Needed = decimal.NewFromInt(1)
			item.Lacking = prepared.IsZero()
		} else {
			item.Needed = decimal.NewFromInt(need.Base).
				Add(ins.AnnualIncome.Mul(decimal.NewFromFloat(need.IncomeMultiple))).
				Add(ins.TotalDebt.Mul(decimal.NewFromFloat(need.DebtMultiple)))
			item.Lacking = prepared.LessThan(item.Needed)
			neededSum = neededSum.Add(item.Needed)
			preparedSum = preparedSum.Add(prepared)
		}

		if item.Lacking {
			out.InsuranceLackCount++
		}
		items = append(items, item)
	}

	out.InsuranceCoverageRate = percent(preparedSum, neededSum)
	out.InsuranceItems = items
}

// wealthIndex is (netWorth * 10) / (age * annualIncome) * 100, where annual
// income is twelve monthly totals. Zero age or income yields 0; a negative
// net worth floors at 0 so every index stays non-negative.
func wealthIndex(netWorth decimal.Decimal, age int, monthlyIncome decimal.Decimal) float64 {
	if age <= 0 || monthlyIncome.IsZero() {
		return 0
	}
	annual := monthlyIncome.Mul(twelve)
	denominator := annual.Mul(decimal.NewFromInt(int64(age)))
	if denominator.IsZero() {
		return 0
	}
	idx, _ := netWorth.Mul(decimal.NewFromInt(10)).Div(denominator).Mul(decimal.NewFromInt(100)).Float64()
	return math.Max(0, math.Round(idx))
}

func monthlyFor(amount decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromInt(int64(years) * 12)).Round(1)
}

// percent is round(num/den*100), 0 when den is zero, floored at 0.
func percent(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	v, _ := num.Div(den).Mul(decimal.NewFromInt(100)).Float64()
	return math.Max(0, math.Round(v))
}

// ratio is num/den, 0 when den is zero.
func ratio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	v, _ := num.Div(den).Float64()
	return math.Max(0, v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
