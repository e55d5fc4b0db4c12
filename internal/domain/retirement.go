package domain

import "github.com/shopspring/decimal"

// RetirementPlan holds the household's retirement design inputs.
// Pension and income stream fields are monthly amounts; LumpSum is the
// expected one-off payout at retirement.
type RetirementPlan struct {
	CurrentAge      int             `json:"current_age"`
	RetirementAge   int             `json:"retirement_age"`
	MonthlyExpense  decimal.Decimal `json:"monthly_expense"`
	PublicPension   decimal.Decimal `json:"public_pension"`
	PrivatePension  decimal.Decimal `json:"private_pension"`
	LumpSum         decimal.Decimal `json:"lump_sum"`
	RentalIncome    decimal.Decimal `json:"rental_income"`
	FinancialIncome decimal.Decimal `json:"financial_income"`
}

// SavingsGoal is a single target the household is saving toward.
type SavingsGoal struct {
	Purpose      string          `json:"purpose"`
	HorizonYears int             `json:"horizon_years"`
	TargetAmount decimal.Decimal `json:"target_amount"`
}
