package domain

import "github.com/shopspring/decimal"

// DefaultHouseholdName is substituted when no name survives the fallback chain.
const DefaultHouseholdName = "customer"

// HouseholdProfile represents the self-reported household identity data.
// All monetary amounts in this package are in man-won units (ten thousand
// currency units); monthly unless stated otherwise.
type HouseholdProfile struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	RetirementAge int    `json:"retirement_age"`
	Married       bool   `json:"married"`
	DualIncome    bool   `json:"dual_income"`
	Occupation    string `json:"occupation"`
	FamilySize    int    `json:"family_size"`
}

// IncomeStatement holds the household's monthly income components.
type IncomeStatement struct {
	Salary       decimal.Decimal `json:"salary"`
	SpouseSalary decimal.Decimal `json:"spouse_salary"`
	OtherIncome  decimal.Decimal `json:"other_income"`
	Total        decimal.Decimal `json:"total"`
}

// ExpenseStatement holds the household's monthly outflow components.
type ExpenseStatement struct {
	Living           decimal.Decimal `json:"living"`
	InsurancePremium decimal.Decimal `json:"insurance_premium"`
	LoanService      decimal.Decimal `json:"loan_service"`
	Savings          decimal.Decimal `json:"savings"`
	Pension          decimal.Decimal `json:"pension"`
	Surplus          decimal.Decimal `json:"surplus"`
	Total            decimal.Decimal `json:"total"`
}
