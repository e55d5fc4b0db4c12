package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Model is the fully-defaulted normalized input: every field is present, with
// zero/empty values standing in for anything the household never entered.
type Model struct {
	Profile    HouseholdProfile   `json:"profile"`
	Income     IncomeStatement    `json:"income"`
	Expense    ExpenseStatement   `json:"expense"`
	Assets     AssetPortfolio     `json:"assets"`
	Debts      DebtPortfolio      `json:"debts"`
	Retirement RetirementPlan     `json:"retirement"`
	Goal       SavingsGoal        `json:"goal"`
	Investment InvestmentProfile  `json:"investment"`
	Tax        TaxProfile         `json:"tax"`
	Insurance  InsurancePortfolio `json:"insurance"`
}

// DebtComposition is the per-category share of total debt, in percent.
type DebtComposition struct {
	Mortgage float64 `json:"mortgage"`
	Credit   float64 `json:"credit"`
	Other    float64 `json:"other"`
}

// Metrics holds every derived ratio and index. All percentage fields are
// finite, non-negative, and rounded to the nearest integer; EmergencyMonths
// is rounded to one decimal. Zero denominators always yield 0.
type Metrics struct {
	MonthlyRequiredExpense decimal.Decimal `json:"monthly_required_expense"`
	EmergencyMonths        float64         `json:"emergency_months"`
	DebtRatio              float64         `json:"debt_ratio"`
	DSR                    float64         `json:"dsr"`
	SavingsRate            float64         `json:"savings_rate"`
	NetWorth               decimal.Decimal `json:"net_worth"`
	WealthIndex            float64         `json:"wealth_index"`

	MonthlySavingsTotal decimal.Decimal `json:"monthly_savings_total"`

	RetirementRequired      decimal.Decimal `json:"retirement_required"`
	RetirementPrepared      decimal.Decimal `json:"retirement_prepared"`
	RetirementReadyRate     float64         `json:"retirement_ready_rate"`
	MonthlyShortfall        decimal.Decimal `json:"monthly_shortfall"`
	RetirementFundingGap    decimal.Decimal `json:"retirement_funding_gap"`
	AdditionalMonthlySaving decimal.Decimal `json:"additional_monthly_saving"`

	InsuranceCoverageRate float64              `json:"insurance_coverage_rate"`
	InsuranceLackCount    int                  `json:"insurance_lack_count"`
	InsuranceItems        []CoverageAssessment `json:"insurance_items"`

	RealEstateConcentration float64         `json:"real_estate_concentration"`
	DebtComposition         DebtComposition `json:"debt_composition"`
	MortgageDebtTotal       decimal.Decimal `json:"mortgage_debt_total"`
	CreditDebtTotal         decimal.Decimal `json:"credit_debt_total"`
	OtherDebtTotal          decimal.Decimal `json:"other_debt_total"`

	InvestableAssets decimal.Decimal `json:"investable_assets"`

	GoalMonthlySaving decimal.Decimal `json:"goal_monthly_saving"`
}

// ActionPlanItem is one recommended action. Priorities are contiguous and
// start at 1; the order is the rule-evaluation order, not a severity sort.
type ActionPlanItem struct {
	Priority int    `json:"priority"`
	Domain   string `json:"domain"`
	Action   string `json:"action"`
	Detail   string `json:"detail"`
}

// FinancialSnapshot is the single artifact handed to presentation and export
// consumers. It is recomputed in full on every trigger and fully
// self-contained: rendering a report requires no further lookups.
type FinancialSnapshot struct {
	ID         string               `json:"id"`
	ComputedAt time.Time            `json:"computed_at"`
	Model      Model                `json:"model"`
	Metrics    Metrics              `json:"metrics"`
	Grades     GradeSet             `json:"grades"`
	Inheritance InheritanceTaxResult `json:"inheritance_tax"`
	IncomeTax  IncomeTaxResult      `json:"income_tax"`
	Stage      DesireStage          `json:"stage"`
	ActionPlan []ActionPlanItem     `json:"action_plan"`
}
