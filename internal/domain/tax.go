package domain

import "github.com/shopspring/decimal"

// TaxProfile holds the raw tax design inputs. IncomeTax fields are annual
// amounts; InheritanceTax fields describe the estate at valuation time.
type TaxProfile struct {
	IncomeTax      IncomeTaxInput      `json:"income_tax"`
	InheritanceTax InheritanceTaxInput `json:"inheritance_tax"`
}

// IncomeTaxInput carries the year-end settlement figures.
type IncomeTaxInput struct {
	AnnualSalary  decimal.Decimal `json:"annual_salary"`
	DeterminedTax decimal.Decimal `json:"determined_tax"`
	PrepaidTax    decimal.Decimal `json:"prepaid_tax"`
}

// InheritanceTaxInput carries the estate composition and the deduction
// qualifiers.
type InheritanceTaxInput struct {
	TotalAssets   decimal.Decimal `json:"total_assets"`
	TotalDebts    decimal.Decimal `json:"total_debts"`
	HasSpouse     bool            `json:"has_spouse"`
	ChildrenCount int             `json:"children_count"`
}

// TaxBracket is one step of a progressive rate schedule. A nil Upper marks
// the open-ended final bracket.
type TaxBracket struct {
	Upper *decimal.Decimal `json:"upper"`
	Rate  float64          `json:"rate"`
}

// TaxResult is the outcome of walking a taxable base through a bracket
// schedule.
type TaxResult struct {
	Tax          decimal.Decimal `json:"tax"`
	MarginalRate float64         `json:"marginal_rate"`
	BracketLabel string          `json:"bracket_label"`
}

// InheritanceTaxResult is the inheritance estimate with its intermediate
// figures, so a report can show the full derivation.
type InheritanceTaxResult struct {
	TaxResult
	GrossEstate     decimal.Decimal `json:"gross_estate"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TaxableBase     decimal.Decimal `json:"taxable_base"`
}

// IncomeTaxResult is the income-tax estimate derived from the same bracket
// walker, plus the settlement refund (negative when additional tax is due).
type IncomeTaxResult struct {
	TaxResult
	EffectiveRate float64         `json:"effective_rate"`
	Refund        decimal.Decimal `json:"refund"`
}
