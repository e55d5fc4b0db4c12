package domain

import "github.com/shopspring/decimal"

// AssetPortfolio holds the household's itemized asset values.
type AssetPortfolio struct {
	RealEstate    decimal.Decimal `json:"real_estate"`
	Financial     decimal.Decimal `json:"financial"`
	EmergencyFund decimal.Decimal `json:"emergency_fund"`
	Total         decimal.Decimal `json:"total"`
}

// Loan represents a single self-reported loan record. Extra carries any
// free-form fields from the raw record that the model does not interpret.
type Loan struct {
	Name       string          `json:"name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Rate       float64         `json:"rate,omitempty"`
	TermMonths int             `json:"term_months,omitempty"`
	Extra      map[string]any  `json:"extra,omitempty"`
}

// DebtPortfolio groups the household's loans into the three reporting
// categories. Total is the aggregate reported debt, which may exceed the sum
// of the itemized loans when only a legacy aggregate was supplied.
type DebtPortfolio struct {
	Mortgage []Loan          `json:"mortgage"`
	Credit   []Loan          `json:"credit"`
	Other    []Loan          `json:"other"`
	Total    decimal.Decimal `json:"total"`
}

// MortgageTotal folds the amounts of the mortgage-type loans.
func (d DebtPortfolio) MortgageTotal() decimal.Decimal { return sumLoans(d.Mortgage) }

// CreditTotal folds the amounts of the credit-type loans.
func (d DebtPortfolio) CreditTotal() decimal.Decimal { return sumLoans(d.Credit) }

// OtherTotal folds the amounts of the uncategorized loans.
func (d DebtPortfolio) OtherTotal() decimal.Decimal { return sumLoans(d.Other) }

func sumLoans(loans []Loan) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		total = total.Add(l.Amount)
	}
	return total
}
