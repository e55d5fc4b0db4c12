package domain

import "github.com/shopspring/decimal"

// Coverage item keys. Six are amount-based, two (medical indemnity and
// driver) are binary subscriptions where prepared is 0 or 1.
const (
	CoverageDeath      = "death"
	CoverageDisability = "disability"
	CoverageCritical   = "critical"
	CoverageAccident   = "accident"
	CoverageHospital   = "hospital"
	CoverageCare       = "care"
	CoverageMedical    = "medical"
	CoverageDriver     = "driver"
)

// CoverageKeys lists all eight items in display order.
var CoverageKeys = []string{
	CoverageDeath,
	CoverageDisability,
	CoverageCritical,
	CoverageAccident,
	CoverageHospital,
	CoverageCare,
	CoverageMedical,
	CoverageDriver,
}

// IsBinaryCoverage reports whether the item is a subscription (prepared is
// 0/1) rather than an amount.
func IsBinaryCoverage(key string) bool {
	return key == CoverageMedical || key == CoverageDriver
}

// InsurancePortfolio holds the coverage design inputs: the income and debt
// bases the needed amounts are derived from, and the prepared amount per item
// (0/1 for the binary items).
type InsurancePortfolio struct {
	AnnualIncome decimal.Decimal            `json:"annual_income"`
	TotalDebt    decimal.Decimal            `json:"total_debt"`
	Prepared     map[string]decimal.Decimal `json:"prepared"`
}

// PreparedFor returns the prepared amount for a coverage key, zero when the
// item was never entered.
func (p InsurancePortfolio) PreparedFor(key string) decimal.Decimal {
	if p.Prepared == nil {
		return decimal.Zero
	}
	return p.Prepared[key]
}

// CoverageAssessment is the computed needed-vs-prepared position of one item.
type CoverageAssessment struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Binary   bool            `json:"binary"`
	Needed   decimal.Decimal `json:"needed"`
	Prepared decimal.Decimal `json:"prepared"`
	Lacking  bool            `json:"lacking"`
}
