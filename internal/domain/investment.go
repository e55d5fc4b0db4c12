package domain

import "github.com/shopspring/decimal"

// PortfolioBreakdown is the five-bucket split of the household's investable
// assets.
type PortfolioBreakdown struct {
	Liquid    decimal.Decimal `json:"liquid"`
	Safe      decimal.Decimal `json:"safe"`
	Growth    decimal.Decimal `json:"growth"`
	HighRisk  decimal.Decimal `json:"high_risk"`
	Emergency decimal.Decimal `json:"emergency"`
}

// InvestmentProfile holds the investment design inputs, including the
// residential/investment real-estate sub-values used for the concentration
// metric.
type InvestmentProfile struct {
	Age                   int                `json:"age"`
	MonthlyIncome         decimal.Decimal    `json:"monthly_income"`
	TotalAssets           decimal.Decimal    `json:"total_assets"`
	TotalDebt             decimal.Decimal    `json:"total_debt"`
	Portfolio             PortfolioBreakdown `json:"portfolio"`
	ResidentialRealEstate decimal.Decimal    `json:"residential_real_estate"`
	InvestmentRealEstate  decimal.Decimal    `json:"investment_real_estate"`
	DualIncome            bool               `json:"dual_income"`
}
