package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDebtPortfolio_CategoryTotals(t *testing.T) {
	debts := DebtPortfolio{
		Mortgage: []Loan{
			{Name: "home loan", Amount: decimal.NewFromInt(18000)},
			{Name: "second lien", Amount: decimal.NewFromInt(3000)},
		},
		Credit: []Loan{{Amount: decimal.NewFromInt(1800)}},
	}

	assert.True(t, debts.MortgageTotal().Equal(decimal.NewFromInt(21000)))
	assert.True(t, debts.CreditTotal().Equal(decimal.NewFromInt(1800)))
	assert.True(t, debts.OtherTotal().IsZero())
}

func TestDebtPortfolio_EmptyCategories(t *testing.T) {
	var debts DebtPortfolio
	assert.True(t, debts.MortgageTotal().IsZero())
	assert.True(t, debts.CreditTotal().IsZero())
	assert.True(t, debts.OtherTotal().IsZero())
}

func TestInsurancePortfolio_PreparedFor(t *testing.T) {
	ins := InsurancePortfolio{Prepared: map[string]decimal.Decimal{
		CoverageDeath: decimal.NewFromInt(40000),
	}}

	assert.True(t, ins.PreparedFor(CoverageDeath).Equal(decimal.NewFromInt(40000)))
	assert.True(t, ins.PreparedFor(CoverageCritical).IsZero())

	var empty InsurancePortfolio
	assert.True(t, empty.PreparedFor(CoverageDeath).IsZero())
}

func TestIsBinaryCoverage(t *testing.T) {
	assert.True(t, IsBinaryCoverage(CoverageMedical))
	assert.True(t, IsBinaryCoverage(CoverageDriver))
	assert.False(t, IsBinaryCoverage(CoverageDeath))
	assert.False(t, IsBinaryCoverage("unknown"))
}
