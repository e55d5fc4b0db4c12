package normalizer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

func TestNormalize_NilRecords(t *testing.T) {
	model := Normalize(nil, nil)

	assert.Equal(t, domain.DefaultHouseholdName, model.Profile.Name)
	assert.Equal(t, 0, model.Profile.Age)
	assert.True(t, model.Income.Total.IsZero())
	assert.True(t, model.Debts.Total.IsZero())
	assert.Empty(t, model.Debts.Mortgage)

	// Insurance always carries the full key set, all zero.
	require.Len(t, model.Insurance.Prepared, len(domain.CoverageKeys))
	for _, key := range domain.CoverageKeys {
		assert.True(t, model.Insurance.Prepared[key].IsZero(), "key %s", key)
	}
}

func TestNormalize_NestedPathsPreferred(t *testing.T) {
	basic := map[string]any{
		"personalInfo": map[string]any{
			"name": "Yoon household",
			"age":  float64(41),
		},
		// Legacy flat fields lose to the nested ones.
		"name": "stale",
		"age":  float64(99),
		"income": map[string]any{
			"salary":       float64(420),
			"spouseIncome": float64(260),
			"otherIncome":  float64(20),
		},
	}

	model := Normalize(basic, nil)
	assert.Equal(t, "Yoon household", model.Profile.Name)
	assert.Equal(t, 41, model.Profile.Age)
	assert.True(t, model.Income.Total.Equal(decimal.NewFromInt(700)))
}

func TestNormalize_LegacyFlatFallback(t *testing.T) {
	basic := map[string]any{
		"age":    float64(38),
		"salary": float64(350),
	}

	model := Normalize(basic, nil)
	assert.Equal(t, 38, model.Profile.Age)
	assert.True(t, model.Income.Salary.Equal(decimal.NewFromInt(350)))
}

func TestNormalize_ExplicitTotalWins(t *testing.T) {
	basic := map[string]any{
		"income": map[string]any{
			"salary": float64(420),
			"total":  float64(999),
		},
	}

	model := Normalize(basic, nil)
	assert.True(t, model.Income.Total.Equal(decimal.NewFromInt(999)))
}

func TestNormalize_CommaSeparatedAmounts(t *testing.T) {
	basic := map[string]any{
		"assets": map[string]any{
			"realEstate": "58,000",
			"financial":  " 12000 ",
		},
	}

	model := Normalize(basic, nil)
	assert.True(t, model.Assets.RealEstate.Equal(decimal.NewFromInt(58000)))
	assert.True(t, model.Assets.Financial.Equal(decimal.NewFromInt(12000)))
	assert.True(t, model.Assets.Total.Equal(decimal.NewFromInt(70000)))
}

func TestNormalize_Loans(t *testing.T) {
	basic := map[string]any{
		"debts": map[string]any{
			"mortgage": []any{
				map[string]any{
					"name": "home loan", "amount": float64(21000),
					"rate": float64(3.4), "term": float64(240),
					"lender": "alpha bank",
				},
			},
			"credit": []any{
				map[string]any{"label": "card loan", "balance": float64(1800)},
				"garbage entry",
			},
		},
	}

	model := Normalize(basic, nil)

	require.Len(t, model.Debts.Mortgage, 1)
	mortgage := model.Debts.Mortgage[0]
	assert.Equal(t, "home loan", mortgage.Name)
	assert.True(t, mortgage.Amount.Equal(decimal.NewFromInt(21000)))
	assert.Equal(t, 3.4, mortgage.Rate)
	assert.Equal(t, 240, mortgage.TermMonths)
	assert.Equal(t, "alpha bank", mortgage.Extra["lender"])

	require.Len(t, model.Debts.Credit, 1)
	assert.Equal(t, "card loan", model.Debts.Credit[0].Name)
	assert.True(t, model.Debts.Credit[0].Amount.Equal(decimal.NewFromInt(1800)))

	// No explicit total: the loan sums decide.
	assert.True(t, model.Debts.Total.Equal(decimal.NewFromInt(22800)))
}

func TestNormalize_BooleanSpellings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "bool true", value: true, want: true},
		{name: "korean-style o", value: "O", want: true},
		{name: "yes string", value: "yes", want: true},
		{name: "numeric one", value: float64(1), want: true},
		{name: "x marks no", value: "x", want: false},
		{name: "numeric zero", value: float64(0), want: false},
		{name: "empty string", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basic := map[string]any{
				"personalInfo": map[string]any{"married": tt.value},
			}
			assert.Equal(t, tt.want, Normalize(basic, nil).Profile.Married)
		})
	}
}

func TestNormalize_DesignRecord(t *testing.T) {
	design := map[string]any{
		"retire": map[string]any{
			"currentAge":     float64(45),
			"retireAge":      float64(65),
			"monthlyExpense": float64(300),
			"publicPension":  float64(80),
			"lumpSum":        float64(10000),
		},
		"tax": map[string]any{
			"inheritData": map[string]any{
				"totalAssets":   float64(150000),
				"hasSpouse":     "Y",
				"childrenCount": float64(2),
			},
		},
		"insurance": map[string]any{
			"income": float64(8400),
			"prepared": map[string]any{
				"death":   float64(40000),
				"medical": "yes",
				"driver":  "x",
			},
		},
	}

	model := Normalize(nil, design)

	assert.Equal(t, 65, model.Retirement.RetirementAge)
	assert.True(t, model.Retirement.LumpSum.Equal(decimal.NewFromInt(10000)))

	assert.True(t, model.Tax.InheritanceTax.HasSpouse)
	assert.Equal(t, 2, model.Tax.InheritanceTax.ChildrenCount)

	prepared := model.Insurance.Prepared
	assert.True(t, prepared[domain.CoverageDeath].Equal(decimal.NewFromInt(40000)))
	assert.True(t, prepared[domain.CoverageMedical].Equal(decimal.NewFromInt(1)))
	assert.True(t, prepared[domain.CoverageDriver].IsZero())
}

func TestNormalize_ArrayTypeMismatch(t *testing.T) {
	// A scalar where a loan list belongs coerces to an empty portfolio.
	basic := map[string]any{
		"debts": map[string]any{"mortgage": float64(21000)},
	}

	model := Normalize(basic, nil)
	assert.Empty(t, model.Debts.Mortgage)
	assert.True(t, model.Debts.Total.IsZero())
}
