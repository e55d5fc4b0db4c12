package stage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
)

// settled is a household past every gate: no debt, funded emergency
// reserve, active saving, investable assets above the gate.
func settled() domain.Metrics {
	return domain.Metrics{
		CreditDebtTotal:     decimal.Zero,
		MortgageDebtTotal:   decimal.Zero,
		EmergencyMonths:     8,
		MonthlySavingsTotal: decimal.NewFromInt(150),
		InvestableAssets:    decimal.NewFromInt(120000),
	}
}

func TestClassify_GateOrder(t *testing.T) {
	p := policy.Default()

	tests := []struct {
		name       string
		mutate     func(m *domain.Metrics)
		dualIncome bool
		want       int
	}{
		{
			name:   "credit debt dominates everything",
			mutate: func(m *domain.Metrics) { m.CreditDebtTotal = decimal.NewFromInt(5000) },
			want:   1,
		},
		{
			name:   "emergency fund below single-income target",
			mutate: func(m *domain.Metrics) { m.EmergencyMonths = 4.5 },
			want:   2,
		},
		{
			name:       "dual income lowers the emergency target",
			mutate:     func(m *domain.Metrics) { m.EmergencyMonths = 4.5 },
			dualIncome: true,
			want:       6,
		},
		{
			name:   "no active saving",
			mutate: func(m *domain.Metrics) { m.MonthlySavingsTotal = decimal.Zero },
			want:   3,
		},
		{
			name:   "investable assets below gate",
			mutate: func(m *domain.Metrics) { m.InvestableAssets = decimal.NewFromInt(99999) },
			want:   4,
		},
		{
			name:   "mortgage still outstanding",
			mutate: func(m *domain.Metrics) { m.MortgageDebtTotal = decimal.NewFromInt(20000) },
			want:   5,
		},
		{
			name:   "all gates passed",
			mutate: func(m *domain.Metrics) {},
			want:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := settled()
			tt.mutate(&m)
			assert.Equal(t, tt.want, Classify(m, tt.dualIncome, p).Seq)
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Scenario: credit debt present plus every later gate failing. The
	// first gate decides regardless of the rest.
	m := domain.Metrics{
		CreditDebtTotal:     decimal.NewFromInt(5000),
		MortgageDebtTotal:   decimal.NewFromInt(30000),
		EmergencyMonths:     0,
		MonthlySavingsTotal: decimal.Zero,
		InvestableAssets:    decimal.Zero,
	}

	stage := Classify(m, false, policy.Default())
	assert.Equal(t, 1, stage.Seq)
	assert.Equal(t, domain.StageDebtFree, stage)
}

func TestClassify_TotalAndIdempotent(t *testing.T) {
	p := policy.Default()

	inputs := []domain.Metrics{
		{},
		settled(),
		{CreditDebtTotal: decimal.NewFromInt(1)},
		{EmergencyMonths: 100},
	}

	for _, m := range inputs {
		first := Classify(m, false, p)
		second := Classify(m, false, p)

		assert.GreaterOrEqual(t, first.Seq, 1)
		assert.LessOrEqual(t, first.Seq, 6)
		assert.Equal(t, first, second)
	}
}

func TestClassify_ZeroInput(t *testing.T) {
	// An empty household has no credit debt, so it lands on the emergency
	// fund stage rather than stage 1.
	stage := Classify(domain.Metrics{}, false, policy.Default())
	assert.Equal(t, 2, stage.Seq)
}
