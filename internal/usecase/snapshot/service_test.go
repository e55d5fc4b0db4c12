package snapshot

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
)

type memStore struct {
	records map[string][]byte
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.records[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return data, nil
}

func TestCompute_EmptyStore(t *testing.T) {
	svc := NewService(&memStore{}, policy.Default())

	snap := svc.Compute(context.Background())
	require.NotNil(t, snap)

	_, err := uuid.Parse(snap.ID)
	assert.NoError(t, err)
	assert.False(t, snap.ComputedAt.IsZero())

	// A zero household still classifies everywhere.
	assert.Equal(t, domain.DefaultHouseholdName, snap.Model.Profile.Name)
	assert.Equal(t, 2, snap.Stage.Seq)
	assert.Equal(t, domain.GradeC, snap.Grades.Overall.Code)
	assert.Equal(t, "-", snap.Inheritance.BracketLabel)
	require.NotEmpty(t, snap.ActionPlan)
	assert.Equal(t, 1, snap.ActionPlan[0].Priority)
}

func TestCompute_FullPipeline(t *testing.T) {
	store := &memStore{records: map[string][]byte{
		domain.KeyBasicFinal: []byte(`{
			"personalInfo": {"name": "Yoon household", "age": 41, "dualIncome": "Y"},
			"income": {"salary": 420, "spouseIncome": 260, "otherIncome": 20},
			"expense": {"living": 280, "insurance": 45, "loanPayment": 95, "saving": 120, "pension": 40},
			"assets": {"realEstate": 58000, "financial": 12000, "emergencyFund": 1500},
			"debts": {
				"mortgage": [{"name": "home loan", "amount": 21000}],
				"credit": [{"name": "card loan", "amount": 1800}]
			}
		}`),
		domain.KeyDesign: []byte(`{
			"retire": {"currentAge": 41, "retireAge": 65, "monthlyExpense": 300,
				"publicPension": 80, "privatePension": 50, "lumpSum": 10000},
			"tax": {"inheritData": {"totalAssets": 150000, "hasSpouse": "Y", "childrenCount": 2}},
			"insurance": {"income": 8400, "prepared": {"death": 40000, "medical": "yes"}}
		}`),
	}}

	snap := NewService(store, policy.Default()).Compute(context.Background())

	assert.Equal(t, "Yoon household", snap.Model.Profile.Name)
	assert.Equal(t, 3.6, snap.Metrics.EmergencyMonths)
	assert.Equal(t, 23.0, snap.Metrics.SavingsRate)
	assert.Equal(t, 54.0, snap.Metrics.RetirementReadyRate)

	// Outstanding credit debt gates the stage and heads the plan.
	assert.Equal(t, 1, snap.Stage.Seq)
	require.NotEmpty(t, snap.ActionPlan)
	assert.Equal(t, "debt", snap.ActionPlan[0].Domain)

	assert.True(t, snap.Inheritance.Tax.Equal(decimal.NewFromInt(15000)),
		"inheritance tax = %s", snap.Inheritance.Tax)
	assert.Equal(t, 0.30, snap.Inheritance.MarginalRate)
}

func TestCompute_IndependentSnapshots(t *testing.T) {
	svc := NewService(&memStore{}, policy.Default())

	first := svc.Compute(context.Background())
	second := svc.Compute(context.Background())

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.Stage, second.Stage)
}
