package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincompass/fincompass-backend/internal/adapter/repository/sqlite"
	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
	"github.com/fincompass/fincompass-backend/internal/usecase/snapshot"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, domain.KeyBasicFinal)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	require.NoError(t, store.Put(ctx, domain.KeyBasicFinal, []byte(`{"age": 41}`)))
	data, err := store.Get(ctx, domain.KeyBasicFinal)
	require.NoError(t, err)
	assert.JSONEq(t, `{"age": 41}`, string(data))

	// Put replaces, never appends.
	require.NoError(t, store.Put(ctx, domain.KeyBasicFinal, []byte(`{"age": 42}`)))
	data, err = store.Get(ctx, domain.KeyBasicFinal)
	require.NoError(t, err)
	assert.JSONEq(t, `{"age": 42}`, string(data))
}

func TestSnapshot_AgainstStore(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.KeyBasicFinal, []byte(`{
		"personalInfo": {"name": "Yoon household", "age": 41},
		"income": {"salary": 420, "spouseIncome": 260, "otherIncome": 20},
		"expense": {"living": 280, "insurance": 45, "loanPayment": 95, "saving": 120, "pension": 40},
		"assets": {"realEstate": 58000, "financial": 12000, "emergencyFund": 1500},
		"debts": {"mortgage": [{"name": "home loan", "amount": 21000}]}
	}`)))
	require.NoError(t, store.Put(ctx, domain.KeyDesign, []byte(`{
		"retire": {"currentAge": 41, "retireAge": 65, "monthlyExpense": 300,
			"publicPension": 80, "privatePension": 50, "lumpSum": 10000}
	}`)))

	snap := snapshot.NewService(store, policy.Default()).Compute(ctx)

	assert.Equal(t, "Yoon household", snap.Model.Profile.Name)
	assert.Equal(t, 3.6, snap.Metrics.EmergencyMonths)
	assert.Equal(t, 54.0, snap.Metrics.RetirementReadyRate)
	// No credit debt and a thin emergency fund: the household sits on the
	// emergency-reserve stage.
	assert.Equal(t, 2, snap.Stage.Seq)
	assert.NotEmpty(t, snap.ActionPlan)
}

func TestSnapshot_DraftOnlyHousehold(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.KeyBasicDraft, []byte(`{
		"personalInfo": {"age": 35},
		"income": {"salary": 300}
	}`)))

	snap := snapshot.NewService(store, policy.Default()).Compute(ctx)
	assert.Equal(t, 35, snap.Model.Profile.Age)
	assert.True(t, snap.Model.Income.Total.Equal(decimal.NewFromInt(300)))
}
