package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

type fakeStore struct {
	records map[string][]byte
	err     error
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.records[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return data, nil
}

func TestLoad_FinalPreferredOverDraft(t *testing.T) {
	store := &fakeStore{records: map[string][]byte{
		domain.KeyBasicFinal: []byte(`{"age": 41}`),
		domain.KeyBasicDraft: []byte(`{"age": 99}`),
	}}

	basic, design := Load(context.Background(), store)
	assert.Equal(t, float64(41), basic["age"])
	assert.Nil(t, design)
}

func TestLoad_DraftFallback(t *testing.T) {
	store := &fakeStore{records: map[string][]byte{
		domain.KeyBasicDraft: []byte(`{"age": 38}`),
	}}

	basic, _ := Load(context.Background(), store)
	assert.Equal(t, float64(38), basic["age"])
}

func TestLoad_MalformedFinalFallsToDraft(t *testing.T) {
	store := &fakeStore{records: map[string][]byte{
		domain.KeyBasicFinal: []byte(`{truncated`),
		domain.KeyBasicDraft: []byte(`{"age": 38}`),
	}}

	basic, _ := Load(context.Background(), store)
	assert.Equal(t, float64(38), basic["age"])
}

func TestLoad_AbsentRecordsYieldNil(t *testing.T) {
	basic, design := Load(context.Background(), &fakeStore{})
	assert.Nil(t, basic)
	assert.Nil(t, design)
}

func TestLoad_StoreErrorsSwallowed(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}

	basic, design := Load(context.Background(), store)
	assert.Nil(t, basic)
	assert.Nil(t, design)
}

func TestLoad_DesignIndependentOfBasic(t *testing.T) {
	store := &fakeStore{records: map[string][]byte{
		domain.KeyDesign: []byte(`{"retire": {"retireAge": 65}}`),
	}}

	basic, design := Load(context.Background(), store)
	assert.Nil(t, basic)
	assert.NotNil(t, design)
}
