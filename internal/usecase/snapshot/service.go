// Package snapshot orchestrates the full computation pipeline: load raw
// records, normalize, derive metrics, classify, and assemble the snapshot.
// Both presentation surfaces (the report renderer and the HTTP dashboard
// API) are thin consumers of this single service.
package snapshot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
	"github.com/fincompass/fincompass-backend/internal/usecase/actionplan"
	"github.com/fincompass/fincompass-backend/internal/usecase/grading"
	"github.com/fincompass/fincompass-backend/internal/usecase/loader"
	"github.com/fincompass/fincompass-backend/internal/usecase/metrics"
	"github.com/fincompass/fincompass-backend/internal/usecase/normalizer"
	"github.com/fincompass/fincompass-backend/internal/usecase/stage"
	"github.com/fincompass/fincompass-backend/internal/usecase/tax"
)

// Service computes financial snapshots over the injected record read port.
type Service struct {
	Records domain.RecordReader
	Policy  policy.Policy
}

// NewService creates a new snapshot Service instance.
func NewService(records domain.RecordReader, p policy.Policy) *Service {
	return &Service{Records: records, Policy: p}
}

// Compute runs the whole pipeline against the store's current contents.
// It never fails: missing or malformed records degrade to zero-valued
// fields, and every invocation is self-contained, so overlapping triggers
// simply produce independent snapshots.
func (s *Service) Compute(ctx context.Context) *domain.FinancialSnapshot {
	basic, design := loader.Load(ctx, s.Records)
	model := normalizer.Normalize(basic, design)

	m := metrics.Compute(model, s.Policy)
	currentStage := stage.Classify(m, model.Profile.DualIncome, s.Policy)

	return &domain.FinancialSnapshot{
		ID:          uuid.New().String(),
		ComputedAt:  time.Now().UTC(),
		Model:       model,
		Metrics:     m,
		Grades:      grading.Grade(m, s.Policy),
		Inheritance: tax.Inheritance(model.Tax.InheritanceTax, s.Policy),
		IncomeTax:   tax.Income(model.Tax.IncomeTax, s.Policy),
		Stage:       currentStage,
		ActionPlan: actionplan.Generate(actionplan.Input{
			Metrics:    m,
			Stage:      currentStage,
			DualIncome: model.Profile.DualIncome,
			Policy:     s.Policy,
		}),
	}
}
