// Package scheduler re-runs the snapshot pipeline on a fixed schedule. Each
// tick recomputes the full snapshot from the store's current contents and
// hands it to the sink; the latest result simply replaces the prior one.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/usecase/snapshot"
)

// Watcher drives periodic snapshot recomputation.
type Watcher struct {
	Cron      *cron.Cron
	Snapshots *snapshot.Service
	Sink      func(*domain.FinancialSnapshot)
	Ctx       context.Context
}

// NewWatcher creates a Watcher delivering each computed snapshot to sink.
func NewWatcher(ctx context.Context, snapshots *snapshot.Service, sink func(*domain.FinancialSnapshot)) *Watcher {
	return &Watcher{
		Cron:      cron.New(cron.WithSeconds()),
		Snapshots: snapshots,
		Sink:      sink,
		Ctx:       ctx,
	}
}

// Register schedules the recompute task with a six-field cron spec.
func (w *Watcher) Register(spec string) error {
	_, err := w.Cron.AddFunc(spec, w.recompute)
	return err
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	zap.L().Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.Cron.Stop()
	zap.L().Info("scheduler stopped")
}

// RunNow executes the recompute task immediately (manual trigger).
func (w *Watcher) RunNow() {
	w.recompute()
}

func (w *Watcher) recompute() {
	snap := w.Snapshots.Compute(w.Ctx)
	zap.L().Info("scheduler: snapshot recomputed",
		zap.String("snapshot_id", snap.ID),
		zap.Int("stage", snap.Stage.Seq),
		zap.String("overall_grade", string(snap.Grades.Overall.Code)),
		zap.Int("actions", len(snap.ActionPlan)),
	)
	if w.Sink != nil {
		w.Sink(snap)
	}
}
