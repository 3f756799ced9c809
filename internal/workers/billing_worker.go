package workers

import (
	"context"
	"time"

	"subtrack_backend/internal/logger"
	"subtrack_backend/internal/services"

	"gorm.io/gorm"
)

// BillingSweeper is the slice of SubscriptionService the worker needs.
// Narrow on purpose so tests can hand in a fake.
type BillingSweeper interface {
	AdvanceBilling(db *gorm.DB, now time.Time) (*services.SweepStats, error)
	CleanupExpired(db *gorm.DB, now time.Time) (int64, error)
}

// BillingWorker periodically advances billing state for every active
// subscription and purges subscriptions past their expiry date. Billing is
// also refreshed lazily on reads, so the worker only bounds staleness for
// users who never log in.
type BillingWorker struct {
	db       *gorm.DB
	sweeper  BillingSweeper
	interval time.Duration
}

func NewBillingWorker(db *gorm.DB, sweeper BillingSweeper, interval time.Duration) *BillingWorker {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &BillingWorker{
		db:       db,
		sweeper:  sweeper,
		interval: interval,
	}
}

// Start launches the sweep loop. It returns immediately; the loop stops when
// ctx is cancelled.
func (w *BillingWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *BillingWorker) run(ctx context.Context) {
	// One sweep at startup so a restart never extends staleness by a full
	// interval.
	w.sweep()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("billing worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *BillingWorker) sweep() {
	now := time.Now().UTC()

	stats, err := w.sweeper.AdvanceBilling(w.db, now)
	logger.WorkerLog("billing", "advance", err)
	if err == nil && (stats.PendingCreated > 0 || stats.Completed > 0 || stats.SkippedNoCard > 0) {
		logger.Info("billing sweep",
			"refreshed", stats.Refreshed,
			"pending_created", stats.PendingCreated,
			"completed", stats.Completed,
			"skipped_no_card", stats.SkippedNoCard,
		)
	}

	deleted, err := w.sweeper.CleanupExpired(w.db, now)
	logger.WorkerLog("billing", "cleanup_expired", err)
	if err == nil && deleted > 0 {
		logger.Info("expired subscriptions removed", "deleted", deleted)
	}
}
