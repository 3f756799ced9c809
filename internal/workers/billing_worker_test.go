package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"subtrack_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSweeper struct {
	advances int64
	cleanups int64
}

func (f *fakeSweeper) AdvanceBilling(db *gorm.DB, now time.Time) (*services.SweepStats, error) {
	atomic.AddInt64(&f.advances, 1)
	return &services.SweepStats{}, nil
}

func (f *fakeSweeper) CleanupExpired(db *gorm.DB, now time.Time) (int64, error) {
	atomic.AddInt64(&f.cleanups, 1)
	return 0, nil
}

func TestBillingWorker_SweepsOnStartAndOnTick(t *testing.T) {
	sweeper := &fakeSweeper{}
	worker := NewBillingWorker(nil, sweeper, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&sweeper.advances) >= 2
	}, 2*time.Second, 5*time.Millisecond, "expected the startup sweep plus at least one tick")
	assert.GreaterOrEqual(t, atomic.LoadInt64(&sweeper.cleanups), int64(2))

	cancel()
	time.Sleep(50 * time.Millisecond)
	after := atomic.LoadInt64(&sweeper.advances)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt64(&sweeper.advances), "no sweeps after cancellation")
}

func TestBillingWorker_DefaultInterval(t *testing.T) {
	worker := NewBillingWorker(nil, &fakeSweeper{}, 0)
	assert.Equal(t, 6*time.Hour, worker.interval)
}
