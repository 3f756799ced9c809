package integration_test

import (
	"testing"
	"time"

	"subtrack_backend/internal/billing"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/internal/services"
	"subtrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// receiptRecorder captures outgoing email instead of sending it.
type receiptRecorder struct {
	welcomes int
	receipts int
}

func (r *receiptRecorder) SendSubscriptionWelcome(to, name, serviceName string, price float64) error {
	r.welcomes++
	return nil
}

func (r *receiptRecorder) SendPaymentReceipt(to, name, serviceName string, amount float64) error {
	r.receipts++
	return nil
}

func (r *receiptRecorder) Validate() error { return nil }

func newBillingService(clock billing.Clock, mail *receiptRecorder) services.SubscriptionService {
	return services.NewSubscriptionService(
		repositories.NewSubscriptionRepository(),
		repositories.NewTransactionRepository(),
		repositories.NewUserRepository(),
		repositories.NewServiceRepository(),
		repositories.NewCardRepository(),
		billing.NewEngine(),
		clock,
		mail,
	)
}

func pendingCount(t *testing.T, tx *gorm.DB, subscriptionID string) int64 {
	var count int64
	err := tx.Model(&models.Transaction{}).
		Where("subscription_id = ? AND status = ?", subscriptionID, models.TransactionStatusPending).
		Count(&count).Error
	assert.NoError(t, err)
	return count
}

// Walks one subscription through a full 30-day payment cycle with a pinned
// clock: subscribe Jan 1, pending opens Jan 26, payment completes Jan 31.
func TestBilling_FullPaymentCycle(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mail := &receiptRecorder{}
	svc := newBillingService(billing.FixedClock{Instant: jan1}, mail)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 15.00, 12)
	_, user := helpers.CreateAndLoginUser(t, ts, tx, "Cycle", "cycle@test.com", "password123", models.UserRoleUser)
	helpers.AddTestCard(t, tx, user.ID)

	sub, err := svc.Subscribe(tx, user.ID, service.ID)
	assert.NoError(t, err)
	assert.Equal(t, 30, sub.DaysTillNextPayment)
	assert.Equal(t, jan1.AddDate(0, 12, 0), sub.ExpiryDate)
	assert.Equal(t, 1, mail.welcomes)

	// Jan 25: countdown 6, too early for a pending transaction.
	stats, err := svc.AdvanceBilling(tx, jan1.AddDate(0, 0, 24))
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.PendingCreated)
	assert.Equal(t, int64(0), pendingCount(t, tx, sub.ID))

	// Jan 26: countdown 5, the pending transaction opens.
	stats, err = svc.AdvanceBilling(tx, jan1.AddDate(0, 0, 25))
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.PendingCreated)
	assert.Equal(t, int64(1), pendingCount(t, tx, sub.ID))

	var pending models.Transaction
	assert.NoError(t, tx.Where("subscription_id = ? AND status = ?", sub.ID, models.TransactionStatusPending).First(&pending).Error)
	assert.Equal(t, 15.00, pending.Amount)
	assert.Equal(t, "Visa", pending.CardBrand)

	// Running the same sweep again never opens a second pending transaction.
	stats, err = svc.AdvanceBilling(tx, jan1.AddDate(0, 0, 25))
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.PendingCreated)
	assert.Equal(t, int64(1), pendingCount(t, tx, sub.ID))

	// Jan 31: the payment date. The pending transaction flips to complete
	// and its timestamp is rewritten to the completion instant.
	jan31 := jan1.AddDate(0, 0, 30)
	stats, err = svc.AdvanceBilling(tx, jan31)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, mail.receipts)
	assert.Equal(t, int64(0), pendingCount(t, tx, sub.ID))

	var completed models.Transaction
	assert.NoError(t, tx.First(&completed, "id = ?", pending.ID).Error)
	assert.Equal(t, models.TransactionStatusComplete, completed.Status)
	assert.WithinDuration(t, jan31, completed.CreatedAt, time.Second)

	// A second sweep at the boundary has no pending transaction left to
	// complete and changes nothing.
	stats, err = svc.AdvanceBilling(tx, jan31)
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Completed)
	assert.Equal(t, 0, stats.PendingCreated)

	var countdown models.Subscription
	assert.NoError(t, tx.First(&countdown, "id = ?", sub.ID).Error)
	assert.Equal(t, 0, countdown.DaysTillNextPayment)
}

// A user who dropped their card gets no pending transaction, only a skip.
func TestBilling_MissingCardSkipsPending(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mail := &receiptRecorder{}
	svc := newBillingService(billing.FixedClock{Instant: jan1}, mail)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 8.00, 12)
	_, user := helpers.CreateAndLoginUser(t, ts, tx, "Cardless", "cardless@test.com", "password123", models.UserRoleUser)
	card := helpers.AddTestCard(t, tx, user.ID)

	sub, err := svc.Subscribe(tx, user.ID, service.ID)
	assert.NoError(t, err)

	// The card disappears before the pending window.
	assert.NoError(t, tx.Delete(card).Error)

	stats, err := svc.AdvanceBilling(tx, jan1.AddDate(0, 0, 25))
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.SkippedNoCard)
	assert.Equal(t, 0, stats.PendingCreated)
	assert.Equal(t, int64(0), pendingCount(t, tx, sub.ID))

	// The countdown still refreshes even when the transaction is skipped.
	var refreshed models.Subscription
	assert.NoError(t, tx.First(&refreshed, "id = ?", sub.ID).Error)
	assert.Equal(t, 5, refreshed.DaysTillNextPayment)
}

// Countdown pins to the next 30-day boundary across multiple cycles.
func TestBilling_CountdownAcrossCycles(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mail := &receiptRecorder{}
	svc := newBillingService(billing.FixedClock{Instant: jan1}, mail)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 5.00, 24)
	_, user := helpers.CreateAndLoginUser(t, ts, tx, "Cycles", "cycles@test.com", "password123", models.UserRoleUser)
	helpers.AddTestCard(t, tx, user.ID)

	sub, err := svc.Subscribe(tx, user.ID, service.ID)
	assert.NoError(t, err)

	// Feb 1 is one day past the first boundary; the next one is Mar 1.
	_, err = svc.AdvanceBilling(tx, jan1.AddDate(0, 0, 31))
	assert.NoError(t, err)

	var refreshed models.Subscription
	assert.NoError(t, tx.First(&refreshed, "id = ?", sub.ID).Error)
	assert.Equal(t, 29, refreshed.DaysTillNextPayment)
}
