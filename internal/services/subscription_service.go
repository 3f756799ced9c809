package services

import (
	"time"

	"subtrack_backend/internal/billing"
	"subtrack_backend/internal/email"
	"subtrack_backend/internal/logger"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SweepStats summarizes one billing sweep.
type SweepStats struct {
	Refreshed      int `json:"refreshed"`
	PendingCreated int `json:"pending_created"`
	Completed      int `json:"completed"`
	SkippedNoCard  int `json:"skipped_no_card"`
}

type SubscriptionService interface {
	// Subscribe creates the subscription and its eager first transaction in
	// one unit of work.
	Subscribe(db *gorm.DB, userID, serviceID string) (*models.Subscription, error)
	// ListMySubscriptions refreshes the caller's billing state, persists the
	// results, and returns the refreshed list. Empty list is success.
	ListMySubscriptions(db *gorm.DB, userID string) ([]models.Subscription, error)
	// ListMyTransactions runs the same refresh before returning the ledger.
	ListMyTransactions(db *gorm.DB, userID string) ([]models.Transaction, error)
	GetTotalMonthlyPayable(db *gorm.DB, userID string) (float64, error)
	// AdvanceBilling sweeps every active subscription. Idempotent; safe to
	// run concurrently with list reads.
	AdvanceBilling(db *gorm.DB, now time.Time) (*SweepStats, error)
	// CleanupExpired marks lapsed subscriptions expired, then deletes every
	// subscription whose expiry_date is strictly before now. Zero is a valid
	// result, not an error.
	CleanupExpired(db *gorm.DB, now time.Time) (int64, error)
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repositories.SubscriptionRepository
	transactionRepo  repositories.TransactionRepository
	userRepo         repositories.UserRepository
	serviceRepo      repositories.ServiceRepository
	cardRepo         repositories.CardRepository
	engine           *billing.Engine
	clock            billing.Clock
	emailProvider    email.Provider
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	transactionRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
	serviceRepo repositories.ServiceRepository,
	cardRepo repositories.CardRepository,
	engine *billing.Engine,
	clock billing.Clock,
	emailProvider email.Provider,
) SubscriptionService {
	return &SubscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		transactionRepo:  transactionRepo,
		userRepo:         userRepo,
		serviceRepo:      serviceRepo,
		cardRepo:         cardRepo,
		engine:           engine,
		clock:            clock,
		emailProvider:    emailProvider,
	}
}

func (s *SubscriptionServiceImpl) Subscribe(db *gorm.DB, userID, serviceID string) (*models.Subscription, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	svc, err := s.serviceRepo.FindByID(db, serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if svc.Status != models.ServiceStatusActive {
		return nil, apperrors.ErrServiceInactive
	}

	// Card before any write: a subscription without a payment method would
	// leave the first transaction unstampable.
	card, err := s.cardRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrPaymentMethodMissing
		}
		return nil, apperrors.InternalError(err)
	}

	now := s.clock.Now()

	subscription := &models.Subscription{
		UserID:              userID,
		ServiceID:           serviceID,
		SubscriptionDate:    now,
		ExpiryDate:          billing.ExpiryDate(now, svc.DurationMonths),
		Status:              models.SubscriptionStatusActive,
		DaysTillNextPayment: s.engine.CycleDays,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Duplicate check inside the unit of work so two concurrent
		// subscribes can't both pass it.
		_, err := s.subscriptionRepo.FindByUserAndService(tx, userID, serviceID)
		if err == nil {
			return apperrors.ErrDuplicateSubscription
		}
		if !apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return err
		}

		if err := s.subscriptionRepo.Create(tx, subscription); err != nil {
			return err
		}

		// The first payment is taken at subscribe time: the eager first
		// transaction is created directly as complete.
		first := &models.Transaction{
			SubscriptionID: subscription.ID,
			Amount:         svc.Price,
			Status:         models.TransactionStatusComplete,
			CardBrand:      card.Brand,
		}
		first.CreatedAt = now
		return s.transactionRepo.Create(tx, first)
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcome(user, svc)

	subscription.Service = *svc
	return subscription, nil
}

func (s *SubscriptionServiceImpl) ListMySubscriptions(db *gorm.DB, userID string) ([]models.Subscription, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Lazy refresh on read, scoped to the caller. The worker's global sweep
	// covers subscriptions nobody lists.
	if _, err := s.sweep(db, userID, s.clock.Now()); err != nil {
		return nil, err
	}

	subs, err := s.subscriptionRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subs, nil
}

func (s *SubscriptionServiceImpl) ListMyTransactions(db *gorm.DB, userID string) ([]models.Transaction, error) {
	if _, err := s.sweep(db, userID, s.clock.Now()); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return transactions, nil
}

func (s *SubscriptionServiceImpl) GetTotalMonthlyPayable(db *gorm.DB, userID string) (float64, error) {
	total, err := s.subscriptionRepo.SumActivePrices(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return total, nil
}

func (s *SubscriptionServiceImpl) AdvanceBilling(db *gorm.DB, now time.Time) (*SweepStats, error) {
	return s.sweep(db, "", now)
}

func (s *SubscriptionServiceImpl) CleanupExpired(db *gorm.DB, now time.Time) (int64, error) {
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		// Flip status first so a reader between the two statements never
		// sees an active subscription past its expiry.
		if _, err := s.subscriptionRepo.MarkExpired(tx, now); err != nil {
			return err
		}

		var err error
		deleted, err = s.subscriptionRepo.DeleteExpired(tx, now)
		return err
	})
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return deleted, nil
}

// sweep applies the billing engine to every matching subscription, one unit
// of work each. A failure on one subscription aborts only that item's unit
// of work; the sweep carries on.
func (s *SubscriptionServiceImpl) sweep(db *gorm.DB, userID string, now time.Time) (*SweepStats, error) {
	subs, err := s.subscriptionRepo.FindForBilling(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &SweepStats{}
	for i := range subs {
		sub := &subs[i]

		decision, completed, err := s.refreshSubscription(db, sub, now)
		if err != nil {
			logger.Error("billing refresh failed",
				"subscription_id", sub.ID,
				"error", err,
			)
			continue
		}

		stats.Refreshed++
		if decision.CreatePending {
			stats.PendingCreated++
		}
		if decision.SkippedNoCard {
			stats.SkippedNoCard++
			logger.Warn("pending transaction due but user has no card on file",
				"subscription_id", sub.ID,
				"user_id", sub.UserID,
			)
		}
		if decision.Complete {
			stats.Completed++
			s.sendReceipt(sub, completed)
		}
	}

	return stats, nil
}

// refreshSubscription runs the engine decision for one subscription and
// persists countdown plus transaction side effect atomically. Returns the
// completed transaction when one was flipped.
func (s *SubscriptionServiceImpl) refreshSubscription(db *gorm.DB, sub *models.Subscription, now time.Time) (billing.Decision, *models.Transaction, error) {
	var decision billing.Decision
	var completed *models.Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		// Re-resolve the pending transaction inside the unit of work: a
		// concurrent sweep may have created or completed one since the
		// listing query ran. This upholds the at-most-one-pending invariant.
		pending, err := s.transactionRepo.FindPendingBySubscription(tx, sub.ID)
		hasPending := err == nil
		if err != nil && !apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return err
		}

		decision = s.engine.Decide(billing.Input{
			SubscribedAt: sub.SubscriptionDate,
			ServicePrice: sub.Service.Price,
			CardBrand:    cardBrand(sub),
			HasPending:   hasPending,
		}, now)

		if err := s.subscriptionRepo.UpdateCountdown(tx, sub.ID, decision.Countdown); err != nil {
			return err
		}
		sub.DaysTillNextPayment = decision.Countdown

		if decision.CreatePending {
			return s.transactionRepo.Create(tx, &models.Transaction{
				SubscriptionID: sub.ID,
				Amount:         decision.Amount,
				Status:         models.TransactionStatusPending,
				CardBrand:      decision.CardBrand,
			})
		}

		if decision.Complete {
			if err := s.transactionRepo.MarkComplete(tx, pending.ID, now); err != nil {
				return err
			}
			pending.Status = models.TransactionStatusComplete
			pending.CreatedAt = now
			completed = pending
		}

		return nil
	})

	return decision, completed, err
}

func cardBrand(sub *models.Subscription) string {
	if sub.User.Card != nil {
		return sub.User.Card.Brand
	}
	return ""
}

// Email delivery never fails the billing unit of work; a lost receipt is a
// log line, not a rollback.
func (s *SubscriptionServiceImpl) sendReceipt(sub *models.Subscription, tr *models.Transaction) {
	if s.emailProvider == nil || tr == nil || sub.User.Email == "" {
		return
	}
	err := s.emailProvider.SendPaymentReceipt(sub.User.Email, sub.User.Name, sub.Service.Name, tr.Amount)
	if err != nil {
		logger.Warn("failed to send payment receipt",
			"user_id", sub.UserID,
			"subscription_id", sub.ID,
			"error", err,
		)
	}
}

func (s *SubscriptionServiceImpl) sendWelcome(user *models.User, svc *models.Service) {
	if s.emailProvider == nil {
		return
	}
	if err := s.emailProvider.SendSubscriptionWelcome(user.Email, user.Name, svc.Name, svc.Price); err != nil {
		logger.Warn("failed to send subscription welcome email",
			"user_id", user.ID,
			"error", err,
		)
	}
}
