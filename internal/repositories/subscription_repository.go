package repositories

import (
	"errors"
	"time"

	"subtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	Create(db *gorm.DB, subscription *models.Subscription) error
	FindByID(db *gorm.DB, id string) (*models.Subscription, error)
	FindByUserAndService(db *gorm.DB, userID, serviceID string) (*models.Subscription, error)
	// FindByUser preloads the linked service for API responses.
	FindByUser(db *gorm.DB, userID string) ([]models.Subscription, error)
	// FindForBilling loads subscriptions with the aggregates the billing
	// engine needs resolved: the service and the owner's card. An empty
	// userID means the whole store (the global sweep).
	FindForBilling(db *gorm.DB, userID string) ([]models.Subscription, error)
	UpdateCountdown(db *gorm.DB, id string, days int) error
	// MarkExpired flips active subscriptions whose expiry passed, so readers
	// between the sweep and the cleanup see a truthful status.
	MarkExpired(db *gorm.DB, before time.Time) (int64, error)
	// DeleteExpired removes subscriptions whose expiry_date is strictly
	// before the given instant. Returns the number of rows deleted.
	DeleteExpired(db *gorm.DB, before time.Time) (int64, error)
	// SumActivePrices computes the user's total monthly payable from the
	// linked services of active subscriptions.
	SumActivePrices(db *gorm.DB, userID string) (float64, error)
}

type SubscriptionRepositoryImpl struct{}

func NewSubscriptionRepository() SubscriptionRepository {
	return &SubscriptionRepositoryImpl{}
}

func (r *SubscriptionRepositoryImpl) Create(db *gorm.DB, subscription *models.Subscription) error {
	return db.Create(subscription).Error
}

func (r *SubscriptionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Subscription, error) {
	var sub models.Subscription
	err := db.Preload("Service").First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindByUserAndService(db *gorm.DB, userID, serviceID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := db.Where("user_id = ? AND service_id = ?", userID, serviceID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := db.Preload("Service").Preload("Service.Business").
		Where("user_id = ?", userID).
		Order("subscription_date ASC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) FindForBilling(db *gorm.DB, userID string) ([]models.Subscription, error) {
	query := db.Preload("Service").Preload("User.Card").
		Where("status = ?", models.SubscriptionStatusActive)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var subs []models.Subscription
	err := query.Order("subscription_date ASC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) UpdateCountdown(db *gorm.DB, id string, days int) error {
	return db.Model(&models.Subscription{}).
		Where("id = ?", id).
		Update("days_till_next_payment", days).Error
}

func (r *SubscriptionRepositoryImpl) MarkExpired(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Model(&models.Subscription{}).
		Where("status = ? AND expiry_date < ?", models.SubscriptionStatusActive, before).
		Update("status", models.SubscriptionStatusExpired)
	return result.RowsAffected, result.Error
}

func (r *SubscriptionRepositoryImpl) DeleteExpired(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Where("expiry_date < ?", before).Delete(&models.Subscription{})
	return result.RowsAffected, result.Error
}

func (r *SubscriptionRepositoryImpl) SumActivePrices(db *gorm.DB, userID string) (float64, error) {
	var total float64
	err := db.Model(&models.Subscription{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = subscriptions.service_id").
		Where("subscriptions.user_id = ? AND subscriptions.status = ?", userID, models.SubscriptionStatusActive).
		Scan(&total).Error
	return total, err
}
