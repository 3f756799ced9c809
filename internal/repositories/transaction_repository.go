package repositories

import (
	"errors"
	"time"

	"subtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	Create(db *gorm.DB, transaction *models.Transaction) error
	// FindPendingBySubscription returns the pending transaction for a
	// subscription, if one exists. The invariant is at most one.
	FindPendingBySubscription(db *gorm.DB, subscriptionID string) (*models.Transaction, error)
	// MarkComplete flips a transaction to complete and overwrites its
	// created_at with the completion instant.
	MarkComplete(db *gorm.DB, id string, at time.Time) error
	// FindByUser returns all transactions across the user's subscriptions.
	FindByUser(db *gorm.DB, userID string) ([]models.Transaction, error)
	FindBySubscription(db *gorm.DB, subscriptionID string) ([]models.Transaction, error)
}

type TransactionRepositoryImpl struct{}

func NewTransactionRepository() TransactionRepository {
	return &TransactionRepositoryImpl{}
}

func (r *TransactionRepositoryImpl) Create(db *gorm.DB, transaction *models.Transaction) error {
	return db.Create(transaction).Error
}

func (r *TransactionRepositoryImpl) FindPendingBySubscription(db *gorm.DB, subscriptionID string) (*models.Transaction, error) {
	var tr models.Transaction
	err := db.Where("subscription_id = ? AND status = ?", subscriptionID, models.TransactionStatusPending).
		First(&tr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tr, nil
}

func (r *TransactionRepositoryImpl) MarkComplete(db *gorm.DB, id string, at time.Time) error {
	return db.Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.TransactionStatusComplete,
			"created_at": at,
		}).Error
}

func (r *TransactionRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := db.
		Joins("JOIN subscriptions ON subscriptions.id = transactions.subscription_id").
		Where("subscriptions.user_id = ?", userID).
		Order("transactions.created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

func (r *TransactionRepositoryImpl) FindBySubscription(db *gorm.DB, subscriptionID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := db.Where("subscription_id = ?", subscriptionID).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}
