package repositories

import (
	"errors"

	"subtrack_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCardNotFound      = errors.New("card not found")
	ErrCardAlreadyExists = errors.New("card already on file")
)

type CardRepository interface {
	Create(db *gorm.DB, card *models.Card) error
	FindByUserID(db *gorm.DB, userID string) (*models.Card, error)
	Update(db *gorm.DB, card *models.Card) error
	DeleteByUserID(db *gorm.DB, userID string) error
}

type CardRepositoryImpl struct{}

func NewCardRepository() CardRepository {
	return &CardRepositoryImpl{}
}

func (r *CardRepositoryImpl) Create(db *gorm.DB, card *models.Card) error {
	var count int64
	if err := db.Model(&models.Card{}).Where("user_id = ?", card.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCardAlreadyExists
	}
	return db.Create(card).Error
}

func (r *CardRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Card, error) {
	var card models.Card
	err := db.Where("user_id = ?", userID).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepositoryImpl) Update(db *gorm.DB, card *models.Card) error {
	return db.Save(card).Error
}

func (r *CardRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Delete(&models.Card{}, "user_id = ?", userID).Error
}
