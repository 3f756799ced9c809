package repositories

import (
	"errors"

	"subtrack_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound      = errors.New("business not found")
	ErrBusinessAlreadyExists = errors.New("business already exists")
)

type BusinessRepository interface {
	Create(db *gorm.DB, business *models.Business) error
	FindByID(db *gorm.DB, id string) (*models.Business, error)
	FindByEmail(db *gorm.DB, email string) (*models.Business, error)
	Update(db *gorm.DB, business *models.Business) error
	Delete(db *gorm.DB, id string) error
}

type BusinessRepositoryImpl struct{}

func NewBusinessRepository() BusinessRepository {
	return &BusinessRepositoryImpl{}
}

func (r *BusinessRepositoryImpl) Create(db *gorm.DB, business *models.Business) error {
	var count int64
	if err := db.Model(&models.Business{}).Where("email = ?", business.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrBusinessAlreadyExists
	}
	return db.Create(business).Error
}

func (r *BusinessRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Business, error) {
	var business models.Business
	err := db.First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Business, error) {
	var business models.Business
	err := db.Where("email = ?", email).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) Update(db *gorm.DB, business *models.Business) error {
	return db.Save(business).Error
}

func (r *BusinessRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Business{}, "id = ?", id).Error
}
