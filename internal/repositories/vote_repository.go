package repositories

import (
	"errors"

	"subtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVoteNotFound = errors.New("vote not found")

type VoteRepository interface {
	Create(db *gorm.DB, vote *models.Vote) error
	Exists(db *gorm.DB, userID, serviceID string) (bool, error)
	Delete(db *gorm.DB, userID, serviceID string) error
	CountByService(db *gorm.DB, serviceID string) (int64, error)
}

type VoteRepositoryImpl struct{}

func NewVoteRepository() VoteRepository {
	return &VoteRepositoryImpl{}
}

func (r *VoteRepositoryImpl) Create(db *gorm.DB, vote *models.Vote) error {
	return db.Create(vote).Error
}

func (r *VoteRepositoryImpl) Exists(db *gorm.DB, userID, serviceID string) (bool, error) {
	var count int64
	err := db.Model(&models.Vote{}).
		Where("user_id = ? AND service_id = ?", userID, serviceID).
		Count(&count).Error
	return count > 0, err
}

func (r *VoteRepositoryImpl) Delete(db *gorm.DB, userID, serviceID string) error {
	result := db.Where("user_id = ? AND service_id = ?", userID, serviceID).Delete(&models.Vote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVoteNotFound
	}
	return nil
}

func (r *VoteRepositoryImpl) CountByService(db *gorm.DB, serviceID string) (int64, error) {
	var count int64
	err := db.Model(&models.Vote{}).Where("service_id = ?", serviceID).Count(&count).Error
	return count, err
}
