package services

import (
	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BusinessService interface {
	GetProfile(db *gorm.DB, businessID string) (*models.Business, error)
	UpdateProfile(db *gorm.DB, businessID string, req *dto.UpdateBusinessRequest) (*models.Business, error)
	SetProfileImage(db *gorm.DB, businessID, imageURL string) (*models.Business, error)
	DeleteAccount(db *gorm.DB, businessID string) error
}

type BusinessServiceImpl struct {
	businessRepo repositories.BusinessRepository
}

func NewBusinessService(businessRepo repositories.BusinessRepository) BusinessService {
	return &BusinessServiceImpl{businessRepo: businessRepo}
}

func (s *BusinessServiceImpl) GetProfile(db *gorm.DB, businessID string) (*models.Business, error) {
	business, err := s.businessRepo.FindByID(db, businessID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return business, nil
}

func (s *BusinessServiceImpl) UpdateProfile(db *gorm.DB, businessID string, req *dto.UpdateBusinessRequest) (*models.Business, error) {
	business, err := s.GetProfile(db, businessID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Country != nil {
		business.Country = *req.Country
	}
	if req.City != nil {
		business.City = *req.City
	}
	if req.Address != nil {
		business.Address = *req.Address
	}

	if err := s.businessRepo.Update(db, business); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return business, nil
}

func (s *BusinessServiceImpl) SetProfileImage(db *gorm.DB, businessID, imageURL string) (*models.Business, error) {
	business, err := s.GetProfile(db, businessID)
	if err != nil {
		return nil, err
	}

	business.ProfileImage = imageURL
	if err := s.businessRepo.Update(db, business); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return business, nil
}

func (s *BusinessServiceImpl) DeleteAccount(db *gorm.DB, businessID string) error {
	if _, err := s.GetProfile(db, businessID); err != nil {
		return err
	}
	if err := s.businessRepo.Delete(db, businessID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
