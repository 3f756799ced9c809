package services

import (
	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*models.User, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*models.User, error)
	SetProfileImage(db *gorm.DB, userID, imageURL string) (*models.User, error)
	DeleteAccount(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) SetProfileImage(db *gorm.DB, userID, imageURL string) (*models.User, error) {
	user, err := s.GetProfile(db, userID)
	if err != nil {
		return nil, err
	}

	user.ProfileImage = imageURL
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) DeleteAccount(db *gorm.DB, userID string) error {
	if _, err := s.GetProfile(db, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
