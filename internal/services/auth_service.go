package services

import (
	"subtrack_backend/internal/auth"
	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	RegisterUser(db *gorm.DB, req *dto.RegisterUserRequest) (*models.User, error)
	RegisterBusiness(db *gorm.DB, req *dto.RegisterBusinessRequest) (*models.Business, error)
	// Login authenticates either a user or a business account; the email
	// space is shared, users are checked first.
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	businessRepo repositories.BusinessRepository
}

func NewAuthService(userRepo repositories.UserRepository, businessRepo repositories.BusinessRepository) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		businessRepo: businessRepo,
	}
}

func (s *AuthServiceImpl) RegisterUser(db *gorm.DB, req *dto.RegisterUserRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *AuthServiceImpl) RegisterBusiness(db *gorm.DB, req *dto.RegisterBusinessRequest) (*models.Business, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	business := &models.Business{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		Phone:           req.Phone,
		Description:     req.Description,
		Country:         req.Country,
		City:            req.City,
		Address:         req.Address,
		BankAccount:     req.BankAccount,
		BankAccountName: req.BankAccountName,
		BankName:        req.BankName,
	}

	if err := s.businessRepo.Create(db, business); err != nil {
		if apperrors.Is(err, repositories.ErrBusinessAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return business, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if user, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return s.buildLoginResponse(user.ID, string(user.Role), user)
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	business, err := s.businessRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, business.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.buildLoginResponse(business.ID, string(models.UserRoleBusiness), business)
}

func (s *AuthServiceImpl) buildLoginResponse(accountID, role string, account interface{}) (*dto.LoginResponse, error) {
	token, err := auth.GenerateToken(accountID, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        role,
		Account:     account,
	}, nil
}
