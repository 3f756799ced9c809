package services

import (
	"strings"

	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CardService interface {
	AddCard(db *gorm.DB, userID string, req *dto.AddCardRequest) (*models.Card, error)
	GetCard(db *gorm.DB, userID string) (*models.Card, error)
	DeleteCard(db *gorm.DB, userID string) error
}

type CardServiceImpl struct {
	cardRepo repositories.CardRepository
	userRepo repositories.UserRepository
}

func NewCardService(cardRepo repositories.CardRepository, userRepo repositories.UserRepository) CardService {
	return &CardServiceImpl{
		cardRepo: cardRepo,
		userRepo: userRepo,
	}
}

func (s *CardServiceImpl) AddCard(db *gorm.DB, userID string, req *dto.AddCardRequest) (*models.Card, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	card := &models.Card{
		UserID:   userID,
		LastFour: lastFour(req.Number),
		Expiry:   req.Expiry,
		Brand:    req.Brand,
	}

	if err := s.cardRepo.Create(db, card); err != nil {
		if apperrors.Is(err, repositories.ErrCardAlreadyExists) {
			return nil, apperrors.ErrCardAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return card, nil
}

func (s *CardServiceImpl) GetCard(db *gorm.DB, userID string) (*models.Card, error) {
	card, err := s.cardRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return card, nil
}

func (s *CardServiceImpl) DeleteCard(db *gorm.DB, userID string) error {
	if _, err := s.GetCard(db, userID); err != nil {
		return err
	}
	if err := s.cardRepo.DeleteByUserID(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// lastFour strips separators and keeps the trailing four digits. The full
// number is discarded after this.
func lastFour(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
