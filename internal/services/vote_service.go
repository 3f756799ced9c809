package services

import (
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type VoteService interface {
	Vote(db *gorm.DB, userID, serviceID string) error
	Unvote(db *gorm.DB, userID, serviceID string) error
	CountVotes(db *gorm.DB, serviceID string) (int64, error)
}

type VoteServiceImpl struct {
	voteRepo    repositories.VoteRepository
	serviceRepo repositories.ServiceRepository
}

func NewVoteService(voteRepo repositories.VoteRepository, serviceRepo repositories.ServiceRepository) VoteService {
	return &VoteServiceImpl{
		voteRepo:    voteRepo,
		serviceRepo: serviceRepo,
	}
}

func (s *VoteServiceImpl) Vote(db *gorm.DB, userID, serviceID string) error {
	if err := s.checkService(db, serviceID); err != nil {
		return err
	}

	exists, err := s.voteRepo.Exists(db, userID, serviceID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.ErrAlreadyVoted
	}

	vote := &models.Vote{UserID: userID, ServiceID: serviceID}
	if err := s.voteRepo.Create(db, vote); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *VoteServiceImpl) Unvote(db *gorm.DB, userID, serviceID string) error {
	if err := s.checkService(db, serviceID); err != nil {
		return err
	}

	if err := s.voteRepo.Delete(db, userID, serviceID); err != nil {
		if apperrors.Is(err, repositories.ErrVoteNotFound) {
			return apperrors.ErrVoteNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *VoteServiceImpl) CountVotes(db *gorm.DB, serviceID string) (int64, error) {
	if err := s.checkService(db, serviceID); err != nil {
		return 0, err
	}

	count, err := s.voteRepo.CountByService(db, serviceID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *VoteServiceImpl) checkService(db *gorm.DB, serviceID string) error {
	if _, err := s.serviceRepo.FindByID(db, serviceID); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
