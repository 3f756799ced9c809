package services

import (
	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CatalogService manages the services businesses publish. Mutations require
// ownership; reads are open.
type CatalogService interface {
	CreateService(db *gorm.DB, businessID string, req *dto.CreateServiceRequest) (*models.Service, error)
	GetService(db *gorm.DB, serviceID string) (*models.Service, error)
	ListServices(db *gorm.DB, filter repositories.ServiceFilter) ([]models.Service, int64, error)
	UpdateService(db *gorm.DB, businessID, serviceID string, req *dto.UpdateServiceRequest) (*models.Service, error)
	SetServiceImage(db *gorm.DB, businessID, serviceID, imageURL string) (*models.Service, error)
	DeleteService(db *gorm.DB, businessID, serviceID string) error
}

type CatalogServiceImpl struct {
	serviceRepo  repositories.ServiceRepository
	categoryRepo repositories.CategoryRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository, categoryRepo repositories.CategoryRepository) CatalogService {
	return &CatalogServiceImpl{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *CatalogServiceImpl) CreateService(db *gorm.DB, businessID string, req *dto.CreateServiceRequest) (*models.Service, error) {
	var categoryID *string
	if req.CategoryID != "" {
		if err := s.checkCategory(db, req.CategoryID); err != nil {
			return nil, err
		}
		categoryID = &req.CategoryID
	}

	service := &models.Service{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		DurationMonths: req.DurationMonths,
		Tier:           req.Tier,
		Status:         models.ServiceStatusActive,
		BusinessID:     businessID,
		CategoryID:     categoryID,
	}

	if err := s.serviceRepo.Create(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) GetService(db *gorm.DB, serviceID string) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(db, serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) ListServices(db *gorm.DB, filter repositories.ServiceFilter) ([]models.Service, int64, error) {
	services, total, err := s.serviceRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return services, total, nil
}

func (s *CatalogServiceImpl) UpdateService(db *gorm.DB, businessID, serviceID string, req *dto.UpdateServiceRequest) (*models.Service, error) {
	service, err := s.getOwned(db, businessID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMonths != nil {
		service.DurationMonths = *req.DurationMonths
	}
	if req.Tier != nil {
		service.Tier = *req.Tier
	}
	if req.Status != nil {
		service.Status = models.ServiceStatus(*req.Status)
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			service.CategoryID = nil
		} else {
			if err := s.checkCategory(db, *req.CategoryID); err != nil {
				return nil, err
			}
			service.CategoryID = req.CategoryID
		}
	}

	if err := s.serviceRepo.Update(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) SetServiceImage(db *gorm.DB, businessID, serviceID, imageURL string) (*models.Service, error) {
	service, err := s.getOwned(db, businessID, serviceID)
	if err != nil {
		return nil, err
	}

	service.ServiceImage = imageURL
	if err := s.serviceRepo.Update(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) DeleteService(db *gorm.DB, businessID, serviceID string) error {
	if _, err := s.getOwned(db, businessID, serviceID); err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(db, serviceID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) getOwned(db *gorm.DB, businessID, serviceID string) (*models.Service, error) {
	service, err := s.GetService(db, serviceID)
	if err != nil {
		return nil, err
	}
	if service.BusinessID != businessID {
		return nil, apperrors.ErrNotServiceOwner
	}
	return service, nil
}

func (s *CatalogServiceImpl) checkCategory(db *gorm.DB, categoryID string) error {
	if _, err := s.categoryRepo.FindByID(db, categoryID); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
