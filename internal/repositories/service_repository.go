package repositories

import (
	"errors"

	"subtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceFilter narrows public catalog listings.
type ServiceFilter struct {
	CategoryID string
	BusinessID string
	Status     models.ServiceStatus
	Search     string
	Limit      int
	Offset     int
}

type ServiceRepository interface {
	Create(db *gorm.DB, service *models.Service) error
	FindByID(db *gorm.DB, id string) (*models.Service, error)
	FindWithFilter(db *gorm.DB, filter ServiceFilter) ([]models.Service, int64, error)
	Update(db *gorm.DB, service *models.Service) error
	Delete(db *gorm.DB, id string) error
}

type ServiceRepositoryImpl struct{}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{}
}

func (r *ServiceRepositoryImpl) Create(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

func (r *ServiceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.Preload("Business").Preload("Category").First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindWithFilter(db *gorm.DB, filter ServiceFilter) ([]models.Service, int64, error) {
	query := db.Model(&models.Service{})

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.BusinessID != "" {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var services []models.Service
	err := query.Preload("Business").Preload("Category").
		Order("tier ASC, created_at DESC").
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

func (r *ServiceRepositoryImpl) Update(db *gorm.DB, service *models.Service) error {
	return db.Save(service).Error
}

func (r *ServiceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Service{}, "id = ?", id).Error
}
