package services

import (
	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetCategory(db *gorm.DB, categoryID string) (*models.Category, error)
	ListCategories(db *gorm.DB) ([]models.Category, error)
	UpdateCategory(db *gorm.DB, categoryID string, req *dto.UpdateCategoryRequest) (*models.Category, error)
	SetCategoryImage(db *gorm.DB, categoryID, imageURL string) (*models.Category, error)
	DeleteCategory(db *gorm.DB, categoryID string) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Ranking:     req.Ranking,
	}
	if err := s.categoryRepo.Create(db, category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "category", "Category name already taken")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetCategory(db *gorm.DB, categoryID string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(db, categoryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) ListCategories(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) UpdateCategory(db *gorm.DB, categoryID string, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(db, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Ranking != nil {
		category.Ranking = *req.Ranking
	}

	if err := s.categoryRepo.Update(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) SetCategoryImage(db *gorm.DB, categoryID, imageURL string) (*models.Category, error) {
	category, err := s.GetCategory(db, categoryID)
	if err != nil {
		return nil, err
	}

	category.CategoryImage = imageURL
	if err := s.categoryRepo.Update(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) DeleteCategory(db *gorm.DB, categoryID string) error {
	if _, err := s.GetCategory(db, categoryID); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(db, categoryID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
