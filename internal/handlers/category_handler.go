package handlers

import (
	"net/http"

	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/middleware"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/services"
	"subtrack_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
	storage         storage.Storage
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService, store storage.Storage) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
		storage:         store,
	}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:categoryID", h.GetByID)

		admin := categories.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.POST("", h.Create)
			admin.PATCH("/:categoryID", h.Update)
			admin.POST("/:categoryID/image", h.UploadImage)
			admin.DELETE("/:categoryID", h.Delete)
		}
	}
}

// Create handles POST /categories (admin only).
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetByID handles GET /categories/:categoryID
func (h *CategoryHandler) GetByID(c *gin.Context) {
	category, err := h.categoryService.GetCategory(h.GetDB(c), c.Param("categoryID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Update handles PATCH /categories/:categoryID (admin only).
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(h.GetDB(c), c.Param("categoryID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// UploadImage handles POST /categories/:categoryID/image (admin only).
func (h *CategoryHandler) UploadImage(c *gin.Context) {
	url, err := saveImage(c, h.storage, "categories")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	category, err := h.categoryService.SetCategoryImage(h.GetDB(c), c.Param("categoryID"), url)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /categories/:categoryID (admin only).
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(h.GetDB(c), c.Param("categoryID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
