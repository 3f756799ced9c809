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

type BusinessHandler struct {
	*BaseHandler
	businessService services.BusinessService
	storage         storage.Storage
}

func NewBusinessHandler(base *BaseHandler, businessService services.BusinessService, store storage.Storage) *BusinessHandler {
	return &BusinessHandler{
		BaseHandler:     base,
		businessService: businessService,
		storage:         store,
	}
}

func (h *BusinessHandler) RegisterRoutes(r *gin.RouterGroup) {
	businesses := r.Group("/businesses")
	{
		businesses.GET("/:businessID", h.GetByID)

		me := businesses.Group("")
		me.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBusiness))
		{
			me.GET("/me", h.GetMe)
			me.PATCH("/me", h.UpdateMe)
			me.POST("/me/image", h.UploadProfileImage)
			me.DELETE("/me", h.DeleteMe)
		}
	}
}

// GetMe handles GET /businesses/me
func (h *BusinessHandler) GetMe(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetProfile(h.GetDB(c), businessID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

// GetByID handles GET /businesses/:businessID (public profile).
func (h *BusinessHandler) GetByID(c *gin.Context) {
	business, err := h.businessService.GetProfile(h.GetDB(c), c.Param("businessID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

// UpdateMe handles PATCH /businesses/me
func (h *BusinessHandler) UpdateMe(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateBusinessRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	business, err := h.businessService.UpdateProfile(h.GetDB(c), businessID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

// UploadProfileImage handles POST /businesses/me/image
func (h *BusinessHandler) UploadProfileImage(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	url, err := saveImage(c, h.storage, "businesses")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	business, err := h.businessService.SetProfileImage(h.GetDB(c), businessID, url)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

// DeleteMe handles DELETE /businesses/me
func (h *BusinessHandler) DeleteMe(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	if err := h.businessService.DeleteAccount(h.GetDB(c), businessID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
