package handlers

import (
	"net/http"

	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/middleware"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/repositories"
	"subtrack_backend/internal/services"
	"subtrack_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	*BaseHandler
	catalogService services.CatalogService
	voteService    services.VoteService
	storage        storage.Storage
}

func NewServiceHandler(base *BaseHandler, catalogService services.CatalogService, voteService services.VoteService, store storage.Storage) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		catalogService: catalogService,
		voteService:    voteService,
		storage:        store,
	}
}

func (h *ServiceHandler) RegisterRoutes(r *gin.RouterGroup) {
	servicesGroup := r.Group("/services")
	{
		servicesGroup.GET("", h.List)
		servicesGroup.GET("/:serviceID", h.GetByID)
		servicesGroup.GET("/:serviceID/votes", h.CountVotes)

		owner := servicesGroup.Group("")
		owner.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBusiness))
		{
			owner.POST("", h.Create)
			owner.PATCH("/:serviceID", h.Update)
			owner.POST("/:serviceID/image", h.UploadImage)
			owner.DELETE("/:serviceID", h.Delete)
		}

		voter := servicesGroup.Group("")
		voter.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleUser))
		{
			voter.POST("/:serviceID/vote", h.Vote)
			voter.DELETE("/:serviceID/vote", h.Unvote)
		}
	}
}

// Create handles POST /services (business only).
func (h *ServiceHandler) Create(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.catalogService.CreateService(h.GetDB(c), businessID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// List handles GET /services with optional filters.
func (h *ServiceHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	filter := repositories.ServiceFilter{
		Search: c.Query("search"),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		filter.CategoryID = categoryID
	}
	if businessID := c.Query("business_id"); businessID != "" {
		filter.BusinessID = businessID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = models.ServiceStatus(status)
	}

	items, total, err := h.catalogService.ListServices(h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetByID handles GET /services/:serviceID
func (h *ServiceHandler) GetByID(c *gin.Context) {
	service, err := h.catalogService.GetService(h.GetDB(c), c.Param("serviceID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// Update handles PATCH /services/:serviceID (owner only).
func (h *ServiceHandler) Update(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.catalogService.UpdateService(h.GetDB(c), businessID, c.Param("serviceID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// UploadImage handles POST /services/:serviceID/image (owner only).
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	url, err := saveImage(c, h.storage, "services")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	service, err := h.catalogService.SetServiceImage(h.GetDB(c), businessID, c.Param("serviceID"), url)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// Delete handles DELETE /services/:serviceID (owner only).
func (h *ServiceHandler) Delete(c *gin.Context) {
	businessID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(h.GetDB(c), businessID, c.Param("serviceID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// Vote handles POST /services/:serviceID/vote (user only).
func (h *ServiceHandler) Vote(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	if err := h.voteService.Vote(h.GetDB(c), userID, c.Param("serviceID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vote recorded"})
}

// Unvote handles DELETE /services/:serviceID/vote (user only).
func (h *ServiceHandler) Unvote(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	if err := h.voteService.Unvote(h.GetDB(c), userID, c.Param("serviceID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote removed"})
}

// CountVotes handles GET /services/:serviceID/votes
func (h *ServiceHandler) CountVotes(c *gin.Context) {
	count, err := h.voteService.CountVotes(h.GetDB(c), c.Param("serviceID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": count})
}
