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

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	cardService services.CardService
	storage     storage.Storage
}

func NewUserHandler(base *BaseHandler, userService services.UserService, cardService services.CardService, store storage.Storage) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		cardService: cardService,
		storage:     store,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleUser, models.UserRoleAdmin))
	{
		users.GET("/me", h.GetMe)
		users.PATCH("/me", h.UpdateMe)
		users.POST("/me/image", h.UploadProfileImage)
		users.DELETE("/me", h.DeleteMe)

		users.POST("/me/card", h.AddCard)
		users.GET("/me/card", h.GetCard)
		users.DELETE("/me/card", h.DeleteCard)
	}
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PATCH /users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadProfileImage handles POST /users/me/image
func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	url, err := saveImage(c, h.storage, "users")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.SetProfileImage(h.GetDB(c), userID, url)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe handles DELETE /users/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// AddCard handles POST /users/me/card
func (h *UserHandler) AddCard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.AddCardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	card, err := h.cardService.AddCard(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GetCard handles GET /users/me/card
func (h *UserHandler) GetCard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// DeleteCard handles DELETE /users/me/card
func (h *UserHandler) DeleteCard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
}
