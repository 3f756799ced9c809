package handlers

import (
	"net/http"

	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register/user", h.RegisterUser)
		auth.POST("/register/business", h.RegisterBusiness)
		auth.POST("/login", h.Login)
	}
}

// RegisterUser handles POST /auth/register/user
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.RegisterUser(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// RegisterBusiness handles POST /auth/register/business
func (h *AuthHandler) RegisterBusiness(c *gin.Context) {
	var req dto.RegisterBusinessRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	business, err := h.authService.RegisterBusiness(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, business)
}

// Login handles POST /auth/login for users and businesses alike.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
