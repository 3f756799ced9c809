package handlers

import (
	"net/http"

	"subtrack_backend/internal/billing"
	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/middleware"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/services"
	"subtrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
	clock               billing.Clock
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService, clock billing.Clock) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
		clock:               clock,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	subscriptions := r.Group("/subscriptions")
	subscriptions.Use(middleware.AuthMiddleware())
	{
		user := subscriptions.Group("")
		user.Use(middleware.RequireRoles(models.UserRoleUser))
		{
			user.POST("/:serviceID", h.Subscribe)
			user.GET("/my", h.ListMine)
			user.GET("/my/amount", h.MonthlyPayable)
		}

		admin := subscriptions.Group("")
		admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.DELETE("/cleanup_expired", h.CleanupExpired)
		}
	}
}

// Subscribe handles POST /subscriptions/:serviceID (user only).
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	sub, err := h.subscriptionService.Subscribe(h.GetDB(c), userID, c.Param("serviceID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSubscriptionResponse(sub))
}

// ListMine handles GET /subscriptions/my. Billing state is refreshed before
// the list is returned, so the countdowns are current as of this request.
// An empty list is reported as 404, matching the public API contract.
func (h *SubscriptionHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	subs, err := h.subscriptionService.ListMySubscriptions(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(subs) == 0 {
		h.HandleServiceError(c, apperrors.ErrNoSubscriptions)
		return
	}

	resp := make([]dto.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		resp = append(resp, dto.NewSubscriptionResponse(&subs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// MonthlyPayable handles GET /subscriptions/my/amount. Zero is a valid total
// and returns 200.
func (h *SubscriptionHandler) MonthlyPayable(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	total, err := h.subscriptionService.GetTotalMonthlyPayable(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyPayableResponse{MonthlyPayable: total})
}

// CleanupExpired handles DELETE /subscriptions/cleanup_expired (admin only).
// Deleting nothing is reported as 404, matching the public API contract.
func (h *SubscriptionHandler) CleanupExpired(c *gin.Context) {
	deleted, err := h.subscriptionService.CleanupExpired(h.GetDB(c), h.clock.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if deleted == 0 {
		h.HandleServiceError(c, apperrors.ErrNothingToClean)
		return
	}

	c.JSON(http.StatusOK, dto.CleanupResponse{Deleted: deleted})
}
