package handlers

import (
	"net/http"

	"subtrack_backend/internal/dto"
	"subtrack_backend/internal/middleware"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/services"
	"subtrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewTransactionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *TransactionHandler) RegisterRoutes(r *gin.RouterGroup) {
	transactions := r.Group("/transactions")
	transactions.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleUser))
	{
		transactions.GET("/my", h.ListMine)
	}
}

// ListMine handles GET /transactions/my. The billing sweep runs first, so a
// payment falling due right now shows up in the returned ledger. An empty
// ledger is reported as 404, matching the public API contract.
func (h *TransactionHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	transactions, err := h.subscriptionService.ListMyTransactions(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(transactions) == 0 {
		h.HandleServiceError(c, apperrors.ErrNoTransactions)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		resp = append(resp, dto.NewTransactionResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, resp)
}
