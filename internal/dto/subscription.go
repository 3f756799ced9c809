package dto

import (
	"time"

	"subtrack_backend/internal/models"
)

type SubscriptionResponse struct {
	ID                  string                    `json:"subscription_id"`
	ServiceID           string                    `json:"service_id"`
	ServiceName         string                    `json:"service_name"`
	BusinessName        string                    `json:"business_name,omitempty"`
	Price               float64                   `json:"price"`
	SubscriptionDate    time.Time                 `json:"subscription_date"`
	ExpiryDate          time.Time                 `json:"expiry_date"`
	Status              models.SubscriptionStatus `json:"status"`
	DaysTillNextPayment int                       `json:"days_till_next_payment"`
}

type MonthlyPayableResponse struct {
	MonthlyPayable float64 `json:"monthly_payable"`
}

type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

type TransactionResponse struct {
	ID             string                   `json:"transaction_id"`
	SubscriptionID string                   `json:"subscription_id"`
	Amount         float64                  `json:"amount"`
	Status         models.TransactionStatus `json:"status"`
	CardBrand      string                   `json:"card_brand"`
	CreatedAt      time.Time                `json:"created_at"`
}

// NewSubscriptionResponse flattens a preloaded subscription row.
func NewSubscriptionResponse(sub *models.Subscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:                  sub.ID,
		ServiceID:           sub.ServiceID,
		SubscriptionDate:    sub.SubscriptionDate,
		ExpiryDate:          sub.ExpiryDate,
		Status:              sub.Status,
		DaysTillNextPayment: sub.DaysTillNextPayment,
	}
	if sub.Service.ID != "" {
		resp.ServiceName = sub.Service.Name
		resp.Price = sub.Service.Price
		resp.BusinessName = sub.Service.Business.Name
	}
	return resp
}

// NewTransactionResponse flattens a transaction row.
func NewTransactionResponse(tr *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             tr.ID,
		SubscriptionID: tr.SubscriptionID,
		Amount:         tr.Amount,
		Status:         tr.Status,
		CardBrand:      tr.CardBrand,
		CreatedAt:      tr.CreatedAt,
	}
}
