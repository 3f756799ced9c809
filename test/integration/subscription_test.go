package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"subtrack_backend/internal/models"
	"subtrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestSubscription_SubscribeHappyPath(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 9.99, 12)

	token, user := helpers.CreateAndLoginUser(t, ts, tx, "Sub User", "sub_user@test.com", "password123", models.UserRoleUser)
	helpers.AddTestCard(t, tx, user.ID)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/subscriptions/"+service.ID, token, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var resp struct {
		ServiceID           string  `json:"service_id"`
		Price               float64 `json:"price"`
		Status              string  `json:"status"`
		DaysTillNextPayment int     `json:"days_till_next_payment"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.Equal(t, service.ID, resp.ServiceID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 30, resp.DaysTillNextPayment)

	// The first payment is taken eagerly at subscribe time.
	var transactions []models.Transaction
	assert.NoError(t, tx.Find(&transactions).Error)
	assert.Len(t, transactions, 1)
	assert.Equal(t, models.TransactionStatusComplete, transactions[0].Status)
	assert.Equal(t, 9.99, transactions[0].Amount)
	assert.Equal(t, "Visa", transactions[0].CardBrand)
}

func TestSubscription_RequiresCard(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 5.00, 6)

	token, _ := helpers.CreateAndLoginUser(t, ts, tx, "No Card", "no_card@test.com", "password123", models.UserRoleUser)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/subscriptions/"+service.ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	// Nothing was written.
	var count int64
	tx.Model(&models.Subscription{}).Count(&count)
	assert.Zero(t, count)
	tx.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubscription_DuplicateRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 7.50, 12)

	token, user := helpers.CreateAndLoginUser(t, ts, tx, "Dup User", "dup_user@test.com", "password123", models.UserRoleUser)
	helpers.AddTestCard(t, tx, user.ID)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/subscriptions/"+service.ID, token, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/subscriptions/"+service.ID, token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)

	// The failed attempt left no extra rows behind.
	var count int64
	tx.Model(&models.Subscription{}).Count(&count)
	assert.Equal(t, int64(1), count)
	tx.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubscription_InactiveServiceRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 3.00, 3)
	assert.NoError(t, tx.Model(service).Update("status", models.ServiceStatusInactive).Error)

	token, user := helpers.CreateAndLoginUser(t, ts, tx, "Inact User", "inact_user@test.com", "password123", models.UserRoleUser)
	helpers.AddTestCard(t, tx, user.ID)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/subscriptions/"+service.ID, token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestSubscription_EmptyListIs404(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginUser(t, ts, tx, "Lonely", "lonely@test.com", "password123", models.UserRoleUser)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/subscriptions/my", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "You don't have any subscriptions")
}

func TestSubscription_ListAndMonthlyPayable(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	serviceA := helpers.CreateTestService(t, tx, business.ID, 10.00, 12)
	serviceB := helpers.CreateTestService(t, tx, business.ID, 4.50, 6)

	token, user := helpers.CreateAndLoginUser(t, ts, tx, "Lister", "lister@test.com", "password123", models.UserRoleUser)
	helpers.AddTestCard(t, tx, user.ID)

	for _, svc := range []*models.Service{serviceA, serviceB} {
		res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/subscriptions/"+svc.ID, token, nil)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/subscriptions/my", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var list []map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Len(t, list, 2)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/subscriptions/my/amount", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var amount struct {
		MonthlyPayable float64 `json:"monthly_payable"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &amount))
	assert.InDelta(t, 14.50, amount.MonthlyPayable, 0.001)
}

func TestSubscription_CleanupExpired(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "Admin", "admin_cleanup@test.com", "adminpass123", models.UserRoleAdmin)

	// Nothing expired yet.
	res, bodyStr := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/subscriptions/cleanup_expired", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)

	// Plant one subscription whose expiry date is already in the past and one
	// still running.
	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 2.00, 1)
	_, userA := helpers.CreateAndLoginUser(t, ts, tx, "Expired", "expired@test.com", "password123", models.UserRoleUser)
	_, userB := helpers.CreateAndLoginUser(t, ts, tx, "Current", "current@test.com", "password123", models.UserRoleUser)

	now := time.Now().UTC()
	expired := &models.Subscription{
		UserID:              userA.ID,
		ServiceID:           service.ID,
		SubscriptionDate:    now.AddDate(0, -2, 0),
		ExpiryDate:          now.AddDate(0, -1, 0),
		Status:              models.SubscriptionStatusActive,
		DaysTillNextPayment: 0,
	}
	assert.NoError(t, tx.Create(expired).Error)

	current := &models.Subscription{
		UserID:              userB.ID,
		ServiceID:           service.ID,
		SubscriptionDate:    now,
		ExpiryDate:          now.AddDate(0, 1, 0),
		Status:              models.SubscriptionStatusActive,
		DaysTillNextPayment: 30,
	}
	assert.NoError(t, tx.Create(current).Error)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/subscriptions/cleanup_expired", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"deleted":1`)

	var remaining []models.Subscription
	assert.NoError(t, tx.Find(&remaining).Error)
	assert.Len(t, remaining, 1)
	assert.Equal(t, current.ID, remaining[0].ID)

	// Idempotent: a second run has nothing left to delete.
	res, _ = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/subscriptions/cleanup_expired", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSubscription_CleanupForbiddenForUsers(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginUser(t, ts, tx, "Plain", "plain@test.com", "password123", models.UserRoleUser)

	res, _ := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/subscriptions/cleanup_expired", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
