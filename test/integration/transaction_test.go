package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"subtrack_backend/internal/models"
	"subtrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_EmptyLedgerIs404(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginUser(t, ts, tx, "No Tx", "no_tx@test.com", "password123", models.UserRoleUser)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/transactions/my", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "No transactions found")
}

func TestTransaction_LedgerShowsFirstPayment(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 12.00, 12)

	token, user := helpers.CreateAndLoginUser(t, ts, tx, "Payer", "payer@test.com", "password123", models.UserRoleUser)
	helpers.AddTestCard(t, tx, user.ID)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/subscriptions/"+service.ID, token, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/transactions/my", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var ledger []struct {
		Amount    float64 `json:"amount"`
		Status    string  `json:"status"`
		CardBrand string  `json:"card_brand"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &ledger))
	assert.Len(t, ledger, 1)
	assert.Equal(t, 12.00, ledger[0].Amount)
	assert.Equal(t, "complete", ledger[0].Status)
	assert.Equal(t, "Visa", ledger[0].CardBrand)
}

func TestTransaction_LedgerHiddenFromOtherUsers(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 12.00, 12)

	tokenA, userA := helpers.CreateAndLoginUser(t, ts, tx, "Owner", "owner_tx@test.com", "password123", models.UserRoleUser)
	helpers.AddTestCard(t, tx, userA.ID)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/subscriptions/"+service.ID, tokenA, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	tokenB, _ := helpers.CreateAndLoginUser(t, ts, tx, "Other", "other_tx@test.com", "password123", models.UserRoleUser)
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/transactions/my", tokenB, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "another user's payments must not be visible")
}
