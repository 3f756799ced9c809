package integration_test

import (
	"net/http"
	"testing"

	"subtrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestAuth_RegisterAndLoginUser(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@test.com",
		"password": "password123",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register/user", "", registerBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"email":"alice@test.com"`)
	assert.NotContains(t, bodyStr, "password", "password hash must never leak")

	loginBody := map[string]interface{}{
		"email":    "alice@test.com",
		"password": "password123",
	}
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "access_token")
	assert.Contains(t, bodyStr, `"role":"user"`)
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"name":     "Bob",
		"email":    "bob@test.com",
		"password": "password123",
	}
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register/user", "", registerBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register/user", "", registerBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateAndLoginUser(t, ts, tx, "Carol", "carol@test.com", "password123", "user")

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-password",
	}
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuth_RegisterAndLoginBusiness(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"name":     "Acme Corp",
		"email":    "acme@test.com",
		"password": "password123",
		"phone":    "+77001112233",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register/business", "", registerBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	loginBody := map[string]interface{}{
		"email":    "acme@test.com",
		"password": "password123",
	}
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"role":"business"`)
}

func TestAuth_ProtectedRouteRequiresToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/subscriptions/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuth_MalformedTokenRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/subscriptions/my", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid or expired token")
}
