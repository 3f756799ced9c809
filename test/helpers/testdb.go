package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"subtrack_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password when it is not already a
// bcrypt hash. The raw password stays usable for a follow-up login.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && len(user.PasswordHash) < 60 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	return db.Create(user).Error
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, tx, user)
	assert.NoError(t, err, "creating a test user should not fail")

	token := login(t, ts, tx, email, password)
	return token, user
}

// CreateAndLoginBusiness creates a business account with a unique email and
// logs it in.
func CreateAndLoginBusiness(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Business) {
	email := fmt.Sprintf("business_%d@test.com", time.Now().UnixNano())
	password := "password123"

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	business := &models.Business{
		Name:         "Test Business Inc.",
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        "+77001234567",
	}
	err = tx.Create(business).Error
	assert.NoError(t, err, "creating a test business should not fail")

	token := login(t, ts, tx, email, password)
	return token, business
}

func login(t *testing.T, ts *TestServer, tx *gorm.DB, email, password string) string {
	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)
	return loginResponse.Token
}

// CreateTestService inserts a subscribable service for the business.
func CreateTestService(t *testing.T, tx *gorm.DB, businessID string, price float64, durationMonths int) *models.Service {
	service := &models.Service{
		Name:           fmt.Sprintf("Service %d", time.Now().UnixNano()),
		Description:    "Test service",
		Price:          price,
		DurationMonths: durationMonths,
		Status:         models.ServiceStatusActive,
		BusinessID:     businessID,
	}
	if err := tx.Create(service).Error; err != nil {
		t.Fatalf("failed to create test service: %v", err)
	}
	return service
}

// AddTestCard puts a payment card on file for the user.
func AddTestCard(t *testing.T, tx *gorm.DB, userID string) *models.Card {
	card := &models.Card{
		UserID:   userID,
		LastFour: "4242",
		Expiry:   "12/30",
		Brand:    "Visa",
	}
	if err := tx.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}
