package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subtrack_backend/internal/billing"
	"subtrack_backend/internal/models"
	"subtrack_backend/internal/services"
	"subtrack_backend/internal/validator"
	"subtrack_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubSubscriptionService struct {
	cleanupCalledAt time.Time
	cleanupDeleted  int64
}

func (s *stubSubscriptionService) Subscribe(db *gorm.DB, userID, serviceID string) (*models.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionService) ListMySubscriptions(db *gorm.DB, userID string) ([]models.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionService) ListMyTransactions(db *gorm.DB, userID string) ([]models.Transaction, error) {
	return nil, nil
}

func (s *stubSubscriptionService) GetTotalMonthlyPayable(db *gorm.DB, userID string) (float64, error) {
	return 0, nil
}

func (s *stubSubscriptionService) AdvanceBilling(db *gorm.DB, now time.Time) (*services.SweepStats, error) {
	return &services.SweepStats{}, nil
}

func (s *stubSubscriptionService) CleanupExpired(db *gorm.DB, now time.Time) (int64, error) {
	s.cleanupCalledAt = now
	return s.cleanupDeleted, nil
}

func newCleanupRouter(stub *stubSubscriptionService, clock billing.Clock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSubscriptionHandler(NewBaseHandler(validator.New()), stub, clock)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{})
	})
	r.DELETE("/subscriptions/cleanup_expired", h.CleanupExpired)
	return r
}

func TestCleanupExpiredUsesInjectedClock(t *testing.T) {
	instant := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	stub := &stubSubscriptionService{cleanupDeleted: 3}
	r := newCleanupRouter(stub, billing.FixedClock{Instant: instant})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/subscriptions/cleanup_expired", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":3`)
	assert.Equal(t, instant, stub.cleanupCalledAt)
}

func TestCleanupExpiredNothingToClean(t *testing.T) {
	stub := &stubSubscriptionService{}
	r := newCleanupRouter(stub, billing.FixedClock{Instant: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/subscriptions/cleanup_expired", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
