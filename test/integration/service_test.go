package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"subtrack_backend/internal/models"
	"subtrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type serviceListPage struct {
	Items    []models.Service `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

func listServices(t *testing.T, ts *helpers.TestServer, tx *gorm.DB, query string) serviceListPage {
	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/services"+query, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var page serviceListPage
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &page))
	return page
}

func TestServiceCatalog_FilterByBusiness(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, businessA := helpers.CreateAndLoginBusiness(t, ts, tx)
	_, businessB := helpers.CreateAndLoginBusiness(t, ts, tx)
	helpers.CreateTestService(t, tx, businessA.ID, 9.99, 12)
	helpers.CreateTestService(t, tx, businessA.ID, 4.50, 6)
	helpers.CreateTestService(t, tx, businessB.ID, 20.00, 12)

	page := listServices(t, ts, tx, "?business_id="+businessA.ID)
	assert.Equal(t, int64(2), page.Total)
	for _, item := range page.Items {
		assert.Equal(t, businessA.ID, item.BusinessID)
	}
}

func TestServiceCatalog_FilterByStatusAndCategory(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	active := helpers.CreateTestService(t, tx, business.ID, 9.99, 12)
	inactive := helpers.CreateTestService(t, tx, business.ID, 3.00, 6)
	assert.NoError(t, tx.Model(inactive).Update("status", models.ServiceStatusInactive).Error)

	category := &models.Category{Name: fmt.Sprintf("Category %d", time.Now().UnixNano())}
	assert.NoError(t, tx.Create(category).Error)
	assert.NoError(t, tx.Model(active).Update("category_id", category.ID).Error)

	page := listServices(t, ts, tx, "?business_id="+business.ID+"&status=inactive")
	assert.Equal(t, int64(1), page.Total)
	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, inactive.ID, page.Items[0].ID)
		assert.Equal(t, models.ServiceStatusInactive, page.Items[0].Status)
	}

	page = listServices(t, ts, tx, "?category_id="+category.ID)
	assert.Equal(t, int64(1), page.Total)
	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, active.ID, page.Items[0].ID)
	}
}

func TestServiceCatalog_SearchByName(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, business := helpers.CreateAndLoginBusiness(t, ts, tx)
	service := helpers.CreateTestService(t, tx, business.ID, 9.99, 12)
	helpers.CreateTestService(t, tx, business.ID, 4.50, 6)

	page := listServices(t, ts, tx, "?search="+service.Name[len(service.Name)-12:])
	assert.Equal(t, int64(1), page.Total)
	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, service.ID, page.Items[0].ID)
	}
}
