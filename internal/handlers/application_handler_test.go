package handlers

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobtrackr/internal/models"
	"github.com/justsurfingit/jobtrackr/internal/services"
	"github.com/justsurfingit/jobtrackr/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	h := NewApplicationHandler(services.NewApplicationService(db), services.NewStatsService(db), zap.NewNop())

	r := gin.New()
	r.GET("/health", HealthCheck)
	r.POST("/applications", h.CreateApplication)
	r.GET("/applications", h.ListApplications)
	r.PATCH("/applications/:id", h.UpdateStatus)
	r.DELETE("/applications/:id", h.DeleteApplication)
	r.POST("/applications/:id/restore", h.RestoreApplication)
	r.GET("/stats", h.Stats)
	return r, db
}

func createAcme(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"company":      "Acme",
		"role":         "Engineer",
		"date_applied": "2024-01-01",
	}, r, "/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return uint(resp["id"].(float64))
}

func TestHealthCheck(t *testing.T) {
	r, _ := setupRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/health", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["ok"])
}

func TestCreateApplication_Success(t *testing.T) {
	r, _ := setupRouter(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"company":          "Acme",
		"role":             "Engineer",
		"url":              "https://acme.dev/jobs/1",
		"date_applied":     "2024-01-01",
		"next_action_date": "2024-01-15",
	}, r, "/applications", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "applied", resp["status"])
	assert.Equal(t, "2024-01-01", resp["date_applied"])
	assert.Equal(t, "2024-01-15", resp["next_action_date"])
	assert.Equal(t, "https://acme.dev/jobs/1", resp["url"])
	assert.Nil(t, resp["location"])
	assert.Nil(t, resp["notes"])
	assert.Nil(t, resp["deleted_at"])
	assert.NotEmpty(t, resp["created_at"])
	assert.NotZero(t, resp["id"])
}

func TestCreateApplication_Validation(t *testing.T) {
	r, _ := setupRouter(t)

	tooLong := make([]byte, 201)
	for i := range tooLong {
		tooLong[i] = 'x'
	}

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing company", gin.H{"role": "Engineer", "date_applied": "2024-01-01"}},
		{"missing date", gin.H{"company": "Acme", "role": "Engineer"}},
		{"bad date", gin.H{"company": "Acme", "role": "Engineer", "date_applied": "01/02/2024"}},
		{"bad status", gin.H{"company": "Acme", "role": "Engineer", "date_applied": "2024-01-01", "status": "ghosted"}},
		{"company too long", gin.H{"company": string(tooLong), "role": "Engineer", "date_applied": "2024-01-01"}},
		{"bad next action date", gin.H{"company": "Acme", "role": "Engineer", "date_applied": "2024-01-01", "next_action_date": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := testutil.MakeJSONRequest(tt.body, r, "/applications", http.MethodPost)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, resp["error"], "Invalid request")
		})
	}
}

func TestListApplications_QueryValidation(t *testing.T) {
	r, _ := setupRouter(t)

	for _, qs := range []string{"limit=0", "limit=1001", "offset=-1", "sort_order=sideways", "status=ghosted", "has_link=maybe"} {
		rec, _ := testutil.MakeJSONRequest(nil, r, "/applications?"+qs, http.MethodGet)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, qs)
	}
}

func TestListApplications_Filters(t *testing.T) {
	r, db := setupRouter(t)
	applied, _ := models.ParseDate("2024-02-01")
	link := "https://jobs.lever.co/meta/112"
	rows := []models.Application{
		{Company: "Meta", Role: "Backend Developer", URL: &link, Status: models.StatusInterview, DateApplied: applied},
		{Company: "Zoom", Role: "QA Engineer", Status: models.StatusApplied, DateApplied: applied},
		{Company: "Canva", Role: "UX Designer", Status: models.StatusApplied, DateApplied: applied,
			DeletedAt: gorm.DeletedAt{Time: time.Now().UTC(), Valid: true}},
	}
	require.NoError(t, db.Create(&rows).Error)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/applications", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), resp["total"])

	rec, resp = testutil.MakeJSONRequest(nil, r, "/applications?has_link=true", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["total"])
	items := resp["items"].([]interface{})
	assert.Equal(t, "Meta", items[0].(map[string]interface{})["company"])

	rec, resp = testutil.MakeJSONRequest(nil, r, "/applications?q=engineer&status=applied", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["total"])

	rec, resp = testutil.MakeJSONRequest(nil, r, "/applications?include_deleted=true&limit=1", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), resp["total"])
	assert.Len(t, resp["items"], 1)
}

func TestUpdateStatus_Handler(t *testing.T) {
	r, _ := setupRouter(t)
	id := createAcme(t, r)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "interview"}, r, fmt.Sprintf("/applications/%d", id), http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "interview", resp["status"])

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "bogus"}, r, fmt.Sprintf("/applications/%d", id), http.MethodPatch)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "offer"}, r, "/applications/99999", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Application not found", resp["error"])

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "offer"}, r, "/applications/abc", http.MethodPatch)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteAndRestore_Handler(t *testing.T) {
	r, _ := setupRouter(t)
	id := createAcme(t, r)
	path := fmt.Sprintf("/applications/%d", id)

	rec, resp := testutil.MakeJSONRequest(gin.H{}, r, path+"/restore", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Application is not deleted", resp["error"])

	rec, resp = testutil.MakeJSONRequest(nil, r, path, http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, resp["deleted_at"])

	rec, _ = testutil.MakeJSONRequest(nil, r, path, http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "offer"}, r, path, http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, r, path+"/restore", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, resp["deleted_at"])

	rec, _ = testutil.MakeJSONRequest(nil, r, "/applications/99999/restore", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats_Handler(t *testing.T) {
	r, _ := setupRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/stats", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), resp["total"])
	assert.Equal(t, float64(0), resp["response_rate"])

	id := createAcme(t, r)
	createAcme(t, r)
	testutil.MakeJSONRequest(gin.H{"status": "rejected"}, r, fmt.Sprintf("/applications/%d", id), http.MethodPatch)

	rec, resp = testutil.MakeJSONRequest(nil, r, "/stats", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), resp["total"])
	assert.Equal(t, 0.5, resp["response_rate"])
	assert.Equal(t, map[string]interface{}{"applied": float64(1), "rejected": float64(1)}, resp["counts"])
	assert.Equal(t, float64(0), resp["saved_jobs"])
	assert.Equal(t, float64(0), resp["interviews"])
}
