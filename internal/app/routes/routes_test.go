package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/eamcet-predictor/internal/app/controllers"
	"github.com/yigit/eamcet-predictor/internal/app/models"
	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/app/repositories"
	"github.com/yigit/eamcet-predictor/internal/app/services"
	"github.com/yigit/eamcet-predictor/internal/middleware"
	"github.com/yigit/eamcet-predictor/internal/pkg/cache"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func testColleges() []*models.College {
	jnth := &models.College{
		ID: 1, Instcode: "JNTH", Name: "JNTU College of Engineering", Region: "OU", District: "HYD",
		Place: "Kukatpally", Affiliation: "JNTUH", Branch: "CSE", Tier: "Tier 1",
		AveragePackage: floatPtr(9.5), HighestPackage: floatPtr(40), PlacementDriveQuality: "Excellent",
	}
	jnth.Cutoffs.Set(models.Quota{Category: models.CategoryOC, Gender: models.GenderBoys}, intPtr(5000))
	jnth.Cutoffs.Set(models.Quota{Category: models.CategoryOC, Gender: models.GenderGirls}, intPtr(6000))

	cbit := &models.College{
		ID: 2, Instcode: "CBIT", Name: "Chaitanya Bharathi Institute of Technology", Region: "OU", District: "RRD",
		Place: "Gandipet", Affiliation: "OU", Branch: "CSE", Tier: "Tier 1",
		AveragePackage: floatPtr(9.1), PlacementDriveQuality: "Very Good",
	}
	cbit.Cutoffs.Set(models.Quota{Category: models.CategoryOC, Gender: models.GenderBoys}, intPtr(5400))

	return []*models.College{jnth, cbit}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := &repositories.Repositories{
		CollegeRepository: repositories.NewMemoryCollegeRepository(testColleges()...),
	}
	settings := services.DefaultSettings()
	analytics := services.NewAnalyticsService(repos.CollegeRepository, cache.NewMemoryCache(), settings)
	svcs := services.NewServices(repos, analytics, settings)

	router := gin.New()
	router.Use(middleware.RequestID())
	SetupRouter(router, &Controllers{
		Predictor:  controllers.NewPredictorController(svcs.Predictor),
		Calculator: controllers.NewCalculatorController(svcs.Calculator),
		College:    controllers.NewCollegeController(svcs.College),
		Analytics:  controllers.NewAnalyticsController(svcs.Analytics),
		Health:     controllers.NewHealthController(nil),
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPredictColleges(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "comma separated filters", body: `{"rank":4800,"branch":"CSE","category":"oc","gender":"boys"}`},
		{name: "array filters", body: `{"rank":4800,"branch":["CSE"],"category":["OC"],"gender":"male"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/predict-colleges", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var rows []dto.CollegeResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
			require.Len(t, rows, 2)
			assert.Equal(t, "CBIT", rows[0].Instcode)
			assert.Equal(t, "JNTH", rows[1].Instcode)
			assert.Equal(t, "oc_boys", rows[1].Category)
			require.NotNil(t, rows[1].PredictionTier)
			assert.Equal(t, "Reachable", *rows[1].PredictionTier)
		})
	}
}

func TestPredictColleges_EmptyRequestDumpsRecords(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/predict-colleges", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "division")
	assert.NotContains(t, rows[0], "probability")
}

func TestPredictColleges_NegativeRank(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/predict-colleges", `{"rank":-5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, "Rank must be a positive number", body.Details)
}

func TestPredictColleges_RejectsWrongFilterType(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/predict-colleges", `{"rank":100,"branch":42}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReverseCalculator(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/reverse-calculator",
		`{"instcode":"JNTH","branch":"CSE","category":"oc_boys","desiredProbability":90}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.ReverseCalculatorResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	// 5000 - (90-85)*5000/14
	assert.InDelta(t, 3214, res.RequiredRank, 1)

	missing := doJSON(t, router, http.MethodPost, "/api/reverse-calculator",
		`{"instcode":"NOPE","branch":"CSE","category":"oc_boys","desiredProbability":90}`)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Contains(t, missing.Body.String(), "College not found")
}

func TestLookupRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "search", path: "/api/search/by-name?query=jntu", wantStatus: http.StatusOK, wantBody: "JNTU College of Engineering"},
		{name: "search without query", path: "/api/search/by-name", wantStatus: http.StatusBadRequest, wantBody: "Bad Request"},
		{name: "college branches", path: "/api/colleges/JNTH/branches", wantStatus: http.StatusOK, wantBody: `["CSE"]`},
		{name: "branch availability", path: "/api/branches/availability?branch=CSE", wantStatus: http.StatusOK, wantBody: `"instcode":"CBIT"`},
		{name: "cutoff distribution", path: "/api/cutoff-distribution/JNTH/CSE", wantStatus: http.StatusOK, wantBody: `"oc_boys":5000`},
		{name: "cutoff distribution keeps nulls", path: "/api/cutoff-distribution/JNTH/CSE", wantStatus: http.StatusOK, wantBody: `"sc_boys":null`},
		{name: "similar colleges", path: "/api/similar-colleges/JNTH/CSE?category=oc_boys", wantStatus: http.StatusOK, wantBody: `"instcode":"CBIT"`},
		{name: "similar colleges without category", path: "/api/similar-colleges/JNTH/CSE", wantStatus: http.StatusBadRequest, wantBody: "category is required"},
		{name: "summary", path: "/api/analytics/summary", wantStatus: http.StatusOK, wantBody: `"totalColleges":2`},
		{name: "branches", path: "/api/analytics/branches", wantStatus: http.StatusOK, wantBody: `["CSE"]`},
		{name: "branch stats", path: "/api/analytics/branch-stats/CSE", wantStatus: http.StatusOK, wantBody: `"maxPackage":9.5`},
		{name: "placement rankings", path: "/api/rankings/by-placement?tier=Tier%201", wantStatus: http.StatusOK, wantBody: `"placementQuality":"Excellent"`},
		{name: "ping", path: "/ping", wantStatus: http.StatusOK, wantBody: "pong"},
		{name: "root", path: "/", wantStatus: http.StatusOK, wantBody: "running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHeadPing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodHead, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
