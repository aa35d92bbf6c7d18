package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/schoolhealth/monitor-api/api/mocks"
	"github.com/schoolhealth/monitor-api/schema"
	"github.com/schoolhealth/monitor-api/store"
)

func adminAccount() *schema.Account {
	return &schema.Account{
		AccountNumber: "admin-1",
		Role:          schema.RoleAdmin,
	}
}

func studentAccount() *schema.Account {
	return &schema.Account{
		AccountNumber: "student-1",
		Role:          schema.RoleStudent,
	}
}

func TestDashboard(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSchoolCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(adminAccount(), nil).Times(1)
	m.EXPECT().CachedDashboardMetrics(gomock.Any()).Return(&schema.DashboardMetrics{
		Stats: schema.DashboardStats{
			TotalReportsToday: 4,
			ConfirmedCases:    1,
			SuspectedCases:    6,
			ActiveHotspots:    2,
		},
		LastUpdate: 1757400000,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.Use(s.adminOnlyMiddleware())
	router.GET("/", s.dashboard)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Dashboard schema.DashboardMetrics `json:"dashboard"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 4, jResp.Dashboard.Stats.TotalReportsToday)
	assert.Equal(t, int64(1757400000), jResp.Dashboard.LastUpdate)
}

func TestDashboardRejectsStudents(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSchoolCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(studentAccount(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.Use(s.adminOnlyMiddleware())
	router.GET("/", s.dashboard)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorAdminOnly.Code, jResp.Code)
}

func TestUpdateHealthReportStatusRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().UpdateHealthReportStatus("report-1", schema.ReportStatusPending).
		Return(store.ErrInvalidStatusTransition).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/:reportID", s.updateHealthReportStatus)

	body := strings.NewReader(`{"status":"pending"}`)
	req := httptest.NewRequest("PATCH", "/report-1", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorInvalidStatusTransition.Code, jResp.Code)
}

func TestReportSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().ReportStatusCounts().Return(map[schema.ReportStatus]int{
		schema.ReportStatusPending:  3,
		schema.ReportStatusReviewed: 2,
		schema.ReportStatusResolved: 5,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.dashboardReportSummary)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Summary map[schema.ReportStatus]int `json:"summary"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 3, jResp.Summary[schema.ReportStatusPending])
	assert.Equal(t, 5, jResp.Summary[schema.ReportStatusResolved])
}
