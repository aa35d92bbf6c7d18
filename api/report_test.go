package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/schoolhealth/monitor-api/api/mocks"
	"github.com/schoolhealth/monitor-api/external/cadence"
	"github.com/schoolhealth/monitor-api/schema"
)

func TestCreateHealthReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSchoolCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	viper.Set("cadence.conn", "127.0.0.1:7933")
	viper.Set("cadence.domain", "test")

	s := Server{
		store:         a,
		mongoStore:    m,
		cadenceClient: cadence.NewClient(),
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(studentAccount(), nil).Times(1)
	m.EXPECT().SaveHealthReport(gomock.Any()).DoAndReturn(
		func(report *schema.HealthReport) error {
			assert.Equal(t, "student-1", report.StudentID)
			assert.Equal(t, schema.ReportStatusPending, report.Status)
			return nil
		}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.createHealthReport)

	body := strings.NewReader(`{
		"symptoms": ["fever", "cough"],
		"severity": "moderate",
		"date_of_onset": "2026-03-09T08:00:00Z",
		"location": {"building": "Main Building", "room": "201"}
	}`)
	req := httptest.NewRequest("POST", "/", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.HealthReport `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "student-1", jResp.Result.StudentID)
	assert.Equal(t, []string{"fever", "cough"}, jResp.Result.Symptoms)
}

func TestCreateHealthReportUnknownLocation(t *testing.T) {
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
	router.POST("/", s.createHealthReport)

	body := strings.NewReader(`{
		"symptoms": ["fever"],
		"severity": "mild",
		"date_of_onset": "2026-03-09T08:00:00Z",
		"location": {"building": "Main Building", "room": "999"}
	}`)
	req := httptest.NewRequest("POST", "/", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorUnknownLocation.Code, jResp.Code)
}
