package api

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/schoolhealth/monitor-api/schema"
	"github.com/schoolhealth/monitor-api/store"
	"github.com/schoolhealth/monitor-api/utils"
)

// createHealthReport is the API for a student to submit a symptom report
func (s *Server) createHealthReport(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Symptoms         []string              `json:"symptoms"`
		Severity         schema.Severity       `json:"severity"`
		DateOfOnset      time.Time             `json:"date_of_onset"`
		ConfirmedDisease bool                  `json:"confirmed_disease"`
		DiseaseName      string                `json:"disease_name"`
		Location         schema.ReportLocation `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !schema.KnownLocation(params.Location.Building, params.Location.Room) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownLocation)
		return
	}

	report := schema.HealthReport{
		StudentID:        account.AccountNumber,
		GradeLevel:       account.Profile.GradeLevel,
		Symptoms:         params.Symptoms,
		Severity:         params.Severity,
		DateOfOnset:      params.DateOfOnset,
		ConfirmedDisease: params.ConfirmedDisease,
		DiseaseName:      params.DiseaseName,
		Location:         params.Location,
		Timestamp:        time.Now().UTC(),
		Status:           schema.ReportStatusPending,
	}

	if err := s.mongoStore.SaveHealthReport(&report); err != nil {
		switch err {
		case schema.ErrInvalidSeverity, schema.ErrEmptySymptomList,
			schema.ErrMissingDiseaseName, schema.ErrMissingLocation,
			schema.ErrTimestampBeforeOnset:
			abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
				Code:    errorInvalidParameters.Code,
				Message: err.Error(),
			})
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	// wake the dashboard workflow so metrics catch up with the new report.
	// The context copy outlives the handler; gin recycles the original.
	go func(ctx *gin.Context) {
		if err := utils.TriggerDashboardRefresh(*s.cadenceClient, ctx); err != nil {
			sentry.CaptureException(err)
		}
	}(c.Copy())

	if report.ConfirmedDisease {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "broadcast_health_advisory",
			Args: []tasks.Arg{
				{Type: "string", Value: report.DiseaseName},
				{Type: "string", Value: report.Location.Building},
			},
		}); err != nil {
			c.Error(err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": report})
}

// listHealthReports is the API to browse reports, optionally narrowed by
// status or building
func (s *Server) listHealthReports(c *gin.Context) {
	filter := store.ReportFilter{
		Status:   schema.ReportStatus(c.Query("status")),
		Building: c.Query("building"),
	}

	reports, err := s.mongoStore.ListHealthReports(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (s *Server) getHealthReport(c *gin.Context) {
	report, err := s.mongoStore.GetHealthReport(c.Param("reportID"))
	if err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// updateHealthReportStatus moves a report along the review flow
func (s *Server) updateHealthReportStatus(c *gin.Context) {
	var params struct {
		Status schema.ReportStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	err := s.mongoStore.UpdateHealthReportStatus(c.Param("reportID"), params.Status)
	switch err {
	case nil:
	case store.ErrReportNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
		return
	case store.ErrInvalidStatusTransition:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatusTransition)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// metricReportTotal is served on the metric route for monitoring
func (s *Server) metricReportTotal(c *gin.Context) {
	counts, err := s.mongoStore.ReportStatusCounts()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	c.JSON(http.StatusOK, gin.H{
		"total_reports": total,
		"by_status":     counts,
	})
}
