package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/schoolhealth/monitor-api/schema"
)

// cachedMetrics loads the dashboard bundle, recomputing it when the stored
// copy is stale. All dashboard endpoints slice the same bundle so the
// figures they serve always reconcile.
func (s *Server) cachedMetrics(c *gin.Context) *schema.DashboardMetrics {
	maxAge := viper.GetDuration("dashboard.cache_max_age")
	if maxAge == 0 {
		maxAge = 5 * time.Minute
	}

	metrics, err := s.mongoStore.CachedDashboardMetrics(maxAge)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorDashboardMetrics, err)
		return nil
	}

	return metrics
}

func (s *Server) dashboard(c *gin.Context) {
	metrics := s.cachedMetrics(c)
	if metrics == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": metrics})
}

func (s *Server) dashboardStats(c *gin.Context) {
	metrics := s.cachedMetrics(c)
	if metrics == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":       metrics.Stats,
		"last_update": metrics.LastUpdate,
	})
}

func (s *Server) dashboardHotspots(c *gin.Context) {
	metrics := s.cachedMetrics(c)
	if metrics == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotspots": metrics.Hotspots})
}

func (s *Server) dashboardPredictions(c *gin.Context) {
	metrics := s.cachedMetrics(c)
	if metrics == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": metrics.Predictions})
}

func (s *Server) dashboardBayesian(c *gin.Context) {
	metrics := s.cachedMetrics(c)
	if metrics == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{"bayesian": metrics.Bayesian})
}

func (s *Server) dashboardRiskScores(c *gin.Context) {
	metrics := s.cachedMetrics(c)
	if metrics == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{"risk_scores": metrics.RiskScores})
}

func (s *Server) dashboardReportSummary(c *gin.Context) {
	counts, err := s.mongoStore.ReportStatusCounts()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": counts})
}
