package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/RichardKnop/machinery/v1"

	"github.com/schoolhealth/monitor-api/external/cadence"
	"github.com/schoolhealth/monitor-api/logmodule"
	"github.com/schoolhealth/monitor-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SchoolCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server

	// workflow client
	cadenceClient *cadence.CadenceClient
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoStore store.MongoStore,
	jwtKey *rsa.PrivateKey,
	backgroundEnqueuer *machinery.Server,
	cadenceClient *cadence.CadenceClient) *Server {
	return &Server{
		store:         store.NewSchoolStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		background:    backgroundEnqueuer,
		cadenceClient: cadenceClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// api route other than `/auth` and registration will apply the
	// following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	symptomRoute := apiRoute.Group("/symptoms")
	{
		symptomRoute.GET("", s.getSymptoms)
		symptomRoute.POST("", s.createSymptom)
	}

	apiRoute.GET("/locations", s.getLocations)

	reportRoute := apiRoute.Group("/reports")
	reportRoute.Use(s.recognizeAccountMiddleware())
	{
		reportRoute.POST("", s.createHealthReport)
		reportRoute.GET("", s.listHealthReports)
		reportRoute.GET("/:reportID", s.getHealthReport)
		reportRoute.PATCH("/:reportID", s.adminOnlyMiddleware(), s.updateHealthReportStatus)
	}

	dashboardRoute := apiRoute.Group("/dashboard")
	dashboardRoute.Use(s.recognizeAccountMiddleware())
	dashboardRoute.Use(s.adminOnlyMiddleware())
	{
		dashboardRoute.GET("", s.dashboard)
		dashboardRoute.GET("/stats", s.dashboardStats)
		dashboardRoute.GET("/hotspots", s.dashboardHotspots)
		dashboardRoute.GET("/predictions", s.dashboardPredictions)
		dashboardRoute.GET("/bayesian", s.dashboardBayesian)
		dashboardRoute.GET("/risk-scores", s.dashboardRiskScores)
		dashboardRoute.GET("/report-summary", s.dashboardReportSummary)
	}

	actionRoute := apiRoute.Group("/actions")
	actionRoute.Use(s.recognizeAccountMiddleware())
	{
		actionRoute.GET("", s.listSuggestedActions)
		actionRoute.POST("", s.adminOnlyMiddleware(), s.createSuggestedAction)
		actionRoute.PATCH("/:actionID", s.adminOnlyMiddleware(), s.updateSuggestedActionStatus)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/total-reports", s.metricReportTotal)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "SchoolHealth 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
