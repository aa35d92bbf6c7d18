package refresh

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/schoolhealth/monitor-api/background"
	"github.com/schoolhealth/monitor-api/external/pushgw"
	"github.com/schoolhealth/monitor-api/store"
)

const TaskListName = "schoolhealth-dashboard-tasks"

type DashboardRefreshWorker struct {
	background.Background
	domain string
	mongo  store.MongoStore
}

func NewDashboardRefreshWorker(domain string, mongo store.MongoStore) *DashboardRefreshWorker {
	p := pushgw.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	}, viper.GetString("pushgw.key"), viper.GetString("pushgw.endpoint"))

	b := background.Background{Pushgw: p}
	return &DashboardRefreshWorker{
		Background: b,
		domain:     domain,
		mongo:      mongo,
	}
}

func (w *DashboardRefreshWorker) Register() {
	workflow.RegisterWithOptions(w.DashboardRefreshWorkflow, workflow.RegisterOptions{Name: "DashboardRefreshWorkflow"})

	activity.RegisterWithOptions(w.CollectDashboardMetricsActivity, activity.RegisterOptions{Name: "CollectDashboardMetricsActivity"})
	activity.RegisterWithOptions(w.SaveDashboardMetricsActivity, activity.RegisterOptions{Name: "SaveDashboardMetricsActivity"})
	activity.RegisterWithOptions(w.NotifyRiskLevelChangeActivity, activity.RegisterOptions{Name: "NotifyRiskLevelChangeActivity"})
}

func (w *DashboardRefreshWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		w.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
