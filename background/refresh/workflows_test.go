package refresh

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/schoolhealth/monitor-api/external/cadence"
	"github.com/schoolhealth/monitor-api/schema"
)

var (
	mediumHotspotMetrics = &schema.DashboardMetrics{
		Stats: schema.DashboardStats{
			TotalReportsToday: 2,
			ActiveHotspots:    1,
		},
		Hotspots: []schema.HotspotData{
			{
				Building:    "Main Building",
				Room:        "201",
				ReportCount: 2,
				RiskLevel:   schema.RiskLevelMedium,
			},
		},
	}

	highHotspotMetrics = &schema.DashboardMetrics{
		Stats: schema.DashboardStats{
			TotalReportsToday: 4,
			ActiveHotspots:    1,
		},
		Hotspots: []schema.HotspotData{
			{
				Building:    "Main Building",
				Room:        "201",
				ReportCount: 4,
				RiskLevel:   schema.RiskLevelHigh,
			},
		},
	}
)

type DashboardWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env    *testsuite.TestWorkflowEnvironment
	worker *DashboardRefreshWorker
}

func (ts *DashboardWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.worker = testWorker
}

func (ts *DashboardWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

// TestDashboardRefreshWorkflowNormalRun tests a regular timer-driven run of
// `DashboardRefreshWorkflow` where no risk level escalates
func (ts *DashboardWorkflowTestSuite) TestDashboardRefreshWorkflowNormalRun() {
	ts.env.OnActivity(ts.worker.CollectDashboardMetricsActivity, mock.Anything).Return(
		func(ctx context.Context) (*schema.DashboardMetrics, error) {
			return mediumHotspotMetrics, nil
		})

	ts.env.OnActivity(ts.worker.SaveDashboardMetricsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, metrics schema.DashboardMetrics) error {
			ts.Equal(2, metrics.Stats.TotalReportsToday)
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.DashboardRefreshWorkflow, map[string]schema.RiskLevel(nil))

	ts.env.AssertNumberOfCalls(ts.T(), "CollectDashboardMetricsActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "SaveDashboardMetricsActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestDashboardRefreshWorkflowSignalRun tests `DashboardRefreshWorkflow`
// woken up by a report arrival signal before the timer fires
func (ts *DashboardWorkflowTestSuite) TestDashboardRefreshWorkflowSignalRun() {
	ts.env.OnActivity(ts.worker.CollectDashboardMetricsActivity, mock.Anything).Return(
		func(ctx context.Context) (*schema.DashboardMetrics, error) {
			return mediumHotspotMetrics, nil
		})

	ts.env.OnActivity(ts.worker.SaveDashboardMetricsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, metrics schema.DashboardMetrics) error {
			return nil
		})

	ts.env.RegisterDelayedCallback(func() {
		ts.env.SignalWorkflow(ReportArrivalSignal, nil)
	}, time.Second)

	ts.env.ExecuteWorkflow(ts.worker.DashboardRefreshWorkflow, map[string]schema.RiskLevel(nil))

	ts.env.AssertNumberOfCalls(ts.T(), "CollectDashboardMetricsActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "SaveDashboardMetricsActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestDashboardRefreshWorkflowEscalation validates that
// `NotifyRiskLevelChangeActivity` is triggered when a room moves up from the
// level recorded in the previous run
func (ts *DashboardWorkflowTestSuite) TestDashboardRefreshWorkflowEscalation() {
	ts.env.OnActivity(ts.worker.CollectDashboardMetricsActivity, mock.Anything).Return(
		func(ctx context.Context) (*schema.DashboardMetrics, error) {
			return highHotspotMetrics, nil
		})

	ts.env.OnActivity(ts.worker.SaveDashboardMetricsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, metrics schema.DashboardMetrics) error {
			return nil
		})

	ts.env.OnActivity(ts.worker.NotifyRiskLevelChangeActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, hotspots []schema.HotspotData) error {
			ts.Len(hotspots, 1)
			ts.Equal("Main Building", hotspots[0].Building)
			ts.Equal("201", hotspots[0].Room)
			ts.Equal(schema.RiskLevelHigh, hotspots[0].RiskLevel)
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.DashboardRefreshWorkflow, map[string]schema.RiskLevel{
		"Main Building/201": schema.RiskLevelMedium,
	})

	ts.env.AssertNumberOfCalls(ts.T(), "CollectDashboardMetricsActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "SaveDashboardMetricsActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "NotifyRiskLevelChangeActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestDashboardRefreshWorkflowNewHighHotspot validates that a room seen for
// the first time already past medium is reported right away
func (ts *DashboardWorkflowTestSuite) TestDashboardRefreshWorkflowNewHighHotspot() {
	ts.env.OnActivity(ts.worker.CollectDashboardMetricsActivity, mock.Anything).Return(
		func(ctx context.Context) (*schema.DashboardMetrics, error) {
			return highHotspotMetrics, nil
		})

	ts.env.OnActivity(ts.worker.SaveDashboardMetricsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, metrics schema.DashboardMetrics) error {
			return nil
		})

	ts.env.OnActivity(ts.worker.NotifyRiskLevelChangeActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, hotspots []schema.HotspotData) error {
			ts.Len(hotspots, 1)
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.DashboardRefreshWorkflow, map[string]schema.RiskLevel(nil))

	ts.env.AssertNumberOfCalls(ts.T(), "NotifyRiskLevelChangeActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestDashboardRefreshWorkflowCollectFailure tests that a failed collection
// skips the save but still continues as new
func (ts *DashboardWorkflowTestSuite) TestDashboardRefreshWorkflowCollectFailure() {
	ts.env.OnActivity(ts.worker.CollectDashboardMetricsActivity, mock.Anything).Return(
		func(ctx context.Context) (*schema.DashboardMetrics, error) {
			return nil, fmt.Errorf("mongo is unreachable")
		})

	ts.env.ExecuteWorkflow(ts.worker.DashboardRefreshWorkflow, map[string]schema.RiskLevel(nil))

	ts.env.AssertNumberOfCalls(ts.T(), "CollectDashboardMetricsActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func (ts *DashboardWorkflowTestSuite) TestEscalatedHotspots() {
	previous := map[string]schema.RiskLevel{
		"Main Building/201":    schema.RiskLevelMedium,
		"Science Wing/Lab-1":   schema.RiskLevelHigh,
		"Arts Center/401":      schema.RiskLevelLow,
		"Main Building/Closed": schema.RiskLevelCritical,
	}

	current := []schema.HotspotData{
		{Building: "Main Building", Room: "201", RiskLevel: schema.RiskLevelHigh},
		{Building: "Science Wing", Room: "Lab-1", RiskLevel: schema.RiskLevelHigh},
		{Building: "Arts Center", Room: "401", RiskLevel: schema.RiskLevelMedium},
		{Building: "Gymnasium", Room: "Gym-A", RiskLevel: schema.RiskLevelCritical},
		{Building: "Gymnasium", Room: "Gym-B", RiskLevel: schema.RiskLevelMedium},
	}

	escalated := escalatedHotspots(previous, current)
	ts.Len(escalated, 3)
	ts.Equal("201", escalated[0].Room)
	ts.Equal("401", escalated[1].Room)
	ts.Equal("Gym-A", escalated[2].Room)
}

func (ts *DashboardWorkflowTestSuite) TestHotspotLevels() {
	levels := hotspotLevels(highHotspotMetrics.Hotspots)
	ts.Len(levels, 1)
	ts.Equal(schema.RiskLevelHigh, levels["Main Building/201"])
}

func TestDashboardRefreshWorkflow(t *testing.T) {
	suite.Run(t, new(DashboardWorkflowTestSuite))
}
