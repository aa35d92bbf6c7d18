package refresh

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/schoolhealth/monitor-api/schema"
)

const (
	DashboardRefreshInterval = 5 * time.Minute

	ReportArrivalSignal = "reportArrivalSignal"
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

var riskRank = map[schema.RiskLevel]int{
	schema.RiskLevelLow:      0,
	schema.RiskLevelMedium:   1,
	schema.RiskLevelHigh:     2,
	schema.RiskLevelCritical: 3,
}

// DashboardRefreshWorkflow periodically recomputes the dashboard bundle.
// A report arrival signal from the API server cancels the timer so the
// refresh happens right away. The hotspot risk levels of the previous run
// are carried through ContinueAsNew to detect escalations.
func (w *DashboardRefreshWorker) DashboardRefreshWorkflow(ctx workflow.Context, previous map[string]schema.RiskLevel) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, ReportArrivalSignal)
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, DashboardRefreshInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodic dashboard refresh")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger dashboard refresh by signal")
	})

	selector.Select(ctx)

	var metrics schema.DashboardMetrics
	err := workflow.ExecuteActivity(ctx, w.CollectDashboardMetricsActivity).Get(ctx, &metrics)
	if err != nil {
		logger.Error("Fail to collect dashboard metrics.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, w.DashboardRefreshWorkflow, previous)
	}

	if err := workflow.ExecuteActivity(ctx, w.SaveDashboardMetricsActivity, metrics).Get(ctx, nil); err != nil {
		logger.Error("Fail to save dashboard metrics.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, w.DashboardRefreshWorkflow, previous)
	}

	escalated := escalatedHotspots(previous, metrics.Hotspots)
	if len(escalated) > 0 {
		if err := workflow.ExecuteActivity(ctx, w.NotifyRiskLevelChangeActivity, escalated).Get(ctx, nil); err != nil {
			logger.Error("Fail to notify risk level escalation", zap.Error(err))
			sentry.CaptureException(err)
		}
	}

	return workflow.NewContinueAsNewError(ctx, w.DashboardRefreshWorkflow, hotspotLevels(metrics.Hotspots))
}

// escalatedHotspots returns the hotspots whose risk level moved up since
// the previous run. Rooms seen for the first time only count when they are
// already past medium.
func escalatedHotspots(previous map[string]schema.RiskLevel, hotspots []schema.HotspotData) []schema.HotspotData {
	escalated := make([]schema.HotspotData, 0)
	for _, h := range hotspots {
		key := h.Building + "/" + h.Room
		before, seen := previous[key]
		if !seen {
			if riskRank[h.RiskLevel] > riskRank[schema.RiskLevelMedium] {
				escalated = append(escalated, h)
			}
			continue
		}
		if riskRank[h.RiskLevel] > riskRank[before] {
			escalated = append(escalated, h)
		}
	}
	return escalated
}

func hotspotLevels(hotspots []schema.HotspotData) map[string]schema.RiskLevel {
	levels := make(map[string]schema.RiskLevel, len(hotspots))
	for _, h := range hotspots {
		levels[h.Building+"/"+h.Room] = h.RiskLevel
	}
	return levels
}
