package refresh

import (
	"context"
	"fmt"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/schoolhealth/monitor-api/schema"
)

// CollectDashboardMetricsActivity recomputes the full dashboard bundle from
// the current report snapshot.
func (w *DashboardRefreshWorker) CollectDashboardMetricsActivity(ctx context.Context) (*schema.DashboardMetrics, error) {
	logger := activity.GetLogger(ctx)

	metrics, err := w.mongo.CollectDashboardMetrics()
	if err != nil {
		return nil, err
	}

	logger.Info("Dashboard metrics collected.",
		zap.Int("activeHotspots", metrics.Stats.ActiveHotspots),
		zap.Int("totalReportsToday", metrics.Stats.TotalReportsToday))

	return metrics, nil
}

func (w *DashboardRefreshWorker) SaveDashboardMetricsActivity(ctx context.Context, metrics schema.DashboardMetrics) error {
	return w.mongo.SaveDashboardMetrics(&metrics)
}

// NotifyRiskLevelChangeActivity warns the school community about rooms
// whose risk level moved up.
func (w *DashboardRefreshWorker) NotifyRiskLevelChangeActivity(ctx context.Context, hotspots []schema.HotspotData) error {
	logger := activity.GetLogger(ctx)
	if len(hotspots) == 0 {
		logger.Warn("Send notification without hotspots")
		return nil
	}

	for _, h := range hotspots {
		data := map[string]interface{}{
			"notification_type": "RISK_LEVEL_CHANGED",
			"building":          h.Building,
			"room":              h.Room,
			"risk_level":        h.RiskLevel,
		}

		if err := w.Background.Broadcast(
			"Risk Level Escalated",
			fmt.Sprintf("%s room %s is now at %s risk.", h.Building, h.Room, h.RiskLevel),
			data,
		); err != nil {
			return err
		}

		// follow up directly with the students who reported there
		students, err := w.mongo.ReportingStudents(h.Building, h.Room)
		if err != nil {
			return err
		}
		if len(students) == 0 {
			continue
		}

		if err := w.Background.NotifyAccounts(
			students,
			"Health Check Reminder",
			fmt.Sprintf("Risk in %s room %s has risen. Please update your symptom report.", h.Building, h.Room),
			data,
		); err != nil {
			return err
		}
	}

	return nil
}
