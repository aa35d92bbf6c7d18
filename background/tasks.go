package background

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/schoolhealth/monitor-api/external/pushgw"
	"github.com/schoolhealth/monitor-api/schema"
)

// BroadcastHealthAdvisory is a background job to warn the school community
// after a confirmed disease report comes in.
func (m *BackgroundManager) BroadcastHealthAdvisory(diseaseName, building string) error {
	return m.Broadcast(
		"Health Advisory",
		fmt.Sprintf("A case of %s has been confirmed in %s. Please follow the posted hygiene guidance.", diseaseName, building),
		map[string]interface{}{
			"notification_type": "HEALTH_ADVISORY",
			"disease_name":      diseaseName,
			"building":          building,
		},
	)
}

// RefreshDashboardMetrics is a background job to recompute and persist the
// dashboard bundle outside the request path.
func (m *BackgroundManager) RefreshDashboardMetrics() error {
	metrics, err := m.mongo.CollectDashboardMetrics()
	if err != nil {
		return err
	}

	if err := m.mongo.SaveDashboardMetrics(metrics); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":          "background",
		"active_hotspots": metrics.Stats.ActiveHotspots,
	}).Info("dashboard metrics refreshed")

	return nil
}

// RemindPendingActions is a background job to nag administrators about
// suggested actions that never left the pending state.
func (m *BackgroundManager) RemindPendingActions() error {
	actions, err := m.mongo.ListSuggestedActions()
	if err != nil {
		return err
	}

	pending := make([]string, 0)
	for _, a := range actions {
		if a.Status == schema.ActionStatusPending {
			pending = append(pending, a.Title)
		}
	}

	if len(pending) == 0 {
		return nil
	}

	return m.Broadcast(
		"Pending Interventions",
		fmt.Sprintf("%d suggested actions are still pending.", len(pending)),
		map[string]interface{}{
			"notification_type": "PENDING_ACTIONS",
			"titles":            pending,
		},
	)
}

// Broadcast delivers a push notification to every subscribed device.
func (m *BackgroundManager) Broadcast(title, body string, data map[string]interface{}) error {
	return m.pushgw.SendNotification(context.Background(), &pushgw.NotificationRequest{
		Title:   title,
		Body:    body,
		Data:    data,
		Channel: "important_alert",
	})
}
