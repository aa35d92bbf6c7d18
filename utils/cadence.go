package utils

import (
	"context"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/schoolhealth/monitor-api/external/cadence"
	"github.com/schoolhealth/monitor-api/schema"
)

// FIXME: there will be an import cycle if we use `github.com/schoolhealth/monitor-api/background/refresh`
const TaskListName = "schoolhealth-dashboard-tasks"

const (
	DashboardWorkflowID = "dashboard-refresh"
	ReportArrivalSignal = "reportArrivalSignal"
)

// TriggerDashboardRefresh is a helper function to send a signal to the
// dashboard workflow so metrics are recomputed ahead of schedule.
func TriggerDashboardRefresh(client cadence.CadenceClient, c context.Context) error {
	_, err := client.SignalWithStartWorkflow(c,
		DashboardWorkflowID, ReportArrivalSignal, nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           DashboardWorkflowID,
			TaskList:                     TaskListName,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "DashboardRefreshWorkflow", map[string]schema.RiskLevel(nil))
	return err
}
