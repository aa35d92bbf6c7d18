package refresh

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/schoolhealth/monitor-api/api/mocks"
	"github.com/schoolhealth/monitor-api/background"
	"github.com/schoolhealth/monitor-api/external/cadence"
	"github.com/schoolhealth/monitor-api/external/pushgw"
	"github.com/schoolhealth/monitor-api/schema"
)

type DashboardActivityTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env        *testsuite.TestActivityEnvironment
	worker     *DashboardRefreshWorker
	mockCtrl   *gomock.Controller
	mongoMock  *mocks.MockMongoStore
	pusherMock *mocks.MockPusher
}

func (ts *DashboardActivityTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
}

func (ts *DashboardActivityTestSuite) SetupTest() {
	ts.env = ts.NewTestActivityEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		BackgroundActivityContext: context.Background(),
		DataConverter:             cadence.NewMsgPackDataConverter(),
	})

	ts.mockCtrl = gomock.NewController(ts.T())
	ts.mongoMock = mocks.NewMockMongoStore(ts.mockCtrl)
	ts.pusherMock = mocks.NewMockPusher(ts.mockCtrl)

	testWorker.mongo = ts.mongoMock
	testWorker.Background = background.Background{Pushgw: ts.pusherMock}
	ts.worker = testWorker
}

func (ts *DashboardActivityTestSuite) TearDownTest() {
	ts.mockCtrl.Finish()
}

// TestCollectDashboardMetricsActivity tests `CollectDashboardMetricsActivity` in a normal way
func (ts *DashboardActivityTestSuite) TestCollectDashboardMetricsActivity() {
	ts.mongoMock.
		EXPECT().
		CollectDashboardMetrics().
		Return(highHotspotMetrics, nil)

	values, err := ts.env.ExecuteActivity(ts.worker.CollectDashboardMetricsActivity)
	ts.NoError(err)

	var metrics schema.DashboardMetrics
	err = values.Get(&metrics)
	ts.NoError(err)
	ts.Equal(4, metrics.Stats.TotalReportsToday)
	ts.Len(metrics.Hotspots, 1)
}

// TestCollectDashboardMetricsActivityWithError tests `CollectDashboardMetricsActivity` with error return
func (ts *DashboardActivityTestSuite) TestCollectDashboardMetricsActivityWithError() {
	ts.mongoMock.
		EXPECT().
		CollectDashboardMetrics().
		Return(nil, fmt.Errorf("can not collect metrics"))

	values, err := ts.env.ExecuteActivity(ts.worker.CollectDashboardMetricsActivity)
	ts.EqualError(err, "can not collect metrics")
	ts.Nil(values)
}

// TestSaveDashboardMetricsActivity tests `SaveDashboardMetricsActivity` in a normal way
func (ts *DashboardActivityTestSuite) TestSaveDashboardMetricsActivity() {
	ts.mongoMock.
		EXPECT().
		SaveDashboardMetrics(gomock.AssignableToTypeOf(&schema.DashboardMetrics{})).
		Return(nil)

	_, err := ts.env.ExecuteActivity(ts.worker.SaveDashboardMetricsActivity, *highHotspotMetrics)
	ts.NoError(err)
}

// TestNotifyRiskLevelChangeActivity tests a broadcast plus a targeted
// follow-up to the reporting students goes out for every escalated hotspot
func (ts *DashboardActivityTestSuite) TestNotifyRiskLevelChangeActivity() {
	ts.mongoMock.
		EXPECT().
		ReportingStudents(gomock.Eq("Main Building"), gomock.Eq("201")).
		Return([]string{"student-1", "student-2"}, nil)

	ts.pusherMock.
		EXPECT().
		SendNotification(gomock.Any(), gomock.AssignableToTypeOf(&pushgw.NotificationRequest{})).
		Return(nil).Times(2)

	_, err := ts.env.ExecuteActivity(ts.worker.NotifyRiskLevelChangeActivity, highHotspotMetrics.Hotspots)
	ts.NoError(err)
}

// TestNotifyRiskLevelChangeActivityNoReporters tests only the broadcast goes
// out when the escalated room has no reporting students on record
func (ts *DashboardActivityTestSuite) TestNotifyRiskLevelChangeActivityNoReporters() {
	ts.mongoMock.
		EXPECT().
		ReportingStudents(gomock.Eq("Main Building"), gomock.Eq("201")).
		Return([]string{}, nil)

	ts.pusherMock.
		EXPECT().
		SendNotification(gomock.Any(), gomock.AssignableToTypeOf(&pushgw.NotificationRequest{})).
		Return(nil).Times(1)

	_, err := ts.env.ExecuteActivity(ts.worker.NotifyRiskLevelChangeActivity, highHotspotMetrics.Hotspots)
	ts.NoError(err)
}

// TestNotifyRiskLevelChangeActivityWithoutHotspots tests no broadcast goes
// out when the hotspot list is empty
func (ts *DashboardActivityTestSuite) TestNotifyRiskLevelChangeActivityWithoutHotspots() {
	_, err := ts.env.ExecuteActivity(ts.worker.NotifyRiskLevelChangeActivity, []schema.HotspotData{})
	ts.NoError(err)
}

func TestDashboardActivity(t *testing.T) {
	suite.Run(t, new(DashboardActivityTestSuite))
}
