package refresh

import (
	"os"
	"testing"
)

var testWorker *DashboardRefreshWorker

func TestMain(m *testing.M) {
	testWorker = NewDashboardRefreshWorker("test", nil)
	testWorker.Register()
	os.Exit(m.Run())
}
