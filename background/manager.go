package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/schoolhealth/monitor-api/external/pushgw"
	"github.com/schoolhealth/monitor-api/score"
	"github.com/schoolhealth/monitor-api/store"
)

// BackgroundManager is a struct for the school health background manager
type BackgroundManager struct {
	store store.SchoolCore

	mongo store.MongoStore

	pushgw pushgw.Pusher

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	scoreCfg, err := score.ConfigFromViper()
	if err != nil {
		panic(err)
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		scoreCfg,
	)

	p := pushgw.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	}, viper.GetString("pushgw.key"), viper.GetString("pushgw.endpoint"))

	return &BackgroundManager{
		store:      store.NewSchoolStore(ormDB, mongoStore),
		mongo:      mongoStore,
		pushgw:     p,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("schoolhealth-worker", 5)
	return m.worker.Launch()
}
