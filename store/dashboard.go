package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schoolhealth/monitor-api/schema"
	"github.com/schoolhealth/monitor-api/score"
)

const (
	// single cached document per deployment
	dashboardMetricID = "current"

	metricUpdateInterval = 5 * time.Minute
)

type Dashboard interface {
	CollectDashboardMetrics() (*schema.DashboardMetrics, error)
	CachedDashboardMetrics(maxAge time.Duration) (*schema.DashboardMetrics, error)
	SaveDashboardMetrics(metrics *schema.DashboardMetrics) error
}

// CollectDashboardMetrics recomputes the full dashboard bundle from one
// report snapshot. All panels of the result reconcile with each other.
func (m *mongoDB) CollectDashboardMetrics() (*schema.DashboardMetrics, error) {
	reports, err := m.CurrentReports()
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("load report snapshot")
		return nil, err
	}

	metrics := score.CalculateDashboard(reports, time.Now(), m.scoreCfg)

	log.WithFields(log.Fields{
		"prefix":          mongoLogPrefix,
		"report_count":    len(reports),
		"active_hotspots": metrics.Stats.ActiveHotspots,
	}).Debug("dashboard metrics collected")

	return metrics, nil
}

// CachedDashboardMetrics serves the stored bundle while it is younger than
// maxAge and recomputes it otherwise. A maxAge of zero always recomputes.
func (m *mongoDB) CachedDashboardMetrics(maxAge time.Duration) (*schema.DashboardMetrics, error) {
	if maxAge > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		c := m.client.Database(m.database)

		var cached struct {
			Metrics schema.DashboardMetrics `bson:"metrics"`
		}
		err := c.Collection(schema.DashboardMetricCollection).FindOne(ctx, bson.M{"_id": dashboardMetricID}).Decode(&cached)
		switch err {
		case nil:
			if time.Since(time.Unix(cached.Metrics.LastUpdate, 0)) < maxAge {
				return &cached.Metrics, nil
			}
		case mongo.ErrNoDocuments:
		default:
			return nil, err
		}
	}

	metrics, err := m.CollectDashboardMetrics()
	if err != nil {
		return nil, err
	}

	if err := m.SaveDashboardMetrics(metrics); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("save dashboard metrics")
	}

	return metrics, nil
}

func (m *mongoDB) SaveDashboardMetrics(metrics *schema.DashboardMetrics) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	_, err := c.Collection(schema.DashboardMetricCollection).UpdateOne(ctx,
		bson.M{"_id": dashboardMetricID},
		bson.M{"$set": bson.M{"metrics": metrics}},
		options.Update().SetUpsert(true),
	)

	return err
}
