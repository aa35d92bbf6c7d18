package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schoolhealth/monitor-api/schema"
)

const (
	DuplicateKeyCode = 11000
)

var (
	ErrReportNotFound          = fmt.Errorf("health report not found")
	ErrInvalidStatusTransition = fmt.Errorf("status can not move backwards")
)

// ReportFilter narrows a report listing. Zero values mean no constraint.
type ReportFilter struct {
	Status   schema.ReportStatus
	Building string
}

type HealthReport interface {
	SaveHealthReport(report *schema.HealthReport) error
	GetHealthReport(id string) (*schema.HealthReport, error)
	ListHealthReports(filter ReportFilter) ([]schema.HealthReport, error)
	UpdateHealthReportStatus(id string, next schema.ReportStatus) error
	CurrentReports() ([]schema.HealthReport, error)
	ReportStatusCounts() (map[schema.ReportStatus]int, error)
	ReportingStudents(building, room string) ([]string, error)
}

// SaveHealthReport save a record instantly in database
func (m *mongoDB) SaveHealthReport(report *schema.HealthReport) error {
	if err := report.Valid(); err != nil {
		return err
	}

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.Status == "" {
		report.Status = schema.ReportStatusPending
	}
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	if _, err := c.Collection(schema.HealthReportCollection).InsertOne(ctx, *report); err != nil {
		if we, hasErr := err.(mongo.WriteException); hasErr {
			if 1 == len(we.WriteErrors) && DuplicateKeyCode == we.WriteErrors[0].Code {
				return nil
			}
		}
		return err
	}

	return nil
}

// ReportingStudents returns the distinct student accounts with a report in
// the given room.
func (m *mongoDB) ReportingStudents(building, room string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	values, err := c.Collection(schema.HealthReportCollection).Distinct(ctx, "student_id", bson.M{
		"location.building": building,
		"location.room":     room,
	})
	if err != nil {
		return nil, err
	}

	students := make([]string, 0, len(values))
	for _, v := range values {
		if student, ok := v.(string); ok {
			students = append(students, student)
		}
	}

	return students, nil
}

func (m *mongoDB) GetHealthReport(id string) (*schema.HealthReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	var report schema.HealthReport
	if err := c.Collection(schema.HealthReportCollection).FindOne(ctx, bson.M{"id": id}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &report, nil
}

// ListHealthReports returns reports newest first, optionally narrowed by
// status or building.
func (m *mongoDB) ListHealthReports(filter ReportFilter) ([]schema.HealthReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Building != "" {
		query["location.building"] = filter.Building
	}

	cursor, err := c.Collection(schema.HealthReportCollection).Find(ctx, query, options.Find().SetSort(bson.M{"ts": -1}))
	if err != nil {
		return nil, err
	}

	reports := make([]schema.HealthReport, 0)
	for cursor.Next(ctx) {
		var r schema.HealthReport
		if err := cursor.Decode(&r); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, nil
}

// UpdateHealthReportStatus moves a report along the review flow. A transition
// that would move the status backwards is rejected.
func (m *mongoDB) UpdateHealthReportStatus(id string, next schema.ReportStatus) error {
	report, err := m.GetHealthReport(id)
	if err != nil {
		return err
	}

	if !report.Status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	result, err := c.Collection(schema.HealthReportCollection).UpdateOne(ctx,
		bson.M{"id": id, "status": report.Status},
		bson.M{"$set": bson.M{"status": next}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrInvalidStatusTransition
	}

	return nil
}

// CurrentReports returns the full report snapshot in insertion-time order.
// Every dashboard figure is computed from one such snapshot.
func (m *mongoDB) CurrentReports() ([]schema.HealthReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	cursor, err := c.Collection(schema.HealthReportCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"ts": 1}))
	if err != nil {
		return nil, err
	}

	reports := make([]schema.HealthReport, 0)
	for cursor.Next(ctx) {
		var r schema.HealthReport
		if err := cursor.Decode(&r); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, nil
}

func (m *mongoDB) ReportStatusCounts() (map[schema.ReportStatus]int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.HealthReportCollection)

	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id": "$status",
				"count": bson.M{
					"$sum": 1,
				},
			},
		},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var aggItem struct {
		Status schema.ReportStatus `bson:"_id"`
		Count  int                 `bson:"count"`
	}
	result := make(map[schema.ReportStatus]int)
	for cursor.Next(ctx) {
		if err := cursor.Decode(&aggItem); err != nil {
			return nil, err
		}
		result[aggItem.Status] = aggItem.Count
	}

	return result, nil
}
