package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schoolhealth/monitor-api/schema"
)

var (
	ErrActionNotFound = fmt.Errorf("suggested action not found")
)

type SuggestedAction interface {
	CreateSuggestedAction(action schema.SuggestedAction) (*schema.SuggestedAction, error)
	ListSuggestedActions() ([]schema.SuggestedAction, error)
	UpdateSuggestedActionStatus(id string, next schema.ActionStatus) error
}

// CreateSuggestedAction records an administrator intervention. New actions
// always start out pending.
func (m *mongoDB) CreateSuggestedAction(action schema.SuggestedAction) (*schema.SuggestedAction, error) {
	if action.Title == "" {
		return nil, errors.New("empty action title")
	}
	if !action.Priority.Valid() {
		return nil, errors.New("unknown action priority")
	}
	if !action.Type.Valid() {
		return nil, errors.New("unknown action type")
	}

	action.ID = uuid.New().String()
	action.Status = schema.ActionStatusPending
	if action.Timestamp.IsZero() {
		action.Timestamp = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	if _, err := c.Collection(schema.SuggestedActionCollection).InsertOne(ctx, &action); err != nil {
		return nil, err
	}

	return &action, nil
}

// ListSuggestedActions returns actions newest first.
func (m *mongoDB) ListSuggestedActions() ([]schema.SuggestedAction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	cursor, err := c.Collection(schema.SuggestedActionCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"ts": -1}))
	if err != nil {
		return nil, err
	}

	actions := make([]schema.SuggestedAction, 0)
	for cursor.Next(ctx) {
		var a schema.SuggestedAction
		if err := cursor.Decode(&a); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}

	return actions, nil
}

// UpdateSuggestedActionStatus moves an action forward. Completed actions
// never reopen.
func (m *mongoDB) UpdateSuggestedActionStatus(id string, next schema.ActionStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	var action schema.SuggestedAction
	if err := c.Collection(schema.SuggestedActionCollection).FindOne(ctx, bson.M{"id": id}).Decode(&action); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrActionNotFound
		}
		return err
	}

	if !action.Status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}

	result, err := c.Collection(schema.SuggestedActionCollection).UpdateOne(ctx,
		bson.M{"id": id, "status": action.Status},
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
