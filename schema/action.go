package schema

import "time"

const SuggestedActionCollection = "suggestedAction"

type ActionPriority string

const (
	ActionPriorityLow      ActionPriority = "low"
	ActionPriorityMedium   ActionPriority = "medium"
	ActionPriorityHigh     ActionPriority = "high"
	ActionPriorityCritical ActionPriority = "critical"
)

type ActionType string

const (
	ActionTypeDisinfection ActionType = "disinfection"
	ActionTypeNotification ActionType = "notification"
	ActionTypeMonitoring   ActionType = "monitoring"
	ActionTypeClosure      ActionType = "closure"
)

type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "pending"
	ActionStatusInProgress ActionStatus = "in-progress"
	ActionStatusCompleted  ActionStatus = "completed"
)

// SuggestedAction is an administrator-managed intervention record. It is not
// computed by the analytics engine; only its status moves, forward only.
type SuggestedAction struct {
	ID                string         `json:"id" bson:"id"`
	Priority          ActionPriority `json:"priority" bson:"priority"`
	Type              ActionType     `json:"type" bson:"type"`
	Title             string         `json:"title" bson:"title"`
	Description       string         `json:"description" bson:"description"`
	AffectedLocations []string       `json:"affected_locations" bson:"affected_locations"`
	Timestamp         time.Time      `json:"ts" bson:"ts"`
	Status            ActionStatus   `json:"status" bson:"status"`
}

func (p ActionPriority) Valid() bool {
	switch p {
	case ActionPriorityLow, ActionPriorityMedium, ActionPriorityHigh, ActionPriorityCritical:
		return true
	}
	return false
}

func (t ActionType) Valid() bool {
	switch t {
	case ActionTypeDisinfection, ActionTypeNotification, ActionTypeMonitoring, ActionTypeClosure:
		return true
	}
	return false
}

// CanTransitionTo allows pending -> in-progress -> completed, or
// pending -> completed directly.
func (s ActionStatus) CanTransitionTo(next ActionStatus) bool {
	switch s {
	case ActionStatusPending:
		return next == ActionStatusInProgress || next == ActionStatusCompleted
	case ActionStatusInProgress:
		return next == ActionStatusCompleted
	default:
		return false
	}
}
