package schema

import (
	"errors"
	"time"
)

const HealthReportCollection = "healthReport"

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusResolved ReportStatus = "resolved"
)

var (
	ErrInvalidSeverity      = errors.New("severity is not one of mild, moderate or severe")
	ErrEmptySymptomList     = errors.New("a report needs at least one symptom")
	ErrMissingDiseaseName   = errors.New("confirmed disease without a disease name")
	ErrMissingLocation      = errors.New("report location needs a building and a room")
	ErrTimestampBeforeOnset = errors.New("submission timestamp is before the date of onset")
)

// ReportLocation is the physical place a report points at. Seat is optional.
type ReportLocation struct {
	Building   string `json:"building" bson:"building"`
	Room       string `json:"room" bson:"room"`
	SeatNumber string `json:"seat_number,omitempty" bson:"seat_number,omitempty"`
}

// LocationKey identifies a physical cluster of reports. It is derived from
// a report location and never stored.
type LocationKey struct {
	Building string
	Room     string
}

func (l ReportLocation) Key() LocationKey {
	return LocationKey{Building: l.Building, Room: l.Room}
}

// HealthReport is a single symptom report submitted by a student. Reports are
// append-only; the only mutable field is Status and it moves forward only.
type HealthReport struct {
	ID               string         `json:"id" bson:"id"`
	StudentID        string         `json:"student_id" bson:"student_id"`
	GradeLevel       string         `json:"grade_level" bson:"grade_level"`
	Symptoms         []string       `json:"symptoms" bson:"symptoms"`
	Severity         Severity       `json:"severity" bson:"severity"`
	DateOfOnset      time.Time      `json:"date_of_onset" bson:"date_of_onset"`
	ConfirmedDisease bool           `json:"confirmed_disease" bson:"confirmed_disease"`
	DiseaseName      string         `json:"disease_name,omitempty" bson:"disease_name,omitempty"`
	Location         ReportLocation `json:"location" bson:"location"`
	Timestamp        time.Time      `json:"ts" bson:"ts"`
	Status           ReportStatus   `json:"status" bson:"status"`
}

// Valid rejects structurally broken reports at ingestion so that the
// analytics functions can assume validated input.
func (r HealthReport) Valid() error {
	switch r.Severity {
	case SeverityMild, SeverityModerate, SeveritySevere:
	default:
		return ErrInvalidSeverity
	}

	if len(r.Symptoms) == 0 {
		return ErrEmptySymptomList
	}

	if r.ConfirmedDisease && r.DiseaseName == "" {
		return ErrMissingDiseaseName
	}

	if r.Location.Building == "" || r.Location.Room == "" {
		return ErrMissingLocation
	}

	if !r.Timestamp.IsZero() && r.Timestamp.Before(r.DateOfOnset) {
		return ErrTimestampBeforeOnset
	}

	return nil
}

// CanTransitionTo tells whether a status change is allowed. Reports move
// pending -> reviewed -> resolved, or pending -> resolved directly, and
// never regress.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	switch s {
	case ReportStatusPending:
		return next == ReportStatusReviewed || next == ReportStatusResolved
	case ReportStatusReviewed:
		return next == ReportStatusResolved
	default:
		return false
	}
}
