package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testReport() HealthReport {
	onset := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return HealthReport{
		ID:          "rep-001",
		StudentID:   "student-001",
		GradeLevel:  "Grade 10",
		Symptoms:    []string{"fever", "cough"},
		Severity:    SeverityModerate,
		DateOfOnset: onset,
		Location:    ReportLocation{Building: "Main Building", Room: "201", SeatNumber: "A12"},
		Timestamp:   onset.Add(6 * time.Hour),
		Status:      ReportStatusPending,
	}
}

func TestHealthReportValid(t *testing.T) {
	r := testReport()
	assert.NoError(t, r.Valid())

	r = testReport()
	r.Severity = "fatal"
	assert.Equal(t, ErrInvalidSeverity, r.Valid())

	r = testReport()
	r.Symptoms = nil
	assert.Equal(t, ErrEmptySymptomList, r.Valid())

	r = testReport()
	r.ConfirmedDisease = true
	assert.Equal(t, ErrMissingDiseaseName, r.Valid())
	r.DiseaseName = "Influenza"
	assert.NoError(t, r.Valid())

	r = testReport()
	r.Location.Room = ""
	assert.Equal(t, ErrMissingLocation, r.Valid())

	r = testReport()
	r.Timestamp = r.DateOfOnset.Add(-time.Hour)
	assert.Equal(t, ErrTimestampBeforeOnset, r.Valid())
}

func TestReportStatusTransitions(t *testing.T) {
	assert.True(t, ReportStatusPending.CanTransitionTo(ReportStatusReviewed))
	assert.True(t, ReportStatusPending.CanTransitionTo(ReportStatusResolved))
	assert.True(t, ReportStatusReviewed.CanTransitionTo(ReportStatusResolved))

	assert.False(t, ReportStatusReviewed.CanTransitionTo(ReportStatusPending))
	assert.False(t, ReportStatusResolved.CanTransitionTo(ReportStatusPending))
	assert.False(t, ReportStatusResolved.CanTransitionTo(ReportStatusReviewed))
	assert.False(t, ReportStatusPending.CanTransitionTo(ReportStatusPending))
}

func TestActionStatusTransitions(t *testing.T) {
	assert.True(t, ActionStatusPending.CanTransitionTo(ActionStatusInProgress))
	assert.True(t, ActionStatusPending.CanTransitionTo(ActionStatusCompleted))
	assert.True(t, ActionStatusInProgress.CanTransitionTo(ActionStatusCompleted))

	assert.False(t, ActionStatusCompleted.CanTransitionTo(ActionStatusPending))
	assert.False(t, ActionStatusInProgress.CanTransitionTo(ActionStatusPending))
}

func TestKnownLocation(t *testing.T) {
	assert.True(t, KnownLocation("Main Building", "201"))
	assert.True(t, KnownLocation("Science Building", "Lab-1"))
	assert.False(t, KnownLocation("Main Building", "Lab-1"))
	assert.False(t, KnownLocation("Annex", "101"))
}
