package forecast

import (
	"fmt"
	"testing"
	"time"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/progress"
)

// checkpointCatalog builds a single-module catalog whose lessons are
// all checkpoints with the given difficulty weights.
func checkpointCatalog(t *testing.T, difficulties ...int) *curriculum.Catalog {
	t.Helper()
	lessons := make([]curriculum.Lesson, 0, len(difficulties))
	for i, d := range difficulties {
		lessons = append(lessons, curriculum.Lesson{
			ID:                 fmt.Sprintf("cp-%d", i+1),
			ModuleID:           "m1",
			Title:              fmt.Sprintf("Checkpoint %d", i+1),
			Type:               curriculum.TypePractice,
			ValidationRequired: true,
			Difficulty:         d,
		})
	}
	cat, err := curriculum.New([]curriculum.Module{
		{ID: "m1", Title: "Checkpoints", Lessons: lessons},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func testUser(start time.Time, validated ...string) *progress.User {
	u := &progress.User{
		ID:        "u-1",
		Name:      "Dana",
		Role:      progress.RoleStudent,
		StartDate: start,
		Statuses:  make(map[string]progress.LessonStatus),
		Validated: make(map[string]bool),
	}
	for _, id := range validated {
		u.Validated[id] = true
		u.History = append(u.History, progress.ValidationRecord{
			LessonID:    id,
			ValidatedAt: start,
			Points:      progress.PointsPerValidation,
		})
	}
	return u
}

func TestCalibrationBoundary(t *testing.T) {
	cat := checkpointCatalog(t, 1, 1, 1, 1, 1, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -10)

	three := Build(testUser(start, "cp-1", "cp-2", "cp-3"), cat, now)
	if !three.IsCalibrating {
		t.Error("3 validations: expected calibrating")
	}
	if three.Status != StatusCalibrating {
		t.Errorf("status = %s, want calibrating", three.Status)
	}
	if three.ProjectedDateStr != "---" {
		t.Errorf("projected date = %q, want ---", three.ProjectedDateStr)
	}
	if three.Message != "Calibrating forecast: 3/4 validations" {
		t.Errorf("message = %q", three.Message)
	}

	four := Build(testUser(start, "cp-1", "cp-2", "cp-3", "cp-4"), cat, now)
	if four.IsCalibrating {
		t.Error("4 validations: expected calibration done")
	}
	if four.ProjectedDateStr == "---" {
		t.Error("expected a concrete projected date")
	}
	if four.Velocity <= 0 {
		t.Errorf("velocity = %f, want > 0", four.Velocity)
	}
}

func TestCalibrationNeverSatisfiedWithFewCheckpoints(t *testing.T) {
	// Three checkpoints total: the gate can never be met.
	cat := checkpointCatalog(t, 1, 2, 3)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := testUser(now.AddDate(0, 0, -60), "cp-1", "cp-2", "cp-3")

	r := Build(u, cat, now)
	if !r.IsCalibrating {
		t.Error("expected permanent calibration with 3 total checkpoints")
	}
	if r.ProjectedDateStr != "---" {
		t.Errorf("projected date = %q, want ---", r.ProjectedDateStr)
	}
	if r.Percent != 100 {
		t.Errorf("percent = %d, want 100", r.Percent)
	}
}

func TestVelocityProjection(t *testing.T) {
	// Started 30 days ago, validated 10 points, 20 points remain:
	// velocity 10/30, projection 60 days out.
	cat := checkpointCatalog(t, 4, 3, 2, 1, 5, 5, 5, 5)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := testUser(now.AddDate(0, 0, -30), "cp-1", "cp-2", "cp-3", "cp-4")

	r := Build(u, cat, now)
	if r.PointsValidated != 10 {
		t.Errorf("points validated = %d, want 10", r.PointsValidated)
	}
	if r.PointsRemaining != 20 {
		t.Errorf("points remaining = %d, want 20", r.PointsRemaining)
	}
	if r.DaysSinceStart != 30 {
		t.Errorf("days since start = %d, want 30", r.DaysSinceStart)
	}
	if r.ProjectedDaysRemaining != 60 {
		t.Errorf("projected days = %d, want 60", r.ProjectedDaysRemaining)
	}
	wantDate := now.AddDate(0, 0, 60)
	if !r.ProjectedEndDate.Equal(wantDate) {
		t.Errorf("projected end = %v, want %v", r.ProjectedEndDate, wantDate)
	}
	// 90 total days is 3 months: excellent.
	if r.Status != StatusExcellent {
		t.Errorf("status = %s, want excellent", r.Status)
	}
}

func TestMonotonicProjection(t *testing.T) {
	// Same validated set and remaining points; the longer ago the
	// start, the lower the velocity, so the projection must never
	// shrink.
	cat := checkpointCatalog(t, 4, 3, 2, 1, 5, 5, 5, 5)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	prev := -1
	for _, daysAgo := range []int{10, 30, 90, 365} {
		u := testUser(now.AddDate(0, 0, -daysAgo), "cp-1", "cp-2", "cp-3", "cp-4")
		r := Build(u, cat, now)
		if r.ProjectedDaysRemaining < prev {
			t.Errorf("daysAgo=%d: projection %d shrank below %d", daysAgo, r.ProjectedDaysRemaining, prev)
		}
		prev = r.ProjectedDaysRemaining
	}
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		totalDays int
		want      Status
	}{
		{90, StatusExcellent},
		{270, StatusExcellent}, // exactly 9 months
		{271, StatusGood},
		{450, StatusGood}, // exactly 15 months
		{451, StatusLate},
		{UnreachableDays, StatusLate},
	}
	for _, tt := range tests {
		if got := classify(tt.totalDays); got != tt.want {
			t.Errorf("classify(%d) = %s, want %s", tt.totalDays, got, tt.want)
		}
	}
}

func TestDaysSinceStartFloorsAtOne(t *testing.T) {
	cat := checkpointCatalog(t, 1, 1, 1, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Brand-new user, validated everything within the first hours.
	u := testUser(now.Add(-2*time.Hour), "cp-1", "cp-2", "cp-3", "cp-4")
	r := Build(u, cat, now)
	if r.DaysSinceStart != 1 {
		t.Errorf("days since start = %d, want 1 (floored)", r.DaysSinceStart)
	}
	if r.Velocity != 4 {
		t.Errorf("velocity = %f, want 4", r.Velocity)
	}
}

func TestEmptyCatalog(t *testing.T) {
	cat, err := curriculum.New(nil)
	if err != nil {
		t.Fatalf("empty catalog: %v", err)
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := testUser(now.AddDate(0, 0, -5))

	r := Build(u, cat, now)
	if r.Percent != 0 {
		t.Errorf("percent = %d, want 0", r.Percent)
	}
	if !r.IsCalibrating {
		t.Error("expected calibrating with no checkpoints")
	}
}

func TestDaysSinceLastAction(t *testing.T) {
	cat := checkpointCatalog(t, 1, 1, 1, 1, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -20)

	// No history: falls back to start date.
	idle := testUser(start)
	if r := Build(idle, cat, now); r.DaysSinceLastAction != 20 {
		t.Errorf("days since last action = %d, want 20", r.DaysSinceLastAction)
	}

	// Most recent history entry wins.
	u := testUser(start, "cp-1")
	u.History[0].ValidatedAt = now.AddDate(0, 0, -3)
	if r := Build(u, cat, now); r.DaysSinceLastAction != 3 {
		t.Errorf("days since last action = %d, want 3", r.DaysSinceLastAction)
	}
}

func TestCurrentLessonTitle(t *testing.T) {
	cat := checkpointCatalog(t, 1, 1, 1, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := testUser(now.AddDate(0, 0, -5))
	u.ActiveLessonID = "cp-2"

	if r := Build(u, cat, now); r.CurrentLessonTitle != "Checkpoint 2" {
		t.Errorf("current lesson title = %q, want Checkpoint 2", r.CurrentLessonTitle)
	}
}

func TestStatusDisplayAccessors(t *testing.T) {
	for _, s := range []Status{StatusCalibrating, StatusExcellent, StatusGood, StatusLate} {
		if s.Icon() == "?" {
			t.Errorf("%s: missing icon", s)
		}
		if s.Label() == "Unknown" {
			t.Errorf("%s: missing label", s)
		}
		if s.ColorClass() == "" {
			t.Errorf("%s: missing color class", s)
		}
	}
}
