// Package forecast projects a user's curriculum completion date from
// their checkpoint validation velocity. Everything here is a pure
// function of the current progression state; nothing is persisted.
package forecast

import (
	"fmt"
	"time"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/progress"
)

// MinValidations is the calibration gate: below this many validated
// checkpoints there is too little signal to project anything.
const MinValidations = 4

// UnreachableDays is the sentinel horizon used instead of dividing by
// a zero velocity.
const UnreachableDays = 999

// daysPerMonth is the fixed month length used for classification.
const daysPerMonth = 30

// Status classifies a forecast report.
type Status string

const (
	StatusCalibrating Status = "calibrating"
	StatusExcellent   Status = "excellent"
	StatusGood        Status = "good"
	StatusLate        Status = "late"
)

// Icon returns the display icon for a forecast status.
func (s Status) Icon() string {
	switch s {
	case StatusCalibrating:
		return "🧭"
	case StatusExcellent:
		return "🚀"
	case StatusGood:
		return "🎸"
	case StatusLate:
		return "🐢"
	default:
		return "?"
	}
}

// Label returns the display label for a forecast status.
func (s Status) Label() string {
	switch s {
	case StatusCalibrating:
		return "Calibrating"
	case StatusExcellent:
		return "Excellent pace"
	case StatusGood:
		return "Good pace"
	case StatusLate:
		return "Behind pace"
	default:
		return "Unknown"
	}
}

// ColorClass returns the theme color key for a forecast status.
func (s Status) ColorClass() string {
	switch s {
	case StatusCalibrating:
		return "muted"
	case StatusExcellent:
		return "success"
	case StatusGood:
		return "info"
	case StatusLate:
		return "warning"
	default:
		return "muted"
	}
}

// Report is the complete forecast view-model handed to rendering.
// Rendering treats it as read-only derived data.
type Report struct {
	Percent        int
	ValidatedCount int
	RemainingCount int

	PointsValidated int
	PointsRemaining int

	IsCalibrating  bool
	MinValidations int

	Velocity               float64 // points per day, 0 while calibrating
	ProjectedDaysRemaining int     // UnreachableDays when velocity is unusable
	ProjectedEndDate       time.Time
	ProjectedDateStr       string // "---" while calibrating

	Status     Status
	Message    string
	ColorClass string
	Icon       string

	DaysSinceStart      int
	DaysSinceLastAction int

	CurrentLessonTitle string
}

// Build derives a forecast report for the user at the given instant.
// It is total: empty catalogs, zero velocity, and missing history all
// produce fallback values, never errors.
func Build(u *progress.User, cat *curriculum.Catalog, now time.Time) Report {
	checkpoints := cat.Checkpoints()
	total := len(checkpoints)
	validated := len(u.Validated)

	r := Report{
		Percent:         u.Progression(cat),
		ValidatedCount:  validated,
		RemainingCount:  total - validated,
		PointsValidated: u.ValidatedPoints(cat),
		PointsRemaining: u.RemainingPoints(cat),
		MinValidations:  MinValidations,
		DaysSinceStart:  daysSince(u.StartDate, now),
	}

	r.DaysSinceLastAction = daysBetween(u.LastActionTime(), now)

	if lesson, err := cat.Lesson(u.ActiveLessonID); err == nil {
		r.CurrentLessonTitle = lesson.Title
	}

	if validated < MinValidations {
		r.IsCalibrating = true
		r.Status = StatusCalibrating
		r.ProjectedDateStr = "---"
		r.Message = fmt.Sprintf("Calibrating forecast: %d/%d validations", validated, MinValidations)
		r.applyDisplay()
		return r
	}

	r.Velocity = float64(r.PointsValidated) / float64(r.DaysSinceStart)
	if r.Velocity > 0 {
		r.ProjectedDaysRemaining = int(float64(r.PointsRemaining)/r.Velocity + 0.5)
	} else {
		r.ProjectedDaysRemaining = UnreachableDays
	}
	r.ProjectedEndDate = now.AddDate(0, 0, r.ProjectedDaysRemaining)
	r.ProjectedDateStr = r.ProjectedEndDate.Format("Jan 2, 2006")

	r.Status = classify(r.DaysSinceStart + r.ProjectedDaysRemaining)
	switch r.Status {
	case StatusExcellent:
		r.Message = fmt.Sprintf("On track to finish by %s. Keep it up!", r.ProjectedDateStr)
	case StatusGood:
		r.Message = fmt.Sprintf("Steady progress, projected finish %s.", r.ProjectedDateStr)
	case StatusLate:
		r.Message = fmt.Sprintf("Pace has slipped, projected finish %s.", r.ProjectedDateStr)
	}
	r.applyDisplay()
	return r
}

func (r *Report) applyDisplay() {
	r.Icon = r.Status.Icon()
	r.ColorClass = r.Status.ColorClass()
}

// classify maps the total projected duration, in days from start to
// projected finish, onto a pace band using fixed 30-day months.
func classify(totalDays int) Status {
	months := float64(totalDays) / daysPerMonth
	switch {
	case months <= 9:
		return StatusExcellent
	case months <= 15:
		return StatusGood
	default:
		return StatusLate
	}
}

// daysSince returns whole days from t to now, floored at 1 so velocity
// division is always defined.
func daysSince(t, now time.Time) int {
	d := daysBetween(t, now)
	if d < 1 {
		return 1
	}
	return d
}

func daysBetween(t, now time.Time) int {
	if now.Before(t) {
		return 0
	}
	return int(now.Sub(t).Hours() / 24)
}
