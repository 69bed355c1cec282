package progress

import (
	"time"

	"github.com/fretwise/fretwise/internal/curriculum"
)

// Role determines what a user may see and do.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// IsValid reports whether the role is a known value.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// LessonStatus represents a lesson's position in a user's progression.
// Transitions only move forward: locked, active, then pending_review
// for a submitted practice lesson or completed directly.
type LessonStatus string

const (
	StatusLocked        LessonStatus = "locked"
	StatusActive        LessonStatus = "active"
	StatusPendingReview LessonStatus = "pending_review"
	StatusCompleted     LessonStatus = "completed"
)

// IsValid reports whether the status is a known value.
func (s LessonStatus) IsValid() bool {
	switch s {
	case StatusLocked, StatusActive, StatusPendingReview, StatusCompleted:
		return true
	}
	return false
}

// ValidationRecord is one entry in a user's grading history. Records
// are inserted when a checkpoint is validated and removed when it is
// un-validated, so the history stays 1:1 with the validated set.
type ValidationRecord struct {
	LessonID    string
	ValidatedAt time.Time
	Points      int
	GradedBy    string
}

// User holds one learner's progression state.
type User struct {
	ID        string
	Name      string
	Role      Role
	Points    int
	StartDate time.Time

	// ActiveLessonID is the lesson currently open in the player.
	ActiveLessonID string

	// Statuses tracks each lesson's state for this user. Lessons
	// absent from the map are locked.
	Statuses map[string]LessonStatus

	// Validated is the set of checkpoint lesson ids an admin has
	// graded as passed.
	Validated map[string]bool

	// History mirrors Validated, ordered by grading time.
	History []ValidationRecord

	// ExpandedModules is dashboard accordion state, nothing more.
	ExpandedModules map[string]bool
}

// Status returns the user's state for a lesson, defaulting to locked.
func (u *User) Status(lessonID string) LessonStatus {
	if st, ok := u.Statuses[lessonID]; ok {
		return st
	}
	return StatusLocked
}

// Progression derives the completion percentage from the validated
// set. It is never stored independently.
func (u *User) Progression(cat *curriculum.Catalog) int {
	total := cat.CheckpointCount()
	if total == 0 {
		return 0
	}
	return int(float64(len(u.Validated))/float64(total)*100 + 0.5)
}

// LastActionTime returns the most recent history entry's time, or the
// user's start date when the history is empty.
func (u *User) LastActionTime() time.Time {
	last := u.StartDate
	for _, rec := range u.History {
		if rec.ValidatedAt.After(last) {
			last = rec.ValidatedAt
		}
	}
	return last
}

// ValidatedPoints sums the difficulty weights of the user's validated
// checkpoints.
func (u *User) ValidatedPoints(cat *curriculum.Catalog) int {
	sum := 0
	for _, l := range cat.Checkpoints() {
		if u.Validated[l.ID] {
			sum += l.Points()
		}
	}
	return sum
}

// RemainingPoints sums the difficulty weights of the checkpoints the
// user has not yet validated.
func (u *User) RemainingPoints(cat *curriculum.Catalog) int {
	sum := 0
	for _, l := range cat.Checkpoints() {
		if !u.Validated[l.ID] {
			sum += l.Points()
		}
	}
	return sum
}
