package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current snapshot document format. Snapshots
// written by older builds carry a lower doc_version; loading one
// migrates it forward, keeping only the per-user progression state.
const SnapshotVersion = 2

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ValidationRecordData is one entry in a user's validation history.
// Timestamps are stored as RFC 3339 strings so the snapshot JSON
// stays stable across encoder versions.
type ValidationRecordData struct {
	LessonID    string `json:"lesson_id"`
	ValidatedAt string `json:"validated_at"`
	Points      int    `json:"points"`
	GradedBy    string `json:"graded_by,omitempty"`
}

// UserData is the persisted form of a single user's progression state.
type UserData struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Role            string                 `json:"role"`
	Points          int                    `json:"points"`
	ActiveLessonID  string                 `json:"active_lesson_id,omitempty"`
	Statuses        map[string]string      `json:"statuses,omitempty"`
	History         []ValidationRecordData `json:"history,omitempty"`
	ExpandedModules []string               `json:"expanded_modules,omitempty"`
	CreatedAt       string                 `json:"created_at"`
}

// SnapshotData captures the full application state at a point in time:
// every user's progression plus catalog-level overrides.
type SnapshotData struct {
	Version       int        `json:"version"`
	CurrentUserID string     `json:"current_user_id,omitempty"`
	HiddenLessons []string   `json:"hidden_lessons,omitempty"`
	Users         []UserData `json:"users"`
}

// Snapshot represents a point-in-time capture of application state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages application state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot. It returns nil when no
	// snapshot exists or the stored document no longer decodes, so
	// callers fall back to the seed state.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ValidationEventData captures one grading action by an admin.
type ValidationEventData struct {
	UserID      string
	LessonID    string
	Validated   bool
	PointsDelta int
	GradedBy    string
}

// ValidationRecord is a stored validation event with its global order.
type ValidationRecord struct {
	Sequence    int64
	Timestamp   time.Time
	UserID      string
	LessonID    string
	Validated   bool
	PointsDelta int
	GradedBy    string
}

// SubmissionEventData captures one lesson hand-in from the player.
type SubmissionEventData struct {
	SubmissionID     string
	UserID           string
	LessonID         string
	NewStatus        string
	UnlockedLessonID string
}

// SubmissionRecord is a stored submission event with its global order.
type SubmissionRecord struct {
	Sequence         int64
	Timestamp        time.Time
	SubmissionID     string
	UserID           string
	LessonID         string
	NewStatus        string
	UnlockedLessonID string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendValidation records an admin grading action.
	AppendValidation(ctx context.Context, data ValidationEventData) error

	// AppendSubmission records a lesson submission from the player.
	AppendSubmission(ctx context.Context, data SubmissionEventData) error

	// ValidationHistory returns a user's validation events, most
	// recent first.
	ValidationHistory(ctx context.Context, userID string, opts QueryOpts) ([]ValidationRecord, error)

	// LastValidation returns the timestamp of a user's most recent
	// grading action. ok is false when the user has none.
	LastValidation(ctx context.Context, userID string) (t time.Time, ok bool, err error)

	// Submissions returns a user's submission events, most recent
	// first.
	Submissions(ctx context.Context, userID string, opts QueryOpts) ([]SubmissionRecord, error)
}
