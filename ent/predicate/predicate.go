// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// SubmissionEvent is the predicate function for submissionevent builders.
type SubmissionEvent func(*sql.Selector)

// ValidationEvent is the predicate function for validationevent builders.
type ValidationEvent func(*sql.Selector)
