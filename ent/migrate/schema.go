// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "doc_version", Type: field.TypeInt},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "new_status", Type: field.TypeString},
		{Name: "unlocked_lesson_id", Type: field.TypeString, Nullable: true},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[4]},
			},
			{
				Name:    "submissionevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[5]},
			},
		},
	}
	// ValidationEventsColumns holds the columns for the "validation_events" table.
	ValidationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "validated", Type: field.TypeBool},
		{Name: "points_delta", Type: field.TypeInt, Default: 0},
		{Name: "graded_by", Type: field.TypeString, Nullable: true},
	}
	// ValidationEventsTable holds the schema information for the "validation_events" table.
	ValidationEventsTable = &schema.Table{
		Name:       "validation_events",
		Columns:    ValidationEventsColumns,
		PrimaryKey: []*schema.Column{ValidationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "validationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[1]},
			},
			{
				Name:    "validationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[2]},
			},
			{
				Name:    "validationevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[3]},
			},
			{
				Name:    "validationevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SnapshotsTable,
		SubmissionEventsTable,
		ValidationEventsTable,
	}
)

func init() {
}
