package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fretwise/fretwise/ent"
	"github.com/fretwise/fretwise/ent/submissionevent"
	"github.com/fretwise/fretwise/ent/validationevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendValidation(ctx context.Context, data ValidationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ValidationEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetLessonID(data.LessonID).
		SetValidated(data.Validated).
		SetPointsDelta(data.PointsDelta)

	if data.GradedBy != "" {
		builder = builder.SetGradedBy(data.GradedBy)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save validation event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetSubmissionID(data.SubmissionID).
		SetUserID(data.UserID).
		SetLessonID(data.LessonID).
		SetNewStatus(data.NewStatus)

	if data.UnlockedLessonID != "" {
		builder = builder.SetUnlockedLessonID(data.UnlockedLessonID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) ValidationHistory(ctx context.Context, userID string, opts QueryOpts) ([]ValidationRecord, error) {
	q := r.client.ValidationEvent.Query().
		Where(validationevent.UserID(userID))

	if opts.After > 0 {
		q = q.Where(validationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(validationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(validationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(validationevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Desc(validationevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query validation events: %w", err)
	}

	records := make([]ValidationRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ValidationRecord{
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
			UserID:      e.UserID,
			LessonID:    e.LessonID,
			Validated:   e.Validated,
			PointsDelta: e.PointsDelta,
			GradedBy:    e.GradedBy,
		})
	}
	return records, nil
}

func (r *eventRepo) LastValidation(ctx context.Context, userID string) (time.Time, bool, error) {
	e, err := r.client.ValidationEvent.Query().
		Where(validationevent.UserID(userID)).
		Order(ent.Desc(validationevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("query last validation: %w", err)
	}
	return e.Timestamp, true, nil
}

// Submissions returns a user's submission events, most recent first.
func (r *eventRepo) Submissions(ctx context.Context, userID string, opts QueryOpts) ([]SubmissionRecord, error) {
	q := r.client.SubmissionEvent.Query().
		Where(submissionevent.UserID(userID)).
		Order(ent.Desc(submissionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submission events: %w", err)
	}

	records := make([]SubmissionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SubmissionRecord{
			Sequence:         e.Sequence,
			Timestamp:        e.Timestamp,
			SubmissionID:     e.SubmissionID,
			UserID:           e.UserID,
			LessonID:         e.LessonID,
			NewStatus:        e.NewStatus,
			UnlockedLessonID: e.UnlockedLessonID,
		})
	}
	return records, nil
}
