package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot with real user state.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:       SnapshotVersion,
			CurrentUserID: "u-1",
			HiddenLessons: []string{"barre-checkpoint"},
			Users: []UserData{
				{
					ID:             "u-1",
					Name:           "Dana",
					Role:           "student",
					Points:         100,
					ActiveLessonID: "power-chords",
					Statuses:       map[string]string{"tuning-basics": "completed"},
					CreatedAt:      now.Format(time.RFC3339),
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != SnapshotVersion {
		t.Errorf("data.version = %d, want %d", snap.Data.Version, SnapshotVersion)
	}
	if snap.Data.CurrentUserID != "u-1" {
		t.Errorf("current user = %q, want u-1", snap.Data.CurrentUserID)
	}
	if len(snap.Data.Users) != 1 {
		t.Fatalf("users = %d, want 1", len(snap.Data.Users))
	}
	u := snap.Data.Users[0]
	if u.Points != 100 {
		t.Errorf("points = %d, want 100", u.Points)
	}
	if u.Statuses["tuning-basics"] != "completed" {
		t.Errorf("status = %q, want completed", u.Statuses["tuning-basics"])
	}
	if len(snap.Data.HiddenLessons) != 1 || snap.Data.HiddenLessons[0] != "barre-checkpoint" {
		t.Errorf("hidden lessons = %v, want [barre-checkpoint]", snap.Data.HiddenLessons)
	}
}

func TestSnapshotSaveAssignsSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap := &Snapshot{
		Timestamp: time.Now().UTC(),
		Data:      SnapshotData{Version: SnapshotVersion},
	}
	if err := repo.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	if snap.Sequence == 0 {
		t.Error("expected Save to assign a sequence number")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion, CurrentUserID: string(rune('a' + i))},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.CurrentUserID != "c" {
		t.Errorf("current user = %q, want c", snap.Data.CurrentUserID)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestValidationEventAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ValidationEventData{
		{UserID: "u-1", LessonID: "first-frets", Validated: true, PointsDelta: 50, GradedBy: "admin"},
		{UserID: "u-1", LessonID: "chord-changes-1", Validated: true, PointsDelta: 50, GradedBy: "admin"},
		{UserID: "u-2", LessonID: "first-frets", Validated: true, PointsDelta: 50, GradedBy: "admin"},
		{UserID: "u-1", LessonID: "chord-changes-1", Validated: false, PointsDelta: -50, GradedBy: "admin"},
	}
	for i, e := range events {
		if err := repo.AppendValidation(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	hist, err := repo.ValidationHistory(ctx, "u-1", QueryOpts{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("history length = %d, want 3", len(hist))
	}

	// Most recent first: the un-validate of chord-changes-1.
	if hist[0].LessonID != "chord-changes-1" || hist[0].Validated {
		t.Errorf("hist[0] = %+v, want un-validate of chord-changes-1", hist[0])
	}
	if hist[0].PointsDelta != -50 {
		t.Errorf("hist[0].PointsDelta = %d, want -50", hist[0].PointsDelta)
	}

	// Sequences strictly decreasing.
	for i := 1; i < len(hist); i++ {
		if hist[i].Sequence >= hist[i-1].Sequence {
			t.Errorf("sequence order broken at %d: %d >= %d", i, hist[i].Sequence, hist[i-1].Sequence)
		}
	}
}

func TestValidationHistoryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendValidation(ctx, ValidationEventData{
			UserID:      "u-1",
			LessonID:    "first-frets",
			Validated:   i%2 == 0,
			PointsDelta: 50,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	hist, err := repo.ValidationHistory(ctx, "u-1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 2 {
		t.Errorf("history length = %d, want 2", len(hist))
	}
}

func TestLastValidation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No events yet.
	_, ok, err := repo.LastValidation(ctx, "u-1")
	if err != nil {
		t.Fatalf("last validation (empty): %v", err)
	}
	if ok {
		t.Fatal("expected ok=false with no events")
	}

	err = repo.AppendValidation(ctx, ValidationEventData{
		UserID: "u-1", LessonID: "first-frets", Validated: true, PointsDelta: 50,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	ts, ok, err := repo.LastValidation(ctx, "u-1")
	if err != nil {
		t.Fatalf("last validation: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after append")
	}
	if ts.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestSubmissionEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSubmission(ctx, SubmissionEventData{
		SubmissionID:     "sub-1",
		UserID:           "u-1",
		LessonID:         "tuning-basics",
		NewStatus:        "completed",
		UnlockedLessonID: "reading-tab",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendSubmission(ctx, SubmissionEventData{
		SubmissionID: "sub-2",
		UserID:       "u-1",
		LessonID:     "first-frets",
		NewStatus:    "pending_review",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	subs, err := repo.Submissions(ctx, "u-1", QueryOpts{})
	if err != nil {
		t.Fatalf("submissions: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("submissions length = %d, want 2", len(subs))
	}
	if subs[0].SubmissionID != "sub-2" || subs[0].NewStatus != "pending_review" {
		t.Errorf("subs[0] = %+v, want sub-2 pending_review", subs[0])
	}
	if subs[1].UnlockedLessonID != "reading-tab" {
		t.Errorf("subs[1].UnlockedLessonID = %q, want reading-tab", subs[1].UnlockedLessonID)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "validation_events", "submission_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("query sqlite_master for %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestSnapshotLatestToleratesCorruptDocument(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Write a document whose users field no longer matches the schema.
	_, err := s.Client().Snapshot.Create().
		SetDocVersion(SnapshotVersion).
		SetSequence(1).
		SetTimestamp(time.Now()).
		SetData(map[string]any{
			"version": SnapshotVersion,
			"users":   "not-a-user-list",
		}).
		Save(ctx)
	if err != nil {
		t.Fatalf("save corrupt snapshot: %v", err)
	}

	// A corrupt document reads as no snapshot at all, so startup
	// reseeds instead of failing.
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot for corrupt document, got %+v", snap)
	}
}
