package player

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/progress"
	"github.com/fretwise/fretwise/internal/screen"
	"github.com/fretwise/fretwise/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	validations []store.ValidationEventData
	submissions []store.SubmissionEventData
}

func (m *mockEventRepo) AppendValidation(_ context.Context, data store.ValidationEventData) error {
	m.validations = append(m.validations, data)
	return nil
}
func (m *mockEventRepo) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	m.submissions = append(m.submissions, data)
	return nil
}
func (m *mockEventRepo) ValidationHistory(_ context.Context, _ string, _ store.QueryOpts) ([]store.ValidationRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LastValidation(_ context.Context, _ string) (time.Time, bool, error) {
	return time.Time{}, false, nil
}
func (m *mockEventRepo) Submissions(_ context.Context, _ string, _ store.QueryOpts) ([]store.SubmissionRecord, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testPlayer builds a player on the seeded catalog with the seeded
// student positioned on their first lesson.
func testPlayer(t *testing.T) (*PlayerScreen, *progress.Service, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()

	events := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	svc := progress.NewService(nil, curriculum.Default(), events)

	var student *progress.User
	for _, u := range svc.Users() {
		if u.Role == progress.RoleStudent {
			student = u
			break
		}
	}
	if student == nil {
		t.Fatal("seed state has no student")
	}

	s := New(svc, snapRepo, student.ID, student.ActiveLessonID)
	return s, svc, events, snapRepo
}

func TestPlayerScreen_Title(t *testing.T) {
	s, svc, _, _ := testPlayer(t)

	lesson, err := svc.Catalog().Lesson(s.lessonID)
	if err != nil {
		t.Fatalf("Lesson: %v", err)
	}
	if s.Title() != lesson.Title {
		t.Errorf("Title = %q, want %q", s.Title(), lesson.Title)
	}
}

func TestPlayerScreen_SubmitStartsRoundTrip(t *testing.T) {
	s, _, _, _ := testPlayer(t)

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a delayed command after submit")
	}
	if !s.inFlight {
		t.Error("expected submit to be in flight")
	}
}

func TestPlayerScreen_KeysIgnoredWhileInFlight(t *testing.T) {
	s, svc, events, _ := testPlayer(t)

	var scr screen.Screen = s
	scr.Update(specialKey(tea.KeyEnter))

	before := s.lessonID
	scr.Update(specialKey(tea.KeyEnter))
	scr.Update(keyPress('n'))
	scr.Update(specialKey(tea.KeyRight))

	if s.lessonID != before {
		t.Errorf("lesson changed to %s while in flight", s.lessonID)
	}
	if len(events.submissions) != 0 {
		t.Errorf("expected no submissions before the delay elapses, got %d", len(events.submissions))
	}

	u, err := svc.User(s.userID)
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if got := u.Status(before); got != progress.StatusActive {
		t.Errorf("lesson status = %s, want active while in flight", got)
	}
}

func TestPlayerScreen_SubmitCompletesAndUnlocks(t *testing.T) {
	s, svc, events, snapRepo := testPlayer(t)

	first := s.lessonID
	var scr screen.Screen = s
	scr.Update(specialKey(tea.KeyEnter))
	scr.Update(submitDoneMsg{lessonID: first})

	if s.inFlight {
		t.Error("expected in-flight flag cleared after completion")
	}

	u, err := svc.User(s.userID)
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if got := u.Status(first); got != progress.StatusCompleted {
		t.Errorf("lesson status = %s, want completed", got)
	}

	next, ok := svc.Catalog().Next(first)
	if !ok {
		t.Fatal("seed catalog has a single lesson")
	}
	if got := u.Status(next.ID); got != progress.StatusActive {
		t.Errorf("successor status = %s, want active", got)
	}

	if len(events.submissions) != 1 {
		t.Fatalf("expected 1 submission event, got %d", len(events.submissions))
	}
	if events.submissions[0].LessonID != first {
		t.Errorf("submission lesson = %s, want %s", events.submissions[0].LessonID, first)
	}
	if len(snapRepo.snapshots) == 0 {
		t.Error("expected a snapshot save after submit")
	}
	if s.notice == "" {
		t.Error("expected a notice after submit")
	}
}

func TestPlayerScreen_SubmitOnCompletedLessonRejected(t *testing.T) {
	s, _, events, _ := testPlayer(t)

	first := s.lessonID
	var scr screen.Screen = s
	scr.Update(specialKey(tea.KeyEnter))
	scr.Update(submitDoneMsg{lessonID: first})

	// Switch back is a no-op here; resubmitting the completed lesson
	// must not start another round trip.
	s.lessonID = first
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command when the lesson is not active")
	}
	if len(events.submissions) != 1 {
		t.Errorf("expected 1 submission event, got %d", len(events.submissions))
	}
}

func TestPlayerScreen_SwitchLessonStaysAccessible(t *testing.T) {
	s, svc, _, _ := testPlayer(t)

	// The accessible prefix runs through the first checkpoint, so a
	// fresh student can browse up to it but not past it.
	first := s.lessonID
	checkpoint, ok := svc.Catalog().FirstUnmetCheckpoint(nil, nil)
	if !ok {
		t.Fatal("seed catalog has no checkpoint")
	}

	var scr screen.Screen = s
	for i := 0; i < svc.Catalog().Position(checkpoint.ID); i++ {
		scr.Update(specialKey(tea.KeyRight))
	}
	if s.lessonID != checkpoint.ID {
		t.Fatalf("lesson after walking right = %s, want %s", s.lessonID, checkpoint.ID)
	}

	scr.Update(specialKey(tea.KeyRight))
	if s.lessonID != checkpoint.ID {
		t.Errorf("lesson moved past the unmet checkpoint to %s", s.lessonID)
	}

	scr.Update(specialKey(tea.KeyLeft))
	next, _ := svc.Catalog().Next(first)
	if s.lessonID != next.ID {
		t.Errorf("lesson after left = %s, want %s", s.lessonID, next.ID)
	}
}

func TestPlayerScreen_ViewRendersLesson(t *testing.T) {
	s, _, _, _ := testPlayer(t)
	view := s.View(100, 40)
	if view == "" {
		t.Error("expected non-empty view")
	}
}
