package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	validations []store.ValidationEventData
	submissions []store.SubmissionEventData
	appendErr   error
}

func (m *mockEventRepo) AppendValidation(_ context.Context, data store.ValidationEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.validations = append(m.validations, data)
	return nil
}

func (m *mockEventRepo) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
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

// testCatalog builds a two-module curriculum: module m1 holds a
// standard lesson, a practice checkpoint, and another standard lesson;
// module m2 holds a practice checkpoint and a standard lesson.
func testCatalog(t *testing.T) *curriculum.Catalog {
	t.Helper()
	cat, err := curriculum.New([]curriculum.Module{
		{
			ID:    "m1",
			Title: "First Steps",
			Lessons: []curriculum.Lesson{
				{ID: "a", ModuleID: "m1", Title: "A", Type: curriculum.TypeStandard, Difficulty: 1},
				{ID: "c1", ModuleID: "m1", Title: "C1", Type: curriculum.TypePractice, ValidationRequired: true, Difficulty: 2},
				{ID: "b", ModuleID: "m1", Title: "B", Type: curriculum.TypeStandard, Difficulty: 1},
			},
		},
		{
			ID:    "m2",
			Title: "Next Steps",
			Lessons: []curriculum.Lesson{
				{ID: "c2", ModuleID: "m2", Title: "C2", Type: curriculum.TypePractice, ValidationRequired: true, Difficulty: 3},
				{ID: "d", ModuleID: "m2", Title: "D", Type: curriculum.TypeStandard, Difficulty: 1},
			},
		},
	})
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return cat
}

func newTestService(t *testing.T) (*Service, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	svc := NewService(nil, testCatalog(t), repo)
	return svc, repo
}

// student returns the seeded student profile.
func student(t *testing.T, svc *Service) *User {
	t.Helper()
	for _, u := range svc.Users() {
		if u.Role == RoleStudent {
			return u
		}
	}
	t.Fatal("no student user seeded")
	return nil
}

func admin(t *testing.T, svc *Service) *User {
	t.Helper()
	for _, u := range svc.Users() {
		if u.Role == RoleAdmin {
			return u
		}
	}
	t.Fatal("no admin user seeded")
	return nil
}

func TestNewServiceSeedsDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	users := svc.Users()
	if len(users) != 2 {
		t.Fatalf("seeded users = %d, want 2", len(users))
	}

	u := student(t, svc)
	if u.ActiveLessonID != "a" {
		t.Errorf("active lesson = %q, want a", u.ActiveLessonID)
	}
	if u.Status("a") != StatusActive {
		t.Errorf("status(a) = %s, want active", u.Status("a"))
	}
	if u.Status("b") != StatusLocked {
		t.Errorf("status(b) = %s, want locked", u.Status("b"))
	}
	if !u.ExpandedModules["m1"] {
		t.Error("expected the first module expanded by default")
	}
}

func TestSubmitStandardUnlocksSuccessor(t *testing.T) {
	svc, repo := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	res, err := svc.SubmitLesson(ctx, u.ID, "a")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.NewStatus != StatusCompleted {
		t.Errorf("new status = %s, want completed", res.NewStatus)
	}
	if res.UnlockedLessonID != "c1" {
		t.Errorf("unlocked = %q, want c1", res.UnlockedLessonID)
	}
	// Same module: no expand hint.
	if res.ExpandModuleID != "" {
		t.Errorf("expand hint = %q, want empty", res.ExpandModuleID)
	}
	if u.Status("c1") != StatusActive {
		t.Errorf("status(c1) = %s, want active", u.Status("c1"))
	}
	if u.ActiveLessonID != "c1" {
		t.Errorf("active lesson = %q, want c1", u.ActiveLessonID)
	}
	if len(repo.submissions) != 1 {
		t.Fatalf("submission events = %d, want 1", len(repo.submissions))
	}
	if repo.submissions[0].UnlockedLessonID != "c1" {
		t.Errorf("event unlocked = %q, want c1", repo.submissions[0].UnlockedLessonID)
	}
}

func TestSubmitLastLessonOfModuleSignalsExpand(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	// Put the user at the end of m1.
	u.Statuses["a"] = StatusCompleted
	u.Statuses["c1"] = StatusCompleted
	u.Statuses["b"] = StatusActive
	u.Validated["c1"] = true

	res, err := svc.SubmitLesson(ctx, u.ID, "b")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.UnlockedLessonID != "c2" {
		t.Errorf("unlocked = %q, want c2", res.UnlockedLessonID)
	}
	if res.ExpandModuleID != "m2" {
		t.Errorf("expand hint = %q, want m2", res.ExpandModuleID)
	}
	if !u.ExpandedModules["m2"] {
		t.Error("expected m2 expanded after cross-module unlock")
	}
}

func TestSubmitPracticeGoesToPendingReview(t *testing.T) {
	svc, repo := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	u.Statuses["a"] = StatusCompleted
	u.Statuses["c1"] = StatusActive
	u.ActiveLessonID = "c1"

	res, err := svc.SubmitLesson(ctx, u.ID, "c1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.NewStatus != StatusPendingReview {
		t.Errorf("new status = %s, want pending_review", res.NewStatus)
	}
	if res.UnlockedLessonID != "" {
		t.Errorf("unlocked = %q, want none", res.UnlockedLessonID)
	}
	// The frontier does not advance.
	if u.ActiveLessonID != "c1" {
		t.Errorf("active lesson = %q, want c1", u.ActiveLessonID)
	}
	if u.Status("b") != StatusLocked {
		t.Errorf("status(b) = %s, want locked", u.Status("b"))
	}
	if repo.submissions[0].NewStatus != "pending_review" {
		t.Errorf("event status = %q, want pending_review", repo.submissions[0].NewStatus)
	}
}

func TestSubmitValidatedPracticeCompletes(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	u.Statuses["a"] = StatusCompleted
	u.Statuses["c1"] = StatusActive
	u.Validated["c1"] = true

	res, err := svc.SubmitLesson(ctx, u.ID, "c1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.NewStatus != StatusCompleted {
		t.Errorf("new status = %s, want completed", res.NewStatus)
	}
	if res.UnlockedLessonID != "b" {
		t.Errorf("unlocked = %q, want b", res.UnlockedLessonID)
	}
}

func TestSubmitErrors(t *testing.T) {
	svc, repo := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   string
		lessonID string
		want     error
	}{
		{"unknown user", "nope", "a", ErrUserNotFound},
		{"unknown lesson", u.ID, "nope", ErrLessonNotFound},
		{"locked lesson", u.ID, "b", ErrLessonNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitLesson(ctx, tt.userID, tt.lessonID)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	// Failed submits leave no trace.
	if len(repo.submissions) != 0 {
		t.Errorf("submission events = %d, want 0", len(repo.submissions))
	}
	if u.Status("a") != StatusActive {
		t.Errorf("status(a) = %s, want active", u.Status("a"))
	}
}

func TestGradeValidateAwardsPoints(t *testing.T) {
	svc, repo := newTestService(t)
	u := student(t, svc)
	adm := admin(t, svc)
	ctx := context.Background()

	res, err := svc.GradeCheckpoint(ctx, u.ID, "c1", true, adm.ID)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !res.Changed {
		t.Error("expected Changed=true")
	}
	if res.Points != PointsPerValidation {
		t.Errorf("points = %d, want %d", res.Points, PointsPerValidation)
	}
	if res.Progression != 50 {
		t.Errorf("progression = %d, want 50", res.Progression)
	}
	if !u.Validated["c1"] {
		t.Error("expected c1 validated")
	}
	if len(u.History) != 1 || u.History[0].LessonID != "c1" {
		t.Errorf("history = %+v, want one c1 entry", u.History)
	}
	if len(repo.validations) != 1 || !repo.validations[0].Validated {
		t.Fatalf("validation events = %+v, want one validate", repo.validations)
	}
	if repo.validations[0].GradedBy != adm.ID {
		t.Errorf("graded_by = %q, want %q", repo.validations[0].GradedBy, adm.ID)
	}
}

func TestGradeValidateIsIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	if _, err := svc.GradeCheckpoint(ctx, u.ID, "c1", true, ""); err != nil {
		t.Fatalf("first grade: %v", err)
	}
	points, histLen := u.Points, len(u.History)

	res, err := svc.GradeCheckpoint(ctx, u.ID, "c1", true, "")
	if err != nil {
		t.Fatalf("second grade: %v", err)
	}
	if res.Changed {
		t.Error("expected Changed=false on re-validation")
	}
	if u.Points != points {
		t.Errorf("points = %d, want %d", u.Points, points)
	}
	if len(u.History) != histLen {
		t.Errorf("history length = %d, want %d", len(u.History), histLen)
	}
	// No event for the no-op.
	if len(repo.validations) != 1 {
		t.Errorf("validation events = %d, want 1", len(repo.validations))
	}
}

func TestGradeUnvalidateReversesExactly(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	if _, err := svc.GradeCheckpoint(ctx, u.ID, "c1", true, ""); err != nil {
		t.Fatalf("validate: %v", err)
	}
	res, err := svc.GradeCheckpoint(ctx, u.ID, "c1", false, "")
	if err != nil {
		t.Fatalf("unvalidate: %v", err)
	}
	if !res.Changed {
		t.Error("expected Changed=true")
	}
	if u.Points != 0 {
		t.Errorf("points = %d, want 0", u.Points)
	}
	if u.Validated["c1"] {
		t.Error("expected c1 no longer validated")
	}
	if len(u.History) != 0 {
		t.Errorf("history length = %d, want 0", len(u.History))
	}
	if res.Progression != 0 {
		t.Errorf("progression = %d, want 0", res.Progression)
	}
}

func TestGradePointsFlooredAtZero(t *testing.T) {
	svc, repo := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	if _, err := svc.GradeCheckpoint(ctx, u.ID, "c1", true, ""); err != nil {
		t.Fatalf("validate: %v", err)
	}
	u.Points = 20 // spent or decayed elsewhere

	res, err := svc.GradeCheckpoint(ctx, u.ID, "c1", false, "")
	if err != nil {
		t.Fatalf("unvalidate: %v", err)
	}
	if u.Points != 0 {
		t.Errorf("points = %d, want 0 (floored)", u.Points)
	}
	if res.PointsDelta != -20 {
		t.Errorf("applied delta = %d, want -20", res.PointsDelta)
	}
	if got := repo.validations[len(repo.validations)-1].PointsDelta; got != -20 {
		t.Errorf("event delta = %d, want -20", got)
	}
}

func TestGradeUnvalidateNeverValidatedIsNoop(t *testing.T) {
	svc, repo := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	res, err := svc.GradeCheckpoint(ctx, u.ID, "c1", false, "")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Changed {
		t.Error("expected Changed=false")
	}
	if len(repo.validations) != 0 {
		t.Errorf("validation events = %d, want 0", len(repo.validations))
	}
}

func TestGradePendingReviewCompletesAndUnlocks(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	u.Statuses["a"] = StatusCompleted
	u.Statuses["c1"] = StatusPendingReview
	u.ActiveLessonID = "c1"

	res, err := svc.GradeCheckpoint(ctx, u.ID, "c1", true, "")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if u.Status("c1") != StatusCompleted {
		t.Errorf("status(c1) = %s, want completed", u.Status("c1"))
	}
	if res.UnlockedLessonID != "b" {
		t.Errorf("unlocked = %q, want b", res.UnlockedLessonID)
	}
	if u.Status("b") != StatusActive {
		t.Errorf("status(b) = %s, want active", u.Status("b"))
	}
	if u.ActiveLessonID != "b" {
		t.Errorf("active lesson = %q, want b", u.ActiveLessonID)
	}
}

func TestGradeErrors(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   string
		lessonID string
		want     error
	}{
		{"unknown user", "nope", "c1", ErrUserNotFound},
		{"unknown lesson", u.ID, "nope", ErrLessonNotFound},
		{"not a checkpoint", u.ID, "a", ErrNotCheckpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GradeCheckpoint(ctx, tt.userID, tt.lessonID, true, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if u.Points != 0 || len(u.History) != 0 {
		t.Errorf("failed grades mutated state: points=%d history=%d", u.Points, len(u.History))
	}
}

func TestGradeEventAppendFailureLeavesStateUntouched(t *testing.T) {
	svc, repo := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	repo.appendErr = errors.New("disk full")
	_, err := svc.GradeCheckpoint(ctx, u.ID, "c1", true, "")
	if err == nil {
		t.Fatal("expected error from event append")
	}
	if u.Validated["c1"] || u.Points != 0 || len(u.History) != 0 {
		t.Error("expected no mutation after failed event append")
	}
}

func TestSetActiveLessonRespectsAccessibility(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)

	// b sits behind the unmet checkpoint c1.
	err := svc.SetActiveLesson(u.ID, "b")
	if !errors.Is(err, ErrLessonNotAccessible) {
		t.Errorf("error = %v, want ErrLessonNotAccessible", err)
	}
	if u.ActiveLessonID != "a" {
		t.Errorf("active lesson = %q, want a (unchanged)", u.ActiveLessonID)
	}

	// c1 is the first unmet checkpoint itself, still accessible.
	if err := svc.SetActiveLesson(u.ID, "c1"); err != nil {
		t.Fatalf("set active c1: %v", err)
	}
	if u.ActiveLessonID != "c1" {
		t.Errorf("active lesson = %q, want c1", u.ActiveLessonID)
	}
}

func TestSetActiveLessonAdminBypass(t *testing.T) {
	svc, _ := newTestService(t)
	adm := admin(t, svc)

	if err := svc.SetActiveLesson(adm.ID, "d"); err != nil {
		t.Fatalf("admin set active d: %v", err)
	}
	if adm.ActiveLessonID != "d" {
		t.Errorf("active lesson = %q, want d", adm.ActiveLessonID)
	}
}

func TestToggleModuleExpanded(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)

	if err := svc.ToggleModuleExpanded(u.ID, "m2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !u.ExpandedModules["m2"] {
		t.Error("expected m2 expanded")
	}
	if err := svc.ToggleModuleExpanded(u.ID, "m2"); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if u.ExpandedModules["m2"] {
		t.Error("expected m2 collapsed")
	}

	if err := svc.ToggleModuleExpanded(u.ID, "nope"); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("error = %v, want ErrModuleNotFound", err)
	}
}

func TestSetLessonHiddenAffectsAccessibility(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)

	if err := svc.SetLessonHidden("c1", true); err != nil {
		t.Fatalf("hide: %v", err)
	}
	accessible, err := svc.AccessibleLessons(u.ID)
	if err != nil {
		t.Fatalf("accessible: %v", err)
	}
	// Hidden checkpoint is skipped: the walk runs on to c2.
	if accessible["c1"] {
		t.Error("hidden c1 should not be accessible")
	}
	if !accessible["b"] || !accessible["c2"] {
		t.Errorf("accessible = %v, want b and c2 reachable", accessible)
	}
	if accessible["d"] {
		t.Error("d should stay blocked behind unmet c2")
	}

	if err := svc.SetLessonHidden("c1", false); err != nil {
		t.Fatalf("unhide: %v", err)
	}
	accessible, _ = svc.AccessibleLessons(u.ID)
	if !accessible["c1"] {
		t.Error("expected c1 accessible again")
	}
	if accessible["b"] {
		t.Error("b should be blocked again behind c1")
	}
}

func TestAddRemoveUser(t *testing.T) {
	svc, _ := newTestService(t)

	u, err := svc.AddUser("Robin", RoleStudent)
	if err != nil {
		t.Fatalf("add user: %v", err)
	}
	if u.ActiveLessonID != "a" {
		t.Errorf("new user active lesson = %q, want a", u.ActiveLessonID)
	}
	if len(svc.Users()) != 3 {
		t.Errorf("users = %d, want 3", len(svc.Users()))
	}

	if _, err := svc.AddUser("", RoleStudent); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := svc.AddUser("X", Role("owner")); err == nil {
		t.Error("expected error for invalid role")
	}

	if err := svc.Login(u.ID); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.RemoveUser(u.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if svc.CurrentUser() != nil {
		t.Error("removing the current user should log out")
	}
	if err := svc.RemoveUser(u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)
	ctx := context.Background()

	if _, err := svc.SubmitLesson(ctx, u.ID, "a"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.GradeCheckpoint(ctx, u.ID, "c1", true, ""); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if err := svc.SetLessonHidden("d", true); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if err := svc.Login(u.ID); err != nil {
		t.Fatalf("login: %v", err)
	}

	data := svc.SnapshotData()
	if data.Version != store.SnapshotVersion {
		t.Errorf("version = %d, want %d", data.Version, store.SnapshotVersion)
	}

	restored := NewService(&data, testCatalog(t), &mockEventRepo{})
	ru, err := restored.User(u.ID)
	if err != nil {
		t.Fatalf("restored user: %v", err)
	}
	if ru.Points != u.Points {
		t.Errorf("points = %d, want %d", ru.Points, u.Points)
	}
	if !ru.Validated["c1"] {
		t.Error("expected c1 validated after restore")
	}
	if ru.Status("a") != StatusCompleted {
		t.Errorf("status(a) = %s, want completed", ru.Status("a"))
	}
	if ru.ActiveLessonID != "c1" {
		t.Errorf("active lesson = %q, want c1", ru.ActiveLessonID)
	}
	if len(ru.History) != 1 {
		t.Errorf("history length = %d, want 1", len(ru.History))
	}
	if !restored.HiddenLessons()["d"] {
		t.Error("expected d still hidden after restore")
	}
	if restored.CurrentUser() == nil || restored.CurrentUser().ID != u.ID {
		t.Error("expected current user preserved")
	}
}

func TestSnapshotVersionMigrationKeepsOnlyUsers(t *testing.T) {
	svc, _ := newTestService(t)
	u := student(t, svc)
	if err := svc.SetLessonHidden("d", true); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if err := svc.Login(u.ID); err != nil {
		t.Fatalf("login: %v", err)
	}

	data := svc.SnapshotData()
	data.Version = store.SnapshotVersion - 1

	migrated := NewService(&data, testCatalog(t), &mockEventRepo{})
	if len(migrated.Users()) != 2 {
		t.Errorf("users = %d, want 2 (preserved)", len(migrated.Users()))
	}
	if len(migrated.HiddenLessons()) != 0 {
		t.Error("expected hidden lessons discarded by migration")
	}
	if migrated.CurrentUser() != nil {
		t.Error("expected current user discarded by migration")
	}
}
