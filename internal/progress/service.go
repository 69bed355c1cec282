package progress

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/store"
)

// PointsPerValidation is the fixed reward for a validated checkpoint.
// Un-validating subtracts the same amount, floored at zero.
const PointsPerValidation = 50

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrModuleNotFound      = errors.New("module not found")
	ErrLessonNotAccessible = errors.New("lesson not accessible")
	ErrLessonNotActive     = errors.New("lesson not active")
	ErrNotCheckpoint       = errors.New("lesson does not require validation")
)

// Service owns all user progression state and applies the transition
// rules. Every mutating operation validates its inputs before touching
// state, so a failed call leaves the model untouched.
type Service struct {
	users         map[string]*User
	order         []string // user ids in creation order
	catalog       *curriculum.Catalog
	events        store.EventRepo
	hidden        map[string]bool
	currentUserID string

	now func() time.Time
}

// NewService creates a progression service, loading state from the
// snapshot. A nil snapshot, or one below the current document version,
// is reseeded: the version migration keeps users and discards
// everything else.
func NewService(snap *store.SnapshotData, cat *curriculum.Catalog, events store.EventRepo) *Service {
	s := &Service{
		users:   make(map[string]*User),
		catalog: cat,
		events:  events,
		hidden:  make(map[string]bool),
		now:     time.Now,
	}

	if snap == nil {
		s.seedUsers()
		return s
	}

	if snap.Version >= store.SnapshotVersion {
		s.currentUserID = snap.CurrentUserID
		for _, id := range snap.HiddenLessons {
			s.hidden[id] = true
		}
	}

	for i := range snap.Users {
		s.loadUser(&snap.Users[i])
	}
	if len(s.users) == 0 {
		s.seedUsers()
	}
	if _, ok := s.users[s.currentUserID]; !ok {
		s.currentUserID = ""
	}
	return s
}

// seedUsers provisions the default admin and student profiles used on
// first launch.
func (s *Service) seedUsers() {
	s.addSeedUser("Alex", RoleAdmin)
	s.addSeedUser("Sam", RoleStudent)
}

func (s *Service) addSeedUser(name string, role Role) {
	u := s.newUser(name, role)
	s.users[u.ID] = u
	s.order = append(s.order, u.ID)
}

func (s *Service) newUser(name string, role Role) *User {
	u := &User{
		ID:              uuid.NewString(),
		Name:            name,
		Role:            role,
		StartDate:       s.now(),
		Statuses:        make(map[string]LessonStatus),
		Validated:       make(map[string]bool),
		ExpandedModules: make(map[string]bool),
	}
	if first, ok := s.catalog.First(); ok {
		u.Statuses[first.ID] = StatusActive
		u.ActiveLessonID = first.ID
		u.ExpandedModules[first.ModuleID] = true
	}
	return u
}

func (s *Service) loadUser(data *store.UserData) {
	role := Role(data.Role)
	if !role.IsValid() {
		role = RoleStudent
	}

	start := s.now()
	if t, err := time.Parse(time.RFC3339, data.CreatedAt); err == nil {
		start = t
	}

	u := &User{
		ID:              data.ID,
		Name:            data.Name,
		Role:            role,
		Points:          data.Points,
		StartDate:       start,
		ActiveLessonID:  data.ActiveLessonID,
		Statuses:        make(map[string]LessonStatus),
		Validated:       make(map[string]bool),
		ExpandedModules: make(map[string]bool),
	}

	for id, raw := range data.Statuses {
		st := LessonStatus(raw)
		if !st.IsValid() {
			continue
		}
		u.Statuses[id] = st
	}

	for _, rec := range data.History {
		t, err := time.Parse(time.RFC3339, rec.ValidatedAt)
		if err != nil {
			t = start
		}
		u.Validated[rec.LessonID] = true
		u.History = append(u.History, ValidationRecord{
			LessonID:    rec.LessonID,
			ValidatedAt: t,
			Points:      rec.Points,
			GradedBy:    rec.GradedBy,
		})
	}

	for _, id := range data.ExpandedModules {
		u.ExpandedModules[id] = true
	}

	// Guarantee a frontier: a user with no active lesson starts at
	// the top of the catalog.
	if u.ActiveLessonID == "" {
		if first, ok := s.catalog.First(); ok {
			u.ActiveLessonID = first.ID
			if u.Status(first.ID) == StatusLocked {
				u.Statuses[first.ID] = StatusActive
			}
		}
	}

	s.users[u.ID] = u
	s.order = append(s.order, u.ID)
}

// User returns the user with the given id.
func (s *Service) User(id string) (*User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	return u, nil
}

// Users returns all users in creation order.
func (s *Service) Users() []*User {
	result := make([]*User, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.users[id])
	}
	return result
}

// CurrentUser returns the logged-in user, or nil if nobody is.
func (s *Service) CurrentUser() *User {
	return s.users[s.currentUserID]
}

// Login makes the given user the current one.
func (s *Service) Login(userID string) error {
	if _, ok := s.users[userID]; !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	s.currentUserID = userID
	return nil
}

// Logout clears the current user.
func (s *Service) Logout() {
	s.currentUserID = ""
}

// AccessibleLessons resolves which lessons the user may open right
// now. The result is derived, never stored.
func (s *Service) AccessibleLessons(userID string) (map[string]bool, error) {
	u, err := s.User(userID)
	if err != nil {
		return nil, err
	}
	return s.catalog.AccessibleLessons(u.Validated, s.hidden, u.Role == RoleAdmin), nil
}

// SubmitResult reports what a lesson submission changed.
type SubmitResult struct {
	SubmissionID     string
	NewStatus        LessonStatus
	UnlockedLessonID string

	// ExpandModuleID is set when the unlocked lesson lives in a
	// different module than the submitted one, hinting the dashboard
	// to expand it.
	ExpandModuleID string
}

// SubmitLesson applies the submit action for a lesson the user
// currently has active. A practice lesson with no validation on
// record goes to pending review and unlocks nothing; anything else
// completes and flips the next locked lesson to active.
func (s *Service) SubmitLesson(ctx context.Context, userID, lessonID string) (*SubmitResult, error) {
	u, err := s.User(userID)
	if err != nil {
		return nil, err
	}
	lesson, err := s.catalog.Lesson(lessonID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLessonNotFound, lessonID)
	}
	if u.Status(lessonID) != StatusActive {
		return nil, fmt.Errorf("%w: %s is %s", ErrLessonNotActive, lessonID, u.Status(lessonID))
	}

	result := &SubmitResult{SubmissionID: uuid.NewString()}

	if lesson.Type == curriculum.TypePractice && !u.Validated[lessonID] {
		result.NewStatus = StatusPendingReview
	} else {
		result.NewStatus = StatusCompleted
		if next, ok := s.catalog.Next(lessonID); ok && u.Status(next.ID) == StatusLocked {
			result.UnlockedLessonID = next.ID
			if next.ModuleID != lesson.ModuleID {
				result.ExpandModuleID = next.ModuleID
			}
		}
	}

	err = s.events.AppendSubmission(ctx, store.SubmissionEventData{
		SubmissionID:     result.SubmissionID,
		UserID:           userID,
		LessonID:         lessonID,
		NewStatus:        string(result.NewStatus),
		UnlockedLessonID: result.UnlockedLessonID,
	})
	if err != nil {
		return nil, err
	}

	u.Statuses[lessonID] = result.NewStatus
	if result.UnlockedLessonID != "" {
		u.Statuses[result.UnlockedLessonID] = StatusActive
		u.ActiveLessonID = result.UnlockedLessonID
	}
	if result.ExpandModuleID != "" {
		u.ExpandedModules[result.ExpandModuleID] = true
	}
	return result, nil
}

// GradeResult reports what a grading action changed.
type GradeResult struct {
	// Changed is false when the action was an idempotent no-op:
	// validating an already-validated checkpoint, or un-validating
	// one that was never validated.
	Changed bool

	Points      int // user's points after the action
	PointsDelta int // applied delta, after flooring at zero
	Progression int

	// UnlockedLessonID is set when validating a pending-review
	// lesson completed it and flipped its successor to active.
	UnlockedLessonID string
}

// GradeCheckpoint toggles a checkpoint validation for a user. Grading
// in either direction keeps the history 1:1 with the validated set and
// re-derives progression. Points never go negative.
func (s *Service) GradeCheckpoint(ctx context.Context, userID, lessonID string, validated bool, gradedBy string) (*GradeResult, error) {
	u, err := s.User(userID)
	if err != nil {
		return nil, err
	}
	lesson, err := s.catalog.Lesson(lessonID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLessonNotFound, lessonID)
	}
	if !lesson.ValidationRequired {
		return nil, fmt.Errorf("%w: %s", ErrNotCheckpoint, lessonID)
	}

	result := &GradeResult{Points: u.Points, Progression: u.Progression(s.catalog)}

	if validated == u.Validated[lessonID] {
		return result, nil // idempotent no-op, no event
	}
	result.Changed = true

	if validated {
		result.PointsDelta = PointsPerValidation
		if u.Status(lessonID) == StatusPendingReview {
			if next, ok := s.catalog.Next(lessonID); ok && u.Status(next.ID) == StatusLocked {
				result.UnlockedLessonID = next.ID
			}
		}
	} else {
		result.PointsDelta = -PointsPerValidation
		if u.Points+result.PointsDelta < 0 {
			result.PointsDelta = -u.Points
		}
	}

	err = s.events.AppendValidation(ctx, store.ValidationEventData{
		UserID:      userID,
		LessonID:    lessonID,
		Validated:   validated,
		PointsDelta: result.PointsDelta,
		GradedBy:    gradedBy,
	})
	if err != nil {
		return nil, err
	}

	if validated {
		u.Validated[lessonID] = true
		u.History = append(u.History, ValidationRecord{
			LessonID:    lessonID,
			ValidatedAt: s.now(),
			Points:      result.PointsDelta,
			GradedBy:    gradedBy,
		})
		if u.Status(lessonID) == StatusPendingReview {
			u.Statuses[lessonID] = StatusCompleted
			if result.UnlockedLessonID != "" {
				u.Statuses[result.UnlockedLessonID] = StatusActive
				u.ActiveLessonID = result.UnlockedLessonID
			}
		}
	} else {
		delete(u.Validated, lessonID)
		kept := u.History[:0]
		for _, rec := range u.History {
			if rec.LessonID != lessonID {
				kept = append(kept, rec)
			}
		}
		u.History = kept
	}

	u.Points += result.PointsDelta
	result.Points = u.Points
	result.Progression = u.Progression(s.catalog)
	return result, nil
}

// SetActiveLesson opens a lesson in the player. Non-admins may only
// open lessons in their accessible set.
func (s *Service) SetActiveLesson(userID, lessonID string) error {
	u, err := s.User(userID)
	if err != nil {
		return err
	}
	if _, err := s.catalog.Lesson(lessonID); err != nil {
		return fmt.Errorf("%w: %s", ErrLessonNotFound, lessonID)
	}

	accessible := s.catalog.AccessibleLessons(u.Validated, s.hidden, u.Role == RoleAdmin)
	if !accessible[lessonID] {
		return fmt.Errorf("%w: %s", ErrLessonNotAccessible, lessonID)
	}

	u.ActiveLessonID = lessonID
	if u.Status(lessonID) == StatusLocked {
		u.Statuses[lessonID] = StatusActive
	}
	return nil
}

// ToggleModuleExpanded flips a module's dashboard accordion state.
func (s *Service) ToggleModuleExpanded(userID, moduleID string) error {
	u, err := s.User(userID)
	if err != nil {
		return err
	}
	if _, err := s.catalog.Module(moduleID); err != nil {
		return fmt.Errorf("%w: %s", ErrModuleNotFound, moduleID)
	}
	u.ExpandedModules[moduleID] = !u.ExpandedModules[moduleID]
	return nil
}

// AddUser provisions a new profile.
func (s *Service) AddUser(name string, role Role) (*User, error) {
	if name == "" {
		return nil, errors.New("user name must not be empty")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	u := s.newUser(name, role)
	s.users[u.ID] = u
	s.order = append(s.order, u.ID)
	return u, nil
}

// RemoveUser deletes a profile. Removing the current user logs out.
func (s *Service) RemoveUser(userID string) error {
	if _, ok := s.users[userID]; !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	delete(s.users, userID)
	for i, id := range s.order {
		if id == userID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.currentUserID == userID {
		s.currentUserID = ""
	}
	return nil
}

// SetLessonHidden administratively hides or reveals a lesson for all
// students. Hidden lessons are skipped by the accessibility resolver.
func (s *Service) SetLessonHidden(lessonID string, hidden bool) error {
	if _, err := s.catalog.Lesson(lessonID); err != nil {
		return fmt.Errorf("%w: %s", ErrLessonNotFound, lessonID)
	}
	if hidden {
		s.hidden[lessonID] = true
	} else {
		delete(s.hidden, lessonID)
	}
	return nil
}

// HiddenLessons returns the administratively hidden lesson ids.
func (s *Service) HiddenLessons() map[string]bool {
	result := make(map[string]bool, len(s.hidden))
	for id := range s.hidden {
		result[id] = true
	}
	return result
}

// Catalog returns the curriculum the service was built against.
func (s *Service) Catalog() *curriculum.Catalog {
	return s.catalog
}

// snapshotHistory is how many snapshots Persist leaves behind.
const snapshotHistory = 20

// Persist writes the full service state through as a new snapshot and
// prunes old ones. Called after every mutating action.
func (s *Service) Persist(ctx context.Context, repo store.SnapshotRepo) error {
	snap := &store.Snapshot{
		Timestamp: s.now(),
		Data:      s.SnapshotData(),
	}
	if err := repo.Save(ctx, snap); err != nil {
		return err
	}
	return repo.Prune(ctx, snapshotHistory)
}

// SnapshotData exports the full service state for persistence.
func (s *Service) SnapshotData() store.SnapshotData {
	data := store.SnapshotData{
		Version:       store.SnapshotVersion,
		CurrentUserID: s.currentUserID,
	}

	for id := range s.hidden {
		data.HiddenLessons = append(data.HiddenLessons, id)
	}
	sort.Strings(data.HiddenLessons)

	for _, id := range s.order {
		u := s.users[id]
		ud := store.UserData{
			ID:             u.ID,
			Name:           u.Name,
			Role:           string(u.Role),
			Points:         u.Points,
			ActiveLessonID: u.ActiveLessonID,
			CreatedAt:      u.StartDate.Format(time.RFC3339),
		}
		if len(u.Statuses) > 0 {
			ud.Statuses = make(map[string]string, len(u.Statuses))
			for lid, st := range u.Statuses {
				ud.Statuses[lid] = string(st)
			}
		}
		for _, rec := range u.History {
			ud.History = append(ud.History, store.ValidationRecordData{
				LessonID:    rec.LessonID,
				ValidatedAt: rec.ValidatedAt.Format(time.RFC3339),
				Points:      rec.Points,
				GradedBy:    rec.GradedBy,
			})
		}
		for mid := range u.ExpandedModules {
			if u.ExpandedModules[mid] {
				ud.ExpandedModules = append(ud.ExpandedModules, mid)
			}
		}
		sort.Strings(ud.ExpandedModules)
		data.Users = append(data.Users, ud)
	}
	return data
}
