package admin

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/progress"
	"github.com/fretwise/fretwise/internal/screen"
	"github.com/fretwise/fretwise/internal/store"
	"github.com/fretwise/fretwise/internal/ui/layout"
	"github.com/fretwise/fretwise/internal/ui/theme"
)

type gradeRowKind int

const (
	gradeRowModule gradeRowKind = iota
	gradeRowLesson
)

type gradeRow struct {
	kind   gradeRowKind
	module curriculum.Module
	lesson curriculum.Lesson
}

// gradeScreen grades one student's checkpoints and manages lesson
// visibility.
type gradeScreen struct {
	svc      *progress.Service
	snapRepo store.SnapshotRepo
	adminID  string
	userID   string

	rows         []gradeRow
	cursor       int
	scrollOffset int
	notice       string
}

var _ screen.Screen = (*gradeScreen)(nil)
var _ screen.KeyHintProvider = (*gradeScreen)(nil)

func newGradeScreen(svc *progress.Service, snapRepo store.SnapshotRepo, adminID, userID string) *gradeScreen {
	s := &gradeScreen{
		svc:      svc,
		snapRepo: snapRepo,
		adminID:  adminID,
		userID:   userID,
	}

	for _, m := range svc.Catalog().Modules() {
		s.rows = append(s.rows, gradeRow{kind: gradeRowModule, module: m})
		for _, l := range m.Lessons {
			s.rows = append(s.rows, gradeRow{kind: gradeRowLesson, module: m, lesson: l})
		}
	}
	s.moveCursor(1)
	return s
}

func (s *gradeScreen) Init() tea.Cmd {
	return nil
}

func (s *gradeScreen) Title() string {
	if u, err := s.svc.User(s.userID); err == nil {
		return "Grading · " + u.Name
	}
	return "Grading"
}

func (s *gradeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Toggle validation"},
		{Key: "X", Description: "Hide/unhide"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *gradeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "enter":
		s.toggleValidation()
	case "x", "X":
		s.toggleHidden()
	}
	return s, nil
}

// moveCursor moves the cursor by delta, skipping module headers.
func (s *gradeScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == gradeRowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

func (s *gradeScreen) current() (curriculum.Lesson, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return curriculum.Lesson{}, false
	}
	r := s.rows[s.cursor]
	if r.kind != gradeRowLesson {
		return curriculum.Lesson{}, false
	}
	return r.lesson, true
}

func (s *gradeScreen) toggleValidation() {
	lesson, ok := s.current()
	if !ok {
		return
	}
	if !lesson.ValidationRequired {
		s.notice = "Only practice checkpoints are graded."
		return
	}

	u, err := s.svc.User(s.userID)
	if err != nil {
		return
	}

	ctx := context.Background()
	res, err := s.svc.GradeCheckpoint(ctx, s.userID, lesson.ID, !u.Validated[lesson.ID], s.adminID)
	if err != nil {
		s.notice = err.Error()
		return
	}
	_ = s.svc.Persist(ctx, s.snapRepo)

	if res.PointsDelta >= 0 {
		s.notice = fmt.Sprintf("Validated %s (+%d pts).", lesson.Title, res.PointsDelta)
		if res.UnlockedLessonID != "" {
			s.notice += " Their next lesson is unlocked."
		}
	} else {
		s.notice = fmt.Sprintf("Un-validated %s (%d pts).", lesson.Title, res.PointsDelta)
	}
}

func (s *gradeScreen) toggleHidden() {
	lesson, ok := s.current()
	if !ok {
		return
	}
	hidden := s.svc.HiddenLessons()[lesson.ID]
	if err := s.svc.SetLessonHidden(lesson.ID, !hidden); err != nil {
		s.notice = err.Error()
		return
	}
	_ = s.svc.Persist(context.Background(), s.snapRepo)

	if hidden {
		s.notice = fmt.Sprintf("%s is visible again.", lesson.Title)
	} else {
		s.notice = fmt.Sprintf("%s is now hidden from students.", lesson.Title)
	}
}

func (s *gradeScreen) View(width, height int) string {
	u, err := s.svc.User(s.userID)
	if err != nil {
		return theme.Hint.Render("  Profile no longer exists.")
	}

	listHeight := height - 2
	if listHeight < 3 {
		listHeight = 3
	}
	s.adjustScroll(listHeight)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}
		switch r.kind {
		case gradeRowModule:
			header := lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Padding(1, 0, 0, 2).
				Width(width).
				Render(strings.ToUpper(r.module.Title))
			lines = append(lines, header)
		case gradeRowLesson:
			lines = append(lines, s.renderLessonRow(u, r.lesson, i == s.cursor))
		}
		visible++
	}

	out := strings.Join(lines, "\n")
	if s.notice != "" {
		out += "\n\n" + theme.Hint.Render("  "+s.notice)
	}
	return out
}

func (s *gradeScreen) renderLessonRow(u *progress.User, l curriculum.Lesson, selected bool) string {
	var state string
	switch {
	case !l.ValidationRequired:
		state = lipgloss.NewStyle().Foreground(theme.TextDim).Render("—")
	case u.Validated[l.ID]:
		state = theme.Validated.Render("★ validated")
	case u.Status(l.ID) == progress.StatusPendingReview:
		state = lipgloss.NewStyle().Foreground(theme.Info).Render("📨 awaiting review")
	default:
		state = lipgloss.NewStyle().Foreground(theme.TextDim).Render("☆ not validated")
	}

	if s.svc.HiddenLessons()[l.ID] {
		state += lipgloss.NewStyle().Foreground(theme.Warning).Render("  [hidden]")
	}

	label := fmt.Sprintf("%-28s %s", l.Title, state)
	if selected {
		return theme.Selected.Render("    ▸ " + label)
	}
	return theme.Unselected.Render("      " + label)
}

// adjustScroll keeps the cursor inside the viewport, showing the
// module header above it when possible.
func (s *gradeScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == gradeRowModule {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}
