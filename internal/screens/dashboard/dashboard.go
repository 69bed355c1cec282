package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/forecast"
	"github.com/fretwise/fretwise/internal/progress"
	"github.com/fretwise/fretwise/internal/router"
	"github.com/fretwise/fretwise/internal/screen"
	"github.com/fretwise/fretwise/internal/screens/lessonhistory"
	"github.com/fretwise/fretwise/internal/screens/player"
	"github.com/fretwise/fretwise/internal/store"
	"github.com/fretwise/fretwise/internal/ui/components"
	"github.com/fretwise/fretwise/internal/ui/layout"
	"github.com/fretwise/fretwise/internal/ui/theme"
)

type rowKind int

const (
	rowModule rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	module curriculum.Module
	lesson curriculum.Lesson
}

// DashboardScreen shows a student's progress, forecast, and the module
// accordion.
type DashboardScreen struct {
	svc      *progress.Service
	snapRepo store.SnapshotRepo
	events   store.EventRepo
	userID   string

	rows         []row
	cursor       int
	scrollOffset int
	notice       string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen for the given user.
func New(svc *progress.Service, snapRepo store.SnapshotRepo, events store.EventRepo, userID string) *DashboardScreen {
	s := &DashboardScreen{
		svc:      svc,
		snapRepo: snapRepo,
		events:   events,
		userID:   userID,
	}
	s.rebuildRows()
	return s
}

func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "H", Description: "History"},
		{Key: "Esc", Description: "Log out"},
	}
}

// rebuildRows flattens the catalog into visible rows: every module,
// plus the lessons of expanded modules. Administratively hidden
// lessons are invisible to students.
func (s *DashboardScreen) rebuildRows() {
	u, err := s.svc.User(s.userID)
	if err != nil {
		s.rows = nil
		return
	}
	hidden := s.svc.HiddenLessons()
	isAdmin := u.Role == progress.RoleAdmin

	var rows []row
	for _, m := range s.svc.Catalog().Modules() {
		rows = append(rows, row{kind: rowModule, module: m})
		if !u.ExpandedModules[m.ID] {
			continue
		}
		for _, l := range m.Lessons {
			if hidden[l.ID] && !isAdmin {
				continue
			}
			rows = append(rows, row{kind: rowLesson, module: m, lesson: l})
		}
	}
	s.rows = rows

	if s.cursor >= len(s.rows) {
		s.cursor = len(s.rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "enter":
		return s, s.selectRow()
	case "h", "H":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: lessonhistory.New(s.events, s.svc, s.userID)}
		}
	}
	return s, nil
}

// selectRow toggles a module or opens a lesson.
func (s *DashboardScreen) selectRow() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	r := s.rows[s.cursor]
	ctx := context.Background()

	if r.kind == rowModule {
		if err := s.svc.ToggleModuleExpanded(s.userID, r.module.ID); err == nil {
			_ = s.svc.Persist(ctx, s.snapRepo)
		}
		s.rebuildRows()
		return nil
	}

	if err := s.svc.SetActiveLesson(s.userID, r.lesson.ID); err != nil {
		s.notice = "That lesson is still locked. Validate earlier checkpoints first."
		return nil
	}
	s.notice = ""
	_ = s.svc.Persist(ctx, s.snapRepo)

	p := player.New(s.svc, s.snapRepo, s.userID, r.lesson.ID)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: p}
	}
}

func (s *DashboardScreen) View(width, height int) string {
	u, err := s.svc.User(s.userID)
	if err != nil {
		return theme.Hint.Render("  Profile no longer exists.")
	}
	s.rebuildRows()

	cw := components.ContentWidth(width)
	report := forecast.Build(u, s.svc.Catalog(), time.Now())

	bar := components.NewProgressBar("Course progress", float64(report.Percent)/100, true, cw-4)
	top := components.Card(bar.View()+"\n"+s.renderForecast(report), cw)

	listHeight := height - lipgloss.Height(top) - 2
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
		case rowModule:
			lines = append(lines, s.renderModuleRow(u, r.module, i == s.cursor, width))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(u, r.lesson, i == s.cursor))
		}
		visible++
	}

	out := top + "\n" + strings.Join(lines, "\n")
	if s.notice != "" {
		out += "\n" + theme.Blocked.Render("  "+s.notice)
	}
	return out
}

func (s *DashboardScreen) renderForecast(r forecast.Report) string {
	icon := r.Icon
	msg := lipgloss.NewStyle().Foreground(theme.ForClass(r.ColorClass)).Render(r.Message)

	detail := fmt.Sprintf(
		"%d/%d checkpoints validated · projected finish %s · last graded %dd ago",
		r.ValidatedCount, r.ValidatedCount+r.RemainingCount, r.ProjectedDateStr, r.DaysSinceLastAction,
	)
	return icon + " " + msg + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)
}

// adjustScroll keeps the cursor inside the list viewport.
func (s *DashboardScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *DashboardScreen) renderModuleRow(u *progress.User, m curriculum.Module, selected bool, width int) string {
	arrow := "▸"
	if u.ExpandedModules[m.ID] {
		arrow = "▾"
	}

	label := fmt.Sprintf("%s %s", arrow, strings.ToUpper(m.Title))
	if m.EstimatedWeeks > 0 {
		label += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  ~%dw", m.EstimatedWeeks))
	}

	style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Padding(1, 0, 0, 2)
	if selected {
		style = style.Foreground(theme.Primary)
	}
	return style.Width(width).Render(label)
}

func (s *DashboardScreen) renderLessonRow(u *progress.User, l curriculum.Lesson, selected bool) string {
	accessible, _ := s.svc.AccessibleLessons(s.userID)

	icon := "🔒"
	switch {
	case u.Status(l.ID) == progress.StatusCompleted:
		icon = "✅"
	case u.Status(l.ID) == progress.StatusPendingReview:
		icon = "📨"
	case accessible[l.ID]:
		icon = "🔓"
	}

	marker := ""
	if l.ValidationRequired {
		marker = " ⭐"
		if u.Validated[l.ID] {
			marker = " " + theme.Validated.Render("★ validated")
		}
	}

	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s · %dm", strings.Repeat("♦", l.Difficulty), l.DurationMins))

	label := fmt.Sprintf("%s %s%s%s", icon, l.Title, marker, meta)
	if selected {
		return theme.Selected.Render("    ▸ " + label)
	}
	return theme.Unselected.Render("      " + label)
}
