// Package lessonhistory shows a user's validation event log.
package lessonhistory

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/progress"
	"github.com/fretwise/fretwise/internal/screen"
	"github.com/fretwise/fretwise/internal/store"
	"github.com/fretwise/fretwise/internal/ui/layout"
	"github.com/fretwise/fretwise/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []store.ValidationRecord
	Err     error
}

// HistoryScreen displays past grading actions, most recent first.
type HistoryScreen struct {
	events store.EventRepo
	svc    *progress.Service
	userID string

	records []store.ValidationRecord
	loaded  bool
	errMsg  string
	scroll  int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen for the given user.
func New(events store.EventRepo, svc *progress.Service, userID string) *HistoryScreen {
	return &HistoryScreen{events: events, svc: svc, userID: userID}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.events.ValidationHistory(context.Background(), s.userID, store.QueryOpts{Limit: 100})
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Validation History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			if s.scroll < len(s.records)-1 {
				s.scroll++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("  Loading history...")
	}
	if s.errMsg != "" {
		return theme.Blocked.Render("  Could not load history: " + s.errMsg)
	}
	if len(s.records) == 0 {
		return theme.Hint.Render("  No checkpoints graded yet. Keep practicing!")
	}

	var lines []string
	for i := s.scroll; i < len(s.records) && len(lines) < height-1; i++ {
		lines = append(lines, s.renderRecord(s.records[i]))
	}
	return strings.Join(lines, "\n")
}

func (s *HistoryScreen) renderRecord(r store.ValidationRecord) string {
	title := r.LessonID
	if lesson, err := s.svc.Catalog().Lesson(r.LessonID); err == nil {
		title = lesson.Title
	}

	grader := ""
	if u, err := s.svc.User(r.GradedBy); err == nil {
		grader = " by " + u.Name
	}

	when := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(r.Timestamp.Format("Jan 2 15:04"))

	if r.Validated {
		return fmt.Sprintf("  %s  %s %s%s %s",
			when,
			theme.Validated.Render("★"),
			title,
			grader,
			lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("+%d pts", r.PointsDelta)),
		)
	}
	return fmt.Sprintf("  %s  %s %s%s %s",
		when,
		theme.Blocked.Render("↩"),
		title,
		grader,
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("%d pts", r.PointsDelta)),
	)
}
