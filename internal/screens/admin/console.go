// Package admin implements the teacher-side console: user management,
// checkpoint grading, and lesson hiding.
package admin

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/progress"
	"github.com/fretwise/fretwise/internal/router"
	"github.com/fretwise/fretwise/internal/screen"
	"github.com/fretwise/fretwise/internal/store"
	"github.com/fretwise/fretwise/internal/ui/components"
	"github.com/fretwise/fretwise/internal/ui/layout"
	"github.com/fretwise/fretwise/internal/ui/theme"
)

// ConsoleScreen lists every profile and is the entry point to grading.
type ConsoleScreen struct {
	svc      *progress.Service
	snapRepo store.SnapshotRepo
	adminID  string

	cursor int
	notice string
}

var _ screen.Screen = (*ConsoleScreen)(nil)
var _ screen.KeyHintProvider = (*ConsoleScreen)(nil)

// NewConsole creates the admin console for the given admin user.
func NewConsole(svc *progress.Service, snapRepo store.SnapshotRepo, adminID string) *ConsoleScreen {
	return &ConsoleScreen{svc: svc, snapRepo: snapRepo, adminID: adminID}
}

func (s *ConsoleScreen) Init() tea.Cmd {
	return nil
}

func (s *ConsoleScreen) Title() string {
	return "Admin Console"
}

func (s *ConsoleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Grade"},
		{Key: "N", Description: "New user"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Log out"},
	}
}

func (s *ConsoleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	users := s.svc.Users()
	if s.cursor >= len(users) {
		s.cursor = len(users) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}

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
		if s.cursor < len(users)-1 {
			s.cursor++
		}
	case "enter":
		if len(users) == 0 {
			return s, nil
		}
		target := users[s.cursor]
		g := newGradeScreen(s.svc, s.snapRepo, s.adminID, target.ID)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: g}
		}
	case "n", "N":
		f := newUserForm(s.svc, s.snapRepo)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: f}
		}
	case "d", "D":
		s.removeSelected(users)
	}

	return s, nil
}

func (s *ConsoleScreen) removeSelected(users []*progress.User) {
	if len(users) == 0 {
		return
	}
	target := users[s.cursor]
	if target.ID == s.adminID {
		s.notice = "You can't delete the profile you're logged in as."
		return
	}
	if err := s.svc.RemoveUser(target.ID); err != nil {
		s.notice = err.Error()
		return
	}
	_ = s.svc.Persist(context.Background(), s.snapRepo)
	s.notice = fmt.Sprintf("Deleted %s.", target.Name)
}

func (s *ConsoleScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	cat := s.svc.Catalog()

	var rows []string
	for i, u := range s.svc.Users() {
		icon := "🎸"
		if u.Role == progress.RoleAdmin {
			icon = "🎛️"
		}

		detail := fmt.Sprintf("  %s · %d%% · %d pts · %d/%d validated",
			u.Role, u.Progression(cat), u.Points, len(u.Validated), cat.CheckpointCount())

		label := fmt.Sprintf("%s %s", icon, u.Name)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)
		if i == s.cursor {
			rows = append(rows, theme.Selected.Render("  ▸ "+label)+dim)
		} else {
			rows = append(rows, theme.Unselected.Render("    "+label)+dim)
		}
	}

	hiddenCount := len(s.svc.HiddenLessons())
	sub := fmt.Sprintf("%d profiles · %d lessons hidden", len(s.svc.Users()), hiddenCount)

	out := components.Card(
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Students & staff")+
			"  "+lipgloss.NewStyle().Foreground(theme.TextDim).Render(sub)+
			"\n\n"+strings.Join(rows, "\n"),
		cw,
	)
	if s.notice != "" {
		out += "\n" + theme.Hint.Render("  "+s.notice)
	}
	return out
}
