package login

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/progress"
	"github.com/fretwise/fretwise/internal/router"
	"github.com/fretwise/fretwise/internal/screen"
	"github.com/fretwise/fretwise/internal/screens/admin"
	"github.com/fretwise/fretwise/internal/screens/dashboard"
	"github.com/fretwise/fretwise/internal/store"
	"github.com/fretwise/fretwise/internal/ui/components"
	"github.com/fretwise/fretwise/internal/ui/layout"
	"github.com/fretwise/fretwise/internal/ui/theme"
)

const logo = `  ╔═══╗
  ║ ♪ ║  F R E T W I S E
  ╚═══╝  learn guitar, one fret at a time`

// LoginScreen is the profile picker shown at startup.
type LoginScreen struct {
	svc      *progress.Service
	snapRepo store.SnapshotRepo
	events   store.EventRepo
	cursor   int
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a new LoginScreen.
func New(svc *progress.Service, snapRepo store.SnapshotRepo, events store.EventRepo) *LoginScreen {
	return &LoginScreen{svc: svc, snapRepo: snapRepo, events: events}
}

func (s *LoginScreen) Init() tea.Cmd {
	return nil
}

func (s *LoginScreen) Title() string {
	return "Welcome"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Log in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		return s, s.login(users[s.cursor])
	}

	return s, nil
}

// login switches the current user and routes by role.
func (s *LoginScreen) login(u *progress.User) tea.Cmd {
	if err := s.svc.Login(u.ID); err != nil {
		return nil
	}

	var next screen.Screen
	if u.Role == progress.RoleAdmin {
		next = admin.NewConsole(s.svc, s.snapRepo, u.ID)
	} else {
		next = dashboard.New(s.svc, s.snapRepo, s.events, u.ID)
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(logo)

	var rows []string
	for i, u := range s.svc.Users() {
		icon := "🎸"
		if u.Role == progress.RoleAdmin {
			icon = "🎛️"
		}
		label := fmt.Sprintf("%s %s", icon, u.Name)
		detail := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %s · %d pts", u.Role, u.Points))

		if i == s.cursor {
			rows = append(rows, theme.Selected.Render("  ▸ "+label)+detail)
		} else {
			rows = append(rows, theme.Unselected.Render("    "+label)+detail)
		}
	}
	if len(rows) == 0 {
		rows = append(rows, theme.Hint.Render("  No profiles yet. Run: fretwise add-user"))
	}

	picker := components.Card(
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Who's playing?")+
			"\n\n"+strings.Join(rows, "\n"),
		cw,
	)

	content := title + "\n\n" + picker
	return components.StageFrame(content, width, height)
}
