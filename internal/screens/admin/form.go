package admin

import (
	"context"
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

type formField int

const (
	fieldName formField = iota
	fieldRole
)

// userForm is the add-user form.
type userForm struct {
	svc      *progress.Service
	snapRepo store.SnapshotRepo

	name    components.TextInput
	role    components.Choice
	focused formField
	errMsg  string
}

var _ screen.Screen = (*userForm)(nil)
var _ screen.KeyHintProvider = (*userForm)(nil)

func newUserForm(svc *progress.Service, snapRepo store.SnapshotRepo) *userForm {
	f := &userForm{
		svc:      svc,
		snapRepo: snapRepo,
		name:     components.NewTextInput("Student name", false, 30),
		role:     components.NewChoice("Role", []string{string(progress.RoleStudent), string(progress.RoleAdmin)}),
	}
	return f
}

func (f *userForm) Init() tea.Cmd {
	return f.name.Init()
}

func (f *userForm) Title() string {
	return "New Profile"
}

func (f *userForm) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (f *userForm) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			if f.focused == fieldName {
				f.focused = fieldRole
				f.name.Model.Blur()
				f.role.Focused = true
			} else {
				f.focused = fieldName
				f.role.Focused = false
				return f, f.name.Model.Focus()
			}
			return f, nil
		case "enter":
			return f, f.submit()
		}
	}

	var cmd tea.Cmd
	switch f.focused {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldRole:
		f.role, cmd = f.role.Update(msg)
	}
	return f, cmd
}

func (f *userForm) submit() tea.Cmd {
	name := strings.TrimSpace(f.name.Value())
	if _, err := f.svc.AddUser(name, progress.Role(f.role.Value())); err != nil {
		f.errMsg = err.Error()
		return nil
	}
	_ = f.svc.Persist(context.Background(), f.snapRepo)

	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (f *userForm) View(width, height int) string {
	cw := components.ContentWidth(width)

	body := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Add a profile") + "\n\n" +
		f.name.View() + "\n\n" +
		f.role.View()

	if f.errMsg != "" {
		body += "\n\n" + theme.Blocked.Render(f.errMsg)
	}

	return components.Card(body, cw)
}
