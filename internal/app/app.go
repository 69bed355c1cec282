package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/progress"
	"github.com/fretwise/fretwise/internal/router"
	"github.com/fretwise/fretwise/internal/screen"
	"github.com/fretwise/fretwise/internal/screens/login"
	"github.com/fretwise/fretwise/internal/store"
	"github.com/fretwise/fretwise/internal/ui/layout"
)

// Options carries the repositories the app runs against.
type Options struct {
	SnapshotRepo store.SnapshotRepo
	EventRepo    store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *progress.Service
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel builds the progression service from the latest snapshot
// and starts on the login screen. A corrupt or missing snapshot falls
// back to the seed state rather than failing.
func newAppModel(opts Options) (AppModel, error) {
	snap, err := opts.SnapshotRepo.Latest(context.Background())
	if err != nil {
		return AppModel{}, fmt.Errorf("load snapshot: %w", err)
	}

	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}
	svc := progress.NewService(data, curriculum.Default(), opts.EventRepo)

	loginScreen := login.New(svc, opts.SnapshotRepo, opts.EventRepo)
	return AppModel{
		svc:    svc,
		opts:   opts,
		router: router.New(loginScreen),
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// At the stack root, leaving the dashboard or console
			// logs out and returns to the profile picker.
			if _, ok := m.router.Active().(*login.LoginScreen); !ok {
				m.svc.Logout()
				next := login.New(m.svc, m.opts.SnapshotRepo, m.opts.EventRepo)
				return m, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	userName := ""
	points := 0
	if u := m.svc.CurrentUser(); u != nil {
		userName = u.Name
		points = u.Points
	}

	header := layout.RenderHeader(title, userName, points, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
