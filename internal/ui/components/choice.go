package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/ui/theme"
)

// Choice is a horizontal option selector.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewChoice creates a new option selector.
func NewChoice(label string, options []string) Choice {
	return Choice{
		Label:   label,
		Options: options,
	}
}

// Update handles keyboard navigation.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Value returns the selected option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the selector.
func (c Choice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Render(c.Label + "  ")

	for i, opt := range c.Options {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		label := "  " + opt + "  "
		if i == c.Selected {
			if c.Focused {
				style = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
			} else {
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
		}
		s += style.Render(label) + " "
	}

	return s
}
