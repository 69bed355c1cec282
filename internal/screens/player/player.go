package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/progress"
	"github.com/fretwise/fretwise/internal/screen"
	"github.com/fretwise/fretwise/internal/store"
	"github.com/fretwise/fretwise/internal/ui/components"
	"github.com/fretwise/fretwise/internal/ui/layout"
	"github.com/fretwise/fretwise/internal/ui/theme"
)

// submitDelay models the hand-in round trip so the submit feels like
// an action, not a toggle.
const submitDelay = 750 * time.Millisecond

// submitDoneMsg fires when the artificial submit latency elapses.
type submitDoneMsg struct {
	lessonID string
}

// PlayerScreen presents one lesson and the submit flow.
type PlayerScreen struct {
	svc      *progress.Service
	snapRepo store.SnapshotRepo
	userID   string
	lessonID string

	// inFlight guards the submit round trip: while a transition is
	// pending, further submits and lesson switches are ignored, not
	// queued.
	inFlight bool

	result *progress.SubmitResult
	notice string
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)

// New creates a PlayerScreen for the given lesson.
func New(svc *progress.Service, snapRepo store.SnapshotRepo, userID, lessonID string) *PlayerScreen {
	return &PlayerScreen{
		svc:      svc,
		snapRepo: snapRepo,
		userID:   userID,
		lessonID: lessonID,
	}
}

func (s *PlayerScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayerScreen) Title() string {
	if lesson, err := s.svc.Catalog().Lesson(s.lessonID); err == nil {
		return lesson.Title
	}
	return "Lesson"
}

func (s *PlayerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "←→", Description: "Switch lesson"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (s *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return s, s.finishSubmit(msg)

	case tea.KeyMsg:
		if s.inFlight {
			return s, nil // one transition at a time
		}
		switch msg.String() {
		case "enter":
			return s, s.startSubmit()
		case "left", "p":
			s.switchLesson(-1)
		case "right", "n":
			s.switchLesson(1)
		}
	}
	return s, nil
}

// startSubmit begins the delayed submit for the current lesson.
func (s *PlayerScreen) startSubmit() tea.Cmd {
	u, err := s.svc.User(s.userID)
	if err != nil {
		return nil
	}
	if u.Status(s.lessonID) != progress.StatusActive {
		s.notice = "Nothing to submit here."
		return nil
	}

	s.inFlight = true
	s.notice = ""
	lessonID := s.lessonID
	return tea.Tick(submitDelay, func(time.Time) tea.Msg {
		return submitDoneMsg{lessonID: lessonID}
	})
}

// finishSubmit applies the transition once the delay has elapsed.
func (s *PlayerScreen) finishSubmit(msg submitDoneMsg) tea.Cmd {
	s.inFlight = false

	ctx := context.Background()
	res, err := s.svc.SubmitLesson(ctx, s.userID, msg.lessonID)
	if err != nil {
		s.notice = "Submit failed: " + err.Error()
		return nil
	}
	_ = s.svc.Persist(ctx, s.snapRepo)

	s.result = res
	switch {
	case res.NewStatus == progress.StatusPendingReview:
		s.notice = "Handed in! Your teacher will review this checkpoint."
	case res.ExpandModuleID != "":
		s.notice = "Module complete! The next module is now open."
	case res.UnlockedLessonID != "":
		s.notice = "Nice work! The next lesson is unlocked."
	default:
		s.notice = "Lesson complete. That's the end of the course!"
	}
	return nil
}

// switchLesson moves to the adjacent accessible lesson. Ignored while
// a submit is in flight.
func (s *PlayerScreen) switchLesson(delta int) {
	cat := s.svc.Catalog()
	accessible, err := s.svc.AccessibleLessons(s.userID)
	if err != nil {
		return
	}

	lessons := cat.Lessons()
	pos := cat.Position(s.lessonID)
	for i := pos + delta; i >= 0 && i < len(lessons); i += delta {
		if !accessible[lessons[i].ID] {
			continue
		}
		if err := s.svc.SetActiveLesson(s.userID, lessons[i].ID); err != nil {
			return
		}
		s.lessonID = lessons[i].ID
		s.result = nil
		s.notice = ""
		_ = s.svc.Persist(context.Background(), s.snapRepo)
		return
	}
}

func (s *PlayerScreen) View(width, height int) string {
	lesson, err := s.svc.Catalog().Lesson(s.lessonID)
	if err != nil {
		return theme.Hint.Render("  Lesson no longer exists.")
	}
	u, err := s.svc.User(s.userID)
	if err != nil {
		return theme.Hint.Render("  Profile no longer exists.")
	}

	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderMeta(lesson, u))
	b.WriteString("\n\n")
	b.WriteString(components.Card(wrap(lesson.Content, cw-6), cw))
	b.WriteString("\n")

	if u.Status(s.lessonID) == progress.StatusPendingReview {
		b.WriteString("\n" + components.AccentCard(
			"📨 Submitted and awaiting review.\nYour teacher validates this checkpoint from the admin console.",
			cw, "info"))
	}

	switch {
	case s.inFlight:
		b.WriteString("\n" + theme.Hint.Render("  ♪ Submitting..."))
	case s.notice != "":
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("  "+s.notice))
	case u.Status(s.lessonID) == progress.StatusActive:
		b.WriteString("\n" + theme.Hint.Render("  Press Enter when you've practiced this lesson."))
	}

	return b.String()
}

func (s *PlayerScreen) renderMeta(lesson curriculum.Lesson, u *progress.User) string {
	module, _ := s.svc.Catalog().Module(lesson.ModuleID)

	kind := "lesson"
	if lesson.Type == curriculum.TypePractice {
		kind = "practice checkpoint"
	}

	meta := fmt.Sprintf("%s · %s · %s · %d min",
		module.Title, kind, strings.Repeat("♦", lesson.Difficulty), lesson.DurationMins)

	status := string(u.Status(lesson.ID))
	if lesson.ValidationRequired && u.Validated[lesson.ID] {
		status += " · validated ★"
	}

	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(lesson.Title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta+"  ["+status+"]")
}

// wrap does simple word wrapping at the given width.
func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			if line == "" {
				line = word
				continue
			}
			if len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
