package curriculum

// LessonType distinguishes how a lesson is finished in the player.
type LessonType string

const (
	// TypeStandard lessons complete as soon as the student submits them.
	TypeStandard LessonType = "standard"
	// TypePractice lessons are handed in and wait for an admin review
	// before they count as completed.
	TypePractice LessonType = "practice"
)

// IsValid reports whether t is a known lesson type.
func (t LessonType) IsValid() bool {
	return t == TypeStandard || t == TypePractice
}

// Lesson is a single unit of the curriculum. Lessons are identified by
// a stable string ID and globally ordered by their catalog position.
type Lesson struct {
	ID       string
	ModuleID string
	Title    string
	Type     LessonType

	// ValidationRequired marks the lesson as a checkpoint: progress past
	// it requires an explicit admin validation for the student.
	ValidationRequired bool

	// Difficulty is the point weight of the lesson (>= 1). Checkpoint
	// weights feed the forecast engine's velocity computation.
	Difficulty int

	// DurationMins is the estimated time to work through the lesson.
	DurationMins int

	// Content is the lesson body shown in the player.
	Content string
}

// Points returns the lesson's difficulty weight, falling back to 1
// when the authored difficulty is missing or invalid.
func (l Lesson) Points() int {
	if l.Difficulty < 1 {
		return 1
	}
	return l.Difficulty
}

// Module groups an ordered run of lessons. The lesson order is
// semantically meaningful: it defines the dependency order the
// accessibility resolver walks.
type Module struct {
	ID             string
	Title          string
	EstimatedWeeks int
	Lessons        []Lesson
}
