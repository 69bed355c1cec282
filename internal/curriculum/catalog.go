package curriculum

import (
	"fmt"
	"slices"
)

// Catalog holds the authored modules with precomputed indices over the
// flattened, position-ordered lesson list.
type Catalog struct {
	modules     []Module
	lessons     []Lesson
	byID        map[string]*Lesson
	position    map[string]int
	moduleByID  map[string]*Module
	checkpoints []Lesson
}

// defaultCatalog is the package-level catalog singleton, set by init()
// in seed.go and replaceable via Replace (custom curriculum files).
var defaultCatalog *Catalog

// Default returns the active catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Replace swaps the active catalog. Used by the loader and by tests.
func Replace(c *Catalog) {
	defaultCatalog = c
}

// New builds a catalog from authored modules, validating the structure
// and computing all indices.
func New(modules []Module) (*Catalog, error) {
	if err := validateModules(modules); err != nil {
		return nil, err
	}

	c := &Catalog{
		modules:    modules,
		byID:       make(map[string]*Lesson),
		position:   make(map[string]int),
		moduleByID: make(map[string]*Module),
	}

	for i := range c.modules {
		m := &c.modules[i]
		c.moduleByID[m.ID] = m
		for j := range m.Lessons {
			m.Lessons[j].ModuleID = m.ID
			c.lessons = append(c.lessons, m.Lessons[j])
		}
	}

	for i := range c.lessons {
		l := &c.lessons[i]
		c.byID[l.ID] = l
		c.position[l.ID] = i
		if l.ValidationRequired {
			c.checkpoints = append(c.checkpoints, *l)
		}
	}

	return c, nil
}

// Modules returns the authored modules in order.
func (c *Catalog) Modules() []Module {
	return slices.Clone(c.modules)
}

// Lessons returns all lessons in catalog (dependency) order.
func (c *Catalog) Lessons() []Lesson {
	return slices.Clone(c.lessons)
}

// Lesson returns a lesson by ID, or an error if it does not exist.
func (c *Catalog) Lesson(id string) (Lesson, error) {
	l, ok := c.byID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return *l, nil
}

// Module returns a module by ID, or an error if it does not exist.
func (c *Catalog) Module(id string) (Module, error) {
	m, ok := c.moduleByID[id]
	if !ok {
		return Module{}, fmt.Errorf("module not found: %q", id)
	}
	return *m, nil
}

// Position returns the catalog position of a lesson ID, or -1 if the
// lesson does not exist.
func (c *Catalog) Position(id string) int {
	p, ok := c.position[id]
	if !ok {
		return -1
	}
	return p
}

// Next returns the lesson following id in catalog order. The second
// return value is false at the end of the curriculum or for an
// unknown id.
func (c *Catalog) Next(id string) (Lesson, bool) {
	p, ok := c.position[id]
	if !ok || p+1 >= len(c.lessons) {
		return Lesson{}, false
	}
	return c.lessons[p+1], true
}

// First returns the first lesson of the curriculum. The second return
// value is false for an empty catalog.
func (c *Catalog) First() (Lesson, bool) {
	if len(c.lessons) == 0 {
		return Lesson{}, false
	}
	return c.lessons[0], true
}

// Checkpoints returns all lessons flagged ValidationRequired, in
// catalog order.
func (c *Catalog) Checkpoints() []Lesson {
	return slices.Clone(c.checkpoints)
}

// CheckpointCount returns the number of checkpoint lessons.
func (c *Catalog) CheckpointCount() int {
	return len(c.checkpoints)
}

// CheckpointPoints sums the difficulty weights of all checkpoints.
func (c *Catalog) CheckpointPoints() int {
	total := 0
	for _, l := range c.checkpoints {
		total += l.Points()
	}
	return total
}

// IsCheckpoint reports whether id names a checkpoint lesson.
func (c *Catalog) IsCheckpoint(id string) bool {
	l, ok := c.byID[id]
	return ok && l.ValidationRequired
}
