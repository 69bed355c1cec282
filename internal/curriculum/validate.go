package curriculum

import (
	"fmt"
	"strings"
)

// validateModules performs all structural checks on the authored modules.
// Returns a combined error describing all problems found, or nil if valid.
func validateModules(modules []Module) error {
	var errs []string

	moduleIDs := make(map[string]bool, len(modules))
	lessonIDs := make(map[string]bool)

	for _, m := range modules {
		if m.ID == "" {
			errs = append(errs, "module with empty ID")
		}
		if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleIDs[m.ID] = true

		if len(m.Lessons) == 0 {
			errs = append(errs, fmt.Sprintf("module %q has no lessons", m.ID))
		}

		for _, l := range m.Lessons {
			prefix := fmt.Sprintf("lesson %q", l.ID)
			if l.ID == "" {
				errs = append(errs, fmt.Sprintf("module %q contains a lesson with empty ID", m.ID))
				continue
			}
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
			}
			lessonIDs[l.ID] = true

			if l.Title == "" {
				errs = append(errs, prefix+": empty title")
			}
			if !l.Type.IsValid() {
				errs = append(errs, fmt.Sprintf("%s: unknown type %q", prefix, l.Type))
			}
			if l.Difficulty < 1 {
				errs = append(errs, fmt.Sprintf("%s: Difficulty must be >= 1, got %d", prefix, l.Difficulty))
			}
			if l.DurationMins < 0 {
				errs = append(errs, fmt.Sprintf("%s: DurationMins must be >= 0, got %d", prefix, l.DurationMins))
			}
			if l.ModuleID != "" && l.ModuleID != m.ID {
				errs = append(errs, fmt.Sprintf("%s: ModuleID %q does not match containing module %q", prefix, l.ModuleID, m.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate checks the active catalog for structural issues.
func Validate() error {
	return validateModules(defaultCatalog.modules)
}
