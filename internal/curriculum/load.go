package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchema caches the compiled curriculum schema.
var compiledSchema struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

type lessonFile struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Type               string `json:"type"`
	ValidationRequired bool   `json:"validation_required"`
	Difficulty         int    `json:"difficulty"`
	DurationMins       int    `json:"duration_mins"`
	Content            string `json:"content"`
}

type moduleFile struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	EstimatedWeeks int          `json:"estimated_weeks"`
	Lessons        []lessonFile `json:"lessons"`
}

type curriculumFile struct {
	Modules []moduleFile `json:"modules"`
}

// Load reads a curriculum JSON file, validates it against the
// curriculum schema and builds a catalog from it. The active catalog
// is not replaced; callers decide whether to call Replace.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse curriculum: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile curriculum schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("curriculum schema validation failed: %w", err)
	}

	var cf curriculumFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}

	modules := make([]Module, 0, len(cf.Modules))
	for _, mf := range cf.Modules {
		m := Module{
			ID:             mf.ID,
			Title:          mf.Title,
			EstimatedWeeks: mf.EstimatedWeeks,
		}
		for _, lf := range mf.Lessons {
			m.Lessons = append(m.Lessons, Lesson{
				ID:                 lf.ID,
				ModuleID:           mf.ID,
				Title:              lf.Title,
				Type:               LessonType(lf.Type),
				ValidationRequired: lf.ValidationRequired,
				Difficulty:         lf.Difficulty,
				DurationMins:       lf.DurationMins,
				Content:            lf.Content,
			})
		}
		modules = append(modules, m)
	}

	return New(modules)
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledSchema.once.Do(func() {
		// The compiler expects a clean json-decoded value; round-trip the
		// definition through encoding/json to normalize the numbers.
		defBytes, err := json.Marshal(curriculumSchema)
		if err != nil {
			compiledSchema.err = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compiledSchema.err = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://curriculum.json", defParsed); err != nil {
			compiledSchema.err = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema.schema, compiledSchema.err = c.Compile("schema://curriculum.json")
	})
	return compiledSchema.schema, compiledSchema.err
}
