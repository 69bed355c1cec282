package curriculum

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCurriculum(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curriculum.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp curriculum: %v", err)
	}
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeCurriculum(t, `{
		"modules": [
			{
				"id": "campfire",
				"title": "Campfire Songs",
				"estimated_weeks": 2,
				"lessons": [
					{"id": "l1", "title": "Three Chord Song", "type": "standard", "difficulty": 2},
					{"id": "l2", "title": "Play It Through", "type": "practice", "validation_required": true, "difficulty": 3}
				]
			}
		]
	}`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Lessons()) != 2 {
		t.Errorf("lesson count = %d, want 2", len(c.Lessons()))
	}
	if !c.IsCheckpoint("l2") {
		t.Error("l2 should be a checkpoint")
	}
	l, err := c.Lesson("l1")
	if err != nil || l.ModuleID != "campfire" {
		t.Errorf("l1 module = %q, want campfire", l.ModuleID)
	}
}

func TestLoad_SchemaRejection(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{`},
		{"no modules", `{}`},
		{"unknown lesson type", `{"modules":[{"id":"m","title":"M","lessons":[
			{"id":"l","title":"L","type":"video","difficulty":1}]}]}`},
		{"difficulty out of range", `{"modules":[{"id":"m","title":"M","lessons":[
			{"id":"l","title":"L","type":"standard","difficulty":0}]}]}`},
		{"missing title", `{"modules":[{"id":"m","title":"M","lessons":[
			{"id":"l","type":"standard","difficulty":1}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCurriculum(t, tt.body)
			if _, err := Load(path); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
