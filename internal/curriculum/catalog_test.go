package curriculum

import "testing"

func TestNew_RejectsInvalidModules(t *testing.T) {
	tests := []struct {
		name    string
		modules []Module
	}{
		{"duplicate lesson IDs", []Module{{
			ID: "m", Title: "M",
			Lessons: []Lesson{
				{ID: "x", Title: "X", Type: TypeStandard, Difficulty: 1},
				{ID: "x", Title: "X2", Type: TypeStandard, Difficulty: 1},
			},
		}}},
		{"empty module", []Module{{ID: "m", Title: "M"}}},
		{"bad difficulty", []Module{{
			ID: "m", Title: "M",
			Lessons: []Lesson{{ID: "x", Title: "X", Type: TypeStandard, Difficulty: 0}},
		}}},
		{"unknown type", []Module{{
			ID: "m", Title: "M",
			Lessons: []Lesson{{ID: "x", Title: "X", Type: "quiz", Difficulty: 1}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.modules); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCatalog_OrderAndNext(t *testing.T) {
	c := testCatalog(t)

	order := []string{"a", "c1", "b", "c2", "d"}
	lessons := c.Lessons()
	if len(lessons) != len(order) {
		t.Fatalf("lesson count = %d, want %d", len(lessons), len(order))
	}
	for i, id := range order {
		if lessons[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, lessons[i].ID, id)
		}
		if c.Position(id) != i {
			t.Errorf("Position(%q) = %d, want %d", id, c.Position(id), i)
		}
	}

	next, ok := c.Next("b")
	if !ok || next.ID != "c2" {
		t.Errorf("Next(b) = %q, want c2", next.ID)
	}
	if _, ok := c.Next("d"); ok {
		t.Error("Next at end of curriculum should report false")
	}
	if _, ok := c.Next("nope"); ok {
		t.Error("Next for unknown lesson should report false")
	}
}

func TestCatalog_Checkpoints(t *testing.T) {
	c := testCatalog(t)

	cps := c.Checkpoints()
	if len(cps) != 2 || cps[0].ID != "c1" || cps[1].ID != "c2" {
		t.Fatalf("checkpoints = %v", cps)
	}
	if c.CheckpointCount() != 2 {
		t.Errorf("CheckpointCount = %d, want 2", c.CheckpointCount())
	}
	if got := c.CheckpointPoints(); got != 5 {
		t.Errorf("CheckpointPoints = %d, want 5", got)
	}
	if !c.IsCheckpoint("c1") || c.IsCheckpoint("a") {
		t.Error("IsCheckpoint misclassified")
	}
}

func TestLesson_PointsFallback(t *testing.T) {
	if (Lesson{Difficulty: 0}).Points() != 1 {
		t.Error("missing difficulty should weigh 1")
	}
	if (Lesson{Difficulty: 4}).Points() != 4 {
		t.Error("difficulty should pass through")
	}
}

func TestSeedCatalog_Valid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed curriculum invalid: %v", err)
	}
	if Default().CheckpointCount() < 4 {
		t.Errorf("seed curriculum needs at least MIN_VALIDATIONS checkpoints, got %d",
			Default().CheckpointCount())
	}
}
