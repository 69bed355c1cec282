package curriculum

import "testing"

// testCatalog builds a two-module catalog with checkpoints at c1 and c2.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]Module{
		{
			ID:    "m1",
			Title: "Module One",
			Lessons: []Lesson{
				{ID: "a", Title: "A", Type: TypeStandard, Difficulty: 1},
				{ID: "c1", Title: "C1", Type: TypePractice, ValidationRequired: true, Difficulty: 2},
				{ID: "b", Title: "B", Type: TypeStandard, Difficulty: 1},
			},
		},
		{
			ID:    "m2",
			Title: "Module Two",
			Lessons: []Lesson{
				{ID: "c2", Title: "C2", Type: TypePractice, ValidationRequired: true, Difficulty: 3},
				{ID: "d", Title: "D", Type: TypeStandard, Difficulty: 1},
			},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func keys(m map[string]bool) []string {
	var out []string
	for k, v := range m {
		if v {
			out = append(out, k)
		}
	}
	return out
}

func TestAccessibleLessons_TruncatesAtFirstUnmetCheckpoint(t *testing.T) {
	c := testCatalog(t)

	got := c.AccessibleLessons(nil, nil, false)

	// a and c1 are reachable; c1 is unmet so everything after is not.
	want := map[string]bool{"a": true, "c1": true}
	if len(got) != len(want) {
		t.Fatalf("accessible = %v, want %v", keys(got), keys(want))
	}
	for id := range want {
		if !got[id] {
			t.Errorf("expected %q accessible", id)
		}
	}
}

func TestAccessibleLessons_PrefixProperty(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name      string
		validated map[string]bool
		want      []string
	}{
		{"nothing validated", nil, []string{"a", "c1"}},
		{"first checkpoint met", map[string]bool{"c1": true}, []string{"a", "c1", "b", "c2"}},
		{"all checkpoints met", map[string]bool{"c1": true, "c2": true}, []string{"a", "c1", "b", "c2", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.AccessibleLessons(tt.validated, nil, false)
			if len(got) != len(tt.want) {
				t.Fatalf("accessible = %v, want %v", keys(got), tt.want)
			}
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("expected %q accessible", id)
				}
			}
			// Accessible set must be a prefix of the walk order: every
			// lesson before the last accessible one is accessible too.
			last := -1
			for _, l := range c.Lessons() {
				if got[l.ID] {
					last = c.Position(l.ID)
				}
			}
			for _, l := range c.Lessons() {
				if c.Position(l.ID) <= last && !got[l.ID] {
					t.Errorf("gap in prefix at %q", l.ID)
				}
			}
		})
	}
}

func TestAccessibleLessons_AdminBypass(t *testing.T) {
	c := testCatalog(t)

	got := c.AccessibleLessons(nil, map[string]bool{"a": true}, true)

	if len(got) != 5 {
		t.Fatalf("admin accessible count = %d, want 5", len(got))
	}
	for _, l := range c.Lessons() {
		if !got[l.ID] {
			t.Errorf("admin should access %q", l.ID)
		}
	}
}

func TestAccessibleLessons_HiddenLessonSkipped(t *testing.T) {
	c := testCatalog(t)

	// Hiding the blocking checkpoint removes it from the walk entirely:
	// it no longer gates, so the walk continues to the next checkpoint.
	got := c.AccessibleLessons(nil, map[string]bool{"c1": true}, false)

	if got["c1"] {
		t.Error("hidden lesson must not be accessible")
	}
	for _, id := range []string{"a", "b", "c2"} {
		if !got[id] {
			t.Errorf("expected %q accessible with c1 hidden", id)
		}
	}
	if got["d"] {
		t.Error("d should stay blocked behind unmet c2")
	}
}

func TestAccessibleLessons_NoCheckpoints(t *testing.T) {
	c, err := New([]Module{{
		ID:    "m",
		Title: "M",
		Lessons: []Lesson{
			{ID: "x", Title: "X", Type: TypeStandard, Difficulty: 1},
			{ID: "y", Title: "Y", Type: TypeStandard, Difficulty: 1},
		},
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := c.AccessibleLessons(nil, nil, false)
	if len(got) != 2 {
		t.Errorf("accessible count = %d, want entire catalog", len(got))
	}
}

func TestFirstUnmetCheckpoint(t *testing.T) {
	c := testCatalog(t)

	l, ok := c.FirstUnmetCheckpoint(nil, nil)
	if !ok || l.ID != "c1" {
		t.Errorf("first unmet = %q, want c1", l.ID)
	}

	l, ok = c.FirstUnmetCheckpoint(map[string]bool{"c1": true}, nil)
	if !ok || l.ID != "c2" {
		t.Errorf("first unmet = %q, want c2", l.ID)
	}

	_, ok = c.FirstUnmetCheckpoint(map[string]bool{"c1": true, "c2": true}, nil)
	if ok {
		t.Error("expected no unmet checkpoint")
	}
}
