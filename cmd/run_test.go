package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/spf13/cobra"
)

func curriculumFlagCmd(t *testing.T, path string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().String("curriculum", "", "")
	if path != "" {
		if err := cmd.Flags().Set("curriculum", path); err != nil {
			t.Fatalf("set flag: %v", err)
		}
	}
	return cmd
}

func writeCurriculumFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curriculum.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write curriculum: %v", err)
	}
	return path
}

func TestApplyCurriculumFlag(t *testing.T) {
	orig := curriculum.Default()
	t.Cleanup(func() { curriculum.Replace(orig) })

	t.Run("unset keeps the built-in catalog", func(t *testing.T) {
		if err := applyCurriculumFlag(curriculumFlagCmd(t, "")); err != nil {
			t.Fatalf("applyCurriculumFlag: %v", err)
		}
		if curriculum.Default() != orig {
			t.Error("catalog replaced without a --curriculum flag")
		}
	})

	t.Run("valid file replaces the catalog", func(t *testing.T) {
		path := writeCurriculumFile(t, `{
			"modules": [
				{
					"id": "campfire",
					"title": "Campfire Songs",
					"lessons": [
						{"id": "l1", "title": "Three Chord Song", "type": "standard", "difficulty": 2},
						{"id": "l2", "title": "Play It Through", "type": "practice", "validation_required": true, "difficulty": 3}
					]
				}
			]
		}`)

		if err := applyCurriculumFlag(curriculumFlagCmd(t, path)); err != nil {
			t.Fatalf("applyCurriculumFlag: %v", err)
		}
		if got := len(curriculum.Default().Lessons()); got != 2 {
			t.Errorf("active catalog has %d lessons, want 2", got)
		}
		curriculum.Replace(orig)
	})

	t.Run("invalid file errors and keeps the catalog", func(t *testing.T) {
		path := writeCurriculumFile(t, `{"modules": []}`)

		if err := applyCurriculumFlag(curriculumFlagCmd(t, path)); err == nil {
			t.Fatal("expected an error for an invalid curriculum")
		}
		if curriculum.Default() != orig {
			t.Error("catalog replaced despite load failure")
		}
	})
}
