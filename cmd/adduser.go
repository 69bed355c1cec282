package cmd

import (
	"fmt"
	"strings"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/progress"
	"github.com/spf13/cobra"
)

var addUserRole string

var addUserCmd = &cobra.Command{
	Use:   "add-user <name>",
	Short: "Create a new profile without opening the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := progress.Role(strings.ToLower(addUserRole))
		if !role.IsValid() {
			return fmt.Errorf("invalid role %q (want student or admin)", addUserRole)
		}

		h, err := openService(cmd)
		if err != nil {
			return err
		}
		defer h.Close()

		svc := progress.NewService(h.snapshot, curriculum.Default(), h.store.EventRepo())
		u, err := svc.AddUser(args[0], role)
		if err != nil {
			return err
		}
		if err := svc.Persist(cmd.Context(), h.store.SnapshotRepo()); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}

		fmt.Printf("created %s profile %q\n", u.Role, u.Name)
		return nil
	},
}

func init() {
	addUserCmd.Flags().StringVar(&addUserRole, "role", "student", "profile role (student or admin)")
}
