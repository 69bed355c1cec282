package cmd

import (
	"github.com/fretwise/fretwise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretwise",
	Short: "Terminal guitar school",
	Long:  "Fretwise — a terminal guitar school with gated lessons, teacher-graded checkpoints, and a completion forecast.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FRETWISE_DB env var)")
	rootCmd.PersistentFlags().String("curriculum", "", "Path to a custom curriculum JSON file")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(addUserCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FRETWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
