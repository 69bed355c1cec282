package cmd

import (
	"fmt"
	"time"

	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/forecast"
	"github.com/fretwise/fretwise/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression and forecast for every profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openService(cmd)
		if err != nil {
			return err
		}
		defer h.Close()

		cat := curriculum.Default()
		svc := progress.NewService(h.snapshot, cat, h.store.EventRepo())
		now := time.Now()

		for _, u := range svc.Users() {
			r := forecast.Build(u, cat, now)

			fmt.Printf("%s (%s)\n", u.Name, u.Role)
			fmt.Printf("  progress:   %d%% (%d/%d checkpoints)\n",
				r.Percent, r.ValidatedCount, r.ValidatedCount+r.RemainingCount)
			fmt.Printf("  points:     %d\n", u.Points)
			if r.IsCalibrating {
				fmt.Printf("  forecast:   %s %s\n", r.Icon, r.Message)
			} else {
				fmt.Printf("  forecast:   %s %s (%.2f pts/day, finish %s)\n",
					r.Icon, r.Status.Label(), r.Velocity, r.ProjectedDateStr)
			}
			fmt.Printf("  last grade: %d days ago\n\n", r.DaysSinceLastAction)
		}

		return nil
	},
}
