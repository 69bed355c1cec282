package cmd

import (
	"fmt"

	"github.com/fretwise/fretwise/internal/app"
	"github.com/fretwise/fretwise/internal/curriculum"
	"github.com/fretwise/fretwise/internal/store"
	"github.com/spf13/cobra"
)

// applyCurriculumFlag swaps the active catalog for a user-supplied
// curriculum file when --curriculum is set. Must run before any
// service is built from a snapshot.
func applyCurriculumFlag(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("curriculum")
	if path == "" {
		return nil
	}
	cat, err := curriculum.Load(path)
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}
	curriculum.Replace(cat)
	return nil
}

// runApp opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if err := applyCurriculumFlag(cmd); err != nil {
		return err
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		SnapshotRepo: st.SnapshotRepo(),
		EventRepo:    st.EventRepo(),
	})
}

// openService loads the progression service for non-TUI commands.
func openService(cmd *cobra.Command) (*serviceHandle, error) {
	if err := applyCurriculumFlag(cmd); err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}

	return &serviceHandle{store: st, snapshot: data}, nil
}

// serviceHandle bundles an open store with its loaded snapshot.
type serviceHandle struct {
	store    *store.Store
	snapshot *store.SnapshotData
}

func (h *serviceHandle) Close() error {
	return h.store.Close()
}
