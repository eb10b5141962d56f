package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fernvale/bloomwatch/internal/config"
	"github.com/fernvale/bloomwatch/internal/garden"
	"github.com/fernvale/bloomwatch/internal/navigator"
	"github.com/fernvale/bloomwatch/internal/store"
	"github.com/fernvale/bloomwatch/internal/timeline"
	"github.com/fernvale/bloomwatch/internal/tui"
)

// dashboardCmd launches the interactive observation dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive observation dashboard",
	Long: `Launch the bloomwatch dashboard for a garden's observation timeline.
Step through months, years or seasons, or press space to play the
timeline continuously with wraparound.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().String("garden", "", "garden ID to open (default: first with observations)")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if g, _ := cmd.Flags().GetString("garden"); g != "" {
		cfg.Garden = g
	}

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ids, err := st.GardenIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no observations in %s; run `bloomwatch import` first", cfg.DBPath)
	}

	gardenIdx := 0
	if cfg.Garden != "" {
		found := false
		for i, id := range ids {
			if id == cfg.Garden {
				gardenIdx, found = i, true
				break
			}
		}
		if !found {
			return fmt.Errorf("garden %q has no observations", cfg.Garden)
		}
	}

	axis, err := st.LoadAxis(ctx, ids[gardenIdx])
	if err != nil {
		return err
	}

	mode, err := timeline.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	// Land on the most recent year, at its peak month when it has one.
	initial := timeline.Cursor{Year: axis.LastYear()}
	if mode != timeline.ModeYear {
		if peak, ok := timeline.PeakMonth(axis, initial.Year); ok {
			initial.Month = peak
		} else {
			initial.Month = 1
		}
	}

	bridge := tui.NewBridge()
	defer bridge.Close()
	nav, err := navigator.New(axis, initial, mode, bridge.Events())
	if err != nil {
		return err
	}
	defer nav.Close()

	if err := nav.SetIntervalMs(cfg.IntervalMs); err != nil {
		return fmt.Errorf("interval_ms %d: %w", cfg.IntervalMs, err)
	}

	reg, err := garden.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		return err
	}

	model := tui.NewAppModel(nav, bridge, st, reg, ids, gardenIdx)
	program := tea.NewProgram(model, tea.WithAltScreen())
	bridge.Attach(program)

	// Reload the registry when it changes on disk.
	if cfg.WatchRegistry {
		watcher, err := garden.NewWatcher(cfg.RegistryPath)
		if err != nil {
			return fmt.Errorf("watch registry %s: %w", cfg.RegistryPath, err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("watch registry %s: %w", cfg.RegistryPath, err)
		}
		defer watcher.Stop()
		go func() {
			for range watcher.Changes {
				fresh, err := garden.LoadRegistry(cfg.RegistryPath)
				if err != nil {
					program.Send(tui.MsgError{Err: err.Error()})
					continue
				}
				program.Send(tui.MsgRegistryReloaded{Gardens: fresh.Gardens})
			}
		}()
	}

	_, err = program.Run()
	return err
}
