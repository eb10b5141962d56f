package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fernvale/bloomwatch/internal/config"
	"github.com/fernvale/bloomwatch/internal/garden"
)

// gardensCmd lists the registered gardens with their scores and tiers.
var gardensCmd = &cobra.Command{
	Use:   "gardens",
	Short: "List registered gardens with scores and tiers",
	Args:  cobra.NoArgs,
	RunE:  runGardens,
}

func init() {
	rootCmd.AddCommand(gardensCmd)
}

func runGardens(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	reg, err := garden.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		return err
	}
	if len(reg.Gardens) == 0 {
		fmt.Printf("no gardens registered in %s\n", cfg.RegistryPath)
		return nil
	}

	gardens := append([]garden.Garden(nil), reg.Gardens...)
	garden.SortByName(gardens)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tSCORE\tTIER\tGRANTS")
	for _, g := range gardens {
		score := g.Score()
		tier := garden.TierFor(score)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\n",
			g.ID, g.Name, g.City, score, tier, len(garden.EligibleGrants(tier)))
	}
	return w.Flush()
}
