package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fernvale/bloomwatch/internal/config"
	"github.com/fernvale/bloomwatch/internal/garden"
	"github.com/fernvale/bloomwatch/internal/report"
	"github.com/fernvale/bloomwatch/internal/store"
	"github.com/fernvale/bloomwatch/internal/timeline"
)

// reportCmd renders a habitat report for a registered garden.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a habitat report for a garden",
	Long: `Render a habitat certificate for a registered garden, combining its
registry record (plants, features, size) with its recorded observation
totals. Formats: ` + strings.Join(report.FormatNames(), ", ") + `.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("garden", "", "garden ID to report on (required)")
	reportCmd.Flags().String("format", "text", "report format: "+strings.Join(report.FormatNames(), ", "))
	reportCmd.Flags().StringP("out", "o", "", "write the report to a file instead of stdout")
	_ = reportCmd.MarkFlagRequired("garden")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gardenID, _ := cmd.Flags().GetString("garden")
	formatName, _ := cmd.Flags().GetString("format")

	format, err := report.FormatByName(formatName)
	if err != nil {
		return err
	}

	reg, err := garden.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		return err
	}
	g, ok := reg.Find(gardenID)
	if !ok {
		return fmt.Errorf("garden %q not found in %s", gardenID, cfg.RegistryPath)
	}

	total, peak, err := observationSummary(ctx, cfg.DBPath, gardenID)
	if err != nil {
		return err
	}
	doc, err := format.Render(report.Summarize(g, total, peak))
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s report to %s\n", formatName, out)
		return nil
	}
	fmt.Print(doc)
	return nil
}

// observationSummary loads a garden's total observation count and the
// peak month of its most recent year. A garden without observations
// reports zeros and the report still renders; a database that cannot
// be read is an error, not a zero-count certificate.
func observationSummary(ctx context.Context, dbPath, gardenID string) (total, peak int, err error) {
	st, err := store.Open(ctx, dbPath)
	if err != nil {
		return 0, 0, err
	}
	defer st.Close()

	axis, err := st.LoadAxis(ctx, gardenID)
	if err != nil {
		if errors.Is(err, store.ErrNoObservations) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	for _, y := range axis.Years() {
		total += timeline.CountFor(axis, timeline.Cursor{Year: y}, timeline.ModeYear)
	}
	if p, ok := timeline.PeakMonth(axis, axis.LastYear()); ok {
		peak = p
	}
	return total, peak, nil
}
