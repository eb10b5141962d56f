package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernvale/bloomwatch/internal/config"
	"github.com/fernvale/bloomwatch/internal/store"
)

// importCmd bulk-loads observation counts from a CSV file.
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import observation counts from a CSV file",
	Long: `Import monthly observation counts for a garden from a CSV file with
rows of the form year,month,count (a header row is allowed). Existing
counts for the same months are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("garden", "", "garden ID the observations belong to (required)")
	_ = importCmd.MarkFlagRequired("garden")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gardenID, _ := cmd.Flags().GetString("garden")

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.ImportCSV(ctx, gardenID, f)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d observation rows for %s into %s\n", n, gardenID, cfg.DBPath)
	return nil
}
