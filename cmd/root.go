package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "bloomwatch",
	Short: "Pollinator habitat observation dashboard",
	Long: "Bloomwatch tracks pollinator-garden habitat observations and lets you\n" +
		"scrub, animate and aggregate them across month, year and season views.",
	RunE: runRootDefault,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .bloomwatch.yaml)")
	rootCmd.PersistentFlags().String("db", "", "observation database path")
	_ = viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".bloomwatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("BLOOMWATCH")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault auto-launches the dashboard when an observation
// database exists in the cwd. Otherwise it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	dbPath := viper.GetString("db_path")
	if dbPath == "" {
		dbPath = "observations.db"
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return cmd.Help()
	}
	return runDashboard(dashboardCmd, nil)
}
