// Package cmd provides the CLI commands for roicheck.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roicheck/internal/config"
	"roicheck/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roicheck",
	Short: "Estimate the ROI of adopting managed security controls",
	Long: `roicheck is a value-first ROI quick-check calculator.

Given a handful of organizational inputs (staff count, IT headcount,
control maturity, HIPAA applicability, labor rate, device count) it
computes workload savings, avoided-loss estimates, a recommended plan
tier, and a monthly investment cap (the ROI = 0 boundary).

Examples:
  roicheck evaluate --staff 50 --it-staff 1 --maturity minimum --hipaa
  roicheck evaluate --profile org.hcl --format json
  roicheck assumptions`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.roicheck.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(assumptionsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("roicheck version 1.0.0")
	},
}

// configCmd shows the active configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
