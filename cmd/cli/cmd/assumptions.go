// Package cmd - assumptions command
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"roicheck/internal/config"
)

// assumptionsCmd represents the assumptions command
var assumptionsCmd = &cobra.Command{
	Use:   "assumptions",
	Short: "Show the active calculator assumptions",
	Long: `Print the coefficient set the calculator is currently using,
including any overrides from the configuration file.`,
	RunE: runAssumptions,
}

func runAssumptions(cmd *cobra.Command, args []string) error {
	assumptions := config.Get().Calculator.Assumptions()

	data, err := json.MarshalIndent(assumptions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal assumptions: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
