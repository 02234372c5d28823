// Package cmd - evaluate command
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roicheck/core/input"
	"roicheck/core/output"
	"roicheck/core/roi"
	"roicheck/core/types"
	"roicheck/internal/config"
	"roicheck/internal/logging"
)

var (
	profileFile  string
	outputFormat string

	staff       int
	itStaff     int
	maturity    string
	hipaa       bool
	deviceCount int
	hourlyCost  float64
	lossPerInc  float64
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the ROI for an organization profile",
	Long: `Compute the ROI quick-check metrics for one organization.

The profile comes either from flags or from a .hcl/.json profile file.
Money fields left unset fall back to the configured defaults.

Examples:
  roicheck evaluate --staff 50 --it-staff 1 --maturity minimum --hipaa
  roicheck evaluate --profile org.hcl
  roicheck evaluate --profile org.json --format json`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&profileFile, "profile", "p", "", "profile file (.hcl or .json)")
	evaluateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")

	evaluateCmd.Flags().IntVar(&staff, "staff", 50, "total headcount")
	evaluateCmd.Flags().IntVar(&itStaff, "it-staff", 1, "dedicated IT/Security FTE")
	evaluateCmd.Flags().StringVar(&maturity, "maturity", "minimum", "control maturity (minimum, standard, advanced)")
	evaluateCmd.Flags().BoolVar(&hipaa, "hipaa", true, "HIPAA applies")
	evaluateCmd.Flags().IntVar(&deviceCount, "devices", 0, "endpoint count (0 = estimate from staff)")
	evaluateCmd.Flags().Float64Var(&hourlyCost, "hourly", 0, "blended labor cost in $/hour (0 = default)")
	evaluateCmd.Flags().Float64Var(&lossPerInc, "loss", 0, "loss per incident in USD (0 = default)")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	assumptions := cfg.Calculator.Assumptions()

	calc, err := roi.NewCalculator(assumptions)
	if err != nil {
		return fmt.Errorf("invalid calculator assumptions: %w", err)
	}

	profile, err := buildProfile(assumptions)
	if err != nil {
		return err
	}

	logging.Debug("evaluating profile",
		zap.Int("staff", profile.Staff),
		zap.String("maturity", profile.Maturity.String()))

	result, err := calc.Evaluate(profile)
	if err != nil {
		return err
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, result)
}

func buildProfile(assumptions roi.Assumptions) (types.OrganizationProfile, error) {
	if profileFile != "" {
		return input.LoadProfile(profileFile, assumptions)
	}

	level, err := types.ParseMaturityLevel(maturity)
	if err != nil {
		return types.OrganizationProfile{}, err
	}

	hourly := assumptions.DefaultHourlyLaborCost
	if hourlyCost > 0 {
		hourly = decimal.NewFromFloat(hourlyCost)
	}
	loss := assumptions.DefaultLossPerIncident
	if lossPerInc > 0 {
		loss = decimal.NewFromFloat(lossPerInc)
	}

	return types.OrganizationProfile{
		Staff:           staff,
		ITStaff:         itStaff,
		Maturity:        level,
		HIPAARequired:   hipaa,
		HourlyLaborCost: hourly,
		DeviceCount:     deviceCount,
		LossPerIncident: loss,
	}, nil
}
