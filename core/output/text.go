// Package output - terminal report formatter
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"roicheck/core/types"
)

// Tone thresholds for the maturity-driven reduction rates. These mirror
// the badge coloring on the web surface.
var (
	toneHigh     = decimal.NewFromFloat(0.28)
	toneModerate = decimal.NewFromFloat(0.20)
	badgeGreen   = decimal.NewFromFloat(0.30)
	badgeAmber   = decimal.NewFromFloat(0.20)
)

// ImprovementTone words the phishing-reduction potential.
func ImprovementTone(rate decimal.Decimal) string {
	switch {
	case rate.GreaterThanOrEqual(toneHigh):
		return "High"
	case rate.GreaterThanOrEqual(toneModerate):
		return "Moderate"
	default:
		return "Modest"
	}
}

// ReductionBadge picks the badge color for the ops reduction rate.
func ReductionBadge(rate decimal.Decimal) string {
	switch {
	case rate.GreaterThanOrEqual(badgeGreen):
		return "green"
	case rate.GreaterThanOrEqual(badgeAmber):
		return "amber"
	default:
		return "gray"
	}
}

// NeutralPlanReason is shown when no scoring rule triggered.
const NeutralPlanReason = "Smaller footprint and stronger current controls; start with core coverage and grow as needed."

// TextFormatter renders a result as a terminal report.
type TextFormatter struct{}

// Format returns the format type
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render writes the report.
func (f *TextFormatter) Render(w io.Writer, result *types.ROIResult) error {
	p := result.Profile

	section(w, "Recommended plan")
	fmt.Fprintf(w, "  %s\n", result.RecommendedPlan.Label())
	if len(result.PlanReasons) == 0 {
		fmt.Fprintf(w, "  Why: %s\n", NeutralPlanReason)
	} else {
		fmt.Fprintln(w, "  Why:")
		for _, reason := range result.PlanReasons {
			fmt.Fprintf(w, "    - %s\n", reason)
		}
	}

	section(w, "Monthly workload reduction")
	fmt.Fprintf(w, "  %s  (%s/mo equivalent)\n", Hours(result.MonthlyHoursSaved), Currency(result.MonthlyLaborSavings))
	fmt.Fprintf(w, "  Reduction rate: %s  Current load: %s\n", Percent(result.OpsReductionRate), Hours(result.CurrentMonthlyOpsHours))

	section(w, "Phishing risk reduction")
	fmt.Fprintf(w, "  %s  (improvement potential: %s)\n", Percent(result.PhishReductionRate), ImprovementTone(result.PhishReductionRate))

	section(w, "Annual avoided losses (estimate)")
	fmt.Fprintf(w, "  %s  (baseline ~%s incidents/year)\n", Currency(result.AnnualAvoidedLoss), result.AnnualIncidentBaseline.StringFixed(2))

	section(w, "Investment affordability (cap)")
	fmt.Fprintf(w, "  %s/mo\n", Currency(result.MonthlyInvestmentCap))
	fmt.Fprintln(w, "  ROI >= 0 if monthly cost <= this cap. Value-based guide; not a price.")

	section(w, "Inputs snapshot")
	fmt.Fprintf(w, "  Headcount:     %d\n", p.Staff)
	fmt.Fprintf(w, "  IT/Sec FTE:    %d\n", p.ITStaff)
	fmt.Fprintf(w, "  Maturity:      %s\n", p.Maturity.Label())
	fmt.Fprintf(w, "  HIPAA:         %s\n", yesNo(p.HIPAARequired))
	fmt.Fprintf(w, "  Devices:       %d\n", result.Devices)
	fmt.Fprintf(w, "  Hourly cost:   %s/h\n", Currency(p.HourlyLaborCost))
	fmt.Fprintf(w, "  Loss/incident: %s\n", Currency(p.LossPerIncident))

	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
