// Package render - lead-capture mailto link
package render

import (
	"fmt"
	"net/url"
	"strings"

	"roicheck/core/output"
	"roicheck/core/types"
)

// MailtoLink builds a pre-filled outbound email summarizing the result.
// Pure string templating; spaces are encoded as %20 so mail clients
// keep the body readable.
func MailtoLink(recipient, productName string, result *types.ROIResult) string {
	p := result.Profile

	subject := fmt.Sprintf("%s - ROI quick check follow-up (%s plan)", productName, result.RecommendedPlan.Label())

	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\nWe ran the %s ROI quick check and would like to talk.\n\n", productName)
	fmt.Fprintf(&b, "Organization: %d staff, %d IT/Sec FTE, %s maturity, HIPAA: %v\n",
		p.Staff, p.ITStaff, p.Maturity.Label(), p.HIPAARequired)
	fmt.Fprintf(&b, "Recommended plan: %s\n", result.RecommendedPlan.Label())
	fmt.Fprintf(&b, "Monthly workload reduction: %s (%s/mo)\n",
		output.Hours(result.MonthlyHoursSaved), output.Currency(result.MonthlyLaborSavings))
	fmt.Fprintf(&b, "Annual avoided losses: %s\n", output.Currency(result.AnnualAvoidedLoss))
	fmt.Fprintf(&b, "Investment cap: %s/mo\n", output.Currency(result.MonthlyInvestmentCap))

	return "mailto:" + recipient + "?subject=" + escape(subject) + "&body=" + escape(b.String())
}

// escape is QueryEscape with %20 spaces, which mail clients handle
// more consistently than '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
