// Package render - card view models
package render

import (
	"roicheck/core/output"
	"roicheck/core/types"
)

// Cards is the display-ready view of one evaluation. Every field is
// pre-formatted; templates do no computation.
type Cards struct {
	PlanLabel   string
	PlanReasons []string

	HoursSaved     string
	LaborSavings   string
	ReductionRate  string
	ReductionBadge string

	PhishRate string
	PhishTone string

	AvoidedLoss       string
	IncidentBaseline  string
	InvestmentCap     string

	Snapshot Snapshot

	MailtoLink string
}

// Snapshot echoes the evaluated inputs.
type Snapshot struct {
	Staff        int
	ITStaff      int
	Maturity     string
	HIPAA        string
	Devices      int
	HourlyCost   string
	LossIncident string
}

// BuildCards formats a result into the card view model. contactEmail
// and productName feed the lead-capture link.
func BuildCards(result *types.ROIResult, productName, contactEmail string) *Cards {
	p := result.Profile

	reasons := result.PlanReasons
	if len(reasons) == 0 {
		reasons = []string{output.NeutralPlanReason}
	}

	hipaa := "No"
	if p.HIPAARequired {
		hipaa = "Yes"
	}

	return &Cards{
		PlanLabel:   result.RecommendedPlan.Label(),
		PlanReasons: reasons,

		HoursSaved:     output.Hours(result.MonthlyHoursSaved),
		LaborSavings:   output.Currency(result.MonthlyLaborSavings),
		ReductionRate:  output.Percent(result.OpsReductionRate),
		ReductionBadge: output.ReductionBadge(result.OpsReductionRate),

		PhishRate: output.Percent(result.PhishReductionRate),
		PhishTone: output.ImprovementTone(result.PhishReductionRate),

		AvoidedLoss:      output.Currency(result.AnnualAvoidedLoss),
		IncidentBaseline: result.AnnualIncidentBaseline.StringFixed(2),
		InvestmentCap:    output.Currency(result.MonthlyInvestmentCap),

		Snapshot: Snapshot{
			Staff:        p.Staff,
			ITStaff:      p.ITStaff,
			Maturity:     p.Maturity.Label(),
			HIPAA:        hipaa,
			Devices:      result.Devices,
			HourlyCost:   output.Currency(p.HourlyLaborCost) + "/h",
			LossIncident: output.Currency(p.LossPerIncident),
		},

		MailtoLink: MailtoLink(contactEmail, productName, result),
	}
}
