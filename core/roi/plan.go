// Package roi - plan recommendation scoring
package roi

import (
	"github.com/shopspring/decimal"

	"roicheck/core/types"
)

var deviceDensityThreshold = decimal.NewFromFloat(1.5)

// Score thresholds mapping the additive risk score to a plan tier.
const (
	standardScoreThreshold = 1.0
	advancedScoreThreshold = 2.0
)

// recommendPlan evaluates the independent scoring rules in fixed order.
// Each triggered rule contributes to the score and appends its reason,
// so the reason list always reads in rule order. devices is the resolved
// endpoint count from step 1; the density rule must see the same value
// the ops-hours formula used.
func recommendPlan(p types.OrganizationProfile, devices int) (float64, []string, types.Plan) {
	score := 0.0
	reasons := []string{}

	add := func(points float64, reason string) {
		score += points
		reasons = append(reasons, reason)
	}

	// Rule 1: regulated data elevates governance needs.
	if p.HIPAARequired {
		add(1.0, "Requires HIPAA/BAA")
	}

	// Rule 2: scale.
	switch {
	case p.Staff >= 100:
		add(1.0, "100+ staff scale")
	case p.Staff >= 30:
		add(0.5, "30–99 staff scale")
	}

	// Rule 3: IT/Sec staffing scarcity pushes toward managed controls.
	switch {
	case p.ITStaff == 0:
		add(1.0, "No dedicated IT/Sec FTE")
	case p.ITStaff <= 2:
		add(0.5, "Limited IT/Sec capacity")
	}

	// Rule 4: current maturity.
	switch p.Maturity {
	case types.MaturityMinimum:
		add(1.0, "Current controls: Minimum")
	case types.MaturityStandard:
		add(0.5, "Current controls: Standard")
	case types.MaturityAdvanced:
		// no contribution
	}

	// Rule 5: device density above ~1.5 endpoints per person.
	if p.Staff > 0 {
		density := decimal.NewFromInt(int64(devices)).Div(decimal.NewFromInt(int64(p.Staff)))
		if density.GreaterThan(deviceDensityThreshold) {
			add(0.5, "High device density")
		}
	}

	return score, reasons, planForScore(score)
}

func planForScore(score float64) types.Plan {
	switch {
	case score < standardScoreThreshold:
		return types.PlanEssential
	case score < advancedScoreThreshold:
		return types.PlanStandard
	default:
		return types.PlanAdvanced
	}
}
