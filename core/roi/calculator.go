// Package roi - evaluation engine
package roi

import (
	"github.com/shopspring/decimal"

	"roicheck/core/types"
	"roicheck/internal/errors"
)

var monthsPerYear = decimal.NewFromInt(12)

// Calculator evaluates organization profiles against one assumption set.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	assumptions Assumptions
}

// NewCalculator creates a calculator with the given assumptions.
func NewCalculator(a Assumptions) (*Calculator, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{assumptions: a}, nil
}

// NewDefaultCalculator creates a calculator with the prototype defaults.
func NewDefaultCalculator() *Calculator {
	return &Calculator{assumptions: DefaultAssumptions()}
}

// Assumptions returns the active coefficient set.
func (c *Calculator) Assumptions() Assumptions {
	return c.assumptions
}

// Evaluate computes the derived ROI metrics for a profile.
// The computation is a single pass with no side effects; it fails with
// an INPUT_ERROR when the profile is outside the declared valid domain.
func (c *Calculator) Evaluate(profile types.OrganizationProfile) (*types.ROIResult, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	a := c.assumptions
	staff := decimal.NewFromInt(int64(profile.Staff))

	// Step 1: resolve devices. Zero means unspecified.
	devices := profile.DeviceCount
	if devices <= 0 {
		devices = int(staff.Mul(a.DevicesPerStaff).Round(0).IntPart())
		if devices < 0 {
			devices = 0
		}
	}
	devicesDec := decimal.NewFromInt(int64(devices))

	// Step 2: current workload, floored at the irreducible baseline.
	opsHours := a.StaffHoursCoeff.Mul(staff).
		Add(a.ITHoursCoeff.Mul(decimal.NewFromInt(int64(profile.ITStaff)))).
		Add(a.DeviceHoursCoeff.Mul(devicesDec))
	if opsHours.LessThan(a.MinMonthlyOpsHours) {
		opsHours = a.MinMonthlyOpsHours
	}

	// Step 3: workload reduction and labor savings.
	opsReduction := a.OpsReduction.For(profile.Maturity)
	hoursSaved := opsHours.Mul(opsReduction)
	laborSavings := hoursSaved.Mul(profile.HourlyLaborCost)

	// Step 4: incident baseline, clamped to the configured range.
	divisor := a.IncidentDivisor.For(profile.Maturity)
	baseline := clamp(staff.Div(divisor), a.MinIncidents, a.MaxIncidents)

	// Step 5: avoided loss.
	phishReduction := a.PhishReduction.For(profile.Maturity)
	avoidedLoss := baseline.Mul(phishReduction).Mul(profile.LossPerIncident)

	// Step 6: investment cap (ROI = 0 boundary, not a price).
	investmentCap := laborSavings.Add(avoidedLoss.Div(monthsPerYear))

	// Step 7: plan recommendation.
	score, reasons, plan := recommendPlan(profile, devices)

	return &types.ROIResult{
		Profile:                profile,
		Devices:                devices,
		CurrentMonthlyOpsHours: opsHours,
		OpsReductionRate:       opsReduction,
		MonthlyHoursSaved:      hoursSaved,
		MonthlyLaborSavings:    laborSavings,
		AnnualIncidentBaseline: baseline,
		PhishReductionRate:     phishReduction,
		AnnualAvoidedLoss:      avoidedLoss,
		MonthlyInvestmentCap:   investmentCap,
		RiskScore:              score,
		RecommendedPlan:        plan,
		PlanReasons:            reasons,
	}, nil
}

func validateProfile(p types.OrganizationProfile) error {
	if p.Staff < 1 {
		return errors.Input("staff must be >= 1")
	}
	if p.ITStaff < 0 {
		return errors.Input("it_staff must be >= 0")
	}
	if !p.Maturity.IsValid() {
		return errors.Inputf("unknown maturity level: %q", string(p.Maturity))
	}
	if p.HourlyLaborCost.IsNegative() {
		return errors.Input("hourly_labor_cost must be >= 0")
	}
	if !p.LossPerIncident.IsPositive() {
		return errors.Input("loss_per_incident must be > 0")
	}
	if p.DeviceCount < 0 {
		return errors.Input("device_count must be >= 0")
	}
	return nil
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
