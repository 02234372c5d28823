// Package roi implements the ROI quick-check calculation engine.
// The engine is pure and deterministic: same profile and assumptions
// always produce the same result. All ROI logic lives here; the API and
// presentation layers never compute.
package roi

import (
	"github.com/shopspring/decimal"

	"roicheck/core/types"
	"roicheck/internal/errors"
)

// RateTable holds one value per maturity level.
type RateTable struct {
	Minimum  decimal.Decimal `json:"minimum"`
	Standard decimal.Decimal `json:"standard"`
	Advanced decimal.Decimal `json:"advanced"`
}

// For returns the value for the given level. MaturityLevel is a closed
// enum validated before any lookup, so the switch is total; reaching the
// panic means a profile bypassed validation.
func (t RateTable) For(level types.MaturityLevel) decimal.Decimal {
	switch level {
	case types.MaturityMinimum:
		return t.Minimum
	case types.MaturityStandard:
		return t.Standard
	case types.MaturityAdvanced:
		return t.Advanced
	}
	panic("roi: rate lookup on unvalidated maturity level " + string(level))
}

// Assumptions is the injected coefficient set for the calculator.
// All values are illustrative prototype defaults meant to be calibrated
// with field data; they are configuration, not constants baked into a
// rendering surface.
type Assumptions struct {
	// OpsReduction is the workload reduction rate by maturity.
	// Weaker current maturity implies larger available improvement.
	OpsReduction RateTable `json:"ops_reduction"`

	// PhishReduction is the incident-frequency reduction rate by maturity
	PhishReduction RateTable `json:"phish_reduction"`

	// IncidentDivisor scales baseline incidents/year as staff/divisor.
	// More mature orgs are assumed to have fewer baseline incidents.
	IncidentDivisor RateTable `json:"incident_divisor"`

	// MinIncidents and MaxIncidents clamp the incident baseline.
	// The lower bound defaults to the conservative 0.5 to avoid
	// under-signaling on very small organizations.
	MinIncidents decimal.Decimal `json:"min_incidents"`
	MaxIncidents decimal.Decimal `json:"max_incidents"`

	// StaffHoursCoeff, ITHoursCoeff and DeviceHoursCoeff weight the
	// current-workload formula.
	StaffHoursCoeff  decimal.Decimal `json:"staff_hours_coeff"`
	ITHoursCoeff     decimal.Decimal `json:"it_hours_coeff"`
	DeviceHoursCoeff decimal.Decimal `json:"device_hours_coeff"`

	// MinMonthlyOpsHours is the irreducible baseline administrative load
	MinMonthlyOpsHours decimal.Decimal `json:"min_monthly_ops_hours"`

	// DevicesPerStaff estimates endpoints when a profile leaves the
	// device count unspecified (laptop/phone/misc per person).
	DevicesPerStaff decimal.Decimal `json:"devices_per_staff"`

	// DefaultHourlyLaborCost is the input-surface default blended rate
	DefaultHourlyLaborCost decimal.Decimal `json:"default_hourly_labor_cost"`

	// DefaultLossPerIncident is the input-surface default per-incident loss
	DefaultLossPerIncident decimal.Decimal `json:"default_loss_per_incident"`
}

// DefaultAssumptions returns the prototype coefficient set.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		OpsReduction: RateTable{
			Minimum:  decimal.NewFromFloat(0.35),
			Standard: decimal.NewFromFloat(0.25),
			Advanced: decimal.NewFromFloat(0.15),
		},
		PhishReduction: RateTable{
			Minimum:  decimal.NewFromFloat(0.30),
			Standard: decimal.NewFromFloat(0.22),
			Advanced: decimal.NewFromFloat(0.15),
		},
		IncidentDivisor: RateTable{
			Minimum:  decimal.NewFromInt(120),
			Standard: decimal.NewFromInt(180),
			Advanced: decimal.NewFromInt(260),
		},
		MinIncidents:           decimal.NewFromFloat(0.5),
		MaxIncidents:           decimal.NewFromFloat(8.0),
		StaffHoursCoeff:        decimal.NewFromFloat(0.4),
		ITHoursCoeff:           decimal.NewFromFloat(8.0),
		DeviceHoursCoeff:       decimal.NewFromFloat(0.03),
		MinMonthlyOpsHours:     decimal.NewFromFloat(12.0),
		DevicesPerStaff:        decimal.NewFromFloat(1.2),
		DefaultHourlyLaborCost: decimal.NewFromFloat(65.0),
		DefaultLossPerIncident: decimal.NewFromInt(25000),
	}
}

// Validate checks the coefficient set for internal consistency.
func (a Assumptions) Validate() error {
	one := decimal.NewFromInt(1)

	for _, table := range []struct {
		name string
		t    RateTable
	}{
		{"ops_reduction", a.OpsReduction},
		{"phish_reduction", a.PhishReduction},
	} {
		for _, rate := range []decimal.Decimal{table.t.Minimum, table.t.Standard, table.t.Advanced} {
			if !rate.IsPositive() || rate.GreaterThan(one) {
				return errors.Newf(errors.TypeConfig, "%s rates must be in (0,1]", table.name)
			}
		}
		// Weaker maturity must never promise less improvement.
		if table.t.Minimum.LessThan(table.t.Standard) || table.t.Standard.LessThan(table.t.Advanced) {
			return errors.Newf(errors.TypeConfig, "%s rates must be non-increasing from minimum to advanced", table.name)
		}
	}

	for _, div := range []decimal.Decimal{a.IncidentDivisor.Minimum, a.IncidentDivisor.Standard, a.IncidentDivisor.Advanced} {
		if !div.IsPositive() {
			return errors.New(errors.TypeConfig, "incident divisors must be > 0")
		}
	}

	if a.MinIncidents.IsNegative() {
		return errors.New(errors.TypeConfig, "min_incidents must be >= 0")
	}
	if a.MaxIncidents.LessThan(a.MinIncidents) {
		return errors.New(errors.TypeConfig, "max_incidents must be >= min_incidents")
	}
	if !a.MinMonthlyOpsHours.IsPositive() {
		return errors.New(errors.TypeConfig, "min_monthly_ops_hours must be > 0")
	}
	if !a.DevicesPerStaff.IsPositive() {
		return errors.New(errors.TypeConfig, "devices_per_staff must be > 0")
	}
	if !a.DefaultLossPerIncident.IsPositive() {
		return errors.New(errors.TypeConfig, "default_loss_per_incident must be > 0")
	}

	return nil
}
