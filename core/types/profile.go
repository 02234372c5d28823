// Package types - ROI domain types
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaturityLevel is the self-assessed tier of existing security/IT
// controls. The set is closed: every table lookup in the calculator
// switches exhaustively over the three levels, and unknown values are
// rejected when a profile is validated, never defaulted.
type MaturityLevel string

const (
	// MaturityMinimum is the weakest control maturity
	MaturityMinimum MaturityLevel = "minimum"

	// MaturityStandard is a middle control maturity
	MaturityStandard MaturityLevel = "standard"

	// MaturityAdvanced is the strongest control maturity
	MaturityAdvanced MaturityLevel = "advanced"
)

// ParseMaturityLevel parses a maturity level, case-insensitively.
func ParseMaturityLevel(s string) (MaturityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimum":
		return MaturityMinimum, nil
	case "standard":
		return MaturityStandard, nil
	case "advanced":
		return MaturityAdvanced, nil
	default:
		return "", fmt.Errorf("unknown maturity level: %q (want minimum, standard or advanced)", s)
	}
}

// IsValid reports whether the level is one of the three known levels.
func (m MaturityLevel) IsValid() bool {
	switch m {
	case MaturityMinimum, MaturityStandard, MaturityAdvanced:
		return true
	}
	return false
}

// String returns the canonical lowercase form.
func (m MaturityLevel) String() string {
	return string(m)
}

// Label returns the human-readable form used in cards and reports.
func (m MaturityLevel) Label() string {
	switch m {
	case MaturityMinimum:
		return "Minimum"
	case MaturityStandard:
		return "Standard"
	case MaturityAdvanced:
		return "Advanced"
	}
	return string(m)
}

// Plan is a recommended service tier derived from the additive risk score.
type Plan string

const (
	// PlanEssential is the entry tier
	PlanEssential Plan = "essential"

	// PlanStandard is the middle tier
	PlanStandard Plan = "standard"

	// PlanAdvanced is the top tier
	PlanAdvanced Plan = "advanced"
)

// String returns the canonical lowercase form.
func (p Plan) String() string {
	return string(p)
}

// Label returns the human-readable form used in cards and reports.
func (p Plan) Label() string {
	switch p {
	case PlanEssential:
		return "Essential"
	case PlanStandard:
		return "Standard"
	case PlanAdvanced:
		return "Advanced"
	}
	return string(p)
}

// OrganizationProfile is the validated input to one ROI evaluation.
// A profile is constructed fresh per evaluation and never mutated by
// the calculator.
type OrganizationProfile struct {
	// Staff is total headcount (full and part time combined)
	Staff int `json:"staff"`

	// ITStaff is dedicated IT/Security full-time equivalents
	ITStaff int `json:"it_staff"`

	// Maturity is the current control maturity
	Maturity MaturityLevel `json:"maturity"`

	// HIPAARequired indicates protected health information handling
	HIPAARequired bool `json:"hipaa_required"`

	// HourlyLaborCost is the blended loaded $/hour for internal ops
	HourlyLaborCost decimal.Decimal `json:"hourly_labor_cost"`

	// DeviceCount is the endpoint count. Zero means unspecified: the
	// calculator estimates devices from headcount. A negative count is
	// an input error.
	DeviceCount int `json:"device_count,omitempty"`

	// LossPerIncident is the direct/indirect cost per relevant incident
	LossPerIncident decimal.Decimal `json:"loss_per_incident"`
}
