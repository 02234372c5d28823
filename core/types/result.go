// Package types - ROI result types
package types

import "github.com/shopspring/decimal"

// ROIResult is the derived metrics record for one evaluation.
// It is computed synchronously from an OrganizationProfile and never
// mutated after creation.
type ROIResult struct {
	// Profile is the input as evaluated, after defaulting
	Profile OrganizationProfile `json:"profile"`

	// Devices is the resolved endpoint count (explicit or estimated).
	// The same resolved count feeds both the ops-hours formula and the
	// device-density scoring rule.
	Devices int `json:"devices"`

	// CurrentMonthlyOpsHours is the estimated current IT/Sec workload
	CurrentMonthlyOpsHours decimal.Decimal `json:"current_monthly_ops_hours"`

	// OpsReductionRate is the workload reduction rate for the maturity level
	OpsReductionRate decimal.Decimal `json:"ops_reduction_rate"`

	// MonthlyHoursSaved is the estimated monthly workload reduction
	MonthlyHoursSaved decimal.Decimal `json:"monthly_hours_saved"`

	// MonthlyLaborSavings is the dollar equivalent of the hours saved
	MonthlyLaborSavings decimal.Decimal `json:"monthly_labor_savings"`

	// AnnualIncidentBaseline is the clamped incidents/year estimate
	AnnualIncidentBaseline decimal.Decimal `json:"annual_incident_baseline"`

	// PhishReductionRate is the incident-frequency reduction rate
	PhishReductionRate decimal.Decimal `json:"phish_reduction_rate"`

	// AnnualAvoidedLoss is the estimated annual loss prevented
	AnnualAvoidedLoss decimal.Decimal `json:"annual_avoided_loss"`

	// MonthlyInvestmentCap is the ROI=0 budget ceiling. It is a
	// value-based affordability guide, not a price.
	MonthlyInvestmentCap decimal.Decimal `json:"monthly_investment_cap"`

	// RiskScore is the additive plan score
	RiskScore float64 `json:"risk_score"`

	// RecommendedPlan is the tier the score maps to
	RecommendedPlan Plan `json:"recommended_plan"`

	// PlanReasons lists the triggered scoring rules in evaluation order.
	// An empty list is valid; the presentation surface renders a neutral
	// default message in that case.
	PlanReasons []string `json:"plan_reasons"`
}
