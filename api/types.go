// Package api - API types for ROI evaluation
// These types define the contract for /evaluate.
// The API is stateless, idempotent, and deterministic.
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"roicheck/core/roi"
	"roicheck/core/types"
	"roicheck/internal/errors"
)

// EvaluateRequest is the input to POST /evaluate.
// Optional money fields fall back to the active assumption defaults,
// matching the web form behavior.
type EvaluateRequest struct {
	Staff           int      `json:"staff"`
	ITStaff         int      `json:"it_staff"`
	Maturity        string   `json:"maturity"`
	HIPAARequired   bool     `json:"hipaa_required"`
	HourlyLaborCost *float64 `json:"hourly_labor_cost,omitempty"`
	DeviceCount     int      `json:"device_count,omitempty"`
	LossPerIncident *float64 `json:"loss_per_incident,omitempty"`
}

// toProfile applies input-surface defaults and builds the profile.
func (r *EvaluateRequest) toProfile(a roi.Assumptions) (types.OrganizationProfile, error) {
	maturity, err := types.ParseMaturityLevel(r.Maturity)
	if err != nil {
		return types.OrganizationProfile{}, errors.Wrap(errors.TypeInput, "invalid request", err)
	}

	hourly := a.DefaultHourlyLaborCost
	if r.HourlyLaborCost != nil {
		hourly = decimal.NewFromFloat(*r.HourlyLaborCost)
	}
	loss := a.DefaultLossPerIncident
	if r.LossPerIncident != nil {
		loss = decimal.NewFromFloat(*r.LossPerIncident)
	}

	return types.OrganizationProfile{
		Staff:           r.Staff,
		ITStaff:         r.ITStaff,
		Maturity:        maturity,
		HIPAARequired:   r.HIPAARequired,
		HourlyLaborCost: hourly,
		DeviceCount:     r.DeviceCount,
		LossPerIncident: loss,
	}, nil
}

// EvaluateResponse is the output of POST /evaluate. Monetary and hour
// figures are decimal strings to avoid float drift on the wire.
type EvaluateResponse struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`

	Devices                int    `json:"devices"`
	CurrentMonthlyOpsHours string `json:"current_monthly_ops_hours"`
	OpsReductionRate       string `json:"ops_reduction_rate"`
	MonthlyHoursSaved      string `json:"monthly_hours_saved"`
	MonthlyLaborSavings    string `json:"monthly_labor_savings"`
	AnnualIncidentBaseline string `json:"annual_incident_baseline"`
	PhishReductionRate     string `json:"phish_reduction_rate"`
	AnnualAvoidedLoss      string `json:"annual_avoided_loss"`
	MonthlyInvestmentCap   string `json:"monthly_investment_cap"`

	RiskScore       float64  `json:"risk_score"`
	RecommendedPlan string   `json:"recommended_plan"`
	PlanReasons     []string `json:"plan_reasons"`

	// Assumptions echoes the coefficient set the evaluation used, so
	// clients can show the figures next to their basis.
	Assumptions roi.Assumptions `json:"assumptions"`

	DurationMs int64 `json:"duration_ms"`
}

func toResponse(requestID string, result *types.ROIResult, a roi.Assumptions, durationMs int64) *EvaluateResponse {
	return &EvaluateResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),

		Devices:                result.Devices,
		CurrentMonthlyOpsHours: result.CurrentMonthlyOpsHours.String(),
		OpsReductionRate:       result.OpsReductionRate.String(),
		MonthlyHoursSaved:      result.MonthlyHoursSaved.String(),
		MonthlyLaborSavings:    result.MonthlyLaborSavings.String(),
		AnnualIncidentBaseline: result.AnnualIncidentBaseline.String(),
		PhishReductionRate:     result.PhishReductionRate.String(),
		AnnualAvoidedLoss:      result.AnnualAvoidedLoss.String(),
		MonthlyInvestmentCap:   result.MonthlyInvestmentCap.String(),

		RiskScore:       result.RiskScore,
		RecommendedPlan: result.RecommendedPlan.String(),
		PlanReasons:     result.PlanReasons,
		Assumptions:     a,

		DurationMs: durationMs,
	}
}
