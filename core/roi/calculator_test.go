package roi

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"roicheck/core/types"
	"roicheck/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validProfile() types.OrganizationProfile {
	return types.OrganizationProfile{
		Staff:           50,
		ITStaff:         1,
		Maturity:        types.MaturityMinimum,
		HIPAARequired:   true,
		HourlyLaborCost: dec("65"),
		LossPerIncident: dec("25000"),
	}
}

// TestEvaluateHealthcareSMB checks the full pipeline on the canonical
// 50-person healthcare organization.
func TestEvaluateHealthcareSMB(t *testing.T) {
	calc := NewDefaultCalculator()

	result, err := calc.Evaluate(validProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Devices != 60 {
		t.Errorf("expected 60 estimated devices, got %d", result.Devices)
	}

	// 0.4*50 + 8.0*1 + 0.03*60 = 29.8
	if !result.CurrentMonthlyOpsHours.Equal(dec("29.8")) {
		t.Errorf("expected 29.8 ops hours, got %s", result.CurrentMonthlyOpsHours)
	}

	// 29.8 * 0.35
	if !result.MonthlyHoursSaved.Equal(dec("10.43")) {
		t.Errorf("expected 10.43 hours saved, got %s", result.MonthlyHoursSaved)
	}

	// 10.43 * 65
	if !result.MonthlyLaborSavings.Equal(dec("677.95")) {
		t.Errorf("expected 677.95 labor savings, got %s", result.MonthlyLaborSavings)
	}

	// 50/120 = 0.4166... clamps up to the 0.5 lower bound
	if !result.AnnualIncidentBaseline.Equal(dec("0.5")) {
		t.Errorf("expected 0.5 incident baseline, got %s", result.AnnualIncidentBaseline)
	}

	// 0.5 * 0.30 * 25000
	if !result.AnnualAvoidedLoss.Equal(dec("3750")) {
		t.Errorf("expected 3750 avoided loss, got %s", result.AnnualAvoidedLoss)
	}

	// 677.95 + 3750/12
	if !result.MonthlyInvestmentCap.Equal(dec("990.45")) {
		t.Errorf("expected 990.45 investment cap, got %s", result.MonthlyInvestmentCap)
	}

	if result.RecommendedPlan != types.PlanAdvanced {
		t.Errorf("expected advanced plan, got %s", result.RecommendedPlan)
	}
}

// TestEvaluateOpsHours checks the current-workload formula and its floor.
func TestEvaluateOpsHours(t *testing.T) {
	calc := NewDefaultCalculator()

	tests := []struct {
		name     string
		staff    int
		itStaff  int
		devices  int
		maturity types.MaturityLevel
		want     string
	}{
		{
			name:     "large IT team dominates",
			staff:    10,
			itStaff:  5,
			maturity: types.MaturityAdvanced,
			want:     "44.36", // 0.4*10 + 8*5 + 0.03*12
		},
		{
			name:     "tiny org hits the 12h floor",
			staff:    1,
			itStaff:  0,
			devices:  1,
			maturity: types.MaturityMinimum,
			want:     "12",
		},
		{
			name:     "explicit devices override the estimate",
			staff:    50,
			itStaff:  1,
			devices:  200,
			maturity: types.MaturityStandard,
			want:     "34", // 20 + 8 + 0.03*200
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			profile.Staff = tt.staff
			profile.ITStaff = tt.itStaff
			profile.DeviceCount = tt.devices
			profile.Maturity = tt.maturity

			result, err := calc.Evaluate(profile)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.CurrentMonthlyOpsHours.Equal(dec(tt.want)) {
				t.Errorf("expected %s ops hours, got %s", tt.want, result.CurrentMonthlyOpsHours)
			}
		})
	}
}

// TestOpsHoursFloorHolds proves the 12h/month floor for a range of
// small profiles.
func TestOpsHoursFloorHolds(t *testing.T) {
	calc := NewDefaultCalculator()
	floor := dec("12")

	for staff := 1; staff <= 40; staff++ {
		profile := validProfile()
		profile.Staff = staff
		profile.ITStaff = 0

		result, err := calc.Evaluate(profile)
		if err != nil {
			t.Fatalf("staff=%d: unexpected error: %v", staff, err)
		}
		if result.CurrentMonthlyOpsHours.LessThan(floor) {
			t.Errorf("staff=%d: ops hours %s below floor", staff, result.CurrentMonthlyOpsHours)
		}
	}
}

// TestIncidentBaselineClamped proves the baseline stays inside the
// configured bounds no matter how extreme staff gets.
func TestIncidentBaselineClamped(t *testing.T) {
	calc := NewDefaultCalculator()
	a := calc.Assumptions()

	for _, staff := range []int{1, 5, 50, 500, 5000, 1_000_000} {
		for _, maturity := range []types.MaturityLevel{types.MaturityMinimum, types.MaturityStandard, types.MaturityAdvanced} {
			profile := validProfile()
			profile.Staff = staff
			profile.Maturity = maturity

			result, err := calc.Evaluate(profile)
			if err != nil {
				t.Fatalf("staff=%d: unexpected error: %v", staff, err)
			}
			b := result.AnnualIncidentBaseline
			if b.LessThan(a.MinIncidents) || b.GreaterThan(a.MaxIncidents) {
				t.Errorf("staff=%d maturity=%s: baseline %s outside [%s, %s]",
					staff, maturity, b, a.MinIncidents, a.MaxIncidents)
			}
		}
	}
}

// TestInvestmentCapMonotonic checks the cap never decreases as labor
// cost or loss per incident grows.
func TestInvestmentCapMonotonic(t *testing.T) {
	calc := NewDefaultCalculator()

	t.Run("hourly labor cost", func(t *testing.T) {
		prev := decimal.Zero
		for _, hourly := range []string{"0", "25", "65", "120", "400"} {
			profile := validProfile()
			profile.HourlyLaborCost = dec(hourly)

			result, err := calc.Evaluate(profile)
			if err != nil {
				t.Fatalf("hourly=%s: unexpected error: %v", hourly, err)
			}
			if result.MonthlyInvestmentCap.LessThan(prev) {
				t.Errorf("hourly=%s: cap %s decreased below %s", hourly, result.MonthlyInvestmentCap, prev)
			}
			prev = result.MonthlyInvestmentCap
		}
	})

	t.Run("loss per incident", func(t *testing.T) {
		prev := decimal.Zero
		for _, loss := range []string{"1000", "10000", "25000", "100000"} {
			profile := validProfile()
			profile.LossPerIncident = dec(loss)

			result, err := calc.Evaluate(profile)
			if err != nil {
				t.Fatalf("loss=%s: unexpected error: %v", loss, err)
			}
			if result.MonthlyInvestmentCap.LessThan(prev) {
				t.Errorf("loss=%s: cap %s decreased below %s", loss, result.MonthlyInvestmentCap, prev)
			}
			prev = result.MonthlyInvestmentCap
		}
	})
}

// TestZeroLaborCostYieldsZeroSavings checks that a zero rate is valid
// input and produces zero savings, not an error.
func TestZeroLaborCostYieldsZeroSavings(t *testing.T) {
	calc := NewDefaultCalculator()

	profile := validProfile()
	profile.HourlyLaborCost = decimal.Zero

	result, err := calc.Evaluate(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.MonthlyLaborSavings.IsZero() {
		t.Errorf("expected zero labor savings, got %s", result.MonthlyLaborSavings)
	}
	if result.MonthlyHoursSaved.IsZero() {
		t.Error("hours saved should still be positive with a zero rate")
	}
}

// TestEvaluateInvalidInput checks every rejection path.
func TestEvaluateInvalidInput(t *testing.T) {
	calc := NewDefaultCalculator()

	tests := []struct {
		name   string
		mutate func(*types.OrganizationProfile)
	}{
		{"zero staff", func(p *types.OrganizationProfile) { p.Staff = 0 }},
		{"negative staff", func(p *types.OrganizationProfile) { p.Staff = -3 }},
		{"negative it staff", func(p *types.OrganizationProfile) { p.ITStaff = -1 }},
		{"unknown maturity", func(p *types.OrganizationProfile) { p.Maturity = "extreme" }},
		{"negative hourly cost", func(p *types.OrganizationProfile) { p.HourlyLaborCost = dec("-1") }},
		{"zero loss per incident", func(p *types.OrganizationProfile) { p.LossPerIncident = decimal.Zero }},
		{"negative loss per incident", func(p *types.OrganizationProfile) { p.LossPerIncident = dec("-100") }},
		{"negative device count", func(p *types.OrganizationProfile) { p.DeviceCount = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)

			result, err := calc.Evaluate(profile)
			if err == nil {
				t.Fatalf("expected input error, got result %+v", result)
			}
			if !errors.IsType(err, errors.TypeInput) {
				t.Errorf("expected INPUT_ERROR, got %v", err)
			}
		})
	}
}

// TestEvaluateDeterministic checks identical inputs produce identical
// results across calls.
func TestEvaluateDeterministic(t *testing.T) {
	calc := NewDefaultCalculator()
	profile := validProfile()

	first, err := calc.Evaluate(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := calc.Evaluate(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestNewCalculatorRejectsBadAssumptions checks assumption validation
// is enforced at construction.
func TestNewCalculatorRejectsBadAssumptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Assumptions)
	}{
		{"rate above one", func(a *Assumptions) { a.OpsReduction.Minimum = dec("1.5") }},
		{"zero rate", func(a *Assumptions) { a.PhishReduction.Advanced = decimal.Zero }},
		{"non-monotone ops table", func(a *Assumptions) { a.OpsReduction.Advanced = dec("0.9") }},
		{"non-monotone phish table", func(a *Assumptions) { a.PhishReduction.Standard = dec("0.05") }},
		{"zero divisor", func(a *Assumptions) { a.IncidentDivisor.Standard = decimal.Zero }},
		{"inverted clamp bounds", func(a *Assumptions) { a.MaxIncidents = dec("0.1") }},
		{"negative clamp floor", func(a *Assumptions) { a.MinIncidents = dec("-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAssumptions()
			tt.mutate(&a)

			if _, err := NewCalculator(a); err == nil {
				t.Error("expected config error, got nil")
			}
		})
	}

	if _, err := NewCalculator(DefaultAssumptions()); err != nil {
		t.Errorf("default assumptions should validate: %v", err)
	}
}
