package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roicheck/core/roi"
)

func newTestServer() *Server {
	return NewServer("test", roi.NewDefaultCalculator())
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestEvaluateEndpoint checks the happy path carries exact figures.
func TestEvaluateEndpoint(t *testing.T) {
	s := newTestServer()

	body := `{
		"staff": 50,
		"it_staff": 1,
		"maturity": "minimum",
		"hipaa_required": true,
		"hourly_labor_cost": 65
	}`
	rec := doRequest(t, s, http.MethodPost, "/evaluate", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if resp.RequestID == "" {
		t.Error("expected a request id")
	}
	if resp.Devices != 60 {
		t.Errorf("expected 60 devices, got %d", resp.Devices)
	}
	if resp.CurrentMonthlyOpsHours != "29.8" {
		t.Errorf("expected 29.8 ops hours, got %s", resp.CurrentMonthlyOpsHours)
	}
	if resp.MonthlyLaborSavings != "677.95" {
		t.Errorf("expected 677.95 labor savings, got %s", resp.MonthlyLaborSavings)
	}
	if resp.RecommendedPlan != "advanced" {
		t.Errorf("expected advanced plan, got %s", resp.RecommendedPlan)
	}
	if len(resp.PlanReasons) == 0 {
		t.Error("expected plan reasons")
	}
	if !resp.Assumptions.DevicesPerStaff.Equal(roi.DefaultAssumptions().DevicesPerStaff) {
		t.Errorf("expected assumptions echo, got %s devices per staff", resp.Assumptions.DevicesPerStaff)
	}
}

// TestEvaluateDefaultsApplied checks money defaults fill in when absent.
func TestEvaluateDefaultsApplied(t *testing.T) {
	s := newTestServer()

	rec := doRequest(t, s, http.MethodPost, "/evaluate",
		`{"staff": 50, "it_staff": 1, "maturity": "minimum", "hipaa_required": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	// default hourly rate is 65
	if resp.MonthlyLaborSavings != "677.95" {
		t.Errorf("expected default-rate savings 677.95, got %s", resp.MonthlyLaborSavings)
	}
	// default loss 25000 with 0.5 baseline and 0.30 reduction
	if resp.AnnualAvoidedLoss != "3750" {
		t.Errorf("expected 3750 avoided loss, got %s", resp.AnnualAvoidedLoss)
	}
}

// TestEvaluateRejections checks 400 responses carry the error code.
func TestEvaluateRejections(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed json", `{`, "INVALID_JSON"},
		{"unknown maturity", `{"staff": 5, "maturity": "extreme"}`, "INPUT_ERROR"},
		{"zero staff", `{"staff": 0, "maturity": "standard"}`, "INPUT_ERROR"},
		{"negative devices", `{"staff": 5, "maturity": "standard", "device_count": -1}`, "INPUT_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/evaluate", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}

			var resp struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, resp.Error.Code)
			}
		})
	}
}

// TestSupportingEndpoints smoke-tests the read-only routes.
func TestSupportingEndpoints(t *testing.T) {
	s := newTestServer()

	t.Run("health", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/health", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "healthy") {
			t.Errorf("unexpected health body: %s", rec.Body.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/version", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "roicheck") {
			t.Errorf("unexpected version body: %s", rec.Body.String())
		}
	})

	t.Run("assumptions", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/assumptions", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var a roi.Assumptions
		if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
			t.Fatalf("invalid assumptions JSON: %v", err)
		}
		if !a.MinIncidents.Equal(roi.DefaultAssumptions().MinIncidents) {
			t.Errorf("unexpected clamp floor %s", a.MinIncidents)
		}
	})

	t.Run("plans", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/plans", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		for _, tier := range []string{"Essential", "Standard", "Advanced"} {
			if !strings.Contains(rec.Body.String(), tier) {
				t.Errorf("plans body missing %s", tier)
			}
		}
	})
}
