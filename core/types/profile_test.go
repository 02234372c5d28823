package types

import "testing"

// TestParseMaturityLevel checks parsing is case-insensitive and closed.
func TestParseMaturityLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    MaturityLevel
		wantErr bool
	}{
		{"minimum", MaturityMinimum, false},
		{"Minimum", MaturityMinimum, false},
		{"STANDARD", MaturityStandard, false},
		{" advanced ", MaturityAdvanced, false},
		{"", "", true},
		{"extreme", "", true},
		{"min", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMaturityLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

// TestMaturityLevelIsValid checks the closed set.
func TestMaturityLevelIsValid(t *testing.T) {
	for _, m := range []MaturityLevel{MaturityMinimum, MaturityStandard, MaturityAdvanced} {
		if !m.IsValid() {
			t.Errorf("%s should be valid", m)
		}
	}
	for _, m := range []MaturityLevel{"", "Minimum ", "extreme"} {
		if m.IsValid() {
			t.Errorf("%q should be invalid", m)
		}
	}
}

// TestLabels checks human-readable forms.
func TestLabels(t *testing.T) {
	if MaturityMinimum.Label() != "Minimum" {
		t.Errorf("unexpected label %s", MaturityMinimum.Label())
	}
	if PlanEssential.Label() != "Essential" {
		t.Errorf("unexpected label %s", PlanEssential.Label())
	}
	if PlanAdvanced.String() != "advanced" {
		t.Errorf("unexpected string %s", PlanAdvanced.String())
	}
}
