package switching

import (
	"gwswitch/domain/gateway"
	"testing"
)

func TestState_ActiveDisplay(t *testing.T) {
	store := gateway.Parse([]string{"Viettel 192.168.1.1"})

	tests := []struct {
		name   string
		active string
		want   string
	}{
		{"undetermined", "", Undetermined},
		{"matches candidate", "192.168.1.1", "Viettel"},
		{"unknown address shown raw", "10.0.0.1", "10.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Candidates: store, ActiveGateway: tt.active}
			if got := s.ActiveDisplay(); got != tt.want {
				t.Fatalf("ActiveDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPhase_AcceptsSelection(t *testing.T) {
	accepts := map[Phase]bool{
		PhaseInitializing:      false,
		PhaseAwaitingSelection: true,
		PhaseSwitching:         false,
		PhaseSettled:           true,
		PhaseDegraded:          false,
	}
	for phase, want := range accepts {
		if got := phase.AcceptsSelection(); got != want {
			t.Errorf("%s.AcceptsSelection() = %v, want %v", phase, got, want)
		}
	}
}

func TestUpdate_Fraction(t *testing.T) {
	cases := []struct {
		u    Update
		want float64
	}{
		{Update{Progress: 0, ProgressStart: 0, ProgressEnd: 240}, 0},
		{Update{Progress: 120, ProgressStart: 0, ProgressEnd: 240}, 0.5},
		{Update{Progress: 240, ProgressStart: 0, ProgressEnd: 240}, 1},
		{Update{Progress: 5, ProgressStart: 5, ProgressEnd: 5}, 0},
		{Update{Progress: 300, ProgressStart: 0, ProgressEnd: 240}, 1},
	}
	for _, c := range cases {
		if got := c.u.Fraction(); got != c.want {
			t.Errorf("Fraction(%+v) = %v, want %v", c.u, got, c.want)
		}
	}
}
