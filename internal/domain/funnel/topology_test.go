package funnel

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glavpro/crm-stages/internal/domain"
)

func TestNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stage  Stage
		want   Stage
		wantOK bool
	}{
		{stage: StageIce, want: StageTouched, wantOK: true},
		{stage: StageTouched, want: StageAware, wantOK: true},
		{stage: StageAware, want: StageInterested, wantOK: true},
		{stage: StageInterested, want: StageDemoPlanned, wantOK: true},
		{stage: StageDemoPlanned, want: StageDemoDone, wantOK: true},
		{stage: StageDemoDone, want: StageCommitted, wantOK: true},
		{stage: StageCommitted, want: StageCustomer, wantOK: true},
		{stage: StageCustomer, want: StageActivated, wantOK: true},
		{stage: StageActivated, wantOK: false},
		{stage: StageNull, wantOK: false},
		{stage: "Frozen", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			t.Parallel()
			got, ok := Next(tt.stage)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Next(%q) = (%q, %v), want (%q, %v)", tt.stage, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	for _, s := range AllStages() {
		want := s == StageActivated || s == StageNull
		if got := IsTerminal(s); got != want {
			t.Errorf("IsTerminal(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestAllStages(t *testing.T) {
	t.Parallel()

	want := []Stage{
		StageIce, StageTouched, StageAware, StageInterested, StageDemoPlanned,
		StageDemoDone, StageCommitted, StageCustomer, StageActivated, StageNull,
	}
	if diff := cmp.Diff(want, AllStages()); diff != "" {
		t.Errorf("AllStages() mismatch (-want +got):\n%s", diff)
	}

	// Mutating the returned slice must not leak into the topology.
	got := OrderedStages()
	got[0] = StageNull
	if next, _ := Next(StageIce); next != StageTouched {
		t.Errorf("Next(Ice) after mutation = %q, want Touched", next)
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	t.Run("every stage has metadata", func(t *testing.T) {
		t.Parallel()
		for _, s := range AllStages() {
			info, err := Info(s)
			if err != nil {
				t.Fatalf("Info(%q) error = %v", s, err)
			}
			if info.Code != s {
				t.Errorf("Info(%q).Code = %q", s, info.Code)
			}
			if info.Name == "" || info.MLSCode == "" || info.Instruction == "" {
				t.Errorf("Info(%q) has empty metadata: %+v", s, info)
			}
			if IsTerminal(s) && info.ExitCondition != nil {
				t.Errorf("Info(%q).ExitCondition = %q, want nil", s, *info.ExitCondition)
			}
			if !IsTerminal(s) && info.ExitCondition == nil {
				t.Errorf("Info(%q).ExitCondition = nil", s)
			}
			if diff := cmp.Diff(RestrictedActions(s), info.Restricted); diff != "" {
				t.Errorf("Info(%q).Restricted mismatch (-want +got):\n%s", s, diff)
			}
		}
	})

	t.Run("mls codes", func(t *testing.T) {
		t.Parallel()
		want := map[Stage]string{
			StageIce: "C0", StageTouched: "C1", StageAware: "C2", StageInterested: "W1",
			StageDemoPlanned: "W2", StageDemoDone: "W3", StageCommitted: "H1",
			StageCustomer: "H2", StageActivated: "A1", StageNull: "N0",
		}
		for s, code := range want {
			info, _ := Info(s)
			if info.MLSCode != code {
				t.Errorf("Info(%q).MLSCode = %q, want %q", s, info.MLSCode, code)
			}
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		t.Parallel()
		_, err := Info("Frozen")
		if !errors.Is(err, domain.ErrUnknownStage) {
			t.Errorf("Info(Frozen) error = %v, want ErrUnknownStage", err)
		}
	})
}

func TestParseStage(t *testing.T) {
	t.Parallel()

	got, err := ParseStage("DemoDone")
	if err != nil || got != StageDemoDone {
		t.Errorf("ParseStage(DemoDone) = (%q, %v), want (DemoDone, nil)", got, err)
	}

	for _, raw := range []string{"", "ice", "Demo_done", "demo_planned"} {
		if _, err := ParseStage(raw); !errors.Is(err, domain.ErrUnknownStage) {
			t.Errorf("ParseStage(%q) error = %v, want ErrUnknownStage", raw, err)
		}
	}
}
