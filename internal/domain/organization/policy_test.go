package organization

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hrpay/internal/domain/compensation"
)

func TestValidatePolicyDefault(t *testing.T) {
	if err := ValidatePolicy(DefaultPolicy()); err != nil {
		t.Fatalf("default policy must validate, got %v", err)
	}
}

func TestValidatePolicyWeeklyOff(t *testing.T) {
	policy := DefaultPolicy()
	policy.WeeklyOff.Kind = "alternate_fridays"
	if err := ValidatePolicy(policy); err == nil {
		t.Fatal("expected error for unknown weekly-off kind")
	}

	policy.WeeklyOff = compensation.WeeklyOffPolicy{Kind: compensation.WeeklyOffCustomDays}
	if err := ValidatePolicy(policy); err == nil {
		t.Fatal("expected error for custom weekly-off with no days")
	}

	policy.WeeklyOff.CustomDays = []time.Weekday{time.Friday}
	if err := ValidatePolicy(policy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidatePolicyFineRules(t *testing.T) {
	policy := DefaultPolicy()
	policy.Fine.Enabled = true

	if err := ValidatePolicy(policy); err == nil {
		t.Fatal("expected error for rule-based fines with no rules")
	}

	policy.Fine.Rules = []compensation.FineRule{
		{Multiplier: compensation.FineMultiplierTwoX, AppliesTo: compensation.FineAppliesLateArrival},
		{Multiplier: compensation.FineMultiplierFixed, FixedAmount: decimal.NewFromInt(50), AppliesTo: compensation.FineAppliesBoth},
	}
	if err := ValidatePolicy(policy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	policy.Fine.Rules[0].AppliesTo = "weekends"
	if err := ValidatePolicy(policy); err == nil {
		t.Fatal("expected error for unknown appliesTo")
	}
}

func TestValidatePolicyShiftBased(t *testing.T) {
	policy := DefaultPolicy()
	policy.Fine.Enabled = true
	policy.Fine.Method = compensation.FineMethodShiftBased

	if err := ValidatePolicy(policy); err == nil {
		t.Fatal("expected error for shift-based fines without shift hours")
	}

	policy.Fine.ShiftHours = decimal.NewFromInt(8)
	if err := ValidatePolicy(policy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
