package organization

import (
	"fmt"
	"time"

	"hrpay/internal/domain/compensation"
)

// ValidatePolicy normalizes a policy payload before it is persisted. The rule
// list keeps its configured order; order is the rule-based tie-break.
func ValidatePolicy(policy compensation.OrganizationPolicy) error {
	switch policy.WeeklyOff.Kind {
	case compensation.WeeklyOffStandard:
	case compensation.WeeklyOffOddEvenSaturday:
		switch policy.WeeklyOff.SaturdayParity {
		case "", compensation.SaturdayParityOdd, compensation.SaturdayParityEven:
		default:
			return fmt.Errorf("%w: unknown saturday parity %q", ErrInvalidPolicy, policy.WeeklyOff.SaturdayParity)
		}
	case compensation.WeeklyOffCustomDays:
		if len(policy.WeeklyOff.CustomDays) == 0 {
			return fmt.Errorf("%w: custom weekly-off needs at least one day", ErrInvalidPolicy)
		}
		for _, day := range policy.WeeklyOff.CustomDays {
			if day < time.Sunday || day > time.Saturday {
				return fmt.Errorf("%w: invalid weekday %d", ErrInvalidPolicy, day)
			}
		}
	default:
		return fmt.Errorf("%w: unknown weekly-off kind %q", ErrInvalidPolicy, policy.WeeklyOff.Kind)
	}

	if !policy.Fine.Enabled {
		return nil
	}
	switch policy.Fine.Method {
	case compensation.FineMethodShiftBased:
		if !policy.Fine.ShiftHours.IsPositive() {
			return fmt.Errorf("%w: shift-based fines need positive shift hours", ErrInvalidPolicy)
		}
	case compensation.FineMethodRuleBased:
		if len(policy.Fine.Rules) == 0 {
			return fmt.Errorf("%w: rule-based fines need at least one rule", ErrInvalidPolicy)
		}
		for i, rule := range policy.Fine.Rules {
			if err := validateRule(rule); err != nil {
				return fmt.Errorf("rule %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: unknown fine method %q", ErrInvalidPolicy, policy.Fine.Method)
	}
	return nil
}

func validateRule(rule compensation.FineRule) error {
	switch rule.Multiplier {
	case compensation.FineMultiplierOneX,
		compensation.FineMultiplierTwoX,
		compensation.FineMultiplierThreeX,
		compensation.FineMultiplierHalfDay,
		compensation.FineMultiplierFullDay:
	case compensation.FineMultiplierFixed:
		if rule.FixedAmount.IsNegative() {
			return fmt.Errorf("%w: fixed fine amount must not be negative", ErrInvalidPolicy)
		}
	default:
		return fmt.Errorf("%w: unknown multiplier %q", ErrInvalidPolicy, rule.Multiplier)
	}

	switch rule.AppliesTo {
	case compensation.FineAppliesLateArrival,
		compensation.FineAppliesEarlyExit,
		compensation.FineAppliesBoth:
		return nil
	}
	return fmt.Errorf("%w: unknown appliesTo %q", ErrInvalidPolicy, rule.AppliesTo)
}
