package compensation

import "github.com/shopspring/decimal"

var sixtyMinutes = decimal.NewFromInt(60)

// DailyFine computes the fine for one day's violation. Shift-based policies
// convert the daily salary into an hourly rate over the configured shift
// length; by default only late arrival triggers a shift-based fine, early
// exit is a configuration point. Rule-based policies evaluate rules in
// configured order and the first rule matching the violation kind wins.
// Late and early violations on the same day are evaluated independently and
// their fines summed.
func DailyFine(policy FinePolicy, dailySalary decimal.Decimal, violation Violation) (decimal.Decimal, error) {
	if !policy.Enabled {
		return decimal.Zero, nil
	}
	if violation.LateMinutes <= 0 && violation.EarlyMinutes <= 0 {
		return decimal.Zero, nil
	}

	switch policy.Method {
	case FineMethodShiftBased:
		return shiftBasedFine(policy, dailySalary, violation)
	case FineMethodRuleBased:
		return ruleBasedFine(policy, dailySalary, violation), nil
	}
	return decimal.Zero, nil
}

// MonthlyFine aggregates daily fines across a month's violations.
func MonthlyFine(policy FinePolicy, dailySalary decimal.Decimal, violations []Violation) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, violation := range violations {
		fine, err := DailyFine(policy, dailySalary, violation)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(fine)
	}
	return total, nil
}

func shiftBasedFine(policy FinePolicy, dailySalary decimal.Decimal, violation Violation) (decimal.Decimal, error) {
	if !policy.ShiftHours.IsPositive() {
		return decimal.Zero, ErrInvalidShiftHours
	}
	hourlyRate := dailySalary.Div(policy.ShiftHours)

	minutes := 0
	if violation.LateMinutes > 0 {
		minutes += violation.LateMinutes
	}
	if policy.FineEarlyExit && violation.EarlyMinutes > 0 {
		minutes += violation.EarlyMinutes
	}
	if minutes == 0 {
		return decimal.Zero, nil
	}
	return hourlyRate.Mul(decimal.NewFromInt(int64(minutes))).Div(sixtyMinutes).Round(CurrencyPrecision), nil
}

func ruleBasedFine(policy FinePolicy, dailySalary decimal.Decimal, violation Violation) decimal.Decimal {
	total := decimal.Zero
	if violation.LateMinutes > 0 {
		if rule, ok := firstMatchingRule(policy.Rules, FineAppliesLateArrival); ok {
			total = total.Add(resolveMultiplier(rule, dailySalary))
		}
	}
	if violation.EarlyMinutes > 0 {
		if rule, ok := firstMatchingRule(policy.Rules, FineAppliesEarlyExit); ok {
			total = total.Add(resolveMultiplier(rule, dailySalary))
		}
	}
	return total.Round(CurrencyPrecision)
}

// firstMatchingRule scans rules in configured order; later matching rules are
// ignored for the violation.
func firstMatchingRule(rules []FineRule, kind string) (FineRule, bool) {
	for _, rule := range rules {
		if rule.AppliesTo == kind || rule.AppliesTo == FineAppliesBoth {
			return rule, true
		}
	}
	return FineRule{}, false
}

func resolveMultiplier(rule FineRule, dailySalary decimal.Decimal) decimal.Decimal {
	switch rule.Multiplier {
	case FineMultiplierOneX, FineMultiplierFullDay:
		return dailySalary
	case FineMultiplierTwoX:
		return dailySalary.Mul(decimal.NewFromInt(2))
	case FineMultiplierThreeX:
		return dailySalary.Mul(decimal.NewFromInt(3))
	case FineMultiplierHalfDay:
		return dailySalary.Mul(oneHalf)
	case FineMultiplierFixed:
		return rule.FixedAmount
	}
	return decimal.Zero
}
