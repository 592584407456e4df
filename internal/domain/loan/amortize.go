package loan

import "github.com/shopspring/decimal"

const currencyPrecision = 2

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

func validateTerms(terms Terms) error {
	if !terms.Principal.IsPositive() {
		return ErrInvalidPrincipal
	}
	if terms.TenureMonths <= 0 {
		return ErrInvalidTenure
	}
	if terms.AnnualRatePct.IsNegative() {
		return ErrInvalidRate
	}
	return nil
}

// Installment computes the fixed monthly payment for the loan. A zero
// interest rate splits the principal evenly; otherwise the standard
// amortization formula P*r*(1+r)^n / ((1+r)^n - 1) applies. The result is
// rounded half-up to currency precision.
func Installment(terms Terms) (decimal.Decimal, error) {
	if err := validateTerms(terms); err != nil {
		return decimal.Zero, err
	}

	tenure := decimal.NewFromInt(int64(terms.TenureMonths))
	if terms.AnnualRatePct.IsZero() {
		return terms.Principal.Div(tenure).Round(currencyPrecision), nil
	}

	monthlyRate := terms.AnnualRatePct.Div(hundred).Div(twelve)
	factor := one.Add(monthlyRate).Pow(tenure)
	installment := terms.Principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(one))
	return installment.Round(currencyPrecision), nil
}

// Schedule generates the full amortization table. The final row absorbs the
// accumulated rounding so the remaining balance reaches exactly zero and the
// principal portions sum to the original principal.
func Schedule(terms Terms) ([]ScheduleEntry, error) {
	installment, err := Installment(terms)
	if err != nil {
		return nil, err
	}

	monthlyRate := decimal.Zero
	if !terms.AnnualRatePct.IsZero() {
		monthlyRate = terms.AnnualRatePct.Div(hundred).Div(twelve)
	}

	schedule := make([]ScheduleEntry, 0, terms.TenureMonths)
	remaining := terms.Principal
	for month := 1; month <= terms.TenureMonths; month++ {
		interest := remaining.Mul(monthlyRate).Round(currencyPrecision)
		principalPortion := installment.Sub(interest)
		payment := installment

		if month == terms.TenureMonths {
			principalPortion = remaining
			payment = principalPortion.Add(interest)
		}

		remaining = remaining.Sub(principalPortion)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		schedule = append(schedule, ScheduleEntry{
			Month:            month,
			Payment:          payment,
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			RemainingBalance: remaining,
		})
	}
	return schedule, nil
}
