package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Terms struct {
	Principal     decimal.Decimal `json:"principal"`
	TenureMonths  int             `json:"tenureMonths"`
	AnnualRatePct decimal.Decimal `json:"annualRatePct"`
}

type ScheduleEntry struct {
	Month            int             `json:"month"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

type Loan struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	Principal     decimal.Decimal `json:"principal"`
	TenureMonths  int             `json:"tenureMonths"`
	AnnualRatePct decimal.Decimal `json:"annualRatePct"`
	Installment   decimal.Decimal `json:"installment"`
	CreatedAt     time.Time       `json:"createdAt"`
}
