package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"hrpay/internal/domain/compensation"
)

type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

type ResultRow struct {
	ID         string                                `json:"id"`
	EmployeeID string                                `json:"employeeId"`
	FirstName  string                                `json:"firstName"`
	LastName   string                                `json:"lastName"`
	Year       int                                   `json:"year"`
	Month      time.Month                            `json:"month"`
	NetPayable decimal.Decimal                       `json:"netPayable"`
	Result     compensation.PayrollComputationResult `json:"result"`
	CreatedAt  time.Time                             `json:"createdAt"`
}

type RunResult struct {
	EmployeeID string          `json:"employeeId"`
	Status     string          `json:"status"`
	NetPayable decimal.Decimal `json:"netPayable"`
	FineTotal  decimal.Decimal `json:"fineTotal"`
	Warnings   []string        `json:"warnings,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type RunSummary struct {
	Year      int         `json:"year"`
	Month     time.Month  `json:"month"`
	Computed  int         `json:"computed"`
	Skipped   int         `json:"skipped"`
	Failed    int         `json:"failed"`
	Employees []RunResult `json:"employees"`
}
