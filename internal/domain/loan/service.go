package loan

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// CreateLoan validates the terms, derives the installment, and persists the
// loan for the employee.
func (s *Service) CreateLoan(ctx context.Context, tenantID, employeeID string, terms Terms) (Loan, error) {
	installment, err := Installment(terms)
	if err != nil {
		return Loan{}, err
	}

	var record Loan
	err = s.store.DB.QueryRow(ctx, `
    INSERT INTO loans (tenant_id, employee_id, principal, tenure_months, annual_rate_pct, installment)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id, created_at
  `, tenantID, employeeID, terms.Principal.String(), terms.TenureMonths, terms.AnnualRatePct.String(), installment.String()).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return Loan{}, err
	}

	record.EmployeeID = employeeID
	record.Principal = terms.Principal
	record.TenureMonths = terms.TenureMonths
	record.AnnualRatePct = terms.AnnualRatePct
	record.Installment = installment
	return record, nil
}

func (s *Service) ListLoans(ctx context.Context, tenantID, employeeID string) ([]Loan, error) {
	rows, err := s.store.DB.Query(ctx, `
    SELECT id, employee_id, principal::text, tenure_months, annual_rate_pct::text, installment::text, created_at
    FROM loans
    WHERE tenant_id = $1 AND employee_id = $2
    ORDER BY created_at DESC
  `, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []Loan
	for rows.Next() {
		var record Loan
		var principal, rate, installment string
		if err := rows.Scan(&record.ID, &record.EmployeeID, &principal, &record.TenureMonths, &rate, &installment, &record.CreatedAt); err != nil {
			return nil, err
		}
		if record.Principal, err = decimal.NewFromString(principal); err != nil {
			return nil, err
		}
		if record.AnnualRatePct, err = decimal.NewFromString(rate); err != nil {
			return nil, err
		}
		if record.Installment, err = decimal.NewFromString(installment); err != nil {
			return nil, err
		}
		loans = append(loans, record)
	}
	return loans, nil
}
