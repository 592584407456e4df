package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"hrpay/internal/domain/compensation"
)

func (s *Service) ListActiveEmployees(ctx context.Context, tenantID string) ([]Employee, error) {
	rows, err := s.store.DB.Query(ctx, `
    SELECT id, first_name, last_name, email, status
    FROM employees
    WHERE tenant_id = $1 AND status = $2
    ORDER BY last_name, first_name
  `, tenantID, EmployeeStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var employee Employee
		if err := rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email, &employee.Status); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, nil
}

func (s *Service) GetEmployee(ctx context.Context, tenantID, employeeID string) (Employee, error) {
	var employee Employee
	err := s.store.DB.QueryRow(ctx, `
    SELECT id, first_name, last_name, email, status
    FROM employees
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, employeeID).Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email, &employee.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return employee, err
}

// GetSalaryStructure loads the employee's current structure. Totals are
// re-derived from the stored components so the gross/net invariants hold even
// if the row predates a component-kind change.
func (s *Service) GetSalaryStructure(ctx context.Context, tenantID, employeeID string) (compensation.SalaryStructure, error) {
	var raw []byte
	err := s.store.DB.QueryRow(ctx, `
    SELECT components_json
    FROM salary_structures
    WHERE tenant_id = $1 AND employee_id = $2
  `, tenantID, employeeID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return compensation.SalaryStructure{}, ErrSalaryStructureNotFound
	}
	if err != nil {
		return compensation.SalaryStructure{}, err
	}

	var components []compensation.SalaryComponent
	if err := json.Unmarshal(raw, &components); err != nil {
		return compensation.SalaryStructure{}, err
	}
	return compensation.NewSalaryStructure(components)
}

// ReplaceSalaryStructure swaps the employee's structure wholesale; a revision
// supersedes the previous structure, components are never mutated in place.
func (s *Service) ReplaceSalaryStructure(ctx context.Context, tenantID, employeeID string, components []compensation.SalaryComponent) (compensation.SalaryStructure, error) {
	structure, err := compensation.NewSalaryStructure(components)
	if err != nil {
		return compensation.SalaryStructure{}, err
	}
	raw, err := json.Marshal(structure.Components)
	if err != nil {
		return compensation.SalaryStructure{}, err
	}
	_, err = s.store.DB.Exec(ctx, `
    INSERT INTO salary_structures (tenant_id, employee_id, components_json, gross_monthly, net_monthly)
    VALUES ($1,$2,$3,$4,$5)
    ON CONFLICT (tenant_id, employee_id)
    DO UPDATE SET components_json = EXCLUDED.components_json,
                  gross_monthly = EXCLUDED.gross_monthly,
                  net_monthly = EXCLUDED.net_monthly,
                  updated_at = now()
  `, tenantID, employeeID, raw, structure.GrossMonthly.String(), structure.NetMonthly.String())
	if err != nil {
		return compensation.SalaryStructure{}, err
	}
	return structure, nil
}

func (s *Service) ListAttendance(ctx context.Context, tenantID, employeeID string, year int, month time.Month) ([]compensation.AttendanceDay, error) {
	rows, err := s.store.DB.Query(ctx, `
    SELECT attendance_date, status, leave_approved, late_minutes, early_minutes
    FROM attendance_days
    WHERE tenant_id = $1 AND employee_id = $2
      AND attendance_date >= $3 AND attendance_date < $4
    ORDER BY attendance_date
  `, tenantID, employeeID,
		time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []compensation.AttendanceDay
	for rows.Next() {
		var day compensation.AttendanceDay
		if err := rows.Scan(&day.Date, &day.Status, &day.LeaveApproved, &day.LateMinutes, &day.EarlyMinutes); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func (s *Service) UpsertAttendanceDay(ctx context.Context, tenantID, employeeID string, day compensation.AttendanceDay) error {
	_, err := s.store.DB.Exec(ctx, `
    INSERT INTO attendance_days (tenant_id, employee_id, attendance_date, status, leave_approved, late_minutes, early_minutes)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    ON CONFLICT (tenant_id, employee_id, attendance_date)
    DO UPDATE SET status = EXCLUDED.status,
                  leave_approved = EXCLUDED.leave_approved,
                  late_minutes = EXCLUDED.late_minutes,
                  early_minutes = EXCLUDED.early_minutes
  `, tenantID, employeeID, day.Date, day.Status, day.LeaveApproved, day.LateMinutes, day.EarlyMinutes)
	return err
}

func (s *Service) SaveResult(ctx context.Context, tenantID, employeeID string, result compensation.PayrollComputationResult) (string, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	var id string
	err = s.store.DB.QueryRow(ctx, `
    INSERT INTO payroll_results (tenant_id, employee_id, year, month, net_payable, fine_total, result_json)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    ON CONFLICT (tenant_id, employee_id, year, month)
    DO UPDATE SET net_payable = EXCLUDED.net_payable,
                  fine_total = EXCLUDED.fine_total,
                  result_json = EXCLUDED.result_json,
                  created_at = now()
    RETURNING id
  `, tenantID, employeeID, result.Year, int(result.Month), result.NetPayable.String(), result.FineTotal.String(), raw).Scan(&id)
	return id, err
}

func (s *Service) GetResult(ctx context.Context, tenantID, employeeID string, year int, month time.Month) (ResultRow, error) {
	row := s.store.DB.QueryRow(ctx, `
    SELECT r.id, r.employee_id, e.first_name, e.last_name, r.year, r.month, r.net_payable::text, r.result_json, r.created_at
    FROM payroll_results r
    JOIN employees e ON r.employee_id = e.id
    WHERE r.tenant_id = $1 AND r.employee_id = $2 AND r.year = $3 AND r.month = $4
  `, tenantID, employeeID, year, int(month))
	return scanResultRow(row)
}

func (s *Service) GetResultByID(ctx context.Context, tenantID, resultID string) (ResultRow, error) {
	row := s.store.DB.QueryRow(ctx, `
    SELECT r.id, r.employee_id, e.first_name, e.last_name, r.year, r.month, r.net_payable::text, r.result_json, r.created_at
    FROM payroll_results r
    JOIN employees e ON r.employee_id = e.id
    WHERE r.tenant_id = $1 AND r.id = $2
  `, tenantID, resultID)
	return scanResultRow(row)
}

func (s *Service) ListResults(ctx context.Context, tenantID string, year int, month time.Month) ([]ResultRow, error) {
	rows, err := s.store.DB.Query(ctx, `
    SELECT r.id, r.employee_id, e.first_name, e.last_name, r.year, r.month, r.net_payable::text, r.result_json, r.created_at
    FROM payroll_results r
    JOIN employees e ON r.employee_id = e.id
    WHERE r.tenant_id = $1 AND r.year = $2 AND r.month = $3
    ORDER BY e.last_name, e.first_name
  `, tenantID, year, int(month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ResultRow
	for rows.Next() {
		result, err := scanResultRow(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func scanResultRow(row pgx.Row) (ResultRow, error) {
	var result ResultRow
	var month int
	var netPayable string
	var raw []byte
	err := row.Scan(&result.ID, &result.EmployeeID, &result.FirstName, &result.LastName, &result.Year, &month, &netPayable, &raw, &result.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ResultRow{}, ErrResultNotFound
	}
	if err != nil {
		return ResultRow{}, err
	}
	result.Month = time.Month(month)
	result.NetPayable, err = decimal.NewFromString(netPayable)
	if err != nil {
		return ResultRow{}, err
	}
	if err := json.Unmarshal(raw, &result.Result); err != nil {
		return ResultRow{}, err
	}
	return result, nil
}
