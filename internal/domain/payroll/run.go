package payroll

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"hrpay/internal/domain/compensation"
)

// RunMonth computes payroll for every active employee of the tenant for one
// month. The engine is a pure function of its inputs, so employees fan out
// across a bounded worker pool with no shared state; the only coordination is
// collecting results. A failed employee never blocks the rest of the run.
func (s *Service) RunMonth(ctx context.Context, tenantID string, year int, month time.Month) (RunSummary, error) {
	policy, err := s.org.GetPolicy(ctx, tenantID)
	if err != nil {
		return RunSummary{}, err
	}
	holidays, err := s.org.HolidaysForMonth(ctx, tenantID, year, month)
	if err != nil {
		return RunSummary{}, err
	}
	employees, err := s.ListActiveEmployees(ctx, tenantID)
	if err != nil {
		return RunSummary{}, err
	}

	summary := RunSummary{Year: year, Month: month}
	if len(employees) == 0 {
		return summary, nil
	}

	jobs := make(chan Employee)
	results := make(chan RunResult, len(employees))

	workers := s.workers
	if workers > len(employees) {
		workers = len(employees)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for employee := range jobs {
				results <- s.runEmployee(ctx, tenantID, employee.ID, year, month, policy, holidays)
			}
		}()
	}

	for _, employee := range employees {
		jobs <- employee
	}
	close(jobs)
	wg.Wait()
	close(results)

	for result := range results {
		switch result.Status {
		case RunStatusComputed:
			summary.Computed++
		case RunStatusSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
		summary.Employees = append(summary.Employees, result)
	}
	sort.Slice(summary.Employees, func(i, j int) bool {
		return summary.Employees[i].EmployeeID < summary.Employees[j].EmployeeID
	})
	return summary, nil
}

func (s *Service) runEmployee(ctx context.Context, tenantID, employeeID string, year int, month time.Month, policy compensation.OrganizationPolicy, holidays []compensation.Holiday) RunResult {
	structure, err := s.GetSalaryStructure(ctx, tenantID, employeeID)
	if err != nil {
		return runFailure(employeeID, err)
	}
	attendance, err := s.ListAttendance(ctx, tenantID, employeeID, year, month)
	if err != nil {
		return runFailure(employeeID, err)
	}

	result, err := compensation.ComputePayroll(compensation.ComputeInput{
		Year:       year,
		Month:      month,
		Policy:     policy,
		Structure:  structure,
		Attendance: attendance,
		Holidays:   holidays,
	})
	if err != nil {
		return runFailure(employeeID, err)
	}

	if _, err := s.SaveResult(ctx, tenantID, employeeID, result); err != nil {
		return runFailure(employeeID, err)
	}
	return RunResult{
		EmployeeID: employeeID,
		Status:     RunStatusComputed,
		NetPayable: result.NetPayable,
		FineTotal:  result.FineTotal,
		Warnings:   result.Warnings,
	}
}

// runFailure separates missing-data skips from hard failures: the engine
// reports missing upstream data rather than defaulting financial figures, and
// the run surfaces those employees for manual review.
func runFailure(employeeID string, err error) RunResult {
	status := RunStatusFailed
	if errors.Is(err, ErrSalaryStructureNotFound) ||
		errors.Is(err, compensation.ErrNoSalaryStructure) ||
		errors.Is(err, compensation.ErrNoAttendanceData) {
		status = RunStatusSkipped
	}
	return RunResult{EmployeeID: employeeID, Status: status, Error: err.Error()}
}
