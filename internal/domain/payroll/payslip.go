package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hrpay/internal/domain/compensation"
)

// GeneratePayslipPDF renders a stored computation result as a payslip file
// and returns its path. The PDF is a view over the persisted result; nothing
// is recomputed here.
func (s *Service) GeneratePayslipPDF(ctx context.Context, tenantID, resultID string) (string, error) {
	row, err := s.GetResultByID(ctx, tenantID, resultID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.payslipDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.payslipDir, row.ID+".pdf")

	period := time.Date(row.Year, row.Month, 1, 0, 0, 0, 0, time.UTC)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", row.FirstName, row.LastName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period.Format("January 2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Working days: %d of %d (present %s)",
		row.Result.Summary.WorkingDays, row.Result.Summary.TotalDays, row.Result.Attendance.PresentDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(80, 8, "Component")
	pdf.Cell(40, 8, "Monthly")
	pdf.Cell(40, 8, "Prorated")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, component := range row.Result.Proration.Components {
		label := component.Name
		if component.Kind == compensation.ComponentKindDeduction {
			label += " (-)"
		}
		pdf.Cell(80, 7, label)
		pdf.Cell(40, 7, component.MonthlyAmount.StringFixed(2))
		pdf.Cell(40, 7, component.ProratedAmount.StringFixed(2))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.Cell(0, 8, fmt.Sprintf("Prorated gross: %s", row.Result.Proration.ProratedGross.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Prorated net: %s", row.Result.Proration.ProratedNet.StringFixed(2)))
	pdf.Ln(7)
	if row.Result.FineTotal.IsPositive() {
		applied := "not deducted"
		if row.Result.FineApplied {
			applied = "deducted"
		}
		pdf.Cell(0, 8, fmt.Sprintf("Fines: %s (%s)", row.Result.FineTotal.StringFixed(2), applied))
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net payable: %s", row.Result.NetPayable.StringFixed(2)))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
