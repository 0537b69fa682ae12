/*
Package payslip renders payroll records as PDF payslips.

PURPOSE:
  Turns one immutable PayrollRecord into a small A4 PDF: header,
  employee identity, period, processed date, and the three money lines.
  Rendering streams to an io.Writer; the engine never writes files.

SEE ALSO:
  - api/handlers.go: The payslip download endpoint
  - payroll/types.go: PayrollRecord, the only input
*/
package payslip

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/warp/payroll-engine/payroll"
)

// Renderer produces PDF payslips from payroll records.
type Renderer struct{}

// NewRenderer creates a new payslip renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the record's payslip PDF to w.
func (r *Renderer) Render(w io.Writer, rec payroll.PayrollRecord) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", rec.EmployeeID, rec.Kind))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay Period: %s", rec.PayPeriod))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Processed: %s", rec.ProcessedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Gross Salary: %s", rec.Gross.Display()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", rec.Deductions.Display()))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Salary: %s", rec.Net.Display()))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render payslip for record %s: %w", rec.ID, err)
	}
	return nil
}
