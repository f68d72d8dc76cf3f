// Package pdf renders payslip documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Payslip is the flattened data one payslip document needs.
type Payslip struct {
	Reference        string
	EmployeeCode     string
	EmployeeName     string
	Designation      string
	Department       string
	Month            int
	Year             int
	Basic            string
	HRA              string
	Conveyance       string
	MedicalAllowance string
	Gross            string
	Deductions       string
	Net              string
	Status           string
}

// RenderPayslip produces a single-page A4 payslip.
func RenderPayslip(p Payslip) ([]byte, error) {
	period := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Payslip - %s", period.Format("January 2006")))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Reference: %s", p.Reference))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", p.EmployeeName, p.EmployeeCode))
	pdf.Ln(6)
	if p.Designation != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Designation: %s", p.Designation))
		pdf.Ln(6)
	}
	if p.Department != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Department: %s", p.Department))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Status: %s", p.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 8, "Earnings")
	pdf.Cell(0, 8, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []struct {
		label  string
		amount string
	}{
		{"Basic", p.Basic},
		{"House Rent Allowance", p.HRA},
		{"Conveyance", p.Conveyance},
		{"Medical Allowance", p.MedicalAllowance},
	} {
		pdf.Cell(120, 7, line.label)
		pdf.Cell(0, 7, line.amount)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 7, "Gross")
	pdf.Cell(0, 7, p.Gross)
	pdf.Ln(7)
	pdf.Cell(120, 7, "Deductions")
	pdf.Cell(0, 7, p.Deductions)
	pdf.Ln(7)
	pdf.Cell(120, 7, "Net Pay")
	pdf.Cell(0, 7, p.Net)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
