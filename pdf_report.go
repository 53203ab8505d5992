package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfReport builds the PDF projection summary
type pdfReport struct {
	pdf    *fpdf.Fpdf
	brand  Brand
	result ProjectionResult
}

// GeneratePDFReport creates a PDF summary of a projection result
func GeneratePDFReport(result ProjectionResult, brand Brand) ([]byte, error) {
	report := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		brand:  brand,
		result: result,
	}

	report.pdf.SetMargins(marginLeft, marginTop, marginRight)
	report.pdf.SetAutoPageBreak(true, marginBottom)

	report.addSummaryPage()
	report.addYearByYearPage()

	var buf bytes.Buffer
	err := report.pdf.Output(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// pdfMoney formats money for PDF cells. fpdf's core fonts are cp1252, so
// the currency symbol from the brand is safe (ASCII "R").
func (r *pdfReport) pdfMoney(amount float64) string {
	return r.brand.FormatMoney(amount)
}

func (r *pdfReport) addSummaryPage() {
	input := r.result.Input
	final := r.result.FinalSnapshot()

	r.pdf.AddPage()

	// Title
	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 14, r.brand.Name, "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 13)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("30-Year Projection - %s", input.Profile.Label()), "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 7, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(8)

	// Parameters box
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, "Investment Parameters", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	params := []string{
		fmt.Sprintf("Initial Investment: %s", r.pdfMoney(input.InitialInvestment)),
		fmt.Sprintf("Starting Monthly Installment: %s", r.pdfMoney(input.MonthlyInstallment)),
		fmt.Sprintf("Annual Installment Escalation: %.1f%%", input.EscalationRate*100),
		fmt.Sprintf("Return Profile: %s - %s", input.Profile.Label(), input.Profile.Description),
	}
	for _, line := range params {
		r.pdf.CellFormat(contentWidth, 7, line, "LR", 1, "C", true, 0, "")
	}
	r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", true, 0, "")
	r.pdf.Ln(8)

	// Outcome box
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Outcome After %d Years", ProjectionYears), "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	outcomes := []string{
		fmt.Sprintf("Total Amount: %s", r.pdfMoney(final.TotalAmount)),
		fmt.Sprintf("Total Capital Contributed: %s", r.pdfMoney(final.TotalCapitalContributed)),
		fmt.Sprintf("Investment Return: %s", r.pdfMoney(final.InvestmentReturn)),
		fmt.Sprintf("Final Monthly Installment: %s", r.pdfMoney(final.MonthlyInstallment)),
	}
	for _, line := range outcomes {
		r.pdf.CellFormat(contentWidth, 7, line, "LR", 1, "C", true, 0, "")
	}
	r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", true, 0, "")
	r.pdf.Ln(10)

	// Milestone table
	r.drawSectionHeader("Milestone Growth")
	widths := []float64{30, 50, 50, 50}
	r.drawTableHeader([]string{"Year", "Total Amount", "Capital", "Return"}, widths)
	for _, snap := range r.result.Milestones() {
		r.drawTableRow([]string{
			fmt.Sprintf("%d", snap.Year),
			r.pdfMoney(snap.TotalAmount),
			r.pdfMoney(snap.TotalCapitalContributed),
			r.pdfMoney(snap.InvestmentReturn),
		}, widths, false)
	}
	r.pdf.Ln(8)

	// 5-year breakdown table
	r.drawSectionHeader("5-Year Interval Breakdown")
	widths = []float64{30, 50, 50, 50}
	r.drawTableHeader([]string{"Year", "Capital", "Return", "Return %"}, widths)
	for _, snap := range r.result.Breakdown() {
		returnShare := 0.0
		if snap.TotalAmount > 0 {
			returnShare = snap.InvestmentReturn / snap.TotalAmount * 100
		}
		r.drawTableRow([]string{
			fmt.Sprintf("%d", snap.Year),
			r.pdfMoney(snap.TotalCapitalContributed),
			r.pdfMoney(snap.InvestmentReturn),
			fmt.Sprintf("%.1f%%", returnShare),
		}, widths, false)
	}

	// Disclaimer
	r.pdf.Ln(10)
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(contentWidth, 5,
		"Projections assume a constant annual return compounded monthly and are illustrative only. "+
			"Past performance is not a guarantee of future results.", "", "L", false)
}

func (r *pdfReport) addYearByYearPage() {
	r.pdf.AddPage()
	r.drawSectionHeader("Year-by-Year Projection")

	widths := []float64{15, 42, 40, 42, 41}
	r.drawTableHeader([]string{"Year", "Total Amount", "Installment", "Capital", "Return"}, widths)

	for _, snap := range r.result.Years {
		r.drawTableRow([]string{
			fmt.Sprintf("%d", snap.Year),
			r.pdfMoney(snap.TotalAmount),
			r.pdfMoney(snap.MonthlyInstallment),
			r.pdfMoney(snap.TotalCapitalContributed),
			r.pdfMoney(snap.InvestmentReturn),
		}, widths, isMilestoneYear(snap.Year))
	}
}

// Helper functions

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
