package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with the brand currency symbol and
// thousands separators, e.g. "R 12,335.56"
func (b Brand) FormatMoney(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var out strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(digit)
	}

	formatted := fmt.Sprintf("%s %s.%s", b.CurrencySymbol, out.String(), parts[1])
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatMoneyShort formats an amount in abbreviated form for headlines,
// e.g. "R 1.2M" or "R 250k"
func (b Brand) FormatMoneyShort(amount float64) string {
	if amount >= 1000000 {
		return fmt.Sprintf("%s %.2fM", b.CurrencySymbol, amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("%s %.0fk", b.CurrencySymbol, amount/1000)
	}
	return fmt.Sprintf("%s %.0f", b.CurrencySymbol, amount)
}

// PrintHeader prints the console banner and the projection parameters
func PrintHeader(input ProjectionInput, brand Brand) {
	title := strings.ToUpper(brand.Name)
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Printf("║ %-76s ║\n", centerText(title, 76))
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Parameters:")
	fmt.Println("───────────")
	fmt.Printf("  Initial Investment:   %s\n", brand.FormatMoney(input.InitialInvestment))
	fmt.Printf("  Monthly Installment:  %s\n", brand.FormatMoney(input.MonthlyInstallment))
	fmt.Printf("  Annual Escalation:    %.1f%%\n", input.EscalationRate*100)
	fmt.Printf("  Return Profile:       %s - %s\n", input.Profile.Label(), input.Profile.Description)
	fmt.Printf("  Horizon:              %d years (%d months)\n", ProjectionYears, ProjectionYears*MonthsPerYear)
	fmt.Println()
}

// PrintNoContributionWarning prints the validation warning shown when both
// inputs are zero
func PrintNoContributionWarning() {
	fmt.Println("⚠  Please enter a value greater than 0 for either the Initial Investment")
	fmt.Println("   or the Monthly Installment.")
}

// PrintMilestoneTable prints the milestone summary table
func PrintMilestoneTable(result ProjectionResult, brand Brand) {
	fmt.Printf("Summary: %s\n", result.Input.Profile.Label())
	fmt.Println(strings.Repeat("─", 78))
	fmt.Printf("%-6s │ %18s │ %18s │ %18s\n", "Year", "Total Amount", "Capital", "Return")
	fmt.Println(strings.Repeat("─", 78))

	for _, snap := range result.Milestones() {
		fmt.Printf("%-6d │ %18s │ %18s │ %18s\n",
			snap.Year,
			brand.FormatMoney(snap.TotalAmount),
			brand.FormatMoney(snap.TotalCapitalContributed),
			brand.FormatMoney(snap.InvestmentReturn))
	}

	fmt.Println(strings.Repeat("─", 78))
	fmt.Println()
}

// PrintBreakdownTable prints the 5-year capital vs return breakdown
func PrintBreakdownTable(result ProjectionResult, brand Brand) {
	fmt.Println("5-Year Interval Breakdown: Capital vs. Investment Return")
	fmt.Println(strings.Repeat("─", 78))
	fmt.Printf("%-6s │ %18s │ %18s │ %10s\n", "Year", "Capital", "Return", "Return %")
	fmt.Println(strings.Repeat("─", 78))

	for _, snap := range result.Breakdown() {
		returnShare := 0.0
		if snap.TotalAmount > 0 {
			returnShare = snap.InvestmentReturn / snap.TotalAmount * 100
		}
		fmt.Printf("%-6d │ %18s │ %18s │ %9.1f%%\n",
			snap.Year,
			brand.FormatMoney(snap.TotalCapitalContributed),
			brand.FormatMoney(snap.InvestmentReturn),
			returnShare)
	}

	fmt.Println(strings.Repeat("─", 78))
	fmt.Println()

	final := result.FinalSnapshot()
	fmt.Printf("After %d years: %s total, of which %s is investment return\n",
		ProjectionYears,
		brand.FormatMoney(final.TotalAmount),
		brand.FormatMoney(final.InvestmentReturn))
	fmt.Println()
}

// WriteProjectionCSV writes the full yearly series as CSV
func WriteProjectionCSV(w io.Writer, result ProjectionResult) error {
	cw := csv.NewWriter(w)

	header := []string{"Year", "Total Amount", "Monthly Installment", "Total Capital Contributed", "Investment Return"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, snap := range result.Years {
		record := []string{
			strconv.Itoa(snap.Year),
			strconv.FormatFloat(snap.TotalAmount, 'f', 2, 64),
			strconv.FormatFloat(snap.MonthlyInstallment, 'f', 2, 64),
			strconv.FormatFloat(snap.TotalCapitalContributed, 'f', 2, 64),
			strconv.FormatFloat(snap.InvestmentReturn, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// centerText pads a string to the given width with the text centered
func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
