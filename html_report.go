package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"
)

// GenerateHTMLReport generates a standalone branded HTML report for a
// projection result, with the two charts embedded as base64 PNGs.
func GenerateHTMLReport(result ProjectionResult, brand Brand, filename string) error {
	milestonePNG, err := RenderMilestoneChart(result, brand)
	if err != nil {
		return fmt.Errorf("milestone chart: %w", err)
	}
	breakdownPNG, err := RenderBreakdownChart(result, brand)
	if err != nil {
		return fmt.Errorf("breakdown chart: %w", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	input := result.Input
	final := result.FinalSnapshot()

	// Write HTML header
	fmt.Fprintf(f, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s: %s</title>
    <style>
        %s
        :root {
            --primary: %s;
            --bg: %s;
            --card-bg: %s;
            --text: %s;
            --text-muted: %s;
            --border: %s;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: %s;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
            padding: 2rem;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 {
            font-size: 1.75rem;
            margin-bottom: 0.5rem;
            color: var(--primary);
        }
        h2 {
            font-size: 1.25rem;
            margin: 1.5rem 0 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid var(--primary);
        }
        .subtitle {
            color: var(--text-muted);
            margin-bottom: 1.5rem;
        }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .grid { display: grid; gap: 1rem; }
        .grid-4 { grid-template-columns: repeat(4, 1fr); }
        @media (max-width: 768px) {
            .grid-4 { grid-template-columns: 1fr; }
        }
        .metric {
            text-align: center;
            padding: 1rem;
            border-radius: 8px;
            background: var(--bg);
        }
        .metric-value {
            font-size: 1.35rem;
            font-weight: 700;
            color: var(--primary);
        }
        .metric-label {
            font-size: 0.875rem;
            color: var(--text-muted);
        }
        table {
            width: 100%%;
            border-collapse: collapse;
            font-size: 0.875rem;
        }
        th, td {
            padding: 0.6rem 0.5rem;
            text-align: right;
            border-bottom: 1px solid var(--border);
        }
        th { font-weight: 600; }
        th:first-child, td:first-child { text-align: left; }
        .highlight { background: rgba(128,128,128,0.12); font-weight: 600; }
        img.chart { width: 100%%; height: auto; border-radius: 6px; }
        .footer {
            text-align: center;
            color: var(--text-muted);
            font-size: 0.75rem;
            margin-top: 2rem;
            padding-top: 1rem;
            border-top: 1px solid var(--border);
        }
    </style>
</head>
<body>
<div class="container">
    <h1>%s</h1>
    <p class="subtitle">%s</p>
`,
		brand.Name, input.Profile.Label(),
		brand.FontImport,
		brand.Primary, brand.PageBackground, brand.CardBackground,
		brand.Text, brand.TextMuted, brand.Border,
		brand.FontFamily,
		brand.Name, brand.Tagline)

	// Parameter metrics
	fmt.Fprintf(f, `    <div class="card">
        <div class="grid grid-4">
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">Initial Investment</div></div>
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">Starting Installment</div></div>
            <div class="metric"><div class="metric-value">%.1f%%</div><div class="metric-label">Annual Escalation</div></div>
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">Return Profile</div></div>
        </div>
    </div>
`,
		brand.FormatMoney(input.InitialInvestment),
		brand.FormatMoney(input.MonthlyInstallment),
		input.EscalationRate*100,
		input.Profile.Label())

	// Outcome metrics
	fmt.Fprintf(f, `    <div class="card">
        <div class="grid grid-4">
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">Total After %d Years</div></div>
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">Capital Contributed</div></div>
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">Investment Return</div></div>
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">Final Monthly Installment</div></div>
        </div>
    </div>
`,
		brand.FormatMoneyShort(final.TotalAmount), ProjectionYears,
		brand.FormatMoneyShort(final.TotalCapitalContributed),
		brand.FormatMoneyShort(final.InvestmentReturn),
		brand.FormatMoney(final.MonthlyInstallment))

	// Milestone summary
	fmt.Fprintf(f, `    <div class="card">
        <h2>Summary: %s</h2>
        <table>
            <thead><tr><th>Year</th><th>Total Amount</th></tr></thead>
            <tbody>
`, input.Profile.Label())
	for _, snap := range result.Milestones() {
		fmt.Fprintf(f, "                <tr><td>%d</td><td>%s</td></tr>\n",
			snap.Year, brand.FormatMoney(snap.TotalAmount))
	}
	fmt.Fprintf(f, `            </tbody>
        </table>
    </div>
`)

	// Charts
	fmt.Fprintf(f, `    <div class="card">
        <h2>Milestone Growth Projection</h2>
        <img class="chart" src="data:image/png;base64,%s" alt="Milestone growth chart">
    </div>
    <div class="card">
        <h2>5-Year Interval Breakdown: Capital vs. Investment Return</h2>
        <img class="chart" src="data:image/png;base64,%s" alt="Capital vs return chart">
    </div>
`,
		base64.StdEncoding.EncodeToString(milestonePNG),
		base64.StdEncoding.EncodeToString(breakdownPNG))

	// Full yearly table, milestone rows highlighted
	fmt.Fprintf(f, `    <div class="card">
        <h2>Year-by-Year Projection</h2>
        <table>
            <thead><tr><th>Year</th><th>Total Amount</th><th>Monthly Installment</th><th>Total Capital Contributed</th><th>Investment Return</th></tr></thead>
            <tbody>
`)
	for _, snap := range result.Years {
		rowClass := ""
		if isMilestoneYear(snap.Year) {
			rowClass = ` class="highlight"`
		}
		fmt.Fprintf(f, "                <tr%s><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			rowClass, snap.Year,
			brand.FormatMoney(snap.TotalAmount),
			brand.FormatMoney(snap.MonthlyInstallment),
			brand.FormatMoney(snap.TotalCapitalContributed),
			brand.FormatMoney(snap.InvestmentReturn))
	}
	fmt.Fprintf(f, `            </tbody>
        </table>
    </div>
`)

	// Footer
	fmt.Fprintf(f, `    <div class="footer">
        Generated %s · Projections assume a constant %.0f%% annual return and are not guarantees of future performance.
    </div>
</div>
</body>
</html>
`, time.Now().Format("2 January 2006 15:04"), input.Profile.AnnualReturn*100)

	return nil
}

// isMilestoneYear reports whether a year is one of the reporting checkpoints
func isMilestoneYear(year int) bool {
	for _, m := range MilestoneYears {
		if m == year {
			return true
		}
	}
	return false
}
