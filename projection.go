package main

import (
	"errors"
	"math"
)

const (
	// ProjectionYears is the fixed investment horizon
	ProjectionYears = 30

	// MonthsPerYear is the number of compounding periods per year
	MonthsPerYear = 12
)

// MilestoneYears are the reporting checkpoints shown in the summary table
// and the milestone growth chart
var MilestoneYears = []int{1, 3, 5, 10, 20, 30}

// BreakdownYears are the 5-year intervals shown in the capital-vs-return
// stacked breakdown
var BreakdownYears = []int{5, 10, 15, 20, 25, 30}

// ErrNoContribution is returned when there is nothing to project
var ErrNoContribution = errors.New("either the initial investment or the monthly installment must be greater than zero")

// ProjectionInput holds the parameters for a single projection run
type ProjectionInput struct {
	InitialInvestment  float64       // Lump sum invested at month 0
	MonthlyInstallment float64       // Starting monthly contribution
	EscalationRate     float64       // Annual installment increase as decimal (0.06 = 6%)
	Profile            ReturnProfile // Selected return profile (annual growth assumption)
}

// YearlySnapshot captures the account state at the end of a simulated year.
// Snapshots are immutable once produced and ordered by Year.
type YearlySnapshot struct {
	Year                    int     // 1..ProjectionYears
	TotalAmount             float64 // Balance at year end
	MonthlyInstallment      float64 // Installment paid during that year
	TotalCapitalContributed float64 // Initial investment plus all installments to date
	InvestmentReturn        float64 // TotalAmount - TotalCapitalContributed
}

// ProjectionResult holds the complete output of a projection run
type ProjectionResult struct {
	Input ProjectionInput
	Years []YearlySnapshot // One snapshot per year, index i = year i+1
}

// MonthlyRate converts an annual growth rate to the equivalent monthly rate
// using geometric (not arithmetic) conversion: (1+r)^(1/12) - 1
func MonthlyRate(annualReturn float64) float64 {
	return math.Pow(1+annualReturn, 1.0/12.0) - 1
}

// RunProjection simulates the account month by month over the full horizon
// and returns one snapshot per year.
//
// The installment escalates every 12 months after the first (months 13,
// 25, 37, ...). Each month the installment is added to the capital tracker
// and the balance, then the balance grows by the monthly rate.
func RunProjection(input ProjectionInput) (ProjectionResult, error) {
	if input.InitialInvestment == 0 && input.MonthlyInstallment == 0 {
		return ProjectionResult{}, ErrNoContribution
	}

	monthlyRate := MonthlyRate(input.Profile.AnnualReturn)

	balance := input.InitialInvestment
	installment := input.MonthlyInstallment
	totalCapital := input.InitialInvestment

	years := make([]YearlySnapshot, 0, ProjectionYears)

	for m := 1; m <= ProjectionYears*MonthsPerYear; m++ {
		// Apply escalation every 12 months
		if m > 1 && (m-1)%MonthsPerYear == 0 {
			installment *= 1 + input.EscalationRate
		}

		totalCapital += installment
		balance = (balance + installment) * (1 + monthlyRate)

		if m%MonthsPerYear == 0 {
			years = append(years, YearlySnapshot{
				Year:                    m / MonthsPerYear,
				TotalAmount:             balance,
				MonthlyInstallment:      installment,
				TotalCapitalContributed: totalCapital,
				InvestmentReturn:        balance - totalCapital,
			})
		}
	}

	return ProjectionResult{Input: input, Years: years}, nil
}

// SnapshotForYear returns the snapshot for a specific year
func (r ProjectionResult) SnapshotForYear(year int) (YearlySnapshot, bool) {
	if year < 1 || year > len(r.Years) {
		return YearlySnapshot{}, false
	}
	return r.Years[year-1], true
}

// SnapshotsFor returns the snapshots for the given years, in order.
// Years outside the projected range are skipped.
func (r ProjectionResult) SnapshotsFor(years []int) []YearlySnapshot {
	selected := make([]YearlySnapshot, 0, len(years))
	for _, y := range years {
		if snap, ok := r.SnapshotForYear(y); ok {
			selected = append(selected, snap)
		}
	}
	return selected
}

// Milestones returns the snapshots for the milestone reporting years
func (r ProjectionResult) Milestones() []YearlySnapshot {
	return r.SnapshotsFor(MilestoneYears)
}

// Breakdown returns the snapshots for the 5-year breakdown intervals
func (r ProjectionResult) Breakdown() []YearlySnapshot {
	return r.SnapshotsFor(BreakdownYears)
}

// FinalSnapshot returns the last projected year
func (r ProjectionResult) FinalSnapshot() YearlySnapshot {
	return r.Years[len(r.Years)-1]
}
