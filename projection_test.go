package main

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// Projection Validation Tests
//
// These tests validate the month-by-month compounding against standard
// annuity and compound interest formulas.
//
// Annuity-due with monthly compounding:
//   FV = PMT × ((1+i)^n - 1) / i × (1+i)
// Lump sum:
//   A = P × (1 + r)^n
// Where i = (1+r)^(1/12) - 1 is the geometric monthly rate.

const projectionTolerance = 0.01 // R0.01 tolerance

func assertAmountEquals(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > projectionTolerance {
		t.Errorf("%s: expected R%.2f, got R%.2f (diff: R%.2f)",
			description, expected, actual, actual-expected)
	}
}

func mustProject(t *testing.T, input ProjectionInput) ProjectionResult {
	t.Helper()
	result, err := RunProjection(input)
	if err != nil {
		t.Fatalf("RunProjection failed: %v", err)
	}
	return result
}

func cashProfile() ReturnProfile     { return *GetReturnProfileByID("cash") }
func balancedProfile() ReturnProfile { return *GetReturnProfileByID("balanced") }
func equityProfile() ReturnProfile   { return *GetReturnProfileByID("equity") }

// =============================================================================
// Monthly Rate Conversion
// =============================================================================

func TestMonthlyRate_GeometricConversion(t *testing.T) {
	tests := []struct {
		annual      float64
		expected    float64
		description string
	}{
		{0.06, 0.00486755057, "6% annual"},
		{0.10, 0.00797414043, "10% annual"},
		{0.13, 0.01023684436, "13% annual"},
		{0.00, 0.0, "0% annual"},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got := MonthlyRate(tc.annual)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("MonthlyRate(%.2f) = %.11f, want %.11f", tc.annual, got, tc.expected)
			}
		})
	}
}

func TestMonthlyRate_CompoundsToAnnual(t *testing.T) {
	// Twelve months at the monthly rate must reproduce the annual rate exactly
	for _, p := range ReturnProfiles {
		compounded := math.Pow(1+MonthlyRate(p.AnnualReturn), 12) - 1
		if math.Abs(compounded-p.AnnualReturn) > 1e-9 {
			t.Errorf("%s: 12 months at monthly rate gives %.6f, want %.6f",
				p.ID, compounded, p.AnnualReturn)
		}
	}
}

// =============================================================================
// Monthly Installment Growth (no escalation)
// =============================================================================

func TestProjection_MonthlyInstallmentOnly(t *testing.T) {
	// R1,000/month at 6%, no escalation, no lump sum.
	// Expected values computed with FV = 1000 × ((1+i)^n - 1)/i × (1+i)
	// where i = 1.06^(1/12) - 1.
	result := mustProject(t, ProjectionInput{
		MonthlyInstallment: 1000,
		Profile:            cashProfile(),
	})

	tests := []struct {
		year     int
		expected float64
	}{
		{1, 12386.53},
		{3, 39433.75},
		{5, 69824.01},
		{10, 163264.29},
		{20, 455645.77},
		{30, 979256.46},
	}

	for _, tc := range tests {
		snap, ok := result.SnapshotForYear(tc.year)
		if !ok {
			t.Fatalf("no snapshot for year %d", tc.year)
		}
		assertAmountEquals(t, tc.expected, snap.TotalAmount,
			fmt.Sprintf("R1k/month @ 6%%, year %d", tc.year))
		assertAmountEquals(t, float64(tc.year)*12000, snap.TotalCapitalContributed,
			fmt.Sprintf("capital contributed by year %d", tc.year))
	}
}

func TestProjection_LumpSumOnly(t *testing.T) {
	// With no installments the yearly balance must match P × (1+r)^n exactly,
	// since the geometric monthly rate compounds back to the annual rate.
	tests := []struct {
		initial     float64
		profile     ReturnProfile
		description string
	}{
		{100000, cashProfile(), "R100k @ 6%"},
		{100000, equityProfile(), "R100k @ 13%"},
		{50000, balancedProfile(), "R50k @ 10%"},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			result := mustProject(t, ProjectionInput{
				InitialInvestment: tc.initial,
				Profile:           tc.profile,
			})

			for _, year := range []int{1, 10, 30} {
				snap, _ := result.SnapshotForYear(year)
				expected := tc.initial * math.Pow(1+tc.profile.AnnualReturn, float64(year))
				assertAmountEquals(t, expected, snap.TotalAmount, tc.description)
				assertAmountEquals(t, tc.initial, snap.TotalCapitalContributed,
					"capital stays at lump sum")
			}
		})
	}
}

// =============================================================================
// Installment Escalation
// =============================================================================

func TestProjection_EscalationTiming(t *testing.T) {
	// The installment escalates at months 13, 25, 37, ... so the installment
	// recorded for year N is monthly × (1+e)^(N-1).
	result := mustProject(t, ProjectionInput{
		InitialInvestment:  50000,
		MonthlyInstallment: 1000,
		EscalationRate:     0.06,
		Profile:            balancedProfile(),
	})

	tests := []struct {
		year     int
		expected float64
	}{
		{1, 1000.00},    // no escalation in the first year
		{2, 1060.00},    // 1000 × 1.06
		{3, 1123.60},    // 1000 × 1.06^2
		{4, 1191.016},   // 1000 × 1.06^3
		{30, 5418.3879}, // 1000 × 1.06^29
	}

	for _, tc := range tests {
		snap, _ := result.SnapshotForYear(tc.year)
		assertAmountEquals(t, tc.expected, snap.MonthlyInstallment,
			"escalated installment")
	}
}

func TestProjection_EscalatedBalances(t *testing.T) {
	// R50k lump sum + R1,000/month escalating 6%/year at 10% return.
	result := mustProject(t, ProjectionInput{
		InitialInvestment:  50000,
		MonthlyInstallment: 1000,
		EscalationRate:     0.06,
		Profile:            balancedProfile(),
	})

	tests := []struct {
		year            int
		expectedTotal   float64
		expectedCapital float64
	}{
		{1, 67640.54, 62000.00},
		{3, 110786.82, 88203.20},
		{30, 4571695.06, 998698.23},
	}

	for _, tc := range tests {
		snap, _ := result.SnapshotForYear(tc.year)
		assertAmountEquals(t, tc.expectedTotal, snap.TotalAmount, "total amount")
		assertAmountEquals(t, tc.expectedCapital, snap.TotalCapitalContributed, "capital")
	}
}

// =============================================================================
// Validation and Selection
// =============================================================================

func TestProjection_NoContribution(t *testing.T) {
	_, err := RunProjection(ProjectionInput{Profile: cashProfile()})
	if !errors.Is(err, ErrNoContribution) {
		t.Errorf("expected ErrNoContribution for zero inputs, got %v", err)
	}
}

func TestProjection_Milestones(t *testing.T) {
	result := mustProject(t, ProjectionInput{
		MonthlyInstallment: 500,
		Profile:            cashProfile(),
	})

	milestones := result.Milestones()
	if len(milestones) != len(MilestoneYears) {
		t.Fatalf("expected %d milestones, got %d", len(MilestoneYears), len(milestones))
	}
	for i, snap := range milestones {
		if snap.Year != MilestoneYears[i] {
			t.Errorf("milestone %d: expected year %d, got %d", i, MilestoneYears[i], snap.Year)
		}
	}
}

func TestProjection_Breakdown(t *testing.T) {
	result := mustProject(t, ProjectionInput{
		MonthlyInstallment: 500,
		Profile:            equityProfile(),
	})

	breakdown := result.Breakdown()
	if len(breakdown) != len(BreakdownYears) {
		t.Fatalf("expected %d breakdown intervals, got %d", len(BreakdownYears), len(breakdown))
	}
	for i, snap := range breakdown {
		if snap.Year != BreakdownYears[i] {
			t.Errorf("interval %d: expected year %d, got %d", i, BreakdownYears[i], snap.Year)
		}
	}
}

func TestProjection_SnapshotForYearBounds(t *testing.T) {
	result := mustProject(t, ProjectionInput{
		MonthlyInstallment: 500,
		Profile:            cashProfile(),
	})

	if _, ok := result.SnapshotForYear(0); ok {
		t.Error("year 0 should not have a snapshot")
	}
	if _, ok := result.SnapshotForYear(31); ok {
		t.Error("year 31 should not have a snapshot")
	}
	if snap, ok := result.SnapshotForYear(30); !ok || snap.Year != 30 {
		t.Error("year 30 snapshot missing or mislabeled")
	}
}
