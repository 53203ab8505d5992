package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleResult(t *testing.T) ProjectionResult {
	t.Helper()
	result, err := RunProjection(ProjectionInput{
		InitialInvestment:  50000,
		MonthlyInstallment: 1000,
		EscalationRate:     0.06,
		Profile:            *GetReturnProfileByID("balanced"),
	})
	if err != nil {
		t.Fatalf("RunProjection failed: %v", err)
	}
	return result
}

// =============================================================================
// Chart Rendering
// =============================================================================

func TestRenderMilestoneChart(t *testing.T) {
	result := sampleResult(t)

	for _, brand := range Brands {
		png, err := RenderMilestoneChart(result, brand)
		if err != nil {
			t.Fatalf("%s: RenderMilestoneChart failed: %v", brand.ID, err)
		}
		if !bytes.HasPrefix(png, []byte("\x89PNG")) {
			t.Errorf("%s: milestone chart output is not a PNG", brand.ID)
		}
	}
}

func TestRenderBreakdownChart(t *testing.T) {
	result := sampleResult(t)

	png, err := RenderBreakdownChart(result, DefaultBrand())
	if err != nil {
		t.Fatalf("RenderBreakdownChart failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("breakdown chart output is not a PNG")
	}
}

// =============================================================================
// HTML Report
// =============================================================================

func TestGenerateHTMLReport(t *testing.T) {
	result := sampleResult(t)
	brand := *GetBrandByID("mazi")
	path := filepath.Join(t.TempDir(), "report.html")

	if err := GenerateHTMLReport(result, brand, path); err != nil {
		t.Fatalf("GenerateHTMLReport failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	page := string(data)

	checks := []string{
		"<!DOCTYPE html>",
		brand.Name,
		"Balanced (10%)",
		"Year-by-Year Projection",
		"data:image/png;base64,",
		"Milestone Growth Projection",
	}
	for _, want := range checks {
		if !strings.Contains(page, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// All 30 years plus milestone highlighting
	if got := strings.Count(page, `class="highlight"`); got != len(MilestoneYears) {
		t.Errorf("expected %d highlighted rows, got %d", len(MilestoneYears), got)
	}
	final := result.FinalSnapshot()
	if !strings.Contains(page, brand.FormatMoney(final.TotalAmount)) {
		t.Error("report missing final total amount")
	}
}

// =============================================================================
// PDF Report
// =============================================================================

func TestGeneratePDFReport(t *testing.T) {
	result := sampleResult(t)

	for _, brand := range Brands {
		pdfBytes, err := GeneratePDFReport(result, brand)
		if err != nil {
			t.Fatalf("%s: GeneratePDFReport failed: %v", brand.ID, err)
		}
		if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
			t.Errorf("%s: output is not a PDF", brand.ID)
		}
		if len(pdfBytes) < 2000 {
			t.Errorf("%s: PDF suspiciously small: %d bytes", brand.ID, len(pdfBytes))
		}
	}
}

// =============================================================================
// Milestone Helper
// =============================================================================

func TestIsMilestoneYear(t *testing.T) {
	for _, y := range MilestoneYears {
		if !isMilestoneYear(y) {
			t.Errorf("year %d should be a milestone", y)
		}
	}
	for _, y := range []int{2, 4, 15, 25, 29} {
		if isMilestoneYear(y) {
			t.Errorf("year %d should not be a milestone", y)
		}
	}
}
