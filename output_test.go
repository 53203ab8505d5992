package main

import (
	"strings"
	"testing"
)

// =============================================================================
// Money Formatting
// =============================================================================

func TestFormatMoney(t *testing.T) {
	brand := DefaultBrand()

	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "R 0.00"},
		{999.5, "R 999.50"},
		{1000, "R 1,000.00"},
		{12386.53, "R 12,386.53"},
		{1234567.89, "R 1,234,567.89"},
		{-5000, "-R 5,000.00"},
	}

	for _, tc := range tests {
		if got := brand.FormatMoney(tc.amount); got != tc.expected {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.amount, got, tc.expected)
		}
	}
}

func TestFormatMoneyShort(t *testing.T) {
	brand := DefaultBrand()

	tests := []struct {
		amount   float64
		expected string
	}{
		{500, "R 500"},
		{250000, "R 250k"},
		{1200000, "R 1.20M"},
		{4571695.06, "R 4.57M"},
	}

	for _, tc := range tests {
		if got := brand.FormatMoneyShort(tc.amount); got != tc.expected {
			t.Errorf("FormatMoneyShort(%v) = %q, want %q", tc.amount, got, tc.expected)
		}
	}
}

// =============================================================================
// CSV Export
// =============================================================================

func TestWriteProjectionCSV(t *testing.T) {
	result := sampleResult(t)

	var buf strings.Builder
	if err := WriteProjectionCSV(&buf, result); err != nil {
		t.Fatalf("WriteProjectionCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != ProjectionYears+1 {
		t.Fatalf("expected %d lines (header + years), got %d", ProjectionYears+1, len(lines))
	}

	header := "Year,Total Amount,Monthly Installment,Total Capital Contributed,Investment Return"
	if strings.TrimSpace(lines[0]) != header {
		t.Errorf("unexpected header: %q", lines[0])
	}

	firstRow := strings.Split(lines[1], ",")
	if len(firstRow) != 5 {
		t.Fatalf("expected 5 columns, got %d", len(firstRow))
	}
	if firstRow[0] != "1" {
		t.Errorf("first data row should be year 1, got %q", firstRow[0])
	}
}

// =============================================================================
// Command Line Value Parsing
// =============================================================================

func TestParseMoneyValue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"100000", 100000},
		{"100k", 100000},
		{"1.5m", 1500000},
		{"R 50,000", 50000},
		{"2500", 2500},
		{"garbage", 999},
		{"-100", 999},
	}

	for _, tc := range tests {
		if got := parseMoneyValue(tc.input, 999); got != tc.expected {
			t.Errorf("parseMoneyValue(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestParsePercentValue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"6%", 0.06},
		{"0.06", 0.06},
		{"6", 0.06},
		{"12.5%", 0.125},
		{"1", 0.01},   // bare values of 1 or more read as percentages
		{"1.5", 0.015},
		{"0.5", 0.5},
		{"0", 0},
		{"garbage", 0.99},
		{"-5%", 0.99},
	}

	for _, tc := range tests {
		if got := parsePercentValue(tc.input, 0.99); got != tc.expected {
			t.Errorf("parsePercentValue(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}
