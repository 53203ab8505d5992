package main

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// Default Configuration
// =============================================================================

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("LoadDefaultConfig failed: %v", err)
	}

	if config.Defaults.EscalationRate != 0.06 {
		t.Errorf("default escalation: expected 0.06, got %v", config.Defaults.EscalationRate)
	}
	if config.Defaults.ReturnProfile != "cash" {
		t.Errorf("default return profile: expected cash, got %q", config.Defaults.ReturnProfile)
	}
	if config.Display.Brand != "default" {
		t.Errorf("default brand: expected default, got %q", config.Display.Brand)
	}
	if config.Server.Addr == "" {
		t.Error("default server addr should not be empty")
	}
}

func TestConfig_Resolvers(t *testing.T) {
	config := &Config{
		Defaults: DefaultsConfig{
			InitialInvestment:  50000,
			MonthlyInstallment: 1000,
			EscalationRate:     0.06,
			ReturnProfile:      "equity",
		},
		Display: DisplayConfig{Brand: "mazi"},
	}

	if got := config.GetBrand().ID; got != "mazi" {
		t.Errorf("GetBrand: expected mazi, got %q", got)
	}
	if got := config.GetReturnProfile().ID; got != "equity" {
		t.Errorf("GetReturnProfile: expected equity, got %q", got)
	}

	input := config.ProjectionInput()
	if input.InitialInvestment != 50000 || input.MonthlyInstallment != 1000 {
		t.Errorf("ProjectionInput did not carry defaults: %+v", input)
	}
	if input.Profile.ID != "equity" {
		t.Errorf("ProjectionInput profile: expected equity, got %q", input.Profile.ID)
	}
}

func TestConfig_FallbackResolution(t *testing.T) {
	// Unknown IDs and a nil config fall back to the defaults rather than
	// failing
	config := &Config{
		Defaults: DefaultsConfig{ReturnProfile: "crypto"},
		Display:  DisplayConfig{Brand: "acme"},
	}

	if got := config.GetBrand().ID; got != "default" {
		t.Errorf("unknown brand should fall back to default, got %q", got)
	}
	if got := config.GetReturnProfile().ID; got != "cash" {
		t.Errorf("unknown profile should fall back to cash, got %q", got)
	}

	var nilConfig *Config
	if got := nilConfig.GetBrand().ID; got != "default" {
		t.Errorf("nil config brand: expected default, got %q", got)
	}
	if got := nilConfig.GetReturnProfile().ID; got != "cash" {
		t.Errorf("nil config profile: expected cash, got %q", got)
	}
}

// =============================================================================
// Percentage Preprocessing
// =============================================================================

func TestPreprocessPercentages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"escalation_rate: 6%", "escalation_rate: 0.06"},
		{"escalation_rate: 12.5%", "escalation_rate: 0.125"},
		{"escalation_rate: 0%", "escalation_rate: 0"},
		{"escalation_rate: 0.06", "escalation_rate: 0.06"},
		{"brand: default", "brand: default"},
	}

	for _, tc := range tests {
		got := preprocessPercentages(tc.input)
		if got != tc.expected {
			t.Errorf("preprocessPercentages(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestLoadConfig_PercentFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `defaults:
  initial_investment: 100000
  monthly_installment: 2500
  escalation_rate: 8%
  return_profile: balanced
display:
  brand: mazi
server:
  addr: localhost:9000
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Defaults.EscalationRate != 0.08 {
		t.Errorf("escalation: expected 0.08, got %v", config.Defaults.EscalationRate)
	}
	if config.Defaults.InitialInvestment != 100000 {
		t.Errorf("initial: expected 100000, got %v", config.Defaults.InitialInvestment)
	}
	if config.Display.Brand != "mazi" {
		t.Errorf("brand: expected mazi, got %q", config.Display.Brand)
	}
	if config.Server.Addr != "localhost:9000" {
		t.Errorf("addr: expected localhost:9000, got %q", config.Server.Addr)
	}
}

// =============================================================================
// Save / Load Round Trip
// =============================================================================

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	original := &Config{
		Defaults: DefaultsConfig{
			InitialInvestment:  75000,
			MonthlyInstallment: 1250,
			EscalationRate:     0.07,
			ReturnProfile:      "equity",
		},
		Display: DisplayConfig{Brand: "default"},
		Server:  ServerConfig{Addr: "localhost:0"},
	}

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round trip mismatch:\n  saved:  %+v\n  loaded: %+v", original, loaded)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
