package main

import (
	_ "embed"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// DefaultsConfig holds the pre-filled projection inputs
type DefaultsConfig struct {
	InitialInvestment  float64 `yaml:"initial_investment" json:"initial_investment"`   // Lump sum at month 0
	MonthlyInstallment float64 `yaml:"monthly_installment" json:"monthly_installment"` // Starting monthly contribution
	EscalationRate     float64 `yaml:"escalation_rate" json:"escalation_rate"`         // Annual installment increase (0.06 = 6%)
	ReturnProfile      string  `yaml:"return_profile" json:"return_profile"`           // Profile ID: cash, balanced, equity
}

// DisplayConfig holds presentation settings
type DisplayConfig struct {
	Brand string `yaml:"brand" json:"brand"` // Brand preset ID: default, mazi
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"` // Listen address, use :0 for auto port
}

// Config holds the complete configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`
	Display  DisplayConfig  `yaml:"display" json:"display"`
	Server   ServerConfig   `yaml:"server" json:"server"`
}

// GetBrand resolves the configured brand preset, falling back to the default
func (c *Config) GetBrand() Brand {
	if c != nil {
		if b := GetBrandByID(c.Display.Brand); b != nil {
			return *b
		}
	}
	return DefaultBrand()
}

// GetReturnProfile resolves the configured return profile, falling back to
// the default profile
func (c *Config) GetReturnProfile() ReturnProfile {
	if c != nil {
		if p := GetReturnProfileByID(c.Defaults.ReturnProfile); p != nil {
			return *p
		}
	}
	return DefaultReturnProfile()
}

// ProjectionInput builds a projection input from the configured defaults
func (c *Config) ProjectionInput() ProjectionInput {
	return ProjectionInput{
		InitialInvestment:  c.Defaults.InitialInvestment,
		MonthlyInstallment: c.Defaults.MonthlyInstallment,
		EscalationRate:     c.Defaults.EscalationRate,
		Profile:            c.GetReturnProfile(),
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	content := preprocessPercentages(string(data))

	var config Config
	err = yaml.Unmarshal([]byte(content), &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	// Add a header comment with instructions
	header := []byte(`# Investment Growth Calculator Configuration
#
# ═══════════════════════════════════════════════════════════════════════════════
# VALUE FORMATS
# ═══════════════════════════════════════════════════════════════════════════════
#   Percentages: 0.06 = 6% (decimal form; "6%" is also accepted)
#   Money: values are in Rand (e.g., 100000 = R100k)
#
#   defaults.return_profile: cash (6%), balanced (10%), equity (13%)
#   display.brand: default, mazi
#
# ═══════════════════════════════════════════════════════════════════════════════
# RUN COMMANDS
# ═══════════════════════════════════════════════════════════════════════════════
#   ./goInvestmentGrowth                      Embedded browser window
#   ./goInvestmentGrowth -web                 Web server mode (external browser)
#   ./goInvestmentGrowth -console             Console mode
#   ./goInvestmentGrowth -html                Generate an HTML report
#   ./goInvestmentGrowth -pdf                 Generate a PDF report
#   ./goInvestmentGrowth -help                Show all options

`)
	content := append(header, data...)
	return os.WriteFile(filename, content, 0644)
}

// LoadDefaultConfig loads the default configuration from the embedded
// default-config.yaml. It handles percentage format (e.g., "6%" -> 0.06).
func LoadDefaultConfig() (*Config, error) {
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	err := yaml.Unmarshal([]byte(content), &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// preprocessPercentages converts percentage values like "6%" to decimal "0.06"
func preprocessPercentages(content string) string {
	re := regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) >= 3 {
			num, err := strconv.ParseFloat(parts[2], 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num/100.0, 'f', -1, 64)
			}
		}
		return match
	})
}
