package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Investment Growth Calculator

Projects the growth of an initial lump sum plus an escalating monthly
installment over a 30-year horizon, compounded monthly at the rate of the
selected return profile. Shows milestone year totals (1/3/5/10/20/30) and
a 5-year capital-vs-return breakdown.

MODES:
  GUI MODE (default)
    Opens the calculator in an embedded browser window.

  WEB SERVER MODE (-web flag)
    Starts the web server and opens the calculator in your default browser.

  CONSOLE MODE (-console flag, or any output flag)
    Prints the milestone table and breakdown to the terminal. Prompts
    interactively for any missing inputs.

RETURN PROFILES:
  cash      6%% annual return (money market and short-term deposits)
  balanced  10%% annual return (mixed equity and fixed income)
  equity    13%% annual return (growth-oriented equities)

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                                   Embedded browser window
  %s -web                              Web server mode (external browser)
  %s -web -addr :8080                  Web server on specific port
  %s -console                          Console mode (interactive prompts)
  %s -initial 100k -monthly 1000       Console projection with given inputs
  %s -monthly 1000 -escalation 6%% -profile equity
  %s -monthly 1000 -html               Generate and open an HTML report
  %s -monthly 1000 -pdf -csv           Generate PDF and CSV files
  %s -brand mazi                       Use the Mazi brand preset

Value formats:
  Money: plain numbers or k/m suffix (100000, 100k, 1.5m)
  Percentages: decimal or %% suffix (0.06 or 6%%)

Configuration:
  Edit config.yaml to change the pre-filled inputs, brand, and server
  address. Defaults are used when the file is missing.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	// Command line flags
	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	consoleMode := flag.Bool("console", false, "Use console interface instead of GUI (default is GUI)")
	webMode := flag.Bool("web", false, "Start web server mode (opens external browser)")
	uiMode := flag.Bool("ui", false, "Start embedded browser mode (webview window)")
	webAddr := flag.String("addr", "", "Web server address (for -web mode, use :0 for auto port)")
	generateHTML := flag.Bool("html", false, "Generate an HTML report and open it in the browser")
	generatePDF := flag.Bool("pdf", false, "Generate a PDF report")
	generateCSV := flag.Bool("csv", false, "Export the full yearly series as CSV")
	brandID := flag.String("brand", "", "Brand preset: default or mazi (overrides config)")
	initialFlag := flag.String("initial", "", "Initial investment (e.g., 100000 or 100k)")
	monthlyFlag := flag.String("monthly", "", "Starting monthly installment (e.g., 1000)")
	escalationFlag := flag.String("escalation", "", "Annual installment escalation (e.g., 6% or 0.06)")
	profileID := flag.String("profile", "", "Return profile: cash, balanced, or equity")
	flag.Parse()

	// Embedded browser mode
	if *uiMode {
		err := runEmbeddedUI(*configFile, *brandID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Embedded UI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Web server mode (external browser). Input flags pre-fill the served
	// UI via config.Defaults.
	if *webMode {
		config := resolveConfig(*configFile, *brandID, *initialFlag, *monthlyFlag, *escalationFlag, *profileID)
		addr := config.Server.Addr
		if *webAddr != "" {
			addr = *webAddr
		}
		if addr == "" {
			addr = "localhost:0"
		}
		server := NewWebServer(config, addr)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Determine if we should run in console mode:
	// - Explicit -console flag, OR
	// - Any output/input flags set (for automation/scripting)
	useConsole := *consoleMode || *generateHTML || *generatePDF || *generateCSV ||
		*initialFlag != "" || *monthlyFlag != "" || *escalationFlag != "" || *profileID != ""

	if useConsole {
		runConsoleMode(*configFile, *brandID, *initialFlag, *monthlyFlag, *escalationFlag, *profileID,
			*generateHTML, *generatePDF, *generateCSV)
		return
	}

	// Default: GUI mode
	err := runGUI(*configFile, *brandID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "GUI error: %v\n", err)
		// Fall back to console mode if GUI fails
		fmt.Println("Falling back to console mode...")
		runConsoleMode(*configFile, *brandID, *initialFlag, *monthlyFlag, *escalationFlag, *profileID,
			*generateHTML, *generatePDF, *generateCSV)
	}
}

// loadConfigOrDefault loads the config file, falling back to the embedded
// defaults when the file does not exist
func loadConfigOrDefault(configFile string) *Config {
	config, err := LoadConfig(configFile)
	if err == nil {
		return config
	}
	if !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config, err = LoadDefaultConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading default config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// resolveConfig loads the config file and applies the command line
// overrides on top of it. Every mode resolves its config through here so
// the -brand and input flags behave the same in GUI, web and console
// modes.
func resolveConfig(configFile, brandID, initialFlag, monthlyFlag, escalationFlag, profileID string) *Config {
	config := loadConfigOrDefault(configFile)
	applyBrandOverride(config, brandID)
	applyInputOverrides(config, initialFlag, monthlyFlag, escalationFlag, profileID)
	return config
}

// applyBrandOverride applies the -brand flag on top of the config
func applyBrandOverride(config *Config, brandID string) {
	if brandID == "" {
		return
	}
	if GetBrandByID(brandID) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown brand %q (available: default, mazi)\n", brandID)
		os.Exit(1)
	}
	config.Display.Brand = brandID
}

// applyInputOverrides applies the -initial/-monthly/-escalation/-profile
// flags to the configured defaults
func applyInputOverrides(config *Config, initialFlag, monthlyFlag, escalationFlag, profileID string) {
	if initialFlag != "" {
		config.Defaults.InitialInvestment = parseMoneyValue(initialFlag, config.Defaults.InitialInvestment)
	}
	if monthlyFlag != "" {
		config.Defaults.MonthlyInstallment = parseMoneyValue(monthlyFlag, config.Defaults.MonthlyInstallment)
	}
	if escalationFlag != "" {
		config.Defaults.EscalationRate = parsePercentValue(escalationFlag, config.Defaults.EscalationRate)
	}
	if profileID != "" {
		if GetReturnProfileByID(profileID) == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown return profile %q (available: cash, balanced, equity)\n", profileID)
			os.Exit(1)
		}
		config.Defaults.ReturnProfile = profileID
	}
}

// runConsoleMode runs the projection in console/terminal mode
func runConsoleMode(configFile, brandID, initialFlag, monthlyFlag, escalationFlag, profileID string,
	generateHTML, generatePDF, generateCSV bool) {

	config := resolveConfig(configFile, brandID, initialFlag, monthlyFlag, escalationFlag, profileID)
	brand := config.GetBrand()
	input := config.ProjectionInput()

	// Prompt for inputs when nothing was provided on the command line
	interactive := initialFlag == "" && monthlyFlag == "" && escalationFlag == "" && profileID == ""
	if interactive && input.InitialInvestment == 0 && input.MonthlyInstallment == 0 {
		input = promptForInputs(input, brand)
	}

	result, err := RunProjection(input)
	if errors.Is(err, ErrNoContribution) {
		PrintNoContributionWarning()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Projection error: %v\n", err)
		os.Exit(1)
	}

	PrintHeader(input, brand)
	PrintMilestoneTable(result, brand)
	PrintBreakdownTable(result, brand)

	timestamp := time.Now().Format("2006-01-02_1504")

	if generateHTML {
		filename := fmt.Sprintf("projection_%s.html", timestamp)
		if err := GenerateHTMLReport(result, brand, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating HTML report: %v\n", err)
		} else {
			fmt.Printf("Generated report %s\n", filename)
			openBrowser(filename)
		}
	}

	if generatePDF {
		filename := fmt.Sprintf("projection_%s.pdf", timestamp)
		pdfBytes, err := GeneratePDFReport(result, brand)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating PDF report: %v\n", err)
		} else if err := os.WriteFile(filename, pdfBytes, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF report: %v\n", err)
		} else {
			fmt.Printf("Generated report %s\n", filename)
		}
	}

	if generateCSV {
		filename := fmt.Sprintf("projection_%s.csv", timestamp)
		f, err := os.Create(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating CSV file: %v\n", err)
		} else {
			err = WriteProjectionCSV(f, result)
			f.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error writing CSV file: %v\n", err)
			} else {
				fmt.Printf("Exported %s\n", filename)
			}
		}
	}
}

// promptForInputs asks for the projection inputs interactively
func promptForInputs(input ProjectionInput, brand Brand) ProjectionInput {
	fmt.Println()
	fmt.Println("No investment amounts configured. Please enter your parameters")
	fmt.Println("(press Enter for defaults; money accepts '100k', percentages accept '6%').")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	input.InitialInvestment = promptMoney(reader, "  Initial investment", brand, input.InitialInvestment)
	input.MonthlyInstallment = promptMoney(reader, "  Starting monthly installment", brand, input.MonthlyInstallment)
	input.EscalationRate = promptPercent(reader, "  Annual installment escalation", input.EscalationRate)
	input.Profile = promptProfile(reader, input.Profile)

	fmt.Println()
	return input
}

// promptProfile asks the user to pick one of the return profiles
func promptProfile(reader *bufio.Reader, defaultProfile ReturnProfile) ReturnProfile {
	fmt.Println("  Return profiles:")
	for i, p := range ReturnProfiles {
		fmt.Printf("    %d) %-15s %s\n", i+1, p.Label(), p.Description)
	}
	fmt.Printf("  Select profile [%s]: ", defaultProfile.Name)

	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultProfile
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultProfile
	}

	if idx, err := strconv.Atoi(line); err == nil && idx >= 1 && idx <= len(ReturnProfiles) {
		return ReturnProfiles[idx-1]
	}
	if p := GetReturnProfileByID(strings.ToLower(line)); p != nil {
		return *p
	}
	return defaultProfile
}

func promptMoney(reader *bufio.Reader, prompt string, brand Brand, defaultVal float64) float64 {
	fmt.Printf("%s [%s]: ", prompt, brand.FormatMoneyShort(defaultVal))
	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultVal
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultVal
	}
	return parseMoneyValue(line, defaultVal)
}

func promptPercent(reader *bufio.Reader, prompt string, defaultVal float64) float64 {
	fmt.Printf("%s [%.1f%%]: ", prompt, defaultVal*100)
	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultVal
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultVal
	}
	return parsePercentValue(line, defaultVal)
}

// parseMoneyValue parses money input, handling k/m suffixes and an
// optional currency prefix
func parseMoneyValue(input string, defaultVal float64) float64 {
	input = strings.ToLower(strings.TrimSpace(input))

	multiplier := 1.0
	if strings.HasSuffix(input, "k") {
		multiplier = 1000
		input = strings.TrimSuffix(input, "k")
	} else if strings.HasSuffix(input, "m") {
		multiplier = 1000000
		input = strings.TrimSuffix(input, "m")
	}
	input = strings.TrimPrefix(input, "r")
	input = strings.ReplaceAll(input, ",", "")
	input = strings.TrimSpace(input)

	val, err := strconv.ParseFloat(input, 64)
	if err != nil || val < 0 {
		return defaultVal
	}
	return val * multiplier
}

// parsePercentValue parses percentage input, accepting "6%", "6" and
// "0.06". Bare values of 1 or more are read as percentages, values below
// 1 as decimals.
func parsePercentValue(input string, defaultVal float64) float64 {
	input = strings.TrimSpace(input)

	if strings.HasSuffix(input, "%") {
		input = strings.TrimSuffix(input, "%")
		val, err := strconv.ParseFloat(input, 64)
		if err != nil || val < 0 {
			return defaultVal
		}
		return val / 100
	}

	val, err := strconv.ParseFloat(input, 64)
	if err != nil || val < 0 {
		return defaultVal
	}
	// Values of 1 or more are percentages
	if val >= 1 {
		return val / 100
	}
	return val
}

// openBrowser opens a file or URL in the default browser
func openBrowser(target string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	err := cmd.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
