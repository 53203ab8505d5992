package main

// Brand holds the cosmetic identity of the calculator: titles, palette,
// fonts and chart colors. The calculation logic is identical for every
// brand; only the presentation differs.
type Brand struct {
	ID          string // Unique identifier (e.g., "mazi")
	Name        string // Product name shown in the page header
	WindowTitle string // Browser/webview window title
	Tagline     string // Subtitle under the header

	CurrencySymbol string // Prefix for money values (e.g., "R")

	// Fonts
	FontImport string // Optional @import line for a web font
	FontFamily string // CSS font-family stack

	// Page palette (CSS hex values)
	Primary        string // Headings, buttons
	PrimaryDark    string // Button hover, gradients
	PageBackground string
	CardBackground string
	Text           string
	TextMuted      string
	Border         string

	// Chart colors (CSS hex values)
	MilestoneBarColor string // Bars in the milestone growth chart
	CapitalBarColor   string // Capital segment in the stacked breakdown
	ReturnBarColor    string // Return segment in the stacked breakdown

	// LogoSVG is a data URI used as favicon and header mark
	LogoSVG string
}

// Brands contains the available brand presets
var Brands = []Brand{
	{
		ID:             "default",
		Name:           "Investment Growth Calculator",
		WindowTitle:    "Investment Growth Calculator",
		Tagline:        "Visualizing compound growth and capital contribution breakdowns.",
		CurrencySymbol: "R",
		FontFamily:     "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
		Primary:        "#2563eb",
		PrimaryDark:    "#1d4ed8",
		PageBackground: "#f1f5f9",
		CardBackground: "#ffffff",
		Text:           "#1e293b",
		TextMuted:      "#64748b",
		Border:         "#e2e8f0",

		MilestoneBarColor: "#2ca02c",
		CapitalBarColor:   "#1f77b4",
		ReturnBarColor:    "#d62728",

		LogoSVG: "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 64 64'%3E%3Crect x='6' y='38' width='12' height='20' rx='2' fill='%232ca02c'/%3E%3Crect x='26' y='26' width='12' height='32' rx='2' fill='%231f77b4'/%3E%3Crect x='46' y='10' width='12' height='48' rx='2' fill='%23d62728'/%3E%3Cpath d='M8 34 L30 20 L52 6' stroke='%231e293b' stroke-width='3' fill='none' stroke-linecap='round'/%3E%3C/svg%3E",
	},
	{
		ID:             "mazi",
		Name:           "Mazi Asset Management",
		WindowTitle:    "Mazi Asset Management | Investment Calculator",
		Tagline:        "Compound growth projections for disciplined investors.",
		CurrencySymbol: "R",
		FontImport:     "@import url('https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;600&display=swap');",
		FontFamily:     "'Poppins', sans-serif",
		Primary:        "#C5A059",
		PrimaryDark:    "#a8864a",
		PageBackground: "#16181f",
		CardBackground: "#1f222c",
		Text:           "#f5f2ea",
		TextMuted:      "#9a958a",
		Border:         "#33363f",

		MilestoneBarColor: "#C5A059",
		CapitalBarColor:   "#C5A059",
		ReturnBarColor:    "#5a6478",

		LogoSVG: "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 64 64'%3E%3Ccircle cx='32' cy='32' r='28' fill='none' stroke='%23C5A059' stroke-width='3'/%3E%3Cpath d='M16 44 V22 L32 38 L48 22 V44' stroke='%23C5A059' stroke-width='4' fill='none' stroke-linecap='round' stroke-linejoin='round'/%3E%3C/svg%3E",
	},
}

// GetBrandByID returns a brand preset by its ID, or nil if not found
func GetBrandByID(id string) *Brand {
	for i := range Brands {
		if Brands[i].ID == id {
			return &Brands[i]
		}
	}
	return nil
}

// DefaultBrand returns the unbranded preset
func DefaultBrand() Brand {
	return Brands[0]
}
