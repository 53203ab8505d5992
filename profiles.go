package main

import "fmt"

// ReturnProfile represents a fixed annual growth-rate assumption
type ReturnProfile struct {
	ID           string  // Unique identifier (e.g., "balanced")
	Name         string  // Display name (e.g., "Balanced")
	AnnualReturn float64 // Assumed annual return as decimal (0.10 = 10%)
	Volatility   string  // "low", "medium", "high"
	Description  string  // Brief description of the underlying allocation
}

// Label returns the display label with the rate, e.g. "Balanced (10%)"
func (p ReturnProfile) Label() string {
	return fmt.Sprintf("%s (%.0f%%)", p.Name, p.AnnualReturn*100)
}

// ReturnProfiles contains the available return profiles.
// Rates are nominal long-term assumptions, not guarantees.
var ReturnProfiles = []ReturnProfile{
	{
		ID:           "cash",
		Name:         "Cash",
		AnnualReturn: 0.06,
		Volatility:   "low",
		Description:  "Money market and short-term deposits",
	},
	{
		ID:           "balanced",
		Name:         "Balanced",
		AnnualReturn: 0.10,
		Volatility:   "medium",
		Description:  "Mixed equity and fixed income allocation",
	},
	{
		ID:           "equity",
		Name:         "Equity",
		AnnualReturn: 0.13,
		Volatility:   "high",
		Description:  "Growth-oriented equity allocation",
	},
}

// GetReturnProfileByID returns a return profile by its ID, or nil if not found
func GetReturnProfileByID(id string) *ReturnProfile {
	for i := range ReturnProfiles {
		if ReturnProfiles[i].ID == id {
			return &ReturnProfiles[i]
		}
	}
	return nil
}

// DefaultReturnProfile returns the profile used when none is selected
func DefaultReturnProfile() ReturnProfile {
	return ReturnProfiles[0]
}
