package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// WebServer holds the HTTP server configuration
type WebServer struct {
	config *Config
	addr   string
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, addr string) *WebServer {
	return &WebServer{
		config: config,
		addr:   addr,
	}
}

// APIProjectionRequest represents a request to run a projection
type APIProjectionRequest struct {
	InitialInvestment  float64 `json:"initial_investment"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	EscalationRate     float64 `json:"escalation_rate"` // Decimal, 0.06 = 6%
	ReturnProfile      string  `json:"return_profile"`  // Profile ID
}

// APIProjectionResponse represents the projection results
type APIProjectionResponse struct {
	Success      bool              `json:"success"`
	Error        string            `json:"error,omitempty"`
	ProfileLabel string            `json:"profile_label,omitempty"`
	Years        []APIYearSnapshot `json:"years,omitempty"`
	Milestones   []APIYearSnapshot `json:"milestones,omitempty"`
	Breakdown    []APIYearSnapshot `json:"breakdown,omitempty"`
}

// APIYearSnapshot is a yearly snapshot for API responses
type APIYearSnapshot struct {
	Year                    int     `json:"year"`
	TotalAmount             float64 `json:"total_amount"`
	MonthlyInstallment      float64 `json:"monthly_installment"`
	TotalCapitalContributed float64 `json:"total_capital_contributed"`
	InvestmentReturn        float64 `json:"investment_return"`
}

// APIConfigResponse bundles the config with the catalogue data the UI needs
type APIConfigResponse struct {
	Config   *Config         `json:"config"`
	Profiles []ReturnProfile `json:"profiles"`
	Brand    Brand           `json:"brand"`
}

func (ws *WebServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/project", ws.handleProject)
	mux.HandleFunc("/api/chart/milestones", ws.handleMilestoneChart)
	mux.HandleFunc("/api/chart/breakdown", ws.handleBreakdownChart)
	mux.HandleFunc("/api/export-csv", ws.handleExportCSV)
	mux.HandleFunc("/api/download-pdf", ws.handleDownloadPDF)

	return mux
}

// Start starts the web server and opens the browser
func (ws *WebServer) Start() error {
	// Listen on the address (use :0 for auto-assign)
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return err
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)

	// If listening on all interfaces, use localhost for the URL
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}

	log.Printf("Starting web server on %s", actualAddr)
	log.Printf("Opening %s in your browser...", url)

	go openBrowser(url)

	return http.Serve(listener, ws.routes())
}

// StartForEmbedded starts the server and returns the URL and a cleanup
// function. Unlike Start(), this does NOT open the browser and does NOT
// block. The caller is responsible for stopping the server via the
// cleanup function.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return "", nil, err
	}

	actualAddr := listener.Addr().String()
	url = fmt.Sprintf("http://%s", actualAddr)

	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}

	log.Printf("Starting embedded web server on %s", actualAddr)

	server := &http.Server{Handler: ws.routes()}

	go func() {
		if err := server.Serve(listener); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}

	return url, cleanup, nil
}

// handleIndex serves the main web UI with the brand applied
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, ws.renderIndexHTML())
}

// renderIndexHTML applies the brand preset and configured defaults to the
// embedded page template
func (ws *WebServer) renderIndexHTML() string {
	brand := ws.config.GetBrand()
	defaults := ws.config.Defaults

	var options strings.Builder
	for _, p := range ReturnProfiles {
		selected := ""
		if p.ID == ws.config.GetReturnProfile().ID {
			selected = " selected"
		}
		options.WriteString(fmt.Sprintf("<option value=\"%s\"%s>%s</option>", p.ID, selected, p.Label()))
	}

	replacer := strings.NewReplacer(
		"__WINDOW_TITLE__", brand.WindowTitle,
		"__BRAND_NAME__", brand.Name,
		"__TAGLINE__", brand.Tagline,
		"__LOGO__", brand.LogoSVG,
		"__CURRENCY__", brand.CurrencySymbol,
		"__FONT_IMPORT__", brand.FontImport,
		"__FONT_FAMILY__", brand.FontFamily,
		"__PRIMARY__", brand.Primary,
		"__PRIMARY_DARK__", brand.PrimaryDark,
		"__BG__", brand.PageBackground,
		"__CARD_BG__", brand.CardBackground,
		"__TEXT__", brand.Text,
		"__TEXT_MUTED__", brand.TextMuted,
		"__BORDER__", brand.Border,
		"__PROFILE_OPTIONS__", options.String(),
		"__DEFAULT_INITIAL__", strconv.FormatFloat(defaults.InitialInvestment, 'f', -1, 64),
		"__DEFAULT_MONTHLY__", strconv.FormatFloat(defaults.MonthlyInstallment, 'f', -1, 64),
		"__DEFAULT_ESCALATION__", strconv.FormatFloat(defaults.EscalationRate*100, 'f', -1, 64),
	)

	return replacer.Replace(webUIHTML)
}

// handleGetConfig returns the current configuration plus catalogue data
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	config := ws.config
	if config == nil {
		defaultConfig, err := LoadDefaultConfig()
		if err != nil {
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		config = defaultConfig
	}

	json.NewEncoder(w).Encode(APIConfigResponse{
		Config:   config,
		Profiles: ReturnProfiles,
		Brand:    config.GetBrand(),
	})
}

// handleProject runs a projection and returns the yearly series
func (ws *WebServer) handleProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APIProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}

	input, err := ws.buildInput(req)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	result, err := RunProjection(input)
	if err != nil {
		// Validation failure is a warning, not a transport error
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(APIProjectionResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APIProjectionResponse{
		Success:      true,
		ProfileLabel: input.Profile.Label(),
		Years:        toAPISnapshots(result.Years),
		Milestones:   toAPISnapshots(result.Milestones()),
		Breakdown:    toAPISnapshots(result.Breakdown()),
	})
}

// buildInput validates an API request and resolves the return profile
func (ws *WebServer) buildInput(req APIProjectionRequest) (ProjectionInput, error) {
	if req.InitialInvestment < 0 || req.MonthlyInstallment < 0 || req.EscalationRate < 0 {
		return ProjectionInput{}, fmt.Errorf("inputs must not be negative")
	}

	profile := GetReturnProfileByID(req.ReturnProfile)
	if profile == nil {
		return ProjectionInput{}, fmt.Errorf("unknown return profile: %q", req.ReturnProfile)
	}

	return ProjectionInput{
		InitialInvestment:  req.InitialInvestment,
		MonthlyInstallment: req.MonthlyInstallment,
		EscalationRate:     req.EscalationRate,
		Profile:            *profile,
	}, nil
}

// parseProjectionQuery builds a projection input from URL query
// parameters (used by the chart and export endpoints)
func (ws *WebServer) parseProjectionQuery(values url.Values) (ProjectionInput, error) {
	parse := func(key string) (float64, error) {
		s := values.Get(key)
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %q", key, s)
		}
		return v, nil
	}

	initial, err := parse("initial")
	if err != nil {
		return ProjectionInput{}, err
	}
	monthly, err := parse("monthly")
	if err != nil {
		return ProjectionInput{}, err
	}
	escalation, err := parse("escalation")
	if err != nil {
		return ProjectionInput{}, err
	}

	profileID := values.Get("profile")
	if profileID == "" {
		profileID = ws.config.GetReturnProfile().ID
	}

	return ws.buildInput(APIProjectionRequest{
		InitialInvestment:  initial,
		MonthlyInstallment: monthly,
		EscalationRate:     escalation,
		ReturnProfile:      profileID,
	})
}

// handleMilestoneChart renders the milestone bar chart as PNG
func (ws *WebServer) handleMilestoneChart(w http.ResponseWriter, r *http.Request) {
	ws.serveChart(w, r, RenderMilestoneChart)
}

// handleBreakdownChart renders the stacked breakdown chart as PNG
func (ws *WebServer) handleBreakdownChart(w http.ResponseWriter, r *http.Request) {
	ws.serveChart(w, r, RenderBreakdownChart)
}

func (ws *WebServer) serveChart(w http.ResponseWriter, r *http.Request, render func(ProjectionResult, Brand) ([]byte, error)) {
	input, err := ws.parseProjectionQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := RunProjection(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	png, err := render(result, ws.config.GetBrand())
	if err != nil {
		http.Error(w, "Failed to render chart: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

// handleExportCSV streams the full yearly series as a CSV download
func (ws *WebServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	input, err := ws.parseProjectionQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := RunProjection(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filename := fmt.Sprintf("investment-projection-%s.csv", time.Now().Format("2006-01-02-150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))

	if err := WriteProjectionCSV(w, result); err != nil {
		log.Printf("CSV export error: %v", err)
	}
}

// handleDownloadPDF generates and streams the PDF report
func (ws *WebServer) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	input, err := ws.parseProjectionQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := RunProjection(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdfBytes, err := GeneratePDFReport(result, ws.config.GetBrand())
	if err != nil {
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("investment-projection-%s.pdf", input.Profile.ID)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.Write(pdfBytes)
}

// toAPISnapshots converts snapshots to their API representation
func toAPISnapshots(snaps []YearlySnapshot) []APIYearSnapshot {
	out := make([]APIYearSnapshot, len(snaps))
	for i, s := range snaps {
		out[i] = APIYearSnapshot{
			Year:                    s.Year,
			TotalAmount:             s.TotalAmount,
			MonthlyInstallment:      s.MonthlyInstallment,
			TotalCapitalContributed: s.TotalCapitalContributed,
			InvestmentReturn:        s.InvestmentReturn,
		}
	}
	return out
}

// sendJSONError sends an error response as JSON
func sendJSONError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(APIProjectionResponse{
		Success: false,
		Error:   message,
	})
}
