package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	milestoneChartWidth  = 720
	milestoneChartHeight = 320
	breakdownChartWidth  = 720
	breakdownChartHeight = 480
)

// brandColor converts a CSS hex color (e.g. "#2ca02c") to a drawing color
func brandColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// amountFormatter returns a y-axis tick formatter using abbreviated
// currency values
func amountFormatter(brand Brand) chart.ValueFormatter {
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return brand.FormatMoneyShort(f)
		}
		return ""
	}
}

// RenderMilestoneChart renders the milestone year-end totals as a bar
// chart PNG
func RenderMilestoneChart(result ProjectionResult, brand Brand) ([]byte, error) {
	milestones := result.Milestones()
	if len(milestones) == 0 {
		return nil, fmt.Errorf("no milestone snapshots to chart")
	}

	barColor := brandColor(brand.MilestoneBarColor)

	maxTotal := 0.0
	bars := make([]chart.Value, 0, len(milestones))
	for _, snap := range milestones {
		if snap.TotalAmount > maxTotal {
			maxTotal = snap.TotalAmount
		}
		bars = append(bars, chart.Value{
			Label: strconv.Itoa(snap.Year),
			Value: snap.TotalAmount,
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: barColor,
			},
		})
	}

	graph := chart.BarChart{
		Title: "Milestone Growth Projection",
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Width:    milestoneChartWidth,
		Height:   milestoneChartHeight,
		BarWidth: 60,
		YAxis: chart.YAxis{
			ValueFormatter: amountFormatter(brand),
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxTotal * 1.05,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderBreakdownChart renders the 5-year capital vs return breakdown as
// a stacked bar chart PNG. Capital is stacked below investment return,
// matching the table ordering.
func RenderBreakdownChart(result ProjectionResult, brand Brand) ([]byte, error) {
	intervals := result.Breakdown()
	if len(intervals) == 0 {
		return nil, fmt.Errorf("no breakdown snapshots to chart")
	}

	capitalColor := brandColor(brand.CapitalBarColor)
	returnColor := brandColor(brand.ReturnBarColor)

	maxTotal := 0.0
	for _, snap := range intervals {
		if snap.TotalAmount > maxTotal {
			maxTotal = snap.TotalAmount
		}
	}
	if maxTotal <= 0 {
		return nil, fmt.Errorf("nothing to chart: all totals are zero")
	}

	// StackedBarChart normalizes every bar to the full canvas height, so
	// each bar carries a transparent filler segment up to the series
	// maximum to keep segment heights proportional across years.
	stacked := make([]chart.StackedBar, 0, len(intervals))
	for _, snap := range intervals {
		capital := snap.TotalCapitalContributed / maxTotal
		ret := snap.InvestmentReturn / maxTotal
		filler := 1 - capital - ret
		if filler < 0 {
			filler = 0
		}

		values := []chart.Value{
			{
				Label: "Capital",
				Value: capital,
				Style: chart.Style{FillColor: capitalColor, StrokeColor: capitalColor},
			},
			{
				Label: "Return",
				Value: ret,
				Style: chart.Style{FillColor: returnColor, StrokeColor: returnColor},
			},
		}
		if filler > 0 {
			values = append(values, chart.Value{
				Value: filler,
				Style: chart.Style{
					FillColor:   drawing.ColorTransparent,
					StrokeColor: drawing.ColorTransparent,
				},
			})
		}

		stacked = append(stacked, chart.StackedBar{
			Name:   strconv.Itoa(snap.Year),
			Width:  70,
			Values: values,
		})
	}

	graph := chart.StackedBarChart{
		Title: "Capital vs. Investment Return",
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Width:      breakdownChartWidth,
		Height:     breakdownChartHeight,
		BarSpacing: 30,
		XAxis:      chart.Style{},
		YAxis:      chart.Style{Hidden: true},
		Bars:       stacked,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
