package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/srmorales/npi-sourcing/pkg/application/dto"
)

// Timeline renders the session as an SVG chart: one row per quote, the bar
// spanning quote date to quoted delivery, with the project milestones drawn
// as vertical markers.
type Timeline struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	RowHeight    int
	StartTime    time.Time
	EndTime      time.Time
}

// timelineBar is one quote positioned on the chart.
type timelineBar struct {
	Label     string
	StartDate time.Time
	EndDate   time.Time
	X         int
	Width     int
	Color     string
}

// milestone markers drawn across the chart
var milestoneColors = map[string]string{
	"DF":    "#9467bd",
	"MCS":   "#1f77b4",
	"Pilot": "#ff7f0e",
	"SOP":   "#d62728",
}

// NewTimeline creates a timeline chart sized to the session's quotes and
// milestones.
func NewTimeline(report *dto.SimulationReport) *Timeline {
	rowHeight := 24
	height := len(report.Quotes)*rowHeight + 140

	startTime := report.DesignFreeze
	endTime := report.SOP
	for _, quote := range report.Quotes {
		if quote.QuoteDate.Before(startTime) {
			startTime = quote.QuoteDate
		}
		delivery := quote.QuoteDate.AddDate(0, 0, quote.LeadTimeDays)
		if delivery.After(endTime) {
			endTime = delivery
		}
	}

	totalDuration := endTime.Sub(startTime)
	padding := time.Duration(float64(totalDuration) * 0.05)
	startTime = startTime.Add(-padding)
	endTime = endTime.Add(padding)

	return &Timeline{
		Width:        1200,
		Height:       height,
		MarginLeft:   220,
		MarginTop:    60,
		MarginRight:  60,
		MarginBottom: 60,
		RowHeight:    rowHeight,
		StartTime:    startTime,
		EndTime:      endTime,
	}
}

// GenerateSVG creates an SVG representation of the session timeline
func (tl *Timeline) GenerateSVG(report *dto.SimulationReport) string {
	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, tl.Width, tl.Height))
	svg.WriteString(`<defs>`)
	svg.WriteString(`<style>`)
	svg.WriteString(`.row-label { font-family: Arial, sans-serif; font-size: 12px; fill: #333; }`)
	svg.WriteString(`.time-label { font-family: Arial, sans-serif; font-size: 10px; fill: #666; }`)
	svg.WriteString(`.title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; fill: #333; }`)
	svg.WriteString(`.grid-line { stroke: #e0e0e0; stroke-width: 1; }`)
	svg.WriteString(`.milestone-line { stroke-width: 2; stroke-dasharray: 4 3; }`)
	svg.WriteString(`.milestone-label { font-family: Arial, sans-serif; font-size: 11px; font-weight: bold; }`)
	svg.WriteString(`.quote-bar { stroke: #333; stroke-width: 1; }`)
	svg.WriteString(`</style>`)
	svg.WriteString(`</defs>`)

	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, tl.Width, tl.Height))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="30" class="title">%s - Quoted Lead Times vs Milestones</text>`,
		tl.MarginLeft, report.ProjectName))

	bars := tl.createBars(report)
	tl.drawTimeAxis(&svg, len(bars))
	tl.drawMilestones(&svg, report, len(bars))
	tl.drawBars(&svg, bars)

	svg.WriteString(`</svg>`)
	return svg.String()
}

// actionColors distinguish bars by the evaluation outcome of the pair.
var actionColors = map[string]string{
	"Implement": "#2ca02c",
	"Wait":      "#bcbd22",
}

func (tl *Timeline) createBars(report *dto.SimulationReport) []timelineBar {
	actions := make(map[string]string, len(report.Evaluations))
	for _, eval := range report.Evaluations {
		actions[eval.SupplierID+"/"+eval.ECNID] = eval.Action
	}

	chartWidth := tl.Width - tl.MarginLeft - tl.MarginRight
	totalDuration := tl.EndTime.Sub(tl.StartTime)

	var bars []timelineBar
	for _, quote := range report.Quotes {
		delivery := quote.QuoteDate.AddDate(0, 0, quote.LeadTimeDays)
		startOffset := quote.QuoteDate.Sub(tl.StartTime)
		duration := delivery.Sub(quote.QuoteDate)

		x := tl.MarginLeft + int(float64(startOffset)/float64(totalDuration)*float64(chartWidth))
		width := int(float64(duration) / float64(totalDuration) * float64(chartWidth))
		if width < 2 {
			width = 2
		}

		color := actionColors[actions[quote.SupplierID+"/"+quote.ECNID]]
		if color == "" {
			color = "#7f7f7f"
		}

		bars = append(bars, timelineBar{
			Label:     fmt.Sprintf("%s / %s", quote.SupplierID, quote.ECNID),
			StartDate: quote.QuoteDate,
			EndDate:   delivery,
			X:         x,
			Width:     width,
			Color:     color,
		})
	}
	return bars
}

func (tl *Timeline) drawTimeAxis(svg *strings.Builder, rows int) {
	chartWidth := tl.Width - tl.MarginLeft - tl.MarginRight
	chartHeight := rows * tl.RowHeight
	totalDuration := tl.EndTime.Sub(tl.StartTime)

	days := int(totalDuration.Hours() / 24)
	interval := 7 * 24 * time.Hour
	labelFormat := "Jan 2"
	if days > 180 {
		interval = 30 * 24 * time.Hour
		labelFormat = "Jan 2006"
	}

	for t := tl.StartTime.Truncate(interval); t.Before(tl.EndTime); t = t.Add(interval) {
		if t.Before(tl.StartTime) {
			continue
		}
		offset := t.Sub(tl.StartTime)
		x := tl.MarginLeft + int(float64(offset)/float64(totalDuration)*float64(chartWidth))
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			x, tl.MarginTop, x, tl.MarginTop+chartHeight))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="time-label" text-anchor="middle">%s</text>`,
			x, tl.MarginTop+chartHeight+20, t.Format(labelFormat)))
	}
}

func (tl *Timeline) drawMilestones(svg *strings.Builder, report *dto.SimulationReport, rows int) {
	chartWidth := tl.Width - tl.MarginLeft - tl.MarginRight
	chartHeight := rows * tl.RowHeight
	totalDuration := tl.EndTime.Sub(tl.StartTime)

	for _, milestone := range []struct {
		name string
		date time.Time
	}{
		{"DF", report.DesignFreeze},
		{"MCS", report.MCS},
		{"Pilot", report.Pilot},
		{"SOP", report.SOP},
	} {
		offset := milestone.date.Sub(tl.StartTime)
		x := tl.MarginLeft + int(float64(offset)/float64(totalDuration)*float64(chartWidth))
		color := milestoneColors[milestone.name]
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="milestone-line" stroke="%s"/>`,
			x, tl.MarginTop-10, x, tl.MarginTop+chartHeight, color))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="milestone-label" fill="%s" text-anchor="middle">%s</text>`,
			x, tl.MarginTop-16, color, milestone.name))
	}
}

func (tl *Timeline) drawBars(svg *strings.Builder, bars []timelineBar) {
	for i, bar := range bars {
		y := tl.MarginTop + i*tl.RowHeight
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="row-label" text-anchor="end">%s</text>`,
			tl.MarginLeft-10, y+tl.RowHeight/2+4, bar.Label))
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" class="quote-bar" rx="2"/>`,
			bar.X, y+4, bar.Width, tl.RowHeight-8, bar.Color))
	}
}
