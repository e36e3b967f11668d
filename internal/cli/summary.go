package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nadzri/plotplan/internal/model"
)

var (
	colorTeal   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleMetric  = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// Summary renders a generated plan as styled terminal text: site and grid
// facts, a table of placed rooms in plot-space meters, coverage, and any
// rooms that could not be placed.
func Summary(plan model.Plan) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Floor Layout"))
	b.WriteString("\n")

	site := fmt.Sprintf("Plot %.1f x %.1f m | buildable %.1f x %.1f m | grid %.0f cm",
		plan.Site.PlotWidth, plan.Site.PlotDepth,
		plan.Grid.BuildWidthM(), plan.Grid.BuildDepthM(),
		plan.Grid.CellSize*100)
	b.WriteString(styleDim.Render(site))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-14s %9s %9s %9s %12s", "Room", "Width", "Depth", "Area", "Origin")
	b.WriteString(styleDim.Render(header))
	b.WriteString("\n")

	for _, room := range plan.Layout.Rooms {
		x, y, w, h := plan.WorldRect(room)
		line := fmt.Sprintf("  %-14s %7.2f m %7.2f m %6.1f m2 %5.1f, %4.1f",
			room.Name, w, h, w*h, x, y)
		b.WriteString(styleValue.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleMetric.Render(fmt.Sprintf("Coverage: %.1f%% (%.1f m2 built)",
		plan.Coverage(), plan.BuiltArea())))
	b.WriteString("\n")

	if len(plan.Warnings) > 0 {
		b.WriteString(styleWarning.Render(
			fmt.Sprintf("Could not place: %s", strings.Join(plan.Warnings, ", "))))
		b.WriteString("\n")
	}

	return b.String()
}
