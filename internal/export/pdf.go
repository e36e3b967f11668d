// Package export renders a generated plan to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/nadzri/plotplan/internal/model"
)

// roomColor represents an RGB fill for a placed room.
type roomColor struct {
	R, G, B int
}

// roomColors mirrors the palette used by the plan canvas widget.
var roomColors = []roomColor{
	{R: 244, G: 162, B: 97},  // sand
	{R: 189, G: 224, B: 254}, // pale blue
	{R: 199, G: 201, B: 204}, // concrete
	{R: 230, G: 238, B: 246}, // mist
	{R: 167, G: 201, B: 87},  // leaf
	{R: 231, G: 200, B: 169}, // oak
	{R: 222, G: 170, B: 136}, // clay
	{R: 155, G: 34, B: 38},   // brick
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the 2D floor plan to a single-page PDF: plot outline,
// dashed buildable rectangle, colored room rectangles with name, area, and
// dimension labels, and a coverage summary.
func ExportPDF(path string, plan model.Plan) error {
	if len(plan.Layout.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Floor Plan — %.1f x %.1f m plot", plan.Site.PlotWidth, plan.Site.PlotDepth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Rooms: %d | Built area: %.1f m2 | Coverage: %.1f%% | Grid: %.0f cm cells",
		len(plan.Layout.Rooms), plan.BuiltArea(), plan.Coverage(), plan.Grid.CellSize*100)
	if len(plan.Warnings) > 0 {
		stats += fmt.Sprintf(" | Unplaced: %d", len(plan.Warnings))
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the plot to the drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth/plan.Site.PlotWidth, drawHeight/plan.Site.PlotDepth)

	planW := plan.Site.PlotWidth * scale
	planH := plan.Site.PlotDepth * scale
	offsetX := marginLeft + (drawWidth-planW)/2
	offsetY := drawAreaTop

	// Plot outline
	pdf.SetFillColor(250, 250, 248)
	pdf.SetDrawColor(34, 34, 34)
	pdf.SetLineWidth(0.6)
	pdf.Rect(offsetX, offsetY, planW, planH, "FD")

	// Buildable rectangle, dashed
	bx, by := plan.BuildOrigin()
	pdf.SetDrawColor(102, 102, 102)
	pdf.SetLineWidth(0.3)
	pdf.SetDashPattern([]float64{2, 1.5}, 0)
	pdf.Rect(offsetX+bx*scale, offsetY+by*scale,
		plan.Grid.BuildWidthM()*scale, plan.Grid.BuildDepthM()*scale, "D")
	pdf.SetDashPattern([]float64{}, 0)

	// Wall stroke width in page units, floored so thin walls stay visible
	wallStroke := plan.Site.WallThickness * scale
	if wallStroke < 0.4 {
		wallStroke = 0.4
	}

	for i, room := range plan.Layout.Rooms {
		col := roomColors[i%len(roomColors)]
		x, y, w, h := plan.WorldRect(room)
		rx := offsetX + x*scale
		ry := offsetY + y*scale
		rw := w * scale
		rh := h * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(51, 51, 51)
		pdf.SetLineWidth(wallStroke)
		pdf.Rect(rx, ry, rw, rh, "FD")

		drawDoorMarker(pdf, rx+rw/2, ry, math.Min(0.9, w*0.3)*scale)

		if rw > 15 && rh > 10 {
			pdf.SetFont("Helvetica", "B", labelFontSize(rw, rh))
			pdf.SetTextColor(20, 20, 20)
			nameW := pdf.GetStringWidth(room.Name)
			if nameW < rw-2 {
				pdf.SetXY(rx+(rw-nameW)/2, ry+rh/2-5)
				pdf.CellFormat(nameW, 4, room.Name, "", 0, "C", false, 0, "")
			}

			pdf.SetFont("Helvetica", "", labelFontSize(rw, rh)-1)
			dims := fmt.Sprintf("%.1f m2  %.2f x %.2f m", w*h, w, h)
			dimsW := pdf.GetStringWidth(dims)
			if dimsW < rw-2 {
				pdf.SetXY(rx+(rw-dimsW)/2, ry+rh/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, plan, scale, offsetX, offsetY, planW, planH)

	if len(plan.Warnings) > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(180, 60, 0)
		pdf.SetXY(marginLeft, pageHeight-marginBottom)
		msg := "Could not place: "
		for i, name := range plan.Warnings {
			if i > 0 {
				msg += ", "
			}
			msg += name
		}
		pdf.CellFormat(drawWidth, 5, msg, "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	return pdf.OutputFileAndClose(path)
}

// drawDoorMarker draws a thick short segment on a room's front wall.
func drawDoorMarker(pdf *fpdf.Fpdf, cx, y, w float64) {
	pdf.SetDrawColor(59, 59, 59)
	pdf.SetLineWidth(1.2)
	pdf.Line(cx-w/2, y, cx+w/2, y)
}

// drawDimensionAnnotations adds plot width and depth labels outside the outline.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, plan model.Plan, scale, offsetX, offsetY, planW, planH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.1f m", plan.Site.PlotWidth)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(planW-wLabelW)/2, offsetY+planH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	depthLabel := fmt.Sprintf("%.1f m", plan.Site.PlotDepth)
	pdf.SetXY(offsetX+planW+1, offsetY+planH/2-2)
	pdf.CellFormat(pdf.GetStringWidth(depthLabel), 4, depthLabel, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize picks a font size that fits the room rectangle.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w, h) / 4
	if size > 9 {
		size = 9
	}
	if size < 5 {
		size = 5
	}
	return size
}
