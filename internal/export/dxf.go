package export

import (
	"fmt"

	"github.com/nadzri/plotplan/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// ExportDXF writes the floor plan as a DXF drawing for CAD tools. Geometry
// is split across layers: PLOT (site boundary), SETBACK (buildable
// rectangle), ROOMS (room outlines), and LABELS (room names). Coordinates
// are plot-space meters with Y pointing away from the street front.
func ExportDXF(path string, plan model.Plan) error {
	if len(plan.Layout.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("PLOT", color.White, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add PLOT layer: %w", err)
	}
	drawRect(d, 0, 0, plan.Site.PlotWidth, plan.Site.PlotDepth)

	if _, err := d.AddLayer("SETBACK", color.Yellow, table.LT_HIDDEN, true); err != nil {
		return fmt.Errorf("failed to add SETBACK layer: %w", err)
	}
	bx, by := plan.BuildOrigin()
	drawRect(d, bx, by, plan.Grid.BuildWidthM(), plan.Grid.BuildDepthM())

	if _, err := d.AddLayer("ROOMS", color.Cyan, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add ROOMS layer: %w", err)
	}
	for _, room := range plan.Layout.Rooms {
		x, y, w, h := plan.WorldRect(room)
		drawRect(d, x, y, w, h)
	}

	if _, err := d.AddLayer("LABELS", color.Green, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add LABELS layer: %w", err)
	}
	for _, room := range plan.Layout.Rooms {
		x, y, w, h := plan.WorldRect(room)
		label := fmt.Sprintf("%s %.1fm2", room.Name, w*h)
		d.Text(label, x+w/2, y+h/2, 0.0, textHeight(h))
	}

	return d.SaveAs(path)
}

// drawRect adds the four edges of an axis-aligned rectangle.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}

// textHeight scales label text to the room it annotates.
func textHeight(roomDepth float64) float64 {
	size := roomDepth / 6
	if size > 0.4 {
		size = 0.4
	}
	if size < 0.15 {
		size = 0.15
	}
	return size
}
