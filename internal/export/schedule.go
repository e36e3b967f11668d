package export

import (
	"fmt"

	"github.com/nadzri/plotplan/internal/model"
	"github.com/xuri/excelize/v2"
)

const scheduleSheet = "Room Schedule"

// ExportSchedule writes the placed rooms as an Excel room schedule: one row
// per room with dimensions, area, and grid cell rectangle, followed by a
// site summary block.
func ExportSchedule(path string, plan model.Plan) error {
	if len(plan.Layout.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(scheduleSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headers := []string{"Room", "Width (m)", "Depth (m)", "Area (m2)", "Grid X", "Grid Y", "Grid W", "Grid H"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, cell, h); err != nil {
			return err
		}
	}

	cellSize := plan.Grid.CellSize
	for i, room := range plan.Layout.Rooms {
		row := i + 2
		values := []interface{}{
			room.Name,
			room.WidthM(cellSize),
			room.DepthM(cellSize),
			room.AreaM2(cellSize),
			room.GridX,
			room.GridY,
			room.GridW,
			room.GridH,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(scheduleSheet, cell, v); err != nil {
				return err
			}
		}
	}

	// Summary block two rows under the table
	summaryRow := len(plan.Layout.Rooms) + 4
	summary := [][2]interface{}{
		{"Plot", fmt.Sprintf("%.1f x %.1f m", plan.Site.PlotWidth, plan.Site.PlotDepth)},
		{"Buildable", fmt.Sprintf("%.1f x %.1f m", plan.Grid.BuildWidthM(), plan.Grid.BuildDepthM())},
		{"Grid cell", fmt.Sprintf("%.0f cm", cellSize*100)},
		{"Built area (m2)", plan.BuiltArea()},
		{"Coverage (%)", plan.Coverage()},
	}
	for i, kv := range summary {
		keyCell, err := excelize.CoordinatesToCellName(1, summaryRow+i)
		if err != nil {
			return err
		}
		valCell, err := excelize.CoordinatesToCellName(2, summaryRow+i)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, keyCell, kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, valCell, kv[1]); err != nil {
			return err
		}
	}

	if len(plan.Warnings) > 0 {
		warnRow := summaryRow + len(summary) + 1
		keyCell, err := excelize.CoordinatesToCellName(1, warnRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, keyCell, "Unplaced rooms"); err != nil {
			return err
		}
		for i, name := range plan.Warnings {
			cell, err := excelize.CoordinatesToCellName(2+i, warnRow)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(scheduleSheet, cell, name); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
