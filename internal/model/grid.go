package model

import (
	"fmt"
	"math"
)

// MinGridSnapCM is the smallest supported snap size. Finer grids produce
// cell counts with no practical benefit for schematic layouts.
const MinGridSnapCM = 10

// ToGrid converts a measurement in meters to whole grid cells for the given
// snap size. It returns the cell count (never below 1) and the cell size in
// meters so callers reuse the exact same cell size for every conversion in
// one run.
func ToGrid(meters float64, snapCM int) (int, float64) {
	cell := float64(snapCM) / 100.0
	cells := int(math.Round(meters / cell))
	if cells < 1 {
		cells = 1
	}
	return cells, cell
}

// metersToCells converts a dimension to cells using an already-derived cell
// size, with the same round-and-clamp rule as ToGrid.
func metersToCells(meters, cell float64) int {
	cells := int(math.Round(meters / cell))
	if cells < 1 {
		cells = 1
	}
	return cells
}

// Grid is the discrete coordinate space for one generation run. Plot
// dimensions and each setback are rounded to cells independently; the
// buildable rectangle is what remains after subtracting opposing setbacks.
type Grid struct {
	CellSize float64 `json:"cell_size"` // m per cell

	PlotW int `json:"plot_w"` // cells
	PlotH int `json:"plot_h"` // cells

	FrontCells int `json:"front_cells"`
	RearCells  int `json:"rear_cells"`
	LeftCells  int `json:"left_cells"`
	RightCells int `json:"right_cells"`

	BuildW int `json:"build_w"` // cells
	BuildH int `json:"build_h"` // cells
}

// InfeasibleSiteError reports a site whose setbacks consume an entire plot
// axis, leaving no buildable cells. It is fatal for the generation request.
type InfeasibleSiteError struct {
	BuildW int
	BuildH int
}

func (e *InfeasibleSiteError) Error() string {
	return fmt.Sprintf("setbacks too large: buildable area is %d x %d cells", e.BuildW, e.BuildH)
}

// NewGrid derives the placement grid from a site. It returns an
// *InfeasibleSiteError when the buildable width or height is not positive.
func NewGrid(site SiteConfig) (Grid, error) {
	plotW, cell := ToGrid(site.PlotWidth, site.GridSnapCM)
	plotH, _ := ToGrid(site.PlotDepth, site.GridSnapCM)

	g := Grid{
		CellSize:   cell,
		PlotW:      plotW,
		PlotH:      plotH,
		FrontCells: metersToCells(site.FrontSetback, cell),
		RearCells:  metersToCells(site.RearSetback, cell),
		LeftCells:  metersToCells(site.LeftSetback, cell),
		RightCells: metersToCells(site.RightSetback, cell),
	}
	g.BuildW = g.PlotW - g.LeftCells - g.RightCells
	g.BuildH = g.PlotH - g.FrontCells - g.RearCells

	if g.BuildW <= 0 || g.BuildH <= 0 {
		return Grid{}, &InfeasibleSiteError{BuildW: g.BuildW, BuildH: g.BuildH}
	}
	return g, nil
}

// Cells converts a meter dimension to whole cells on this grid, rounding to
// the nearest cell with a minimum of 1.
func (g Grid) Cells(meters float64) int {
	return metersToCells(meters, g.CellSize)
}

// BuildWidthM returns the buildable width in meters.
func (g Grid) BuildWidthM() float64 {
	return float64(g.BuildW) * g.CellSize
}

// BuildDepthM returns the buildable depth in meters.
func (g Grid) BuildDepthM() float64 {
	return float64(g.BuildH) * g.CellSize
}
