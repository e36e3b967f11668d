// Package engine turns a site description into a packed floor layout.
package engine

import (
	"github.com/nadzri/plotplan/internal/model"
)

// Generator runs the layout pipeline for one site. Each call to Generate is
// independent: it validates the site, derives the grid, builds room specs,
// packs them, and returns a fresh Plan. No state survives between calls.
type Generator struct {
	Site model.SiteConfig
}

func New(site model.SiteConfig) *Generator {
	return &Generator{Site: site}
}

// Generate produces the packed plan for the generator's site. It returns a
// validation error for degenerate inputs and an *model.InfeasibleSiteError
// when setbacks leave no buildable area. Rooms that cannot be placed are not
// errors; their names are collected in Plan.Warnings.
func (g *Generator) Generate() (model.Plan, error) {
	if err := g.Site.Validate(); err != nil {
		return model.Plan{}, err
	}

	grid, err := model.NewGrid(g.Site)
	if err != nil {
		return model.Plan{}, err
	}

	specs := model.BuildRoomSpecs(g.Site.Rooms)
	layout, warnings := pack(specs, grid)

	return model.Plan{
		Site:     g.Site,
		Grid:     grid,
		Layout:   layout,
		Warnings: warnings,
	}, nil
}

// pack places rooms into the buildable rectangle with a first-fit shelf
// heuristic: fill the current row left to right, wrap to a new row when a
// room would overrun the buildable width, and drop the room with a warning
// when the new row would overrun the buildable height. Single pass, no
// backtracking — rooms arrive largest-first, which keeps fragmentation low
// for the small inputs this tool handles.
func pack(specs []model.RoomSpec, grid model.Grid) (model.Layout, []string) {
	var layout model.Layout
	var warnings []string

	s := shelf{buildW: grid.BuildW, buildH: grid.BuildH}
	for _, spec := range specs {
		wCells := grid.Cells(spec.Width)
		hCells := grid.Cells(spec.Height)

		x, y, ok := s.place(wCells, hCells)
		if !ok {
			warnings = append(warnings, spec.Name)
			continue
		}
		layout.Rooms = append(layout.Rooms, model.PlacedRoom{
			Name:  spec.Name,
			GridX: x,
			GridY: y,
			GridW: wCells,
			GridH: hCells,
		})
	}
	return layout, warnings
}

// shelf tracks the packing cursor. Rows never shrink: maxRowH is the tallest
// room placed in the current row and becomes the row's height on wrap, so
// placed rectangles can never overlap.
type shelf struct {
	buildW, buildH int
	cursorX        int
	cursorY        int
	maxRowH        int
}

// place returns the cell origin for a w x h room, or ok=false when the room
// cannot fit. A room wider than the buildable width never fits: wrapping
// resets the cursor to x=0 and the width check still fails.
func (s *shelf) place(w, h int) (x, y int, ok bool) {
	if s.cursorX+w > s.buildW {
		s.cursorX = 0
		s.cursorY += s.maxRowH
		s.maxRowH = 0
	}
	if s.cursorX+w > s.buildW || s.cursorY+h > s.buildH {
		return 0, 0, false
	}
	x, y = s.cursorX, s.cursorY
	s.cursorX += w
	if h > s.maxRowH {
		s.maxRowH = h
	}
	return x, y, true
}
