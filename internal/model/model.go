package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

// DefaultAspectRatio is the width/height ratio used for area-derived rooms
// when the request does not specify one.
const DefaultAspectRatio = 1.3

// AreaToDims derives width and height in meters for a target floor area and
// aspect ratio (width = sqrt(area * ratio), height = area / width). Both are
// rounded to 3 decimal places, so width*height matches the area within
// rounding and the pre-rounding ratio is exact.
func AreaToDims(area, ratio float64) (float64, float64) {
	if ratio <= 0 {
		ratio = DefaultAspectRatio
	}
	w := math.Sqrt(area * ratio)
	h := area / w
	return round3(w), round3(h)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// RoomSpec is one concrete room to place: a unique name and real-world
// dimensions in meters.
type RoomSpec struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`  // m
	Height float64 `json:"height"` // m
}

// Area returns the floor area in m².
func (r RoomSpec) Area() float64 {
	return r.Width * r.Height
}

func newRoomSpec(name string, w, h float64) RoomSpec {
	return RoomSpec{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  w,
		Height: h,
	}
}

// BuildRoomSpecs expands room requests into concrete specs and orders them
// by floor area, largest first. The sort is stable: rooms with equal area
// keep their original request order, so packing stays deterministic.
// Requests with Count <= 0 are dropped.
func BuildRoomSpecs(requests []RoomRequest) []RoomSpec {
	var specs []RoomSpec
	for _, req := range requests {
		w, h := req.Width, req.Height
		if !req.Fixed() {
			w, h = AreaToDims(req.Area, req.Ratio)
		}
		if req.Count == 1 {
			specs = append(specs, newRoomSpec(req.Name, w, h))
			continue
		}
		// "Bedroom" with count 3 becomes "Bedroom 1" .. "Bedroom 3"
		for i := 1; i <= req.Count; i++ {
			specs = append(specs, newRoomSpec(fmt.Sprintf("%s %d", req.Name, i), w, h))
		}
	}
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Area() > specs[j].Area()
	})
	return specs
}

// PlacedRoom records where one room landed on the grid: top-left origin and
// extent in cells, relative to the buildable rectangle.
type PlacedRoom struct {
	Name  string `json:"name"`
	GridX int    `json:"grid_x"`
	GridY int    `json:"grid_y"`
	GridW int    `json:"grid_w"`
	GridH int    `json:"grid_h"`
}

// WidthM returns the placed width in meters for the given cell size.
func (p PlacedRoom) WidthM(cell float64) float64 {
	return float64(p.GridW) * cell
}

// DepthM returns the placed depth in meters for the given cell size.
func (p PlacedRoom) DepthM(cell float64) float64 {
	return float64(p.GridH) * cell
}

// AreaM2 returns the placed floor area in m² for the given cell size.
func (p PlacedRoom) AreaM2(cell float64) float64 {
	return p.WidthM(cell) * p.DepthM(cell)
}

// Layout holds the placed rooms of one generation run in placement order.
// It is built fresh on every run and never mutated afterwards.
type Layout struct {
	Rooms []PlacedRoom `json:"rooms"`
}

// Room looks up a placed room by name.
func (l Layout) Room(name string) (PlacedRoom, bool) {
	for _, r := range l.Rooms {
		if r.Name == name {
			return r, true
		}
	}
	return PlacedRoom{}, false
}

// ByName returns the layout as a name-keyed map. Names are unique within a
// run, so no entries collide.
func (l Layout) ByName() map[string]PlacedRoom {
	m := make(map[string]PlacedRoom, len(l.Rooms))
	for _, r := range l.Rooms {
		m[r.Name] = r
	}
	return m
}

// Plan is the full output of one generation run: the inputs it was derived
// from, the placement grid, the packed layout, and the names of rooms that
// could not be placed.
type Plan struct {
	Site     SiteConfig `json:"site"`
	Grid     Grid       `json:"grid"`
	Layout   Layout     `json:"layout"`
	Warnings []string   `json:"warnings,omitempty"`
}

// BuiltArea returns the total placed floor area in m².
func (p Plan) BuiltArea() float64 {
	var total float64
	for _, r := range p.Layout.Rooms {
		total += r.AreaM2(p.Grid.CellSize)
	}
	return total
}

// Coverage returns built area as a percentage of the plot area.
func (p Plan) Coverage() float64 {
	plotArea := p.Site.PlotWidth * p.Site.PlotDepth
	if plotArea == 0 {
		return 0
	}
	return p.BuiltArea() / plotArea * 100.0
}

// WorldRect maps a placed room into plot coordinates in meters: the grid
// origin sits at the left/front setback corner of the buildable rectangle.
func (p Plan) WorldRect(r PlacedRoom) (x, y, w, h float64) {
	cell := p.Grid.CellSize
	x = p.Site.LeftSetback + float64(r.GridX)*cell
	y = p.Site.FrontSetback + float64(r.GridY)*cell
	return x, y, r.WidthM(cell), r.DepthM(cell)
}

// BuildOrigin returns the plot-space position of the buildable rectangle's
// near corner in meters.
func (p Plan) BuildOrigin() (float64, float64) {
	return p.Site.LeftSetback, p.Site.FrontSetback
}
