package model

import "fmt"

// RoomRequest describes one room the user wants placed. A request either
// carries fixed dimensions (Width and Height both set) or a target floor
// area with an aspect ratio. Count > 1 produces numbered copies
// ("Bedroom 1", "Bedroom 2", ...) sharing the same dimensions.
type RoomRequest struct {
	Name   string  `json:"name" toml:"name"`
	Width  float64 `json:"width,omitempty" toml:"width,omitempty"`   // m, fixed-dimension requests
	Height float64 `json:"height,omitempty" toml:"height,omitempty"` // m, fixed-dimension requests
	Area   float64 `json:"area,omitempty" toml:"area,omitempty"`     // m², area-derived requests
	Ratio  float64 `json:"ratio,omitempty" toml:"ratio,omitempty"`   // width/height, 0 = DefaultAspectRatio
	Count  int     `json:"count" toml:"count"`
}

// Fixed reports whether the request carries explicit dimensions rather
// than a target area.
func (r RoomRequest) Fixed() bool {
	return r.Width > 0 && r.Height > 0
}

// NewFixedRoom creates a single-copy request with explicit dimensions in meters.
func NewFixedRoom(name string, w, h float64) RoomRequest {
	return RoomRequest{Name: name, Width: w, Height: h, Count: 1}
}

// NewAreaRoom creates a request for count copies derived from a target
// floor area at the default aspect ratio.
func NewAreaRoom(name string, area float64, count int) RoomRequest {
	return RoomRequest{Name: name, Area: area, Count: count}
}

// SiteConfig is the immutable input to one generation run: the plot, its
// setbacks, the placement grid, and the rooms to place. WallThickness and
// RoomHeight are carried for renderers only; the packer ignores them.
type SiteConfig struct {
	PlotWidth float64 `json:"plot_width" toml:"plot_width"` // m
	PlotDepth float64 `json:"plot_depth" toml:"plot_depth"` // m

	FrontSetback float64 `json:"front_setback" toml:"front_setback"` // m
	RearSetback  float64 `json:"rear_setback" toml:"rear_setback"`   // m
	LeftSetback  float64 `json:"left_setback" toml:"left_setback"`   // m
	RightSetback float64 `json:"right_setback" toml:"right_setback"` // m

	GridSnapCM int `json:"grid_snap_cm" toml:"grid_snap_cm"` // cm, minimum 10

	Rooms []RoomRequest `json:"rooms" toml:"rooms"`

	WallThickness float64 `json:"wall_thickness" toml:"wall_thickness"` // m
	RoomHeight    float64 `json:"room_height" toml:"room_height"`       // m
}

// DefaultSite returns a SiteConfig matching the generator's stock example:
// a 14 x 24 m plot with a car porch, lounge, three bedrooms and a bath.
func DefaultSite() SiteConfig {
	return SiteConfig{
		PlotWidth:    14.0,
		PlotDepth:    24.0,
		FrontSetback: 4.5,
		RearSetback:  3.0,
		LeftSetback:  2.0,
		RightSetback: 2.0,
		GridSnapCM:   50,
		Rooms: []RoomRequest{
			NewFixedRoom("Car Porch", 3.2, 5.5),
			NewAreaRoom("Lounge", 20.0, 1),
			NewAreaRoom("Bedroom", 12.0, 3),
			NewAreaRoom("Bath", 4.0, 1),
		},
		WallThickness: 0.2,
		RoomHeight:    3.0,
	}
}

// Validate rejects degenerate inputs up front instead of letting the grid
// conversion silently clamp them to one cell. Returns the first problem found.
func (s SiteConfig) Validate() error {
	if s.PlotWidth <= 0 {
		return fmt.Errorf("plot width must be positive, got %.3f", s.PlotWidth)
	}
	if s.PlotDepth <= 0 {
		return fmt.Errorf("plot depth must be positive, got %.3f", s.PlotDepth)
	}
	if s.GridSnapCM < MinGridSnapCM {
		return fmt.Errorf("grid snap must be at least %d cm, got %d", MinGridSnapCM, s.GridSnapCM)
	}
	setbacks := []struct {
		name  string
		value float64
	}{
		{"front", s.FrontSetback},
		{"rear", s.RearSetback},
		{"left", s.LeftSetback},
		{"right", s.RightSetback},
	}
	for _, sb := range setbacks {
		if sb.value < 0 {
			return fmt.Errorf("%s setback must not be negative, got %.3f", sb.name, sb.value)
		}
	}
	if s.WallThickness < 0 {
		return fmt.Errorf("wall thickness must not be negative, got %.3f", s.WallThickness)
	}
	if s.RoomHeight < 0 {
		return fmt.Errorf("room height must not be negative, got %.3f", s.RoomHeight)
	}
	for _, r := range s.Rooms {
		if r.Name == "" {
			return fmt.Errorf("room request without a name")
		}
		if r.Count < 0 {
			return fmt.Errorf("room %q: count must not be negative, got %d", r.Name, r.Count)
		}
		if r.Fixed() {
			continue
		}
		if r.Width > 0 || r.Height > 0 {
			return fmt.Errorf("room %q: fixed requests need both width and height", r.Name)
		}
		if r.Area <= 0 {
			return fmt.Errorf("room %q: area must be positive, got %.3f", r.Name, r.Area)
		}
		if r.Ratio < 0 {
			return fmt.Errorf("room %q: aspect ratio must not be negative, got %.3f", r.Name, r.Ratio)
		}
	}
	return nil
}
