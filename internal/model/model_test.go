package model

import (
	"math"
	"testing"
)

func TestAreaToDims(t *testing.T) {
	tests := []struct {
		name  string
		area  float64
		ratio float64
	}{
		{"lounge", 20.0, 0},
		{"bedroom", 12.0, 0},
		{"bath", 4.0, 0},
		{"square", 9.0, 1.0},
		{"wide", 15.0, 2.0},
		{"tiny", 0.5, 1.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := AreaToDims(tt.area, tt.ratio)
			if w <= 0 || h <= 0 {
				t.Fatalf("non-positive dims %f x %f", w, h)
			}
			if math.Abs(w*h-tt.area) > 0.01 {
				t.Errorf("w*h = %f, want %f within 0.01", w*h, tt.area)
			}
			ratio := tt.ratio
			if ratio == 0 {
				ratio = DefaultAspectRatio
			}
			if math.Abs(w/h-ratio) > 0.01 {
				t.Errorf("w/h = %f, want %f within 0.01", w/h, ratio)
			}
		})
	}
}

func TestAreaToDimsReferenceValues(t *testing.T) {
	// Values from the stock example: lounge 20 m² at ratio 1.3
	w, h := AreaToDims(20.0, 0)
	if math.Abs(w-5.099) > 0.001 {
		t.Errorf("lounge width = %f, want 5.099", w)
	}
	if math.Abs(h-3.922) > 0.001 {
		t.Errorf("lounge height = %f, want 3.922", h)
	}
}

func TestBuildRoomSpecsOrdering(t *testing.T) {
	specs := BuildRoomSpecs(DefaultSite().Rooms)

	wantNames := []string{"Lounge", "Car Porch", "Bedroom 1", "Bedroom 2", "Bedroom 3", "Bath"}
	if len(specs) != len(wantNames) {
		t.Fatalf("got %d specs, want %d", len(specs), len(wantNames))
	}
	for i, want := range wantNames {
		if specs[i].Name != want {
			t.Errorf("specs[%d] = %q, want %q", i, specs[i].Name, want)
		}
	}
	// Largest-first
	for i := 1; i < len(specs); i++ {
		if specs[i].Area() > specs[i-1].Area()+1e-9 {
			t.Errorf("specs not sorted by area: %q (%f) after %q (%f)",
				specs[i].Name, specs[i].Area(), specs[i-1].Name, specs[i-1].Area())
		}
	}
}

func TestBuildRoomSpecsStableTieBreak(t *testing.T) {
	// Equal-area rooms keep request order
	requests := []RoomRequest{
		NewFixedRoom("First", 2.0, 3.0),
		NewFixedRoom("Second", 3.0, 2.0),
		NewFixedRoom("Third", 6.0, 1.0),
	}
	specs := BuildRoomSpecs(requests)
	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		if specs[i].Name != name {
			t.Errorf("specs[%d] = %q, want %q", i, specs[i].Name, name)
		}
	}
}

func TestBuildRoomSpecsNumbering(t *testing.T) {
	specs := BuildRoomSpecs([]RoomRequest{NewAreaRoom("Bedroom", 12.0, 3)})
	if len(specs) != 3 {
		t.Fatalf("got %d specs, want 3", len(specs))
	}
	seen := map[string]bool{}
	for _, s := range specs {
		if seen[s.Name] {
			t.Errorf("duplicate name %q", s.Name)
		}
		seen[s.Name] = true
	}
	for _, name := range []string{"Bedroom 1", "Bedroom 2", "Bedroom 3"} {
		if !seen[name] {
			t.Errorf("missing %q", name)
		}
	}
}

func TestBuildRoomSpecsZeroCount(t *testing.T) {
	specs := BuildRoomSpecs([]RoomRequest{
		NewAreaRoom("Bedroom", 12.0, 0),
		NewFixedRoom("Car Porch", 3.2, 5.5),
	})
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	if specs[0].Name != "Car Porch" {
		t.Errorf("got %q, want Car Porch", specs[0].Name)
	}
}

func TestLayoutLookups(t *testing.T) {
	layout := Layout{Rooms: []PlacedRoom{
		{Name: "Lounge", GridX: 0, GridY: 0, GridW: 10, GridH: 8},
		{Name: "Bath", GridX: 10, GridY: 0, GridW: 5, GridH: 4},
	}}

	r, ok := layout.Room("Bath")
	if !ok || r.GridX != 10 {
		t.Errorf("Room(Bath) = %+v, %v", r, ok)
	}
	if _, ok := layout.Room("Kitchen"); ok {
		t.Error("Room(Kitchen) should not exist")
	}
	byName := layout.ByName()
	if len(byName) != 2 || byName["Lounge"].GridW != 10 {
		t.Errorf("ByName() = %+v", byName)
	}
}

func TestPlanMetrics(t *testing.T) {
	site := DefaultSite()
	grid, err := NewGrid(site)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := Plan{
		Site: site,
		Grid: grid,
		Layout: Layout{Rooms: []PlacedRoom{
			{Name: "Lounge", GridX: 0, GridY: 0, GridW: 10, GridH: 8},
		}},
	}

	// 10x8 cells at 0.5 m = 5x4 m = 20 m² on a 336 m² plot
	if math.Abs(plan.BuiltArea()-20.0) > 1e-9 {
		t.Errorf("built area = %f, want 20", plan.BuiltArea())
	}
	wantCoverage := 20.0 / 336.0 * 100.0
	if math.Abs(plan.Coverage()-wantCoverage) > 1e-9 {
		t.Errorf("coverage = %f, want %f", plan.Coverage(), wantCoverage)
	}

	x, y, w, h := plan.WorldRect(plan.Layout.Rooms[0])
	if x != 2.0 || y != 4.5 {
		t.Errorf("world origin = (%f, %f), want (2, 4.5)", x, y)
	}
	if w != 5.0 || h != 4.0 {
		t.Errorf("world extent = %f x %f, want 5 x 4", w, h)
	}
}
