package model

import (
	"errors"
	"math"
	"testing"
)

func TestToGrid(t *testing.T) {
	tests := []struct {
		name      string
		meters    float64
		snapCM    int
		wantCells int
		wantCell  float64
	}{
		{"half meter snap", 14.0, 50, 28, 0.5},
		{"rounds down", 14.2, 50, 28, 0.5},
		{"rounds to nearest", 14.3, 50, 29, 0.5},
		{"ten cm snap", 3.14, 10, 31, 0.1},
		{"one meter snap", 24.0, 100, 24, 1.0},
		{"small dimension clamps to one cell", 0.1, 100, 1, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, cell := ToGrid(tt.meters, tt.snapCM)
			if cells != tt.wantCells {
				t.Errorf("cells = %d, want %d", cells, tt.wantCells)
			}
			if math.Abs(cell-tt.wantCell) > 1e-9 {
				t.Errorf("cell size = %f, want %f", cell, tt.wantCell)
			}
		})
	}
}

func TestToGridNearestInteger(t *testing.T) {
	// cells must be the nearest integer to meters/cell for any sane input
	for _, snap := range []int{10, 25, 50, 100} {
		for meters := 0.5; meters < 30; meters += 0.37 {
			cells, cell := ToGrid(meters, snap)
			if cells < 1 {
				t.Fatalf("ToGrid(%f, %d) returned %d cells", meters, snap, cells)
			}
			want := int(math.Round(meters / cell))
			if want < 1 {
				want = 1
			}
			if cells != want {
				t.Errorf("ToGrid(%f, %d) = %d cells, want %d", meters, snap, cells, want)
			}
		}
	}
}

func TestNewGrid(t *testing.T) {
	grid, err := NewGrid(DefaultSite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 14x24 m plot at 0.5 m cells with setbacks 4.5/3/2/2
	if grid.PlotW != 28 || grid.PlotH != 48 {
		t.Errorf("plot = %dx%d cells, want 28x48", grid.PlotW, grid.PlotH)
	}
	if grid.BuildW != 20 {
		t.Errorf("buildable width = %d cells, want 20", grid.BuildW)
	}
	if grid.BuildH != 33 {
		t.Errorf("buildable height = %d cells, want 33", grid.BuildH)
	}
	if math.Abs(grid.BuildWidthM()-10.0) > 1e-9 {
		t.Errorf("buildable width = %f m, want 10", grid.BuildWidthM())
	}
	if math.Abs(grid.BuildDepthM()-16.5) > 1e-9 {
		t.Errorf("buildable depth = %f m, want 16.5", grid.BuildDepthM())
	}
}

func TestNewGridInfeasible(t *testing.T) {
	site := DefaultSite()
	site.LeftSetback = 8.0
	site.RightSetback = 7.0 // left+right >= plot width

	_, err := NewGrid(site)
	if err == nil {
		t.Fatal("expected infeasible site error")
	}
	var infeasible *InfeasibleSiteError
	if !errors.As(err, &infeasible) {
		t.Fatalf("expected *InfeasibleSiteError, got %T", err)
	}
	if infeasible.BuildW > 0 {
		t.Errorf("buildable width should be <= 0, got %d", infeasible.BuildW)
	}
}

func TestGridCells(t *testing.T) {
	grid, err := NewGrid(DefaultSite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := grid.Cells(3.2); got != 6 {
		t.Errorf("Cells(3.2) = %d, want 6", got)
	}
	if got := grid.Cells(0.01); got != 1 {
		t.Errorf("Cells(0.01) = %d, want 1 (minimum)", got)
	}
}
