package engine

import (
	"errors"
	"testing"

	"github.com/nadzri/plotplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlaps reports whether two placed rooms share any grid cell.
func overlaps(a, b model.PlacedRoom) bool {
	return a.GridX < b.GridX+b.GridW && a.GridX+a.GridW > b.GridX &&
		a.GridY < b.GridY+b.GridH && a.GridY+a.GridH > b.GridY
}

func assertLayoutInvariants(t *testing.T, plan model.Plan) {
	t.Helper()
	rooms := plan.Layout.Rooms
	for _, r := range rooms {
		assert.GreaterOrEqual(t, r.GridX, 0, "%s x origin", r.Name)
		assert.GreaterOrEqual(t, r.GridY, 0, "%s y origin", r.Name)
		assert.LessOrEqual(t, r.GridX+r.GridW, plan.Grid.BuildW, "%s overruns buildable width", r.Name)
		assert.LessOrEqual(t, r.GridY+r.GridH, plan.Grid.BuildH, "%s overruns buildable height", r.Name)
	}
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			assert.False(t, overlaps(rooms[i], rooms[j]),
				"%s overlaps %s", rooms[i].Name, rooms[j].Name)
		}
	}
}

func TestGenerateDefaultSite(t *testing.T) {
	plan, err := New(model.DefaultSite()).Generate()
	require.NoError(t, err)

	assert.Equal(t, 20, plan.Grid.BuildW)
	assert.Equal(t, 33, plan.Grid.BuildH)
	assert.Empty(t, plan.Warnings, "all stock rooms fit the buildable area")
	assert.Len(t, plan.Layout.Rooms, 6)

	// Largest-first priority: the lounge (~20 m²) is placed before everything
	// else, at the grid origin.
	first := plan.Layout.Rooms[0]
	assert.Equal(t, "Lounge", first.Name)
	assert.Equal(t, 0, first.GridX)
	assert.Equal(t, 0, first.GridY)

	for _, name := range []string{"Car Porch", "Bedroom 1", "Bedroom 2", "Bedroom 3", "Bath"} {
		_, ok := plan.Layout.Room(name)
		assert.True(t, ok, "missing room %s", name)
	}

	assertLayoutInvariants(t, plan)

	assert.Greater(t, plan.Coverage(), 0.0)
	assert.Less(t, plan.Coverage(), 100.0)
}

func TestGenerateInfeasibleSite(t *testing.T) {
	site := model.DefaultSite()
	site.LeftSetback = 8.0
	site.RightSetback = 7.0 // 15 m of setback on a 14 m wide plot

	_, err := New(site).Generate()
	require.Error(t, err)
	var infeasible *model.InfeasibleSiteError
	require.ErrorAs(t, err, &infeasible)
}

func TestGenerateRejectsInvalidSite(t *testing.T) {
	site := model.DefaultSite()
	site.PlotWidth = -1

	_, err := New(site).Generate()
	require.Error(t, err)
	var infeasible *model.InfeasibleSiteError
	assert.False(t, errors.As(err, &infeasible), "validation failure is not an infeasible site")
	assert.Contains(t, err.Error(), "plot width")
}

func TestGenerateOversizedRoomWarns(t *testing.T) {
	site := model.DefaultSite()
	// Wider than the 10 m buildable width; wrapping can never make it fit.
	site.Rooms = append(site.Rooms, model.NewFixedRoom("Hall", 12.0, 2.0))

	plan, err := New(site).Generate()
	require.NoError(t, err)

	assert.Contains(t, plan.Warnings, "Hall")
	_, ok := plan.Layout.Room("Hall")
	assert.False(t, ok, "oversized room must not appear in the layout")

	// The other rooms still place correctly.
	assert.Len(t, plan.Layout.Rooms, 6)
	assertLayoutInvariants(t, plan)
}

func TestGenerateTooTallRoomWarns(t *testing.T) {
	site := model.DefaultSite()
	site.Rooms = append(site.Rooms, model.NewFixedRoom("Tower", 2.0, 20.0))

	plan, err := New(site).Generate()
	require.NoError(t, err)
	assert.Contains(t, plan.Warnings, "Tower")
	assertLayoutInvariants(t, plan)
}

func TestGenerateDeterministic(t *testing.T) {
	site := model.DefaultSite()

	first, err := New(site).Generate()
	require.NoError(t, err)
	second, err := New(site).Generate()
	require.NoError(t, err)

	assert.Equal(t, first.Grid, second.Grid)
	assert.Equal(t, first.Warnings, second.Warnings)
	assert.InDelta(t, first.Coverage(), second.Coverage(), 1e-12)
	require.Len(t, second.Layout.Rooms, len(first.Layout.Rooms))
	for i, r := range first.Layout.Rooms {
		assert.Equal(t, r, second.Layout.Rooms[i])
	}
}

func TestGenerateCoverageMonotonic(t *testing.T) {
	// Holding the plot fixed, packing more rooms never lowers coverage.
	site := model.DefaultSite()
	site.Rooms = nil

	add := []model.RoomRequest{
		model.NewAreaRoom("Lounge", 20.0, 1),
		model.NewFixedRoom("Car Porch", 3.2, 5.5),
		model.NewAreaRoom("Bedroom", 12.0, 2),
		model.NewAreaRoom("Bath", 4.0, 1),
	}

	prev := 0.0
	for _, req := range add {
		site.Rooms = append(site.Rooms, req)
		plan, err := New(site).Generate()
		require.NoError(t, err)
		require.Empty(t, plan.Warnings)
		assert.GreaterOrEqual(t, plan.Coverage(), prev)
		prev = plan.Coverage()
	}
}

func TestGenerateRowWrap(t *testing.T) {
	// Three 4 m wide rooms on a 10 m buildable width: two fit in the first
	// row, the third wraps to a new row below the tallest of the first two.
	site := model.DefaultSite()
	site.Rooms = []model.RoomRequest{
		model.NewFixedRoom("A", 4.0, 3.0),
		model.NewFixedRoom("B", 4.0, 2.0),
		model.NewFixedRoom("C", 4.0, 2.0),
	}

	plan, err := New(site).Generate()
	require.NoError(t, err)
	require.Empty(t, plan.Warnings)

	a, _ := plan.Layout.Room("A")
	b, _ := plan.Layout.Room("B")
	c, _ := plan.Layout.Room("C")

	assert.Equal(t, 0, a.GridX)
	assert.Equal(t, 0, a.GridY)
	assert.Equal(t, 8, b.GridX)
	assert.Equal(t, 0, b.GridY)
	// C wraps: new row starts below A, the tallest room of row one (6 cells).
	assert.Equal(t, 0, c.GridX)
	assert.Equal(t, 6, c.GridY)

	assertLayoutInvariants(t, plan)
}

func TestGenerateSingleCellMinimum(t *testing.T) {
	// Rooms smaller than one cell are placed at one cell each.
	site := model.DefaultSite()
	site.Rooms = []model.RoomRequest{model.NewFixedRoom("Closet", 0.1, 0.1)}

	plan, err := New(site).Generate()
	require.NoError(t, err)
	r, ok := plan.Layout.Room("Closet")
	require.True(t, ok)
	assert.Equal(t, 1, r.GridW)
	assert.Equal(t, 1, r.GridH)
}
