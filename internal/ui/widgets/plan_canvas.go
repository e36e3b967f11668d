package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/nadzri/plotplan/internal/model"
)

// Room colors — cycle through these for visual distinction.
var roomColors = []color.NRGBA{
	{R: 244, G: 162, B: 97, A: 220},  // sand
	{R: 189, G: 224, B: 254, A: 220}, // pale blue
	{R: 199, G: 201, B: 204, A: 220}, // concrete
	{R: 230, G: 238, B: 246, A: 220}, // mist
	{R: 167, G: 201, B: 87, A: 220},  // leaf
	{R: 231, G: 200, B: 169, A: 220}, // oak
	{R: 222, G: 170, B: 136, A: 220}, // clay
	{R: 155, G: 34, B: 38, A: 220},   // brick
}

// PlanCanvas renders the 2D floor plan of a generated layout.
type PlanCanvas struct {
	widget.BaseWidget
	plan      model.Plan
	maxWidth  float32
	maxHeight float32
}

func NewPlanCanvas(plan model.Plan, maxW, maxH float32) *PlanCanvas {
	pc := &PlanCanvas{
		plan:      plan,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *PlanCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPlanCanvasRenderer(pc)
}

// scale returns the meters-to-pixels factor that fits the plot in the
// widget's bounds.
func (pc *PlanCanvas) scale() float32 {
	plotW := float32(pc.plan.Site.PlotWidth)
	plotH := float32(pc.plan.Site.PlotDepth)
	scaleX := pc.maxWidth / plotW
	scaleY := pc.maxHeight / plotH
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

type planCanvasRenderer struct {
	pc      *PlanCanvas
	objects []fyne.CanvasObject
}

func newPlanCanvasRenderer(pc *PlanCanvas) *planCanvasRenderer {
	r := &planCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

func (r *planCanvasRenderer) rebuild() {
	r.objects = nil

	plan := r.pc.plan
	scale := r.pc.scale()

	plotW := float32(plan.Site.PlotWidth) * scale
	plotH := float32(plan.Site.PlotDepth) * scale

	// Plot background
	bg := canvas.NewRectangle(color.NRGBA{R: 250, G: 250, B: 248, A: 255})
	bg.Resize(fyne.NewSize(plotW, plotH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Plot boundary
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 34, G: 34, B: 34, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(plotW, plotH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Buildable rectangle
	bx, by := plan.BuildOrigin()
	buildRect := canvas.NewRectangle(color.Transparent)
	buildRect.StrokeColor = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	buildRect.StrokeWidth = 1
	buildRect.Resize(fyne.NewSize(
		float32(plan.Grid.BuildWidthM())*scale,
		float32(plan.Grid.BuildDepthM())*scale))
	buildRect.Move(fyne.NewPos(float32(bx)*scale, float32(by)*scale))
	r.objects = append(r.objects, buildRect)

	// Placed rooms
	for i, room := range plan.Layout.Rooms {
		col := roomColors[i%len(roomColors)]
		x, y, w, h := plan.WorldRect(room)
		rx := float32(x) * scale
		ry := float32(y) * scale
		rw := float32(w) * scale
		rh := float32(h) * scale

		roomRect := canvas.NewRectangle(col)
		roomRect.Resize(fyne.NewSize(rw, rh))
		roomRect.Move(fyne.NewPos(rx, ry))
		r.objects = append(r.objects, roomRect)

		roomBorder := canvas.NewRectangle(color.Transparent)
		roomBorder.StrokeColor = color.NRGBA{R: 51, G: 51, B: 51, A: 255}
		roomBorder.StrokeWidth = 2
		roomBorder.Resize(fyne.NewSize(rw, rh))
		roomBorder.Move(fyne.NewPos(rx, ry))
		r.objects = append(r.objects, roomBorder)

		if rw > 40 && rh > 20 {
			label := canvas.NewText(
				fmt.Sprintf("%s %.1f m2", room.Name, w*h),
				color.Black,
			)
			label.TextSize = 10
			label.Move(fyne.NewPos(rx+3, ry+2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *planCanvasRenderer) Layout(size fyne.Size)        {}
func (r *planCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *planCanvasRenderer) Destroy()                     {}
func (r *planCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *planCanvasRenderer) MinSize() fyne.Size {
	scale := r.pc.scale()
	return fyne.NewSize(
		float32(r.pc.plan.Site.PlotWidth)*scale,
		float32(r.pc.plan.Site.PlotDepth)*scale)
}
