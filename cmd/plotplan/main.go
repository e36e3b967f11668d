// PlotPlan — Architectural Layout Generator
//
// A cross-platform desktop application for generating schematic floor
// layouts from plot dimensions, setbacks, and room targets.
//
// Build:
//   go build -o plotplan ./cmd/plotplan
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o plotplan.exe ./cmd/plotplan
//   GOOS=darwin  GOARCH=amd64 go build -o plotplan-darwin ./cmd/plotplan
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/nadzri/plotplan/internal/ui"
)

func main() {
	application := app.NewWithID("com.nadzri.plotplan")
	window := application.NewWindow("PlotPlan — Architectural Layout Generator")

	appUI := ui.NewApp(window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()

	window.ShowAndRun()
}
