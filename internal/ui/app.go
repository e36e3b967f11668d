// Package ui implements the plotplan desktop application.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/nadzri/plotplan/internal/engine"
	"github.com/nadzri/plotplan/internal/export"
	"github.com/nadzri/plotplan/internal/importer"
	"github.com/nadzri/plotplan/internal/model"
	"github.com/nadzri/plotplan/internal/project"
	"github.com/nadzri/plotplan/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window fyne.Window
	site   model.SiteConfig
	plan   *model.Plan
	config model.AppConfig
	tabs   *container.AppTabs

	// UI references for dynamic updates
	roomsContainer  *fyne.Container
	resultContainer *fyne.Container
}

func NewApp(window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}
	site := model.DefaultSite()
	config.ApplyToSite(&site)
	return &App{
		window: window,
		site:   site,
		config: config,
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Site", func() {
			a.site = model.DefaultSite()
			a.config.ApplyToSite(&a.site)
			a.plan = nil
			a.refreshRoomsList()
			a.refreshResults()
		}),
		fyne.NewMenuItem("Open Site...", func() {
			a.openSite()
		}),
		fyne.NewMenuItem("Save Site...", func() {
			a.saveSite()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Rooms from CSV...", func() {
			a.importRooms(importer.ImportCSV, "csv")
		}),
		fyne.NewMenuItem("Import Rooms from Excel...", func() {
			a.importRooms(importer.ImportExcel, "xlsx")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Floor Plan (PDF)...", func() {
			a.exportPlan("pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Drawing (DXF)...", func() {
			a.exportPlan("dxf", export.ExportDXF)
		}),
		fyne.NewMenuItem("Export Room Schedule (Excel)...", func() {
			a.exportPlan("xlsx", export.ExportSchedule)
		}),
		fyne.NewMenuItem("Export Room Labels (PDF)...", func() {
			a.exportPlan("pdf", export.ExportLabels)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Generate Layout", func() {
			a.runGenerate()
			a.tabs.SelectIndex(2)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation(
				"About PlotPlan",
				"PlotPlan — Architectural Layout Generator\n\n"+
					"Generates schematic floor layouts from plot\n"+
					"dimensions, setbacks, and room targets.\n\n"+
					"Version 1.0.0",
				a.window,
			)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, toolsMenu, helpMenu))
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	siteTab := container.NewTabItem("Site", a.buildSitePanel())
	roomsTab := container.NewTabItem("Rooms", a.buildRoomsPanel())
	layoutTab := container.NewTabItem("Layout", a.buildLayoutPanel())

	a.tabs = container.NewAppTabs(siteTab, roomsTab, layoutTab)
	return a.tabs
}

// buildSitePanel creates the form for plot, setback, and grid inputs.
func (a *App) buildSitePanel() fyne.CanvasObject {
	plotW := floatEntry(a.site.PlotWidth, func(v float64) { a.site.PlotWidth = v })
	plotD := floatEntry(a.site.PlotDepth, func(v float64) { a.site.PlotDepth = v })
	front := floatEntry(a.site.FrontSetback, func(v float64) { a.site.FrontSetback = v })
	rear := floatEntry(a.site.RearSetback, func(v float64) { a.site.RearSetback = v })
	left := floatEntry(a.site.LeftSetback, func(v float64) { a.site.LeftSetback = v })
	right := floatEntry(a.site.RightSetback, func(v float64) { a.site.RightSetback = v })
	snap := intEntry(a.site.GridSnapCM, func(v int) { a.site.GridSnapCM = v })
	wall := floatEntry(a.site.WallThickness, func(v float64) { a.site.WallThickness = v })
	height := floatEntry(a.site.RoomHeight, func(v float64) { a.site.RoomHeight = v })

	form := widget.NewForm(
		widget.NewFormItem("Plot width (m)", plotW),
		widget.NewFormItem("Plot depth (m)", plotD),
		widget.NewFormItem("Front setback (m)", front),
		widget.NewFormItem("Rear setback (m)", rear),
		widget.NewFormItem("Left setback (m)", left),
		widget.NewFormItem("Right setback (m)", right),
		widget.NewFormItem("Grid snap (cm)", snap),
		widget.NewFormItem("Wall thickness (m)", wall),
		widget.NewFormItem("Room height (m)", height),
	)

	generateBtn := widget.NewButton("Generate Layout", func() {
		a.runGenerate()
		a.tabs.SelectIndex(2)
	})
	generateBtn.Importance = widget.HighImportance

	return container.NewVScroll(container.NewVBox(form, generateBtn))
}

// buildRoomsPanel creates the room request list with add/remove controls.
func (a *App) buildRoomsPanel() fyne.CanvasObject {
	a.roomsContainer = container.NewVBox()
	a.refreshRoomsList()

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Room name")
	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("Width (m)")
	heightEntry := widget.NewEntry()
	heightEntry.SetPlaceHolder("Depth (m)")
	areaEntry := widget.NewEntry()
	areaEntry.SetPlaceHolder("Area (m2)")
	countEntry := widget.NewEntry()
	countEntry.SetText("1")

	addBtn := widget.NewButton("Add Room", func() {
		req := model.RoomRequest{
			Name:   strings.TrimSpace(nameEntry.Text),
			Width:  parseFloat(widthEntry.Text),
			Height: parseFloat(heightEntry.Text),
			Area:   parseFloat(areaEntry.Text),
			Count:  parseInt(countEntry.Text, 1),
		}
		if req.Name == "" {
			dialog.ShowError(fmt.Errorf("room needs a name"), a.window)
			return
		}
		if !req.Fixed() && req.Area <= 0 {
			dialog.ShowError(fmt.Errorf("room needs width+depth or an area"), a.window)
			return
		}
		a.site.Rooms = append(a.site.Rooms, req)
		a.refreshRoomsList()
		nameEntry.SetText("")
		widthEntry.SetText("")
		heightEntry.SetText("")
		areaEntry.SetText("")
		countEntry.SetText("1")
	})

	addForm := container.NewVBox(
		widget.NewLabelWithStyle("Add Room", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nameEntry,
		container.NewGridWithColumns(3, widthEntry, heightEntry, areaEntry),
		container.NewGridWithColumns(2, widget.NewLabel("Copies:"), countEntry),
		addBtn,
	)

	return container.NewHSplit(
		container.NewVScroll(a.roomsContainer),
		addForm,
	)
}

// buildLayoutPanel creates the results view.
func (a *App) buildLayoutPanel() fyne.CanvasObject {
	a.resultContainer = container.NewVBox()
	a.refreshResults()
	return container.NewVScroll(a.resultContainer)
}

func (a *App) refreshRoomsList() {
	if a.roomsContainer == nil {
		return
	}
	a.roomsContainer.Objects = nil
	for i, req := range a.site.Rooms {
		idx := i
		var desc string
		if req.Fixed() {
			desc = fmt.Sprintf("%s — %.2f x %.2f m", req.Name, req.Width, req.Height)
		} else {
			desc = fmt.Sprintf("%s — %.1f m2", req.Name, req.Area)
		}
		if req.Count > 1 {
			desc += fmt.Sprintf(" (x%d)", req.Count)
		}
		row := container.NewBorder(nil, nil, nil,
			widget.NewButton("Remove", func() {
				a.site.Rooms = append(a.site.Rooms[:idx], a.site.Rooms[idx+1:]...)
				a.refreshRoomsList()
			}),
			widget.NewLabel(desc),
		)
		a.roomsContainer.Add(row)
	}
	a.roomsContainer.Refresh()
}

func (a *App) refreshResults() {
	if a.resultContainer == nil {
		return
	}
	a.resultContainer.Objects = nil

	if a.plan == nil {
		a.resultContainer.Add(widget.NewLabel("No layout yet. Fill in the site and click Generate."))
		a.resultContainer.Refresh()
		return
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Coverage: %.1f%% — %d rooms placed, %.1f m2 built",
		a.plan.Coverage(), len(a.plan.Layout.Rooms), a.plan.BuiltArea()))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	a.resultContainer.Add(summary)

	a.resultContainer.Add(widgets.NewPlanCanvas(*a.plan, 600, 500))

	if len(a.plan.Warnings) > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"Could not place: %s", strings.Join(a.plan.Warnings, ", ")))
		warning.Importance = widget.DangerImportance
		a.resultContainer.Add(warning)
	}

	a.resultContainer.Refresh()
}

func (a *App) runGenerate() {
	plan, err := engine.New(a.site).Generate()
	if err != nil {
		var infeasible *model.InfeasibleSiteError
		if errors.As(err, &infeasible) {
			dialog.ShowError(fmt.Errorf("setbacks too large — no buildable space"), a.window)
		} else {
			dialog.ShowError(err, a.window)
		}
		return
	}
	a.plan = &plan
	a.refreshResults()
}

func (a *App) openSite() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		site, err := project.LoadSite(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.site = site
		a.plan = nil
		a.refreshRoomsList()
		a.refreshResults()
		a.rememberSite(path)
	}, a.window)
}

func (a *App) saveSite() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := project.SaveSite(path, a.site); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberSite(path)
	}, a.window)
	d.SetFileName("site.json")
	d.Show()
}

// importRooms appends rooms from a CSV or Excel file to the current site.
func (a *App) importRooms(run func(string) importer.ImportResult, ext string) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		result := run(path)
		if len(result.Errors) > 0 {
			dialog.ShowError(fmt.Errorf("%s", strings.Join(result.Errors, "\n")), a.window)
			return
		}
		a.site.Rooms = append(a.site.Rooms, result.Rooms...)
		a.refreshRoomsList()

		msg := fmt.Sprintf("Imported %d rooms", len(result.Rooms))
		if len(result.Warnings) > 0 {
			msg += fmt.Sprintf(" (%d rows skipped)", len(result.Warnings))
		}
		dialog.ShowInformation("Import complete", msg, a.window)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{"." + ext}))
	d.Show()
}

// exportPlan writes the current plan with the given exporter.
func (a *App) exportPlan(ext string, run func(string, model.Plan) error) {
	if a.plan == nil {
		dialog.ShowInformation("No layout", "Generate a layout before exporting.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := run(path, *a.plan); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("plan." + ext)
	d.Show()
}

func (a *App) rememberSite(path string) {
	project.RememberSite(&a.config, path)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
		// Non-fatal: preferences just won't persist this session.
		fyne.LogError("failed to save app config", err)
	}
}

func floatEntry(initial float64, set func(float64)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(initial, 'f', -1, 64))
	e.OnChanged = func(s string) {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			set(v)
		}
	}
	return e
}

func intEntry(initial int, set func(int)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(initial))
	e.OnChanged = func(s string) {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			set(v)
		}
	}
	return e
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
