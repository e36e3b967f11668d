package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/nadzri/plotplan/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each room label's QR code.
type LabelInfo struct {
	Room     string  `json:"room"`
	Width    float64 `json:"width_m"`
	Depth    float64 `json:"depth_m"`
	Area     float64 `json:"area_m2"`
	GridX    int     `json:"grid_x"`
	GridY    int     `json:"grid_y"`
	PlotX    float64 `json:"plot_x_m"`
	PlotY    float64 `json:"plot_y_m"`
	CellSize float64 `json:"cell_m"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page) on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per placed room.
// Each label carries the room name, dimensions, and a QR code encoding the
// room's placement as JSON, laid out on a standard Avery 5160 sheet.
func ExportLabels(path string, plan model.Plan) error {
	labels := CollectLabelInfos(plan)
	if len(labels) == 0 {
		return fmt.Errorf("no rooms placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Room, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d_%d", info.Room, info.GridX, info.GridY)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := info.Room
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.2f x %.2f m  (%.1f m2)", info.Width, info.Depth, info.Area)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pos := fmt.Sprintf("Grid (%d, %d) @ (%.1f, %.1f) m", info.GridX, info.GridY, info.PlotX, info.PlotY)
	pdf.CellFormat(textW, 3, pos, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a plan for use in
// testing or alternative export formats.
func CollectLabelInfos(plan model.Plan) []LabelInfo {
	var labels []LabelInfo
	for _, room := range plan.Layout.Rooms {
		x, y, w, h := plan.WorldRect(room)
		labels = append(labels, LabelInfo{
			Room:     room.Name,
			Width:    w,
			Depth:    h,
			Area:     w * h,
			GridX:    room.GridX,
			GridY:    room.GridY,
			PlotX:    x,
			PlotY:    y,
			CellSize: plan.Grid.CellSize,
		})
	}
	return labels
}
