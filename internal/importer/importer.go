// Package importer reads room request lists from CSV and Excel files.
// It supports automatic delimiter detection and case-insensitive header
// recognition, so spreadsheets exported from other tools import cleanly.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nadzri/plotplan/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Rooms    []model.RoomRequest
	Errors   []string
	Warnings []string
}

// columnMapping maps semantic column roles to their indices in the data.
// A room row needs a name plus either width+height or an area.
type columnMapping struct {
	Name   int
	Width  int
	Height int
	Area   int
	Ratio  int
	Count  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":   {"name", "room", "room name", "label", "description"},
	"width":  {"width", "w", "width (m)", "width m"},
	"height": {"height", "h", "depth", "d", "height (m)", "depth (m)"},
	"area":   {"area", "area (m2)", "area m2", "floor area", "target area"},
	"ratio":  {"ratio", "aspect", "aspect ratio"},
	"count":  {"count", "qty", "quantity", "copies", "num"},
}

// DetectCSVDelimiter determines the most likely CSV delimiter by trying
// comma, semicolon, tab, and pipe. The delimiter producing the most
// consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// detectColumns examines a header row and returns a columnMapping. Matching
// is case-insensitive against known aliases. Returns the mapping and true if
// a header was detected, or a positional name/width/height/count mapping
// and false otherwise.
func detectColumns(row []string) (columnMapping, bool) {
	mapping := columnMapping{Name: -1, Width: -1, Height: -1, Area: -1, Ratio: -1, Count: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "name":
					if mapping.Name == -1 {
						mapping.Name = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "height":
					if mapping.Height == -1 {
						mapping.Height = i
					}
				case "area":
					if mapping.Area == -1 {
						mapping.Area = i
					}
				case "ratio":
					if mapping.Ratio == -1 {
						mapping.Ratio = i
					}
				case "count":
					if mapping.Count == -1 {
						mapping.Count = i
					}
				}
			}
		}
	}

	if !isHeader {
		return columnMapping{Name: 0, Width: 1, Height: 2, Area: -1, Ratio: -1, Count: 3}, false
	}
	return mapping, true
}

// ImportCSV reads room requests from a CSV file.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read file: %v", err))
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot parse CSV: %v", err))
		return result
	}

	return importRows(rows)
}

// ImportExcel reads room requests from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open workbook: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "workbook has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read sheet %q: %v", sheets[0], err))
		return result
	}

	return importRows(rows)
}

// importRows converts raw rows into room requests, skipping the header row
// when one is detected.
func importRows(rows [][]string) ImportResult {
	result := ImportResult{}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "file contains no rows")
		return result
	}

	mapping, hasHeader := detectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		req, err := rowToRequest(row, mapping)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d skipped: %v", i+1, err))
			continue
		}
		result.Rooms = append(result.Rooms, req)
	}

	if len(result.Rooms) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "no usable room rows found")
	}
	return result
}

func rowToRequest(row []string, mapping columnMapping) (model.RoomRequest, error) {
	req := model.RoomRequest{Count: 1}

	req.Name = cellString(row, mapping.Name)
	if req.Name == "" {
		return req, fmt.Errorf("missing room name")
	}

	req.Width = cellFloat(row, mapping.Width)
	req.Height = cellFloat(row, mapping.Height)
	req.Area = cellFloat(row, mapping.Area)
	req.Ratio = cellFloat(row, mapping.Ratio)

	if n := cellFloat(row, mapping.Count); n > 0 {
		req.Count = int(n)
	}

	if !req.Fixed() && req.Area <= 0 {
		return req, fmt.Errorf("need width+height or an area")
	}
	// Fixed dimensions win over a stray area column
	if req.Fixed() {
		req.Area = 0
		req.Ratio = 0
	}
	return req, nil
}

func cellString(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellFloat(row []string, idx int) float64 {
	s := cellString(row, idx)
	if s == "" {
		return 0
	}
	// Tolerate comma decimal separators from localized spreadsheets
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
