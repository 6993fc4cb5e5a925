package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads a sheet into a typed grid.
// Numeric cells stay numeric; date-formatted numbers become date cells.
func ExtractCells(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	grid := models.NewGrid()
	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			grid.Set(rowIdx, colIdx, typedValue(f, sheetName, cellName, cellType, raw, date1904))
		}
	}

	return grid, nil
}

// typedValue converts a raw cell value according to its stored type.
func typedValue(f *excelize.File, sheetName, cellName string, cellType excelize.CellType, raw string, date1904 bool) models.Cell {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return models.TextCell(raw)
	case excelize.CellTypeBool:
		if raw == "1" {
			return models.TextCell("TRUE")
		}
		return models.TextCell("FALSE")
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.DateCell(t)
		}
		return models.TextCell(raw)
	}

	// Unset and number types: plain numeric storage.
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.TextCell(raw)
	}
	if isDateStyled(f, sheetName, cellName) {
		if t, err := excelize.ExcelDateToTime(v, date1904); err == nil {
			return models.DateCell(t)
		}
	}
	return models.NumberCell(v)
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isDateStyled reports whether the cell's number format renders a date.
func isDateStyled(f *excelize.File, sheetName, cellName string) bool {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 45 && id <= 47:
		return true
	default:
		return false
	}
}

// isDateFormatCode inspects a custom format code, ignoring quoted literals
// and bracketed sections such as locale and color tags.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	plain := strings.ToLower(b.String())
	return strings.ContainsAny(plain, "yd") || strings.Contains(plain, "mmm")
}
