package parser

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
)

// maxXLSCols is the BIFF8 column limit.
const maxXLSCols = 256

// loadXLS decodes a legacy BIFF workbook. The decoder formats every cell
// as text, so numeric values are inferred.
func loadXLS(data []byte) (names []string, grid *models.Grid, err error) {
	// The BIFF decoder panics on some truncated streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode xls: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, nil, ErrEmptyWorkbook
	}

	for i := 0; i < wb.NumSheets(); i++ {
		if sheet := wb.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}

	grid = models.NewGrid()
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return names, grid, nil
	}
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheetRow(sheet, r)
		if row == nil {
			continue
		}
		first, last := row.FirstCol(), row.LastCol()
		// Cells written without a ROW record carry no column span.
		if last <= first {
			first, last = 0, maxXLSCols
		}
		for c := first; c < last; c++ {
			grid.Set(r, c, inferCell(row.Col(c)))
		}
	}
	return names, grid, nil
}

// sheetRow returns row r, or nil when the sheet has no such row.
// WorkSheet.Row dereferences the missing row instead of returning nil.
func sheetRow(sheet *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(r)
}
