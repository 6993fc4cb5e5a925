package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the sheet name of the summary workbook.
const SummarySheet = "Summary"

var currencyFormat = "$#,##0.00"

// WriteXLSX writes the summary table as a workbook. The totals row is bold.
func WriteXLSX(w io.Writer, records []models.StoreRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat})
	if err != nil {
		return err
	}
	boldMoney, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &currencyFormat})
	if err != nil {
		return err
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Headers))
	if err := f.SetCellStyle(SummarySheet, "A1", lastCol+"1", bold); err != nil {
		return err
	}

	for i, rec := range records {
		rowNum := i + 2
		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		row := []interface{}{
			rec.StoreNumber,
			rec.StoreAddress,
			rec.DairyQueen.InexactFloat64(),
			rec.DQFood.InexactFloat64(),
			rec.Beverages.InexactFloat64(),
			rec.Breakfast.InexactFloat64(),
			rec.Cakes.InexactFloat64(),
			rec.OJBeverages.InexactFloat64(),
			rec.TransactionCount,
			rec.NetSalesWithDonations.InexactFloat64(),
			rec.TotalSales.InexactFloat64(),
			rec.Month,
			rec.Filename,
		}
		if err := f.SetSheetRow(SummarySheet, start, &row); err != nil {
			return fmt.Errorf("write row %d: %w", rowNum, err)
		}

		style, textStyle := money, 0
		if rec.IsTotals() {
			style, textStyle = boldMoney, bold
		}
		if textStyle != 0 {
			end, _ := excelize.CoordinatesToCellName(len(Headers), rowNum)
			if err := f.SetCellStyle(SummarySheet, start, end, textStyle); err != nil {
				return err
			}
		}
		for _, col := range []string{"C", "D", "E", "F", "G", "H", "J", "K"} {
			cell := fmt.Sprintf("%s%d", col, rowNum)
			if err := f.SetCellStyle(SummarySheet, cell, cell, style); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(SummarySheet, "A", lastCol, 16); err != nil {
		return err
	}
	return f.Write(w)
}
