package output

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// SampleSheet is the sheet name of the sample workbook.
const SampleSheet = "Sales Summary"

// sampleRows follows the POS sales summary layout. Amounts are numeric cells;
// quantities and percentages are text, as the POS export writes them.
var sampleRows = [][]interface{}{
	{"Sales Summary", "April 2025"},
	{"Store:", "10519 - Raymore, MO - GC"},
	{},
	{"Net Sales", 113551.47},
	{"Order Count:", 8678},
	{},
	{"Revenue Centers"},
	{"Category", "Quantity", "Percent", "Total"},
	{"Beverage", "478", "1.05%", 1193.05},
	{"Cakes", "233", "6.31%", 7165.08},
	{"Food", "6,450", "36.10%", 40987.52},
	{"Novelties-Boxed", "149", "1.63%", 1855.91},
	{"Soft Serve", "11,494", "54.91%", 62349.91},
}

// WriteSample writes a workbook in the expected sales summary layout.
func WriteSample(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SampleSheet); err != nil {
		return err
	}
	for i, row := range sampleRows {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(SampleSheet, cell, &r); err != nil {
			return err
		}
	}
	return f.Write(w)
}
