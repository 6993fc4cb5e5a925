package models

// Format identifies the decoder used for a workbook.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

// Workbook is a decoded spreadsheet file reduced to its first sheet.
type Workbook struct {
	// Name is the source file name (no path).
	Name string `json:"name"`
	// Format is the decoder that produced the grid.
	Format Format `json:"format"`
	// SheetNames lists every sheet in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Grid holds the cells of the first sheet.
	Grid *Grid `json:"-"`
}
