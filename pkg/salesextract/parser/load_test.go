package parser

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
	"github.com/xuri/excelize/v2"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected models.Format
		wantErr  bool
	}{
		{"april.xlsx", nil, models.FormatXLSX, false},
		{"APRIL.XLSM", nil, models.FormatXLSX, false},
		{"legacy.xls", nil, models.FormatXLS, false},
		{"export.csv", nil, models.FormatCSV, false},
		{"export.tsv", nil, models.FormatCSV, false},
		{"download", []byte("PK\x03\x04rest"), models.FormatXLSX, false},
		{"download", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}, models.FormatXLS, false},
		{"report.pdf", []byte("%PDF-1.7"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.name, tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "B1", "10519 - Raymore, MO - GC")
	f.SetCellValue("Sheet1", "A4", "Net Sales")
	f.SetCellValue("Sheet1", "B4", 113551.47)
	_, err := f.NewSheet("Notes")
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	wb, err := Load("dir/april.xlsx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "april.xlsx", wb.Name)
	assert.Equal(t, models.FormatXLSX, wb.Format)
	assert.Equal(t, []string{"Sheet1", "Notes"}, wb.SheetNames)
	assert.Equal(t, "10519 - Raymore, MO - GC", wb.Grid.Cell(0, 1).Text)

	v, ok := wb.Grid.Cell(3, 1).Float()
	assert.True(t, ok)
	assert.Equal(t, 113551.47, v)
}

func TestLoadRejectsCorruptWorkbooks(t *testing.T) {
	_, err := Load("broken.xlsx", []byte("not a workbook"))
	assert.Error(t, err)

	_, err = Load("broken.xls", []byte("not a workbook either"))
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	data := []byte("Sales Summary,April 2025\n" +
		"Store:,10519 - Raymore MO\n" +
		"\n" +
		"Net Sales,\"$113,551.47\"\n" +
		"Order Count:,\"8,678\"\n" +
		"Beverage,478,1.05%,(12.50)\n")

	wb, err := Load("april.csv", data)
	require.NoError(t, err)
	assert.Equal(t, models.FormatCSV, wb.Format)
	assert.Equal(t, []string{"april"}, wb.SheetNames)

	// The blank line keeps its row.
	assert.Equal(t, "Net Sales", wb.Grid.Cell(3, 0).Text)

	net, ok := wb.Grid.Cell(3, 1).Float()
	require.True(t, ok)
	assert.Equal(t, 113551.47, net)

	count, ok := wb.Grid.Cell(4, 1).Float()
	require.True(t, ok)
	assert.Equal(t, 8678.0, count)

	pct, ok := wb.Grid.Cell(5, 2).Float()
	require.True(t, ok)
	assert.InDelta(t, 0.0105, pct, 1e-9)

	neg, ok := wb.Grid.Cell(5, 3).Float()
	require.True(t, ok)
	assert.Equal(t, -12.5, neg)
}

func TestLoadCSVMultiLineField(t *testing.T) {
	data := []byte("\"Sales Summary\nApril 2025\r\nGenerated 05/01/2025\",Page 1\n" +
		"Store:,10519 - Raymore, MO - GC\n" +
		"\n" +
		"Net Sales,\"$113,551.47\"\n")

	wb, err := Load("april.csv", data)
	require.NoError(t, err)

	assert.Equal(t, "Sales Summary\nApril 2025\nGenerated 05/01/2025", wb.Grid.Cell(0, 0).Text)
	assert.Equal(t, "Page 1", wb.Grid.Cell(0, 1).Text)
	assert.Equal(t, "Store:", wb.Grid.Cell(1, 0).Text)
	assert.Equal(t, "Net Sales", wb.Grid.Cell(3, 0).Text)
	bounds, ok := wb.Grid.Bounds()
	require.True(t, ok)
	assert.Equal(t, 3, bounds.MaxRow)
}

func TestLoadXLS(t *testing.T) {
	data, err := os.ReadFile("testdata/sales_summary.xls")
	require.NoError(t, err)

	wb, err := Load("testdata/sales_summary.xls", data)
	require.NoError(t, err)
	assert.Equal(t, "sales_summary.xls", wb.Name)
	assert.Equal(t, models.FormatXLS, wb.Format)
	assert.Equal(t, []string{"Sales Summary", "Notes"}, wb.SheetNames)

	assert.Equal(t, "Sales Summary", wb.Grid.Cell(0, 0).Text)
	assert.Equal(t, "10519 - Raymore, MO - GC", wb.Grid.Cell(1, 1).Text)
	assert.True(t, wb.Grid.Cell(2, 0).IsEmpty())

	net, ok := wb.Grid.Cell(3, 1).Float()
	require.True(t, ok)
	assert.Equal(t, 113551.47, net)

	count, ok := wb.Grid.Cell(4, 1).Float()
	require.True(t, ok)
	assert.Equal(t, 8678.0, count)

	// Last column of a row whose span ends at column 4 exclusive.
	bev, ok := wb.Grid.Cell(8, 3).Float()
	require.True(t, ok)
	assert.Equal(t, 1193.05, bev)

	// Row 9 has cells but no ROW record.
	assert.Equal(t, "Soft Serve", wb.Grid.Cell(9, 0).Text)
	soft, ok := wb.Grid.Cell(9, 3).Float()
	require.True(t, ok)
	assert.Equal(t, 62349.91, soft)

	bounds, ok := wb.Grid.Bounds()
	require.True(t, ok)
	assert.Equal(t, models.Bounds{MinRow: 0, MaxRow: 9, MinCol: 0, MaxCol: 3}, bounds)
}

func TestLoadTSVAndWindows1252(t *testing.T) {
	data := []byte("Caf\xe9\t250.5\n")

	wb, err := Load("cafe.tsv", data)
	require.NoError(t, err)
	assert.Equal(t, "Café", wb.Grid.Cell(0, 0).Text)
	v, ok := wb.Grid.Cell(0, 1).Float()
	require.True(t, ok)
	assert.Equal(t, 250.5, v)
}

func TestLoadCSVStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Net Sales,100")...)
	wb, err := Load("bom.csv", data)
	require.NoError(t, err)
	assert.Equal(t, "Net Sales", wb.Grid.Cell(0, 0).Text)
}

func TestInferCell(t *testing.T) {
	tests := []struct {
		input    string
		kind     models.CellKind
		expected float64
	}{
		{"123", models.CellNumber, 123},
		{"-45.67", models.CellNumber, -45.67},
		{"8,678", models.CellNumber, 8678},
		{"$1,193.05", models.CellNumber, 1193.05},
		{"$-5", models.CellNumber, -5},
		{"(12.50)", models.CellNumber, -12.5},
		{"  42  ", models.CellNumber, 42},
		{"abc", models.CellText, 0},
		{"10519 - Raymore, MO", models.CellText, 0},
		{"12,34", models.CellText, 0},
		{"(12.50", models.CellText, 0},
		{"-", models.CellText, 0},
		{"NaN", models.CellText, 0},
		{"Inf", models.CellText, 0},
		{"", models.CellEmpty, 0},
	}

	for _, tt := range tests {
		got := inferCell(tt.input)
		if got.Kind != tt.kind {
			t.Errorf("inferCell(%q).Kind = %v, expected %v", tt.input, got.Kind, tt.kind)
			continue
		}
		if tt.kind == models.CellNumber && got.Number != tt.expected {
			t.Errorf("inferCell(%q) = %v, expected %v", tt.input, got.Number, tt.expected)
		}
	}
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("slides.pptx.bak", bytes.Repeat([]byte{0x01}, 16))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
