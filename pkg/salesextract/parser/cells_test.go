package parser

import (
	"testing"
	"time"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Set some test data
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "113551.47")
	f.SetCellValue(sheetName, "D5", 45748)

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "D5", "D5", dateStyle); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	grid, err := ExtractCells(f, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	bounds, ok := grid.Bounds()
	if !ok {
		t.Fatal("Expected non-empty grid")
	}
	if bounds != (models.Bounds{MinRow: 0, MaxRow: 4, MinCol: 0, MaxCol: 3}) {
		t.Errorf("Unexpected bounds %+v", bounds)
	}

	if c := grid.Cell(0, 0); c.Kind != models.CellText || c.Text != "Header1" {
		t.Errorf("Expected text 'Header1', got %+v", c)
	}

	// Check numeric values
	if v, ok := grid.Cell(1, 0).Float(); !ok || v != 100 {
		t.Errorf("Expected number 100, got %+v", grid.Cell(1, 0))
	}
	if v, ok := grid.Cell(1, 1).Float(); !ok || v != 200.5 {
		t.Errorf("Expected number 200.5, got %+v", grid.Cell(1, 1))
	}

	// Numeric-looking strings stay text
	if c := grid.Cell(2, 0); c.Kind != models.CellText {
		t.Errorf("Expected text cell for string value, got %v", c.Kind)
	}

	// Date-formatted numbers become dates
	c := grid.Cell(4, 3)
	if c.Kind != models.CellDate {
		t.Fatalf("Expected date cell, got %v", c.Kind)
	}
	if !c.Date.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 2025-04-01, got %v", c.Date)
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"mm-dd-yy", true},
		{"[$-409]mmmm yyyy;@", true},
		{"d-mmm", true},
		{"$#,##0.00", false},
		{"#,##0", false},
		{`"Day "0`, false},
		{"[Red]0.00", false},
		{"General", false},
	}

	for _, tt := range tests {
		if got := isDateFormatCode(tt.code); got != tt.expected {
			t.Errorf("isDateFormatCode(%q) = %v, expected %v", tt.code, got, tt.expected)
		}
	}
}
