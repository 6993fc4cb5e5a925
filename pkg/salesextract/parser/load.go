// Package parser decodes spreadsheet files into typed cell grids.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat indicates the file is neither a workbook nor delimited text.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrEmptyWorkbook indicates the workbook has no sheets.
var ErrEmptyWorkbook = errors.New("workbook has no sheets")

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat picks a decoder from the file extension, falling back to
// the leading magic bytes when the extension is unknown.
func DetectFormat(name string, data []byte) (models.Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return models.FormatXLSX, nil
	case ".xls":
		return models.FormatXLS, nil
	case ".csv", ".tsv", ".txt":
		return models.FormatCSV, nil
	}

	switch {
	case bytes.HasPrefix(data, zipMagic):
		return models.FormatXLSX, nil
	case bytes.HasPrefix(data, oleMagic):
		return models.FormatXLS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
}

// Load decodes raw file bytes into a workbook holding the first sheet's grid.
func Load(name string, data []byte) (*models.Workbook, error) {
	format, err := DetectFormat(name, data)
	if err != nil {
		return nil, err
	}

	wb := &models.Workbook{
		Name:   filepath.Base(name),
		Format: format,
	}

	switch format {
	case models.FormatXLSX:
		wb.SheetNames, wb.Grid, err = loadXLSX(data)
	case models.FormatXLS:
		wb.SheetNames, wb.Grid, err = loadXLS(data)
	case models.FormatCSV:
		comma := ','
		if strings.EqualFold(filepath.Ext(name), ".tsv") {
			comma = '\t'
		}
		wb.SheetNames = []string{strings.TrimSuffix(wb.Name, filepath.Ext(wb.Name))}
		wb.Grid, err = loadCSV(data, comma)
	}
	if err != nil {
		return nil, err
	}
	return wb, nil
}

func loadXLSX(data []byte) ([]string, *models.Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, nil, ErrEmptyWorkbook
	}

	grid, err := ExtractCells(f, sheetList[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheetList[0], err)
	}
	return sheetList, grid, nil
}
