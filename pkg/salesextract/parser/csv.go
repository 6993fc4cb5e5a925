package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// loadCSV decodes delimited text into a single-sheet grid.
// Input that is not valid UTF-8 is read as Windows-1252.
func loadCSV(data []byte, comma rune) (*models.Grid, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode windows-1252: %w", err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	grid := models.NewGrid()
	rowIdx, lastLine := -1, 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		// One row per record. Blank lines are skipped by the reader; keep
		// them as empty rows.
		line, _ := reader.FieldPos(0)
		rowIdx += max(1, line-lastLine)
		lastLine = recordEndLine(reader, record)
		for colIdx, field := range record {
			grid.Set(rowIdx, colIdx, inferCell(field))
		}
	}
	return grid, nil
}

// recordEndLine returns the physical line the record ends on, counting
// newlines inside a quoted last field.
func recordEndLine(reader *csv.Reader, record []string) int {
	last := len(record) - 1
	line, _ := reader.FieldPos(last)
	return line + strings.Count(record[last], "\n")
}
