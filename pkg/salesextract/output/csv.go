package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
)

// WriteCSV writes the summary table, header first.
func WriteCSV(w io.Writer, records []models.StoreRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, rec := range records {
		if err := writer.Write(tableRow(rec)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
