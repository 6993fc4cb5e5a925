package extractor

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// scanScalars finds the net sales and order count figures. A label is
// followed by its value within ScalarProbe cells on the same row; the first
// labelled value found wins.
func (e *Extractor) scanScalars(s *scan) {
	last := min(s.bounds.MaxRow, e.limits.ScalarMaxRow)
	for row := s.bounds.MinRow; row <= last; row++ {
		for col := s.bounds.MinCol; col <= s.bounds.MaxCol; col++ {
			cell := s.grid.Cell(row, col)
			if !cell.Populated() {
				continue
			}
			label := strings.ToLower(cell.String())

			if strings.Contains(label, "net sales") && s.netSales == 0 {
				if v, ok := probe(s.grid, row, col, e.limits.ScalarProbe, nil); ok {
					s.netSales = v
					s.log.Addf("Found Net Sales: $%s", humanize.FormatFloat("#,###.##", v))
					e.logger.Debug("net sales found", "file", s.file, "value", v, "row", row, "col", col)
				}
			}

			if strings.Contains(label, "order count") && s.orderCount == 0 {
				if v, ok := probe(s.grid, row, col, e.limits.ScalarProbe, nil); ok {
					s.orderCount = v
					s.log.Addf("Found Order Count: %s", humanize.FormatFloat("#,###.", v))
					e.logger.Debug("order count found", "file", s.file, "value", v, "row", row, "col", col)
				}
			}
		}
	}
}
