package extractor

import (
	"regexp"
	"strings"
)

var (
	// storePattern matches a store line such as "10519 - Raymore, MO - GC".
	storePattern = regexp.MustCompile(`(\d{5})\s*[-–]\s*([^,]+),?\s*([A-Z]{2})`)
	monthPattern = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})`)
)

// scanHeader looks for the store line and the reporting month in the top rows.
// Cells are visited in row-major order; the scan ends at the store line unless
// MonthAfterStore is set.
func (e *Extractor) scanHeader(s *scan) {
	last := min(s.bounds.MaxRow, s.bounds.MinRow+e.limits.HeaderRows-1)
	for row := s.bounds.MinRow; row <= last; row++ {
		for col := s.bounds.MinCol; col <= s.bounds.MaxCol; col++ {
			cell := s.grid.Cell(row, col)
			if cell.IsEmpty() {
				continue
			}
			text := cell.String()

			if s.storeNumber == "" {
				if m := storePattern.FindStringSubmatch(text); m != nil {
					s.storeNumber = m[1]
					s.log.Addf("Found store: %s - %s, %s", m[1], strings.TrimSpace(m[2]), m[3])
					e.logger.Debug("store found", "file", s.file, "store_number", m[1], "row", row, "col", col)
					if !e.limits.MonthAfterStore {
						return
					}
					continue
				}
			}

			if s.month == "" {
				if m := monthPattern.FindStringSubmatch(text); m != nil {
					s.month = m[1] + " " + m[2]
					s.log.Addf("Found month: %s", s.month)
					e.logger.Debug("month found", "file", s.file, "month", s.month, "row", row, "col", col)
				}
			}
		}
		if s.storeNumber != "" && s.month != "" {
			return
		}
	}
}
