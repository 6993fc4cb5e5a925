package extractor

// Limits bounds the heuristic scans.
type Limits struct {
	// HeaderRows is how many rows from the top of the grid are searched for
	// the store line and the reporting month.
	HeaderRows int `validate:"gte=1"`
	// ScalarMaxRow is the last row (0-based, inclusive) searched for
	// "net sales" and "order count" labels.
	ScalarMaxRow int `validate:"gte=0"`
	// CategoryMaxRow is the last row (0-based, inclusive) searched for
	// revenue category labels.
	CategoryMaxRow int `validate:"gte=0"`
	// ScalarProbe is how many cells to the right of a scalar label are probed.
	ScalarProbe int `validate:"gte=1"`
	// CategoryProbe is how many cells to the right of a category label are probed.
	CategoryProbe int `validate:"gte=1"`
	// CategoryMinValue rejects category candidates at or below this amount,
	// which filters out quantity and percent columns.
	CategoryMinValue float64 `validate:"gte=0"`
	// MonthAfterStore keeps searching the header rows for the month after the
	// store line was found. By default the header scan ends at the store line.
	MonthAfterStore bool
}

// DefaultLimits returns the limits matching the POS summary layout.
func DefaultLimits() Limits {
	return Limits{
		HeaderRows:       10,
		ScalarMaxRow:     50,
		CategoryMaxRow:   100,
		ScalarProbe:      3,
		CategoryProbe:    5,
		CategoryMinValue: 100,
	}
}
