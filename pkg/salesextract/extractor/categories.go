package extractor

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// revenue holds the seven revenue buckets. food and noveltiesBoxed are only
// reported combined as DQ Food.
type revenue struct {
	softServe      float64
	food           float64
	noveltiesBoxed float64
	beverages      float64
	cakes          float64
	breakfast      float64
	ojBeverages    float64
}

// category pairs a lower-case label fragment with its bucket.
type category struct {
	label  string
	bucket func(*revenue) *float64
}

// categories are tried in this order for every populated cell. Labels are
// not exclusive: "oj beverages" also matches "beverage".
var categories = []category{
	{"soft serve", func(r *revenue) *float64 { return &r.softServe }},
	{"food", func(r *revenue) *float64 { return &r.food }},
	{"novelties-boxed", func(r *revenue) *float64 { return &r.noveltiesBoxed }},
	{"beverage", func(r *revenue) *float64 { return &r.beverages }},
	{"cakes", func(r *revenue) *float64 { return &r.cakes }},
	{"breakfast", func(r *revenue) *float64 { return &r.breakfast }},
	{"oj beverages", func(r *revenue) *float64 { return &r.ojBeverages }},
}

// scanCategories fills the revenue buckets from the revenue center table.
func (e *Extractor) scanCategories(s *scan) {
	accept := func(v float64) bool { return v > e.limits.CategoryMinValue }

	last := min(s.bounds.MaxRow, e.limits.CategoryMaxRow)
	for row := s.bounds.MinRow; row <= last; row++ {
		for col := s.bounds.MinCol; col <= s.bounds.MaxCol; col++ {
			cell := s.grid.Cell(row, col)
			if !cell.Populated() {
				continue
			}
			label := strings.ToLower(cell.String())

			for _, c := range categories {
				bucket := c.bucket(&s.revenue)
				if *bucket != 0 || !strings.Contains(label, c.label) {
					continue
				}
				if v, ok := probe(s.grid, row, col, e.limits.CategoryProbe, accept); ok {
					*bucket = v
					s.log.Addf("Found %s: $%s", c.label, humanize.FormatFloat("#,###.##", v))
					e.logger.Debug("revenue category found", "file", s.file, "category", c.label, "value", v, "row", row, "col", col)
				}
			}
		}
	}
}

// bucketDecimals is the decimal form of revenue.
type bucketDecimals struct {
	softServe, food, noveltiesBoxed, beverages, cakes, breakfast, ojBeverages decimal.Decimal
}

func (r revenue) decimals() bucketDecimals {
	return bucketDecimals{
		softServe:      decimal.NewFromFloat(r.softServe),
		food:           decimal.NewFromFloat(r.food),
		noveltiesBoxed: decimal.NewFromFloat(r.noveltiesBoxed),
		beverages:      decimal.NewFromFloat(r.beverages),
		cakes:          decimal.NewFromFloat(r.cakes),
		breakfast:      decimal.NewFromFloat(r.breakfast),
		ojBeverages:    decimal.NewFromFloat(r.ojBeverages),
	}
}

// sum adds all seven buckets.
func (d bucketDecimals) sum() decimal.Decimal {
	return decimal.Sum(d.softServe, d.food, d.noveltiesBoxed, d.beverages, d.cakes, d.breakfast, d.ojBeverages)
}
