// Package extractor locates sales figures in a loosely laid out sales summary grid.
//
// Each pass is best effort: a figure that cannot be found keeps its zero value
// and only the success log line is missing.
package extractor

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
)

// Pass names used in PassError.
const (
	PassHeader     = "header"
	PassScalars    = "scalars"
	PassCategories = "categories"
	PassResolve    = "resolve"
)

// AddressResolver maps a store number to an address.
type AddressResolver interface {
	Resolve(storeNumber string) string
}

// PassError is a fault recovered while running a pass.
type PassError struct {
	Pass string
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("%s pass: %v", e.Pass, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

// Extractor runs the heuristic passes over a workbook grid.
type Extractor struct {
	limits Limits
	stores AddressResolver
	logger *slog.Logger
}

// New creates an Extractor. A nil logger discards structured logs.
func New(stores AddressResolver, limits Limits, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{limits: limits, stores: stores, logger: logger}
}

// scan holds the working state of one extraction.
type scan struct {
	file        string
	grid        *models.Grid
	bounds      models.Bounds
	log         *models.ExtractionLog
	storeNumber string
	month       string
	netSales    float64
	orderCount  float64
	revenue     revenue
}

// Extract runs every pass over the first sheet of wb and returns the record
// together with the log of what was found. Faults inside a pass are returned
// as *PassError along with the log collected so far.
func (e *Extractor) Extract(filename string, wb *models.Workbook) (rec models.StoreRecord, entries []string, err error) {
	log := &models.ExtractionLog{}
	log.Addf("Processing: %s", filename)

	pass := PassHeader
	defer func() {
		if r := recover(); r != nil {
			err = &PassError{Pass: pass, Err: fmt.Errorf("%v", r)}
			log.Addf("Error: %v", err)
			e.logger.Error("extraction pass failed", "file", filename, "pass", pass, "error", err)
			rec, entries = models.StoreRecord{}, log.Entries()
		}
	}()

	log.Addf("Found sheets: %s", strings.Join(wb.SheetNames, ", "))

	s := &scan{file: filename, grid: wb.Grid, log: log}
	if s.grid == nil {
		s.grid = models.NewGrid()
	}
	if b, ok := s.grid.Bounds(); ok {
		s.bounds = b

		e.scanHeader(s)
		pass = PassScalars
		e.scanScalars(s)
		pass = PassCategories
		e.scanCategories(s)
	} else {
		e.logger.Debug("empty grid", "file", filename)
	}

	pass = PassResolve
	rec = e.record(s)
	log.Addf("Extraction completed successfully")
	return rec, log.Entries(), nil
}

// record derives the output record from the scan state.
func (e *Extractor) record(s *scan) models.StoreRecord {
	r := s.revenue.decimals()
	netSales := decimal.NewFromFloat(s.netSales)
	return models.StoreRecord{
		Filename:              s.file,
		Month:                 s.month,
		StoreNumber:           s.storeNumber,
		StoreAddress:          e.stores.Resolve(s.storeNumber),
		DairyQueen:            r.softServe,
		DQFood:                r.food.Add(r.noveltiesBoxed),
		Beverages:             r.beverages,
		Breakfast:             r.breakfast,
		Cakes:                 r.cakes,
		OJBeverages:           r.ojBeverages,
		TransactionCount:      int64(math.Round(s.orderCount)),
		NetSalesWithDonations: netSales,
		TotalSales:            decimal.Max(r.sum(), netSales),
	}
}

// probe returns the first numeric cell among the n cells right of (row, col)
// that satisfies accept.
func probe(g *models.Grid, row, col, n int, accept func(float64) bool) (float64, bool) {
	for offset := 1; offset <= n; offset++ {
		v, ok := g.Cell(row, col+offset).Float()
		if ok && (accept == nil || accept(v)) {
			return v, true
		}
	}
	return 0, false
}
