package salesextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/extractor"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/parser"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/ukaji3/salesextract-go/pkg/salesextract"

// Input is one named spreadsheet file.
type Input struct {
	Name string
	Data []byte
}

// FileFailure records a file excluded from the result.
type FileFailure struct {
	File string `json:"file"`
	Err  error  `json:"-"`
	// Message is Err rendered for serialization.
	Message string `json:"error"`
}

// Result is the outcome of a batch.
type Result struct {
	// RunID identifies the batch in structured logs.
	RunID string `json:"run_id"`
	// Records holds one record per successful file in input order,
	// followed by the totals row when at least one file succeeded.
	Records []models.StoreRecord `json:"records"`
	// Log is the operator-facing log of the whole batch.
	Log []string `json:"log"`
	// Failures lists the skipped files.
	Failures []FileFailure `json:"failures,omitempty"`
}

// Stores returns the per-file records without the totals row.
func (r *Result) Stores() []models.StoreRecord {
	if n := len(r.Records); n > 0 && r.Records[n-1].IsTotals() {
		return r.Records[:n-1]
	}
	return r.Records
}

// Totals returns the totals row, if any.
func (r *Result) Totals() (models.StoreRecord, bool) {
	if n := len(r.Records); n > 0 && r.Records[n-1].IsTotals() {
		return r.Records[n-1], true
	}
	return models.StoreRecord{}, false
}

// ReadFiles loads the named files from disk.
func ReadFiles(paths []string) ([]Input, error) {
	inputs := make([]Input, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		inputs = append(inputs, Input{Name: filepath.Base(p), Data: data})
	}
	return inputs, nil
}

// Extract processes inputs one at a time, in order, and appends a totals row.
// A file that fails to decode or scan is logged and skipped. The only errors
// returned are invalid options and context cancellation between files.
func Extract(ctx context.Context, inputs []Input, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	res := &Result{RunID: opts.RunID}
	if res.RunID == "" {
		res.RunID = uuid.NewString()
	}
	logger := opts.logger()
	ext := extractor.New(opts.stores(), opts.Limits, logger)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "salesextract.Extract",
		trace.WithAttributes(attribute.String("run_id", res.RunID), attribute.Int("files", len(inputs))))
	defer span.End()

	logger.InfoContext(ctx, "extraction started", "files", len(inputs))

	var records []models.StoreRecord
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			return nil, err
		}

		rec, entries, err := extractFile(ctx, ext, in, opts.Metrics, logger)
		res.Log = append(res.Log, entries...)
		if err != nil {
			res.Failures = append(res.Failures, FileFailure{File: in.Name, Err: err, Message: err.Error()})
			continue
		}
		records = append(records, rec)
	}

	if totals, ok := Aggregate(records); ok {
		records = append(records, totals)
		res.Log = append(res.Log, fmt.Sprintf("Generated totals for %d stores", len(records)-1))
	}
	res.Records = records

	logger.InfoContext(ctx, "extraction finished",
		"succeeded", len(res.Stores()),
		"failed", len(res.Failures))
	return res, nil
}

// ExtractFile decodes and scans a single file.
func ExtractFile(ctx context.Context, in Input, opts Options) (models.StoreRecord, []string, error) {
	if err := opts.Validate(); err != nil {
		return models.StoreRecord{}, nil, err
	}
	logger := opts.logger()
	ext := extractor.New(opts.stores(), opts.Limits, logger)
	return extractFile(ctx, ext, in, opts.Metrics, logger)
}

func extractFile(ctx context.Context, ext *extractor.Extractor, in Input, metrics *Metrics, logger *slog.Logger) (models.StoreRecord, []string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "salesextract.ExtractFile",
		trace.WithAttributes(attribute.String("file", in.Name)))
	defer span.End()

	start := time.Now()
	log := &models.ExtractionLog{}

	wb, err := load(in)
	if err != nil {
		perr := &ParseError{File: in.Name, Err: err}
		log.Addf("Error reading %s: %v", in.Name, err)
		logger.WarnContext(ctx, "file could not be decoded", "file", in.Name, "error", err)
		metrics.observe(StatusParseFailure, time.Since(start).Seconds())
		span.RecordError(perr)
		span.SetStatus(codes.Error, "parse failure")
		return models.StoreRecord{}, log.Entries(), perr
	}
	span.SetAttributes(attribute.String("format", string(wb.Format)))

	rec, entries, err := ext.Extract(in.Name, wb)
	log.Append(entries...)
	if err != nil {
		pass := ""
		var passErr *extractor.PassError
		if errors.As(err, &passErr) {
			pass = passErr.Pass
			err = passErr.Err
		}
		eerr := NewExtractionError(in.Name, pass, err)
		log.Addf("Failed to process %s: %v", in.Name, eerr.Err)
		logger.WarnContext(ctx, "file could not be scanned", "file", in.Name, "pass", pass, "error", err)
		metrics.observe(StatusExtractionFailure, time.Since(start).Seconds())
		span.RecordError(eerr)
		span.SetStatus(codes.Error, "extraction failure")
		return models.StoreRecord{}, log.Entries(), eerr
	}

	log.Addf("Successfully processed %s", in.Name)
	logger.InfoContext(ctx, "file processed",
		"file", in.Name,
		"store_number", rec.StoreNumber,
		"month", rec.Month,
		"total_sales", rec.TotalSales.String())
	metrics.observe(StatusSuccess, time.Since(start).Seconds())
	metrics.recordFields(rec)
	return rec, log.Entries(), nil
}

// load decodes in, converting decoder panics into errors.
func load(in Input) (wb *models.Workbook, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return parser.Load(in.Name, in.Data)
}
