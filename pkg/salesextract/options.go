// Package salesextract extracts store sales figures from POS sales summary spreadsheets.
package salesextract

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/extractor"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/stores"
)

// Options configures extraction behavior.
type Options struct {
	// Limits bounds the heuristic scans.
	Limits extractor.Limits
	// Stores resolves store numbers to addresses.
	// If nil, the built-in store table is used.
	Stores extractor.AddressResolver
	// Logger receives structured logs. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Metrics records per-file outcomes. Optional.
	Metrics *Metrics
	// RunID identifies the batch. If empty, a random UUID is used.
	RunID string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Limits: extractor.DefaultLimits(),
	}
}

// Validate checks the scan limits.
func (o Options) Validate() error {
	if err := validator.New().Struct(o.Limits); err != nil {
		return fmt.Errorf("invalid limits: %w", err)
	}
	return nil
}

func (o Options) stores() extractor.AddressResolver {
	if o.Stores != nil {
		return o.Stores
	}
	return stores.Default()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
