package salesextract

import (
	"errors"
	"fmt"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/parser"
)

// ErrParseFailure indicates the input could not be decoded as a spreadsheet.
var ErrParseFailure = errors.New("parse failure")

// ErrExtractionFailure indicates a fault while scanning a decoded grid.
var ErrExtractionFailure = errors.New("extraction failure")

// Decoder errors re-exported for errors.Is checks.
var (
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrEmptyWorkbook     = parser.ErrEmptyWorkbook
)

// ParseError represents a file that could not be decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParseFailure, e.Err}
}

// ExtractionError represents a fault during a heuristic pass.
type ExtractionError struct {
	File string
	Pass string // "header", "scalars", "categories", "resolve"
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.File, e.Pass, e.Err)
}

func (e *ExtractionError) Unwrap() []error {
	return []error{ErrExtractionFailure, e.Err}
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(file, pass string, err error) *ExtractionError {
	return &ExtractionError{
		File: file,
		Pass: pass,
		Err:  err,
	}
}
