// Package output renders quote records for people and machines.
// This package produces CLI tables and JSON documents; it performs no rating.
package output

import (
	"io"
	"strings"

	"motor-premium/core/quote"
	"motor-premium/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderQuote writes one quote record
	RenderQuote(w io.Writer, rec *quote.Record) error

	// RenderBatch writes the outcome of a batch, rejected items included
	RenderBatch(w io.Writer, results []quote.Result) error
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCLI, FormatJSON:
		return f, nil
	default:
		return "", errors.Validation("format", "unsupported output format %q", s)
	}
}

// New returns the formatter for a format name
func New(format string, noColor bool) (Formatter, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == FormatJSON {
		return JSONFormatter{}, nil
	}
	return CLIFormatter{NoColor: noColor}, nil
}

// BatchItem is one batch result with its error flattened to text
type BatchItem struct {
	quote.Result
	Error string `json:"error,omitempty"`
}

// BatchReport summarizes a batch run
type BatchReport struct {
	Items    []BatchItem `json:"items"`
	Quoted   int         `json:"quoted"`
	Rejected int         `json:"rejected"`

	// Total is the sum of the grand totals of the quoted items
	Total int64 `json:"total"`
}

// Summarize builds the report of a batch run
func Summarize(results []quote.Result) BatchReport {
	report := BatchReport{Items: make([]BatchItem, len(results))}
	for i, r := range results {
		report.Items[i] = BatchItem{Result: r}
		if r.Err != nil || r.Record == nil {
			if r.Err != nil {
				report.Items[i].Error = r.Err.Error()
			}
			report.Rejected++
			continue
		}
		report.Quoted++
		report.Total += r.Record.Quote.GrandTotal
	}
	return report
}
