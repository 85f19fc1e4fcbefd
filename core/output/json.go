// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"motor-premium/core/quote"
)

// JSONFormatter writes indented JSON
type JSONFormatter struct{}

// Format implements Formatter
func (JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderQuote implements Formatter
func (JSONFormatter) RenderQuote(w io.Writer, rec *quote.Record) error {
	return WriteJSON(w, rec)
}

// RenderBatch implements Formatter
func (JSONFormatter) RenderBatch(w io.Writer, results []quote.Result) error {
	return WriteJSON(w, Summarize(results))
}

// WriteJSON encodes v with two-space indentation
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
