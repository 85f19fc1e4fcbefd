// Package output - Terminal tables
package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

// painter applies colors unless disabled
type painter bool

func (p painter) paint(c, text string) string {
	if p {
		return text
	}
	return c + text + reset
}

// visibleWidth counts the runes of s that reach the screen, skipping
// ANSI escape sequences
func visibleWidth(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j + 1
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n++
	}
	return n
}

// Table is a column-aligned text table
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
	// right marks columns aligned to the right
	right []bool
}

// NewTable creates a table
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visibleWidth(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
		right:   make([]bool, len(headers)),
	}
}

// AlignRight right-aligns the given columns
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		if c >= 0 && c < len(t.right) {
			t.right[c] = true
		}
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := visibleWidth(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) line(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" │ ")
		}
		pad := strings.Repeat(" ", t.widths[i]-visibleWidth(cell))
		if t.right[i] {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell + pad)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Render prints the table, with a bold header unless noColor is set
func (t *Table) Render(w io.Writer, noColor bool) {
	p := painter(noColor)
	fmt.Fprintln(w, p.paint(bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, width := range t.widths {
		sep[i] = strings.Repeat("─", width)
	}
	fmt.Fprintln(w, strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		fmt.Fprintln(w, t.line(row))
	}
}
