// Package ingest turns uploaded tabular sources into enriched delivery
// records and synthetic volume deltas.
package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Table is a fully parsed tabular source. Rows are positional; columns
// are resolved by exact header name after trimming.
type Table struct {
	Source  string
	Headers []string
	Rows    [][]string

	index map[string]int
}

// Column resolves a header name to its position.
func (t *Table) Column(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// RequireColumn resolves a header or fails with enough context to
// identify the offending source.
func (t *Table) RequireColumn(name string) (int, error) {
	idx, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("source %q is missing required column %q", t.Source, name)
	}
	return idx, nil
}

// Value reads a cell, tolerating short rows.
func (t *Table) Value(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func newTable(source string, records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("source %q contains no header row", source)
	}

	headers := make([]string, len(records[0]))
	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
		index[headers[i]] = i
	}

	return &Table{
		Source:  source,
		Headers: headers,
		Rows:    records[1:],
		index:   index,
	}, nil
}

// ParseDelimited parses a source with a known field separator.
func ParseDelimited(r io.Reader, source string, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse source %q: %w", source, err)
	}
	return newTable(source, records)
}

// ParseCSV parses a source whose separator is unknown, sniffing it
// from the header line among the separators spreadsheet exports
// actually use.
func ParseCSV(r io.Reader, source string) (*Table, error) {
	buffered := bufio.NewReader(r)
	header, err := buffered.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read source %q: %w", source, err)
	}
	if header == "" {
		return nil, fmt.Errorf("source %q is empty", source)
	}

	comma := sniffSeparator(header)
	return ParseDelimited(io.MultiReader(strings.NewReader(header), buffered), source, comma)
}

// sniffSeparator picks the candidate separator occurring most often in
// the header line. Comma wins ties, matching the common export
// default.
func sniffSeparator(header string) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := candidates[0]
	bestCount := -1
	for _, c := range candidates {
		if n := strings.Count(header, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}
