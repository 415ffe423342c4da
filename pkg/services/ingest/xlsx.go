package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first sheet of an xlsx workbook into a Table.
// The first row is taken as the header row, matching how the same
// reports arrive as CSV exports.
func ParseXLSX(r io.Reader, source string) (*Table, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", source, err)
	}
	defer func() { _ = book.Close() }()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %q has no sheets", source)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %q: %w", sheets[0], source, err)
	}

	return newTable(source, rows)
}
