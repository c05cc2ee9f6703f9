package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	apperrors "lead-portal-backend/internal/errors"
)

// placeholder tokens that mean "no value" in CRM exports
var absentTokens = map[string]bool{
	"":     true,
	"nan":  true,
	"na":   true,
	"<na>": true,
}

// Table is a cleaned tabular record source. Cells are nil when the source
// held no value; columns that were empty on every row are dropped.
type Table struct {
	Columns []string
	Rows    []Row

	index map[string]int
}

// Row is one cleaned record. Cells align with the table's columns.
type Row struct {
	table *Table
	cells []*string
}

// Get returns the cell for the named column, or nil when the column is
// unknown or the cell holds no value.
func (r Row) Get(column string) *string {
	i, ok := r.table.index[column]
	if !ok {
		return nil
	}
	return r.cells[i]
}

// ParseCSV reads a comma-separated source with a header row and produces a
// normalized table:
//   - column names are trimmed of surrounding whitespace
//   - cells are trimmed; empty, "nan", "na" and "<na>" become nil
//   - exact-duplicate rows are dropped, keeping the first occurrence
//   - columns that are nil across all rows are dropped
//
// Malformed cells never raise an error; absence is represented, not dropped.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyCSV
	}

	header := records[0]
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	// Normalize cells and drop exact-duplicate rows.
	seen := make(map[string]bool)
	var rows [][]*string
	for _, record := range records[1:] {
		cells := make([]*string, len(columns))
		for i := range columns {
			if i < len(record) {
				cells[i] = normalizeCell(record[i])
			}
		}

		key := rowKey(cells)
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, cells)
	}

	// Identify columns with at least one value.
	keep := make([]int, 0, len(columns))
	for i := range columns {
		for _, cells := range rows {
			if cells[i] != nil {
				keep = append(keep, i)
				break
			}
		}
	}

	table := &Table{
		Columns: make([]string, len(keep)),
		index:   make(map[string]int, len(keep)),
	}
	for j, i := range keep {
		table.Columns[j] = columns[i]
		table.index[columns[i]] = j
	}
	for _, cells := range rows {
		kept := make([]*string, len(keep))
		for j, i := range keep {
			kept[j] = cells[i]
		}
		table.Rows = append(table.Rows, Row{table: table, cells: kept})
	}

	return table, nil
}

// normalizeCell trims a raw cell and maps placeholder tokens to nil
func normalizeCell(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if absentTokens[strings.ToLower(trimmed)] {
		return nil
	}
	return &trimmed
}

// rowKey builds a dedup key distinguishing nil from empty cells
func rowKey(cells []*string) string {
	var b strings.Builder
	for _, c := range cells {
		if c == nil {
			b.WriteString("\x00")
		} else {
			b.WriteString(*c)
		}
		b.WriteString("\x1f")
	}
	return b.String()
}
