// Package source provides row-oriented readers for the tabular name sources.
// The loader depends only on the RowSource abstraction, not on a specific
// file format.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RowSource is an open row-oriented data source with named columns.
type RowSource interface {
	// Column returns every value of the named column in row order,
	// excluding the header. Returns an error if the column is absent.
	Column(name string) ([]string, error)
	Close() error
}

// Open opens the source at path, dispatching on the file extension.
// CSV (.csv), Excel (.xlsx), and SQLite (.db, .sqlite, .sqlite3) are
// supported; table names the SQLite table to read and is ignored otherwise.
func Open(path, table string) (RowSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return openCSV(path)
	case ".xlsx":
		return openExcel(path)
	case ".db", ".sqlite", ".sqlite3":
		return openSQLite(path, table)
	default:
		return nil, fmt.Errorf("unsupported source format: %s", path)
	}
}

// columnIndex finds name in header, case-insensitively.
func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found", name)
}
