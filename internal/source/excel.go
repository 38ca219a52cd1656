package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// excelSource reads the first sheet of an .xlsx workbook; the first row is
// the header.
type excelSource struct {
	header []string
	rows   [][]string
}

func openExcel(path string) (RowSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel %s: no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Excel %s: empty sheet", path)
	}
	return &excelSource{header: rows[0], rows: rows[1:]}, nil
}

func (s *excelSource) Column(name string) ([]string, error) {
	idx, err := columnIndex(s.header, name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(s.rows))
	for i, row := range s.rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, nil
}

func (s *excelSource) Close() error { return nil }
