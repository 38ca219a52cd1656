package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// csvSource reads a comma-separated file with a header row.
type csvSource struct {
	header []string
	rows   [][]string
}

func openCSV(path string) (RowSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Rows with a different field count than the header are common in the
	// public datasets; read them anyway and pad on access.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV %s: empty file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		rows = append(rows, row)
	}
	return &csvSource{header: header, rows: rows}, nil
}

func (s *csvSource) Column(name string) ([]string, error) {
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

func (s *csvSource) Close() error { return nil }
