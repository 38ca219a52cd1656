package source

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteSource reads one table of a SQLite database.
type sqliteSource struct {
	db    *sql.DB
	table string
}

func openSQLite(path, table string) (RowSource, error) {
	if table == "" {
		return nil, fmt.Errorf("SQLite source %s: table is required", path)
	}
	// sql.Open creates the file on first use; a missing source must fail
	// like a missing CSV does.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open SQLite: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open SQLite: %w", err)
	}
	return &sqliteSource{db: db, table: table}, nil
}

func (s *sqliteSource) Column(name string) ([]string, error) {
	col, err := s.findColumn(name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(fmt.Sprintf("SELECT %q FROM %q", col, s.table))
	if err != nil {
		return nil, fmt.Errorf("query table %q: %w", s.table, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v.String)
	}
	return values, rows.Err()
}

// findColumn resolves name to the actual column name, case-insensitively,
// via the table's schema. Also guards the identifier used in the query.
func (s *sqliteSource) findColumn(name string) (string, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%q)", s.table))
	if err != nil {
		return "", fmt.Errorf("table info for %q: %w", s.table, err)
	}
	defer rows.Close()

	var header []string
	for rows.Next() {
		var (
			cid        int
			colName    string
			colType    sql.NullString
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &defaultVal, &pk); err != nil {
			return "", err
		}
		header = append(header, colName)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	if len(header) == 0 {
		return "", fmt.Errorf("table %q not found", s.table)
	}
	idx, err := columnIndex(header, name)
	if err != nil {
		return "", fmt.Errorf("table %q: %w", s.table, err)
	}
	return header[idx], nil
}

func (s *sqliteSource) Close() error { return s.db.Close() }
