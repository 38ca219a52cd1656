package source

import (
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenCSV(t *testing.T) {
	path := writeCSV(t, "id,name,state\n1,Harvard University,MA\n2,Yale University,CT\n")
	src, err := Open(path, "")
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	got, err := src.Column("name")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Harvard University", "Yale University"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}
}

func TestOpenCSV_columnCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "ID,Name\n1,Harvard University\n")
	src, err := Open(path, "")
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	got, err := src.Column("name")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "Harvard University" {
		t.Errorf("column = %v", got)
	}
}

func TestOpenCSV_missingColumn(t *testing.T) {
	path := writeCSV(t, "id,name\n1,Harvard University\n")
	src, err := Open(path, "")
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	if _, err := src.Column("institution"); err == nil {
		t.Error("expected error for missing column")
	}
}

func TestOpenCSV_raggedRows(t *testing.T) {
	path := writeCSV(t, "id,name,state\n1,Harvard University\n2,Yale University,CT,extra\n")
	src, err := Open(path, "")
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	got, err := src.Column("name")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Harvard University", "Yale University"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}
}

func TestOpenCSV_missingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.csv"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOpen_unsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.parquet")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path, ""); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestOpenExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "name")
	_ = f.SetCellValue(sheet, "B1", "city")
	_ = f.SetCellValue(sheet, "A2", "Mayo Clinic")
	_ = f.SetCellValue(sheet, "B2", "Rochester")
	_ = f.SetCellValue(sheet, "A3", "Cleveland Clinic")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	src, err := Open(path, "")
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	got, err := src.Column("name")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Mayo Clinic", "Cleveland Clinic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}
}

func makeSQLiteFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "banks.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE banks (id INTEGER PRIMARY KEY, bank_name TEXT)`); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Bank of America", "Wells Fargo"} {
		if _, err := db.Exec(`INSERT INTO banks (bank_name) VALUES (?)`, name); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestOpenSQLite(t *testing.T) {
	path := makeSQLiteFixture(t)
	src, err := Open(path, "banks")
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	got, err := src.Column("bank_name")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Bank of America", "Wells Fargo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}
}

func TestOpenSQLite_missingTableName(t *testing.T) {
	path := makeSQLiteFixture(t)
	if _, err := Open(path, ""); err == nil {
		t.Error("expected error when table is not configured")
	}
}

func TestOpenSQLite_unknownTable(t *testing.T) {
	path := makeSQLiteFixture(t)
	src, err := Open(path, "missing")
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	if _, err := src.Column("bank_name"); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestOpenSQLite_missingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.db"), "banks"); err == nil {
		t.Error("expected error for missing database file")
	}
}
