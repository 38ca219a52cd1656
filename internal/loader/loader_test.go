package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/dictionary"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/trie"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_singleSource(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "universities.csv",
		"id,name\n1,Harvard University\n2,  Yale   University \n3,\n")

	idx := trie.New()
	dict := dictionary.New()
	report, err := New(nil).Load([]Source{
		{Path: path, Type: models.TypeEducational, NameColumn: "name"},
	}, idx, dict)
	if err != nil {
		t.Fatal(err)
	}

	if report.TotalRecords != 2 {
		t.Errorf("total records = %d, want 2", report.TotalRecords)
	}
	sr := report.Sources[0]
	if sr.Loaded != 2 || sr.Skipped != 1 {
		t.Errorf("source report = %+v", sr)
	}
	if idx.Size() != 2 {
		t.Errorf("trie size = %d, want 2", idx.Size())
	}

	// Whitespace collapses during normalization; the full name keeps the
	// original spelling minus outer whitespace.
	recs := idx.ExactLookup("yale university")
	if len(recs) != 1 {
		t.Fatalf("yale lookup = %d records", len(recs))
	}
	if recs[0].FullName != "Yale   University" {
		t.Errorf("full name = %q", recs[0].FullName)
	}

	for _, word := range []string{"harvard", "yale", "university"} {
		if !dict.Contains(word) {
			t.Errorf("dictionary missing %q", word)
		}
	}
	if dict.Frequency("university") != 2 {
		t.Errorf("frequency of university = %d, want 2", dict.Frequency("university"))
	}
}

func TestLoad_duplicatesMerged(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "name\nHarvard University\n")
	b := writeCSV(t, dir, "b.csv", "name\nHARVARD UNIVERSITY\n")

	idx := trie.New()
	dict := dictionary.New()
	report, err := New(nil).Load([]Source{
		{Path: a, Type: models.TypeEducational, NameColumn: "name"},
		{Path: b, Type: models.TypeEducational, NameColumn: "name"},
	}, idx, dict)
	if err != nil {
		t.Fatal(err)
	}

	if idx.Size() != 1 {
		t.Errorf("trie size = %d, want 1 (duplicate merged)", idx.Size())
	}
	if report.Sources[1].Duplicates != 1 {
		t.Errorf("second source duplicates = %d, want 1", report.Sources[1].Duplicates)
	}
	// First-seen wins for the stored full name
	recs := idx.ExactLookup("harvard university")
	if len(recs) != 1 || recs[0].FullName != "Harvard University" {
		t.Errorf("records = %+v", recs)
	}
	if dict.Frequency("harvard") != 1 {
		t.Errorf("duplicate must not inflate term frequency: %d", dict.Frequency("harvard"))
	}
}

func TestLoad_sameNameDifferentTypes(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "name\nMercy\n")
	b := writeCSV(t, dir, "b.csv", "name\nMercy\n")

	idx := trie.New()
	report, err := New(nil).Load([]Source{
		{Path: a, Type: models.TypeMedical, NameColumn: "name"},
		{Path: b, Type: models.TypeFinancial, NameColumn: "name"},
	}, idx, dictionary.New())
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalRecords != 2 {
		t.Errorf("total = %d, want 2: same name under two types is two records", report.TotalRecords)
	}
}

func TestLoad_partialFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeCSV(t, dir, "good.csv", "name\nHarvard University\n")
	missing := filepath.Join(dir, "missing.csv")
	badColumn := writeCSV(t, dir, "bad.csv", "title\nSomething\n")

	idx := trie.New()
	report, err := New(nil).Load([]Source{
		{Path: good, Type: models.TypeEducational, NameColumn: "name"},
		{Path: missing, Type: models.TypeFinancial, NameColumn: "name"},
		{Path: badColumn, Type: models.TypeMedical, NameColumn: "name"},
	}, idx, dictionary.New())
	if err != nil {
		t.Fatalf("partial failure must not abort the load: %v", err)
	}

	if report.FailedCount != 2 {
		t.Errorf("failed sources = %d, want 2", report.FailedCount)
	}
	if report.TotalRecords != 1 {
		t.Errorf("total records = %d, want 1", report.TotalRecords)
	}
	if report.Sources[1].Error == "" || report.Sources[2].Error == "" {
		t.Error("failed sources must record their errors")
	}
}

func TestLoad_allSourcesFail(t *testing.T) {
	dir := t.TempDir()
	_, err := New(nil).Load([]Source{
		{Path: filepath.Join(dir, "a.csv"), Type: models.TypeEducational, NameColumn: "name"},
		{Path: filepath.Join(dir, "b.csv"), Type: models.TypeFinancial, NameColumn: "name"},
	}, trie.New(), dictionary.New())
	if err == nil {
		t.Error("expected error when every source fails")
	}
}
