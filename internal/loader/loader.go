// Package loader ingests the configured tabular name sources and populates
// the trie index and term dictionary.
package loader

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/dictionary"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/source"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/trie"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/pkg/utils"
)

// Source is one resolved name source to load.
type Source struct {
	Path       string
	Type       models.InstitutionType
	NameColumn string
	// Table names the table to read for SQLite sources.
	Table string
}

// SourceReport carries per-source load counts. A source that could not be
// opened or was missing its name column has Error set and zero counts.
type SourceReport struct {
	SourceID   string                 `json:"source_id"`
	Type       models.InstitutionType `json:"institution_type"`
	Loaded     int                    `json:"loaded"`
	Skipped    int                    `json:"skipped"`
	Duplicates int                    `json:"duplicates"`
	Error      string                 `json:"error,omitempty"`
}

// LoadReport aggregates per-source reports for one load pass.
type LoadReport struct {
	Sources      []SourceReport `json:"sources"`
	TotalRecords int            `json:"total_records"`
	FailedCount  int            `json:"failed_sources"`
}

// Loader reads sources and populates index structures.
type Loader struct {
	logger *zap.Logger
}

// New creates a Loader. logger may be nil.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads every source, normalizes each name, and inserts the resulting
// records into idx and their words into dict. Rows that normalize to the
// empty string are skipped and counted; rows duplicating an already-loaded
// (normalized name, type) pair are counted as duplicates. A source that
// fails to open or lacks its name column is recorded in the report and does
// not abort the pass. An error is returned only when every source failed.
func (l *Loader) Load(sources []Source, idx *trie.Trie, dict *dictionary.Dictionary) (*LoadReport, error) {
	report := &LoadReport{Sources: make([]SourceReport, 0, len(sources))}

	for _, src := range sources {
		sr := l.loadOne(src, idx, dict)
		if sr.Error != "" {
			report.FailedCount++
		}
		report.TotalRecords += sr.Loaded
		report.Sources = append(report.Sources, sr)
	}

	if len(sources) > 0 && report.FailedCount == len(sources) {
		return report, fmt.Errorf("all %d sources failed to load", len(sources))
	}
	return report, nil
}

func (l *Loader) loadOne(src Source, idx *trie.Trie, dict *dictionary.Dictionary) SourceReport {
	sr := SourceReport{SourceID: src.Path, Type: src.Type}

	rows, err := source.Open(src.Path, src.Table)
	if err != nil {
		l.logger.Warn("source open failed", zap.String("path", src.Path), zap.Error(err))
		sr.Error = err.Error()
		return sr
	}
	defer rows.Close()

	names, err := rows.Column(src.NameColumn)
	if err != nil {
		l.logger.Warn("source column missing",
			zap.String("path", src.Path),
			zap.String("column", src.NameColumn),
			zap.Error(err))
		sr.Error = err.Error()
		return sr
	}

	for _, name := range names {
		normalized := utils.NormalizeName(name)
		if normalized == "" {
			sr.Skipped++
			continue
		}
		rec := &models.InstitutionRecord{
			FullName:       strings.TrimSpace(name),
			NormalizedName: normalized,
			Type:           src.Type,
			SourceID:       src.Path,
		}
		if !idx.Insert(normalized, rec) {
			sr.Duplicates++
			continue
		}
		for _, word := range utils.Tokenize(normalized) {
			dict.Add(word)
		}
		sr.Loaded++
	}

	l.logger.Info("source loaded",
		zap.String("path", src.Path),
		zap.String("type", string(src.Type)),
		zap.Int("loaded", sr.Loaded),
		zap.Int("skipped", sr.Skipped),
		zap.Int("duplicates", sr.Duplicates))
	return sr
}
