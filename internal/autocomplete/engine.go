// Package autocomplete is the public entry point of the name resolution
// engine: direct prefix lookup first, spell-correction fallback second.
package autocomplete

import (
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/config"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/dictionary"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/loader"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/ranking"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/speller"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/trie"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/pkg/utils"
)

// index is one immutable build of the trie, dictionary, and corrector.
// Queries read whichever index is active; a reload builds a fresh index and
// swaps the pointer, so in-flight queries finish against the old one.
type index struct {
	trie      *trie.Trie
	dict      *dictionary.Dictionary
	corrector *speller.Corrector
	report    *loader.LoadReport
	buildID   string
	builtAt   time.Time
}

// Engine resolves partial or misspelled institution names into ranked
// suggestions. Construct once with NewEngine, call Initialize, then share
// freely: all query methods are safe for concurrent use.
type Engine struct {
	cfg     config.AutocompleteConfig
	sources []loader.Source
	logger  *zap.Logger
	idx     atomic.Pointer[index]
}

// Stats is the diagnostic view of the active index.
type Stats struct {
	Initialized     bool                  `json:"initialized"`
	RecordCount     int                   `json:"record_count"`
	DictionaryTerms int                   `json:"dictionary_term_count"`
	BuildID         string                `json:"build_id,omitempty"`
	BuiltAt         time.Time             `json:"built_at,omitzero"`
	Sources         []loader.SourceReport `json:"source_breakdown,omitempty"`
}

// NewEngine creates an uninitialized engine. Queries fail with
// ErrEngineUnavailable until Initialize succeeds. logger may be nil.
func NewEngine(cfg config.AutocompleteConfig, sources []loader.Source, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, sources: sources, logger: logger}
}

// Initialize builds the index from the configured sources and activates it.
// Per-source failures are tolerated; Initialize fails only when every
// source failed, leaving any previously active index in place.
func (e *Engine) Initialize() (*loader.LoadReport, error) {
	t := trie.New()
	dict := dictionary.New()

	report, err := loader.New(e.logger).Load(e.sources, t, dict)
	if err != nil {
		e.logger.Error("index build failed", zap.Error(err))
		return report, ErrEngineUnavailable
	}

	built := &index{
		trie: t,
		dict: dict,
		corrector: speller.New(dict,
			speller.WithMaxDistance(e.cfg.MaxEditDistance),
			speller.WithPerWordCandidates(e.cfg.PerWordCandidates),
			speller.WithMaxCombinations(e.cfg.MaxCombinations),
		),
		report:  report,
		buildID: uuid.NewString(),
		builtAt: time.Now(),
	}
	e.idx.Store(built)

	e.logger.Info("index built",
		zap.String("build_id", built.buildID),
		zap.Int("records", t.Size()),
		zap.Int("dictionary_terms", dict.Len()),
		zap.Int("failed_sources", report.FailedCount))
	return report, nil
}

// Reload rebuilds the index from the same sources and atomically swaps it
// in. In-flight queries complete safely against the previous index.
func (e *Engine) Reload() (*loader.LoadReport, error) {
	return e.Initialize()
}

// GetSuggestions resolves a query into ranked suggestions: direct prefix
// matches when any exist, spell-corrected matches otherwise. "No matches"
// is an empty successful result, never an error.
func (e *Engine) GetSuggestions(query *models.SuggestionQuery) (*models.SuggestionResult, error) {
	start := time.Now()
	idx := e.idx.Load()
	if idx == nil {
		return nil, ErrEngineUnavailable
	}
	if query.Limit <= 0 {
		query.Limit = e.cfg.MaxSuggestions
	}
	query.Validate()
	if utf8.RuneCountInString(query.Query) > e.cfg.MaxQueryLength {
		return nil, ErrQueryTooLong
	}

	normalized := utils.NormalizeName(query.Query)
	result := &models.SuggestionResult{
		Query:           query.Query,
		NormalizedQuery: normalized,
		Source:          models.SourceNone,
		Suggestions:     []*models.Suggestion{},
	}
	if normalized == "" {
		result.QueryTime = time.Since(start).Milliseconds()
		return result, nil
	}

	// Direct prefix matches always win over spell correction.
	if direct := idx.trie.PrefixSearch(normalized, query.Limit); len(direct) > 0 {
		result.Source = models.SourceDirect
		for i, rec := range direct {
			result.Suggestions = append(result.Suggestions, &models.Suggestion{
				FullName: rec.FullName,
				Type:     rec.Type,
				Source:   models.SourceDirect,
				Rank:     i + 1,
			})
		}
		result.QueryTime = time.Since(start).Milliseconds()
		return result, nil
	}

	if query.SpellCorrectionEnabled() {
		result.Suggestions = e.spellCorrected(idx, normalized, query.Limit)
		if len(result.Suggestions) > 0 {
			result.Source = models.SourceSpellCorrected
		}
	}
	result.QueryTime = time.Since(start).Milliseconds()
	return result, nil
}

// spellCorrected runs the correction pipeline and expands ranked candidate
// phrases into record suggestions, deduplicated across candidates.
func (e *Engine) spellCorrected(idx *index, normalized string, limit int) []*models.Suggestion {
	candidates := idx.corrector.CorrectPhrase(normalized)
	if len(candidates) == 0 {
		return []*models.Suggestion{}
	}

	suggestions := []*models.Suggestion{}
	seen := make(map[models.RecordKey]struct{})
	for _, rc := range ranking.Rank(candidates, idx.trie) {
		if rc.TrieMatches == 0 {
			// Ranked strictly below matching candidates, so nothing
			// useful follows.
			break
		}
		for _, rec := range idx.trie.PrefixSearch(rc.Candidate.CorrectedPhrase, limit) {
			if _, dup := seen[rec.Key()]; dup {
				continue
			}
			seen[rec.Key()] = struct{}{}
			suggestions = append(suggestions, &models.Suggestion{
				FullName:       rec.FullName,
				Type:           rec.Type,
				Source:         models.SourceSpellCorrected,
				Rank:           len(suggestions) + 1,
				CorrectedQuery: rc.Candidate.CorrectedPhrase,
				Corrections:    rc.Candidate.Corrections,
			})
			if len(suggestions) >= limit {
				return suggestions
			}
		}
	}
	return suggestions
}

// GetSpellCorrections returns up to limit ranked correction candidates for
// the query without expanding them into record suggestions.
func (e *Engine) GetSpellCorrections(query string, limit int) ([]*models.CorrectionCandidate, error) {
	idx := e.idx.Load()
	if idx == nil {
		return nil, ErrEngineUnavailable
	}
	if utf8.RuneCountInString(query) > e.cfg.MaxQueryLength {
		return nil, ErrQueryTooLong
	}
	if limit <= 0 {
		limit = 10
	}

	normalized := utils.NormalizeName(query)
	if normalized == "" {
		return []*models.CorrectionCandidate{}, nil
	}
	ranked := ranking.Rank(idx.corrector.CorrectPhrase(normalized), idx.trie)
	out := make([]*models.CorrectionCandidate, 0, len(ranked))
	for _, rc := range ranked {
		if len(out) >= limit {
			break
		}
		out = append(out, rc.Candidate)
	}
	return out, nil
}

// Stats reports the state of the active index. Safe to call before
// initialization; Initialized is false in that case.
func (e *Engine) Stats() *Stats {
	idx := e.idx.Load()
	if idx == nil {
		return &Stats{}
	}
	return &Stats{
		Initialized:     true,
		RecordCount:     idx.trie.Size(),
		DictionaryTerms: idx.dict.Len(),
		BuildID:         idx.buildID,
		BuiltAt:         idx.builtAt,
		Sources:         idx.report.Sources,
	}
}
