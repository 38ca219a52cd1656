package models

// SuggestionSource tells how a suggestion was produced.
type SuggestionSource string

const (
	// SourceDirect means the normalized query was a live prefix of the record's name.
	SourceDirect SuggestionSource = "direct"
	// SourceSpellCorrected means the query only matched after spell correction.
	SourceSpellCorrected SuggestionSource = "spell_corrected"
	// SourceNone means no suggestions were found (an empty, successful result).
	SourceNone SuggestionSource = "none"
)

// WordCorrection records a single word that was changed during spell correction.
type WordCorrection struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Distance  int    `json:"distance"`
}

// CorrectionCandidate is a candidate corrected phrase produced by the spell
// corrector. Transient; never persisted.
type CorrectionCandidate struct {
	CorrectedPhrase string           `json:"corrected_phrase"`
	OriginalPhrase  string           `json:"original_phrase"`
	Corrections     []WordCorrection `json:"corrections"`
	TotalDistance   int              `json:"total_distance"`
}

// WordsCorrected returns the number of words actually changed.
func (c *CorrectionCandidate) WordsCorrected() int {
	return len(c.Corrections)
}

// Suggestion is a single ranked autocomplete hit.
type Suggestion struct {
	FullName string           `json:"full_name"`
	Type     InstitutionType  `json:"institution_type"`
	Source   SuggestionSource `json:"source"`
	// Rank is 1-based and dense within a single response.
	Rank           int              `json:"rank"`
	CorrectedQuery string           `json:"corrected_query,omitempty"`
	Corrections    []WordCorrection `json:"corrections,omitempty"`
}

// SuggestionResult is the response envelope for an autocomplete query.
type SuggestionResult struct {
	Query           string           `json:"query"`
	NormalizedQuery string           `json:"normalized_query"`
	Source          SuggestionSource `json:"source"`
	Suggestions     []*Suggestion    `json:"suggestions"`
	QueryTime       int64            `json:"query_time_ms"`
}
