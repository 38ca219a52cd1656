package models

// SuggestionQuery represents an autocomplete request.
type SuggestionQuery struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
	// SpellCorrection enables the correction fallback when no direct prefix
	// match exists. Nil means enabled.
	SpellCorrection *bool `json:"spell_correction,omitempty"`
}

// Validate normalizes query limits in place. An empty query is not an error
// here: the engine answers it with an empty result.
func (q *SuggestionQuery) Validate() {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// SpellCorrectionEnabled reports whether the correction fallback is on.
func (q *SuggestionQuery) SpellCorrectionEnabled() bool {
	return q.SpellCorrection == nil || *q.SpellCorrection
}
