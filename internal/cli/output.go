// Package cli provides output formatting for the profiler CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
)

// OutputFormat is the format for CLI result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteSuggestions writes an autocomplete result to w in the given format.
func WriteSuggestions(w io.Writer, result *models.SuggestionResult, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	writeSuggestionsText(w, result)
	return nil
}

func writeSuggestionsText(w io.Writer, result *models.SuggestionResult) {
	fmt.Fprintf(w, "\n%d suggestions for %q in %dms (source: %s)\n\n",
		len(result.Suggestions), result.Query, result.QueryTime, result.Source)
	for _, s := range result.Suggestions {
		fmt.Fprintf(w, "%3d. %s  [%s]\n", s.Rank, s.FullName, s.Type)
		if s.CorrectedQuery != "" {
			fmt.Fprintf(w, "     corrected query: %q\n", s.CorrectedQuery)
			for _, c := range s.Corrections {
				fmt.Fprintf(w, "     %q -> %q (distance %d)\n", c.Original, c.Corrected, c.Distance)
			}
		}
	}
}

// WriteCorrections writes spell-correction candidates to w in the given format.
func WriteCorrections(w io.Writer, query string, candidates []*models.CorrectionCandidate, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}
	fmt.Fprintf(w, "\n%d correction candidates for %q\n\n", len(candidates), query)
	for i, c := range candidates {
		fmt.Fprintf(w, "%3d. %q (total distance %d)\n", i+1, c.CorrectedPhrase, c.TotalDistance)
	}
	return nil
}
