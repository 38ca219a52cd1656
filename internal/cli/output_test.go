package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
)

func sampleResult() *models.SuggestionResult {
	return &models.SuggestionResult{
		Query:           "harvrd",
		NormalizedQuery: "harvrd",
		Source:          models.SourceSpellCorrected,
		Suggestions: []*models.Suggestion{
			{
				FullName:       "Harvard University",
				Type:           models.TypeEducational,
				Source:         models.SourceSpellCorrected,
				Rank:           1,
				CorrectedQuery: "harvard",
				Corrections: []models.WordCorrection{
					{Original: "harvrd", Corrected: "harvard", Distance: 1},
				},
			},
		},
		QueryTime: 3,
	}
}

func TestWriteSuggestions_text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSuggestions(&buf, sampleResult(), OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Harvard University", "harvard", "distance 1", "spell_corrected"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSuggestions_json(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSuggestions(&buf, sampleResult(), OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.SuggestionResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Suggestions[0].FullName != "Harvard University" {
		t.Errorf("decoded = %+v", decoded.Suggestions[0])
	}
}

func TestWriteCorrections_text(t *testing.T) {
	var buf bytes.Buffer
	candidates := []*models.CorrectionCandidate{
		{CorrectedPhrase: "harvard", OriginalPhrase: "harvrd", TotalDistance: 1},
	}
	if err := WriteCorrections(&buf, "harvrd", candidates, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"harvard"`) {
		t.Errorf("output = %s", buf.String())
	}
}
