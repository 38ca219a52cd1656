// Package ranking orders corrected-phrase candidates by structural match
// quality against the trie index.
package ranking

import (
	"fmt"
	"sort"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/trie"
)

// RankedCandidate is a correction candidate with its trie match count and a
// diagnostic explanation of how it was ordered.
type RankedCandidate struct {
	Candidate   *models.CorrectionCandidate `json:"candidate"`
	TrieMatches int                         `json:"trie_matches"`
	// Explanation summarizes the comparator inputs for this candidate.
	// Diagnostics only; never used for ranking.
	Explanation string `json:"explanation"`
}

// Rank orders candidates by a fixed lexicographic comparator: candidates
// with at least one trie match rank strictly above those with none; then
// lower total edit distance wins; ties break by more trie matches, then
// fewer corrected words, then lexical order of the corrected phrase. The
// comparator is fully deterministic so repeated queries on an unchanged
// corpus always return an identical ordering.
func Rank(candidates []*models.CorrectionCandidate, idx *trie.Trie) []*RankedCandidate {
	ranked := make([]*RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		matches := idx.PrefixCount(c.CorrectedPhrase)
		ranked = append(ranked, &RankedCandidate{
			Candidate:   c,
			TrieMatches: matches,
			Explanation: explain(c, matches),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		aMiss, bMiss := a.TrieMatches == 0, b.TrieMatches == 0
		if aMiss != bMiss {
			return bMiss
		}
		if a.Candidate.TotalDistance != b.Candidate.TotalDistance {
			return a.Candidate.TotalDistance < b.Candidate.TotalDistance
		}
		if a.TrieMatches != b.TrieMatches {
			return a.TrieMatches > b.TrieMatches
		}
		if a.Candidate.WordsCorrected() != b.Candidate.WordsCorrected() {
			return a.Candidate.WordsCorrected() < b.Candidate.WordsCorrected()
		}
		return a.Candidate.CorrectedPhrase < b.Candidate.CorrectedPhrase
	})
	return ranked
}

func explain(c *models.CorrectionCandidate, matches int) string {
	if matches == 0 {
		return fmt.Sprintf("no trie matches; total distance %d; %d words corrected",
			c.TotalDistance, c.WordsCorrected())
	}
	return fmt.Sprintf("%d trie matches; total distance %d; %d words corrected",
		matches, c.TotalDistance, c.WordsCorrected())
}
