// Package speller produces corrected-phrase candidates for misspelled
// queries via progressive edit-distance deepening over the term dictionary.
package speller

import (
	"sort"
	"strings"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/dictionary"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/pkg/utils"
)

// Corrector generates correction candidates for whole phrases.
type Corrector struct {
	dict              *dictionary.Dictionary
	maxDistance       int
	perWordCandidates int
	maxCombinations   int
}

// Option is a functional option for configuring a Corrector.
type Option func(*Corrector)

// WithMaxDistance sets the per-word edit distance ceiling.
func WithMaxDistance(d int) Option {
	return func(c *Corrector) {
		if d > 0 {
			c.maxDistance = d
		}
	}
}

// WithPerWordCandidates caps how many candidates are kept per word before
// combining into phrases.
func WithPerWordCandidates(n int) Option {
	return func(c *Corrector) {
		if n > 0 {
			c.perWordCandidates = n
		}
	}
}

// WithMaxCombinations caps how many combined phrases are produced per query.
func WithMaxCombinations(n int) Option {
	return func(c *Corrector) {
		if n > 0 {
			c.maxCombinations = n
		}
	}
}

// New creates a Corrector over the given dictionary.
func New(dict *dictionary.Dictionary, opts ...Option) *Corrector {
	c := &Corrector{
		dict:              dict,
		maxDistance:       2,
		perWordCandidates: 5,
		maxCombinations:   50,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// wordChoice is one way to spell a single word of the phrase.
type wordChoice struct {
	word      string
	original  string
	distance  int
	corrected bool
}

// CorrectPhrase splits the normalized phrase into words and corrects each
// misspelled word by progressive deepening: distance 1 is tried first, and
// the budget only grows for a word while no candidate has been found. Words
// already in the dictionary are never corrected; words with no candidate at
// any budget are kept verbatim. Per-word candidate sets are combined into
// full phrases, capped, and ordered by total distance.
//
// A phrase in which no word could be corrected yields nil.
func (c *Corrector) CorrectPhrase(phrase string) []*models.CorrectionCandidate {
	words := utils.Tokenize(phrase)
	if len(words) == 0 {
		return nil
	}

	choices := make([][]wordChoice, len(words))
	anyCorrected := false
	for i, word := range words {
		choices[i] = c.wordChoices(word)
		if choices[i][0].corrected {
			anyCorrected = true
		}
	}
	if !anyCorrected {
		return nil
	}

	candidates := c.combine(phrase, choices)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].TotalDistance != candidates[j].TotalDistance {
			return candidates[i].TotalDistance < candidates[j].TotalDistance
		}
		if candidates[i].WordsCorrected() != candidates[j].WordsCorrected() {
			return candidates[i].WordsCorrected() < candidates[j].WordsCorrected()
		}
		return candidates[i].CorrectedPhrase < candidates[j].CorrectedPhrase
	})
	if len(candidates) > c.maxCombinations {
		candidates = candidates[:c.maxCombinations]
	}
	return candidates
}

// wordChoices returns the ways to spell one word, best first. The returned
// slice is never empty: an uncorrectable word yields itself.
func (c *Corrector) wordChoices(word string) []wordChoice {
	if c.dict.Contains(word) {
		return []wordChoice{{word: word, original: word}}
	}
	for distance := 1; distance <= c.maxDistance; distance++ {
		matches := c.dict.LookupWithinDistance(word, distance)
		if len(matches) == 0 {
			continue
		}
		// All matches sit at exactly this distance: smaller budgets
		// came up empty. Deeper budgets are not tried once a distance
		// yields candidates.
		if len(matches) > c.perWordCandidates {
			matches = matches[:c.perWordCandidates]
		}
		out := make([]wordChoice, len(matches))
		for i, m := range matches {
			out[i] = wordChoice{
				word:      m.Term.Word,
				original:  word,
				distance:  m.Distance,
				corrected: true,
			}
		}
		return out
	}
	return []wordChoice{{word: word, original: word}}
}

// combine builds the cartesian product of per-word choices, generating at
// most maxCombinations phrases. Choices are ordered best-first per word, so
// truncating the product keeps the strongest combinations.
func (c *Corrector) combine(phrase string, choices [][]wordChoice) []*models.CorrectionCandidate {
	var out []*models.CorrectionCandidate
	pick := make([]wordChoice, len(choices))

	var rec func(i int) bool
	rec = func(i int) bool {
		if len(out) >= c.maxCombinations {
			return false
		}
		if i == len(choices) {
			out = append(out, buildCandidate(phrase, pick))
			return true
		}
		for _, choice := range choices[i] {
			pick[i] = choice
			if !rec(i + 1) {
				return false
			}
		}
		return true
	}
	rec(0)
	return out
}

func buildCandidate(phrase string, pick []wordChoice) *models.CorrectionCandidate {
	words := make([]string, len(pick))
	var corrections []models.WordCorrection
	total := 0
	for i, choice := range pick {
		words[i] = choice.word
		if choice.corrected {
			corrections = append(corrections, models.WordCorrection{
				Original:  choice.original,
				Corrected: choice.word,
				Distance:  choice.distance,
			})
			total += choice.distance
		}
	}
	return &models.CorrectionCandidate{
		CorrectedPhrase: strings.Join(words, " "),
		OriginalPhrase:  phrase,
		Corrections:     corrections,
		TotalDistance:   total,
	}
}
