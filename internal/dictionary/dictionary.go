// Package dictionary provides the word-level frequency lexicon used for
// edit-distance spell correction.
package dictionary

import "sort"

// Term is a single corpus word with its occurrence count.
type Term struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// Match is a dictionary term found within an edit-distance budget.
type Match struct {
	Term     Term `json:"term"`
	Distance int  `json:"distance"`
}

// Dictionary is a frequency table over the corpus vocabulary. It is
// populated during load and read-only afterwards.
type Dictionary struct {
	freq  map[string]int
	words []string
}

// New creates an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{freq: make(map[string]int)}
}

// Add increments the frequency of word.
func (d *Dictionary) Add(word string) {
	if word == "" {
		return
	}
	if _, ok := d.freq[word]; !ok {
		d.words = append(d.words, word)
	}
	d.freq[word]++
}

// Contains reports whether word is in the lexicon.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.freq[word]
	return ok
}

// Frequency returns the occurrence count of word, or 0 if absent.
func (d *Dictionary) Frequency(word string) int {
	return d.freq[word]
}

// Len returns the number of distinct terms.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// LookupWithinDistance returns all terms within maxDistance edits of word,
// excluding word itself, ordered by distance ascending, then frequency
// descending, then lexically. Distance is classic Levenshtein.
func (d *Dictionary) LookupWithinDistance(word string, maxDistance int) []Match {
	if maxDistance <= 0 {
		return nil
	}

	wordLen := len([]rune(word))
	var matches []Match
	for _, term := range d.words {
		if term == word {
			continue
		}
		// Length difference is a lower bound on edit distance
		lenDiff := len([]rune(term)) - wordLen
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxDistance {
			continue
		}
		distance := Levenshtein(word, term)
		if distance <= maxDistance {
			matches = append(matches, Match{
				Term:     Term{Word: term, Frequency: d.freq[term]},
				Distance: distance,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		if matches[i].Term.Frequency != matches[j].Term.Frequency {
			return matches[i].Term.Frequency > matches[j].Term.Frequency
		}
		return matches[i].Term.Word < matches[j].Term.Word
	})
	return matches
}
