// Package trie provides the prefix index over normalized institution names.
//
// The index is built once by the loader and is read-only afterwards; it is
// safe for unbounded concurrent readers once no writer is active.
package trie

import (
	"sort"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
)

// Trie is a rune-keyed prefix tree. Records are stored at the terminal node
// of their full normalized name; interior nodes carry a count of records
// reachable below them so prefix counting never walks a subtree.
type Trie struct {
	root *node
	size int
}

type node struct {
	children map[rune]*node
	// records holds the records whose normalized name ends exactly here.
	records []*models.InstitutionRecord
	// recordsBelow counts records stored at or below this node.
	recordsBelow int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New creates an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds a record under its normalized name. Returns false without
// modifying the index when a record with the same (normalized name, type)
// pair is already present, so the index never holds duplicates.
func (t *Trie) Insert(normalized string, rec *models.InstitutionRecord) bool {
	if normalized == "" {
		return false
	}
	for _, existing := range t.ExactLookup(normalized) {
		if existing.Type == rec.Type {
			return false
		}
	}

	n := t.root
	n.recordsBelow++
	for _, r := range normalized {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
		n.recordsBelow++
	}
	n.records = append(n.records, rec)
	t.size++
	return true
}

// PrefixSearch returns up to limit records whose normalized name starts with
// prefix, in deterministic depth-first order (children visited in ascending
// rune order). A limit <= 0 means no limit. An absent prefix yields an empty
// result, not an error.
func (t *Trie) PrefixSearch(prefix string, limit int) []*models.InstitutionRecord {
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	var out []*models.InstitutionRecord
	collect(n, limit, &out)
	return out
}

// ExactLookup returns the records stored under exactly the given name.
func (t *Trie) ExactLookup(normalized string) []*models.InstitutionRecord {
	n := t.walk(normalized)
	if n == nil {
		return nil
	}
	return n.records
}

// PrefixCount returns the number of records whose normalized name starts
// with prefix, in O(|prefix|).
func (t *Trie) PrefixCount(prefix string) int {
	n := t.walk(prefix)
	if n == nil {
		return 0
	}
	return n.recordsBelow
}

// Size returns the total number of records in the index.
func (t *Trie) Size() int {
	return t.size
}

func (t *Trie) walk(s string) *node {
	n := t.root
	for _, r := range s {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// collect appends records below n depth-first, visiting children in
// ascending rune order so repeated identical queries return identical
// orderings. Stops once limit records are collected (limit <= 0 = no limit).
func collect(n *node, limit int, out *[]*models.InstitutionRecord) {
	for _, rec := range n.records {
		if limit > 0 && len(*out) >= limit {
			return
		}
		*out = append(*out, rec)
	}
	if len(n.children) == 0 {
		return
	}
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, r := range keys {
		if limit > 0 && len(*out) >= limit {
			return
		}
		collect(n.children[r], limit, out)
	}
}
