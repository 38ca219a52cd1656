// Package models defines core data structures for institution records, queries, and suggestions.
package models

import "fmt"

// InstitutionType is the categorical tag attached to each loaded record.
type InstitutionType string

const (
	// TypeEducational covers universities, colleges, and schools.
	TypeEducational InstitutionType = "edu"
	// TypeFinancial covers banks and other financial institutions.
	TypeFinancial InstitutionType = "fin"
	// TypeMedical covers hospitals and clinics.
	TypeMedical InstitutionType = "med"
)

// ParseInstitutionType parses a config-supplied type tag.
func ParseInstitutionType(s string) (InstitutionType, error) {
	switch InstitutionType(s) {
	case TypeEducational, TypeFinancial, TypeMedical:
		return InstitutionType(s), nil
	}
	return "", fmt.Errorf("unknown institution type: %q", s)
}

// InstitutionRecord is a canonical institution name drawn from one of the
// configured sources. Immutable once loaded.
type InstitutionRecord struct {
	FullName       string          `json:"full_name"`
	NormalizedName string          `json:"normalized_name"`
	Type           InstitutionType `json:"institution_type"`
	SourceID       string          `json:"source_id"`
}

// RecordKey identifies a record uniquely across all sources. Two rows with
// the same normalized name and type are duplicates; the first seen wins.
type RecordKey struct {
	NormalizedName string
	Type           InstitutionType
}

// Key returns the uniqueness key for the record.
func (r *InstitutionRecord) Key() RecordKey {
	return RecordKey{NormalizedName: r.NormalizedName, Type: r.Type}
}
