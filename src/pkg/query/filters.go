// Package query translates free-text queries into structured filter
// sets and applies filter sets to stored string records.
package query

import (
	"strings"

	"strlens/src/pkg/store"
)

// FilterSet is a structured set of constraints over string records.
// Nil fields mean "no constraint on that dimension"; an empty FilterSet
// matches every record. The zero value is ready to use, and the struct
// serializes to the same flat JSON object the API echoes back to
// callers as filters_applied.
type FilterSet struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// IsEmpty reports whether no filter dimension is constrained.
func (f FilterSet) IsEmpty() bool {
	return f.IsPalindrome == nil &&
		f.MinLength == nil &&
		f.MaxLength == nil &&
		f.WordCount == nil &&
		f.ContainsCharacter == nil
}

// Matches reports whether rec satisfies every present constraint.
// MinLength and MaxLength are inclusive bounds; ContainsCharacter is a
// literal, case-sensitive substring test against the raw stored value.
func (f FilterSet) Matches(rec store.Record) bool {
	if f.IsPalindrome != nil && rec.Properties.IsPalindrome != *f.IsPalindrome {
		return false
	}
	if f.MinLength != nil && rec.Properties.Length < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && rec.Properties.Length > *f.MaxLength {
		return false
	}
	if f.WordCount != nil && rec.Properties.WordCount != *f.WordCount {
		return false
	}
	if f.ContainsCharacter != nil && !strings.Contains(rec.Value, *f.ContainsCharacter) {
		return false
	}
	return true
}

// Apply returns the records matching every present filter, preserving
// the input order. A contradictory filter set (e.g. min_length above
// max_length) is not rejected; it simply yields no matches.
func Apply(records []store.Record, filters FilterSet) []store.Record {
	matched := []store.Record{}
	for _, rec := range records {
		if filters.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}
