package query

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparseable is returned when no interpreter rule matches the query.
// Callers treat this as a client-input error, distinct from a parsed
// query that happens to match zero records.
var ErrUnparseable = errors.New("unable to parse natural language query")

var (
	longerThanPattern  = regexp.MustCompile(`longer than (\d+)`)
	shorterThanPattern = regexp.MustCompile(`shorter than (\d+)`)
	containsPattern    = regexp.MustCompile(`contain(?:s|ing)?\s+(?:the\s+)?(?:letter\s+)?([a-z])`)
)

// rule is one entry in the interpreter's rule table: a fixed trigger
// over the lowered query text that contributes filter values when it
// matches.
type rule struct {
	name  string
	apply func(lowered string, f *FilterSet) bool
}

// rules is evaluated in order; every matching rule contributes, and a
// later rule overwrites an earlier contribution to the same field.
// The fixed slice order keeps interpretation deterministic.
var rules = []rule{
	{
		name: "palindrome",
		apply: func(q string, f *FilterSet) bool {
			if !strings.Contains(q, "palindrome") && !strings.Contains(q, "palindromic") {
				return false
			}
			f.IsPalindrome = boolPtr(true)
			return true
		},
	},
	{
		name: "single_word",
		apply: func(q string, f *FilterSet) bool {
			if !strings.Contains(q, "single word") {
				return false
			}
			f.WordCount = intPtr(1)
			return true
		},
	},
	{
		name: "two_word",
		apply: func(q string, f *FilterSet) bool {
			if !strings.Contains(q, "two word") && !strings.Contains(q, "2 word") {
				return false
			}
			f.WordCount = intPtr(2)
			return true
		},
	},
	{
		name: "longer_than",
		apply: func(q string, f *FilterSet) bool {
			m := longerThanPattern.FindStringSubmatch(q)
			if m == nil {
				return false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return false
			}
			f.MinLength = intPtr(n + 1)
			return true
		},
	},
	{
		name: "shorter_than",
		apply: func(q string, f *FilterSet) bool {
			m := shorterThanPattern.FindStringSubmatch(q)
			if m == nil {
				return false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return false
			}
			f.MaxLength = intPtr(n - 1)
			return true
		},
	},
	{
		name: "contains_character",
		apply: func(q string, f *FilterSet) bool {
			m := containsPattern.FindStringSubmatch(q)
			if m == nil {
				return false
			}
			f.ContainsCharacter = strPtr(m[1])
			return true
		},
	},
	{
		// Legacy behavior: "first vowel" always filters on the literal
		// letter 'a', it does not inspect any string. Kept as-is.
		name: "first_vowel",
		apply: func(q string, f *FilterSet) bool {
			if !strings.Contains(q, "first vowel") {
				return false
			}
			f.ContainsCharacter = strPtr("a")
			return true
		},
	},
}

// Interpret maps free text onto a FilterSet using the fixed rule table.
// Matching is case-insensitive. Numeric values must appear as integer
// literals; word numbers ("ten") are not recognized. Returns
// ErrUnparseable when zero rules fire.
func Interpret(queryText string) (FilterSet, error) {
	lowered := strings.ToLower(queryText)

	var filters FilterSet
	matched := false
	for _, r := range rules {
		if r.apply(lowered, &filters) {
			matched = true
		}
	}

	if !matched {
		return FilterSet{}, ErrUnparseable
	}
	return filters, nil
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
