package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected FilterSet
	}{
		{
			name:     "palindrome",
			query:    "show me all palindromes",
			expected: FilterSet{IsPalindrome: boolPtr(true)},
		},
		{
			name:     "palindromic adjective",
			query:    "palindromic strings please",
			expected: FilterSet{IsPalindrome: boolPtr(true)},
		},
		{
			name:     "single word",
			query:    "single word strings",
			expected: FilterSet{WordCount: intPtr(1)},
		},
		{
			name:     "two word",
			query:    "two word strings",
			expected: FilterSet{WordCount: intPtr(2)},
		},
		{
			name:     "two word with digit",
			query:    "2 word strings",
			expected: FilterSet{WordCount: intPtr(2)},
		},
		{
			name:     "longer than is exclusive",
			query:    "strings longer than 10 characters",
			expected: FilterSet{MinLength: intPtr(11)},
		},
		{
			name:     "shorter than is exclusive",
			query:    "strings shorter than 5 characters",
			expected: FilterSet{MaxLength: intPtr(4)},
		},
		{
			name:     "contains letter",
			query:    "strings containing the letter z",
			expected: FilterSet{ContainsCharacter: strPtr("z")},
		},
		{
			name:     "contains short form",
			query:    "contains x",
			expected: FilterSet{ContainsCharacter: strPtr("x")},
		},
		{
			name:  "combined palindrome and length",
			query: "all palindromic strings longer than 5 characters",
			expected: FilterSet{
				IsPalindrome: boolPtr(true),
				MinLength:    intPtr(6),
			},
		},
		{
			name:  "combined word count and letter",
			query: "single word strings containing the letter e",
			expected: FilterSet{
				WordCount:         intPtr(1),
				ContainsCharacter: strPtr("e"),
			},
		},
		{
			name:     "case insensitive matching",
			query:    "ALL PALINDROMES LONGER THAN 3",
			expected: FilterSet{IsPalindrome: boolPtr(true), MinLength: intPtr(4)},
		},
		{
			name:     "longer than zero",
			query:    "strings longer than 0 characters",
			expected: FilterSet{MinLength: intPtr(1)},
		},
		{
			name:     "shorter than zero yields negative bound",
			query:    "strings shorter than 0 characters",
			expected: FilterSet{MaxLength: intPtr(-1)},
		},
		{
			// "first vowel" historically filters on the literal letter 'a'
			name:     "first vowel literal",
			query:    "strings containing their first vowel",
			expected: FilterSet{ContainsCharacter: strPtr("a")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := Interpret(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filters)
		})
	}
}

func TestInterpretUnparseable(t *testing.T) {
	queries := []string{
		"",
		"show me everything interesting",
		"strings longer than ten characters", // word numbers are not recognized
		"what is the meaning of life",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			_, err := Interpret(q)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestInterpretDeterministic(t *testing.T) {
	// The rule table is evaluated in fixed order, so repeated
	// interpretation of the same text yields identical filters.
	const q = "palindromic single word strings longer than 2 containing the letter a"

	first, err := Interpret(q)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		filters, err := Interpret(q)
		require.NoError(t, err)
		assert.Equal(t, first, filters)
	}
}

func TestInterpretLaterRuleWins(t *testing.T) {
	// Both the contains rule and the first-vowel rule set the same
	// field; the first-vowel rule sits later in the table and wins.
	filters, err := Interpret("containing the letter z and their first vowel")
	require.NoError(t, err)
	require.NotNil(t, filters.ContainsCharacter)
	assert.Equal(t, "a", *filters.ContainsCharacter)
}
